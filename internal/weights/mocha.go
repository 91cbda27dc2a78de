package weights

import (
	"errors"
	"regexp"
)

// MochaScanner is a lightweight token scanner for Mocha-style spec
// files (the dialect Cypress uses). It recognizes describe/context
// suites and it/specify cases, including the x-prefixed and .skip
// skipped forms, and nests suites by tracking brace depth. It is not a
// JavaScript parser; string literals and comments are blanked out
// first so braces and keywords inside them don't confuse the scan.
type MochaScanner struct{}

// NewMochaScanner creates a new MochaScanner
func NewMochaScanner() *MochaScanner {
	return &MochaScanner{}
}

var declPattern = regexp.MustCompile(`\b(xdescribe|xcontext|xspecify|xit|describe|context|specify|it)(\.skip|\.only)?\s*\(`)

var errUnbalanced = errors.New("unbalanced braces in spec source")

// Parse scans src and returns the top-level declaration tree.
func (s *MochaScanner) Parse(src string) ([]*Node, error) {
	clean := sanitize(src)
	matches := declPattern.FindAllStringSubmatchIndex(clean, -1)

	type frame struct {
		node  *Node
		depth int
	}

	var roots []*Node
	var stack []frame
	var pending *Node // suite waiting for its body's opening brace
	depth := 0
	mi := 0

	attach := func(n *Node) {
		if len(stack) > 0 {
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, n)
			return
		}
		roots = append(roots, n)
	}

	for i := 0; i < len(clean); i++ {
		if mi < len(matches) && matches[mi][0] == i {
			m := matches[mi]
			mi++
			// Reject property accesses like runner.it(...).
			if i > 0 && (clean[i-1] == '.' || clean[i-1] == '$') {
				continue
			}
			keyword := clean[m[2]:m[3]]
			skipped := keyword[0] == 'x'
			if m[4] >= 0 && clean[m[4]:m[5]] == ".skip" {
				skipped = true
			}
			node := &Node{Skipped: skipped}
			switch keyword {
			case "describe", "context", "xdescribe", "xcontext":
				node.Kind = KindSuite
				attach(node)
				pending = node
			default:
				node.Kind = KindCase
				attach(node)
			}
			continue
		}

		switch clean[i] {
		case '{':
			depth++
			if pending != nil {
				stack = append(stack, frame{node: pending, depth: depth})
				pending = nil
			}
		case '}':
			if depth == 0 {
				return nil, errUnbalanced
			}
			if len(stack) > 0 && stack[len(stack)-1].depth == depth {
				stack = stack[:len(stack)-1]
			}
			depth--
		}
	}

	if depth != 0 {
		return nil, errUnbalanced
	}

	return roots, nil
}

// sanitize blanks out string literals and comments, preserving offsets
// and newlines so indexes into the result line up with the input.
func sanitize(src string) string {
	b := []byte(src)
	out := make([]byte, len(b))
	copy(out, b)

	blank := func(i int) {
		if b[i] != '\n' {
			out[i] = ' '
		}
	}

	i := 0
	for i < len(b) {
		switch {
		case b[i] == '/' && i+1 < len(b) && b[i+1] == '/':
			for i < len(b) && b[i] != '\n' {
				out[i] = ' '
				i++
			}
		case b[i] == '/' && i+1 < len(b) && b[i+1] == '*':
			blank(i)
			blank(i + 1)
			i += 2
			for i < len(b) {
				if b[i] == '*' && i+1 < len(b) && b[i+1] == '/' {
					out[i], out[i+1] = ' ', ' '
					i += 2
					break
				}
				blank(i)
				i++
			}
		case b[i] == '\'' || b[i] == '"' || b[i] == '`':
			quote := b[i]
			i++
			for i < len(b) {
				if b[i] == '\\' && i+1 < len(b) {
					blank(i)
					blank(i + 1)
					i += 2
					continue
				}
				if b[i] == quote {
					i++
					break
				}
				blank(i)
				i++
			}
		default:
			i++
		}
	}

	return string(out)
}
