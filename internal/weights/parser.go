package weights

// NodeKind classifies a declaration found in a spec file.
type NodeKind int

const (
	// KindSuite is a grouping declaration (describe/context).
	KindSuite NodeKind = iota
	// KindCase is a single test case declaration (it/specify).
	KindCase
)

// Node is one suite or case declaration. Suites carry their nested
// declarations as children; cases are leaves.
type Node struct {
	Kind     NodeKind
	Skipped  bool
	Children []*Node
}

// Parser turns spec source text into a declaration tree. Implementations
// are swappable; the skip/nesting semantics of CountActive are the
// contract that matters.
type Parser interface {
	Parse(src string) ([]*Node, error)
}

// CountActive returns the number of test cases that would actually run:
// a case is active iff it is not itself skipped and no enclosing suite
// is skipped. Children are visited depth-first, a suite's body fully
// before its next sibling.
func CountActive(nodes []*Node) int {
	return countActive(nodes, false)
}

func countActive(nodes []*Node, suiteSkipped bool) int {
	count := 0
	for _, node := range nodes {
		switch node.Kind {
		case KindSuite:
			count += countActive(node.Children, suiteSkipped || node.Skipped)
		case KindCase:
			if !suiteSkipped && !node.Skipped {
				count++
			}
		}
	}
	return count
}
