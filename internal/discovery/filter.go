package discovery

import (
	"path/filepath"
	"strings"
)

// Filter narrows discovered spec files by name pattern. This is the
// configuration-layer filtering policy: the scanner itself returns
// every file under the tree.
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters spec files by name pattern using wildcard matching.
// Supports patterns like "*login*" or "*_spec.js"; a pattern without
// wildcards matches as a substring of the file name.
func (f *Filter) FilterByName(specs []string, pattern string) []string {
	if pattern == "" {
		return specs
	}

	var filtered []string
	for _, spec := range specs {
		name := filepath.Base(spec)

		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			filtered = append(filtered, spec)
			continue
		}

		if !strings.Contains(pattern, "*") && !strings.Contains(pattern, "?") {
			if strings.Contains(name, pattern) {
				filtered = append(filtered, spec)
			}
			continue
		}

		// filepath.Match is segment-anchored; fall back to an in-order
		// substring match for loose patterns like "*login*spec*".
		if matchParts(name, strings.Split(pattern, "*")) {
			filtered = append(filtered, spec)
		}
	}

	return filtered
}

// matchParts reports whether every non-empty part occurs in name, in order.
func matchParts(name string, parts []string) bool {
	rest := name
	seen := false
	for _, part := range parts {
		if part == "" {
			continue
		}
		seen = true
		idx := strings.Index(rest, part)
		if idx < 0 {
			return false
		}
		rest = rest[idx+len(part):]
	}
	return seen
}
