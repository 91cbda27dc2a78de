package discovery

import (
	"testing"
)

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		specs    []string
		pattern  string
		expected int
	}{
		{
			name:     "empty pattern returns all",
			specs:    []string{"login_spec.js", "payment_spec.js", "cart_spec.js"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard suffix",
			specs:    []string{"login_spec.js", "payment_spec.js", "cart.cy.js"},
			pattern:  "*_spec.js",
			expected: 2,
		},
		{
			name:     "wildcard substring",
			specs:    []string{"login_spec.js", "payment_spec.js", "payment_flow_spec.js"},
			pattern:  "*payment*",
			expected: 2,
		},
		{
			name:     "plain substring",
			specs:    []string{"login_spec.js", "payment_spec.js"},
			pattern:  "login",
			expected: 1,
		},
		{
			name:     "no matches",
			specs:    []string{"login_spec.js", "payment_spec.js"},
			pattern:  "*missing*",
			expected: 0,
		},
		{
			name:     "full path matches on base name",
			specs:    []string{"/e2e/auth/login_spec.js", "/e2e/shop/payment_spec.js"},
			pattern:  "*login*",
			expected: 1,
		},
		{
			name:     "ordered multi-wildcard",
			specs:    []string{"user_create_spec.js", "create_user_spec.js"},
			pattern:  "*user*create*",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.specs, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d: %v", tt.expected, len(result), result)
			}
		})
	}
}

func TestFilter_FilterByName_EmptyInput(t *testing.T) {
	filter := NewFilter()
	result := filter.FilterByName(nil, "*spec*")
	if len(result) != 0 {
		t.Errorf("expected empty result, got %d items", len(result))
	}
}
