package weights

import (
	"testing"
)

func TestMochaScanner_Parse(t *testing.T) {
	scanner := NewMochaScanner()

	tests := []struct {
		name   string
		src    string
		active int
	}{
		{
			name: "flat cases",
			src: `
it('logs in', () => { cy.visit('/login') })
it('logs out', () => { cy.visit('/logout') })
`,
			active: 2,
		},
		{
			name: "suite with cases",
			src: `
describe('auth', () => {
  it('logs in', () => {})
  it('logs out', () => {})
})
`,
			active: 2,
		},
		{
			name: "skipped case",
			src: `
describe('auth', () => {
  it('logs in', () => {})
  it.skip('logs out', () => {})
  xit('resets password', () => {})
})
`,
			active: 1,
		},
		{
			name: "skipped suite disables nested cases",
			src: `
describe.skip('auth', () => {
  it('one', () => {})
  it('two', () => {})
})
it('top level', () => {})
`,
			active: 1,
		},
		{
			name: "skip propagates through nesting",
			src: `
describe('outer', () => {
  xdescribe('inner', () => {
    describe('deepest', () => {
      it('never runs', () => {})
    })
  })
  it('runs', () => {})
})
`,
			active: 1,
		},
		{
			name: "sibling suites after nested bodies",
			src: `
describe('first', () => {
  describe('nested', () => {
    it('a', () => {})
  })
})
describe('second', () => {
  it('b', () => {})
  it('c', () => {})
})
`,
			active: 3,
		},
		{
			name: "context and specify aliases",
			src: `
context('cart', function () {
  specify('adds an item', function () {})
  xspecify('removes an item', function () {})
})
`,
			active: 1,
		},
		{
			name: "only still counts as active",
			src: `
describe('auth', () => {
  it.only('focused', () => {})
  it('other', () => {})
})
`,
			active: 2,
		},
		{
			name: "keywords inside strings and comments ignored",
			src: `
// it('commented out', () => {})
describe('auth', () => {
  it('uses literal text', () => {
    cy.contains("describe('fake', () => {")
    /* it('also commented', () => {}) */
  })
})
`,
			active: 1,
		},
		{
			name: "property access is not a declaration",
			src: `
describe('runner', () => {
  it('delegates', () => {
    runner.it('not a test')
  })
})
`,
			active: 1,
		},
		{
			name:   "empty file",
			src:    "",
			active: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := scanner.Parse(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := CountActive(nodes); got != tt.active {
				t.Errorf("expected %d active cases, got %d", tt.active, got)
			}
		})
	}
}

func TestMochaScanner_Parse_Tree(t *testing.T) {
	scanner := NewMochaScanner()
	src := `
describe('outer', () => {
  it('a', () => {})
  describe('inner', () => {
    it('b', () => {})
  })
  it('c', () => {})
})
`
	nodes, err := scanner.Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 root, got %d", len(nodes))
	}
	outer := nodes[0]
	if outer.Kind != KindSuite {
		t.Fatal("expected root to be a suite")
	}
	if len(outer.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(outer.Children))
	}
	// Depth-first: inner suite's body is complete before sibling c.
	if outer.Children[1].Kind != KindSuite || len(outer.Children[1].Children) != 1 {
		t.Error("inner suite should hold exactly its own case")
	}
	if outer.Children[2].Kind != KindCase {
		t.Error("case after inner suite should be a sibling of it")
	}
}

func TestMochaScanner_Parse_Unbalanced(t *testing.T) {
	scanner := NewMochaScanner()
	if _, err := scanner.Parse("describe('broken', () => {"); err == nil {
		t.Error("expected error for unbalanced braces")
	}
	if _, err := scanner.Parse("}}"); err == nil {
		t.Error("expected error for stray closing braces")
	}
}
