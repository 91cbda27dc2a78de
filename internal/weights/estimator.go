package weights

import (
	"fmt"
	"os"

	"cpr/internal/domain"

	"github.com/fatih/color"
)

// Estimator turns spec files into weighted specs. Weight is a proxy for
// expected execution cost: the base weight when a file has no active
// cases, otherwise base + perTest for every active case.
type Estimator struct {
	base    int
	perTest int
	parser  Parser
}

// NewEstimator creates a new Estimator
func NewEstimator(base, perTest int, parser Parser) *Estimator {
	if base < 1 {
		base = 1
	}
	if perTest < 0 {
		perTest = 0
	}
	return &Estimator{base: base, perTest: perTest, parser: parser}
}

// EstimateFile reads and parses a single spec file and returns its weight.
func (e *Estimator) EstimateFile(path string) (domain.WeightedSpec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.WeightedSpec{}, fmt.Errorf("read spec %s: %w", path, err)
	}

	nodes, err := e.parser.Parse(string(content))
	if err != nil {
		return domain.WeightedSpec{}, fmt.Errorf("parse spec %s: %w", path, err)
	}

	return domain.WeightedSpec{Path: path, Weight: e.weight(CountActive(nodes))}, nil
}

// Weigh estimates all given spec files. Files that cannot be read or
// parsed are logged and excluded; they never abort the run.
func (e *Estimator) Weigh(paths []string) []domain.WeightedSpec {
	weighted := make([]domain.WeightedSpec, 0, len(paths))
	for _, path := range paths {
		ws, err := e.EstimateFile(path)
		if err != nil {
			color.Yellow("skipping unreadable spec: %v", err)
			continue
		}
		weighted = append(weighted, ws)
	}
	return weighted
}

func (e *Estimator) weight(active int) int {
	if active == 0 {
		return e.base
	}
	return e.base + e.perTest*active
}
