package execution

import (
	"cpr/internal/domain"
)

// Summary is the aggregated verdict over all worker results. The run
// fails if any worker failed or errored; this is the single terminal
// decision point of a run.
type Summary struct {
	Results     []domain.WorkerResult
	Succeeded   int
	Failed      int
	Errored     int
	FailedSpecs []string
}

// Summarize combines all worker outcomes.
func Summarize(results []domain.WorkerResult) Summary {
	s := Summary{Results: results}
	for _, r := range results {
		switch r.Status {
		case domain.StatusSucceeded:
			s.Succeeded++
		case domain.StatusErrored:
			s.Errored++
		default:
			s.Failed++
		}
		s.FailedSpecs = append(s.FailedSpecs, r.FailedSpecs...)
	}
	return s
}

// OK reports whether every worker succeeded.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errored == 0
}

// ExitCode is 0 on full success, 1 otherwise.
func (s Summary) ExitCode() int {
	if s.OK() {
		return 0
	}
	return 1
}
