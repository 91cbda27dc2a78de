package execution

import (
	"testing"

	"cpr/internal/domain"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		results  []domain.WorkerResult
		ok       bool
		exitCode int
	}{
		{
			name: "all succeeded",
			results: []domain.WorkerResult{
				{Worker: 0, Status: domain.StatusSucceeded},
				{Worker: 1, Status: domain.StatusSucceeded},
			},
			ok:       true,
			exitCode: 0,
		},
		{
			name: "one failed",
			results: []domain.WorkerResult{
				{Worker: 0, Status: domain.StatusSucceeded},
				{Worker: 1, Status: domain.StatusFailed, ExitCode: 1},
			},
			ok:       false,
			exitCode: 1,
		},
		{
			name: "errored counts like failed",
			results: []domain.WorkerResult{
				{Worker: 0, Status: domain.StatusErrored, ExitCode: -1},
			},
			ok:       false,
			exitCode: 1,
		},
		{
			name:     "no workers",
			results:  nil,
			ok:       true,
			exitCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.results)
			if summary.OK() != tt.ok {
				t.Errorf("OK() = %v, want %v", summary.OK(), tt.ok)
			}
			if summary.ExitCode() != tt.exitCode {
				t.Errorf("ExitCode() = %d, want %d", summary.ExitCode(), tt.exitCode)
			}
		})
	}
}

func TestSummarize_CollectsFailedSpecs(t *testing.T) {
	results := []domain.WorkerResult{
		{Worker: 0, Status: domain.StatusFailed, FailedSpecs: []string{"a_spec.js"}},
		{Worker: 1, Status: domain.StatusSucceeded},
		{Worker: 2, Status: domain.StatusFailed, FailedSpecs: []string{"b_spec.js", "c_spec.js"}},
	}

	summary := Summarize(results)
	if summary.Failed != 2 || summary.Succeeded != 1 {
		t.Errorf("unexpected counts: %+v", summary)
	}
	if len(summary.FailedSpecs) != 3 {
		t.Errorf("expected 3 failed specs, got %v", summary.FailedSpecs)
	}
}
