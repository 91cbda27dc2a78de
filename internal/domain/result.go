package domain

// Status is the terminal state of a worker.
type Status string

const (
	// StatusSucceeded means every runner invocation the worker made exited 0.
	StatusSucceeded Status = "succeeded"
	// StatusFailed means at least one runner invocation exited nonzero.
	StatusFailed Status = "failed"
	// StatusErrored means a runner process could not be spawned or was
	// killed abnormally (timeout, signal). Aggregated like a failure but
	// reported distinctly.
	StatusErrored Status = "errored"
)

// WorkerResult is the outcome of one worker: a single bucket invocation
// in weighted mode, or a whole queue-draining lifetime in polling mode.
type WorkerResult struct {
	Worker      int      `json:"worker"`
	Status      Status   `json:"status"`
	ExitCode    int      `json:"exit_code"` // -1 when no process exit code applies
	FailedSpecs []string `json:"failed_specs,omitempty"`
}

// Failed reports whether the worker's outcome counts against the run.
func (r WorkerResult) Failed() bool {
	return r.Status != StatusSucceeded
}

// RunMeta contains metadata about a run, persisted alongside results.
type RunMeta struct {
	TotalSpecs      int     `json:"total_specs"`
	Workers         int     `json:"workers"`
	FailedWorkers   int     `json:"failed_workers"`
	Mode            string  `json:"mode"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted output of a run.
type RunOutput struct {
	Meta        RunMeta        `json:"meta"`
	Results     []WorkerResult `json:"results"`
	FailedSpecs []string       `json:"failed_specs,omitempty"`
}
