package ui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"cpr/internal/config"
	"cpr/internal/domain"
)

// Formatter formats and displays run output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintPlan prints the weighted specs and their bucket assignments
// without executing anything (--list in weighted mode).
func (f *Formatter) PrintPlan(weighted []domain.WeightedSpec, buckets []domain.Bucket) {
	color.Green("Found %d spec file(s):\n", len(weighted))
	for i, ws := range weighted {
		prefix := "├──"
		if i == len(weighted)-1 {
			prefix = "└──"
		}
		color.Cyan("%s %s %s", prefix, f.relPath(ws.Path), color.WhiteString("(weight %d)", ws.Weight))
	}

	fmt.Println()
	for i, bucket := range buckets {
		if bucket.Empty() {
			color.Yellow("worker %d: empty bucket", i)
			continue
		}
		color.Cyan("worker %d: %d spec(s), weight %d", i, len(bucket.Specs), bucket.Weight)
		for _, spec := range bucket.Specs {
			fmt.Printf("    %s\n", f.relPath(spec))
		}
	}
}

// PrintQueue prints the polling-mode plan (--list in polling mode).
func (f *Formatter) PrintQueue(specs []string, workers int) {
	color.Green("Found %d spec file(s), %d polling worker(s):\n", len(specs), workers)
	for i, spec := range specs {
		prefix := "├──"
		if i == len(specs)-1 {
			prefix = "└──"
		}
		color.Cyan("%s %s", prefix, f.relPath(spec))
	}
}

// PrintSummary prints one line per worker and the overall verdict.
func (f *Formatter) PrintSummary(results []domain.WorkerResult, failedSpecs []string, total int, duration time.Duration) {
	fmt.Println()
	failed := 0
	for _, r := range results {
		switch r.Status {
		case domain.StatusSucceeded:
			color.Green("worker %d: succeeded", r.Worker)
		case domain.StatusErrored:
			failed++
			color.Red("worker %d: errored", r.Worker)
		default:
			failed++
			color.Red("worker %d: failed (exit code %d)", r.Worker, r.ExitCode)
		}
	}

	if len(failedSpecs) > 0 {
		fmt.Println()
		color.Red("Failed spec(s):")
		for _, spec := range failedSpecs {
			color.Red("  %s", f.relPath(spec))
		}
	}

	fmt.Println()
	if failed == 0 {
		color.Green("✓ %d spec(s) across %d worker(s) passed in %.2fs", total, len(results), duration.Seconds())
	} else {
		color.Red("✗ %d of %d worker(s) failed (%d spec(s), %.2fs)", failed, len(results), total, duration.Seconds())
	}
}

func (f *Formatter) relPath(path string) string {
	rel, err := filepath.Rel(f.config.ProjectPath, path)
	if err != nil {
		return path
	}
	return rel
}
