package execution

import (
	"context"
	"sort"
	"sync"

	"cpr/internal/config"
	"cpr/internal/domain"
	"cpr/internal/scheduling"
	"cpr/internal/ui"

	"github.com/fatih/color"
)

// Pool drives the worker processes for a run. One instance handles both
// distribution modes; every worker runs to a terminal state and a
// failure never cancels its siblings.
type Pool struct {
	config   *config.Config
	runner   *Runner
	progress *ui.ProgressBar
}

// NewPool creates a new Pool
func NewPool(cfg *config.Config, runner *Runner) *Pool {
	return &Pool{config: cfg, runner: runner}
}

// SetProgress sets the progress bar for the pool
func (p *Pool) SetProgress(progress *ui.ProgressBar) {
	p.progress = progress
}

// RunBuckets executes weighted-bucketing mode: one runner process per
// non-empty bucket, all concurrent, each worker covering its whole
// bucket in a single invocation.
func (p *Pool) RunBuckets(ctx context.Context, buckets []domain.Bucket) []domain.WorkerResult {
	var mu sync.Mutex
	var results []domain.WorkerResult
	var passedSpecs, failedSpecs int

	var wg sync.WaitGroup
	for i, bucket := range buckets {
		if bucket.Empty() {
			continue
		}
		wg.Add(1)
		go func(worker int, bucket domain.Bucket) {
			defer wg.Done()

			result := p.runWorkerBucket(ctx, worker, bucket)

			mu.Lock()
			results = append(results, result)
			if result.Failed() {
				failedSpecs += len(bucket.Specs)
			} else {
				passedSpecs += len(bucket.Specs)
			}
			if p.progress != nil {
				p.progress.Update(passedSpecs, failedSpecs)
			}
			mu.Unlock()
		}(i, bucket)
	}

	wg.Wait()
	if p.progress != nil {
		p.progress.Finish()
	}

	sortResults(results)
	return results
}

func (p *Pool) runWorkerBucket(ctx context.Context, worker int, bucket domain.Bucket) domain.WorkerResult {
	display, err := p.startDisplay(worker)
	if err != nil {
		color.Red("worker %d: %v", worker, err)
		return domain.WorkerResult{Worker: worker, Status: domain.StatusErrored, ExitCode: -1}
	}
	defer display.Stop()

	inv := p.runner.Run(ctx, bucket.Specs, worker)
	p.logInvocation(worker, bucket.Specs, inv)

	result := domain.WorkerResult{Worker: worker, ExitCode: inv.ExitCode}
	switch {
	case inv.OK():
		result.Status = domain.StatusSucceeded
	case inv.Errored:
		result.Status = domain.StatusErrored
	default:
		result.Status = domain.StatusFailed
	}
	return result
}

// RunPolling executes polling mode: min(workers, len(specs)) persistent
// worker loops pull one spec at a time from a shared queue until it is
// empty, one runner process per spec.
func (p *Pool) RunPolling(ctx context.Context, specs []string) []domain.WorkerResult {
	workers := p.config.Workers
	if workers > len(specs) {
		workers = len(specs)
	}
	if workers < 1 {
		workers = 1
	}

	queue := scheduling.NewQueue(specs)

	var mu sync.Mutex
	var results []domain.WorkerResult
	var passedSpecs, failedSpecs int

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()

			result := p.runWorkerPolling(ctx, worker, queue, func(ok bool) {
				mu.Lock()
				if ok {
					passedSpecs++
				} else {
					failedSpecs++
				}
				if p.progress != nil {
					p.progress.Update(passedSpecs, failedSpecs)
				}
				mu.Unlock()
			})

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(i)
	}

	wg.Wait()
	if p.progress != nil {
		p.progress.Finish()
	}

	sortResults(results)
	return results
}

func (p *Pool) runWorkerPolling(ctx context.Context, worker int, queue *scheduling.Queue, tick func(ok bool)) domain.WorkerResult {
	result := domain.WorkerResult{Worker: worker, Status: domain.StatusSucceeded}

	display, err := p.startDisplay(worker)
	if err != nil {
		color.Red("worker %d: %v", worker, err)
		result.Status = domain.StatusErrored
		result.ExitCode = -1
		return result
	}
	defer display.Stop()

	for {
		spec, ok := queue.Pop()
		if !ok {
			return result
		}

		inv := p.runner.Run(ctx, []string{spec}, worker)
		p.logInvocation(worker, []string{spec}, inv)
		tick(inv.OK())

		if inv.OK() {
			continue
		}
		result.FailedSpecs = append(result.FailedSpecs, spec)
		result.ExitCode = inv.ExitCode
		// Errored is sticky over Failed so abnormal kills stay visible.
		if inv.Errored {
			result.Status = domain.StatusErrored
		} else if result.Status != domain.StatusErrored {
			result.Status = domain.StatusFailed
		}
	}
}

// startDisplay provisions the worker's virtual display when enabled.
func (p *Pool) startDisplay(worker int) (*Display, error) {
	if !p.config.VirtualDisplay {
		return nil, nil
	}
	return StartDisplay(p.config.DisplayNumber(worker))
}

func (p *Pool) logInvocation(worker int, specs []string, inv Invocation) {
	if !p.config.Verbose {
		return
	}
	switch {
	case inv.OK():
		color.Green("worker %d: %d spec(s) passed", worker, len(specs))
	case inv.Errored:
		color.Red("worker %d: runner error: %v", worker, inv.Err)
	default:
		color.Red("worker %d: run failed with exit code %d", worker, inv.ExitCode)
	}
}

func sortResults(results []domain.WorkerResult) {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Worker < results[j].Worker
	})
}
