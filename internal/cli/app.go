package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"cpr/internal/config"
	"cpr/internal/discovery"
	"cpr/internal/domain"
	"cpr/internal/execution"
	"cpr/internal/isolation"
	"cpr/internal/scheduling"
	"cpr/internal/storage"
	"cpr/internal/ui"
	"cpr/internal/weights"
)

// ErrRunFailed marks a run where workers failed. The verdict has
// already been printed when it is returned; main only maps it to the
// process exit code.
var ErrRunFailed = errors.New("one or more workers failed")

// App wires all components of a run together.
type App struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	estimator *weights.Estimator
	scheduler scheduling.Scheduler
	pool      *execution.Pool
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    *ui.FailureViewer
	databases *isolation.DatabaseManager
}

// NewApp creates an App with all dependencies
func NewApp(cfg *config.Config) *App {
	runner := execution.NewRunner(cfg)
	return &App{
		config:    cfg,
		scanner:   discovery.NewScanner(cfg.PathsToIgnore),
		filter:    discovery.NewFilter(),
		estimator: weights.NewEstimator(cfg.BaseWeight, cfg.WeightPerTest, weights.NewMochaScanner()),
		scheduler: scheduling.NewWeightedScheduler(),
		pool:      execution.NewPool(cfg, runner),
		storage:   storage.NewJSONStorage(cfg),
		formatter: ui.NewFormatter(cfg),
		viewer:    ui.NewFailureViewer(cfg),
		databases: isolation.NewDatabaseManager(cfg),
	}
}

// Execute runs the whole pipeline: discover, distribute, execute, aggregate.
func (a *App) Execute(ctx context.Context) error {
	if a.config.Flags.Failures {
		output, err := a.storage.Load()
		if err != nil {
			return err
		}
		return a.viewer.View(output)
	}

	switch a.config.Mode {
	case config.ModeWeighted, config.ModePolling:
	default:
		return fmt.Errorf("unknown distribution mode %q", a.config.Mode)
	}

	specs, err := a.scanner.Scan(a.config.GetSpecPath())
	if err != nil {
		return err
	}
	specs = a.filter.FilterByName(specs, a.config.Flags.NameFilter)
	if len(specs) == 0 {
		return fmt.Errorf("%w matching %q", discovery.ErrNoSpecsFound, a.config.Flags.NameFilter)
	}

	if a.config.ProvisionDB && !a.config.Flags.List {
		if err := a.databases.EnsureDatabases(a.config.Workers); err != nil {
			return fmt.Errorf("database provisioning: %w", err)
		}
	}

	if a.config.Mode == config.ModeWeighted {
		return a.runWeighted(ctx, specs)
	}
	return a.runPolling(ctx, specs)
}

func (a *App) runWeighted(ctx context.Context, specs []string) error {
	weighted := a.estimator.Weigh(specs)
	if len(weighted) == 0 {
		return fmt.Errorf("%w: every discovered file was excluded during weighting", discovery.ErrNoSpecsFound)
	}

	buckets := a.scheduler.Schedule(weighted, a.config.Workers)

	if a.config.Flags.List {
		a.formatter.PrintPlan(weighted, buckets)
		return nil
	}

	a.pool.SetProgress(ui.NewProgressBar(len(weighted)))
	start := time.Now()
	results := a.pool.RunBuckets(ctx, buckets)
	return a.finish(results, len(weighted), time.Since(start))
}

func (a *App) runPolling(ctx context.Context, specs []string) error {
	workers := a.config.Workers
	if workers > len(specs) {
		workers = len(specs)
	}

	if a.config.Flags.List {
		a.formatter.PrintQueue(specs, workers)
		return nil
	}

	a.pool.SetProgress(ui.NewProgressBar(len(specs)))
	start := time.Now()
	results := a.pool.RunPolling(ctx, specs)
	return a.finish(results, len(specs), time.Since(start))
}

// finish aggregates, persists and reports the run; the returned error
// carries the failure verdict to the exit code.
func (a *App) finish(results []domain.WorkerResult, total int, duration time.Duration) error {
	summary := execution.Summarize(results)

	if err := a.storage.Save(results, summary.FailedSpecs, total, a.config.Mode, duration, a.config.Workers); err != nil {
		color.Yellow("failed to save run results: %v", err)
	}

	a.formatter.PrintSummary(results, summary.FailedSpecs, total, duration)

	if !summary.OK() {
		return ErrRunFailed
	}
	return nil
}
