package execution

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"cpr/internal/config"
)

// Invocation is the outcome of one runner process.
type Invocation struct {
	ExitCode int
	Err      error
	// Errored marks spawn failures and abnormal kills (signal, timeout),
	// as opposed to a clean nonzero exit.
	Errored bool
}

// OK reports whether the process ran and exited 0.
func (i Invocation) OK() bool {
	return !i.Errored && i.ExitCode == 0
}

// Runner spawns the external test-runner command for a set of spec files.
type Runner struct {
	config *config.Config
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{config: cfg}
}

// Run invokes the runner command as `<command> --spec "<paths>"` with
// the paths comma-joined, in the project directory, with the worker's
// environment applied. When a timeout is configured the child is killed
// on expiry and the invocation comes back errored.
func (r *Runner) Run(ctx context.Context, specs []string, worker int) Invocation {
	parts := strings.Fields(r.config.RunnerCommand)
	if len(parts) == 0 {
		return Invocation{ExitCode: -1, Errored: true, Err: errors.New("empty runner command")}
	}

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	args := append(parts[1:], "--spec", strings.Join(specs, ","))
	cmd := exec.CommandContext(ctx, parts[0], args...)
	cmd.Dir = r.config.ProjectPath
	cmd.Env = r.workerEnv(worker)

	if r.config.Passthrough {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return Invocation{ExitCode: 0}
	}

	// A context kill is abnormal termination regardless of what wait
	// reported for the child.
	if ctx.Err() != nil {
		return Invocation{ExitCode: -1, Errored: true, Err: fmt.Errorf("runner killed: %w", ctx.Err())}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			return Invocation{ExitCode: -1, Errored: true, Err: err}
		}
		return Invocation{ExitCode: code, Err: err}
	}

	return Invocation{ExitCode: -1, Errored: true, Err: fmt.Errorf("spawn runner: %w", err)}
}

// workerEnv builds the child environment: the parent's, plus the
// worker's virtual display and isolated database when enabled.
func (r *Runner) workerEnv(worker int) []string {
	env := os.Environ()
	if r.config.VirtualDisplay {
		env = append(env, fmt.Sprintf("DISPLAY=:%d", r.config.DisplayNumber(worker)))
	}
	if r.config.ProvisionDB {
		env = append(env, fmt.Sprintf("DB_DATABASE=%s", r.config.DatabaseName(worker)))
	}
	return env
}
