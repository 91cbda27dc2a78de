package cli

import (
	"time"

	"github.com/spf13/cobra"

	"cpr/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Workers     int
	Mode        string
	SpecPath    string
	Runner      string
	NameFilter  string
	Timeout     time.Duration
	Verbose     bool
	Passthrough bool
	List        bool
	Failures    bool
	Xvfb        bool
	ProvisionDB bool
}

// Register registers all flags on the root command. There are no
// subcommands; the run is fully governed by configuration.
func (f *Flags) Register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.Workers, "workers", "w", 0, "Number of worker processes (default: logical CPU count, capped there)")
	cmd.Flags().StringVarP(&f.Mode, "mode", "m", "", "Distribution mode: weighted or polling")
	cmd.Flags().StringVarP(&f.SpecPath, "spec-path", "s", "", "Directory to search for spec files")
	cmd.Flags().StringVarP(&f.Runner, "runner", "r", "", "External test-runner command")
	cmd.Flags().StringVarP(&f.NameFilter, "filter", "f", "", "Filter specs by name pattern (supports wildcards, e.g. '*login*')")
	cmd.Flags().DurationVarP(&f.Timeout, "timeout", "t", 0, "Per-worker runner timeout, e.g. 10m (0 disables)")
	cmd.Flags().BoolVarP(&f.Verbose, "verbose", "v", false, "Log each runner invocation as it resolves")
	cmd.Flags().BoolVar(&f.Passthrough, "passthrough", false, "Inherit the runner's stdout/stderr instead of suppressing it")
	cmd.Flags().BoolVar(&f.List, "list", false, "Print the discovered specs and planned distribution without running")
	cmd.Flags().BoolVar(&f.Failures, "failures", false, "View the last run's failures interactively")
	cmd.Flags().BoolVar(&f.Xvfb, "xvfb", false, "Provision a virtual display per worker")
	cmd.Flags().BoolVar(&f.ProvisionDB, "provision-db", false, "Ensure an isolated database exists per worker")
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:     f.Workers,
		Mode:        f.Mode,
		SpecPath:    f.SpecPath,
		Runner:      f.Runner,
		NameFilter:  f.NameFilter,
		Timeout:     f.Timeout,
		Verbose:     f.Verbose,
		Passthrough: f.Passthrough,
		List:        f.List,
		Failures:    f.Failures,
		Xvfb:        f.Xvfb,
		ProvisionDB: f.ProvisionDB,
	}
}
