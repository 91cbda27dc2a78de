package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	SpecPath    string

	// Runner settings
	RunnerCommand string
	Passthrough   bool
	Timeout       time.Duration

	// Distribution settings
	Mode          string
	Workers       int
	BaseWeight    int
	WeightPerTest int

	// Worker environment
	DisplayBase    int
	VirtualDisplay bool
	ProvisionDB    bool

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string
	Verbose        bool

	// Command flags
	Flags Flags
}

// Flags holds command-line flag overrides
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

// New creates a new Config with defaults, overridden by environment
// variables. A .env file in the project directory is honored when present.
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		SpecPath:       DefaultSpecPath,
		RunnerCommand:  DefaultRunnerCommand,
		Mode:           DefaultMode,
		Workers:        runtime.NumCPU(),
		BaseWeight:     DefaultBaseWeight,
		WeightPerTest:  DefaultWeightPerTest,
		DisplayBase:    DefaultDisplayBase,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	cfg.applyEnv()
	return cfg
}

// Load creates a config and applies flag overrides on top of the environment.
func Load(flags Flags) *Config {
	cfg := New()
	cfg.Flags = flags

	if flags.Workers > 0 {
		cfg.Workers = flags.Workers
	}
	if flags.Mode != "" {
		cfg.Mode = flags.Mode
	}
	if flags.Runner != "" {
		cfg.RunnerCommand = flags.Runner
	}
	if flags.Timeout > 0 {
		cfg.Timeout = flags.Timeout
	}
	if flags.Verbose {
		cfg.Verbose = true
	}
	if flags.Passthrough {
		cfg.Passthrough = true
	}
	if flags.Xvfb {
		cfg.VirtualDisplay = true
	}
	if flags.ProvisionDB {
		cfg.ProvisionDB = true
	}

	// A request for more workers than the host has logical CPUs is
	// clamped rather than rejected.
	if max := runtime.NumCPU(); cfg.Workers > max {
		cfg.Workers = max
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg
}

// applyEnv loads .env from the project directory and applies CPR_*
// environment variables over the defaults.
func (c *Config) applyEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if v := os.Getenv("CPR_PROJECT_PATH"); v != "" {
		c.ProjectPath = v
	}
	if v := os.Getenv("CPR_SPEC_PATH"); v != "" {
		c.SpecPath = v
	}
	if v := os.Getenv("CPR_RUNNER"); v != "" {
		c.RunnerCommand = v
	}
	if v := os.Getenv("CPR_MODE"); v != "" {
		c.Mode = v
	}
	if n, ok := envInt("CPR_WORKERS"); ok {
		c.Workers = n
	}
	if n, ok := envInt("CPR_BASE_WEIGHT"); ok {
		c.BaseWeight = n
	}
	if n, ok := envInt("CPR_WEIGHT_PER_TEST"); ok {
		c.WeightPerTest = n
	}
	if n, ok := envInt("CPR_DISPLAY_BASE"); ok {
		c.DisplayBase = n
	}
	if v := os.Getenv("CPR_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
	c.VirtualDisplay = c.VirtualDisplay || envBool("CPR_XVFB")
	c.ProvisionDB = c.ProvisionDB || envBool("CPR_PROVISION_DB")
	c.Verbose = c.Verbose || envBool("CPR_VERBOSE")
	c.Passthrough = c.Passthrough || envBool("CPR_PASSTHROUGH")
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func envBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// GetSpecPath returns the spec directory, using the flag if provided
func (c *Config) GetSpecPath() string {
	if c.Flags.SpecPath != "" {
		if filepath.IsAbs(c.Flags.SpecPath) {
			return c.Flags.SpecPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.SpecPath)
	}
	if filepath.IsAbs(c.SpecPath) {
		return c.SpecPath
	}
	return filepath.Join(c.ProjectPath, c.SpecPath)
}

// GetOutputPath returns the full path to the results JSON file, resolved
// to an absolute path so run and --failures always use the same file
// regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// DisplayNumber returns the virtual display number for a worker.
func (c *Config) DisplayNumber(worker int) int {
	return c.DisplayBase + worker
}

// DatabaseName returns the isolated database name for a worker.
func (c *Config) DatabaseName(worker int) string {
	prefix := os.Getenv("DB_DATABASE_PREFIX")
	if prefix == "" {
		prefix = "testing"
	}
	return fmt.Sprintf("%s_%d", prefix, worker)
}
