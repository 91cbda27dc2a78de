package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultSpecPath is the default directory searched for spec files
	DefaultSpecPath = "cypress/integration"
	// DefaultRunnerCommand is the default external test-runner invocation
	DefaultRunnerCommand = "cypress run"
	// DefaultMode is the default distribution mode
	DefaultMode = ModeWeighted
	// DefaultBaseWeight is the weight of a spec file with no active cases
	DefaultBaseWeight = 1
	// DefaultWeightPerTest is the weight added per active test case
	DefaultWeightPerTest = 1
	// DefaultDisplayBase is the first virtual display number handed to workers
	DefaultDisplayBase = 99
	// DefaultOutputJSONFile is the default results file name
	DefaultOutputJSONFile = "run-results.json"
	// DefaultOutputJSONDir is the default results directory
	DefaultOutputJSONDir = ".cpr"
)

// DefaultPathsToIgnore are the default directories skipped when
// scanning for spec files.
var DefaultPathsToIgnore = []string{
	"node_modules",
	"fixtures",
	"support",
	"plugins",
	"screenshots",
	"videos",
	"downloads",
}

// Distribution modes.
const (
	// ModeWeighted partitions specs into balanced buckets up front,
	// one runner invocation per bucket.
	ModeWeighted = "weighted"
	// ModePolling has workers pull one spec at a time from a shared
	// queue, one runner invocation per spec.
	ModePolling = "polling"
)
