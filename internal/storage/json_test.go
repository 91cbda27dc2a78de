package storage

import (
	"os"
	"testing"
	"time"

	"cpr/internal/config"
	"cpr/internal/domain"
)

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cpr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := &config.Config{
		ProjectPath:    tmpDir,
		OutputJSONDir:  ".cpr",
		OutputJSONFile: "run-results.json",
	}
	st := NewJSONStorage(cfg)

	results := []domain.WorkerResult{
		{Worker: 0, Status: domain.StatusSucceeded},
		{Worker: 1, Status: domain.StatusFailed, ExitCode: 1, FailedSpecs: []string{"fail_spec.js"}},
	}

	if err := st.Save(results, []string{"fail_spec.js"}, 5, config.ModePolling, 90*time.Second, 2); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if output.Meta.TotalSpecs != 5 {
		t.Errorf("expected 5 total specs, got %d", output.Meta.TotalSpecs)
	}
	if output.Meta.FailedWorkers != 1 {
		t.Errorf("expected 1 failed worker, got %d", output.Meta.FailedWorkers)
	}
	if output.Meta.Mode != config.ModePolling {
		t.Errorf("expected polling mode, got %s", output.Meta.Mode)
	}
	if output.Meta.DurationSeconds != 90 {
		t.Errorf("expected 90s duration, got %f", output.Meta.DurationSeconds)
	}
	if len(output.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(output.Results))
	}
	if output.Results[1].Status != domain.StatusFailed {
		t.Errorf("expected failed status, got %s", output.Results[1].Status)
	}
	if len(output.FailedSpecs) != 1 || output.FailedSpecs[0] != "fail_spec.js" {
		t.Errorf("unexpected failed specs: %v", output.FailedSpecs)
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cpr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := &config.Config{
		ProjectPath:    tmpDir,
		OutputJSONDir:  ".cpr",
		OutputJSONFile: "run-results.json",
	}
	if _, err := NewJSONStorage(cfg).Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}
