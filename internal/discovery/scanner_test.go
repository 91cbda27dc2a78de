package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "cpr-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	specFiles := []string{
		"auth/login_spec.js",
		"auth/logout_spec.js",
		"checkout/payment_spec.js",
		"fixtures/users.json",
		"node_modules/lib/index.js",
		".hidden/skipped_spec.js",
	}
	for _, file := range specFiles {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", file, err)
		}
		if err := os.WriteFile(fullPath, []byte("spec"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"node_modules"})

	t.Run("returns every regular file outside skipped dirs", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Skips node_modules and hidden dirs, keeps everything else
		// including non-js files (filtering is the Filter's job).
		if len(results) != 4 {
			t.Errorf("expected 4 files, got %d: %v", len(results), results)
		}
	})

	t.Run("traversal order is stable", func(t *testing.T) {
		first, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first) != len(second) {
			t.Fatalf("scan lengths differ: %d vs %d", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("order differs at %d: %s vs %s", i, first[i], second[i])
			}
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan("/non/existent/path")
		if !errors.Is(err, ErrDirectoryNotFound) {
			t.Errorf("expected ErrDirectoryNotFound, got %v", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		specFile := filepath.Join(tmpDir, "auth", "login_spec.js")
		_, err := scanner.Scan(specFile)
		if !errors.Is(err, ErrNotADirectory) {
			t.Errorf("expected ErrNotADirectory, got %v", err)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		empty := filepath.Join(tmpDir, "empty")
		if err := os.MkdirAll(empty, 0755); err != nil {
			t.Fatal(err)
		}
		_, err := scanner.Scan(empty)
		if !errors.Is(err, ErrNoSpecsFound) {
			t.Errorf("expected ErrNoSpecsFound, got %v", err)
		}
	})
}
