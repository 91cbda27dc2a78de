package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for discovery failures. All of them are fatal: no
// workers are spawned once any of these is returned.
var (
	ErrDirectoryNotFound = errors.New("spec directory does not exist")
	ErrNotADirectory     = errors.New("spec path is not a directory")
	ErrNoSpecsFound      = errors.New("no spec files found")
)

// Scanner scans for spec files in a directory
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a new Scanner with the given directories to skip
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all files under the given root directory. Every regular
// file is a candidate; narrowing to particular names is left to the
// Filter. Traversal order is the directory order of filepath.WalkDir,
// stable for an unchanged tree.
func (s *Scanner) Scan(root string) ([]string, error) {
	var specs []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, root)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}

			if s.skipDirs[name] {
				return filepath.SkipDir
			}

			return nil
		}

		if d.Type().IsRegular() {
			specs = append(specs, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("%w under %s", ErrNoSpecsFound, root)
	}

	return specs, nil
}
