package config

import (
	"os"
	"path/filepath"
)

// rootMarkers end the upward search: a config file above a project root does not apply to it
var rootMarkers = []string{
	"package.json",
	".git",
}

// Discover searches startPath and its ancestors for the config file, stopping at the first
// project root. It returns an empty string when no config file applies.
func Discover(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", err
	}
	dir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return "", err
	}
	if !fileInfo.IsDir() {
		dir = filepath.Dir(absPath)
	}

	for {
		candidate := filepath.Join(dir, Filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		if isProjectRoot(dir) {
			return "", nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isProjectRoot(dir string) bool {
	for _, marker := range rootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
