package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveLogDir derives a usable directory for file-based handlers from
// a candidate path relative to the current working directory.
//
// When the candidate is empty, or cwd/candidate does not exist, the
// fallback directory cwd/logs is created if missing and returned. An
// existing cwd/candidate is returned as-is; only the fallback branch
// verifies anything on disk. A failure to create the fallback directory
// is a fatal configuration error.
func ResolveLogDir(candidate string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving log path: %w", err)
	}

	if candidate != "" {
		p := filepath.Join(cwd, candidate)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	dir := filepath.Join(cwd, "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("resolving log path: %w", err)
	}
	return dir, nil
}
