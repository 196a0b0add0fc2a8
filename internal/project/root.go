package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FindTangentToml walks up from startDir to locate tangent.toml.
func FindTangentToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "tangent.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadFromDir finds and loads the nearest tangent.toml above startDir.
// Returns the defaults and an empty path when there is none.
func LoadFromDir(startDir string) (Config, string, error) {
	path, ok, err := FindTangentToml(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return DefaultConfig(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}
