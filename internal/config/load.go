package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Loaded captures resolved config path, parsed values, and non-fatal warnings.
type Loaded struct {
	Path     string
	Config   Config
	Warnings []Warning
	Exists   bool
}

// Load resolves, reads, parses, and validates the runtime configuration.
// A missing file at the XDG location is not an error: defaults apply and a
// warning is recorded. A missing explicit path is an error.
func Load(explicitPath string) (Loaded, error) {
	resolvedPath, err := ResolvePath(explicitPath)
	if err != nil {
		return Loaded{}, err
	}

	content, err := os.ReadFile(resolvedPath)
	if errors.Is(err, os.ErrNotExist) && strings.TrimSpace(explicitPath) != "" {
		return Loaded{}, fmt.Errorf("config file %q not found", resolvedPath)
	}
	if errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		warnings, validateErr := Validate(cfg)
		if validateErr != nil {
			return Loaded{}, validateErr
		}
		return Loaded{
			Path:     resolvedPath,
			Config:   cfg,
			Warnings: append([]Warning{{Message: fmt.Sprintf("config file %q not found; using defaults", resolvedPath)}}, warnings...),
		}, nil
	}
	if err != nil {
		return Loaded{}, fmt.Errorf("read config %q: %w", resolvedPath, err)
	}

	cfg, warnings, err := Parse(string(content), Default())
	if err != nil {
		return Loaded{}, fmt.Errorf("parse config %q: %w", resolvedPath, err)
	}

	return Loaded{
		Path:     resolvedPath,
		Config:   cfg,
		Warnings: warnings,
		Exists:   true,
	}, nil
}
