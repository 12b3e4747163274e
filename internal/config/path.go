package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// ResolvePath applies CLI/XDG fallback rules for config.jsonc location.
func ResolvePath(explicit string) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		return explicit, nil
	}

	if strings.TrimSpace(xdg.ConfigHome) == "" {
		return "", errors.New("unable to resolve config home")
	}
	return filepath.Join(xdg.ConfigHome, "mediakey", "config.jsonc"), nil
}
