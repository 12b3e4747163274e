package ipc

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"golang.org/x/sys/unix"
)

// DefaultSocketTemplate is where ncspot places its control socket outside XDG runtime dirs.
const DefaultSocketTemplate = "/tmp/ncspot-{uid}/ncspot.sock"

// PathVars holds the values substituted into a socket path template.
type PathVars struct {
	UID        int
	RuntimeDir string
}

// CurrentPathVars resolves placeholder values for the invoking user.
func CurrentPathVars() PathVars {
	return PathVars{UID: unix.Getuid(), RuntimeDir: xdg.RuntimeDir}
}

// SocketPath expands {uid} and {runtime_dir} in template.
func SocketPath(template string, vars PathVars) (string, error) {
	template = strings.TrimSpace(template)
	if template == "" {
		return "", errors.New("socket path template must not be empty")
	}

	if strings.Contains(template, "{runtime_dir}") {
		runtimeDir := strings.TrimSpace(vars.RuntimeDir)
		if runtimeDir == "" {
			return "", errors.New("socket path uses {runtime_dir} but no runtime directory is available")
		}
		template = strings.ReplaceAll(template, "{runtime_dir}", runtimeDir)
	}
	path := strings.ReplaceAll(template, "{uid}", strconv.Itoa(vars.UID))

	if open := strings.Index(path, "{"); open >= 0 {
		if end := strings.Index(path[open:], "}"); end > 0 {
			return "", fmt.Errorf("socket path has unknown placeholder %s", path[open:open+end+1])
		}
	}
	if !filepath.IsAbs(path) {
		return "", fmt.Errorf("socket path must be absolute: %q", path)
	}
	return filepath.Clean(path), nil
}

// IsSocket reports whether path exists and is a unix socket inode.
func IsSocket(path string) bool {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false
	}
	return st.Mode&unix.S_IFMT == unix.S_IFSOCK
}
