// Package process answers whether the target player is currently running.
package process

import (
	"context"
	"errors"
	"fmt"
	"strings"

	psutil "github.com/shirou/gopsutil/v3/process"
)

// commLimit is the kernel's truncation length for process names (TASK_COMM_LEN - 1).
const commLimit = 15

// Checker scans the process table by executable name.
type Checker struct{}

// Running reports whether any process carries exactly the given name.
func (Checker) Running(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, errors.New("process name must not be empty")
	}

	procs, err := psutil.ProcessesWithContext(ctx)
	if err != nil {
		return false, fmt.Errorf("list processes: %w", err)
	}

	for _, p := range procs {
		procName, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if matchName(procName, name) {
			return true, nil
		}
	}
	return false, nil
}

// matchName compares names exactly, tolerating kernel truncation of long names.
func matchName(procName, want string) bool {
	procName = strings.TrimSpace(procName)
	if procName == want {
		return true
	}
	return len(procName) == commLimit && len(want) > commLimit && strings.HasPrefix(want, procName)
}
