// Package automation performs OS-level fallback actions when the player socket is unavailable.
package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rbright/mediakey/internal/config"
	"github.com/rbright/mediakey/internal/ipc"
)

// Runner executes the configured fallback action for a media command.
type Runner struct {
	actions map[ipc.Command]config.FallbackAction
	logger  *slog.Logger
}

// NewRunner constructs a fallback runner from the configured action table.
func NewRunner(actions map[ipc.Command]config.FallbackAction, logger *slog.Logger) *Runner {
	return &Runner{actions: actions, logger: logger}
}

// Run performs the fallback for cmd once; failures are returned, never retried.
func (r *Runner) Run(ctx context.Context, cmd ipc.Command) error {
	action, ok := r.actions[cmd]
	if !ok {
		return fmt.Errorf("no fallback configured for %q", cmd)
	}

	argv, err := Argv(action)
	if err != nil {
		return fmt.Errorf("fallback for %q: %w", cmd, err)
	}

	if r.logger != nil {
		r.logger.Debug("running fallback", "command", cmd, "kind", action.Kind, "argv", argv)
	}
	return run(ctx, argv)
}

// Argv renders the external command line for a fallback action.
func Argv(action config.FallbackAction) ([]string, error) {
	switch action.Kind {
	case config.KindKeyCode:
		return []string{"osascript", "-e", keyCodeScript(action.KeyCode)}, nil
	case config.KindShortcut:
		name := strings.TrimSpace(action.Shortcut)
		if name == "" {
			return nil, errors.New("shortcut name must not be empty")
		}
		return []string{"shortcuts", "run", name}, nil
	case config.KindCommand:
		if len(action.Command.Argv) == 0 {
			return nil, errors.New("command argv must not be empty")
		}
		return append([]string(nil), action.Command.Argv...), nil
	default:
		return nil, fmt.Errorf("unsupported fallback kind %q", action.Kind)
	}
}

// ExitCode extracts the child exit status from a fallback error, if any.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode(), true
	}
	return 0, false
}

func keyCodeScript(code int) string {
	return `tell application "System Events" to key code ` + strconv.Itoa(code)
}

func run(ctx context.Context, argv []string) error {
	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).CombinedOutput()
	if err != nil {
		trimmed := strings.TrimSpace(string(out))
		if trimmed == "" {
			return fmt.Errorf("%s %v failed: %w", argv[0], argv[1:], err)
		}
		return fmt.Errorf("%s %v failed: %w (%s)", argv[0], argv[1:], err, trimmed)
	}
	return nil
}
