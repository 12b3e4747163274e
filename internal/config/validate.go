package config

import (
	"fmt"
	"strings"

	"github.com/rbright/mediakey/internal/ipc"
)

// maxKeyCode is the upper bound of macOS virtual key codes.
const maxKeyCode = 127

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if strings.TrimSpace(cfg.Player.Process) == "" {
		return nil, fmt.Errorf("player.process must not be empty")
	}
	socket := strings.TrimSpace(cfg.Player.Socket)
	if socket == "" {
		return nil, fmt.Errorf("player.socket must not be empty")
	}
	if cfg.Player.TimeoutMS <= 0 {
		return nil, fmt.Errorf("player.timeout_ms must be > 0")
	}
	if !strings.Contains(socket, "{uid}") && !strings.Contains(socket, "{runtime_dir}") {
		warnings = append(warnings, Warning{Message: fmt.Sprintf("player.socket %q is not scoped to the invoking user", socket)})
	}

	for _, cmd := range ipc.Commands() {
		action, ok := cfg.Fallback[cmd]
		if !ok {
			return nil, fmt.Errorf("fallback.%s is not configured", cmd)
		}
		if err := validateAction(cmd, action); err != nil {
			return nil, err
		}
	}

	return warnings, nil
}

func validateAction(cmd ipc.Command, action FallbackAction) error {
	switch action.Kind {
	case KindKeyCode:
		if action.KeyCode < 0 || action.KeyCode > maxKeyCode {
			return fmt.Errorf("fallback.%s.key_code must be set within 0..%d", cmd, maxKeyCode)
		}
	case KindShortcut:
		if strings.TrimSpace(action.Shortcut) == "" {
			return fmt.Errorf("fallback.%s.shortcut must not be empty when kind=shortcut", cmd)
		}
	case KindCommand:
		if len(action.Command.Argv) == 0 {
			return fmt.Errorf("fallback.%s.command must not be empty when kind=command", cmd)
		}
	default:
		return fmt.Errorf("fallback.%s.kind must be one of: keycode, shortcut, command", cmd)
	}
	return nil
}
