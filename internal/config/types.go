// Package config resolves, parses, validates, and defaults mediakey configuration.
package config

import "github.com/rbright/mediakey/internal/ipc"

// Config is the fully materialized runtime configuration used by mediakey.
type Config struct {
	Player   PlayerConfig
	Fallback map[ipc.Command]FallbackAction
}

// PlayerConfig identifies the player process and its control socket.
type PlayerConfig struct {
	Process   string
	Socket    string
	TimeoutMS int
}

// FallbackKind selects how a fallback action is performed.
type FallbackKind string

const (
	KindKeyCode  FallbackKind = "keycode"
	KindShortcut FallbackKind = "shortcut"
	KindCommand  FallbackKind = "command"
)

// FallbackAction is the automation performed when the player is unreachable.
type FallbackAction struct {
	Kind     FallbackKind
	KeyCode  int
	Shortcut string
	Command  CommandConfig
}

// CommandConfig stores a raw command string and its parsed argv form.
type CommandConfig struct {
	Raw  string
	Argv []string
}

// Warning is a non-fatal parse/validation message.
type Warning struct {
	Line    int
	Message string
}
