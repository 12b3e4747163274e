package config

import "github.com/rbright/mediakey/internal/ipc"

// macOS virtual key codes for F7/F9, which carry the rewind/fast-forward media glyphs.
const (
	keyCodePrevious = 98
	keyCodeNext     = 101
)

// Default returns the canonical runtime configuration used when no file is present.
func Default() Config {
	return Config{
		Player: PlayerConfig{
			Process:   "ncspot",
			Socket:    ipc.DefaultSocketTemplate,
			TimeoutMS: 500,
		},
		Fallback: map[ipc.Command]FallbackAction{
			ipc.CommandPrevious:  {Kind: KindKeyCode, KeyCode: keyCodePrevious},
			ipc.CommandPlayPause: {Kind: KindShortcut, Shortcut: "Play/Pause"},
			ipc.CommandNext:      {Kind: KindKeyCode, KeyCode: keyCodeNext},
		},
	}
}
