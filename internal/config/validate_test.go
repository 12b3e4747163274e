package config

import (
	"testing"

	"github.com/rbright/mediakey/internal/ipc"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	warnings, err := Validate(Default())
	require.NoError(t, err)
	require.Empty(t, warnings)
}

func TestValidateRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "empty process", mutate: func(c *Config) { c.Player.Process = " " }, wantErr: "player.process"},
		{name: "empty socket", mutate: func(c *Config) { c.Player.Socket = "" }, wantErr: "player.socket"},
		{name: "zero timeout", mutate: func(c *Config) { c.Player.TimeoutMS = 0 }, wantErr: "player.timeout_ms"},
		{name: "missing fallback", mutate: func(c *Config) { delete(c.Fallback, ipc.CommandPlayPause) }, wantErr: "fallback.playpause is not configured"},
		{name: "unset key code", mutate: func(c *Config) {
			c.Fallback[ipc.CommandPrevious] = FallbackAction{Kind: KindKeyCode, KeyCode: -1}
		}, wantErr: "fallback.previous.key_code"},
		{name: "key code out of range", mutate: func(c *Config) {
			c.Fallback[ipc.CommandNext] = FallbackAction{Kind: KindKeyCode, KeyCode: 300}
		}, wantErr: "fallback.next.key_code"},
		{name: "empty shortcut", mutate: func(c *Config) {
			c.Fallback[ipc.CommandPlayPause] = FallbackAction{Kind: KindShortcut}
		}, wantErr: "fallback.playpause.shortcut"},
		{name: "empty command", mutate: func(c *Config) {
			c.Fallback[ipc.CommandNext] = FallbackAction{Kind: KindCommand, Command: CommandConfig{Raw: "# disabled"}}
		}, wantErr: "fallback.next.command"},
		{name: "unknown kind", mutate: func(c *Config) {
			c.Fallback[ipc.CommandPrevious] = FallbackAction{Kind: "mouse"}
		}, wantErr: "must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			_, err := Validate(cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateWarnsOnSharedSocketPath(t *testing.T) {
	cfg := Default()
	cfg.Player.Socket = "/tmp/ncspot.sock"

	warnings, err := Validate(cfg)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Message, "not scoped to the invoking user")
}
