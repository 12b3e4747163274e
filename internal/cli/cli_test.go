package cli

import (
	"testing"

	"github.com/rbright/mediakey/internal/ipc"
	"github.com/stretchr/testify/require"
)

func TestParseDefaultsToHelp(t *testing.T) {
	parsed, err := Parse(nil)
	require.NoError(t, err)
	require.True(t, parsed.ShowHelp)
	require.Equal(t, CommandHelp, parsed.Command)
}

func TestParseCommandWithConfig(t *testing.T) {
	parsed, err := Parse([]string{"--config", "/tmp/mediakey.jsonc", "previous"})
	require.NoError(t, err)
	require.Equal(t, CommandPrevious, parsed.Command)
	require.Equal(t, "/tmp/mediakey.jsonc", parsed.ConfigPath)
	require.False(t, parsed.ShowHelp)
}

func TestParseArgMatrix(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		wantCmd  Command
		wantHelp bool
		wantPath string
	}{
		{
			name:     "help short flag",
			args:     []string{"-h"},
			wantCmd:  CommandHelp,
			wantHelp: true,
		},
		{
			name:     "help long flag wins over command",
			args:     []string{"--help", "next"},
			wantCmd:  CommandHelp,
			wantHelp: true,
		},
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantCmd: CommandVersion,
		},
		{
			name:     "config equals form",
			args:     []string{"--config=/tmp/cfg", "playpause"},
			wantCmd:  CommandPlayPause,
			wantPath: "/tmp/cfg",
		},
		{
			name:    "config after command",
			args:    []string{"previous", "--config", "/tmp/cfg"},
			wantErr: "unexpected arguments after command",
		},
		{
			name:    "missing config path",
			args:    []string{"--config"},
			wantErr: "needs an argument",
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: "unknown flag",
		},
		{
			name:    "unknown command",
			args:    []string{"shuffle"},
			wantErr: "unknown command",
		},
		{
			name:    "extra args after command",
			args:    []string{"doctor", "extra"},
			wantErr: "unexpected arguments",
		},
		{
			name:    "next command",
			args:    []string{"next"},
			wantCmd: CommandNext,
		},
		{
			name:     "help command",
			args:     []string{"help"},
			wantCmd:  CommandHelp,
			wantHelp: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := Parse(tc.args)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantCmd, parsed.Command)
			require.Equal(t, tc.wantHelp, parsed.ShowHelp)
			require.Equal(t, tc.wantPath, parsed.ConfigPath)
		})
	}
}

func TestCommandMedia(t *testing.T) {
	cmd, ok := CommandPlayPause.Media()
	require.True(t, ok)
	require.Equal(t, ipc.CommandPlayPause, cmd)

	_, ok = CommandDoctor.Media()
	require.False(t, ok)
}

func TestHelpTextIncludesCoreCommands(t *testing.T) {
	text := HelpText("mediakey")
	require.Contains(t, text, "previous")
	require.Contains(t, text, "playpause")
	require.Contains(t, text, "doctor")
	require.Contains(t, text, "--config PATH")
}
