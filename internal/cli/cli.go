package cli

import (
	"fmt"
	"io"

	"github.com/rbright/mediakey/internal/ipc"
	"github.com/spf13/pflag"
)

type Command string

const (
	CommandPrevious  Command = Command(ipc.CommandPrevious)
	CommandPlayPause Command = Command(ipc.CommandPlayPause)
	CommandNext      Command = Command(ipc.CommandNext)
	CommandDoctor    Command = "doctor"
	CommandVersion   Command = "version"
	CommandHelp      Command = "help"
)

var validCommands = map[Command]struct{}{
	CommandPrevious:  {},
	CommandPlayPause: {},
	CommandNext:      {},
	CommandDoctor:    {},
	CommandVersion:   {},
	CommandHelp:      {},
}

// Media reports the socket token for media commands.
func (c Command) Media() (ipc.Command, bool) {
	cmd, err := ipc.ParseCommand(string(c))
	if err != nil {
		return "", false
	}
	return cmd, true
}

type Parsed struct {
	Command    Command
	ConfigPath string
	ShowHelp   bool
}

func Parse(args []string) (Parsed, error) {
	flags := pflag.NewFlagSet("mediakey", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SetInterspersed(false)

	var (
		parsed      Parsed
		help        bool
		showVersion bool
	)
	flags.StringVar(&parsed.ConfigPath, "config", "", "config file path")
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVar(&showVersion, "version", false, "show version")

	if err := flags.Parse(args); err != nil {
		return Parsed{}, err
	}

	rest := flags.Args()
	switch {
	case help:
		return Parsed{Command: CommandHelp, ShowHelp: true, ConfigPath: parsed.ConfigPath}, nil
	case showVersion:
		parsed.Command = CommandVersion
		return parsed, nil
	case len(rest) == 0:
		parsed.Command = CommandHelp
		parsed.ShowHelp = true
		return parsed, nil
	}

	cmd := Command(rest[0])
	if _, ok := validCommands[cmd]; !ok {
		return Parsed{}, fmt.Errorf("unknown command: %s", rest[0])
	}
	if len(rest) > 1 {
		return Parsed{}, fmt.Errorf("unexpected arguments after command %q", rest[0])
	}

	parsed.Command = cmd
	parsed.ShowHelp = cmd == CommandHelp
	return parsed, nil
}

func HelpText(binaryName string) string {
	return fmt.Sprintf(`Usage:
  %[1]s [--config PATH] <command>

Commands:
  previous   Skip to the previous track
  playpause  Toggle playback
  next       Skip to the next track
  doctor     Run configuration and environment checks
  version    Print version information
  help       Show this help

Media commands go to the running player over its control socket; when the
player or its socket is absent, the configured fallback action runs instead.

Flags:
  --config PATH   Config file path (default: $XDG_CONFIG_HOME/mediakey/config.jsonc)
  -h, --help      Show help
  --version       Show version
`, binaryName)
}
