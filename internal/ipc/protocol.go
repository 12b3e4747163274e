package ipc

import (
	"fmt"
	"strings"
)

// Command is one media-control token understood by the player socket.
type Command string

const (
	CommandPrevious  Command = "previous"
	CommandPlayPause Command = "playpause"
	CommandNext      Command = "next"
)

// Commands returns every supported token in help/display order.
func Commands() []Command {
	return []Command{CommandPrevious, CommandPlayPause, CommandNext}
}

// ParseCommand maps a raw token onto the closed command set.
func ParseCommand(raw string) (Command, error) {
	cmd := Command(strings.TrimSpace(raw))
	for _, known := range Commands() {
		if cmd == known {
			return cmd, nil
		}
	}
	return "", fmt.Errorf("unknown media command: %q", raw)
}

// Line renders the wire form: the bare token terminated by a newline.
func (c Command) Line() []byte {
	return []byte(string(c) + "\n")
}
