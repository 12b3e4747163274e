package ipc

import (
	"context"
	"fmt"
	"net"
	"time"
)

// Client delivers command tokens to the player's control socket.
type Client struct {
	Timeout time.Duration
}

// IsSocket reports whether path is currently a socket endpoint.
func (Client) IsSocket(path string) bool {
	return IsSocket(path)
}

// Send delivers one command to the player socket with a deadline.
func (c Client) Send(ctx context.Context, path string, cmd Command) error {
	return Send(ctx, path, cmd, c.Timeout)
}

// Send writes one newline-terminated token and closes the connection.
// No acknowledgement is read back.
func Send(ctx context.Context, path string, cmd Command, timeout time.Duration) error {
	cmd, err := ParseCommand(string(cmd))
	if err != nil {
		return err
	}

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "unix", path)
	if err != nil {
		return fmt.Errorf("dial player socket %s: %w", path, err)
	}
	defer conn.Close()

	if timeout > 0 {
		if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
			return fmt.Errorf("set deadline: %w", err)
		}
	}

	if _, err := conn.Write(cmd.Line()); err != nil {
		return fmt.Errorf("write %q to player socket: %w", cmd, err)
	}
	return nil
}
