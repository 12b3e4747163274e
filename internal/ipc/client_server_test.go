package ipc

import (
	"context"
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSendWritesNewlineTerminatedToken(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "ncspot.sock")
	received := startPlayerStub(t, socketPath)

	for _, cmd := range []Command{CommandPrevious, CommandPlayPause} {
		err := Send(context.Background(), socketPath, cmd, 200*time.Millisecond)
		require.NoError(t, err)
		require.Equal(t, string(cmd)+"\n", <-received)
	}
}

func TestClientSendUsesConfiguredTimeout(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "ncspot.sock")
	received := startPlayerStub(t, socketPath)

	client := Client{Timeout: 200 * time.Millisecond}
	require.True(t, client.IsSocket(socketPath))
	require.NoError(t, client.Send(context.Background(), socketPath, CommandNext))
	require.Equal(t, "next\n", <-received)
}

func TestSendMissingSocket(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "missing.sock")

	err := Send(context.Background(), socketPath, CommandPrevious, 100*time.Millisecond)
	require.Error(t, err)
	require.Contains(t, err.Error(), "dial player socket")
}

func TestSendRejectsUnknownToken(t *testing.T) {
	err := Send(context.Background(), "/tmp/unused.sock", Command("bogus\nnext"), 100*time.Millisecond)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown media command")
}

func TestSendRefusedAfterListenerClosed(t *testing.T) {
	socketPath := filepath.Join(t.TempDir(), "ncspot.sock")
	listener, err := net.Listen("unix", socketPath)
	require.NoError(t, err)
	if ul, ok := listener.(*net.UnixListener); ok {
		ul.SetUnlinkOnClose(false)
	}
	require.NoError(t, listener.Close())

	require.True(t, IsSocket(socketPath))
	err = Send(context.Background(), socketPath, CommandPrevious, 100*time.Millisecond)
	require.Error(t, err)
}

// startPlayerStub accepts connections on path and reports everything each client wrote.
func startPlayerStub(t *testing.T, path string) <-chan string {
	t.Helper()

	listener, err := net.Listen("unix", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	received := make(chan string, 8)
	go func() {
		for {
			conn, acceptErr := listener.Accept()
			if acceptErr != nil {
				return
			}
			data, _ := io.ReadAll(conn)
			_ = conn.Close()
			received <- string(data)
		}
	}()
	return received
}
