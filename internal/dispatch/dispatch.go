// Package dispatch routes a media command to the running player or to an OS fallback.
package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/rbright/mediakey/internal/ipc"
)

// Route names the delivery path a dispatch took.
type Route string

const (
	RouteSocket   Route = "socket"
	RouteFallback Route = "fallback"
)

// ProcessChecker reports whether a named process is alive.
type ProcessChecker interface {
	Running(ctx context.Context, name string) (bool, error)
}

// Socket delivers command tokens over the player's control socket.
type Socket interface {
	IsSocket(path string) bool
	Send(ctx context.Context, path string, cmd ipc.Command) error
}

// Fallback performs the OS automation action for a command.
type Fallback interface {
	Run(ctx context.Context, cmd ipc.Command) error
}

// Target identifies the player to reach.
type Target struct {
	Process    string
	SocketPath string
}

// Result captures one dispatch outcome.
type Result struct {
	Command        ipc.Command
	Route          Route
	SocketPath     string
	ProcessRunning bool
	SocketPresent  bool
	StartedAt      time.Time
	FinishedAt     time.Time
	Err            error
}

// Dispatcher decides between socket delivery and fallback automation.
type Dispatcher struct {
	target   Target
	process  ProcessChecker
	socket   Socket
	fallback Fallback
	logger   *slog.Logger
}

// New constructs a dispatcher for target.
func New(target Target, process ProcessChecker, socket Socket, fallback Fallback, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		target:   target,
		process:  process,
		socket:   socket,
		fallback: fallback,
		logger:   logger,
	}
}

// Dispatch delivers cmd to the player when it is running and its socket
// exists; otherwise it runs the fallback. Exactly one of the two happens.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd ipc.Command) (result Result) {
	result = Result{
		Command:    cmd,
		SocketPath: d.target.SocketPath,
		StartedAt:  time.Now(),
	}
	defer func() { result.FinishedAt = time.Now() }()

	running, err := d.process.Running(ctx, d.target.Process)
	if err != nil {
		d.debug("process check failed; treating player as absent", "process", d.target.Process, "error", err.Error())
	}
	result.ProcessRunning = running && err == nil

	if result.ProcessRunning {
		result.SocketPresent = d.socket.IsSocket(d.target.SocketPath)
	}

	if result.ProcessRunning && result.SocketPresent {
		result.Route = RouteSocket
		result.Err = d.socket.Send(ctx, d.target.SocketPath, cmd)
		return result
	}

	result.Route = RouteFallback
	result.Err = d.fallback.Run(ctx, cmd)
	return result
}

func (d *Dispatcher) debug(msg string, args ...any) {
	if d.logger == nil {
		return
	}
	d.logger.Debug(msg, args...)
}
