package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rbright/mediakey/internal/automation"
	"github.com/rbright/mediakey/internal/cli"
	"github.com/rbright/mediakey/internal/config"
	"github.com/rbright/mediakey/internal/dispatch"
	"github.com/rbright/mediakey/internal/doctor"
	"github.com/rbright/mediakey/internal/ipc"
	"github.com/rbright/mediakey/internal/logging"
	"github.com/rbright/mediakey/internal/process"
	"github.com/rbright/mediakey/internal/version"
)

type Runner struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("mediakey"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, cli.HelpText("mediakey"))
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	logRuntime, err := logging.New()
	if err != nil {
		// The log file is not required to deliver a command.
		fmt.Fprintf(r.Stderr, "warning: setup logging: %v\n", err)
		logRuntime = logging.Runtime{Logger: slog.New(slog.DiscardHandler)}
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}
	logger = logger.With("run_id", uuid.NewString())

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("load config failed", "error", err.Error())
		return 1
	}
	for _, w := range cfgLoaded.Warnings {
		// A missing config file is the normal case; keep stderr quiet for it.
		if !cfgLoaded.Exists {
			logger.Debug("config warning", "message", w.Message)
			continue
		}
		msg := w.Message
		if w.Line > 0 {
			msg = fmt.Sprintf("line %d: %s", w.Line, w.Message)
		}
		fmt.Fprintf(r.Stderr, "warning: %s\n", msg)
		logger.Warn("config warning", "line", w.Line, "message", w.Message)
	}

	logger.Info("command start",
		"command", parsed.Command,
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
	)

	if parsed.Command == cli.CommandDoctor {
		report := doctor.Run(ctx, cfgLoaded, ipc.CurrentPathVars(), process.Checker{})
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	}

	media, ok := parsed.Command.Media()
	if !ok {
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
	return r.commandMedia(ctx, cfgLoaded.Config, media, logger)
}

func (r Runner) commandMedia(ctx context.Context, cfg config.Config, cmd ipc.Command, logger *slog.Logger) int {
	socketPath, err := ipc.SocketPath(cfg.Player.Socket, ipc.CurrentPathVars())
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("resolve socket path failed", "error", err.Error())
		return 1
	}

	dispatcher := dispatch.New(
		dispatch.Target{Process: cfg.Player.Process, SocketPath: socketPath},
		process.Checker{},
		ipc.Client{Timeout: time.Duration(cfg.Player.TimeoutMS) * time.Millisecond},
		automation.NewRunner(cfg.Fallback, logger),
		logger,
	)

	result := dispatcher.Dispatch(ctx, cmd)
	logDispatchResult(logger, result)

	if result.Err == nil {
		return 0
	}
	fmt.Fprintf(r.Stderr, "error: %v\n", result.Err)
	if code, ok := automation.ExitCode(result.Err); ok {
		return code
	}
	return 1
}

func logDispatchResult(logger *slog.Logger, result dispatch.Result) {
	if logger == nil {
		return
	}
	fields := []any{
		"command", result.Command,
		"route", result.Route,
		"socket", result.SocketPath,
		"process_running", result.ProcessRunning,
		"socket_present", result.SocketPresent,
		"duration_ms", result.FinishedAt.Sub(result.StartedAt).Milliseconds(),
	}

	if result.Err != nil {
		logger.Error("dispatch failed", append(fields, "error", result.Err.Error())...)
		return
	}
	logger.Info("dispatch complete", fields...)
}
