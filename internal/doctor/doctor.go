// Package doctor runs readiness diagnostics for config, player reachability, and fallback tools.
package doctor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fatih/color"
	"github.com/rbright/mediakey/internal/automation"
	"github.com/rbright/mediakey/internal/config"
	"github.com/rbright/mediakey/internal/ipc"
)

// Status is the outcome class of one check.
type Status int

const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

var (
	labelOK   = color.New(color.FgGreen, color.Bold)
	labelWarn = color.New(color.FgYellow, color.Bold)
	labelFail = color.New(color.FgRed, color.Bold)
)

// Check is one doctor assertion result.
type Check struct {
	Name    string
	Status  Status
	Message string
}

// Report is the full doctor output contract.
type Report struct {
	Checks []Check
}

// OK reports whether no check failed. Warnings do not fail the report.
func (r Report) OK() bool {
	for _, check := range r.Checks {
		if check.Status == StatusFail {
			return false
		}
	}
	return true
}

// String renders the report as user-facing text output.
func (r Report) String() string {
	var b strings.Builder
	for _, check := range r.Checks {
		fmt.Fprintf(&b, "[%s] %s: %s\n", label(check.Status), check.Name, check.Message)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func label(status Status) string {
	switch status {
	case StatusOK:
		return labelOK.Sprint("OK")
	case StatusWarn:
		return labelWarn.Sprint("WARN")
	default:
		return labelFail.Sprint("FAIL")
	}
}

// ProcessChecker reports whether a named process is alive.
type ProcessChecker interface {
	Running(ctx context.Context, name string) (bool, error)
}

// Run executes environment and config checks for a loaded config.
// Player checks only warn: an absent player is exactly what the fallback covers.
func Run(ctx context.Context, cfg config.Loaded, vars ipc.PathVars, processes ProcessChecker) Report {
	checks := []Check{configCheck(cfg)}

	checks = append(checks, checkProcess(ctx, processes, cfg.Config.Player.Process))
	checks = append(checks, checkSocket(cfg.Config.Player.Socket, vars))

	for _, cmd := range ipc.Commands() {
		checks = append(checks, checkFallback(cmd, cfg.Config.Fallback[cmd]))
	}

	return Report{Checks: checks}
}

func configCheck(cfg config.Loaded) Check {
	if !cfg.Exists {
		return Check{Name: "config", Status: StatusOK, Message: fmt.Sprintf("%q not found; using defaults", cfg.Path)}
	}
	return Check{Name: "config", Status: StatusOK, Message: fmt.Sprintf("loaded %q", cfg.Path)}
}

func checkProcess(ctx context.Context, processes ProcessChecker, name string) Check {
	checkName := "player.process"
	running, err := processes.Running(ctx, name)
	if err != nil {
		return Check{Name: checkName, Status: StatusWarn, Message: fmt.Sprintf("process scan failed: %v", err)}
	}
	if !running {
		return Check{Name: checkName, Status: StatusWarn, Message: fmt.Sprintf("%s is not running; fallback will be used", name)}
	}
	return Check{Name: checkName, Status: StatusOK, Message: fmt.Sprintf("%s is running", name)}
}

func checkSocket(template string, vars ipc.PathVars) Check {
	checkName := "player.socket"
	path, err := ipc.SocketPath(template, vars)
	if err != nil {
		return Check{Name: checkName, Status: StatusFail, Message: err.Error()}
	}
	if !ipc.IsSocket(path) {
		return Check{Name: checkName, Status: StatusWarn, Message: fmt.Sprintf("no socket at %s; fallback will be used", path)}
	}
	return Check{Name: checkName, Status: StatusOK, Message: fmt.Sprintf("socket present at %s", path)}
}

func checkFallback(cmd ipc.Command, action config.FallbackAction) Check {
	checkName := "fallback." + string(cmd)
	argv, err := automation.Argv(action)
	if err != nil {
		return Check{Name: checkName, Status: StatusFail, Message: err.Error()}
	}
	return checkBinary(checkName, argv[0])
}

// checkBinary validates that a binary exists in PATH.
func checkBinary(checkName, bin string) Check {
	path, err := exec.LookPath(bin)
	if err != nil {
		return Check{Name: checkName, Status: StatusFail, Message: fmt.Sprintf("binary not found in PATH: %s", bin)}
	}
	return Check{Name: checkName, Status: StatusOK, Message: fmt.Sprintf("%s found at %s", bin, path)}
}
