// Command mediakey sends media commands to ncspot, falling back to OS automation.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rbright/mediakey/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run keeps deferred cleanup ahead of os.Exit.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	return app.Execute(ctx, args, os.Stdout, os.Stderr)
}
