// Package main is the entry point for the hdlc incremental HDL compiler.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/hdlc/cmd/hdlc/commands"
	"go.trai.ch/hdlc/internal/app"
	"go.trai.ch/hdlc/internal/core/domain"
	_ "go.trai.ch/hdlc/internal/wiring"
)

type jsonSwitch interface {
	SetJSON(enable bool)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string, opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() { _ = components.Telemetry.Close() }()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	if sw, ok := components.Logger.(jsonSwitch); ok {
		cli.SetJSONHook(sw.SetJSON)
	}

	if err := cli.Execute(ctx); err != nil {
		// Diagnostics were already printed.
		if errors.Is(err, domain.ErrCompilationFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
