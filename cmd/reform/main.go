// Package main is the entry point for the reform formatter.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/reform/cmd/reform/commands"
	"go.trai.ch/reform/internal/app"
	"go.trai.ch/reform/internal/core/domain"
	_ "go.trai.ch/reform/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App, components.Logger)

	if err := cli.Execute(ctx); err != nil {
		// The run summary already reported these.
		if errors.Is(err, domain.ErrRunHadFailures) || errors.Is(err, domain.ErrFilesNeedFormatting) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
