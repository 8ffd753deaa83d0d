// Package main is the entry point for the rake task runner.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/rake/cmd/rake/commands"
	"go.trai.ch/rake/internal/app"
	"go.trai.ch/rake/internal/core/domain"
	_ "go.trai.ch/rake/internal/wiring"
	"go.trai.ch/zerr"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return domain.ExitFatal
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(zerr.Wrap(err, "rake aborted!"))
		return domain.ExitCode(err)
	}
	return domain.ExitSuccess
}
