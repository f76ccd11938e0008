// Package main is the entry point for the verdant CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.verdant.dev/verdant/cmd/verdant/commands"
	"go.verdant.dev/verdant/internal/app"
	_ "go.verdant.dev/verdant/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components)

	code := 0
	if err := cli.Execute(ctx); err != nil {
		// zerr prints a full error report with metadata when using %+v.
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		code = 1
	}
	if err := components.Tracer.Close(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
	}
	return code
}
