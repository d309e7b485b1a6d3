package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"ytctl/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

const exitInterrupt = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(version)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return
	}

	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "\nInterrupted.")
		os.Exit(exitInterrupt)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
