package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/portico-apps/searchkit/internal/adapters/driving/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Initialise(); err != nil {
		fmt.Fprintf(os.Stderr, "searchkit: %v\n", err)
		os.Exit(1)
	}

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
