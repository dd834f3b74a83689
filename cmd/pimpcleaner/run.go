package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

func run(ctx context.Context, app *fx.App) {
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "pimp-cleaner: invalid setup: %v\n", err)
		os.Exit(2)
	}
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pimp-cleaner: failed to start: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(os.Stderr, "pimp-cleaner: failed to stop: %v\n", err)
		os.Exit(1)
	}
}
