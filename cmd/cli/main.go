package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/vk/hyprshade/internal/app"
	"github.com/vk/hyprshade/internal/cli"
	"github.com/vk/hyprshade/internal/hcl"
)

// main is the entrypoint for the hyprshade application.
func main() {
	// Use a minimal logger until the app configures its own.
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	newApp := func(logW io.Writer, cfg *app.Config) (*app.App, error) {
		return app.NewApp(logW, cfg, hcl.NewLoader())
	}
	return cli.Execute(ctx, args, outW, errW, newApp)
}
