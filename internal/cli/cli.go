package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/vk/hyprshade/internal/app"
)

// AppFactory builds the application once global flags are parsed. Logs go
// to logW.
type AppFactory func(logW io.Writer, cfg *app.Config) (*app.App, error)

type rootOptions struct {
	configPath string
	logFormat  string
	logLevel   string
}

// Execute runs the command line in args. Errors that must end the process
// with a particular status are returned as *ExitError.
func Execute(ctx context.Context, args []string, outW, errW io.Writer, newApp AppFactory) error {
	slog.Debug("CLI parser started.", "args", args)
	root := NewRootCommand(outW, errW, newApp)
	root.SetArgs(args)
	return translateError(root.ExecuteContext(ctx))
}

// NewRootCommand builds the hyprshade command tree.
func NewRootCommand(outW, errW io.Writer, newApp AppFactory) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "hyprshade",
		Short:         "Toggle Hyprland screen shaders",
		Long:          "hyprshade turns Hyprland's screen shader on and off by shader name or path.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a configuration file or directory of .hcl files.")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	build := func() (*app.App, error) {
		cfg, err := app.NewConfig(app.Config{
			ConfigPath: opts.configPath,
			LogFormat:  opts.logFormat,
			LogLevel:   opts.logLevel,
		})
		if err != nil {
			return nil, usageError(err)
		}
		return newApp(errW, cfg)
	}

	root.AddCommand(
		newOnCommand(build),
		newOffCommand(build),
		newToggleCommand(build),
		newCurrentCommand(outW, build),
		newListCommand(outW, build),
	)
	return root
}

// exactArgs is cobra.ExactArgs with usage exit status.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(fmt.Errorf("%s: %w", cmd.CommandPath(), err))
		}
		return nil
	}
}
