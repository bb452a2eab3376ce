package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vk/hyprshade/internal/app"
)

type appBuilder func() (*app.App, error)

func newOnCommand(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "on <shader>",
		Short: "Turn on screen shader",
		Long:  "Turn on the screen shader given by bare name (searched in the shader directories) or by path.",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			return a.On(cmd.Context(), args[0])
		},
	}
}

func newOffCommand(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "off",
		Short: "Turn off screen shader",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			return a.Off(cmd.Context())
		},
	}
}

func newToggleCommand(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <shader>",
		Short: "Turn the shader off if it is active, on otherwise",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			_, err = a.Toggle(cmd.Context(), args[0])
			return err
		},
	}
}

func newCurrentCommand(outW io.Writer, build appBuilder) *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Print the active screen shader",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			current, err := a.Current(cmd.Context())
			if err != nil || current == nil {
				return err
			}
			if !long {
				fmt.Fprintln(outW, current.Name())
				return nil
			}
			path, err := current.Path()
			if err != nil {
				return err
			}
			fmt.Fprintf(outW, "%s\t%s\n", current.Name(), path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Also print the shader's path.")
	return cmd
}

func newListCommand(outW io.Writer, build appBuilder) *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List available screen shaders",
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			entries, err := a.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range entries {
				marker := " "
				if e.Active {
					marker = "*"
				}
				if long {
					fmt.Fprintf(outW, "%s %s\t%s\n", marker, e.Name, e.Path)
				} else {
					fmt.Fprintf(outW, "%s %s\n", marker, e.Name)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Also print each shader's path.")
	return cmd
}
