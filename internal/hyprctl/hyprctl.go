// Package hyprctl talks to the running Hyprland compositor through its
// hyprctl control utility to set, clear and query the screen shader.
package hyprctl

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/tidwall/gjson"
	"github.com/vk/hyprshade/internal/ctxlog"
)

const (
	// DefaultCommand is the control utility used when none is configured.
	DefaultCommand = "hyprctl"
	// Option is the compositor setting holding the active shader path.
	Option = "decoration:screen_shader"
	// EmptySentinel is the value meaning "no shader". Hyprland rejects a
	// literal empty string for keyword values.
	EmptySentinel = "[[EMPTY]]"
)

// Controller sets, clears and queries the compositor's screen shader.
type Controller interface {
	SetActiveShader(ctx context.Context, path string) error
	ClearActiveShader(ctx context.Context) error
	// GetActiveShader returns the active shader path and true, or false
	// when no shader is set.
	GetActiveShader(ctx context.Context) (string, bool, error)
}

// ControlError reports a control command that exited unsuccessfully.
type ControlError struct {
	Code   int
	Args   []string
	Output string
}

func (e *ControlError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", strings.Join(e.Args, " "), e.Code)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

// Hyprctl is the Controller backed by the hyprctl executable.
type Hyprctl struct {
	argv []string
}

// New parses commandLine with shell quoting rules into the control command.
// An empty commandLine selects DefaultCommand.
func New(commandLine string) (*Hyprctl, error) {
	if strings.TrimSpace(commandLine) == "" {
		commandLine = DefaultCommand
	}
	argv, err := shellwords.Parse(commandLine)
	if err != nil {
		return nil, fmt.Errorf("invalid control command %q: %w", commandLine, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("invalid control command %q: no program", commandLine)
	}
	return &Hyprctl{argv: argv}, nil
}

// SetActiveShader applies the shader at path.
func (h *Hyprctl) SetActiveShader(ctx context.Context, path string) error {
	_, err := h.run(ctx, "keyword", Option, path)
	return err
}

// ClearActiveShader disables the screen shader.
func (h *Hyprctl) ClearActiveShader(ctx context.Context) error {
	_, err := h.run(ctx, "keyword", Option, EmptySentinel)
	return err
}

// GetActiveShader queries the option as JSON and reads its "str" field.
func (h *Hyprctl) GetActiveShader(ctx context.Context) (string, bool, error) {
	out, err := h.run(ctx, "-j", "getoption", Option)
	if err != nil {
		return "", false, err
	}
	if !gjson.ValidBytes(out) {
		return "", false, fmt.Errorf("unexpected %s output: %q", h.argv[0], strings.TrimSpace(string(out)))
	}

	value := strings.TrimSpace(gjson.GetBytes(out, "str").String())
	if value == "" || value == EmptySentinel {
		return "", false, nil
	}
	return value, true, nil
}

// run executes the control command with args. It has no timeout of its own.
func (h *Hyprctl) run(ctx context.Context, args ...string) ([]byte, error) {
	logger := ctxlog.FromContext(ctx)
	argv := append(slices.Clone(h.argv), args...)
	logger.Debug("Running control command.", "argv", argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.Output()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, &ControlError{
			Code:   exitErr.ExitCode(),
			Args:   argv,
			Output: string(out) + string(exitErr.Stderr),
		}
	}
	if err != nil {
		return out, fmt.Errorf("failed to run %s: %w", argv[0], err)
	}

	logger.Debug("Control command finished.", "output", strings.TrimSpace(string(out)))
	return out, nil
}
