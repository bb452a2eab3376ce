package testutil

import (
	"context"

	"github.com/vk/hyprshade/internal/hyprctl"
)

// FakeController is an in-memory hyprctl.Controller. It stores the value the
// compositor would hold, including the empty sentinel, and records calls.
type FakeController struct {
	Value string
	Calls []string
	// Err, when set, is returned by every operation.
	Err error
}

var _ hyprctl.Controller = (*FakeController)(nil)

// SetActiveShader implements hyprctl.Controller.
func (f *FakeController) SetActiveShader(_ context.Context, path string) error {
	f.Calls = append(f.Calls, "set "+path)
	if f.Err != nil {
		return f.Err
	}
	f.Value = path
	return nil
}

// ClearActiveShader implements hyprctl.Controller.
func (f *FakeController) ClearActiveShader(_ context.Context) error {
	f.Calls = append(f.Calls, "clear")
	if f.Err != nil {
		return f.Err
	}
	f.Value = hyprctl.EmptySentinel
	return nil
}

// GetActiveShader implements hyprctl.Controller.
func (f *FakeController) GetActiveShader(_ context.Context) (string, bool, error) {
	f.Calls = append(f.Calls, "get")
	if f.Err != nil {
		return "", false, f.Err
	}
	if f.Value == "" || f.Value == hyprctl.EmptySentinel {
		return "", false, nil
	}
	return f.Value, true, nil
}
