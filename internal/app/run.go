package app

import (
	"context"

	"github.com/vk/hyprshade/internal/shader"
)

// ListEntry is one shader reported by List.
type ListEntry struct {
	Name   string
	Path   string
	Active bool
}

// On turns on the shader named or located by nameOrPath.
func (a *App) On(ctx context.Context, nameOrPath string) error {
	ctx = a.context(ctx)
	s, err := a.library.New(nameOrPath)
	if err != nil {
		return err
	}
	if err := s.On(ctx); err != nil {
		return err
	}
	a.logger.Info("Shader turned on.", "shader", s.Name())
	return nil
}

// Off turns off the screen shader.
func (a *App) Off(ctx context.Context) error {
	ctx = a.context(ctx)
	if err := a.library.Off(ctx); err != nil {
		return err
	}
	a.logger.Info("Shader turned off.")
	return nil
}

// Current returns the active shader, or nil when none is active.
func (a *App) Current(ctx context.Context) (*shader.Shader, error) {
	return a.library.Current(a.context(ctx))
}

// Toggle switches the given shader off when active and on otherwise. It
// reports whether the shader is now on.
func (a *App) Toggle(ctx context.Context, nameOrPath string) (bool, error) {
	on, err := a.library.Toggle(a.context(ctx), nameOrPath)
	if err != nil {
		return false, err
	}
	a.logger.Info("Shader toggled.", "shader", nameOrPath, "on", on)
	return on, nil
}

// List returns every available shader, flagging the active one.
func (a *App) List(ctx context.Context) ([]ListEntry, error) {
	current, err := a.Current(ctx)
	if err != nil {
		return nil, err
	}

	var entries []ListEntry
	for _, s := range a.library.List() {
		path, err := s.Path()
		if err != nil {
			continue // removed since the scan
		}
		entries = append(entries, ListEntry{
			Name:   s.Name(),
			Path:   path,
			Active: s.MatchesActive(current),
		})
	}
	a.logger.Debug("Shaders listed.", "count", len(entries))
	return entries, nil
}
