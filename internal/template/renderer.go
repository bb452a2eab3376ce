// Package template expands mustache shader templates into concrete shader
// files cached in the user's state directory.
package template

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/cbroglie/mustache"
	"github.com/spf13/afero"
	"github.com/vk/hyprshade/internal/ctxlog"
	"github.com/vk/hyprshade/internal/fsutil"
)

// Extensions lists the file extensions, without the dot, that mark a shader
// as a template needing rendering before use.
var Extensions = []string{"mustache"}

// IsTemplate reports whether path has a template extension.
func IsTemplate(path string) bool {
	return slices.Contains(Extensions, fsutil.Ext(path))
}

// Renderer writes rendered templates into a single state directory.
type Renderer struct {
	fs       afero.Fs
	stateDir string
}

// NewRenderer creates a renderer writing into stateDir on fsys.
func NewRenderer(fsys afero.Fs, stateDir string) *Renderer {
	return &Renderer{fs: fsys, stateDir: stateDir}
}

// StateDir returns the directory rendered files are written to.
func (r *Renderer) StateDir() string {
	return r.stateDir
}

// Render expands the template at path with data and writes the result to
// <stateDir>/<stripped basename of path>, creating the state directory when
// needed. Any previous rendering is overwritten. It returns the path of the
// rendered file.
func (r *Renderer) Render(ctx context.Context, path string, data any) (string, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}

	content, err := mustache.Render(string(src), data)
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", path, err)
	}

	if err := r.fs.MkdirAll(r.stateDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create state directory %s: %w", r.stateDir, err)
	}

	out := filepath.Join(r.stateDir, fsutil.StrippedBasename(path))
	f, err := r.fs.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", out, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}

	logger.Debug("Template rendered.", "template", path, "rendered", out, "bytes", len(content))
	return out, nil
}
