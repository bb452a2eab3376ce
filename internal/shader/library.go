// Package shader resolves screen shaders by name or path and switches them
// on and off through the compositor.
//
// A Library bundles everything resolution needs: the filesystem, the
// ordered shader directories, the template renderer and the compositor
// controller. Shaders are created from a Library and are cheap values
// built once per invocation.
package shader

import (
	"context"
	"strings"

	"github.com/spf13/afero"
	"github.com/vk/hyprshade/internal/ctxlog"
	"github.com/vk/hyprshade/internal/fsutil"
	"github.com/vk/hyprshade/internal/hyprctl"
	"github.com/vk/hyprshade/internal/shaderdirs"
	"github.com/vk/hyprshade/internal/template"
)

// MaxScanDepth bounds how deep below a shader directory files are searched.
const MaxScanDepth = 5

// VariablesFunc returns the template data for the named shader.
type VariablesFunc func(name string) (any, error)

// Library resolves and controls shaders.
type Library struct {
	fs       afero.Fs
	dirs     *shaderdirs.Registry
	renderer *template.Renderer
	ctl      hyprctl.Controller
	vars     VariablesFunc
}

// Option configures a Library.
type Option func(*Library)

// WithFs replaces the OS filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(l *Library) { l.fs = fsys }
}

// WithVariables sets the template data provider.
func WithVariables(fn VariablesFunc) Option {
	return func(l *Library) { l.vars = fn }
}

// NewLibrary creates a Library searching dirs, rendering templates with
// renderer and applying shaders through ctl.
func NewLibrary(dirs *shaderdirs.Registry, renderer *template.Renderer, ctl hyprctl.Controller, opts ...Option) *Library {
	l := &Library{
		fs:       afero.NewOsFs(),
		dirs:     dirs,
		renderer: renderer,
		ctl:      ctl,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Dirs returns the searched directories in priority order.
func (l *Library) Dirs() []string {
	return l.dirs.All()
}

// Off disables the screen shader.
func (l *Library) Off(ctx context.Context) error {
	ctxlog.FromContext(ctx).Debug("Turning off screen shader.")
	return l.ctl.ClearActiveShader(ctx)
}

// Current returns the shader the compositor is applying, or nil when none
// is. The returned shader is identified by its path.
func (l *Library) Current(ctx context.Context) (*Shader, error) {
	path, ok, err := l.ctl.GetActiveShader(ctx)
	if err != nil || !ok {
		return nil, err
	}
	return l.New(path)
}

// Toggle turns the shader off when it is the active one and on otherwise.
// It reports whether the shader ends up on.
func (l *Library) Toggle(ctx context.Context, nameOrPath string) (bool, error) {
	s, err := l.New(nameOrPath)
	if err != nil {
		return false, err
	}
	current, err := l.Current(ctx)
	if err != nil {
		return false, err
	}
	if s.MatchesActive(current) {
		return false, l.Off(ctx)
	}
	return true, s.On(ctx)
}

// List returns one shader per distinct name reachable from the shader
// directories, in search order. A name shadowed by an earlier directory is
// listed once, pointing at the file that resolution would pick. Hidden files
// are skipped.
func (l *Library) List() []*Shader {
	var shaders []*Shader
	seen := make(map[string]struct{})
	for _, dir := range l.dirs.All() {
		for entry := range fsutil.ScanRecursive(l.fs, dir, MaxScanDepth) {
			name := fsutil.StripAllExtensions(entry.Name)
			if strings.HasPrefix(name, ".") {
				continue
			}
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			shaders = append(shaders, &Shader{lib: l, name: name, givenPath: entry.Path})
		}
	}
	return shaders
}
