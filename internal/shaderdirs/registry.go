// Package shaderdirs holds the ordered set of directories searched for
// shaders referenced by bare name. Order is priority: the first directory
// containing a match wins.
package shaderdirs

import (
	"path/filepath"

	"github.com/vk/hyprshade/internal/xdg"
)

// EnvShadersDir names the environment variable pointing at an extra shader
// directory.
const EnvShadersDir = "HYPRSHADE_SHADERS_DIR"

// SystemDir holds the shaders shipped with the package.
const SystemDir = "/usr/share/hyprshade/shaders"

// Registry is an ordered, deduplicated list of shader directories. The
// directories need not exist; missing ones are skipped while scanning.
type Registry struct {
	dirs []string
}

// New builds a registry from dirs, keeping the first occurrence of each
// directory and dropping empty entries.
func New(dirs ...string) *Registry {
	r := &Registry{}
	seen := make(map[string]struct{}, len(dirs))
	for _, d := range dirs {
		if d == "" {
			continue
		}
		d = filepath.Clean(d)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		r.dirs = append(r.dirs, d)
	}
	return r
}

// Default builds the standard search order: extra (typically from the
// config file), $HYPRSHADE_SHADERS_DIR, the user's hypr and hyprshade
// config directories, then the system directory.
func Default(getenv xdg.Getenv, extra ...string) *Registry {
	configHome := xdg.ConfigHome(getenv)
	dirs := append([]string{}, extra...)
	dirs = append(dirs,
		getenv(EnvShadersDir),
		filepath.Join(configHome, "hypr", "shaders"),
		filepath.Join(configHome, xdg.AppName, "shaders"),
		SystemDir,
	)
	return New(dirs...)
}

// All returns the directories in priority order.
func (r *Registry) All() []string {
	return append([]string(nil), r.dirs...)
}
