package shader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/hyprshade/internal/ctxlog"
	"github.com/vk/hyprshade/internal/fsutil"
	"github.com/vk/hyprshade/internal/template"
)

// Shader identifies a screen shader either by bare name, resolved by
// searching the library's directories, or by an explicit absolute path.
type Shader struct {
	lib       *Library
	name      string
	givenPath string

	// givenPathExists caches the first existence check of givenPath. It is
	// never re-validated, so a file removed afterwards still counts as
	// present for the lifetime of this Shader.
	givenPathExists *bool
}

// New creates a Shader. An argument containing a path separator is an
// explicit path, made absolute, whose name is its basename without any
// extensions. Anything else is a bare name, which must not be empty or
// contain a '.'.
func (l *Library) New(nameOrPath string) (*Shader, error) {
	if strings.ContainsRune(nameOrPath, filepath.Separator) {
		abs, err := filepath.Abs(nameOrPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve shader path %s: %w", nameOrPath, err)
		}
		return &Shader{lib: l, name: fsutil.StrippedBasename(abs), givenPath: abs}, nil
	}

	if nameOrPath == "" {
		return nil, &InvalidArgumentError{Arg: nameOrPath, Reason: "must not be empty"}
	}
	if strings.Contains(nameOrPath, ".") {
		return nil, &InvalidArgumentError{Arg: nameOrPath, Reason: "must not contain a '.' character"}
	}
	return &Shader{lib: l, name: nameOrPath}, nil
}

// Name returns the logical name of the shader.
func (s *Shader) Name() string {
	return s.name
}

func (s *Shader) String() string {
	return s.name
}

// Path resolves the shader to a file. For a template this is the template
// itself, not its rendering.
func (s *Shader) Path() (string, error) {
	return s.resolvePath()
}

// Dirname returns the directory containing the resolved file.
func (s *Shader) Dirname() (string, error) {
	path, err := s.resolvePath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// Equal reports whether both shaders resolve to the same file on disk.
// A shader that fails to resolve is equal to nothing.
func (s *Shader) Equal(other *Shader) bool {
	if s == nil || other == nil {
		return false
	}
	p1, err := s.resolvePath()
	if err != nil {
		return false
	}
	p2, err := other.resolvePath()
	if err != nil {
		return false
	}
	return s.lib.sameFile(p1, p2)
}

// On resolves the shader, renders it first when it is a template, and
// tells the compositor to apply the result.
func (s *Shader) On(ctx context.Context) error {
	path, err := s.resolvePathAfterIntermediateSteps(ctx)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Turning on shader.", "shader", s.name, "path", path)
	return s.lib.ctl.SetActiveShader(ctx, path)
}

func (s *Shader) resolvePathAfterIntermediateSteps(ctx context.Context) (string, error) {
	path, err := s.resolvePath()
	if err != nil {
		return "", err
	}
	if !template.IsTemplate(path) {
		return path, nil
	}
	if s.lib.renderer == nil {
		return "", fmt.Errorf("shader '%s' is a template but no renderer is configured", s.name)
	}

	var data any
	if s.lib.vars != nil {
		if data, err = s.lib.vars(s.name); err != nil {
			return "", fmt.Errorf("failed to load template variables for shader '%s': %w", s.name, err)
		}
	}
	return s.lib.renderer.Render(ctx, path, data)
}

// MatchesActive reports whether current, as returned by Library.Current, is
// this shader or this shader's rendered template.
func (s *Shader) MatchesActive(current *Shader) bool {
	if current == nil {
		return false
	}
	if s.Equal(current) {
		return true
	}
	path, err := s.resolvePath()
	if err != nil || !template.IsTemplate(path) || s.lib.renderer == nil {
		return false
	}
	currentPath, err := current.resolvePath()
	if err != nil {
		return false
	}
	rendered := filepath.Join(s.lib.renderer.StateDir(), fsutil.StrippedBasename(path))
	return s.lib.sameFile(rendered, currentPath)
}

func (s *Shader) resolvePath() (string, error) {
	if s.givenPath != "" {
		if !s.doesGivenPathExist() {
			return "", &NotFoundError{Name: s.name, Path: s.givenPath}
		}
		return s.givenPath, nil
	}
	return s.resolvePathFromShaderDirs()
}

func (s *Shader) doesGivenPathExist() bool {
	if s.givenPathExists == nil {
		_, err := s.lib.fs.Stat(s.givenPath)
		exists := err == nil
		s.givenPathExists = &exists
	}
	return *s.givenPathExists
}

// resolvePathFromShaderDirs returns the first file, in directory priority
// then scan order, whose name without extensions equals the shader name.
func (s *Shader) resolvePathFromShaderDirs() (string, error) {
	dirs := s.lib.dirs.All()
	for _, dir := range dirs {
		for entry := range fsutil.ScanRecursive(s.lib.fs, dir, MaxScanDepth) {
			if fsutil.StripAllExtensions(entry.Name) == s.name {
				return entry.Path, nil
			}
		}
	}
	return "", &NotFoundError{Name: s.name, Dirs: dirs}
}

// sameFile compares by file identity, falling back to the cleaned path for
// filesystems that do not expose it.
func (l *Library) sameFile(a, b string) bool {
	fa, err := l.fs.Stat(a)
	if err != nil {
		return false
	}
	fb, err := l.fs.Stat(b)
	if err != nil {
		return false
	}
	if os.SameFile(fa, fb) {
		return true
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
