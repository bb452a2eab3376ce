package shader_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hyprshade/internal/shader"
	"github.com/vk/hyprshade/internal/shaderdirs"
	"github.com/vk/hyprshade/internal/template"
	"github.com/vk/hyprshade/internal/testutil"
)

type fixture struct {
	root  string
	dirs  []string
	state string
	ctl   *testutil.FakeController
	lib   *shader.Library
}

// newFixture lays out files under two shader directories, d1 and d2, and
// builds a Library over them backed by a fake compositor.
func newFixture(t *testing.T, files map[string]string, opts ...shader.Option) *fixture {
	t.Helper()
	root := testutil.WriteTree(t, t.TempDir(), files)
	f := &fixture{
		root:  root,
		dirs:  []string{filepath.Join(root, "d1"), filepath.Join(root, "d2")},
		state: filepath.Join(root, "state"),
		ctl:   &testutil.FakeController{},
	}
	renderer := template.NewRenderer(afero.NewOsFs(), f.state)
	f.lib = shader.NewLibrary(shaderdirs.New(f.dirs...), renderer, f.ctl, opts...)
	return f
}

func (f *fixture) path(rel string) string {
	return filepath.Join(f.root, filepath.FromSlash(rel))
}

func TestNew_InvalidBareNames(t *testing.T) {
	lib := newFixture(t, nil).lib

	for _, arg := range []string{"foo.glsl", "foo.", ".hidden", ""} {
		t.Run(arg, func(t *testing.T) {
			s, err := lib.New(arg)

			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, shader.ErrInvalidArgument))
			var argErr *shader.InvalidArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, arg, argErr.Arg)
		})
	}
}

func TestNew_ExplicitPathDerivesName(t *testing.T) {
	lib := newFixture(t, nil).lib

	s, err := lib.New("/a/b/foo.glsl.mustache")
	require.NoError(t, err)
	assert.Equal(t, "foo", s.Name())
	assert.Equal(t, "foo", s.String())

	// A path with a dot in a directory is still a path.
	s, err = lib.New("/a/b.c/bar")
	require.NoError(t, err)
	assert.Equal(t, "bar", s.Name())
}

func TestNew_RelativePathIsAbsolutized(t *testing.T) {
	f := newFixture(t, map[string]string{"local/warm.glsl": "x"})
	t.Chdir(f.root)

	s, err := f.lib.New("local/warm.glsl")
	require.NoError(t, err)

	path, err := s.Path()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(path))
	assert.Equal(t, f.path("local/warm.glsl"), path)
}

func TestPath_DirectoryPriority(t *testing.T) {
	f := newFixture(t, map[string]string{
		"d1/foo.glsl":     "first",
		"d2/foo.glsl":     "second",
		"d2/only-d2.frag": "x",
	})

	s, err := f.lib.New("foo")
	require.NoError(t, err)
	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, f.path("d1/foo.glsl"), path)

	s, err = f.lib.New("only-d2")
	require.NoError(t, err)
	path, err = s.Path()
	require.NoError(t, err)
	assert.Equal(t, f.path("d2/only-d2.frag"), path)
}

func TestPath_ScanOrderWithinDirectory(t *testing.T) {
	f := newFixture(t, map[string]string{
		"d1/a/foo.glsl":   "nested",
		"d1/foo.glsl":     "top",
		"d1/b/bar.glsl":   "b",
		"d1/a/z/bar.glsl": "a-deep",
	})

	// Files of a directory win over files in its subdirectories.
	s, err := f.lib.New("foo")
	require.NoError(t, err)
	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, f.path("d1/foo.glsl"), path)

	// Subdirectories are visited depth first in lexical order.
	s, err = f.lib.New("bar")
	require.NoError(t, err)
	path, err = s.Path()
	require.NoError(t, err)
	assert.Equal(t, f.path("d1/a/z/bar.glsl"), path)
}

func TestPath_MatchesAllExtensionsStripped(t *testing.T) {
	f := newFixture(t, map[string]string{"d2/vibrance.glsl.mustache": "x"})

	s, err := f.lib.New("vibrance")
	require.NoError(t, err)
	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, f.path("d2/vibrance.glsl.mustache"), path)

	dir, err := s.Dirname()
	require.NoError(t, err)
	assert.Equal(t, f.path("d2"), dir)
}

func TestPath_NotFoundListsDirectories(t *testing.T) {
	f := newFixture(t, map[string]string{"d1/other.glsl": "x"})

	s, err := f.lib.New("missing")
	require.NoError(t, err)

	_, err = s.Path()
	require.Error(t, err)
	assert.True(t, errors.Is(err, shader.ErrNotFound))
	for _, dir := range f.dirs {
		assert.Contains(t, err.Error(), dir)
	}
	var nf *shader.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, f.dirs, nf.Dirs)

	_, err = s.Dirname()
	assert.True(t, errors.Is(err, shader.ErrNotFound))
}

func TestPath_DepthBound(t *testing.T) {
	f := newFixture(t, map[string]string{
		"d1/1/2/3/4/5/shallow.glsl": "x",
		"d1/1/2/3/4/5/6/deep.glsl":  "x",
	})

	s, err := f.lib.New("shallow")
	require.NoError(t, err)
	_, err = s.Path()
	assert.NoError(t, err)

	s, err = f.lib.New("deep")
	require.NoError(t, err)
	_, err = s.Path()
	assert.True(t, errors.Is(err, shader.ErrNotFound))
}

func TestPath_Idempotent(t *testing.T) {
	f := newFixture(t, map[string]string{"d1/foo.glsl": "x", "d2/foo.glsl": "y"})
	s, err := f.lib.New("foo")
	require.NoError(t, err)

	first, err := s.Path()
	require.NoError(t, err)
	second, err := s.Path()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPath_ExplicitPath(t *testing.T) {
	f := newFixture(t, map[string]string{"elsewhere/warm.glsl": "x"})

	s, err := f.lib.New(f.path("elsewhere/warm.glsl"))
	require.NoError(t, err)
	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, f.path("elsewhere/warm.glsl"), path)

	missing, err := f.lib.New(f.path("elsewhere/cold.glsl"))
	require.NoError(t, err)
	_, err = missing.Path()
	require.True(t, errors.Is(err, shader.ErrNotFound))
	assert.Contains(t, err.Error(), "no file found at")
}

func TestPath_ExplicitExistenceIsCached(t *testing.T) {
	f := newFixture(t, map[string]string{"elsewhere/warm.glsl": "x"})
	s, err := f.lib.New(f.path("elsewhere/warm.glsl"))
	require.NoError(t, err)
	_, err = s.Path()
	require.NoError(t, err)

	require.NoError(t, os.Remove(f.path("elsewhere/warm.glsl")))

	// The first answer sticks for the lifetime of the shader.
	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, f.path("elsewhere/warm.glsl"), path)

	fresh, err := f.lib.New(f.path("elsewhere/warm.glsl"))
	require.NoError(t, err)
	_, err = fresh.Path()
	assert.True(t, errors.Is(err, shader.ErrNotFound))
}

func TestEqual(t *testing.T) {
	f := newFixture(t, map[string]string{
		"d1/foo.glsl": "x",
		"d1/bar.glsl": "y",
	})
	byName, err := f.lib.New("foo")
	require.NoError(t, err)
	byPath, err := f.lib.New(f.path("d1/foo.glsl"))
	require.NoError(t, err)
	other, err := f.lib.New("bar")
	require.NoError(t, err)
	missing, err := f.lib.New("missing")
	require.NoError(t, err)

	assert.True(t, byName.Equal(byPath))
	assert.True(t, byPath.Equal(byName))
	assert.False(t, byName.Equal(other))
	assert.False(t, byName.Equal(missing))
	assert.False(t, missing.Equal(missing))
	assert.False(t, byName.Equal(nil))
}

func TestEqual_Symlink(t *testing.T) {
	f := newFixture(t, map[string]string{"d1/foo.glsl": "x"})
	link := f.path("link.glsl")
	if err := os.Symlink(f.path("d1/foo.glsl"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	byName, err := f.lib.New("foo")
	require.NoError(t, err)
	byLink, err := f.lib.New(link)
	require.NoError(t, err)

	assert.True(t, byName.Equal(byLink))
}

func TestOn_SetsResolvedPath(t *testing.T) {
	f := newFixture(t, map[string]string{"d1/foo.glsl": "x"})
	s, err := f.lib.New("foo")
	require.NoError(t, err)

	require.NoError(t, s.On(context.Background()))

	assert.Equal(t, []string{"set " + f.path("d1/foo.glsl")}, f.ctl.Calls)
}

func TestOn_RendersTemplate(t *testing.T) {
	// --- Arrange ---
	vars := func(name string) (any, error) {
		return map[string]any{"strength": 0.25, "shader": name}, nil
	}
	f := newFixture(t, map[string]string{
		"d1/vibrance.glsl.mustache": "// {{shader}}\nconst float S = {{strength}};\n",
	}, shader.WithVariables(vars))
	s, err := f.lib.New("vibrance")
	require.NoError(t, err)

	// --- Act ---
	require.NoError(t, s.On(context.Background()))

	// --- Assert ---
	rendered := filepath.Join(f.state, "vibrance")
	assert.Equal(t, []string{"set " + rendered}, f.ctl.Calls)
	content, err := os.ReadFile(rendered)
	require.NoError(t, err)
	assert.Equal(t, "// vibrance\nconst float S = 0.25;\n", string(content))

	// Path keeps pointing at the unrendered template.
	path, err := s.Path()
	require.NoError(t, err)
	assert.Equal(t, f.path("d1/vibrance.glsl.mustache"), path)
}

func TestOn_VariablesError(t *testing.T) {
	boom := errors.New("boom")
	f := newFixture(t, map[string]string{"d1/t.mustache": "x"},
		shader.WithVariables(func(string) (any, error) { return nil, boom }))
	s, err := f.lib.New("t")
	require.NoError(t, err)

	err = s.On(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, f.ctl.Calls)
}

func TestOn_NotFoundIssuesNoControlCall(t *testing.T) {
	f := newFixture(t, nil)
	s, err := f.lib.New("missing")
	require.NoError(t, err)

	err = s.On(context.Background())

	assert.True(t, errors.Is(err, shader.ErrNotFound))
	assert.Empty(t, f.ctl.Calls)
}

func TestOn_ControlErrorPropagates(t *testing.T) {
	f := newFixture(t, map[string]string{"d1/foo.glsl": "x"})
	f.ctl.Err = errors.New("socket closed")
	s, err := f.lib.New("foo")
	require.NoError(t, err)

	assert.EqualError(t, s.On(context.Background()), "socket closed")
}
