package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/vk/hyprshade/internal/config"
	"github.com/vk/hyprshade/internal/ctxlog"
	"github.com/vk/hyprshade/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	fs      afero.Fs
	environ []string
}

// NewLoader creates a new HCL configuration loader reading from the OS
// filesystem. Expressions may reference environment variables as env.NAME.
func NewLoader() *Loader {
	return NewLoaderFs(afero.NewOsFs(), os.Environ())
}

// NewLoaderFs creates a loader over fsys with the given environment, in
// os.Environ form.
func NewLoaderFs(fsys afero.Fs, environ []string) *Loader {
	return &Loader{fs: fsys, environ: environ}
}

// Load parses every .hcl file found at paths (a file or a directory) and
// merges them in order. Later files override scalar settings and shader
// blocks of the same name; shader_dirs accumulate.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(l.fs, path, ".hcl")
		if err != nil {
			return nil, nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()
	evalCtx := l.evalContext()

	for _, file := range files {
		src, err := afero.ReadFile(l.fs, file)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		hclFile, diags := parser.ParseHCL(src, file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if err := l.merge(ctx, model, &root); err != nil {
			return nil, nil, fmt.Errorf("invalid configuration in %s: %w", file, err)
		}
	}

	logger.Debug("HCL loading complete.", "shader_dirs", len(model.ShaderDirs), "shaders", len(model.Shaders))
	return model, NewConverter(), nil
}

// evalContext exposes the environment as an `env` object.
func (l *Loader) evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value, len(l.environ))
	for _, kv := range l.environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(env)},
	}
}
