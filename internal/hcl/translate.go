package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/hyprshade/internal/config"
	"github.com/vk/hyprshade/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// merge folds one decoded file into the model.
func (l *Loader) merge(ctx context.Context, model *config.Model, root *fileRoot) error {
	logger := ctxlog.FromContext(ctx)

	model.ShaderDirs = append(model.ShaderDirs, root.ShaderDirs...)
	if root.StateDir != nil {
		model.StateDir = *root.StateDir
	}
	if root.ControlCommand != nil {
		model.ControlCommand = *root.ControlCommand
	}

	for _, s := range root.Shaders {
		def, err := translateShader(s)
		if err != nil {
			return err
		}
		if _, exists := model.Shaders[def.Name]; exists {
			logger.Debug("Shader settings overridden by a later file.", "shader", def.Name)
		}
		model.Shaders[def.Name] = def
	}
	return nil
}

// translateShader converts a shader block into the agnostic model.
func translateShader(s *shaderBlock) (*config.Shader, error) {
	if s.Name == "" || strings.ContainsAny(s.Name, "./") {
		return nil, fmt.Errorf("shader block name %q must be a bare shader name", s.Name)
	}

	vars := s.Variables
	if vars == cty.NilVal || vars.IsNull() {
		vars = cty.EmptyObjectVal
	}
	if !vars.Type().IsObjectType() && !vars.Type().IsMapType() {
		return nil, fmt.Errorf("variables of shader %q must be an object, got %s", s.Name, vars.Type().FriendlyName())
	}
	if !vars.IsWhollyKnown() {
		return nil, fmt.Errorf("variables of shader %q must be known values", s.Name)
	}

	return &config.Shader{Name: s.Name, Variables: vars}, nil
}
