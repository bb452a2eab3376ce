package config

import (
	"github.com/zclconf/go-cty/cty"
)

// Model is the merged configuration of all loaded files.
type Model struct {
	// ShaderDirs are searched before the built-in shader directories.
	ShaderDirs []string
	// StateDir overrides where rendered templates are written.
	StateDir string
	// ControlCommand overrides the compositor control command line.
	ControlCommand string
	Shaders        map[string]*Shader
}

// Shader holds per-shader settings, keyed by the shader's logical name.
type Shader struct {
	Name      string
	Variables cty.Value
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Shaders: make(map[string]*Shader)}
}

// Variables returns the template variables configured for the named shader,
// or cty.EmptyObjectVal when there are none.
func (m *Model) Variables(name string) cty.Value {
	if m == nil {
		return cty.EmptyObjectVal
	}
	s, ok := m.Shaders[name]
	if !ok || s.Variables == cty.NilVal || s.Variables.IsNull() {
		return cty.EmptyObjectVal
	}
	return s.Variables
}
