package hcl

import (
	"github.com/zclconf/go-cty/cty"
)

// fileRoot is the structure every configuration file is decoded into.
type fileRoot struct {
	ShaderDirs     []string       `hcl:"shader_dirs,optional"`
	StateDir       *string        `hcl:"state_dir,optional"`
	ControlCommand *string        `hcl:"control_command,optional"`
	Shaders        []*shaderBlock `hcl:"shader,block"`
}

// shaderBlock is a `shader "<name>" { ... }` block.
type shaderBlock struct {
	Name      string    `hcl:"name,label"`
	Variables cty.Value `hcl:"variables,optional"`
}
