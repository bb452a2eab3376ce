package config

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths, merges it into the
	// format-agnostic model, and returns a matching Converter. Paths that
	// do not exist are an error; callers decide whether a default path is
	// optional before passing it in.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter turns configuration values into plain Go values, e.g. for use
// as template data.
type Converter interface {
	// ToNative converts v into nil, string, bool, float64, int64, []any or
	// map[string]any.
	ToNative(v cty.Value) (any, error)
}
