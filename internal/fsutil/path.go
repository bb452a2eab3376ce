package fsutil

import (
	"path/filepath"
	"strings"
)

// StripAllExtensions removes every extension from filename, not only the
// last one: "foo.glsl.mustache" becomes "foo". Leading dots are part of the
// name, so ".hidden.glsl" becomes ".hidden".
func StripAllExtensions(filename string) string {
	prefix := len(filename) - len(strings.TrimLeft(filename, "."))
	if i := strings.IndexByte(filename[prefix:], '.'); i >= 0 {
		return filename[:prefix+i]
	}
	return filename
}

// StrippedBasename returns the final element of path with all extensions
// removed.
func StrippedBasename(path string) string {
	return StripAllExtensions(filepath.Base(path))
}

// Ext returns the last extension of path without the leading dot.
func Ext(path string) string {
	base := filepath.Base(path)
	if StripAllExtensions(base) == base {
		return ""
	}
	return strings.TrimPrefix(filepath.Ext(base), ".")
}
