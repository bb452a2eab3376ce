// Package fsutil provides the path and filesystem helpers used to locate
// shader files: extension stripping, basename derivation and a lazy,
// depth-bounded recursive directory scan. All filesystem access goes
// through an afero.Fs so callers can substitute an in-memory tree.
package fsutil
