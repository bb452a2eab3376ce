package fsutil

import (
	"iter"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileEntry is a regular file discovered by ScanRecursive.
type FileEntry struct {
	Name string
	Path string
}

// ScanRecursive returns a lazy sequence of the regular files reachable from
// dir. The walk is depth first: the files of a directory come first in
// lexical order, then each subdirectory in lexical order. dir itself is at
// depth 0 and subdirectories are only entered while the current depth is
// below maxDepth. Symlinks are followed; the depth bound ends cycles.
//
// A directory that does not exist or cannot be read contributes nothing.
// Breaking out of the range loop stops the walk, and the sequence can be
// ranged over again to restart it.
func ScanRecursive(fsys afero.Fs, dir string, maxDepth int) iter.Seq[FileEntry] {
	return func(yield func(FileEntry) bool) {
		scanDir(fsys, dir, maxDepth, yield)
	}
}

// scanDir returns false once yield asked to stop.
func scanDir(fsys afero.Fs, dir string, depth int, yield func(FileEntry) bool) bool {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return true
	}

	var subdirs []string
	for _, info := range infos {
		name := info.Name()
		path := filepath.Join(dir, name)
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fsys.Stat(path)
			if err != nil {
				continue // dangling
			}
			info = target
		}

		switch {
		case info.IsDir():
			subdirs = append(subdirs, path)
		case info.Mode().IsRegular():
			if !yield(FileEntry{Name: name, Path: path}) {
				return false
			}
		}
	}

	if depth <= 0 {
		return true
	}
	for _, sub := range subdirs {
		if !scanDir(fsys, sub, depth-1, yield) {
			return false
		}
	}
	return true
}
