package fsutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FindFilesByExtension returns root itself when it is a file with the given
// extension, or every such file below root when it is a directory, in
// lexical walk order.
func FindFilesByExtension(fsys afero.Fs, root string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	info, err := fsys.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if strings.HasSuffix(root, extension) {
			return []string{root}, nil
		}
		return nil, nil
	}

	var files []string
	err = afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(filepath.Base(path), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
