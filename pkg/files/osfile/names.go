package osfile

import (
	"path/filepath"
	"strings"

	"github.com/filetug/filexp/pkg/files"
	"github.com/pkg/errors"
)

// validateName accepts a single path element naming a child of a directory.
func validateName(name string) error {
	switch {
	case name == "", name == ".", name == files.ParentDir:
		return errors.Wrapf(files.ErrInvalidInput, "entry name %q", name)
	case strings.ContainsRune(name, 0):
		return errors.Wrap(files.ErrInvalidInput, "entry name contains NUL")
	case strings.ContainsRune(name, '/'), strings.ContainsRune(name, filepath.Separator):
		return errors.Wrapf(files.ErrInvalidInput, "entry name %q contains a path separator", name)
	}
	return nil
}

// transferPaths resolves the source and destination of a copy or a move.
// dest may be absolute or relative to dir.
func transferPaths(dir, src, dest string) (srcPath, destPath string, err error) {
	if err = validateName(src); err != nil {
		return "", "", err
	}
	if dest == "" || strings.ContainsRune(dest, 0) {
		return "", "", errors.Wrapf(files.ErrInvalidInput, "destination %q", dest)
	}
	srcPath = filepath.Join(dir, src)
	if filepath.IsAbs(dest) {
		destPath = filepath.Clean(dest)
	} else {
		destPath = filepath.Join(dir, dest)
	}
	return srcPath, destPath, nil
}
