package osfile

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/filetug/filexp/pkg/files"
	"github.com/filetug/filexp/pkg/fsutils"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
)

var osReadlink = os.Readlink
var osSymlink = os.Symlink

// newFS returns a filesystem rooted at dir. Paths passed to it are relative.
var newFS = func(dir string) billy.Filesystem {
	return osfs.New(dir)
}

// copyEntry copies a file or a directory tree to destPath. The parent of
// destPath must already exist. A file copied onto an existing directory
// lands inside it and overwrites a file of the same name there. A directory
// is only copied to a path that does not exist yet.
func copyEntry(ctx context.Context, srcPath, destPath string) error {
	srcReal, err := evalSymlinks(srcPath)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve source %s", srcPath)
	}
	srcInfo, err := osStat(srcReal)
	if err != nil {
		return errors.Wrapf(err, "failed to stat source %s", srcReal)
	}
	destReal, err := resolveDest(destPath)
	if err != nil {
		return err
	}
	destInfo, destErr := osStat(destReal)
	if srcInfo.IsDir() {
		if fsutils.IsWithin(srcReal, destReal) {
			return errors.Wrapf(files.ErrInvalidInput, "cannot copy %s into itself", srcReal)
		}
		if destErr == nil {
			return errors.Wrapf(os.ErrExist, "cannot copy directory %s onto existing %s", srcReal, destReal)
		}
	} else {
		if destErr == nil && destInfo.IsDir() {
			if destReal, err = evalSymlinks(destReal); err != nil {
				return errors.Wrapf(err, "failed to resolve destination %s", destPath)
			}
			destReal = filepath.Join(destReal, filepath.Base(srcReal))
			destInfo, destErr = osStat(destReal)
		}
		if destErr == nil && os.SameFile(srcInfo, destInfo) {
			return errors.Wrapf(files.ErrInvalidInput, "%s and %s are the same file", srcPath, destReal)
		}
	}
	srcFS := newFS(filepath.Dir(srcReal))
	destFS := newFS(filepath.Dir(destReal))
	return copyTree(ctx, srcFS, filepath.Base(srcReal), destFS, filepath.Base(destReal))
}

// resolveDest canonicalizes the parent of destPath, which has to be an
// existing directory.
func resolveDest(destPath string) (string, error) {
	parent, err := evalSymlinks(filepath.Dir(destPath))
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve destination dir of %s", destPath)
	}
	info, err := osStat(parent)
	if err != nil {
		return "", errors.Wrapf(err, "failed to stat %s", parent)
	}
	if !info.IsDir() {
		return "", errors.Wrap(files.ErrNotDirectory, parent)
	}
	return filepath.Join(parent, filepath.Base(destPath)), nil
}

func copyTree(ctx context.Context, srcFS billy.Filesystem, srcRoot string, destFS billy.Filesystem, destRoot string) error {
	return util.Walk(srcFS, srcRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err = ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return err
		}
		target := filepath.Join(destRoot, rel)
		switch mode := info.Mode(); {
		case mode.IsDir():
			return errors.Wrapf(destFS.MkdirAll(target, mode.Perm()), "failed to create dir %s", target)
		case mode&os.ModeSymlink != 0:
			return copySymlink(srcFS, path, destFS, target)
		case mode.IsRegular():
			return copyFile(srcFS, path, destFS, target, mode.Perm())
		default:
			return nil // devices, sockets and pipes are skipped
		}
	})
}

func copyFile(srcFS billy.Filesystem, srcName string, destFS billy.Filesystem, destName string, perm os.FileMode) (err error) {
	src, err := srcFS.Open(srcName)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", srcName)
	}
	defer func() {
		_ = src.Close()
	}()
	dest, err := destFS.OpenFile(destName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s for writing", destName)
	}
	defer func() {
		if closeErr := dest.Close(); err == nil {
			err = closeErr
		}
	}()
	_, err = io.Copy(dest, src)
	return errors.Wrapf(err, "failed to copy %s", srcName)
}

func copySymlink(srcFS billy.Filesystem, srcName string, destFS billy.Filesystem, destName string) error {
	target, err := osReadlink(srcFS.Join(srcFS.Root(), srcName))
	if err != nil {
		return errors.Wrapf(err, "failed to read link %s", srcName)
	}
	linkPath := destFS.Join(destFS.Root(), destName)
	if _, err = os.Lstat(linkPath); err == nil {
		if err = osRemove(linkPath); err != nil {
			return errors.Wrapf(err, "failed to replace %s", linkPath)
		}
	}
	return errors.Wrapf(osSymlink(target, linkPath), "failed to create link %s", linkPath)
}

// moveEntry renames srcPath to destPath, falling back to copy and delete
// when they live on different devices.
func moveEntry(ctx context.Context, srcPath, destPath string) error {
	err := osRename(srcPath, destPath)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return errors.Wrapf(err, "failed to rename %s to %s", srcPath, destPath)
	}
	if err = copyEntry(ctx, srcPath, destPath); err != nil {
		return err
	}
	srcFS := newFS(filepath.Dir(srcPath))
	return errors.Wrapf(util.RemoveAll(srcFS, filepath.Base(srcPath)), "failed to remove %s after copy", srcPath)
}
