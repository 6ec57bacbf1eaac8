//go:build !linux && !darwin && !freebsd && !windows

package osfile

import (
	"github.com/filetug/filexp/pkg/files"
	"github.com/pkg/errors"
)

func freeSpace(dir string) (uint64, error) {
	return 0, errors.Wrapf(files.ErrUnavailable, "free space of %s", dir)
}
