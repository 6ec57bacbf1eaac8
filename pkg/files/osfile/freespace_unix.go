//go:build linux || darwin || freebsd

package osfile

import "golang.org/x/sys/unix"

var unixStatfs = unix.Statfs

// freeSpace returns the bytes available to unprivileged users.
func freeSpace(dir string) (uint64, error) {
	var st unix.Statfs_t
	if err := unixStatfs(dir, &st); err != nil {
		return 0, err
	}
	return uint64(st.Bavail) * uint64(st.Bsize), nil
}
