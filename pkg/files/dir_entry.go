package files

import "path/filepath"

func NewDirEntry(name string, isDir bool, o ...FileInfoOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{
		name:  name,
		isDir: isDir,
	}
	if len(o) > 0 {
		dirEntry.info = NewFileInfo(o...)
	}
	return dirEntry
}

// DirEntry is a transient view of a named entry inside a listed directory.
type DirEntry struct {
	name  string
	isDir bool
	info  *FileInfo
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }

// Size is 0 for directories and for entries created without metadata.
func (d DirEntry) Size() int64 {
	if d.isDir {
		return 0
	}
	return d.info.Size()
}

// Perms returns the 9-character permission string, or NoPermissions when
// the entry carries no metadata.
func (d DirEntry) Perms() string {
	if d.info == nil || d.info.perms == "" {
		return NoPermissions
	}
	return d.info.perms
}
