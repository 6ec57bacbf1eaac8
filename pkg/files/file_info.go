package files

// FileInfoOption sets render-time metadata on a DirEntry.
type FileInfoOption func(*FileInfo)

// FileInfo is the metadata the entries table shows next to a name.
type FileInfo struct {
	size  int64
	perms string
}

func NewFileInfo(o ...FileInfoOption) (info *FileInfo) {
	info = &FileInfo{}
	for _, opt := range o {
		opt(info)
	}
	return
}

func Size(v int64) FileInfoOption {
	return func(info *FileInfo) {
		info.size = v
	}
}

func Perms(v string) FileInfoOption {
	return func(info *FileInfo) {
		info.perms = v
	}
}

func (f *FileInfo) Size() int64 {
	if f == nil {
		return 0
	}
	return f.size
}
