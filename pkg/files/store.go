package files

import "context"

// Store is the filesystem boundary the navigator depends on.
//
// Every method is synchronous and reports failure through its return value
// (false, an empty slice, a zero size or NoPermissions). Implementations must
// not let errors or panics escape to the caller.
type Store interface {
	ListEntries(ctx context.Context, dir string) []string
	ChangeDirectory(ctx context.Context, dir, token string) (string, bool)

	CreateFile(ctx context.Context, dir, name string) bool
	CreateDirectory(ctx context.Context, dir, name string) bool
	DeleteEntry(ctx context.Context, dir, name string) bool
	CopyEntry(ctx context.Context, dir, src, dest string) bool
	MoveEntry(ctx context.Context, dir, src, dest string) bool

	SearchEntries(ctx context.Context, root, keyword string) []string

	GetPermissions(ctx context.Context, dir, name string) string
	SetPermissions(ctx context.Context, dir, name, mode string) bool

	IsDirectory(ctx context.Context, dir, name string) bool
	GetFreeSpace(ctx context.Context, dir string) uint64
	GetEntrySize(ctx context.Context, dir, name string) int64
}

// ParentDir is the token ChangeDirectory accepts for moving one level up.
const ParentDir = ".."

// Describe collects the render-time metadata of a single entry.
// It is computed on every call so permission and size changes are visible
// immediately.
func Describe(ctx context.Context, store Store, dir, name string) DirEntry {
	isDir := store.IsDirectory(ctx, dir, name)
	var size int64
	if !isDir {
		size = store.GetEntrySize(ctx, dir, name)
	}
	return NewDirEntry(name, isDir,
		Size(size),
		Perms(store.GetPermissions(ctx, dir, name)),
	)
}
