package osfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/filetug/filexp/pkg/files"
	"github.com/filetug/filexp/pkg/filexp/ftlog"
	"github.com/filetug/filexp/pkg/filexp/ftui"
	"github.com/filetug/filexp/pkg/fsutils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var osReadDir = os.ReadDir
var osMkdir = os.Mkdir
var osOpenFile = os.OpenFile
var osOpen = os.Open
var osRemove = os.Remove
var osRename = os.Rename
var osChmod = os.Chmod
var osStat = os.Stat
var evalSymlinks = filepath.EvalSymlinks

var _ files.Store = (*Store)(nil)

// Store is the local filesystem adapter. It keeps no per-session state:
// every call receives the directory it operates in.
type Store struct {
	filter    ftui.Filter
	dirsFirst bool
	log       zerolog.Logger
}

type Option func(*Store)

// WithFilter hides the entries the filter rejects from ListEntries.
func WithFilter(filter ftui.Filter) Option {
	return func(s *Store) {
		s.filter = filter
	}
}

// WithDirsFirst lists directories before files.
func WithDirsFirst(v bool) Option {
	return func(s *Store) {
		s.dirsFirst = v
	}
}

func NewStore(o ...Option) *Store {
	s := &Store{
		filter: ftui.Filter{ShowHidden: true},
		log:    ftlog.Get("osfile"),
	}
	for _, opt := range o {
		opt(s)
	}
	return s
}

// do runs fn and turns any error or panic into a logged false.
func (s *Store) do(ctx context.Context, op, path string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.fail(op, path, errors.Errorf("panic: %v", r))
			ok = false
		}
	}()
	if err := ctx.Err(); err != nil {
		s.fail(op, path, err)
		return false
	}
	if err := fn(); err != nil {
		s.fail(op, path, err)
		return false
	}
	return true
}

func (s *Store) fail(op, path string, err error) {
	s.log.Warn().
		Str("kind", files.Classify(err).String()).
		Str("op", op).
		Str("path", path).
		Err(err).
		Msg("operation failed")
}

func (s *Store) ListEntries(ctx context.Context, dir string) []string {
	var names []string
	ok := s.do(ctx, "list", dir, func() error {
		entries, err := osReadDir(dir)
		if err != nil {
			return errors.Wrapf(err, "failed to read dir %s", dir)
		}
		var dirs map[string]bool
		if s.dirsFirst {
			dirs = make(map[string]bool, len(entries))
		}
		names = make([]string, 0, len(entries))
		for _, entry := range entries {
			if !s.filter.IsEmpty() && !s.filter.IsVisible(entry) {
				continue
			}
			name := entry.Name()
			names = append(names, name)
			if dirs != nil {
				dirs[name] = isDir(filepath.Join(dir, name))
			}
		}
		if dirs != nil {
			sortDirsFirst(names, dirs)
		}
		return nil
	})
	if !ok {
		return []string{}
	}
	return names
}

// sortDirsFirst keeps the by-name order inside each group.
func sortDirsFirst(names []string, dirs map[string]bool) {
	sort.SliceStable(names, func(i, j int) bool {
		return dirs[names[i]] && !dirs[names[j]]
	})
}

func (s *Store) ChangeDirectory(ctx context.Context, dir, token string) (string, bool) {
	var newPath string
	ok := s.do(ctx, "cd", filepath.Join(dir, token), func() (err error) {
		var target string
		switch {
		case token == files.ParentDir:
			target = filepath.Dir(dir)
			if target == dir {
				return errors.Wrap(files.ErrAtRoot, dir)
			}
		case filepath.IsAbs(token):
			target = token
		default:
			target = filepath.Join(dir, token)
		}
		newPath, err = canonicalDir(target)
		return err
	})
	if !ok {
		return "", false
	}
	return newPath, true
}

// canonicalDir resolves symlinks and checks the result is a directory the
// process can open.
func canonicalDir(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to get absolute path of %s", path)
	}
	resolved, err := evalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", abs)
	}
	info, err := osStat(resolved)
	if err != nil {
		return "", errors.Wrapf(err, "failed to stat %s", resolved)
	}
	if !info.IsDir() {
		return "", errors.Wrap(files.ErrNotDirectory, resolved)
	}
	f, err := osOpen(resolved)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s", resolved)
	}
	_ = f.Close()
	return resolved, nil
}

// CanonicalDir is the startup variant of ChangeDirectory.
func CanonicalDir(path string) (string, error) {
	return canonicalDir(path)
}

func (s *Store) CreateFile(ctx context.Context, dir, name string) bool {
	path := filepath.Join(dir, name)
	return s.do(ctx, "touch", path, func() error {
		if err := validateName(name); err != nil {
			return err
		}
		f, err := osOpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return errors.Wrapf(err, "failed to create file %s", path)
		}
		return f.Close()
	})
}

func (s *Store) CreateDirectory(ctx context.Context, dir, name string) bool {
	path := filepath.Join(dir, name)
	return s.do(ctx, "mkdir", path, func() error {
		if err := validateName(name); err != nil {
			return err
		}
		return errors.Wrapf(osMkdir(path, 0o755), "failed to create dir %s", path)
	})
}

// DeleteEntry removes a file, a symlink or an empty directory.
func (s *Store) DeleteEntry(ctx context.Context, dir, name string) bool {
	path := filepath.Join(dir, name)
	return s.do(ctx, "rm", path, func() error {
		if err := validateName(name); err != nil {
			return err
		}
		return errors.Wrapf(osRemove(path), "failed to remove %s", path)
	})
}

func (s *Store) CopyEntry(ctx context.Context, dir, src, dest string) bool {
	return s.do(ctx, "cp", filepath.Join(dir, src), func() error {
		srcPath, destPath, err := transferPaths(dir, src, dest)
		if err != nil {
			return err
		}
		return copyEntry(ctx, srcPath, destPath)
	})
}

func (s *Store) MoveEntry(ctx context.Context, dir, src, dest string) bool {
	return s.do(ctx, "mv", filepath.Join(dir, src), func() error {
		srcPath, destPath, err := transferPaths(dir, src, dest)
		if err != nil {
			return err
		}
		return moveEntry(ctx, srcPath, destPath)
	})
}

func (s *Store) GetPermissions(ctx context.Context, dir, name string) string {
	perms := files.NoPermissions
	path := filepath.Join(dir, name)
	s.do(ctx, "perms", path, func() error {
		info, err := osStat(path)
		if err != nil {
			return errors.Wrapf(err, "failed to stat %s", path)
		}
		perms = files.FormatPerms(info.Mode())
		return nil
	})
	return perms
}

// SetPermissions applies a 9-character rwx string. Characters other than the
// expected letter clear the bit.
func (s *Store) SetPermissions(ctx context.Context, dir, name, mode string) bool {
	path := filepath.Join(dir, name)
	return s.do(ctx, "chmod", path, func() error {
		if len(mode) != files.PermsLen {
			return errors.Wrapf(files.ErrInvalidInput, "permission string %q", mode)
		}
		return errors.Wrapf(osChmod(path, files.ParsePerms(mode)), "failed to chmod %s", path)
	})
}

// IsDirectory follows symlinks.
func (s *Store) IsDirectory(ctx context.Context, dir, name string) bool {
	var result bool
	path := filepath.Join(dir, name)
	s.do(ctx, "isdir", path, func() error {
		result = isDir(path)
		return nil
	})
	return result
}

func isDir(path string) bool {
	info, err := osStat(path)
	return err == nil && info.IsDir()
}

func (s *Store) GetFreeSpace(ctx context.Context, dir string) uint64 {
	var gib uint64
	s.do(ctx, "df", dir, func() error {
		avail, err := freeSpace(dir)
		if err != nil {
			return errors.Wrapf(err, "failed to query free space of %s", dir)
		}
		gib = fsutils.WholeGiB(avail)
		return nil
	})
	return gib
}

// GetEntrySize returns the byte size of a file, following symlinks.
// Directories report 0.
func (s *Store) GetEntrySize(ctx context.Context, dir, name string) int64 {
	var size int64
	path := filepath.Join(dir, name)
	s.do(ctx, "size", path, func() error {
		info, err := osStat(path)
		if err != nil {
			return errors.Wrapf(err, "failed to stat %s", path)
		}
		if !info.IsDir() {
			size = info.Size()
		}
		return nil
	})
	return size
}

func (s *Store) String() string {
	return fmt.Sprintf("osfile.Store{showHidden: %v, dirsFirst: %v}", s.filter.ShowHidden, s.dirsFirst)
}
