package filexp

import (
	"context"
	"path"
	"sort"
	"strings"

	"github.com/filetug/filexp/pkg/files"
)

type fakeEntry struct {
	isDir bool
	size  int64
	perms string
}

// fakeStore is an in-memory files.Store. Paths use forward slashes.
type fakeStore struct {
	entries map[string]*fakeEntry // full path -> entry
	fail    map[string]bool       // operation name -> forced failure

	listCalls  int
	chmodCalls int
	copies     [][3]string
	moves      [][3]string
}

var _ files.Store = (*fakeStore)(nil)

func newFakeStore(paths ...string) *fakeStore {
	s := &fakeStore{
		entries: map[string]*fakeEntry{"/": {isDir: true, perms: "rwxr-xr-x"}},
		fail:    map[string]bool{},
	}
	for _, p := range paths {
		if strings.HasSuffix(p, "/") {
			s.add(strings.TrimSuffix(p, "/"), true)
		} else {
			s.add(p, false)
		}
	}
	return s
}

func (s *fakeStore) add(p string, isDir bool) {
	for dir := path.Dir(p); dir != "/"; dir = path.Dir(dir) {
		if _, ok := s.entries[dir]; !ok {
			s.entries[dir] = &fakeEntry{isDir: true, perms: "rwxr-xr-x"}
		}
	}
	e := &fakeEntry{isDir: isDir, perms: "rw-r--r--", size: int64(len(path.Base(p)))}
	if isDir {
		e.perms = "rwxr-xr-x"
		e.size = 0
	}
	s.entries[p] = e
}

func (s *fakeStore) has(p string) bool {
	_, ok := s.entries[p]
	return ok
}

func (s *fakeStore) ListEntries(_ context.Context, dir string) []string {
	s.listCalls++
	names := []string{}
	for p := range s.entries {
		if p != "/" && path.Dir(p) == dir {
			names = append(names, path.Base(p))
		}
	}
	sort.Strings(names)
	return names
}

func (s *fakeStore) ChangeDirectory(_ context.Context, dir, token string) (string, bool) {
	if s.fail["cd"] {
		return "", false
	}
	target := path.Join(dir, token)
	if token == files.ParentDir && dir == "/" {
		return "", false
	}
	if e, ok := s.entries[target]; !ok || !e.isDir {
		return "", false
	}
	return target, true
}

func (s *fakeStore) CreateFile(_ context.Context, dir, name string) bool {
	if s.fail["touch"] {
		return false
	}
	if !s.has(path.Join(dir, name)) {
		s.add(path.Join(dir, name), false)
	}
	return true
}

func (s *fakeStore) CreateDirectory(_ context.Context, dir, name string) bool {
	p := path.Join(dir, name)
	if s.fail["mkdir"] || s.has(p) {
		return false
	}
	s.add(p, true)
	return true
}

func (s *fakeStore) DeleteEntry(_ context.Context, dir, name string) bool {
	p := path.Join(dir, name)
	if s.fail["rm"] || !s.has(p) {
		return false
	}
	delete(s.entries, p)
	return true
}

func (s *fakeStore) CopyEntry(_ context.Context, dir, src, dest string) bool {
	s.copies = append(s.copies, [3]string{dir, src, dest})
	if s.fail["cp"] || !s.has(path.Join(dir, src)) {
		return false
	}
	e := *s.entries[path.Join(dir, src)]
	s.entries[path.Join(dir, dest)] = &e
	return true
}

func (s *fakeStore) MoveEntry(_ context.Context, dir, src, dest string) bool {
	s.moves = append(s.moves, [3]string{dir, src, dest})
	if s.fail["mv"] || !s.has(path.Join(dir, src)) {
		return false
	}
	s.entries[path.Join(dir, dest)] = s.entries[path.Join(dir, src)]
	delete(s.entries, path.Join(dir, src))
	return true
}

func (s *fakeStore) SearchEntries(_ context.Context, root, keyword string) []string {
	results := []string{}
	for p := range s.entries {
		if p != root && strings.HasPrefix(p, root) && strings.Contains(path.Base(p), keyword) {
			results = append(results, p)
		}
	}
	sort.Strings(results)
	return results
}

func (s *fakeStore) GetPermissions(_ context.Context, dir, name string) string {
	if e, ok := s.entries[path.Join(dir, name)]; ok {
		return e.perms
	}
	return files.NoPermissions
}

func (s *fakeStore) SetPermissions(_ context.Context, dir, name, mode string) bool {
	s.chmodCalls++
	e, ok := s.entries[path.Join(dir, name)]
	if s.fail["chmod"] || !ok || len(mode) != files.PermsLen {
		return false
	}
	e.perms = files.FormatPerms(files.ParsePerms(mode))
	return true
}

func (s *fakeStore) IsDirectory(_ context.Context, dir, name string) bool {
	e, ok := s.entries[path.Join(dir, name)]
	return ok && e.isDir
}

func (s *fakeStore) GetFreeSpace(context.Context, string) uint64 {
	return 42
}

func (s *fakeStore) GetEntrySize(_ context.Context, dir, name string) int64 {
	if e, ok := s.entries[path.Join(dir, name)]; ok && !e.isDir {
		return e.size
	}
	return 0
}

type fakeLauncher struct {
	launched []string
	err      error
}

func (l *fakeLauncher) Launch(p string) error {
	l.launched = append(l.launched, p)
	return l.err
}
