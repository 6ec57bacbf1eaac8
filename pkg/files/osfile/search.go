package osfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/util"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// SearchEntries walks root recursively and returns the full paths of all
// descendants whose base name matches keyword. A keyword containing * or ?
// is a glob matched against the whole base name, anything else is a
// substring. Unreadable sub-trees are skipped and symlinks are not followed.
func (s *Store) SearchEntries(ctx context.Context, root, keyword string) []string {
	results := []string{}
	s.do(ctx, "find", root, func() error {
		match, err := nameMatcher(keyword)
		if err != nil {
			return err
		}
		return util.Walk(newFS(root), ".", func(path string, info os.FileInfo, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if path == "." {
				return errors.Wrapf(err, "failed to read %s", root)
			}
			if err != nil {
				s.log.Debug().Str("path", path).Err(err).Msg("skipping unreadable entry")
				if info == nil {
					return nil
				}
			}
			if match(norm.NFC.String(info.Name())) {
				results = append(results, filepath.Join(root, path))
			}
			return nil
		})
	})
	return results
}

func nameMatcher(keyword string) (func(name string) bool, error) {
	keyword = norm.NFC.String(keyword)
	if strings.ContainsAny(keyword, "*?") {
		g, err := glob.Compile(keyword)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid search pattern %q", keyword)
		}
		return g.Match, nil
	}
	return func(name string) bool {
		return strings.Contains(name, keyword)
	}, nil
}
