package masks

import (
	"fmt"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

type Mask struct {
	Name     string
	Patterns []Pattern
}

func (m *Mask) String() string {
	return fmt.Sprintf("Mask{Name: %q, Patterns: %+v}", m.Name, m.Patterns)
}

func (m *Mask) Match(fileName string) (bool, error) {
	var result bool
	for _, pattern := range m.Patterns {
		matched, err := pattern.Match(fileName)
		if err != nil {
			return false, err
		}
		if matched {
			if pattern.Type == Inclusive {
				result = true
			}
			if pattern.Type == Exclusive {
				return false, nil
			}
		}
	}
	return result, nil
}

// NewExcludeMask builds a mask that accepts every name except those matching
// one of the given globs. Invalid globs are reported up front.
func NewExcludeMask(name string, globs ...string) (*Mask, error) {
	m := &Mask{
		Name:     name,
		Patterns: []Pattern{{Type: Inclusive, Glob: "*"}},
	}
	for _, g := range globs {
		if _, err := glob.Compile(g); err != nil {
			return nil, errors.Wrapf(err, "invalid mask %q", g)
		}
		m.Patterns = append(m.Patterns, Pattern{Type: Exclusive, Glob: g})
	}
	return m, nil
}
