package masks

import "github.com/gobwas/glob"

type PatternType int

const (
	Inclusive PatternType = iota
	Exclusive
)

// Pattern is a shell-style glob matched against a base name.
type Pattern struct {
	Type PatternType
	Glob string
}

func (p Pattern) Match(fileName string) (bool, error) {
	g, err := glob.Compile(p.Glob)
	if err != nil {
		return false, err
	}
	return g.Match(fileName), nil
}
