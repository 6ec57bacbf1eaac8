package ftui

import (
	"os"
	"strings"
)

type FilterFunc func(os.DirEntry) bool

// Filter decides which children of a directory are listed.
// Directories are hidden only by ShowHidden and MaskFilter.
type Filter struct {
	ShowHidden bool
	MaskFilter FilterFunc
}

func (f Filter) IsEmpty() bool {
	return f.ShowHidden && f.MaskFilter == nil
}

func (f Filter) IsVisible(entry os.DirEntry) bool {
	if !f.ShowHidden && strings.HasPrefix(entry.Name(), ".") {
		return false
	}
	if f.MaskFilter != nil && !f.MaskFilter(entry) {
		return false
	}
	return true
}
