package ftui

import "strings"

// MenuItem is a titled group of hot keys shown in the instruction line.
type MenuItem struct {
	Title   string
	HotKeys []string
}

// Keys joins the hot keys as the instruction line shows them: "Up|Down".
func (mi MenuItem) Keys() string {
	return strings.Join(mi.HotKeys, "|")
}
