package filexp

import (
	"github.com/filetug/filexp/pkg/filexp/ftui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var instructionItems = []ftui.MenuItem{
	{Title: "Move", HotKeys: []string{"Up", "Down"}},
	{Title: "Open", HotKeys: []string{"Enter"}},
	{Title: "Up", HotKeys: []string{"Backspace"}},
	{Title: "touch", HotKeys: []string{"c"}},
	{Title: "mkdir", HotKeys: []string{"C"}},
	{Title: "rm", HotKeys: []string{"d"}},
	{Title: "cp", HotKeys: []string{"y"}},
	{Title: "mv", HotKeys: []string{"m"}},
	{Title: "find", HotKeys: []string{"s"}},
	{Title: "chmod", HotKeys: []string{"p"}},
	{Title: "Help", HotKeys: []string{"h"}},
	{Title: "Quit", HotKeys: []string{"q"}},
}

type segment struct {
	text   string
	hotkey bool
}

// menuSegments lays the items out as "[keys] Title" separated by two spaces.
func menuSegments(menuItems []ftui.MenuItem) []segment {
	const separator = "  "
	segments := make([]segment, 0, len(menuItems)*3)
	for i, mi := range menuItems {
		prefix := "["
		if i > 0 {
			prefix = separator + prefix
		}
		segments = append(segments,
			segment{text: prefix},
			segment{text: mi.Keys(), hotkey: true},
			segment{text: "] " + mi.Title},
		)
	}
	return segments
}

// drawSegments prints segments left to right and returns the x after the
// last printed cell.
func drawSegments(screen tcell.Screen, x, y, width int, segments []segment, textColor, hotkeyColor tcell.Color) int {
	end := x + width
	for _, seg := range segments {
		if x >= end {
			break
		}
		color := textColor
		if seg.hotkey {
			color = hotkeyColor
		}
		_, w := tview.Print(screen, tview.Escape(seg.text), x, y, end-x, tview.AlignLeft, color)
		x += w
	}
	return x
}
