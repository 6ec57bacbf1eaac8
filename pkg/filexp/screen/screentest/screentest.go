// Package screentest has helpers for drawing onto simulation screens in tests.
package screentest

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TB is the part of testing.TB the helpers need.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

var NewSimulationScreen = tcell.NewSimulationScreen

// ReadLine reads a full line from the screen
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		mainc, combc, _, _ := screen.GetContent(x, y)
		str := string(append([]rune{mainc}, combc...))
		if str == "" || str == "\x00" {
			// nothing drawn at this cell
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// ReadScreen returns every line of the screen with trailing spaces trimmed.
func ReadScreen(screen tcell.Screen) []string {
	width, height := screen.Size()
	lines := make([]string, height)
	for y := range lines {
		lines[y] = strings.TrimRight(ReadLine(screen, y, width), " ")
	}
	return lines
}

// NewSimScreen creates an initialized simulation screen of the given size.
func NewSimScreen(t TB, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	return s
}
