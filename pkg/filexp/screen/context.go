// Package screen owns the terminal for the lifetime of the program.
package screen

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Styles used by the renderer.
type Styles struct {
	Default   tcell.Style
	Title     tcell.Style
	Path      tcell.Style
	Header    tcell.Style
	Directory tcell.Color
	Selected  tcell.Style
	Footer    tcell.Style
	Hint      tcell.Style
	Status    tcell.Style
}

var DefaultStyles = Styles{
	Default:   tcell.StyleDefault,
	Title:     tcell.StyleDefault.Foreground(tcell.ColorCornflowerBlue).Bold(true),
	Path:      tcell.StyleDefault.Foreground(tcell.ColorGreen),
	Header:    tcell.StyleDefault.Foreground(tcell.ColorWhiteSmoke).Bold(true),
	Directory: tcell.ColorDodgerBlue,
	Selected:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	Footer:    tcell.StyleDefault.Foreground(tcell.ColorGreen),
	Hint:      tcell.StyleDefault.Foreground(tcell.ColorSlateGray),
	Status:    tcell.StyleDefault.Foreground(tcell.ColorWhite),
}

// Context is the acquired terminal. It is only valid inside Run.
type Context struct {
	Screen tcell.Screen
	Styles Styles
}

// Size returns the terminal width and height.
func (c *Context) Size() (width, height int) {
	return c.Screen.Size()
}

var NewScreen = tcell.NewScreen

// Run initializes the terminal, hands it to fn and restores it afterwards,
// also when fn panics.
func Run(newScreen func() (tcell.Screen, error), fn func(*Context) error) (err error) {
	s, err := newScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create screen")
	}
	if err = s.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}
	defer s.Fini()

	s.SetStyle(DefaultStyles.Default)
	s.HideCursor()
	s.Clear()
	return fn(&Context{Screen: s, Styles: DefaultStyles})
}
