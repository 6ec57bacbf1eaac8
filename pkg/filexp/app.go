package filexp

import (
	"context"

	"github.com/filetug/filexp/pkg/filexp/ftlog"
	"github.com/filetug/filexp/pkg/filexp/screen"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

// App is the single-threaded input loop: draw, wait for one event, apply it.
type App struct {
	nav    *Navigator
	sc     *screen.Context
	render *renderer
	log    zerolog.Logger

	input       *tview.InputField
	inputActive bool
	inputDone   *Command
}

func NewApp(nav *Navigator, sc *screen.Context) *App {
	a := &App{
		nav:    nav,
		sc:     sc,
		render: newRenderer(sc),
		log:    ftlog.Get("app"),
	}
	a.input = tview.NewInputField().
		SetFieldBackgroundColor(tcell.ColorDefault).
		SetFieldTextColor(tcell.ColorWhite).
		SetLabelColor(tcell.ColorYellow)
	a.input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			cmd := Submit(a.input.GetText())
			a.inputDone = &cmd
		case tcell.KeyEscape:
			a.inputDone = &Command{Kind: CmdCancel}
		}
	})
	return a
}

// Run returns when the navigator reaches ModeQuit, the screen is finalized
// or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.resize()
	for a.nav.Mode() != ModeQuit {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.render.draw(ctx, a.nav, a.input)
		event := a.sc.Screen.PollEvent()
		if event == nil {
			a.log.Debug().Msg("screen finalized")
			return nil
		}
		a.handleEvent(ctx, event)
	}
	a.log.Debug().Msg("quit")
	return nil
}

func (a *App) handleEvent(ctx context.Context, event tcell.Event) {
	switch ev := event.(type) {
	case *tcell.EventResize:
		a.resize()
		a.sc.Screen.Sync()
	case *tcell.EventKey:
		a.handleKey(ctx, ev)
	}
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) {
	switch a.nav.Mode() {
	case ModePrompting:
		a.input.InputHandler()(ev, func(tview.Primitive) {})
		if a.inputDone != nil {
			cmd := *a.inputDone
			a.inputDone = nil
			a.inputActive = false
			a.nav.Dispatch(ctx, cmd)
		}
	case ModeHelp, ModeSearchResults:
		a.nav.Dispatch(ctx, Command{Kind: CmdAny})
	default:
		a.nav.Dispatch(ctx, DecodeKey(ev))
	}
	if a.nav.Mode() == ModePrompting && !a.inputActive {
		a.startInput(a.nav.Prompt())
	}
}

func (a *App) startInput(purpose PromptPurpose) {
	a.inputActive = true
	a.inputDone = nil
	a.input.SetLabel(purpose.Label() + ": ")
	a.input.SetText("")
	a.input.Focus(nil)
}

func (a *App) resize() {
	_, h := a.sc.Size()
	a.nav.SetViewportHeight(viewportHeightFor(h))
}
