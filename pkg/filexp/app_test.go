package filexp

import (
	"context"
	"testing"

	"github.com/filetug/filexp/pkg/filexp/screen"
	"github.com/filetug/filexp/pkg/filexp/screen/screentest"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

// scriptedScreen replays events and then reports the screen as finalized.
type scriptedScreen struct {
	tcell.SimulationScreen
	events []tcell.Event
	synced int
}

func (s *scriptedScreen) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func (s *scriptedScreen) Sync() {
	s.synced++
	s.SimulationScreen.Sync()
}

func runes(text string) []tcell.Event {
	events := make([]tcell.Event, 0, len(text))
	for _, r := range text {
		events = append(events, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	return events
}

func key(k tcell.Key) tcell.Event {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func newScriptedApp(t *testing.T, store *fakeStore, width, height int, events ...tcell.Event) (*App, *scriptedScreen) {
	t.Helper()
	sim := screentest.NewSimScreen(t, width, height)
	t.Cleanup(sim.Fini)
	s := &scriptedScreen{SimulationScreen: sim, events: events}
	sc := &screen.Context{Screen: s, Styles: screen.DefaultStyles}
	nav, _ := newTestNavigator(t, store)
	return NewApp(nav, sc), s
}

func TestApp_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("create_file_then_quit", func(t *testing.T) {
		store := scenarioStore()
		events := append(runes("jcx"), key(tcell.KeyEnter))
		events = append(events, runes("q")...)
		app, _ := newScriptedApp(t, store, 80, 24, events...)

		err := app.Run(ctx)
		assert.NoError(t, err)
		assert.Equal(t, ModeQuit, app.nav.Mode())
		assert.True(t, store.has("/root/x"))
		assert.Equal(t, msgFileCreated, app.nav.Message())
		assert.Equal(t, "b.txt", selected(app.nav))
	})

	t.Run("escape_cancels_prompt", func(t *testing.T) {
		store := scenarioStore()
		events := append(runes("cab"), key(tcell.KeyEscape))
		app, _ := newScriptedApp(t, store, 80, 24, events...)

		assert.NoError(t, app.Run(ctx))
		assert.Equal(t, ModeBrowsing, app.nav.Mode())
		assert.False(t, store.has("/root/ab"))
	})

	t.Run("prompt_keys_are_not_commands", func(t *testing.T) {
		store := scenarioStore()
		events := append(runes("cq"), key(tcell.KeyEnter))
		app, _ := newScriptedApp(t, store, 80, 24, events...)

		assert.NoError(t, app.Run(ctx))
		assert.Equal(t, ModeBrowsing, app.nav.Mode())
		assert.True(t, store.has("/root/q"))
	})

	t.Run("any_key_leaves_help", func(t *testing.T) {
		app, _ := newScriptedApp(t, scenarioStore(), 80, 24, runes("hq")...)
		assert.NoError(t, app.Run(ctx))
		assert.Equal(t, ModeBrowsing, app.nav.Mode())
	})

	t.Run("ctrl_c_quits", func(t *testing.T) {
		app, _ := newScriptedApp(t, scenarioStore(), 80, 24,
			tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), key(tcell.KeyDown))
		assert.NoError(t, app.Run(ctx))
		assert.Equal(t, ModeQuit, app.nav.Mode())
		assert.Equal(t, 0, app.nav.Session().Selection())
	})

	t.Run("cancelled_context", func(t *testing.T) {
		app, _ := newScriptedApp(t, scenarioStore(), 80, 24, runes("j")...)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, app.Run(ctx), context.Canceled)
	})
}

func TestApp_Resize(t *testing.T) {
	ctx := context.Background()
	app, s := newScriptedApp(t, scenarioStore(), 80, 24)
	app.resize()
	assert.Equal(t, 16, app.nav.ViewportHeight())

	s.SetSize(80, 12)
	app.handleEvent(ctx, tcell.NewEventResize(80, 12))
	assert.Equal(t, 4, app.nav.ViewportHeight())
	assert.Equal(t, 1, s.synced)
}
