package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want core.Key
		quit bool
	}{
		{"arrow left", tcell.KeyLeft, 0, tcell.ModNone, core.KeyLeft, false},
		{"arrow down", tcell.KeyDown, 0, tcell.ModNone, core.KeyDown, false},
		{"escape", tcell.KeyEscape, 0, tcell.ModNone, core.KeyEscape, false},
		{"enter", tcell.KeyEnter, 0, tcell.ModNone, core.KeyEnter, false},
		{"ctrl-c quits", tcell.KeyCtrlC, 0, tcell.ModCtrl, core.KeyNone, true},
		{"rune a", tcell.KeyRune, 'a', tcell.ModNone, core.KeyA, false},
		{"rune shift W", tcell.KeyRune, 'W', tcell.ModShift, core.KeyW, false},
		{"space", tcell.KeyRune, ' ', tcell.ModNone, core.KeySpace, false},
		{"alt-a ignored", tcell.KeyRune, 'a', tcell.ModAlt, core.KeyNone, false},
		{"unmapped rune", tcell.KeyRune, 'z', tcell.ModNone, core.KeyNone, false},
		{"unmapped key", tcell.KeyF1, 0, tcell.ModNone, core.KeyNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, quit := translateKey(tt.key, tt.r, tt.mod)
			assert.Equal(t, tt.want, key)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestApply_ResizeAndMouse(t *testing.T) {
	w := engine.NewTestWorld(80, 24)
	now := time.Unix(1000, 0)

	action := Apply(tcell.NewEventResize(100, 30), w.Resources, now)
	assert.Equal(t, ActionResize, action)
	assert.Equal(t, 100, w.Resources.Window.Cols)
	assert.Equal(t, 30.0*w.Resources.Window.CellHeight, w.Resources.Window.Height())

	action = Apply(tcell.NewEventMouse(12, 7, tcell.Button1, tcell.ModNone), w.Resources, now)
	assert.Equal(t, ActionNone, action)
	assert.True(t, w.Resources.Mouse.Valid)
	assert.True(t, w.Resources.Mouse.LeftDown)
	assert.True(t, w.Resources.Mouse.JustPressed())
	assert.Equal(t, 12, w.Resources.Mouse.X)

	Apply(tcell.NewEventMouse(13, 7, tcell.ButtonNone, tcell.ModNone), w.Resources, now)
	assert.False(t, w.Resources.Mouse.LeftDown)
}

func TestApply_FocusLostReleasesKeys(t *testing.T) {
	w := engine.NewTestWorld(80, 24)
	kb := w.Resources.Keyboard
	now := time.Unix(1000, 0)

	Apply(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), w.Resources, now)
	kb.BeginFrame(now)
	assert.True(t, kb.Pressed(core.KeyRight))

	// Regaining focus keeps state
	assert.Equal(t, ActionNone, Apply(tcell.NewEventFocus(true), w.Resources, now))
	assert.True(t, kb.Pressed(core.KeyRight))

	assert.Equal(t, ActionNone, Apply(tcell.NewEventFocus(false), w.Resources, now))
	assert.False(t, kb.Pressed(core.KeyRight))
	assert.False(t, kb.JustPressed(core.KeyRight))
}

func TestTerminal_SimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 12)

	term := NewWithScreen(screen)
	assert.Same(t, screen, term.Screen())
	cols, rows := term.Size()
	assert.Equal(t, 40, cols)
	assert.Equal(t, 12, rows)

	events := term.Events()
	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone)))

	select {
	case ev := <-events:
		key, ok := ev.(*tcell.EventKey)
		require.True(t, ok)
		assert.Equal(t, 'g', key.Rune())
	case <-time.After(time.Second):
		t.Fatal("no event from the poller")
	}

	// Fini ends PollEvent, which closes the channel
	term.Fini()
	for range events {
	}
}
