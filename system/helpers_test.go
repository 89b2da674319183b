package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/event"
)

const frame = 16 * time.Millisecond

// fakeAudio records Play calls
type fakeAudio struct {
	played []event.SoundRequestPayload
	muted  bool
}

func (f *fakeAudio) Play(sound core.SoundType, volume float64) bool {
	if f.muted {
		return false
	}
	f.played = append(f.played, event.SoundRequestPayload{Sound: sound, Volume: volume})
	return true
}

func (f *fakeAudio) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

func (f *fakeAudio) IsMuted() bool   { return f.muted }
func (f *fakeAudio) IsRunning() bool { return true }

// newGameApp builds the full plugin set on an 80x24 field with a mock clock
// Initial enemies and stars are disabled so tests place entities themselves
func newGameApp(t *testing.T) (*engine.App, *engine.MockTimeProvider, *fakeAudio) {
	t.Helper()
	tp := engine.NewMockTimeProvider(time.Unix(1000, 0))
	w := engine.NewTestWorld(80, 24)
	w.Resources.Config.Enemy.Count = 0
	w.Resources.Config.Star.Count = 0
	audio := &fakeAudio{}
	w.Resources.Audio.Player = audio
	app := engine.NewApp(w, tp)
	app.AddPlugins(DefaultPlugins()...)
	return app, tp, audio
}

// tick advances the mock clock and runs one frame
func tick(app *engine.App, tp *engine.MockTimeProvider) {
	tp.Advance(frame)
	app.Tick(frame)
}

// press registers a key-down at the current mock time, visible on the next tick
func press(app *engine.App, tp *engine.MockTimeProvider, key core.Key) {
	app.World.Resources.Keyboard.Press(key, tp.Now().Add(frame))
}

// enterGame drives the app from MainMenu into a running Game
func enterGame(t *testing.T, app *engine.App, tp *engine.MockTimeProvider) {
	t.Helper()
	tick(app, tp)
	app.World.Resources.State.SetNext(core.AppStateGame)
	tick(app, tp)
	if !app.World.Resources.State.InGame() {
		t.Fatalf("expected Game, got %s", app.World.Resources.State.App())
	}
}

// eventsOfType drains the world queue and returns events of type t
func eventsOfType(w *engine.World, t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range w.Events().Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

// newSystemWorld is a bare world with the time delta set, for calling systems directly
func newSystemWorld(dt time.Duration) *engine.World {
	w := engine.NewTestWorld(80, 24)
	w.Resources.Time.Delta = dt
	return w
}
