package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/event"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/vmath"
)

func TestSpawnInitialStars(t *testing.T) {
	w := newSystemWorld(frame)
	spawnInitialStars(w)
	assert.Equal(t, parameter.NumberOfStars, w.Components.Star.CountEntities())
}

func TestStarSpawnOverTime(t *testing.T) {
	w := newSystemWorld(400 * time.Millisecond)
	sys := NewStarSpawnSystem(w)

	sys.Update()
	sys.Update()
	assert.Equal(t, 0, w.Components.Star.CountEntities())

	sys.Update()
	assert.Equal(t, 1, w.Components.Star.CountEntities())
}

func TestPlayerHitStar_CollectsAllOverlapping(t *testing.T) {
	w := newSystemWorld(frame)
	w.Resources.Score.Insert()
	w.Resources.Score.ClearChanged()

	SpawnPlayer(w, vmath.V2(400, 400))
	a := SpawnStar(w, vmath.V2(410, 400))
	b := SpawnStar(w, vmath.V2(400, 420))
	far := SpawnStar(w, vmath.V2(800, 400))

	NewPlayerHitStarSystem(w).Update()

	assert.False(t, w.Alive(a))
	assert.False(t, w.Alive(b))
	assert.True(t, w.Alive(far))
	assert.Equal(t, 2, w.Resources.Score.Value)
	assert.True(t, w.Resources.Score.Changed())

	sounds := eventsOfType(w, event.EventSoundRequest)
	require.Len(t, sounds, 2)
	for _, ev := range sounds {
		payload := ev.Payload.(*event.SoundRequestPayload)
		assert.Equal(t, core.SoundStarPickup, payload.Sound)
		assert.Equal(t, parameter.StarVolume, payload.Volume)
	}
}

func TestPlayerHitStar_NoPlayer(t *testing.T) {
	w := newSystemWorld(frame)
	star := SpawnStar(w, vmath.V2(400, 400))

	NewPlayerHitStarSystem(w).Update()

	assert.True(t, w.Alive(star))
}
