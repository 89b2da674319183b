package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/event"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/status"
	"github.com/lixenwraith/ball-game/vmath"
)

func TestSpawnInitialEnemies(t *testing.T) {
	w := newSystemWorld(frame)
	spawnInitialEnemies(w)

	require.Equal(t, parameter.NumberOfEnemies, w.Components.Enemy.CountEntities())
	for _, e := range w.Components.Enemy.GetAllEntities() {
		enemy, _ := w.Components.Enemy.GetComponent(e)
		assert.InDelta(t, 1.0, enemy.Direction.Length(), 1e-9)
		assert.GreaterOrEqual(t, enemy.Direction.X, 0.0)
		assert.GreaterOrEqual(t, enemy.Direction.Y, 0.0)

		tr, _ := w.Components.Transform.GetComponent(e)
		assert.GreaterOrEqual(t, tr.Position.X, 0.0)
		assert.Less(t, tr.Position.X, w.Resources.Window.Width())
		assert.GreaterOrEqual(t, tr.Position.Y, 0.0)
		assert.Less(t, tr.Position.Y, w.Resources.Window.Height())
	}
}

func TestEnemyMovement(t *testing.T) {
	w := newSystemWorld(500 * time.Millisecond)
	e := SpawnEnemy(w, vmath.V2(400, 400), vmath.V2(3, 0))

	NewEnemyMovementSystem(w).Update()

	tr, _ := w.Components.Transform.GetComponent(e)
	// Direction normalized at spawn, 200 units/s for 0.5s
	assert.InDelta(t, 500, tr.Position.X, 1e-9)
	assert.InDelta(t, 400, tr.Position.Y, 1e-9)
}

func TestEnemyConfinement(t *testing.T) {
	w := newSystemWorld(frame)
	e := SpawnEnemy(w, vmath.V2(5000, -5), vmath.V2(1, 1))

	NewEnemyConfinementSystem(w).Update()

	tr, _ := w.Components.Transform.GetComponent(e)
	half := w.Resources.Config.Enemy.Size / 2
	assert.Equal(t, w.Resources.Window.Width()-half, tr.Position.X)
	assert.Equal(t, half, tr.Position.Y)
}

func TestEnemyBounce_FlipsAxisAtEdge(t *testing.T) {
	w := newSystemWorld(frame)
	half := w.Resources.Config.Enemy.Size / 2

	left := SpawnEnemy(w, vmath.V2(half, 400), vmath.V2(-1, 0))
	corner := SpawnEnemy(w, vmath.V2(w.Resources.Window.Width()-half, half), vmath.V2(1, -1))
	inside := SpawnEnemy(w, vmath.V2(400, 400), vmath.V2(1, 0))

	NewEnemyBounceSystem(w).Update()

	dir, _ := w.Components.Enemy.GetComponent(left)
	assert.Equal(t, 1.0, dir.Direction.X)

	dir, _ = w.Components.Enemy.GetComponent(corner)
	assert.Less(t, dir.Direction.X, 0.0)
	assert.Greater(t, dir.Direction.Y, 0.0)

	dir, _ = w.Components.Enemy.GetComponent(inside)
	assert.Equal(t, 1.0, dir.Direction.X)

	// Two enemies bounced, one sound
	sounds := eventsOfType(w, event.EventSoundRequest)
	require.Len(t, sounds, 1)
	payload := sounds[0].Payload.(*event.SoundRequestPayload)
	assert.Contains(t, []core.SoundType{core.SoundBumpLow, core.SoundBumpHigh}, payload.Sound)
	assert.Equal(t, parameter.BumpVolume, payload.Volume)
	assert.Equal(t, int64(2), w.Resources.Status.Int(status.KeyBounces).Load())
}

func TestEnemyBounce_NoEdgeNoSound(t *testing.T) {
	w := newSystemWorld(frame)
	SpawnEnemy(w, vmath.V2(400, 400), vmath.V2(1, 0))

	NewEnemyBounceSystem(w).Update()

	assert.Equal(t, 0, w.Events().Len())
}

func TestEnemyHitPlayer(t *testing.T) {
	w := newSystemWorld(frame)
	w.Resources.Score.Insert()
	w.Resources.Score.Add(3)

	player := SpawnPlayer(w, vmath.V2(400, 400))
	SpawnEnemy(w, vmath.V2(460, 400), vmath.V2(1, 0))
	SpawnEnemy(w, vmath.V2(420, 400), vmath.V2(1, 0))

	NewEnemyHitPlayerSystem(w).Update()

	assert.False(t, w.Alive(player))
	assert.Equal(t, 2, w.Components.Enemy.CountEntities())

	events := w.Events().Consume()
	require.Len(t, events, 3)
	assert.Equal(t, event.EventSoundRequest, events[0].Type)
	assert.Equal(t, core.SoundExplosion, events[0].Payload.(*event.SoundRequestPayload).Sound)
	assert.Equal(t, event.EventPlayerHit, events[1].Type)
	assert.Equal(t, event.EventGameOver, events[2].Type)
	assert.Equal(t, 3, events[2].Payload.(*event.GameOverPayload).Score)
}

func TestEnemyHitPlayer_TouchingIsNotHit(t *testing.T) {
	w := newSystemWorld(frame)
	player := SpawnPlayer(w, vmath.V2(400, 400))
	// Radii 32 + 32, exactly touching
	SpawnEnemy(w, vmath.V2(464, 400), vmath.V2(1, 0))

	NewEnemyHitPlayerSystem(w).Update()

	assert.True(t, w.Alive(player))
	assert.Equal(t, 0, w.Events().Len())
}

func TestEnemySpawnOverTime(t *testing.T) {
	w := newSystemWorld(time.Second)
	sys := NewEnemySpawnSystem(w)

	for i := 0; i < 4; i++ {
		sys.Update()
	}
	assert.Equal(t, 0, w.Components.Enemy.CountEntities())

	sys.Update()
	assert.Equal(t, 1, w.Components.Enemy.CountEntities())
}

func TestEnemyBounce_NarrowFieldStaysQuiet(t *testing.T) {
	app, tp, audio := newGameApp(t)
	w := app.World
	enterGame(t, app, tp)
	w.Resources.Window.Resize(3, 24)

	// Far from the player on y so the run survives
	e := SpawnEnemy(w, vmath.V2(20, 700), vmath.V2(1, 0))
	for i := 0; i < 10; i++ {
		tick(app, tp)
	}

	dir, _ := w.Components.Enemy.GetComponent(e)
	assert.Equal(t, vmath.V2(1, 0), dir.Direction)
	for _, p := range audio.played {
		assert.NotContains(t, []core.SoundType{core.SoundBumpLow, core.SoundBumpHigh}, p.Sound)
	}
	assert.Equal(t, int64(0), w.Resources.Status.Int(status.KeyBounces).Load())
}
