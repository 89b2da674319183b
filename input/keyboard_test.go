package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/ball-game/core"
)

func TestKeyboard_HoldWindow(t *testing.T) {
	base := time.Unix(1000, 0)
	kb := NewKeyboard(150*time.Millisecond, 0)

	kb.Press(core.KeyLeft, base)
	kb.BeginFrame(base.Add(100 * time.Millisecond))
	assert.True(t, kb.Pressed(core.KeyLeft))
	assert.False(t, kb.Pressed(core.KeyRight))

	kb.BeginFrame(base.Add(151 * time.Millisecond))
	assert.False(t, kb.Pressed(core.KeyLeft), "released after hold window")
}

func TestKeyboard_RepeatExtendsHold(t *testing.T) {
	base := time.Unix(1000, 0)
	kb := NewKeyboard(150*time.Millisecond, 0)

	kb.Press(core.KeyW, base)
	kb.Press(core.KeyW, base.Add(100*time.Millisecond))
	kb.BeginFrame(base.Add(200 * time.Millisecond))
	assert.True(t, kb.Pressed(core.KeyW))
}

func TestKeyboard_JustPressedEdge(t *testing.T) {
	base := time.Unix(1000, 0)
	kb := NewKeyboard(150*time.Millisecond, 0)

	kb.Press(core.KeySpace, base)
	assert.True(t, kb.JustPressed(core.KeySpace))
	kb.EndFrame()
	assert.False(t, kb.JustPressed(core.KeySpace))

	// Auto-repeat while held is not a new press
	kb.Press(core.KeySpace, base.Add(50*time.Millisecond))
	assert.False(t, kb.JustPressed(core.KeySpace))

	// Press after the hold lapsed is
	kb.Press(core.KeySpace, base.Add(time.Second))
	assert.True(t, kb.JustPressed(core.KeySpace))
}

func TestKeyboard_RepeatDelaySuppressesEdge(t *testing.T) {
	base := time.Unix(1000, 0)
	kb := NewKeyboard(150*time.Millisecond, 500*time.Millisecond)

	kb.Press(core.KeySpace, base)
	assert.True(t, kb.JustPressed(core.KeySpace))
	kb.EndFrame()

	// Auto-repeat begins 400ms after key-down: the hold lapsed, but this is the same press
	kb.BeginFrame(base.Add(300 * time.Millisecond))
	assert.False(t, kb.Pressed(core.KeySpace))
	kb.Press(core.KeySpace, base.Add(400*time.Millisecond))
	assert.False(t, kb.JustPressed(core.KeySpace))
	kb.BeginFrame(base.Add(400 * time.Millisecond))
	assert.True(t, kb.Pressed(core.KeySpace))

	// Further repeats are not edges; a press after a long quiet gap is
	kb.Press(core.KeySpace, base.Add(430*time.Millisecond))
	assert.False(t, kb.JustPressed(core.KeySpace))
	kb.Press(core.KeySpace, base.Add(time.Second))
	assert.True(t, kb.JustPressed(core.KeySpace))
}

func TestKeyboard_ReleaseAllAndBounds(t *testing.T) {
	base := time.Unix(1000, 0)
	kb := NewKeyboard(150*time.Millisecond, 500*time.Millisecond)

	kb.Press(core.KeyA, base)
	kb.Press(core.KeyD, base)
	kb.BeginFrame(base)
	assert.True(t, kb.AnyPressed(core.KeyLeft, core.KeyD))

	kb.ReleaseAll()
	assert.False(t, kb.Pressed(core.KeyD))
	assert.False(t, kb.JustPressed(core.KeyA))

	// After a release the next key-down is an edge regardless of the repeat delay
	kb.Press(core.KeyA, base.Add(10*time.Millisecond))
	assert.True(t, kb.JustPressed(core.KeyA))

	// Out of range keys are ignored
	kb.Press(core.KeyNone, base)
	kb.Press(core.Key(999), base)
	assert.False(t, kb.Pressed(core.Key(999)))
	assert.False(t, kb.JustPressed(core.KeyNone))
}

func TestMouse_PressEdge(t *testing.T) {
	var m Mouse
	assert.False(t, m.Valid)

	m.Move(3, 4, false)
	assert.True(t, m.Valid)
	assert.False(t, m.JustPressed())

	m.Move(3, 4, true)
	assert.True(t, m.JustPressed())
	m.EndFrame()

	// Drag with button held is not a new press
	m.Move(5, 4, true)
	assert.False(t, m.JustPressed())
	assert.Equal(t, 5, m.X)
}
