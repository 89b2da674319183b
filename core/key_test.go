package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{'a', KeyA}, {'A', KeyA},
		{'d', KeyD}, {'w', KeyW}, {'S', KeyS},
		{'g', KeyG}, {'M', KeyM}, {'r', KeyR},
		{'q', KeyQ}, {'n', KeyN},
		{' ', KeySpace},
		{'x', KeyNone}, {'1', KeyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KeyFromRune(tt.r), string(tt.r))
	}
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "MainMenu", AppStateMainMenu.String())
	assert.Equal(t, "Game", AppStateGame.String())
	assert.Equal(t, "GameOver", AppStateGameOver.String())
	assert.Equal(t, "Running", SimulationRunning.String())
	assert.Equal(t, "Paused", SimulationPaused.String())
	assert.Equal(t, "explosion", SoundExplosion.String())
}
