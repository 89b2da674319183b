package engine

import (
	"math/rand"

	"github.com/lixenwraith/ball-game/config"
)

// NewTestWorld creates a headless world with default config, a fixed-seed RNG
// and a cols x rows field, for tests in this and other packages
func NewTestWorld(cols, rows int) *World {
	cfg := config.Defaults()
	res := NewResource(cfg)
	res.Window.Resize(cols, rows)
	res.Rand = rand.New(rand.NewSource(1))
	return NewWorld(res)
}
