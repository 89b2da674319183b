package component

import "github.com/lixenwraith/ball-game/vmath"

// EnemyComponent marks a bouncing enemy
// Direction is a unit vector; each axis is negated independently on wall contact
type EnemyComponent struct {
	Direction vmath.Vec2
}
