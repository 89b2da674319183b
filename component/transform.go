package component

import "github.com/lixenwraith/ball-game/vmath"

// TransformComponent holds an entity's center position in world units
type TransformComponent struct {
	Position vmath.Vec2
}
