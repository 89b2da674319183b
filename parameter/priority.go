package parameter

// System execution priorities (lower runs first)
// Movement runs before confinement, confinement before collision
const (
	PriorityInput       = 10
	PriorityState       = 20
	PriorityMovement    = 100
	PriorityConfinement = 200
	PriorityBounce      = 250
	PriorityCollision   = 300
	PrioritySpawn       = 400
	PriorityScore       = 500
	PriorityHighScore   = 510
	PriorityMenu        = 600
	PriorityAudio       = 900
	PriorityStats       = 950
)
