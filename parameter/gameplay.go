package parameter

import "time"

// Player
const (
	PlayerSize  = 64.0
	PlayerSpeed = 500.0
)

// Enemy
const (
	EnemySize          = 64.0
	EnemySpeed         = 200.0
	NumberOfEnemies    = 6
	EnemySpawnInterval = 5 * time.Second
)

// Star
const (
	StarSize          = 30.0
	NumberOfStars     = 10
	StarSpawnInterval = 1 * time.Second
)

// Score
const (
	DefaultPlayerName = "Player 1"
	HighScoresShown   = 5
)
