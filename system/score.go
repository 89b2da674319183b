package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/event"
	"github.com/lixenwraith/ball-game/parameter"
)

// ScoreSystem publishes score changes
type ScoreSystem struct {
	world *engine.World
}

func NewScoreSystem(world *engine.World) *ScoreSystem {
	return &ScoreSystem{world: world}
}

// Priority returns the system's priority
func (s *ScoreSystem) Priority() int {
	return parameter.PriorityScore
}

// Update logs and announces a changed score
func (s *ScoreSystem) Update() {
	score := s.world.Resources.Score
	if !score.Present || !score.Changed() {
		return
	}
	s.world.Resources.Logger.Info("score", zap.Int("value", score.Value))
	s.world.PushEvent(event.EventScoreChanged, &event.ScorePayload{Score: score.Value})
	score.ClearChanged()
}

func insertScore(w *engine.World) {
	w.Resources.Score.Insert()
}

func removeScore(w *engine.World) {
	w.Resources.Score.Remove()
}

// HighScoreSystem records finished runs and persists the table when it changes
type HighScoreSystem struct {
	world *engine.World
}

func NewHighScoreSystem(world *engine.World) *HighScoreSystem {
	return &HighScoreSystem{world: world}
}

// Priority returns the system's priority (after ScoreSystem)
func (s *HighScoreSystem) Priority() int {
	return parameter.PriorityHighScore
}

// EventTypes returns the event types HighScoreSystem handles
func (s *HighScoreSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameOver}
}

// HandleEvent appends the finished run to the table
func (s *HighScoreSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.GameOverPayload)
	if !ok {
		return
	}
	name := s.world.Resources.Config.Scores.PlayerName
	s.world.Resources.HighScores.Record(name, payload.Score)
}

// Update logs and persists a changed table
func (s *HighScoreSystem) Update() {
	hs := s.world.Resources.HighScores
	if !hs.Changed() {
		return
	}
	log := s.world.Resources.Logger

	log.Info("high scores updated",
		zap.Int("entries", hs.Table.Len()),
		zap.Any("top", hs.Table.Top(parameter.HighScoresShown)))

	if hs.Store != nil {
		if err := hs.Store.Save(hs.Table); err != nil {
			log.Error("failed to save high scores",
				zap.String("path", hs.Store.Path()),
				zap.Error(err))
		}
	}

	s.world.PushEvent(event.EventHighScoresUpdated, nil)
	hs.ClearChanged()
}
