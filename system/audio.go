package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/event"
	"github.com/lixenwraith/ball-game/parameter"
	"github.com/lixenwraith/ball-game/status"
)

// AudioSystem plays requested sounds and handles the mute toggle
// Requests are dropped silently when no player is attached
type AudioSystem struct {
	world *engine.World
}

func NewAudioSystem(world *engine.World) *AudioSystem {
	return &AudioSystem{world: world}
}

// Priority returns the system's priority (runs after gameplay)
func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

// HandleEvent plays a requested sound
func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	player := s.world.Resources.Audio.Player
	if player == nil {
		return
	}
	payload, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}
	if player.Play(payload.Sound, payload.Volume) {
		s.world.Resources.Status.Int(status.KeySoundsPlayed).Add(1)
	} else {
		s.world.Resources.Status.Int(status.KeySoundsDropped).Add(1)
		s.world.Resources.Logger.Debug("sound dropped",
			zap.Stringer("sound", payload.Sound),
			zap.Bool("muted", player.IsMuted()))
	}
}

// Update toggles mute on N
func (s *AudioSystem) Update() {
	player := s.world.Resources.Audio.Player
	if player == nil {
		return
	}
	if s.world.Resources.Keyboard.JustPressed(core.KeyN) {
		muted := player.ToggleMute()
		s.world.Resources.Logger.Info("audio mute toggled", zap.Bool("muted", muted))
	}
}
