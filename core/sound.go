package core

// SoundType identifies a synthesized sound effect
type SoundType int

const (
	SoundBumpLow SoundType = iota
	SoundBumpHigh
	SoundExplosion
	SoundStarPickup

	soundCount
)

// SoundCount is the number of defined sound types
const SoundCount = int(soundCount)

func (s SoundType) String() string {
	switch s {
	case SoundBumpLow:
		return "bump_low"
	case SoundBumpHigh:
		return "bump_high"
	case SoundExplosion:
		return "explosion"
	case SoundStarPickup:
		return "star_pickup"
	default:
		return "unknown"
	}
}
