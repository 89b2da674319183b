package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ball-game/config"
	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/engine"
	"github.com/lixenwraith/ball-game/parameter"
)

var _ engine.AudioPlayer = (*AudioEngine)(nil)

func peak(buf floatBuffer) float64 {
	m := 0.0
	for _, v := range buf {
		m = math.Max(m, math.Abs(v))
	}
	return m
}

func TestGenerateSound_Lengths(t *testing.T) {
	tests := []struct {
		sound core.SoundType
		want  int
	}{
		{core.SoundBumpLow, durationToSamples(parameter.PluckDuration)},
		{core.SoundBumpHigh, durationToSamples(parameter.PluckDuration)},
		{core.SoundExplosion, durationToSamples(parameter.ExplosionDuration)},
		{core.SoundStarPickup, durationToSamples(parameter.LaserDuration)},
	}
	for _, tt := range tests {
		t.Run(tt.sound.String(), func(t *testing.T) {
			buf := generateSound(tt.sound)
			require.Len(t, buf, tt.want)
			assert.LessOrEqual(t, peak(buf), 1.0)
			assert.Greater(t, peak(buf), 0.1)
		})
	}
	assert.Nil(t, generateSound(core.SoundType(99)))
}

func TestApplyDecay_Shape(t *testing.T) {
	buf := make(floatBuffer, 1000)
	for i := range buf {
		buf[i] = 1
	}
	applyDecay(buf, 0)

	assert.Equal(t, 1.0, buf[0])
	assert.InDelta(t, decayFloor, buf[999], 1e-4)
	for i := 1; i < len(buf); i++ {
		assert.LessOrEqual(t, buf[i], buf[i-1])
	}
}

func TestApplyDecay_AttackRamp(t *testing.T) {
	buf := make(floatBuffer, durationToSamples(parameter.PluckDuration))
	for i := range buf {
		buf[i] = 1
	}
	applyDecay(buf, parameter.PluckAttack)

	attack := durationToSamples(parameter.PluckAttack)
	assert.Equal(t, 0.0, buf[0])
	assert.InDelta(t, 0.5, buf[attack/2], 0.02)
	assert.Equal(t, 1.0, buf[attack])
}

func TestSweep_Falls(t *testing.T) {
	// Count zero crossings in the first and last quarter
	buf := sweep(waveSine, 2000, 200, parameter.AudioSampleRate/2)
	crossings := func(b floatBuffer) int {
		n := 0
		for i := 1; i < len(b); i++ {
			if (b[i-1] < 0) != (b[i] < 0) {
				n++
			}
		}
		return n
	}
	q := len(buf) / 4
	assert.Greater(t, crossings(buf[:q]), 2*crossings(buf[3*q:]))
}

func TestSoundCache(t *testing.T) {
	c := newSoundCache()
	a := c.get(core.SoundBumpLow)
	b := c.get(core.SoundBumpLow)
	require.NotEmpty(t, a)
	assert.Same(t, &a[0], &b[0], "cached buffer reused")
	assert.Nil(t, c.get(core.SoundType(-1)))
}

func TestBufferStreamer(t *testing.T) {
	s := newBufferStreamer(floatBuffer{0.1, 0.2, 0.3})
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	assert.Equal(t, 2, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{0.2, 0.2}, out[1])

	n, ok = s.Stream(out)
	assert.Equal(t, 1, n)
	assert.True(t, ok)
	assert.Equal(t, [2]float64{0.3, 0.3}, out[0])

	n, ok = s.Stream(out)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestEngine_StreamerAppliesVolume(t *testing.T) {
	ae := NewAudioEngine(config.AudioConfig{Enabled: true, MasterVolume: 0.5})
	s := ae.streamer(core.SoundBumpHigh, parameter.BumpVolume)
	require.NotNil(t, s)

	out := make([][2]float64, 512)
	maxAbs, total := 0.0, 0
	for {
		n, ok := s.Stream(out)
		for i := 0; i < n; i++ {
			maxAbs = math.Max(maxAbs, math.Abs(out[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, durationToSamples(parameter.PluckDuration), total)
	assert.LessOrEqual(t, maxAbs, parameter.BumpVolume*0.5+1e-9)
	assert.Greater(t, maxAbs, 0.0)

	assert.Nil(t, ae.streamer(core.SoundType(42), 1))
}

func TestEngine_MuteAndNotRunning(t *testing.T) {
	ae := NewAudioEngine(config.AudioConfig{Enabled: false, MasterVolume: 1})
	assert.True(t, ae.IsMuted())
	assert.False(t, ae.IsRunning())

	assert.False(t, ae.ToggleMute())
	assert.False(t, ae.IsMuted())

	// Not started: nothing plays
	assert.False(t, ae.Play(core.SoundExplosion, 1))

	// Stop before Start is a no-op
	assert.NotPanics(t, ae.Stop)
}
