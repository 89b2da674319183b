package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/ball-game/core"
	"github.com/lixenwraith/ball-game/parameter"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveNoise
)

// decayFloor is the envelope gain reached at the last sample of a decaying sound (about -60 dB)
const decayFloor = 0.001

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples at a fixed frequency
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	return sweep(waveType, freq, freq, samples)
}

// sweep generates a waveform whose frequency moves linearly from startFreq to endFreq
func sweep(waveType int, startFreq, endFreq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		t := float64(i) / float64(samples)
		freq := startFreq + (endFreq-startFreq)*t
		phase += freq / float64(parameter.AudioSampleRate)
		if phase >= 1.0 {
			phase -= math.Floor(phase)
		}
	}
	return buf
}

// applyDecay ramps up linearly over attack then decays exponentially to decayFloor
func applyDecay(buf floatBuffer, attack time.Duration) {
	total := len(buf)
	if total == 0 {
		return
	}
	attackSamples := durationToSamples(attack)
	if attackSamples > total {
		attackSamples = total
	}
	decaySamples := total - attackSamples
	k := math.Log(decayFloor)

	for i := 0; i < total; i++ {
		var vol float64
		if i < attackSamples {
			vol = float64(i) / float64(attackSamples)
		} else {
			vol = math.Exp(k * float64(i-attackSamples) / float64(decaySamples))
		}
		buf[i] *= vol
	}
}

// durationToSamples converts duration to sample count
func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(parameter.AudioSampleRate))
}

// --- Sound Generators (unity gain) ---

// generatePluck is a short decaying square, used for wall bumps
func generatePluck(freq float64) floatBuffer {
	buf := oscillator(waveSquare, freq, durationToSamples(parameter.PluckDuration))
	applyDecay(buf, parameter.PluckAttack)
	return buf
}

// generateExplosion is decaying white noise
func generateExplosion() floatBuffer {
	buf := oscillator(waveNoise, 0, durationToSamples(parameter.ExplosionDuration))
	applyDecay(buf, parameter.ExplosionAttack)
	return buf
}

// generateLaser is a falling sine sweep, used for star pickups
func generateLaser() floatBuffer {
	buf := sweep(waveSine, parameter.LaserStartFreq, parameter.LaserEndFreq, durationToSamples(parameter.LaserDuration))
	applyDecay(buf, parameter.LaserAttack)
	return buf
}

// generateSound dispatches to specific generator
func generateSound(st core.SoundType) floatBuffer {
	switch st {
	case core.SoundBumpLow:
		return generatePluck(parameter.PluckLowFreq)
	case core.SoundBumpHigh:
		return generatePluck(parameter.PluckHighFreq)
	case core.SoundExplosion:
		return generateExplosion()
	case core.SoundStarPickup:
		return generateLaser()
	default:
		return nil
	}
}
