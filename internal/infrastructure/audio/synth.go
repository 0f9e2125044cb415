// Package audio is the procedural sound collaborator: every cue is
// synthesised from raw oscillators at startup, no sample assets. It is
// fire-and-forget and feeds nothing back into the simulation.
package audio

import (
	"math"
	"math/rand"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples at the given frequency.
func oscillator(waveType int, freq float64, samples, sampleRate int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

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
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place.
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64, sampleRate int) {
	total := len(buf)
	attackSamples := int(attackSec * float64(sampleRate))
	releaseSamples := int(releaseSec * float64(sampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixBuffers adds b into a (in place), extending a if needed.
func mixBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatBuffers appends b to a.
func concatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

func durationToSamples(sec float64, sampleRate int) int {
	return int(sec * float64(sampleRate))
}

// tone is a convenience wrapper: oscillator plus envelope.
func tone(waveType int, freq, durSec, attackSec, releaseSec float64, sampleRate int) floatBuffer {
	buf := oscillator(waveType, freq, durationToSamples(durSec, sampleRate), sampleRate)
	applyEnvelope(buf, attackSec, releaseSec, sampleRate)
	return buf
}

// generateSound renders one cue at unity gain.
func generateSound(st SoundType, sampleRate int) floatBuffer {
	switch st {
	case SoundJump:
		// Rising two-note blip
		return concatBuffers(
			tone(waveSquare, 196.0, 0.05, 0.005, 0.02, sampleRate),
			tone(waveSquare, 392.0, 0.08, 0.005, 0.05, sampleRate),
		)
	case SoundLand:
		return tone(waveNoise, 0, 0.05, 0.002, 0.04, sampleRate)
	case SoundHurt:
		return tone(waveSaw, 110.0, 0.15, 0.005, 0.1, sampleRate)
	case SoundDie:
		// Descending saw notes
		return concatBuffers(
			concatBuffers(
				tone(waveSaw, 220.0, 0.12, 0.005, 0.04, sampleRate),
				tone(waveSaw, 164.81, 0.12, 0.005, 0.04, sampleRate),
			),
			tone(waveSaw, 110.0, 0.2, 0.005, 0.15, sampleRate),
		)
	case SoundCollect:
		// Classic coin: B5 then E6
		return concatBuffers(
			tone(waveSquare, 987.77, 0.06, 0.002, 0.02, sampleRate),
			tone(waveSquare, 1318.51, 0.12, 0.002, 0.09, sampleRate),
		)
	case SoundExit:
		// Bell: fundamental A5 with an A6 overtone
		fund := tone(waveSine, 880.0, 0.4, 0.002, 0.35, sampleRate)
		over := tone(waveSine, 1760.0, 0.4, 0.002, 0.2, sampleRate)
		return mixBuffers(fund, over, 0.3/0.7)
	case SoundStomp:
		return tone(waveSquare, 130.81, 0.08, 0.002, 0.06, sampleRate)
	case SoundShoot:
		return tone(waveNoise, 0, 0.08, 0.002, 0.06, sampleRate)
	default:
		return nil
	}
}

// toPCM converts a mono buffer into 16-bit little-endian stereo PCM,
// the format ebiten's audio context consumes. Samples are clipped to
// unity before scaling.
func toPCM(buf floatBuffer) []byte {
	out := make([]byte, len(buf)*4)
	for i, s := range buf {
		if s > 1.0 {
			s = 1.0
		} else if s < -1.0 {
			s = -1.0
		}
		v := int16(s * 32767)
		lo := byte(v)
		hi := byte(v >> 8)
		out[i*4] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}
