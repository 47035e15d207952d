// ABOUTME: Immutable Sound value type and sine wave synthesis
// ABOUTME: Sounds are sample buffers constructed by factory functions, never mutated
package sound

import (
	"fmt"
	"math"
	"time"
)

const (
	// DefaultSampleRate is the sample rate used by the convenience constructors.
	DefaultSampleRate = 44100.0

	// MaxAmplitude is the default synthesis amplitude and the half-range of
	// the quantized 8-bit output.
	MaxAmplitude = 128.0
)

// Sound is an immutable mono waveform: an ordered sample buffer plus the rate
// at which it was sampled. Sounds are created by SineWave, Tone, Note, or
// Concatenate and never modified afterwards.
type Sound struct {
	samples    []float64
	sampleRate float64
}

// SampleRate returns the sample rate in samples per second.
func (s Sound) SampleRate() float64 {
	return s.sampleRate
}

// Len returns the number of samples in the buffer.
func (s Sound) Len() int {
	return len(s.samples)
}

// Duration returns the playback duration of the buffer.
func (s Sound) Duration() time.Duration {
	if s.sampleRate == 0 {
		return 0
	}
	seconds := float64(len(s.samples)) / s.sampleRate
	return time.Duration(seconds * float64(time.Second))
}

// Samples returns a copy of the sample buffer. Copying keeps the Sound
// immutable: callers can do whatever they want with the result.
func (s Sound) Samples() []float64 {
	out := make([]float64, len(s.samples))
	copy(out, s.samples)
	return out
}

// SineWave generates a pure sine tone: sample[i] = amplitude * sin(2π * frequency * i/sampleRate + phase).
// A length of zero produces a valid empty Sound. Frequencies at or above
// sampleRate/2 alias; no filtering is applied.
func SineWave(length int, sampleRate, frequency, amplitude, phase float64) (Sound, error) {
	if length < 0 {
		return Sound{}, fmt.Errorf("sine wave length must be non-negative, got %d", length)
	}
	if sampleRate <= 0 {
		return Sound{}, fmt.Errorf("sample rate must be positive, got %v", sampleRate)
	}

	samples := make([]float64, length)
	angularFreq := 2 * math.Pi * frequency
	for i := range samples {
		samples[i] = amplitude * math.Sin(angularFreq*float64(i)/sampleRate+phase)
	}
	return Sound{samples: samples, sampleRate: sampleRate}, nil
}

// Tone is the convenience form of SineWave: sample rate 44.1kHz, amplitude
// 128, phase 0, and length floor(sampleRate * duration).
func Tone(duration, frequency float64) (Sound, error) {
	length := int(DefaultSampleRate * duration)
	if length < 0 {
		return Sound{}, fmt.Errorf("tone duration must be non-negative, got %v", duration)
	}
	return SineWave(length, DefaultSampleRate, frequency, MaxAmplitude, 0)
}

// Concatenate combines sounds into one, heard one after the next. There is no
// gap or crossfade between inputs; a hard edge exists at each boundary.
// All inputs must share the same sample rate.
func Concatenate(sounds ...Sound) (Sound, error) {
	if len(sounds) == 0 {
		return Sound{}, ErrEmptyComposition
	}

	sampleRate := sounds[0].sampleRate
	total := 0
	for _, s := range sounds {
		if s.sampleRate != sampleRate {
			return Sound{}, fmt.Errorf("%w: %v != %v", ErrSampleRateMismatch, s.sampleRate, sampleRate)
		}
		total += len(s.samples)
	}

	samples := make([]float64, 0, total)
	for _, s := range sounds {
		samples = append(samples, s.samples...)
	}
	return Sound{samples: samples, sampleRate: sampleRate}, nil
}
