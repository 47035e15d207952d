// ABOUTME: Tests for sine synthesis and concatenation
// ABOUTME: Covers buffer lengths, sample math, ordering, and error cases
package sound

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSineWaveLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
	}{
		{"empty", 0},
		{"single", 1},
		{"typical", 4410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := SineWave(tt.length, 44100, 440, 128, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.length, s.Len())
			assert.Equal(t, 44100.0, s.SampleRate())
		})
	}
}

func TestSineWaveSamples(t *testing.T) {
	const (
		sampleRate = 8000.0
		frequency  = 100.0
		amplitude  = 64.0
		phase      = 0.25
	)

	s, err := SineWave(16, sampleRate, frequency, amplitude, phase)
	require.NoError(t, err)

	for i, got := range s.Samples() {
		want := amplitude * math.Sin(2*math.Pi*frequency*float64(i)/sampleRate+phase)
		assert.InDelta(t, want, got, 1e-9, "sample %d", i)
	}
}

func TestSineWaveInvalidArgs(t *testing.T) {
	_, err := SineWave(-1, 44100, 440, 128, 0)
	assert.Error(t, err)

	_, err = SineWave(10, 0, 440, 128, 0)
	assert.Error(t, err)

	_, err = SineWave(10, -44100, 440, 128, 0)
	assert.Error(t, err)
}

func TestToneDefaults(t *testing.T) {
	s, err := Tone(0.5, 440)
	require.NoError(t, err)
	assert.Equal(t, 22050, s.Len())
	assert.Equal(t, DefaultSampleRate, s.SampleRate())

	// First nonzero sample confirms the default amplitude is in effect.
	samples := s.Samples()
	want := MaxAmplitude * math.Sin(2*math.Pi*440/DefaultSampleRate)
	assert.InDelta(t, want, samples[1], 1e-9)
}

func TestToneNegativeDuration(t *testing.T) {
	_, err := Tone(-0.1, 440)
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	s, err := Tone(0.25, 440)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, s.Duration())

	assert.Equal(t, time.Duration(0), Sound{}.Duration())
}

func TestSamplesReturnsCopy(t *testing.T) {
	s, err := SineWave(8, 44100, 440, 128, 0)
	require.NoError(t, err)

	samples := s.Samples()
	samples[0] = 9999

	assert.NotEqual(t, 9999.0, s.Samples()[0])
}

func TestConcatenateOrder(t *testing.T) {
	a, err := SineWave(3, 8000, 100, 1, 0)
	require.NoError(t, err)
	b, err := SineWave(5, 8000, 200, 1, 0)
	require.NoError(t, err)

	combined, err := Concatenate(a, b)
	require.NoError(t, err)

	assert.Equal(t, 8, combined.Len())
	assert.Equal(t, 8000.0, combined.SampleRate())
	assert.Equal(t, append(a.Samples(), b.Samples()...), combined.Samples())
}

func TestConcatenateAssociative(t *testing.T) {
	a, _ := SineWave(4, 8000, 100, 1, 0)
	b, _ := SineWave(6, 8000, 200, 1, 0)
	c, _ := SineWave(2, 8000, 300, 1, 0)

	flat, err := Concatenate(a, b, c)
	require.NoError(t, err)

	ab, err := Concatenate(a, b)
	require.NoError(t, err)
	left, err := Concatenate(ab, c)
	require.NoError(t, err)

	bc, err := Concatenate(b, c)
	require.NoError(t, err)
	right, err := Concatenate(a, bc)
	require.NoError(t, err)

	assert.Equal(t, flat.Samples(), left.Samples())
	assert.Equal(t, flat.Samples(), right.Samples())
}

func TestConcatenateSampleRateMismatch(t *testing.T) {
	a, _ := SineWave(4, 44100, 440, 128, 0)
	b, _ := SineWave(4, 22050, 440, 128, 0)

	_, err := Concatenate(a, b)
	assert.ErrorIs(t, err, ErrSampleRateMismatch)
}

func TestConcatenateEmpty(t *testing.T) {
	_, err := Concatenate()
	assert.ErrorIs(t, err, ErrEmptyComposition)
}

func TestConcatenateSingle(t *testing.T) {
	a, _ := SineWave(7, 44100, 440, 128, 0)

	combined, err := Concatenate(a)
	require.NoError(t, err)
	assert.Equal(t, a.Samples(), combined.Samples())
	assert.Equal(t, a.SampleRate(), combined.SampleRate())
}
