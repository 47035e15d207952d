// ABOUTME: Musical note to frequency mapping, equal temperament
// ABOUTME: A440 reference pitch with white key letters and accidentals
package sound

import (
	"fmt"
	"math"
)

// Accidental characters recognized by Frequency and Note. Any other value is
// treated as natural.
const (
	Flat  = 'b'
	Sharp = '#'
)

// semitone offsets above A for the seven white keys, equal temperament.
var whiteKeySemitones = map[byte]float64{
	'A': 0,
	'B': 2,
	'C': 3,
	'D': 5,
	'E': 7,
	'F': 8,
	'G': 10,
}

// Frequency converts a musical pitch to Hz. whiteKey must be one of 'A'-'G';
// octave 0 is the octave containing concert pitch A440, and each octave step
// doubles or halves the frequency.
func Frequency(whiteKey, accidental byte, octave int) (float64, error) {
	semitones, ok := whiteKeySemitones[whiteKey]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, whiteKey)
	}

	freq := 440.0 * math.Pow(2, semitones/12)

	switch accidental {
	case Flat:
		freq *= math.Pow(2, -1.0/12)
	case Sharp:
		freq *= math.Pow(2, 1.0/12)
	}

	return freq * math.Pow(2, float64(octave)), nil
}

// Note synthesizes a sine tone for a musical pitch using the default sample
// rate, amplitude, and phase.
func Note(whiteKey, accidental byte, octave int, duration float64) (Sound, error) {
	freq, err := Frequency(whiteKey, accidental, octave)
	if err != nil {
		return Sound{}, err
	}
	return Tone(duration, freq)
}
