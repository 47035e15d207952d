// ABOUTME: Sentinel errors for sound construction and composition
// ABOUTME: All are caller input errors, detected before any work is done
package sound

import "errors"

var (
	// ErrInvalidKey is returned when a pitch letter is not one of A-G.
	ErrInvalidKey = errors.New("invalid white key")

	// ErrSampleRateMismatch is returned when concatenating sounds with
	// differing sample rates.
	ErrSampleRateMismatch = errors.New("sample rate mismatch")

	// ErrEmptyComposition is returned when concatenating zero sounds, or
	// loading a score that yields no valid notes.
	ErrEmptyComposition = errors.New("empty composition")
)
