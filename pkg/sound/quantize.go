// ABOUTME: Min/max adaptive quantization of sample buffers to signed 8-bit
// ABOUTME: Produces the byte stream handed to playback, one byte per sample
package sound

import "math"

// Quantize rescales the sample buffer into the signed 8-bit range and returns
// it as a byte stream (each byte is the two's-complement encoding of an int8).
// The rescale is adaptive per Sound: the observed minimum maps to -128 and the
// observed maximum to 127, so the full output range is always used and only
// relative shape within one Sound is preserved.
//
// A zero-variance buffer (constant signal, a single sample, or an empty
// buffer) has no range to rescale; every sample maps to 0.
func (s Sound) Quantize() []byte {
	out := make([]byte, len(s.samples))
	if len(s.samples) == 0 {
		return out
	}

	minS, maxS := s.samples[0], s.samples[0]
	for _, v := range s.samples {
		if v < minS {
			minS = v
		}
		if v > maxS {
			maxS = v
		}
	}

	srcRange := maxS - minS
	if srcRange == 0 {
		return out
	}

	scale := (2*MaxAmplitude - 1) / srcRange
	for i, v := range s.samples {
		out[i] = byte(int8(math.Round((v-minS)*scale) - MaxAmplitude))
	}
	return out
}
