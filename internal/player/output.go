// ABOUTME: Audio output using oto library
// ABOUTME: Plays quantized 8-bit mono buffers, blocking until drained
package player

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Output manages the audio device. oto allows a single context per process,
// so the context is created on first use and reused for the process lifetime.
type Output struct {
	otoCtx     *oto.Context
	sampleRate int
}

// NewOutput creates an audio output. The device is not touched until Play.
func NewOutput() *Output {
	return &Output{}
}

// Play writes a quantized buffer to the device and blocks until the device
// has drained it. The buffer is mono signed 8-bit samples; sampleRate is the
// rate the buffer was synthesized at. Playback runs to completion; there is
// no cancellation.
func (o *Output) Play(data []byte, sampleRate float64) error {
	if err := o.initialize(int(sampleRate)); err != nil {
		return err
	}

	p := o.otoCtx.NewPlayer(bytes.NewReader(toUnsigned(data)))
	p.Play()
	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := p.Close(); err != nil {
		return fmt.Errorf("failed to close player: %w", err)
	}

	return nil
}

// toUnsigned converts signed 8-bit samples to the unsigned representation the
// device expects. oto has no signed 8-bit format.
func toUnsigned(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ 0x80
	}
	return out
}

// initialize sets up the oto context on first use.
func (o *Output) initialize(sampleRate int) error {
	if o.otoCtx != nil {
		if o.sampleRate != sampleRate {
			// oto cannot reinitialize; keep the existing context.
			log.Printf("Warning: sample rate change detected (%dHz -> %dHz) but oto doesn't support reinitialization. Continuing with existing context.",
				o.sampleRate, sampleRate)
		}
		return nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx
	o.sampleRate = sampleRate

	log.Printf("Audio output initialized: %dHz, mono 8-bit", sampleRate)

	return nil
}
