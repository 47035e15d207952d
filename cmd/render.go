// ABOUTME: Render command: load a CSV score and write it to a WAV file
// ABOUTME: Same pipeline as play, without touching the audio device
package cmd

import (
	"fmt"
	"log"

	"github.com/soundwave-audio/soundwave-go/internal/wav"
	"github.com/soundwave-audio/soundwave-go/pkg/score"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <score.csv> <out.wav>",
	Short: "Render a CSV score to a WAV file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(args[0], args[1])
	},
}

func render(scorePath, outPath string) error {
	snd, err := score.LoadFile(scorePath)
	if err != nil {
		return fmt.Errorf("failed to load score %s: %w", scorePath, err)
	}

	if err := wav.WriteFile(outPath, snd.Quantize(), int(snd.SampleRate())); err != nil {
		return err
	}
	log.Printf("Rendered %s -> %s (%d samples, %v)", scorePath, outPath, snd.Len(), snd.Duration())
	return nil
}
