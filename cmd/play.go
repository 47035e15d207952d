// ABOUTME: Play command: load a CSV score and play it on the audio device
// ABOUTME: Runs the full pipeline: load, quantize, device output
package cmd

import (
	"fmt"
	"log"

	"github.com/soundwave-audio/soundwave-go/internal/player"
	"github.com/soundwave-audio/soundwave-go/pkg/score"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <score.csv>",
	Short: "Play a CSV score",
	Long: `Play a CSV score on the default audio device. Each line of the score
is one note: whiteKey,accidental,octave,durationSeconds. Lines that do not
match are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(args[0])
	},
}

func play(path string) error {
	snd, err := score.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load score %s: %w", path, err)
	}
	log.Printf("Loaded score %s: %d samples, %v", path, snd.Len(), snd.Duration())

	out := player.NewOutput()
	if err := out.Play(snd.Quantize(), snd.SampleRate()); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}
