// ABOUTME: Note command: synthesize and play a single musical note
// ABOUTME: Accidental, octave, and duration default to natural, 0, 0.5s
package cmd

import (
	"fmt"
	"strconv"

	"github.com/soundwave-audio/soundwave-go/internal/player"
	"github.com/soundwave-audio/soundwave-go/pkg/sound"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(noteCmd)
}

var noteCmd = &cobra.Command{
	Use:   "note <whiteKey> [accidental] [octave] [duration]",
	Short: "Play a single note",
	Long: `Play a single sine wave note. whiteKey is a letter A-G, accidental is
'b' for flat, '#' for sharp, anything else for natural. Octave 0 contains
concert pitch A440.`,
	Args: cobra.RangeArgs(1, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return playNote(args)
	},
}

func playNote(args []string) error {
	if len(args[0]) != 1 {
		return fmt.Errorf("%w: %q", sound.ErrInvalidKey, args[0])
	}
	key := args[0][0]

	accidental := byte('n')
	if len(args) > 1 && len(args[1]) > 0 {
		accidental = args[1][0]
	}

	octave := 0
	if len(args) > 2 {
		o, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid octave %q: %w", args[2], err)
		}
		octave = o
	}

	duration := 0.5
	if len(args) > 3 {
		d, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", args[3], err)
		}
		duration = d
	}

	snd, err := sound.Note(key, accidental, octave, duration)
	if err != nil {
		return err
	}

	out := player.NewOutput()
	if err := out.Play(snd.Quantize(), snd.SampleRate()); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	return nil
}
