// ABOUTME: Root cobra command for the soundwave CLI
// ABOUTME: Subcommands synthesize, play, and render monophonic scores
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "soundwave",
	Short: "Synthesize and play simple sine wave music",
	Long: `soundwave synthesizes monophonic sine wave audio from musical note
descriptions and plays it back or renders it to a WAV file.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
