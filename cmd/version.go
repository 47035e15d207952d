// ABOUTME: Version command: print product name and version
// ABOUTME: Reads constants from internal/version
package cmd

import (
	"fmt"

	"github.com/soundwave-audio/soundwave-go/internal/version"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", version.Product, version.Version)
	},
}
