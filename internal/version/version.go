// ABOUTME: Version constants for the soundwave CLI
// ABOUTME: Reported by the version subcommand
package version

const (
	Version = "0.1.0"
	Product = "soundwave"
)
