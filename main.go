// ABOUTME: Entry point for the soundwave CLI
// ABOUTME: Delegates to the cmd package
package main

import "github.com/soundwave-audio/soundwave-go/cmd"

func main() {
	cmd.Execute()
}
