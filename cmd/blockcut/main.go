// Command blockcut is the interactive front-end for the blockcut library:
// build a small undirected graph, analyze its cut structure, and replay the
// traversal event by event.
package main

import "os"

func main() {
	// Cobra handles parsing and prints the error itself.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
