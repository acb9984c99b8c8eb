package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "blockcut",
	Short: "Build small undirected graphs and dissect their cut structure",
	Long: `blockcut builds small undirected graphs and computes their articulation
points (cut vertices), bridges (cut edges), and biconnected components in a
single instrumented DFS pass.

Graphs are stored as JSON documents: {nodes:[{id,x,y}], edges:[{a,b,directed}]}.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(shellCmd)
}
