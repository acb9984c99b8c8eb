package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blockcut/biconn"
	"github.com/katalvlaran/blockcut/core"
	"github.com/katalvlaran/blockcut/graphio"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <graph.json>",
	Short: "Print cut vertices, bridges, and biconnected components",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := graphio.Load(args[0])
		if err != nil {
			return err
		}
		slog.Debug("graph loaded", "path", args[0], "nodes", g.NodeCount(), "edges", g.EdgeCount())

		res, err := biconn.Analyze(g)
		if err != nil {
			return err
		}
		printResult(cmd, res)

		return nil
	},
}

// printResult renders a Result in stable order: cut vertices ascending,
// bridges and components in finalization order.
func printResult(cmd *cobra.Command, res *biconn.Result) {
	cuts := make([]int, 0, len(res.CutVertices))
	for id := range res.CutVertices {
		cuts = append(cuts, id)
	}
	sort.Ints(cuts)

	cmd.Printf("cut vertices: %v\n", cuts)
	cmd.Printf("bridges (%d):\n", len(res.Bridges))
	for _, k := range res.Bridges {
		cmd.Printf("  %d-%d\n", k.A, k.B)
	}
	cmd.Printf("components (%d):\n", len(res.Components))
	for i, comp := range res.Components {
		cmd.Printf("  #%d vertices=%v edges=%s\n", i, comp.Vertices, formatEdges(comp.Edges))
	}
}

// formatEdges joins canonical edge keys as "a-b" pairs.
func formatEdges(keys []core.EdgeKey) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%d-%d", k.A, k.B))
	}

	return strings.Join(parts, " ")
}
