package main

import (
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blockcut/biconn"
	"github.com/katalvlaran/blockcut/graphio"
)

var traceStep int

var traceCmd = &cobra.Command{
	Use:   "trace <graph.json>",
	Short: "Print the traversal event trace, or replay a prefix with --step",
	Long: `trace runs the instrumented traversal and prints every event in order.
With --step N it instead replays the first N events and prints the
reconstructed intermediate state (visited set, low-links, pending edge
stack, findings so far).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := graphio.Load(args[0])
		if err != nil {
			return err
		}

		_, tr, err := biconn.AnalyzeWithTrace(g)
		if err != nil {
			return err
		}
		slog.Debug("trace recorded", "events", tr.Len())

		if traceStep < 0 {
			for i, ev := range tr.Events {
				cmd.Printf("%4d  %s\n", i, ev)
			}

			return nil
		}

		snap, err := tr.Replay(traceStep)
		if err != nil {
			return err
		}
		printSnapshot(cmd, traceStep, tr.Len(), snap)

		return nil
	},
}

func init() {
	traceCmd.Flags().IntVar(&traceStep, "step", -1, "replay the first N events and print the state (default: print the full trace)")
}

// printSnapshot renders a replayed traversal state, maps in ascending id
// order, the pending stack bottom to top.
func printSnapshot(cmd *cobra.Command, step, total int, s *biconn.Snapshot) {
	cmd.Printf("state after %d/%d events\n", step, total)

	ids := make([]int, 0, len(s.Disc))
	for id := range s.Disc {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	cmd.Printf("visited (%d):\n", len(ids))
	for _, id := range ids {
		cmd.Printf("  node %d disc=%d low=%d", id, s.Disc[id], s.Low[id])
		if p, ok := s.Parent[id]; ok {
			cmd.Printf(" parent=%d", p)
		}
		cmd.Println()
	}

	cmd.Printf("pending edges (%d):\n", len(s.Pending))
	for _, e := range s.Pending {
		kind := "tree"
		if e.Back {
			kind = "back"
		}
		cmd.Printf("  %d->%d %s\n", e.From, e.To, kind)
	}

	cuts := make([]int, 0, len(s.CutVertices))
	for id := range s.CutVertices {
		cuts = append(cuts, id)
	}
	sort.Ints(cuts)
	cmd.Printf("cut vertices so far: %v\n", cuts)
	cmd.Printf("bridges so far: %s\n", formatEdges(s.Bridges))
	cmd.Printf("components finalized: %d\n", len(s.Finalized))
}
