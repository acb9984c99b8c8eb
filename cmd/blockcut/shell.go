package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/blockcut/biconn"
	"github.com/katalvlaran/blockcut/core"
	"github.com/katalvlaran/blockcut/graphio"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive graph editing and analysis loop",
	Long: `shell reads commands from stdin, one per line:

  add [x y]        add a node (optional coordinates), print its id
  edge A B [dir]   add edge A-B ("dir" marks the display arrow)
  del node ID      remove a node and its incident edges
  del edge A B     remove the edge A-B
  rename OLD NEW   change a node id, rewriting incident edges
  show             list nodes and edges
  analyze          print cut vertices, bridges, components
  trace            run instrumented, print the event trace
  step N           replay the first N events of the last trace
  save FILE        write the graph as JSON
  load FILE        replace the graph from a JSON file
  clear            drop everything
  quit             exit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := &session{g: core.NewGraph()}
		sc := bufio.NewScanner(cmd.InOrStdin())

		cmd.Print("> ")
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				if quit := sess.exec(cmd, strings.Fields(line)); quit {
					return nil
				}
			}
			cmd.Print("> ")
		}

		return sc.Err()
	},
}

// session is the mutable shell state: the working graph and the last
// recorded trace, kept for step replay.
type session struct {
	g     *core.Graph
	trace *biconn.Trace
}

// exec dispatches one command line. It reports errors to the user and keeps
// the loop alive; only quit/exit terminate it.
func (s *session) exec(cmd *cobra.Command, fields []string) (quit bool) {
	var err error

	switch fields[0] {
	case "quit", "exit":
		return true

	case "add":
		err = s.add(cmd, fields[1:])
	case "edge":
		err = s.edge(fields[1:])
	case "del":
		err = s.del(fields[1:])
	case "rename":
		err = s.rename(fields[1:])
	case "show":
		s.show(cmd)
	case "analyze":
		err = s.analyze(cmd)
	case "trace":
		err = s.runTrace(cmd)
	case "step":
		err = s.step(cmd, fields[1:])
	case "save":
		err = s.save(fields[1:])
	case "load":
		err = s.load(fields[1:])
	case "clear":
		s.g.Clear()
		s.trace = nil
	case "help":
		cmd.Println(cmd.Long)
	default:
		err = fmt.Errorf("unknown command %q (try help)", fields[0])
	}

	if err != nil {
		cmd.Printf("error: %v\n", err)
	}

	return false
}

func (s *session) add(cmd *cobra.Command, args []string) error {
	x, y := 0.0, 0.0
	if len(args) == 2 {
		var err error
		if x, err = strconv.ParseFloat(args[0], 64); err != nil {
			return fmt.Errorf("bad x %q", args[0])
		}
		if y, err = strconv.ParseFloat(args[1], 64); err != nil {
			return fmt.Errorf("bad y %q", args[1])
		}
	} else if len(args) != 0 {
		return fmt.Errorf("usage: add [x y]")
	}

	cmd.Printf("node %d\n", s.g.AddNode(x, y))

	return nil
}

func (s *session) edge(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: edge A B [dir]")
	}
	a, b, err := twoIDs(args[0], args[1])
	if err != nil {
		return err
	}

	var opts []core.EdgeOption
	if len(args) == 3 {
		if args[2] != "dir" {
			return fmt.Errorf("usage: edge A B [dir]")
		}
		opts = append(opts, core.WithEdgeDirected(true))
	}

	return s.g.AddEdge(a, b, opts...)
}

func (s *session) del(args []string) error {
	switch {
	case len(args) == 2 && args[0] == "node":
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad id %q", args[1])
		}

		return s.g.RemoveNode(id)

	case len(args) == 3 && args[0] == "edge":
		a, b, err := twoIDs(args[1], args[2])
		if err != nil {
			return err
		}

		return s.g.RemoveEdge(a, b)

	default:
		return fmt.Errorf("usage: del node ID | del edge A B")
	}
}

func (s *session) rename(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: rename OLD NEW")
	}
	oldID, newID, err := twoIDs(args[0], args[1])
	if err != nil {
		return err
	}

	return s.g.RenameNode(oldID, newID)
}

func (s *session) show(cmd *cobra.Command) {
	for _, n := range s.g.Nodes() {
		cmd.Printf("node %d (%.1f, %.1f)\n", n.ID, n.X, n.Y)
	}
	for _, e := range s.g.Edges() {
		arrow := "--"
		if e.Directed {
			arrow = "->"
		}
		cmd.Printf("edge %d %s %d\n", e.From, arrow, e.To)
	}
}

func (s *session) analyze(cmd *cobra.Command) error {
	res, err := biconn.Analyze(s.g)
	if err != nil {
		return err
	}
	printResult(cmd, res)

	return nil
}

func (s *session) runTrace(cmd *cobra.Command) error {
	_, tr, err := biconn.AnalyzeWithTrace(s.g)
	if err != nil {
		return err
	}
	s.trace = tr
	for i, ev := range tr.Events {
		cmd.Printf("%4d  %s\n", i, ev)
	}

	return nil
}

func (s *session) step(cmd *cobra.Command, args []string) error {
	if s.trace == nil {
		return fmt.Errorf("no trace yet (run trace first)")
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: step N")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("bad step %q", args[0])
	}

	snap, err := s.trace.Replay(n)
	if err != nil {
		return err
	}
	printSnapshot(cmd, n, s.trace.Len(), snap)

	return nil
}

func (s *session) save(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: save FILE")
	}

	return graphio.Save(s.g, args[0])
}

func (s *session) load(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: load FILE")
	}
	g, err := graphio.Load(args[0])
	if err != nil {
		return err
	}
	s.g = g
	s.trace = nil

	return nil
}

// twoIDs parses a pair of node ids.
func twoIDs(sa, sb string) (int, int, error) {
	a, err := strconv.Atoi(sa)
	if err != nil {
		return 0, 0, fmt.Errorf("bad id %q", sa)
	}
	b, err := strconv.Atoi(sb)
	if err != nil {
		return 0, 0, fmt.Errorf("bad id %q", sb)
	}

	return a, b, nil
}
