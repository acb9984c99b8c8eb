// Package biconn: prefix replay of a trace.
//
// Replay reconstructs the traversal's intermediate state after any event
// prefix — faithful partial state, not cosmetic highlighting. A stepwise
// consumer walks prefixes 0..Len() and renders each Snapshot.
package biconn

import (
	"github.com/katalvlaran/blockcut/core"
)

// PendingEdge is an entry of the reconstructed logical edge stack.
type PendingEdge struct {
	// From, To are the traversal-oriented endpoints as pushed.
	From, To int

	// Back marks a back edge; false means tree edge.
	Back bool
}

// Snapshot is the reconstructed traversal state after a trace prefix.
// Maps are keyed by node id; a node absent from Disc was not yet visited
// at the prefix point.
type Snapshot struct {
	// Visited flags every node that has received a discovery time.
	Visited map[int]bool

	// Disc holds the discovery times assigned so far.
	Disc map[int]int

	// Low holds the current low-link values (they may still decrease in
	// later events).
	Low map[int]int

	// Parent holds DFS-tree parent links established by tree-edge pushes.
	Parent map[int]int

	// Pending is the logical edge stack, bottom to top: pushed edges not
	// yet assigned to a finalized component.
	Pending []PendingEdge

	// CutVertices holds the articulation points marked so far.
	CutVertices map[int]bool

	// Bridges holds the bridges recorded so far, in recording order.
	Bridges []core.EdgeKey

	// Finalized holds the components finalized so far; the slice index is
	// the component index.
	Finalized []Component
}

// Replay reconstructs the state after the first prefix events of t.
// Replay(0) is the pre-traversal state; Replay(t.Len()) is the final state
// and agrees with the Result of the run that produced t.
//
// Returns ErrBadPrefix for a prefix outside [0, Len()] and ErrCorruptTrace
// when a component finalizes more edges than are pending.
// Complexity: O(prefix).
func (t *Trace) Replay(prefix int) (*Snapshot, error) {
	if prefix < 0 || prefix > len(t.Events) {
		return nil, ErrBadPrefix
	}

	s := &Snapshot{
		Visited:     make(map[int]bool),
		Disc:        make(map[int]int),
		Low:         make(map[int]int),
		Parent:      make(map[int]int),
		Pending:     make([]PendingEdge, 0),
		CutVertices: make(map[int]bool),
		Bridges:     make([]core.EdgeKey, 0),
		Finalized:   make([]Component, 0),
	}

	// Exhaustive over the sealed event set; an unhandled variant is a bug,
	// hence the panic in the default arm.
	for _, ev := range t.Events[:prefix] {
		switch e := ev.(type) {
		case VisitEvent:
			s.Visited[e.Node] = true
			s.Disc[e.Node] = e.Time
			s.Low[e.Node] = e.Time

		case PushEvent:
			if !e.Back {
				s.Parent[e.To] = e.From
			}
			s.Pending = append(s.Pending, PendingEdge{From: e.From, To: e.To, Back: e.Back})

		case LowEvent:
			s.Low[e.Node] = e.Low

		case CutEvent:
			s.CutVertices[e.Node] = true

		case BridgeEvent:
			s.Bridges = append(s.Bridges, core.NewEdgeKey(e.From, e.To))

		case ComponentEvent:
			// Finalized edges are always a suffix of the pending stack.
			n := len(e.Edges)
			if n > len(s.Pending) {
				return nil, ErrCorruptTrace
			}
			s.Pending = s.Pending[:len(s.Pending)-n]
			s.Finalized = append(s.Finalized, Component{Edges: e.Edges, Vertices: e.Vertices})

		default:
			panic("biconn: unhandled event kind in replay")
		}
	}

	return s, nil
}
