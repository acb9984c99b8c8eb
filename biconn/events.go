// Package biconn: the trace event model.
//
// Events form a closed sum type: the sealed Event interface has exactly six
// variants, one per algorithm action, so replay logic can type-switch
// exhaustively and the compiler flags any unhandled kind added later.
// Events are immutable once emitted and ordered by emission time; the event
// sequence is the sole contract between the analyzer and any stepwise
// consumer.
package biconn

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/blockcut/core"
)

// Event is one step of the instrumented traversal. The interface is sealed:
// only the six variants in this file implement it.
type Event interface {
	fmt.Stringer

	// event marks the sealed set of variants.
	event()
}

// VisitEvent records a node receiving its discovery time. The initial
// low-link equals Time.
type VisitEvent struct {
	// Node is the visited node id.
	Node int

	// Time is the discovery clock tick assigned to Node.
	Time int
}

// PushEvent records an edge entering the logical edge stack, oriented as
// traversed (From = current node, To = neighbor).
type PushEvent struct {
	// From, To are the traversal-oriented endpoints.
	From, To int

	// Back is true for a back edge to a proper ancestor, false for a tree edge.
	Back bool
}

// LowEvent records a low-link update on Node. Source is the neighbor the
// value came from: a DFS child on return, or the target of a back edge.
type LowEvent struct {
	// Node is the node whose low-link was set.
	Node int

	// Low is the new low-link value (possibly unchanged by the min).
	Low int

	// Source is the child or back-target node that triggered the update.
	Source int

	// FromBack is true when Source is a back-edge target, false for a child.
	FromBack bool
}

// CutEvent records Node being marked as an articulation point. Emitted at
// most once per node; re-marking is silent.
type CutEvent struct {
	// Node is the articulation point id.
	Node int
}

// BridgeEvent records the tree edge (From, To) being identified as a bridge.
type BridgeEvent struct {
	// From, To are the traversal-oriented endpoints (parent, child).
	From, To int
}

// ComponentEvent records a biconnected component being finalized: the edges
// just popped off the edge stack and the union of their endpoints.
type ComponentEvent struct {
	// Index is the sequential component index, unique across the whole run.
	Index int

	// Edges lists the popped member edges by canonical key, in pop order.
	Edges []core.EdgeKey

	// Vertices lists the distinct endpoints in ascending order.
	Vertices []int
}

func (VisitEvent) event()     {}
func (PushEvent) event()      {}
func (LowEvent) event()       {}
func (CutEvent) event()       {}
func (BridgeEvent) event()    {}
func (ComponentEvent) event() {}

func (e VisitEvent) String() string {
	return fmt.Sprintf("visit node=%d disc=%d low=%d", e.Node, e.Time, e.Time)
}

func (e PushEvent) String() string {
	kind := "tree"
	if e.Back {
		kind = "back"
	}

	return fmt.Sprintf("push %s-edge %d-%d", kind, e.From, e.To)
}

func (e LowEvent) String() string {
	src := "child"
	if e.FromBack {
		src = "back-target"
	}

	return fmt.Sprintf("low node=%d low=%d source=%s %d", e.Node, e.Low, src, e.Source)
}

func (e CutEvent) String() string {
	return fmt.Sprintf("cut-vertex node=%d", e.Node)
}

func (e BridgeEvent) String() string {
	return fmt.Sprintf("bridge %d-%d", e.From, e.To)
}

func (e ComponentEvent) String() string {
	parts := make([]string, len(e.Edges))
	for i, k := range e.Edges {
		parts[i] = fmt.Sprintf("%d-%d", k.A, k.B)
	}

	return fmt.Sprintf("component #%d edges=[%s]", e.Index, strings.Join(parts, " "))
}

// Trace is the fully materialized event sequence of one instrumented
// analysis call. It is returned complete — never streamed — and a caller
// wanting incremental visualization replays prefixes at its own pace.
type Trace struct {
	// Events holds the emitted events in emission order.
	Events []Event
}

// Len returns the number of events in the trace.
func (t *Trace) Len() int { return len(t.Events) }
