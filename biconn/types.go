// Package biconn: result types and sentinel errors for the structural
// analyzer. The algorithm itself lives in analyze.go, the event model in
// events.go, and prefix reconstruction in replay.go.
package biconn

import (
	"errors"

	"github.com/katalvlaran/blockcut/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to Analyze
	// or AnalyzeWithTrace.
	ErrNilGraph = errors.New("biconn: graph is nil")

	// ErrBadPrefix indicates a Replay prefix outside [0, len(events)].
	ErrBadPrefix = errors.New("biconn: replay prefix out of range")

	// ErrCorruptTrace indicates a trace whose events cannot have been
	// produced by one analyzer run (e.g. a component finalizing edges that
	// were never pushed).
	ErrCorruptTrace = errors.New("biconn: corrupt trace")
)

// Component is one biconnected component ("block"): a maximal edge set with
// no internal cut vertex. Every edge of the graph belongs to exactly one
// component; Vertices is the union of the edge endpoints, sorted ascending.
type Component struct {
	// Edges lists the member edges by canonical key, in pop order.
	Edges []core.EdgeKey

	// Vertices lists the distinct endpoint ids in ascending order.
	Vertices []int
}

// Result is the outcome of one analysis pass.
//
// CutVertices and Bridges are intrinsic graph properties and do not depend
// on traversal order. Component membership grouping is intrinsic too, but
// component labeling/order — and therefore EdgeComponent indices — follow
// the analyzer's fixed neighbor order (ascending id) and are not canonical
// across different implementations. Compare sets, not positions.
type Result struct {
	// CutVertices is the set of articulation points.
	CutVertices map[int]bool

	// Bridges lists cut edges in the order the traversal recorded them.
	Bridges []core.EdgeKey

	// Components lists the blocks in finalize order.
	Components []Component

	// EdgeComponent maps every edge key to the index of its component
	// within Components.
	EdgeComponent map[core.EdgeKey]int
}

// newResult returns an empty Result with all containers allocated, so
// callers never see nil maps or slices.
func newResult() *Result {
	return &Result{
		CutVertices:   make(map[int]bool),
		Bridges:       make([]core.EdgeKey, 0),
		Components:    make([]Component, 0),
		EdgeComponent: make(map[core.EdgeKey]int),
	}
}
