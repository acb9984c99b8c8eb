// Package biconn: the combined Tarjan-style traversal.
//
// One explicit-stack DFS pass computes discovery times, low-link values,
// articulation points, bridges, and biconnected components together. The
// instrumented variant differs only in that each action is also appended to
// a Trace; emission has no feedback into the algorithm, so both modes
// produce identical results over the same snapshot.
//
// The recursion of the textbook algorithm is converted to a phase-machine
// over explicit frames (visit → neighbors → post-child), bounding native
// stack usage to O(1) frames regardless of graph depth.
package biconn

import (
	"sort"

	"github.com/katalvlaran/blockcut/core"
)

// Frame phases of the explicit DFS stack.
const (
	phaseVisit     = iota // assign disc/low, emit visit
	phaseNeighbors        // scan remaining neighbors, descend into unvisited ones
	phasePostChild        // returned from a child: low-link, cut/bridge/close rules
)

// frame is one simulated recursion frame.
type frame struct {
	node     int // node this frame owns
	parent   int // DFS-tree parent, -1 for a root
	next     int // index of the next neighbor to scan
	children int // DFS-tree children seen so far
	child    int // child just returned from (phasePostChild only)
	phase    int
}

// stackEdge is an entry of the logical edge stack, oriented as traversed.
type stackEdge struct {
	from, to int
}

// analyzer carries the per-call traversal state. A fresh analyzer is built
// for every analysis call and discarded on completion; the package holds no
// state between calls.
type analyzer struct {
	snap   *core.AdjacencySnapshot
	disc   map[int]int // discovery time; presence doubles as "visited"
	low    map[int]int // low-link value
	parent map[int]int // DFS-tree parent
	clock  int         // monotonically increasing discovery clock
	estack []stackEdge // logical edge stack of not-yet-finalized edges

	res   *Result
	trace *Trace // nil in plain mode
}

// Analyze runs the combined traversal over a read-only snapshot of g and
// returns articulation points, bridges, and biconnected components.
// An empty graph yields an empty Result. The graph must not be mutated
// between the start and completion of the call.
//
// Complexity: O(V·logV + E·logE) including the sorted snapshot; the
// traversal itself is O(V + E).
func Analyze(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	a := newAnalyzer(g.Snapshot(), nil)
	a.run()

	return a.res, nil
}

// AnalyzeWithTrace runs the identical traversal and additionally returns the
// ordered event trace. The Result is equal to Analyze's for the same graph.
func AnalyzeWithTrace(g *core.Graph) (*Result, *Trace, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	a := newAnalyzer(g.Snapshot(), &Trace{Events: make([]Event, 0)})
	a.run()

	return a.res, a.trace, nil
}

func newAnalyzer(snap *core.AdjacencySnapshot, trace *Trace) *analyzer {
	n := len(snap.Order)

	return &analyzer{
		snap:   snap,
		disc:   make(map[int]int, n),
		low:    make(map[int]int, n),
		parent: make(map[int]int, n),
		res:    newResult(),
		trace:  trace,
	}
}

// emit appends ev to the trace in instrumented mode. A nil trace makes this
// a no-op, which is the only difference between the two modes.
func (a *analyzer) emit(ev Event) {
	if a.trace != nil {
		a.trace.Events = append(a.trace.Events, ev)
	}
}

// run processes every yet-unvisited node as the root of a new DFS tree
// (ascending id order), then builds the edge→component index.
func (a *analyzer) run() {
	for _, root := range a.snap.Order {
		if _, seen := a.disc[root]; seen {
			continue
		}
		a.runRoot(root)
	}

	// Step 5: convenience lookup from edge key to component index.
	for i, comp := range a.res.Components {
		for _, k := range comp.Edges {
			a.res.EdgeComponent[k] = i
		}
	}
}

// runRoot drives the explicit-stack DFS for one tree, then flushes any
// residual edge-stack entries as one final component for that tree.
func (a *analyzer) runRoot(root int) {
	stack := []frame{{node: root, parent: -1, phase: phaseVisit}}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		switch f.phase {
		case phaseVisit:
			// Assign disc = low = next clock tick.
			a.disc[f.node] = a.clock
			a.low[f.node] = a.clock
			a.emit(VisitEvent{Node: f.node, Time: a.clock})
			a.clock++
			f.phase = phaseNeighbors

		case phaseNeighbors:
			if !a.scanNeighbors(f, &stack) {
				// All neighbors handled; the simulated call returns.
				stack = stack[:len(stack)-1]
			}

		case phasePostChild:
			a.afterChild(f)
			f.phase = phaseNeighbors
		}
	}

	// Step 4: residual edges never closed by the low[v] >= disc[u] trigger
	// form one final component for this tree.
	if len(a.estack) > 0 {
		a.closeComponent(len(a.estack))
	}
}

// scanNeighbors advances f through its neighbor list. It returns true when
// it descended into a child (a new frame was pushed and f parked in
// phasePostChild), false when the neighbor list is exhausted.
//
// Appending to *stack may reallocate the frames, so f must not be touched
// after the append; the parked phase is set beforehand.
func (a *analyzer) scanNeighbors(f *frame, stack *[]frame) bool {
	nbs := a.snap.Neighbors[f.node]
	for f.next < len(nbs) {
		v := nbs[f.next]
		f.next++

		// Skip the tree edge back to the parent. Duplicate edges cannot
		// exist, so matching by id is exact.
		if v == f.parent {
			continue
		}

		if dv, seen := a.disc[v]; seen {
			// Back edge only when v is a proper ancestor; a visited
			// neighbor with a later discovery time is a descendant whose
			// edge was already stacked from the other side.
			if dv < a.disc[f.node] {
				a.pushEdge(f.node, v, true)
				if dv < a.low[f.node] {
					a.low[f.node] = dv
				}
				// Relaxation uses the ancestor's discovery time, never its
				// low-link.
				a.emit(LowEvent{Node: f.node, Low: a.low[f.node], Source: v, FromBack: true})
			}
			continue
		}

		// Tree edge: descend.
		a.parent[v] = f.node
		f.children++
		a.pushEdge(f.node, v, false)
		f.child = v
		f.phase = phasePostChild
		*stack = append(*stack, frame{node: v, parent: f.node, phase: phaseVisit})

		return true
	}

	return false
}

// afterChild applies the post-return rules for tree edge (u, v):
// low-link propagation, both articulation rules, the bridge rule, and the
// component-close rule, in that order.
func (a *analyzer) afterChild(f *frame) {
	u, v := f.node, f.child

	if a.low[v] < a.low[u] {
		a.low[u] = a.low[v]
	}
	a.emit(LowEvent{Node: u, Low: a.low[u], Source: v, FromBack: false})

	// Articulation rules. A root is a cut vertex once its second DFS child
	// appears; a non-root is one when no vertex of v's subtree reaches
	// above u.
	if f.parent == -1 {
		if f.children > 1 {
			a.markCut(u)
		}
	} else if a.low[v] >= a.disc[u] {
		a.markCut(u)
	}

	// Bridge rule: strictly greater — the subtree cannot reach u itself.
	if a.low[v] > a.disc[u] {
		a.res.Bridges = append(a.res.Bridges, core.NewEdgeKey(u, v))
		a.emit(BridgeEvent{From: u, To: v})
	}

	// Component-close rule: pop through the triggering tree edge (u, v),
	// matched in either orientation.
	if a.low[v] >= a.disc[u] {
		n := 0
		for i := len(a.estack) - 1; i >= 0; i-- {
			n++
			e := a.estack[i]
			if (e.from == u && e.to == v) || (e.from == v && e.to == u) {
				break
			}
		}
		a.closeComponent(n)
	}
}

// markCut records u as an articulation point, emitting the event only on
// the first marking.
func (a *analyzer) markCut(u int) {
	if a.res.CutVertices[u] {
		return
	}
	a.res.CutVertices[u] = true
	a.emit(CutEvent{Node: u})
}

// pushEdge stacks the traversal-oriented edge (u, v) and emits the push.
func (a *analyzer) pushEdge(u, v int, back bool) {
	a.estack = append(a.estack, stackEdge{from: u, to: v})
	a.emit(PushEvent{From: u, To: v, Back: back})
}

// closeComponent pops the top n stack edges as one finalized component with
// a fresh sequential index and emits the finalize event.
func (a *analyzer) closeComponent(n int) {
	cut := len(a.estack) - n
	popped := a.estack[cut:]
	a.estack = a.estack[:cut]

	comp := Component{Edges: make([]core.EdgeKey, 0, n)}
	verts := make(map[int]struct{}, n+1)
	for i := len(popped) - 1; i >= 0; i-- {
		e := popped[i]
		comp.Edges = append(comp.Edges, core.NewEdgeKey(e.from, e.to))
		verts[e.from] = struct{}{}
		verts[e.to] = struct{}{}
	}
	comp.Vertices = make([]int, 0, len(verts))
	for id := range verts {
		comp.Vertices = append(comp.Vertices, id)
	}
	sort.Ints(comp.Vertices)

	idx := len(a.res.Components)
	a.res.Components = append(a.res.Components, comp)
	a.emit(ComponentEvent{Index: idx, Edges: comp.Edges, Vertices: comp.Vertices})
}
