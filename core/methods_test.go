package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockcut/core"
)

// buildTriangle returns a graph with nodes 0,1,2 and edges 0-1, 1-2, 2-0.
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddNode(0, 0)
	}
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))

	return g
}

// fingerprint captures the full observable state of a graph so tests can
// assert "left unchanged" after a failed mutation.
func fingerprint(g *core.Graph) ([]core.Node, []core.Edge, map[int][]int) {
	adj := make(map[int][]int)
	for _, id := range g.NodeIDs() {
		nbs, _ := g.NeighborIDs(id)
		adj[id] = nbs
	}

	return g.Nodes(), g.Edges(), adj
}

func TestAddNode_SequentialIDs(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0, g.AddNode(1.5, 2.5))
	assert.Equal(t, 1, g.AddNode(0, 0))
	assert.Equal(t, 2, g.AddNode(0, 0))

	n, err := g.Node(0)
	require.NoError(t, err)
	assert.Equal(t, 1.5, n.X)
	assert.Equal(t, 2.5, n.Y)
}

func TestAddEdge_SelfLoopRejected(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(0, 0)

	before, beforeEdges, beforeAdj := fingerprint(g)
	assert.ErrorIs(t, g.AddEdge(a, a), core.ErrSelfLoop)
	after, afterEdges, afterAdj := fingerprint(g)

	assert.Equal(t, before, after, "graph must be unchanged after rejected self-loop")
	assert.Equal(t, beforeEdges, afterEdges)
	assert.Equal(t, beforeAdj, afterAdj)
}

func TestAddEdge_DuplicateRejectedEitherOrientation(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddNode(0, 0), g.AddNode(0, 0)
	require.NoError(t, g.AddEdge(a, b))

	assert.ErrorIs(t, g.AddEdge(a, b), core.ErrDuplicateEdge)
	assert.ErrorIs(t, g.AddEdge(b, a), core.ErrDuplicateEdge, "reversed orientation shares the canonical key")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_UnknownEndpoint(t *testing.T) {
	g := core.NewGraph()
	a := g.AddNode(0, 0)
	assert.ErrorIs(t, g.AddEdge(a, 99), core.ErrNodeNotFound)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_SymmetricAdjacency(t *testing.T) {
	g := buildTriangle(t)
	for _, id := range g.NodeIDs() {
		nbs, err := g.NeighborIDs(id)
		require.NoError(t, err)
		for _, nb := range nbs {
			back, err := g.NeighborIDs(nb)
			require.NoError(t, err)
			assert.Contains(t, back, id, "adjacency must be symmetric")
		}
	}
}

func TestAddEdge_DirectedFlagIsDisplayOnly(t *testing.T) {
	g := core.NewGraph()
	a, b := g.AddNode(0, 0), g.AddNode(0, 0)
	require.NoError(t, g.AddEdge(a, b, core.WithEdgeDirected(true)))

	e, err := g.Edge(b, a)
	require.NoError(t, err)
	assert.True(t, e.Directed)

	// Adjacency is mirrored regardless of the flag.
	nbs, err := g.NeighborIDs(b)
	require.NoError(t, err)
	assert.Equal(t, []int{a}, nbs)
}

func TestRemoveEdge(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.RemoveEdge(2, 1), "either orientation removes the canonical edge")
	assert.False(t, g.HasEdge(1, 2))
	assert.ErrorIs(t, g.RemoveEdge(1, 2), core.ErrEdgeNotFound)

	nbs, err := g.NeighborIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, nbs)
}

func TestRemoveEdgeKey(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.RemoveEdgeKey(core.NewEdgeKey(0, 2)))
	assert.ErrorIs(t, g.RemoveEdgeKey(core.NewEdgeKey(0, 2)), core.ErrEdgeNotFound)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestRemoveNode_CascadesEdgesAndAdjacency(t *testing.T) {
	g := buildTriangle(t)
	extra := g.AddNode(0, 0)
	require.NoError(t, g.AddEdge(1, extra))

	require.NoError(t, g.RemoveNode(1))

	assert.False(t, g.HasNode(1))
	assert.False(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(1, extra))
	assert.True(t, g.HasEdge(0, 2), "untouched edges survive")

	for _, id := range g.NodeIDs() {
		nbs, err := g.NeighborIDs(id)
		require.NoError(t, err)
		assert.NotContains(t, nbs, 1, "removed id must be scrubbed from every neighbor set")
	}
}

func TestRemoveNode_AbsentID(t *testing.T) {
	g := buildTriangle(t)
	assert.ErrorIs(t, g.RemoveNode(42), core.ErrNodeNotFound)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
}

func TestRenameNode_RewritesEverything(t *testing.T) {
	g := buildTriangle(t)
	require.NoError(t, g.RenameNode(1, 10))

	assert.False(t, g.HasNode(1))
	assert.True(t, g.HasNode(10))
	assert.True(t, g.HasEdge(0, 10))
	assert.True(t, g.HasEdge(10, 2))
	assert.False(t, g.HasEdge(0, 1))

	nbs, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 10}, nbs)

	// Allocator must never hand out the renamed id again.
	assert.Equal(t, 11, g.AddNode(0, 0))
}

func TestRenameNode_ConflictLeavesGraphUnchanged(t *testing.T) {
	g := buildTriangle(t)
	beforeNodes, beforeEdges, beforeAdj := fingerprint(g)

	assert.ErrorIs(t, g.RenameNode(0, 2), core.ErrIDConflict)

	afterNodes, afterEdges, afterAdj := fingerprint(g)
	assert.Equal(t, beforeNodes, afterNodes)
	assert.Equal(t, beforeEdges, afterEdges)
	assert.Equal(t, beforeAdj, afterAdj)
}

func TestRenameNode_SelfAndMissing(t *testing.T) {
	g := buildTriangle(t)
	assert.NoError(t, g.RenameNode(2, 2), "self-rename is a no-op")
	assert.ErrorIs(t, g.RenameNode(77, 78), core.ErrNodeNotFound)
}

func TestClear_ResetsAllocator(t *testing.T) {
	g := buildTriangle(t)
	g.Clear()

	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 0, g.AddNode(0, 0), "allocator restarts from zero")
}

func TestSnapshot_IsolatedFromMutation(t *testing.T) {
	g := buildTriangle(t)
	snap := g.Snapshot()

	require.NoError(t, g.RemoveNode(2))

	assert.Equal(t, []int{0, 1, 2}, snap.Order, "snapshot keeps the pre-mutation view")
	assert.Equal(t, []int{1, 2}, snap.Neighbors[0])
}

func TestClone_DeepCopy(t *testing.T) {
	g := buildTriangle(t)
	cp := g.Clone()

	require.NoError(t, g.RemoveNode(0))

	assert.True(t, cp.HasNode(0))
	assert.True(t, cp.HasEdge(0, 1))
	assert.Equal(t, 3, cp.AddNode(0, 0), "clone carries the allocator position")
}

func TestDegree(t *testing.T) {
	g := buildTriangle(t)
	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	_, err = g.Degree(9)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}
