package biconn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockcut/biconn"
	"github.com/katalvlaran/blockcut/core"
)

// buildGraph adds n nodes (ids 0..n-1) and the given edges.
func buildGraph(t *testing.T, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddNode(0, 0)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// cutSet converts the result's articulation map to a sorted-friendly slice.
func cutSet(res *biconn.Result) []int {
	out := make([]int, 0, len(res.CutVertices))
	for id, ok := range res.CutVertices {
		if ok {
			out = append(out, id)
		}
	}

	return out
}

// componentEdgeSets flattens components into per-component edge-key sets for
// order-insensitive comparison.
func componentEdgeSets(res *biconn.Result) []map[core.EdgeKey]bool {
	out := make([]map[core.EdgeKey]bool, len(res.Components))
	for i, c := range res.Components {
		set := make(map[core.EdgeKey]bool, len(c.Edges))
		for _, k := range c.Edges {
			set[k] = true
		}
		out[i] = set
	}

	return out
}

// assertPartition checks that every graph edge appears in exactly one
// component and that the union of component vertex sets equals the set of
// non-isolated nodes.
func assertPartition(t *testing.T, g *core.Graph, res *biconn.Result) {
	t.Helper()

	counts := make(map[core.EdgeKey]int)
	for _, c := range res.Components {
		for _, k := range c.Edges {
			counts[k]++
		}
	}
	for _, k := range g.EdgeKeys() {
		assert.Equal(t, 1, counts[k], "edge %v must appear in exactly one component", k)
	}
	assert.Len(t, counts, g.EdgeCount(), "components must not contain foreign edges")

	compVerts := make(map[int]bool)
	for _, c := range res.Components {
		for _, v := range c.Vertices {
			compVerts[v] = true
		}
	}
	for _, id := range g.NodeIDs() {
		deg, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, deg > 0, compVerts[id], "node %d vertex-cover mismatch", id)
	}

	// EdgeComponent agrees with the component listing.
	for i, c := range res.Components {
		for _, k := range c.Edges {
			assert.Equal(t, i, res.EdgeComponent[k])
		}
	}
}

func TestAnalyze_NilGraph(t *testing.T) {
	_, err := biconn.Analyze(nil)
	assert.ErrorIs(t, err, biconn.ErrNilGraph)

	_, _, err = biconn.AnalyzeWithTrace(nil)
	assert.ErrorIs(t, err, biconn.ErrNilGraph)
}

func TestAnalyze_EmptyGraph(t *testing.T) {
	res, trace, err := biconn.AnalyzeWithTrace(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, res.CutVertices)
	assert.Empty(t, res.Bridges)
	assert.Empty(t, res.Components)
	assert.Empty(t, res.EdgeComponent)
	assert.Zero(t, trace.Len(), "empty graph yields an empty trace")
}

func TestAnalyze_IsolatedNodes(t *testing.T) {
	g := buildGraph(t, 3, nil)
	res, err := biconn.Analyze(g)
	require.NoError(t, err)
	assert.Empty(t, res.CutVertices)
	assert.Empty(t, res.Components, "isolated nodes form no components")
}

func TestAnalyze_SingleEdge(t *testing.T) {
	g := buildGraph(t, 2, [][2]int{{0, 1}})
	res, err := biconn.Analyze(g)
	require.NoError(t, err)

	assert.Empty(t, res.CutVertices)
	assert.Equal(t, []core.EdgeKey{core.NewEdgeKey(0, 1)}, res.Bridges)
	require.Len(t, res.Components, 1)
	assert.Equal(t, []core.EdgeKey{core.NewEdgeKey(0, 1)}, res.Components[0].Edges)
	assert.Equal(t, []int{0, 1}, res.Components[0].Vertices)
	assertPartition(t, g, res)
}

func TestAnalyze_Triangle(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	res, err := biconn.Analyze(g)
	require.NoError(t, err)

	assert.Empty(t, res.CutVertices)
	assert.Empty(t, res.Bridges)
	require.Len(t, res.Components, 1)
	assert.Len(t, res.Components[0].Edges, 3)
	assert.Equal(t, []int{0, 1, 2}, res.Components[0].Vertices)
	assertPartition(t, g, res)
}

func TestAnalyze_Path(t *testing.T) {
	g := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	res, err := biconn.Analyze(g)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{1, 2}, cutSet(res))
	assert.ElementsMatch(t, []core.EdgeKey{
		core.NewEdgeKey(0, 1),
		core.NewEdgeKey(1, 2),
		core.NewEdgeKey(2, 3),
	}, res.Bridges, "every path edge is a bridge")
	assert.Len(t, res.Components, 3, "each bridge is its own block")
	assertPartition(t, g, res)
}

func TestAnalyze_TwoTrianglesSharedVertex(t *testing.T) {
	// 0-1-2 triangle and 2-3-4 triangle sharing node 2.
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}})
	res, err := biconn.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, cutSet(res))
	assert.Empty(t, res.Bridges)
	require.Len(t, res.Components, 2)

	sets := componentEdgeSets(res)
	want := []map[core.EdgeKey]bool{
		{core.NewEdgeKey(0, 1): true, core.NewEdgeKey(1, 2): true, core.NewEdgeKey(0, 2): true},
		{core.NewEdgeKey(2, 3): true, core.NewEdgeKey(3, 4): true, core.NewEdgeKey(2, 4): true},
	}
	assert.ElementsMatch(t, want, sets)
	assertPartition(t, g, res)
}

func TestAnalyze_StarRootAtCenter(t *testing.T) {
	// Node 0 is the center and, having the smallest id, also the DFS root:
	// the root children>1 rule must fire exactly once.
	g := buildGraph(t, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	res, err := biconn.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, cutSet(res))
	assert.Len(t, res.Bridges, 3)
	assert.Len(t, res.Components, 3)
	assertPartition(t, g, res)
}

func TestAnalyze_StarRootAtLeaf(t *testing.T) {
	// Center 3 has the largest id, so the traversal enters through a leaf
	// and the non-root articulation rule must catch the center instead.
	g := buildGraph(t, 4, [][2]int{{3, 0}, {3, 1}, {3, 2}})
	res, err := biconn.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, []int{3}, cutSet(res))
	assert.Len(t, res.Bridges, 3)
	assert.Len(t, res.Components, 3)
	assertPartition(t, g, res)
}

func TestAnalyze_DisconnectedForest(t *testing.T) {
	// Component A: triangle 0-1-2. Component B: path 3-4-5. Isolated: 6.
	g := buildGraph(t, 7, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}})
	res, err := biconn.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, []int{4}, cutSet(res))
	assert.ElementsMatch(t, []core.EdgeKey{
		core.NewEdgeKey(3, 4),
		core.NewEdgeKey(4, 5),
	}, res.Bridges)
	assert.Len(t, res.Components, 3)
	assertPartition(t, g, res)
}

func TestAnalyze_CycleWithTail(t *testing.T) {
	// Square 0-1-2-3 plus tail 3-4: node 3 is a cut vertex, 3-4 a bridge.
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {3, 4}})
	res, err := biconn.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, []int{3}, cutSet(res))
	assert.Equal(t, []core.EdgeKey{core.NewEdgeKey(3, 4)}, res.Bridges)
	assert.Len(t, res.Components, 2)
	assertPartition(t, g, res)
}

func TestAnalyze_PlainAndTracedAgree(t *testing.T) {
	graphs := []struct {
		name  string
		n     int
		edges [][2]int
	}{
		{"single_edge", 2, [][2]int{{0, 1}}},
		{"triangle", 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}},
		{"path", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"two_triangles", 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}}},
		{"star", 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}},
		{"forest", 7, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}}},
	}

	for _, tc := range graphs {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(t, tc.n, tc.edges)

			plain, err := biconn.Analyze(g)
			require.NoError(t, err)
			traced, _, err := biconn.AnalyzeWithTrace(g)
			require.NoError(t, err)

			assert.Equal(t, plain, traced, "tracing must not change the result")
		})
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}})

	first, err := biconn.Analyze(g)
	require.NoError(t, err)
	second, err := biconn.Analyze(g)
	require.NoError(t, err)

	assert.Equal(t, first, second, "re-running on an unmodified graph is deterministic")
}

func TestAnalyze_SingleEdgeTraceShape(t *testing.T) {
	// The smallest non-trivial trace is fully forced by the ascending
	// neighbor order: visit, tree push, visit, low from child, bridge,
	// component finalize.
	g := buildGraph(t, 2, [][2]int{{0, 1}})
	_, trace, err := biconn.AnalyzeWithTrace(g)
	require.NoError(t, err)

	require.Equal(t, 6, trace.Len())
	assert.Equal(t, biconn.VisitEvent{Node: 0, Time: 0}, trace.Events[0])
	assert.Equal(t, biconn.PushEvent{From: 0, To: 1, Back: false}, trace.Events[1])
	assert.Equal(t, biconn.VisitEvent{Node: 1, Time: 1}, trace.Events[2])
	assert.Equal(t, biconn.LowEvent{Node: 0, Low: 0, Source: 1, FromBack: false}, trace.Events[3])
	assert.Equal(t, biconn.BridgeEvent{From: 0, To: 1}, trace.Events[4])

	comp, ok := trace.Events[5].(biconn.ComponentEvent)
	require.True(t, ok)
	assert.Equal(t, 0, comp.Index)
	assert.Equal(t, []core.EdgeKey{core.NewEdgeKey(0, 1)}, comp.Edges)
}

func TestAnalyze_CutEventEmittedOnce(t *testing.T) {
	// Star with center 0: the root rule re-fires on the third and fourth
	// child but must emit a single CutEvent.
	g := buildGraph(t, 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})
	_, trace, err := biconn.AnalyzeWithTrace(g)
	require.NoError(t, err)

	cuts := 0
	for _, ev := range trace.Events {
		if _, ok := ev.(biconn.CutEvent); ok {
			cuts++
		}
	}
	assert.Equal(t, 1, cuts)
}

func TestAnalyze_GapsInIDSpace(t *testing.T) {
	// Removing a node mid-session leaves holes in the id space; analysis
	// runs over whatever ids remain.
	g := buildGraph(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, g.RemoveNode(2))

	res, err := biconn.Analyze(g)
	require.NoError(t, err)
	assert.Empty(t, res.CutVertices)
	assert.ElementsMatch(t, []core.EdgeKey{
		core.NewEdgeKey(0, 1),
		core.NewEdgeKey(3, 4),
	}, res.Bridges)
	assert.Len(t, res.Components, 2)
	assertPartition(t, g, res)
}
