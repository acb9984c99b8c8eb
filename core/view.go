// File: view.go
// Role: Non-mutating graph views — the adjacency snapshot consumed by the
// analyzer and a deep Clone for callers that need call-scoped isolation.
// Determinism:
//   - Snapshot node order and neighbor order are ascending by id.
// Concurrency:
//   - Read locks only on the source; results share no storage with it.

package core

import "sort"

// AdjacencySnapshot is a read-only copy of the graph's adjacency index:
// every node id mapped to its neighbor ids in ascending order. Isolated
// nodes appear with an empty (nil) neighbor slice.
type AdjacencySnapshot struct {
	// Order lists every node id in ascending order.
	Order []int

	// Neighbors maps each node id to its sorted neighbor ids.
	Neighbors map[int][]int
}

// Snapshot captures the current adjacency as an AdjacencySnapshot.
// The result shares no storage with the graph, so the caller may keep
// mutating the graph while an analyzer walks the snapshot.
// Complexity: O(V·logV + E·logE).
func (g *Graph) Snapshot() *AdjacencySnapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := &AdjacencySnapshot{
		Order:     make([]int, 0, len(g.nodes)),
		Neighbors: make(map[int][]int, len(g.nodes)),
	}
	for id := range g.nodes {
		snap.Order = append(snap.Order, id)
	}
	sort.Ints(snap.Order)

	var nbs []int
	for _, id := range snap.Order {
		nbs = nil
		for nb := range g.adjacency[id] {
			nbs = append(nbs, nb)
		}
		sort.Ints(nbs)
		snap.Neighbors[id] = nbs
	}

	return snap
}

// Clone returns a deep copy of the graph: nodes, edges, adjacency, and the
// id allocator position. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	out.nextID = g.nextID
	for id, n := range g.nodes {
		cp := *n
		out.nodes[id] = &cp
		out.adjacency[id] = make(map[int]struct{}, len(g.adjacency[id]))
		for nb := range g.adjacency[id] {
			out.adjacency[id][nb] = struct{}{}
		}
	}
	for k, e := range g.edges {
		cp := *e
		out.edges[k] = &cp
	}

	return out
}
