// Package core: edge lifecycle and query operations.
//
// AddEdge validates self-loop / duplicate / endpoint constraints before any
// mutation, so a failed call never leaves partial state behind. Adjacency is
// mirrored for both endpoints no matter what the display flag says.
package core

import "sort"

// AddEdge inserts the edge {a, b} with optional display options.
//
// Returns ErrSelfLoop when a == b, ErrNodeNotFound when either endpoint is
// missing, and ErrDuplicateEdge when the canonical key already exists.
// On success the edge record and both adjacency entries are written together.
// Complexity: O(1).
func (g *Graph) AddEdge(a, b int, opts ...EdgeOption) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Self-loop constraint.
	if a == b {
		return ErrSelfLoop
	}
	// 2) Both endpoints must be live nodes.
	if _, ok := g.nodes[a]; !ok {
		return ErrNodeNotFound
	}
	if _, ok := g.nodes[b]; !ok {
		return ErrNodeNotFound
	}
	// 3) Multi-edge constraint on the canonical key.
	key := NewEdgeKey(a, b)
	if _, dup := g.edges[key]; dup {
		return ErrDuplicateEdge
	}

	// 4) Construct the edge preserving insertion orientation, apply options.
	e := &Edge{From: a, To: b}
	for _, opt := range opts {
		opt(e)
	}

	// 5) Store and mirror adjacency both ways — the Directed flag is
	//    display-only and never breaks symmetry.
	g.edges[key] = e
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}

	return nil
}

// RemoveEdge deletes the edge {a, b}. Returns ErrEdgeNotFound when the
// canonical key is absent. Complexity: O(1).
func (g *Graph) RemoveEdge(a, b int) error {
	return g.RemoveEdgeKey(NewEdgeKey(a, b))
}

// RemoveEdgeKey deletes the edge with the given canonical key, removing the
// record and both adjacency entries together. Returns ErrEdgeNotFound when
// the key is absent. Complexity: O(1).
func (g *Graph) RemoveEdgeKey(key EdgeKey) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[key]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, key)
	delete(g.adjacency[key.A], key.B)
	delete(g.adjacency[key.B], key.A)

	return nil
}

// HasEdge reports whether the edge {a, b} exists. Complexity: O(1).
func (g *Graph) HasEdge(a, b int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[NewEdgeKey(a, b)]

	return ok
}

// Edge returns a copy of the stored edge for the unordered pair {a, b},
// or ErrEdgeNotFound. Complexity: O(1).
func (g *Graph) Edge(a, b int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[NewEdgeKey(a, b)]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns copies of all edges sorted by canonical key.
// Complexity: O(E·logE).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		ki, kj := out[i].Key(), out[j].Key()
		if ki.A != kj.A {
			return ki.A < kj.A
		}

		return ki.B < kj.B
	})

	return out
}

// EdgeKeys returns all canonical keys in sorted order.
// Complexity: O(E·logE).
func (g *Graph) EdgeKeys() []EdgeKey {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]EdgeKey, 0, len(g.edges))
	for k := range g.edges {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}

		return out[i].B < out[j].B
	})

	return out
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// NeighborIDs returns the ids adjacent to id in ascending order, or
// ErrNodeNotFound. Complexity: O(d·logd).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	nbs := make([]int, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		nbs = append(nbs, nb)
	}
	sort.Ints(nbs)

	return nbs, nil
}

// Degree returns the number of edges incident to id, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, ErrNodeNotFound
	}

	return len(g.adjacency[id]), nil
}
