// Package core: node lifecycle operations.
//
// AddNode, HasNode, Node, Nodes, RemoveNode, RenameNode, Clear.
// All mutations either complete fully or leave the graph untouched.
package core

import "sort"

// AddNode allocates the next unused id, inserts a node carrying the given
// display coordinates, and returns the id. Never fails.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(x, y float64) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Allocate the next id; the allocator only ever moves forward.
	id := g.nextID
	g.nextID++

	g.nodes[id] = &Node{ID: id, X: x, Y: y}
	g.adjacency[id] = make(map[int]struct{})

	return id
}

// HasNode reports whether a node with the given id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given id, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Nodes returns copies of all nodes in ascending id order.
// Complexity: O(V·logV).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeIDs returns all node ids in ascending order.
// Complexity: O(V·logV).
func (g *Graph) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// RemoveNode deletes the node with the given id, every edge incident to it,
// and scrubs the id from every neighbor's adjacency set. The adjacency scrub
// runs even when the node is already absent (defensive cleanup), in which
// case ErrNodeNotFound is still returned.
// Complexity: O(deg(v)).
func (g *Graph) RemoveNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, exists := g.nodes[id]

	// Scrub incident edges and mirror adjacency entries first. Self-loops are
	// impossible, so the ranged set itself is never mutated inside the loop.
	for nb := range g.adjacency[id] {
		delete(g.edges, NewEdgeKey(id, nb))
		delete(g.adjacency[nb], id)
	}
	delete(g.adjacency, id)

	// Defensive pass for an id that leaked out of lock-step (should never
	// happen after a completed mutation, cheap to keep consistent anyway).
	for k := range g.edges {
		if k.A == id || k.B == id {
			delete(g.edges, k)
		}
	}

	if !exists {
		return ErrNodeNotFound
	}
	delete(g.nodes, id)

	return nil
}

// RenameNode relabels the node oldID as newID: the catalog entry moves, the
// adjacency key is remapped, every neighbor's reference is rewritten, and
// every edge key touching oldID is rebuilt. The id allocator is advanced so
// future AddNode calls never collide with newID.
//
// Returns ErrNodeNotFound when oldID is absent and ErrIDConflict when newID
// already names a distinct node; the graph is left unchanged on failure.
// Renaming a node to its own id is a no-op.
// Complexity: O(deg(v)).
func (g *Graph) RenameNode(oldID, newID int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[oldID]
	if !ok {
		return ErrNodeNotFound
	}
	if oldID == newID {
		return nil
	}
	if _, taken := g.nodes[newID]; taken {
		return ErrIDConflict
	}

	// Move the catalog entry.
	n.ID = newID
	g.nodes[newID] = n
	delete(g.nodes, oldID)

	// Remap the adjacency key and rewrite each neighbor's reference.
	nbs := g.adjacency[oldID]
	g.adjacency[newID] = nbs
	delete(g.adjacency, oldID)
	for nb := range nbs {
		delete(g.adjacency[nb], oldID)
		g.adjacency[nb][newID] = struct{}{}

		// Rebuild the edge record under its new canonical key, keeping the
		// insertion orientation and display flag intact.
		oldKey := NewEdgeKey(oldID, nb)
		e := g.edges[oldKey]
		delete(g.edges, oldKey)
		if e.From == oldID {
			e.From = newID
		} else {
			e.To = newID
		}
		g.edges[e.Key()] = e
	}

	// Keep the allocator ahead of every id ever seen.
	if newID >= g.nextID {
		g.nextID = newID + 1
	}

	return nil
}

// Clear resets the graph to the empty state and resets the id allocator.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[int]*Node)
	g.edges = make(map[EdgeKey]*Edge)
	g.adjacency = make(map[int]map[int]struct{})
	g.nextID = 0
}
