// Package core: central types for the blockcut graph model.
//
// This file declares Node, EdgeKey, Edge, Graph, EdgeOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrSelfLoop indicates an edge from a node to itself was requested.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge with the same canonical key already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrIDConflict indicates a rename target id already names a distinct node.
	ErrIDConflict = errors.New("core: node id conflict")
)

// Node represents a single graph node.
//
// ID uniquely identifies the node within its Graph and is assigned by the
// Graph's auto-incrementing allocator. X and Y are display coordinates
// carried for external renderers; no algorithm in this module reads them.
type Node struct {
	// ID is the unique integer identifier for this node.
	ID int

	// X, Y are pass-through display coordinates.
	X, Y float64
}

// EdgeKey is the canonical identity of an undirected edge: the unordered
// pair {a, b} stored as (min, max). Two EdgeKey values are equal exactly
// when they denote the same edge, regardless of argument order.
type EdgeKey struct {
	// A is the smaller endpoint id.
	A int

	// B is the larger endpoint id.
	B int
}

// NewEdgeKey returns the canonical key for the unordered pair {a, b}.
// Total and consistent for all pair arguments, including a == b.
func NewEdgeKey(a, b int) EdgeKey {
	if a > b {
		a, b = b, a
	}

	return EdgeKey{A: a, B: b}
}

// Other reports the endpoint of k opposite to id. The second return is
// false when id is not an endpoint of k.
func (k EdgeKey) Other(id int) (int, bool) {
	switch id {
	case k.A:
		return k.B, true
	case k.B:
		return k.A, true
	default:
		return 0, false
	}
}

// Edge represents a stored edge.
//
// From and To preserve the endpoints in insertion order so a renderer can
// draw an arrowhead when Directed is set; the flag is display-only and the
// adjacency index is symmetric either way.
type Edge struct {
	// From is the endpoint named first at insertion time.
	From int

	// To is the endpoint named second at insertion time.
	To int

	// Directed marks the edge for one-way display. It has no structural
	// meaning: every edge is undirected for analysis purposes.
	Directed bool
}

// Key returns the canonical key of e.
func (e *Edge) Key() EdgeKey { return NewEdgeKey(e.From, e.To) }

// EdgeOption configures properties of an individual edge when added.
type EdgeOption func(*Edge)

// WithEdgeDirected sets the display-only Directed flag on the new edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the blockcut in-memory graph model.
//
// nodes holds the node catalog, edges the canonical edge set, and
// adjacency the symmetric neighbor index; the three are kept in lock-step
// by every mutation. nextID is the session-scoped id allocator.
// A single mutex guards all four, so node/edge invariants can never be
// observed torn.
type Graph struct {
	mu sync.RWMutex // guards nodes, edges, adjacency, nextID

	nextID    int                      // next id handed out by AddNode
	nodes     map[int]*Node            // node id → Node
	edges     map[EdgeKey]*Edge        // canonical key → Edge
	adjacency map[int]map[int]struct{} // node id → set of neighbor ids
}

// NewGraph creates an empty Graph with a fresh id allocator.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[int]*Node),
		edges:     make(map[EdgeKey]*Edge),
		adjacency: make(map[int]map[int]struct{}),
	}
}
