// Package graphio: JSON codec implementation.
package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/blockcut/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to Marshal or Save.
	ErrNilGraph = errors.New("graphio: graph is nil")

	// ErrBadDocument indicates a document whose edge list cannot be applied
	// to its own node list (unknown endpoint, self-loop, or duplicate edge).
	ErrBadDocument = errors.New("graphio: bad document")
)

// NodeRecord is the serialized form of one node.
type NodeRecord struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// EdgeRecord is the serialized form of one edge, endpoints in insertion
// orientation so directed display arrows survive a round-trip.
type EdgeRecord struct {
	A        int  `json:"a"`
	B        int  `json:"b"`
	Directed bool `json:"directed"`
}

// Document is the on-disk graph representation.
type Document struct {
	Nodes []NodeRecord `json:"nodes"`
	Edges []EdgeRecord `json:"edges"`
}

// Marshal serializes g into a Document in deterministic order (nodes by id,
// edges by canonical key). Complexity: O(V·logV + E·logE).
func Marshal(g *core.Graph) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	doc := Document{
		Nodes: make([]NodeRecord, 0, g.NodeCount()),
		Edges: make([]EdgeRecord, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, NodeRecord{ID: n.ID, X: n.X, Y: n.Y})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeRecord{A: e.From, B: e.To, Directed: e.Directed})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("graphio: marshal: %w", err)
	}

	return data, nil
}

// Unmarshal builds a fresh graph from serialized data. Every node is remapped
// through AddNode, so the resulting ids are freshly allocated; edge endpoints
// follow the remapping. Complexity: O(V + E) plus decoding.
func Unmarshal(data []byte) (*core.Graph, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("graphio: unmarshal: %w", err)
	}

	g := core.NewGraph()

	// Remap document ids to freshly allocated ones.
	remap := make(map[int]int, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if _, dup := remap[n.ID]; dup {
			return nil, fmt.Errorf("graphio: duplicate node id %d: %w", n.ID, ErrBadDocument)
		}
		remap[n.ID] = g.AddNode(n.X, n.Y)
	}

	for _, e := range doc.Edges {
		a, okA := remap[e.A]
		b, okB := remap[e.B]
		if !okA || !okB {
			return nil, fmt.Errorf("graphio: edge %d-%d references unknown node: %w", e.A, e.B, ErrBadDocument)
		}
		if err := g.AddEdge(a, b, core.WithEdgeDirected(e.Directed)); err != nil {
			return nil, fmt.Errorf("graphio: edge %d-%d: %w (%w)", e.A, e.B, ErrBadDocument, err)
		}
	}

	return g, nil
}

// Save writes g to path as indented JSON.
func Save(g *core.Graph, path string) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("graphio: save %s: %w", path, err)
	}

	return nil
}

// Load reads a graph document from path.
func Load(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: load %s: %w", path, err)
	}

	return Unmarshal(data)
}
