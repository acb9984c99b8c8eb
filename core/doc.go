// Package core provides the in-memory Graph model underlying blockcut:
// an integer-id node catalog, a canonical edge set, and a symmetric
// adjacency index, kept in lock-step across every mutation.
//
// What:
//
//   - Node: auto-incremented integer ID plus pass-through display
//     coordinates (X, Y) that no algorithm ever reads.
//   - EdgeKey: the canonical unordered pair (min, max) — one key per edge,
//     total and consistent for all pair arguments.
//   - Edge: insertion-ordered endpoints plus a display-only Directed flag;
//     adjacency is always populated symmetrically regardless of the flag.
//   - Graph: mutation API (AddNode, AddEdge, RemoveEdge, RemoveNode,
//     RenameNode, Clear) and deterministic read API (Nodes, Edges,
//     NeighborIDs, AdjacencySnapshot, Clone), all sorted by id/key.
//
// Why:
//
//   - One mutable graph owned by an interactive session, analyzed by
//     biconn over a read-only adjacency snapshot.
//   - Self-loops and duplicate edges are rejected at the door, so the
//     analyzer never has to defend against them.
//   - RenameNode relabels a node in place: adjacency remapped, neighbor
//     references rewritten, touched edge keys rebuilt, and the id
//     allocator advanced past the new id so AddNode never collides.
//
// Invariants (hold after every completed mutation; failed mutations
// leave the graph untouched):
//
//   - Every id in the edge set or adjacency index names a live node.
//   - Adjacency is symmetric: b ∈ adj[a] ⇔ a ∈ adj[b].
//   - Edge set and adjacency index agree exactly — no edge without both
//     adjacency entries and vice versa.
//
// Complexity:
//
//   - AddNode / AddEdge / RemoveEdge / HasNode / HasEdge: O(1) amortized.
//   - RemoveNode: O(deg(v)).
//   - RenameNode: O(deg(v)).
//   - Nodes / Edges / AdjacencySnapshot / Clone: O((V+E)·log) for sorting.
//
// Errors:
//
//   - ErrSelfLoop       – AddEdge(a, a) requested.
//   - ErrDuplicateEdge  – canonical key already present.
//   - ErrNodeNotFound   – operation references a missing node.
//   - ErrEdgeNotFound   – operation references a missing edge key.
//   - ErrIDConflict     – RenameNode target already names a distinct node.
//
// Concurrency: a single RWMutex guards all state, so individual calls are
// safe across goroutines; an analysis pass still requires that no mutation
// happen between its start and completion (the caller owns that exclusivity,
// or hands the analyzer a Clone).
package core
