// Package blockcut is an in-memory playground for building small undirected
// graphs and dissecting their connectivity structure — cut vertices, bridges,
// and biconnected components — with a replayable, event-level view of the
// traversal that finds them.
//
// 🚀 What is blockcut?
//
//	A compact, deterministic library built around one Tarjan-style DFS pass:
//		• Core primitives: integer-id nodes with display coordinates,
//		  canonical (min,max) edge keys, symmetric adjacency
//		• Mutation API: add/remove/rename nodes and edges, clear, clone
//		• Structural analysis: articulation points, bridges, and blocks
//		  from a single traversal over an adjacency snapshot
//		• Instrumented mode: a fully materialized event trace whose every
//		  prefix reconstructs the traversal's intermediate state
//		• Persistence: a small JSON document codec for save/load round-trips
//		• Topology constructors: paths, cycles, stars, cliques, sparse random
//
// ✨ Why choose blockcut?
//
//   - Identical results with or without tracing — instrumentation is
//     observation, never behavior
//   - Explicit-stack DFS — no native recursion, safe on arbitrarily deep graphs
//   - Deterministic iteration — sorted node ids, sorted neighbor order
//   - Pure Go core — the only runtime dependency is the CLI's cobra front-end
//
// Everything is organized under five packages:
//
//	core/         — Graph model: nodes, canonical edges, adjacency, mutation
//	biconn/       — the combined analyzer, trace events, and prefix replay
//	graphio/      — JSON persistence collaborator (save/load, id remapping)
//	builder/      — deterministic topology constructors for tests and demos
//	cmd/blockcut/ — interactive shell + analyze/trace/gen subcommands
//
// Quick ASCII example — one shared cut vertex joining two triangles:
//
//	    0───1
//	     \ /
//	      2        ← node 2 is the articulation point
//	     / \
//	    3───4
//
// See each package's doc.go for contracts, complexity, and error policy.
package blockcut
