// Package biconn computes articulation points (cut vertices), bridges (cut
// edges), and biconnected components ("blocks") of an undirected core.Graph
// in a single Tarjan-style depth-first traversal, with an optional
// instrumented mode that records a deterministic, replayable event trace.
//
// What:
//
//   - Analyze(g): one DFS pass over a read-only adjacency snapshot,
//     computing discovery times and low-link values and deriving cut
//     vertices, bridges, and blocks via an explicit edge stack.
//   - AnalyzeWithTrace(g): the identical pass, additionally returning a
//     fully materialized Trace of tagged events (node-visited, edge-pushed,
//     low-link-updated, cut-vertex, bridge, component-finalized).
//   - Trace.Replay(prefix): reconstructs the traversal's intermediate state
//     at any event prefix — visited set, discovery/low maps, the logical
//     edge stack, and finalized-vs-pending components.
//
// Why:
//
//   - Find single points of failure in small interactive graphs.
//   - Drive stepwise visualizations: a renderer replays the complete trace
//     at its own pace, no live streaming or timers in the core.
//   - Both observation modes share one code path, so the instrumented run
//     is guaranteed to produce the same Result as the plain one.
//
// Determinism contract:
//
//   - CutVertices and Bridges are intrinsic graph properties, invariant to
//     traversal order.
//   - Component grouping is intrinsic, but component order/labels and the
//     exact trace depend on the analyzer's fixed neighbor order (ascending
//     node id). They are stable across runs on an unmodified graph but not
//     canonical across implementations; compare sets, not positions.
//
// Algorithm notes:
//
//   - Recursion is converted to an explicit phase-machine stack
//     (visit → neighbors → post-child), so native stack usage is O(1)
//     regardless of graph depth.
//   - Back-edge relaxation uses the ancestor's discovery time, not its
//     low-link — the standard rule.
//   - After each root's DFS returns, residual stacked edges flush as one
//     final component, covering edges no close trigger ever popped.
//
// Complexity:
//
//   - Analyze / AnalyzeWithTrace: Time O(V·logV + E·logE) including the
//     sorted snapshot, Memory O(V + E).
//   - Trace.Replay(prefix): Time O(prefix), Memory O(V + E).
//
// Errors:
//
//   - ErrNilGraph     – nil graph passed to an entry point.
//   - ErrBadPrefix    – Replay prefix outside [0, Len()].
//   - ErrCorruptTrace – event sequence not producible by one run.
//
// The analyzer holds no state between calls and never mutates the graph;
// the caller must not mutate it for the duration of a call (see core's
// concurrency note, or hand the analyzer a Clone).
package biconn
