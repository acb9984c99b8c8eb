// Package builder provides deterministic topology constructors over
// core.Graph: canonical shapes for tests, benchmarks, and demo sessions.
//
// What:
//
//   - Path(g, n): simple path P_n — every edge a bridge, interior nodes cuts.
//   - Cycle(g, n): simple cycle C_n — one block, no cuts, no bridges.
//   - Star(g, n): center plus n leaves — the center is the lone cut vertex.
//   - Complete(g, n): clique K_n — one block.
//   - RandomSparse(g, n, p, rng): G(n, p) over a caller-seeded *rand.Rand.
//
// Each constructor appends freshly allocated nodes to g (existing contents
// are untouched) and returns the created ids in allocation order. Node
// coordinates are laid out on a unit circle scaled for display, purely as
// a convenience for renderers.
//
// Determinism:
//
//   - Shapes emit nodes and edges in a fixed order.
//   - RandomSparse is deterministic for a fixed rng seed.
//
// Errors:
//
//   - ErrTooFewNodes        – n below the shape's minimum.
//   - ErrInvalidProbability – p outside [0, 1].
//   - ErrNeedRandSource     – RandomSparse called with a nil rng.
package builder
