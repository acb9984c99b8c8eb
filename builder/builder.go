// Package builder: shape constructor implementations.
//
// Contract shared by all constructors:
//   - Validate parameters before touching g; a failed call adds nothing.
//   - Append n fresh nodes via g.AddNode in index order 0..n-1.
//   - Emit edges in stable increasing index order.
//   - Return the created ids in allocation order.
package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/blockcut/core"
)

// File-local constants for method tagging, parameter minima, and layout.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodSparse   = "RandomSparse"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarLeaves = 1
	minNodes      = 1

	layoutRadius = 100.0 // display-circle radius for generated coordinates
)

// circleXY places index i of n evenly on the display circle.
func circleXY(i, n int) (float64, float64) {
	angle := 2 * math.Pi * float64(i) / float64(n)

	return layoutRadius * math.Cos(angle), layoutRadius * math.Sin(angle)
}

// addNodes appends n circle-laid-out nodes and returns their ids.
func addNodes(g *core.Graph, n int) []int {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		x, y := circleXY(i, n)
		ids[i] = g.AddNode(x, y)
	}

	return ids
}

// Path appends a simple path P_n: edges (i-1)–i for i = 1..n-1.
// Requires n ≥ 2. Complexity: O(n).
func Path(g *core.Graph, n int) ([]int, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
	}

	ids := addNodes(g, n)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(ids[i-1], ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, ids[i-1], ids[i], err)
		}
	}

	return ids, nil
}

// Cycle appends a simple cycle C_n: a path plus the closing edge.
// Requires n ≥ 3. Complexity: O(n).
func Cycle(g *core.Graph, n int) ([]int, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
	}

	ids := addNodes(g, n)
	for i := 0; i < n; i++ {
		u, v := ids[i], ids[(i+1)%n]
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, u, v, err)
		}
	}

	return ids, nil
}

// Star appends a star S_n: one center (the first returned id, placed at the
// origin) connected to n leaves. Requires n ≥ 1. Complexity: O(n).
func Star(g *core.Graph, n int) ([]int, error) {
	if n < minStarLeaves {
		return nil, fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, n, minStarLeaves, ErrTooFewNodes)
	}

	ids := make([]int, 0, n+1)
	center := g.AddNode(0, 0)
	ids = append(ids, center)
	for i := 0; i < n; i++ {
		x, y := circleXY(i, n)
		leaf := g.AddNode(x, y)
		ids = append(ids, leaf)
		if err := g.AddEdge(center, leaf); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodStar, center, leaf, err)
		}
	}

	return ids, nil
}

// Complete appends a clique K_n: every unordered pair connected.
// Requires n ≥ 1. Complexity: O(n²).
func Complete(g *core.Graph, n int) ([]int, error) {
	if n < minNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minNodes, ErrTooFewNodes)
	}

	ids := addNodes(g, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(ids[i], ids[j]); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, ids[i], ids[j], err)
			}
		}
	}

	return ids, nil
}

// RandomSparse appends an Erdős–Rényi G(n, p) sample: each unordered pair
// becomes an edge independently with probability p. Deterministic for a
// fixed rng seed. Requires n ≥ 1, 0 ≤ p ≤ 1, and a non-nil rng.
// Complexity: O(n²).
func RandomSparse(g *core.Graph, n int, p float64, rng *rand.Rand) ([]int, error) {
	if n < minNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodSparse, n, minNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g: %w", methodSparse, p, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodSparse, ErrNeedRandSource)
	}

	ids := addNodes(g, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			if err := g.AddEdge(ids[i], ids[j]); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodSparse, ids[i], ids[j], err)
			}
		}
	}

	return ids, nil
}
