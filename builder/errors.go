// Package builder: sentinel errors.
//
// Error policy: only package-level sentinels are exposed; callers branch
// with errors.Is. Constructors wrap sentinels with %w and a method prefix,
// never stringified parameters inside the sentinel itself.
package builder

import "errors"

// ErrTooFewNodes indicates that n is smaller than the minimum the requested
// shape needs (2 for Path, 3 for Cycle, 1 leaf for Star, 1 for Complete and
// RandomSparse).
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed
// interval [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without a *rand.Rand.
var ErrNeedRandSource = errors.New("builder: rng is required")
