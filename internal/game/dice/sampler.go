package dice

import (
	"fmt"
	"math"
	"sort"

	"github.com/cory-johannsen/montecarlo/internal/game/simerr"
)

// Sample draws n indices into weights independently and with replacement.
// Index i is drawn with probability weights[i] / sum(weights).
//
// Weights are scaled by the largest weight before summing, so finite weights
// whose raw sum overflows float64 still sample correctly. When every weight is
// equal the draw is src.Intn(len(weights)).
//
// Precondition: src must be non-nil.
// Postcondition: Returns exactly n indices, none of which refer to a
// zero-weight entry, or an error wrapping simerr.ErrInvalidArgument when
// weights is empty, any weight is negative or non-finite, every weight is
// zero, or n < 0.
func Sample(src Source, weights []float64, n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: dice: roll count must be >= 0, got %d", simerr.ErrInvalidArgument, n)
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: dice: no weights to sample from", simerr.ErrInvalidArgument)
	}

	maxW := 0.0
	uniform := true
	for _, w := range weights {
		if err := checkWeight(w); err != nil {
			return nil, err
		}
		if w != weights[0] {
			uniform = false
		}
		maxW = max(maxW, w)
	}
	if maxW == 0 {
		return nil, fmt.Errorf("%w: dice: weights must sum to a positive value, got 0", simerr.ErrInvalidArgument)
	}

	out := make([]int, n)
	if uniform {
		for k := range out {
			out[k] = src.Intn(len(weights))
		}
		return out, nil
	}

	// Scaled weights lie in [0, 1], so total <= len(weights).
	cumulative := make([]float64, len(weights))
	last := -1
	total := 0.0
	for i, w := range weights {
		total += w / maxW
		cumulative[i] = total
		if w > 0 {
			last = i
		}
	}

	for k := range out {
		target := src.Float64() * total
		idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > target })
		// Rounding can push target onto the final boundary.
		if idx >= len(cumulative) {
			idx = last
		}
		out[k] = idx
	}
	return out, nil
}

func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: dice: weight must be finite, got %v", simerr.ErrInvalidArgument, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: dice: weight must be >= 0, got %v", simerr.ErrInvalidArgument, w)
	}
	return nil
}
