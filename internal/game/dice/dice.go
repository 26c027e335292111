// Package dice provides weighted dice with arbitrary ordered face labels and
// the randomness abstraction used to roll them.
package dice

import (
	"cmp"
	"fmt"

	"github.com/cory-johannsen/montecarlo/internal/game/simerr"
)

// FaceWeight pairs a face with its current weight.
type FaceWeight[F cmp.Ordered] struct {
	Face   F
	Weight float64
}

// Die is a finite set of distinct faces, each with an independently mutable
// non-negative weight.
//
// Invariant: faces are pairwise distinct and never change after NewDie;
// len(weights) == len(faces).
//
// A Die is not safe for concurrent mutation; callers that share one across
// goroutines must serialize SetWeight against Roll themselves.
type Die[F cmp.Ordered] struct {
	faces   []F
	weights []float64
	index   map[F]int
	src     Source
}

// NewDie creates a Die with the given faces, every weight set to 1.0.
//
// Precondition: faces must be non-empty and pairwise distinct; src must be non-nil.
// Postcondition: Returns a Die whose CurrentState lists faces in the given
// order with weight 1.0, or an error wrapping simerr.ErrInvalidArgument.
func NewDie[F cmp.Ordered](faces []F, src Source) (*Die[F], error) {
	if len(faces) == 0 {
		return nil, fmt.Errorf("%w: dice: a die needs at least one face", simerr.ErrInvalidArgument)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: dice: source must not be nil", simerr.ErrInvalidArgument)
	}
	index := make(map[F]int, len(faces))
	for i, f := range faces {
		if _, dup := index[f]; dup {
			return nil, fmt.Errorf("%w: dice: duplicate face %v", simerr.ErrInvalidArgument, f)
		}
		index[f] = i
	}
	weights := make([]float64, len(faces))
	for i := range weights {
		weights[i] = 1.0
	}
	return &Die[F]{
		faces:   append([]F(nil), faces...),
		weights: weights,
		index:   index,
		src:     src,
	}, nil
}

// Faces returns a copy of the face set in construction order.
func (d *Die[F]) Faces() []F {
	return append([]F(nil), d.faces...)
}

// HasFace reports whether face belongs to this die.
func (d *Die[F]) HasFace(face F) bool {
	_, ok := d.index[face]
	return ok
}

// SetWeight replaces the weight of a single face.
//
// Precondition: face must be on the die; weight must be finite and >= 0.
// Postcondition: Only face's weight changes. On error no weight changes and
// the error wraps simerr.ErrNotFound or simerr.ErrInvalidArgument.
func (d *Die[F]) SetWeight(face F, weight float64) error {
	i, ok := d.index[face]
	if !ok {
		return fmt.Errorf("%w: dice: face %v does not exist", simerr.ErrNotFound, face)
	}
	if err := checkWeight(weight); err != nil {
		return err
	}
	d.weights[i] = weight
	return nil
}

// Weight returns the current weight of face.
func (d *Die[F]) Weight(face F) (float64, error) {
	i, ok := d.index[face]
	if !ok {
		return 0, fmt.Errorf("%w: dice: face %v does not exist", simerr.ErrNotFound, face)
	}
	return d.weights[i], nil
}

// CurrentState returns a snapshot of every face and its weight in
// construction order.
func (d *Die[F]) CurrentState() []FaceWeight[F] {
	out := make([]FaceWeight[F], len(d.faces))
	for i, f := range d.faces {
		out[i] = FaceWeight[F]{Face: f, Weight: d.weights[i]}
	}
	return out
}

// TotalWeight returns the sum of all face weights.
func (d *Die[F]) TotalWeight() float64 {
	total := 0.0
	for _, w := range d.weights {
		total += w
	}
	return total
}

// Roll draws n faces independently with replacement using the weights in
// effect at call time.
//
// Precondition: n >= 0 and the weights must sum to a positive value.
// Postcondition: len(result) == n and every element is a face of d, or the
// error wraps simerr.ErrInvalidArgument.
func (d *Die[F]) Roll(n int) ([]F, error) {
	idx, err := Sample(d.src, d.weights, n)
	if err != nil {
		return nil, err
	}
	out := make([]F, n)
	for k, i := range idx {
		out[k] = d.faces[i]
	}
	return out, nil
}

// RollOne draws a single face.
func (d *Die[F]) RollOne() (F, error) {
	out, err := d.Roll(1)
	if err != nil {
		var zero F
		return zero, err
	}
	return out[0], nil
}
