package dice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/montecarlo/internal/game/simerr"
)

// Notation is a parsed standard dice notation such as "3d6": Count fair dice
// with faces 1..Sides.
//
// Invariant: Count >= 1, Sides >= 2 after successful ParseNotation.
type Notation struct {
	Raw   string // original input string
	Count int    // number of dice
	Sides int    // faces per die
}

// ParseNotation parses "d20" or "2d6". Modifiers and keep-highest suffixes
// are rejected since they describe sums rather than per-die outcomes.
//
// Precondition: s must be a non-empty string.
// Postcondition: Returns a valid Notation or an error wrapping
// simerr.ErrInvalidArgument.
func ParseNotation(s string) (Notation, error) {
	if s == "" {
		return Notation{}, fmt.Errorf("%w: dice: empty notation", simerr.ErrInvalidArgument)
	}

	raw := s
	lower := strings.ToLower(strings.TrimSpace(s))

	dIdx := strings.Index(lower, "d")
	if dIdx < 0 {
		return Notation{}, fmt.Errorf("%w: dice: missing 'd' in notation %q", simerr.ErrInvalidArgument, raw)
	}

	// Count defaults to 1 when omitted.
	count := 1
	if countStr := lower[:dIdx]; countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil {
			return Notation{}, fmt.Errorf("%w: dice: invalid die count in %q: %v", simerr.ErrInvalidArgument, raw, err)
		}
		if count <= 0 {
			return Notation{}, fmt.Errorf("%w: dice: invalid die count in %q: must be >= 1", simerr.ErrInvalidArgument, raw)
		}
	}

	rest := lower[dIdx+1:]
	if strings.ContainsAny(rest, "+-k") {
		return Notation{}, fmt.Errorf("%w: dice: modifiers are not supported in %q", simerr.ErrInvalidArgument, raw)
	}
	sides, err := strconv.Atoi(rest)
	if err != nil {
		return Notation{}, fmt.Errorf("%w: dice: invalid die sides in %q: %v", simerr.ErrInvalidArgument, raw, err)
	}
	if sides < 2 {
		return Notation{}, fmt.Errorf("%w: dice: invalid die sides in %q: must be >= 2", simerr.ErrInvalidArgument, raw)
	}

	return Notation{Raw: raw, Count: count, Sides: sides}, nil
}

// Faces returns the labels 1..Sides.
func (n Notation) Faces() []int {
	faces := make([]int, n.Sides)
	for i := range faces {
		faces[i] = i + 1
	}
	return faces
}

// Build creates Count fair dice sharing src.
//
// Postcondition: len(result) == n.Count; every die has faces 1..Sides with
// weight 1.0.
func (n Notation) Build(src Source) ([]*Die[int], error) {
	out := make([]*Die[int], 0, n.Count)
	for i := 0; i < n.Count; i++ {
		d, err := NewDie(n.Faces(), src)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
