// Package analysis derives summary statistics from a completed play session.
//
// An Analyzer works on a snapshot of the game's results taken when it is
// created; replaying the game afterwards does not change what it reports.
// Every statistic is recomputed from the snapshot on each call.
package analysis

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/cory-johannsen/montecarlo/internal/game/play"
	"github.com/cory-johannsen/montecarlo/internal/game/simerr"
	"github.com/cory-johannsen/montecarlo/internal/game/table"
)

// Analyzer computes jackpots, face counts, and combinations over one session.
type Analyzer[F cmp.Ordered] struct {
	results   table.Wide[F]
	sessionID string
}

// New snapshots g's most recent results.
//
// Precondition: g must be non-nil and played.
// Postcondition: Returns an Analyzer, or an error wrapping
// simerr.ErrInvalidArgument for a nil game or simerr.ErrInvalidState for an
// unplayed one.
func New[F cmp.Ordered](g *play.Game[F]) (*Analyzer[F], error) {
	if g == nil {
		return nil, fmt.Errorf("%w: analysis: game must not be nil", simerr.ErrInvalidArgument)
	}
	res, err := g.ShowResults(play.FormWide)
	if err != nil {
		return nil, fmt.Errorf("analysis: capturing results: %w", err)
	}
	return &Analyzer[F]{results: res.Wide, sessionID: g.SessionID()}, nil
}

// Rolls returns the number of rolls in the snapshot.
func (a *Analyzer[F]) Rolls() int { return a.results.Rows() }

// DiceCount returns the number of dice in the snapshot.
func (a *Analyzer[F]) DiceCount() int { return a.results.Dice() }

// SessionID returns the session the snapshot was taken from.
func (a *Analyzer[F]) SessionID() string { return a.sessionID }

// Results returns a copy of the snapshot.
func (a *Analyzer[F]) Results() table.Wide[F] { return a.results.Clone() }

// Jackpot counts rolls on which every die shows the same face.
//
// A single-die game counts every roll; a game with no dice counts none.
//
// Postcondition: 0 <= result <= Rolls().
func (a *Analyzer[F]) Jackpot() int {
	return len(a.JackpotRolls())
}

// JackpotRolls returns the roll numbers of every jackpot in ascending order.
func (a *Analyzer[F]) JackpotRolls() []int {
	out := []int{}
	if a.results.Dice() == 0 {
		return out
	}
	for r := 0; r < a.results.Rows(); r++ {
		first := a.results.At(r, 0)
		same := true
		for d := 1; d < a.results.Dice(); d++ {
			if a.results.At(r, d) != first {
				same = false
				break
			}
		}
		if same {
			out = append(out, r)
		}
	}
	return out
}

// Combination is a group of rolls sharing the same faces, with its count.
type Combination[F cmp.Ordered] struct {
	Faces []F
	Count int
}

// Combo groups rolls by the sorted multiset of faces rolled, ignoring which
// die showed which face.
//
// Postcondition: counts sum to Rolls(); each Faces slice is ascending; rows
// are ordered by Count descending, ties by Faces ascending.
func (a *Analyzer[F]) Combo() []Combination[F] {
	keys := make([][]F, a.results.Rows())
	for r := range keys {
		row := a.results.Row(r)
		slices.Sort(row)
		keys[r] = row
	}
	return toCombinations(table.CountGroups(keys))
}

// Permutations groups rolls by the exact per-die sequence of faces, so the
// same faces on different dice are distinct outcomes.
//
// Postcondition: counts sum to Rolls(); rows are ordered by Count descending,
// ties by Faces ascending.
func (a *Analyzer[F]) Permutations() []Combination[F] {
	keys := make([][]F, a.results.Rows())
	for r := range keys {
		keys[r] = a.results.Row(r)
	}
	return toCombinations(table.CountGroups(keys))
}

func toCombinations[F cmp.Ordered](groups []table.Group[F]) []Combination[F] {
	out := make([]Combination[F], len(groups))
	for i, g := range groups {
		out[i] = Combination[F]{Faces: g.Key, Count: g.Count}
	}
	return out
}
