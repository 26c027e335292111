package table

import (
	"cmp"
	"fmt"

	"github.com/cory-johannsen/montecarlo/internal/game/simerr"
)

// Entry is one (roll, die, face) cell of a results table.
type Entry[F cmp.Ordered] struct {
	RollNumber int
	DieNumber  int
	FaceRolled F
}

// Narrow is the long form of a results table: one Entry per cell of the
// corresponding Wide table.
type Narrow[F cmp.Ordered] []Entry[F]

// Melt converts w to long form, roll-major then die order.
//
// Postcondition: len(result) == w.Rows() * w.Dice(); every cell of w appears
// exactly once with its roll and die numbers.
func Melt[F cmp.Ordered](w Wide[F]) Narrow[F] {
	out := make(Narrow[F], 0, w.Rows()*w.Dice())
	for r, row := range w.rows {
		for d, f := range row {
			out = append(out, Entry[F]{RollNumber: r, DieNumber: d, FaceRolled: f})
		}
	}
	return out
}

// Pivot rebuilds a Wide table from long form. Entries may be in any order.
//
// Precondition: roll numbers cover 0..R-1, die numbers cover 0..D-1, and
// each (roll, die) pair appears exactly once.
// Postcondition: Pivot(Melt(w)) equals w for any w with at least one die.
func Pivot[F cmp.Ordered](n Narrow[F]) (Wide[F], error) {
	rolls, dice := 0, 0
	for _, e := range n {
		if e.RollNumber < 0 || e.DieNumber < 0 {
			return Wide[F]{}, fmt.Errorf("%w: table: negative index in entry %+v", simerr.ErrInvalidArgument, e)
		}
		rolls = max(rolls, e.RollNumber+1)
		dice = max(dice, e.DieNumber+1)
	}
	if len(n) != rolls*dice {
		return Wide[F]{}, fmt.Errorf("%w: table: %d entries cannot fill a %d x %d grid",
			simerr.ErrInvalidArgument, len(n), rolls, dice)
	}

	rows := make([][]F, rolls)
	filled := make([][]bool, rolls)
	for r := range rows {
		rows[r] = make([]F, dice)
		filled[r] = make([]bool, dice)
	}
	for _, e := range n {
		if filled[e.RollNumber][e.DieNumber] {
			return Wide[F]{}, fmt.Errorf("%w: table: duplicate entry for roll %d die %d",
				simerr.ErrInvalidArgument, e.RollNumber, e.DieNumber)
		}
		rows[e.RollNumber][e.DieNumber] = e.FaceRolled
		filled[e.RollNumber][e.DieNumber] = true
	}
	return Wide[F]{rows: rows, dice: dice}, nil
}
