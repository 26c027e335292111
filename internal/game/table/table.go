// Package table provides the in-memory results containers for a play
// session: a rolls × dice grid (wide form), a one-row-per-cell long form
// (narrow form), and the reshape and grouping helpers that move between them.
package table

import (
	"cmp"
	"fmt"

	"github.com/cory-johannsen/montecarlo/internal/game/simerr"
)

// Wide is a rolls × dice grid. Row r holds the faces rolled on roll r,
// column d holds the faces of die d.
//
// Invariant: every row has exactly Dice() cells.
type Wide[F cmp.Ordered] struct {
	rows [][]F
	dice int
}

// FromColumns assembles a Wide table from one column per die.
//
// Precondition: every column must hold exactly rolls values.
// Postcondition: Rows() == rolls, Dice() == len(columns).
func FromColumns[F cmp.Ordered](rolls int, columns [][]F) (Wide[F], error) {
	if rolls < 0 {
		return Wide[F]{}, fmt.Errorf("%w: table: roll count must be >= 0, got %d", simerr.ErrInvalidArgument, rolls)
	}
	for d, col := range columns {
		if len(col) != rolls {
			return Wide[F]{}, fmt.Errorf("%w: table: column %d has %d values, want %d",
				simerr.ErrInvalidArgument, d, len(col), rolls)
		}
	}
	rows := make([][]F, rolls)
	for r := range rows {
		row := make([]F, len(columns))
		for d, col := range columns {
			row[d] = col[r]
		}
		rows[r] = row
	}
	return Wide[F]{rows: rows, dice: len(columns)}, nil
}

// FromRows assembles a Wide table from rows, copying them.
//
// Precondition: every row must have the same length.
func FromRows[F cmp.Ordered](rows [][]F) (Wide[F], error) {
	dice := 0
	if len(rows) > 0 {
		dice = len(rows[0])
	}
	out := make([][]F, len(rows))
	for r, row := range rows {
		if len(row) != dice {
			return Wide[F]{}, fmt.Errorf("%w: table: row %d has %d cells, want %d",
				simerr.ErrInvalidArgument, r, len(row), dice)
		}
		out[r] = append([]F(nil), row...)
	}
	return Wide[F]{rows: out, dice: dice}, nil
}

// Rows returns the number of rolls.
func (w Wide[F]) Rows() int { return len(w.rows) }

// Dice returns the number of die columns.
func (w Wide[F]) Dice() int { return w.dice }

// At returns the face rolled by die d on roll r.
//
// Precondition: 0 <= r < Rows(), 0 <= d < Dice().
func (w Wide[F]) At(r, d int) F { return w.rows[r][d] }

// Row returns a copy of roll r.
func (w Wide[F]) Row(r int) []F { return append([]F(nil), w.rows[r]...) }

// Column returns a copy of die d's outcomes across all rolls.
func (w Wide[F]) Column(d int) []F {
	out := make([]F, len(w.rows))
	for r, row := range w.rows {
		out[r] = row[d]
	}
	return out
}

// Clone returns a deep copy that shares no storage with w.
func (w Wide[F]) Clone() Wide[F] {
	rows := make([][]F, len(w.rows))
	for r, row := range w.rows {
		rows[r] = append([]F(nil), row...)
	}
	return Wide[F]{rows: rows, dice: w.dice}
}

// Equal reports whether both tables have the same shape and cells.
func (w Wide[F]) Equal(o Wide[F]) bool {
	if w.dice != o.dice || len(w.rows) != len(o.rows) {
		return false
	}
	for r := range w.rows {
		for d := range w.rows[r] {
			if w.rows[r][d] != o.rows[r][d] {
				return false
			}
		}
	}
	return true
}
