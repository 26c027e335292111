package play

import (
	"cmp"
	"fmt"

	"github.com/cory-johannsen/montecarlo/internal/game/simerr"
	"github.com/cory-johannsen/montecarlo/internal/game/table"
)

// Form selects the layout returned by ShowResults.
type Form string

const (
	// FormWide is the rolls × dice grid.
	FormWide Form = "wide"
	// FormNarrow is one row per (roll, die, face).
	FormNarrow Form = "narrow"
)

// ParseForm converts a user-supplied layout name to a Form.
func ParseForm(s string) (Form, error) {
	switch f := Form(s); f {
	case FormWide, FormNarrow:
		return f, nil
	default:
		return "", fmt.Errorf("%w: play: invalid form %q, use %q or %q", simerr.ErrInvalidArgument, s, FormWide, FormNarrow)
	}
}

// Results holds one of the two layouts; exactly one of Wide or Narrow is
// meaningful, as selected by Form.
type Results[F cmp.Ordered] struct {
	Form   Form
	Wide   table.Wide[F]
	Narrow table.Narrow[F]
}

// ShowResults returns the most recent results in the requested layout.
//
// Postcondition: Returns an error wrapping simerr.ErrInvalidState before the
// first Play, or simerr.ErrInvalidArgument for an unknown form. Stored results
// are never modified.
func (g *Game[F]) ShowResults(form Form) (Results[F], error) {
	if g.results == nil {
		return Results[F]{}, fmt.Errorf("%w: play: no results available, play the game first", simerr.ErrInvalidState)
	}
	switch form {
	case FormWide:
		return Results[F]{Form: form, Wide: g.results.Clone()}, nil
	case FormNarrow:
		return Results[F]{Form: form, Narrow: table.Melt(*g.results)}, nil
	default:
		return Results[F]{}, fmt.Errorf("%w: play: invalid form %q, use %q or %q", simerr.ErrInvalidArgument, form, FormWide, FormNarrow)
	}
}
