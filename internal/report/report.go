// Package report turns an analyzed play session into printable tables and a
// spreadsheet workbook.
package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/cory-johannsen/montecarlo/internal/game/analysis"
	"github.com/cory-johannsen/montecarlo/internal/game/play"
	"github.com/cory-johannsen/montecarlo/internal/game/table"
)

// Sheet names, in workbook order after the summary.
const (
	SheetSummary      = "Summary"
	SheetResults      = "Results"
	SheetFaceCounts   = "FaceCounts"
	SheetCombinations = "Combinations"
	SheetPermutations = "Permutations"
)

// Sheet is one rectangular table of a report.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
	// FaceColumns lists the column indices that hold face values rather
	// than counts or roll numbers.
	FaceColumns []int
}

// IsFaceColumn reports whether column i holds face values.
func (s Sheet) IsFaceColumn(i int) bool {
	return slices.Contains(s.FaceColumns, i)
}

// Report is everything derived from one session, ready for rendering.
type Report struct {
	DiceSet   string
	SessionID string
	Form      play.Form
	Rolls     int
	Dice      int
	Jackpots  int
	Sheets    []Sheet
}

// JackpotRate returns the share of rolls that were jackpots, 0 for an empty session.
func (r Report) JackpotRate() float64 {
	if r.Rolls == 0 {
		return 0
	}
	return float64(r.Jackpots) / float64(r.Rolls)
}

// Sheet returns the named sheet and whether it exists.
func (r Report) Sheet(name string) (Sheet, bool) {
	for _, s := range r.Sheets {
		if s.Name == name {
			return s, true
		}
	}
	return Sheet{}, false
}

// Build collects the results table, face counts, combinations, and
// permutations of a into a Report. The results sheet uses form's layout.
//
// Precondition: a must be non-nil.
// Postcondition: Returns a Report with one sheet per statistic, or an error
// wrapping simerr.ErrInvalidArgument for an unknown form.
func Build[F cmp.Ordered](diceSet string, a *analysis.Analyzer[F], form play.Form) (Report, error) {
	if _, err := play.ParseForm(string(form)); err != nil {
		return Report{}, err
	}
	r := Report{
		DiceSet:   diceSet,
		SessionID: a.SessionID(),
		Form:      form,
		Rolls:     a.Rolls(),
		Dice:      a.DiceCount(),
		Jackpots:  a.Jackpot(),
	}
	r.Sheets = []Sheet{
		resultsSheet(a.Results(), form),
		faceCountSheet(a.FaceCounts()),
		combinationSheet(SheetCombinations, a.Combo()),
		combinationSheet(SheetPermutations, a.Permutations()),
	}
	return r, nil
}

func resultsSheet[F cmp.Ordered](w table.Wide[F], form play.Form) Sheet {
	s := Sheet{Name: SheetResults}
	if form == play.FormNarrow {
		s.Header = []string{"roll_number", "die_number", "face_rolled"}
		s.FaceColumns = []int{2}
		for _, e := range table.Melt(w) {
			s.Rows = append(s.Rows, []any{e.RollNumber, e.DieNumber, e.FaceRolled})
		}
		return s
	}
	s.Header = []string{"roll_number"}
	for d := 0; d < w.Dice(); d++ {
		s.Header = append(s.Header, fmt.Sprintf("die_%d", d))
		s.FaceColumns = append(s.FaceColumns, d+1)
	}
	for r := 0; r < w.Rows(); r++ {
		row := []any{r}
		for _, f := range w.Row(r) {
			row = append(row, f)
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

func faceCountSheet[F cmp.Ordered](fc analysis.FaceCountTable[F]) Sheet {
	s := Sheet{Name: SheetFaceCounts, Header: []string{"roll_number"}}
	for _, f := range fc.Faces {
		s.Header = append(s.Header, fmt.Sprint(f))
	}
	for r, counts := range fc.Counts {
		row := []any{r}
		for _, c := range counts {
			row = append(row, c)
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

func combinationSheet[F cmp.Ordered](name string, combos []analysis.Combination[F]) Sheet {
	s := Sheet{Name: name, Header: []string{"combination", "count"}}
	for _, c := range combos {
		s.Rows = append(s.Rows, []any{FormatFaces(c.Faces), c.Count})
	}
	return s
}

// FormatFaces renders faces as a parenthesised tuple, e.g. "(1, 3, 3)".
func FormatFaces[F cmp.Ordered](faces []F) string {
	parts := make([]string, len(faces))
	for i, f := range faces {
		parts[i] = fmt.Sprint(f)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
