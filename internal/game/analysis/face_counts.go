package analysis

import (
	"cmp"
	"slices"

	"github.com/cory-johannsen/montecarlo/internal/game/table"
)

// FaceCountTable holds, for each roll, how many dice showed each face.
//
// Invariant: len(Counts) is the number of rolls; every row has len(Faces)
// entries, zero where the face did not appear on that roll.
type FaceCountTable[F cmp.Ordered] struct {
	Faces  []F
	Counts [][]int
}

// Count returns how many dice showed face on roll r, 0 if face never
// appeared anywhere in the session.
func (t FaceCountTable[F]) Count(r int, face F) int {
	i, ok := slices.BinarySearch(t.Faces, face)
	if !ok {
		return 0
	}
	return t.Counts[r][i]
}

// RowTotal returns the number of dice counted on roll r.
func (t FaceCountTable[F]) RowTotal(r int) int {
	total := 0
	for _, c := range t.Counts[r] {
		total += c
	}
	return total
}

// FaceCounts tallies faces per roll. Columns are every face observed
// anywhere in the session, ascending.
//
// Postcondition: RowTotal(r) == DiceCount() for every roll r.
func (a *Analyzer[F]) FaceCounts() FaceCountTable[F] {
	faces := table.Distinct(a.results)
	col := make(map[F]int, len(faces))
	for i, f := range faces {
		col[f] = i
	}

	counts := make([][]int, a.results.Rows())
	for r := range counts {
		row := make([]int, len(faces))
		for d := 0; d < a.results.Dice(); d++ {
			row[col[a.results.At(r, d)]]++
		}
		counts[r] = row
	}
	if faces == nil {
		faces = []F{}
	}
	return FaceCountTable[F]{Faces: faces, Counts: counts}
}
