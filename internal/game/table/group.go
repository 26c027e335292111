package table

import (
	"cmp"
	"slices"
)

// Group is one distinct key and the number of times it occurred.
type Group[F cmp.Ordered] struct {
	Key   []F
	Count int
}

// CountGroups groups keys by value and counts occurrences.
//
// Postcondition: the sum of Count over the result equals len(keys). Groups are
// ordered by Count descending, ties broken by Key ascending.
func CountGroups[F cmp.Ordered](keys [][]F) []Group[F] {
	sorted := slices.Clone(keys)
	slices.SortFunc(sorted, func(a, b []F) int { return slices.Compare(a, b) })

	var out []Group[F]
	for _, k := range sorted {
		if n := len(out); n > 0 && slices.Compare(out[n-1].Key, k) == 0 {
			out[n-1].Count++
			continue
		}
		out = append(out, Group[F]{Key: slices.Clone(k), Count: 1})
	}

	// Keys are already ascending, so a stable sort on count keeps ties in key order.
	slices.SortStableFunc(out, func(a, b Group[F]) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return out
}

// Distinct returns the sorted set of values appearing anywhere in w.
func Distinct[F cmp.Ordered](w Wide[F]) []F {
	seen := make(map[F]struct{})
	var out []F
	for _, row := range w.rows {
		for _, f := range row {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	slices.Sort(out)
	return out
}
