package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/montecarlo/internal/game/simerr"
	"github.com/cory-johannsen/montecarlo/internal/game/table"
)

func sampleWide(t *testing.T) table.Wide[int] {
	t.Helper()
	w, err := table.FromColumns(3, [][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	return w
}

func TestFromColumns_Shape(t *testing.T) {
	w := sampleWide(t)
	assert.Equal(t, 3, w.Rows())
	assert.Equal(t, 2, w.Dice())
	assert.Equal(t, []int{2, 5}, w.Row(1))
	assert.Equal(t, []int{4, 5, 6}, w.Column(1))
	assert.Equal(t, 6, w.At(2, 1))
}

func TestFromColumns_RaggedColumns(t *testing.T) {
	_, err := table.FromColumns(3, [][]int{{1, 2, 3}, {4}})
	assert.ErrorIs(t, err, simerr.ErrInvalidArgument)
	_, err = table.FromColumns(-1, [][]int{})
	assert.ErrorIs(t, err, simerr.ErrInvalidArgument)
}

func TestFromColumns_NoDice(t *testing.T) {
	w, err := table.FromColumns[string](4, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, w.Rows())
	assert.Equal(t, 0, w.Dice())
	assert.Empty(t, table.Melt(w))
}

func TestFromRows(t *testing.T) {
	w, err := table.FromRows([][]string{{"a", "b"}, {"c", "d"}})
	require.NoError(t, err)
	assert.Equal(t, "c", w.At(1, 0))
	_, err = table.FromRows([][]string{{"a", "b"}, {"c"}})
	assert.ErrorIs(t, err, simerr.ErrInvalidArgument)
}

func TestClone_Independent(t *testing.T) {
	w := sampleWide(t)
	c := w.Clone()
	assert.True(t, w.Equal(c))

	row := c.Row(0)
	row[0] = 99
	assert.Equal(t, 1, c.At(0, 0), "Row must return a copy")
}

func TestMelt_Order(t *testing.T) {
	w := sampleWide(t)
	n := table.Melt(w)
	require.Len(t, n, 6)
	assert.Equal(t, table.Entry[int]{RollNumber: 0, DieNumber: 0, FaceRolled: 1}, n[0])
	assert.Equal(t, table.Entry[int]{RollNumber: 0, DieNumber: 1, FaceRolled: 4}, n[1])
	assert.Equal(t, table.Entry[int]{RollNumber: 2, DieNumber: 1, FaceRolled: 6}, n[5])
}

func TestPivot_Errors(t *testing.T) {
	_, err := table.Pivot(table.Narrow[int]{
		{RollNumber: 0, DieNumber: 0, FaceRolled: 1},
		{RollNumber: 0, DieNumber: 0, FaceRolled: 2},
	})
	assert.ErrorIs(t, err, simerr.ErrInvalidArgument)

	_, err = table.Pivot(table.Narrow[int]{
		{RollNumber: 1, DieNumber: 1, FaceRolled: 1},
	})
	assert.ErrorIs(t, err, simerr.ErrInvalidArgument)

	_, err = table.Pivot(table.Narrow[int]{{RollNumber: -1}})
	assert.ErrorIs(t, err, simerr.ErrInvalidArgument)
}

func TestPivot_AnyOrder(t *testing.T) {
	w := sampleWide(t)
	n := table.Melt(w)
	for i, j := 0, len(n)-1; i < j; i, j = i+1, j-1 {
		n[i], n[j] = n[j], n[i]
	}
	back, err := table.Pivot(n)
	require.NoError(t, err)
	assert.True(t, w.Equal(back))
}

func TestCountGroups_Order(t *testing.T) {
	groups := table.CountGroups([][]int{
		{2, 2}, {1, 3}, {1, 2}, {1, 3}, {2, 2}, {1, 1},
	})
	assert.Equal(t, []table.Group[int]{
		{Key: []int{1, 3}, Count: 2},
		{Key: []int{2, 2}, Count: 2},
		{Key: []int{1, 1}, Count: 1},
		{Key: []int{1, 2}, Count: 1},
	}, groups)
}

func TestDistinct_Sorted(t *testing.T) {
	w, err := table.FromRows([][]string{{"c", "a"}, {"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, table.Distinct(w))
}

// TestMeltPivot_RoundTrip verifies Pivot(Melt(w)) reconstructs w exactly.
func TestMeltPivot_RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rolls := rapid.IntRange(0, 30).Draw(rt, "rolls")
		dice := rapid.IntRange(1, 6).Draw(rt, "dice")
		cols := make([][]int, dice)
		for d := range cols {
			cols[d] = rapid.SliceOfN(rapid.IntRange(1, 6), rolls, rolls).Draw(rt, "col")
		}
		w, err := table.FromColumns(rolls, cols)
		require.NoError(rt, err)

		n := table.Melt(w)
		assert.Len(rt, n, rolls*dice)
		back, err := table.Pivot(n)
		require.NoError(rt, err)
		if rolls > 0 {
			assert.True(rt, w.Equal(back))
		} else {
			assert.Equal(rt, 0, back.Rows())
		}
	})
}

// TestCountGroups_SumProperty verifies group counts always sum to the key count.
func TestCountGroups_SumProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		keys := rapid.SliceOf(rapid.SliceOfN(rapid.IntRange(1, 3), 2, 2)).Draw(rt, "keys")
		total := 0
		for _, g := range table.CountGroups(keys) {
			total += g.Count
		}
		assert.Equal(rt, len(keys), total)
	})
}
