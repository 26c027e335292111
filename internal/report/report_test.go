package report_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cory-johannsen/montecarlo/internal/game/analysis"
	"github.com/cory-johannsen/montecarlo/internal/game/dice"
	"github.com/cory-johannsen/montecarlo/internal/game/play"
	"github.com/cory-johannsen/montecarlo/internal/game/simerr"
	"github.com/cory-johannsen/montecarlo/internal/report"
)

func playedAnalyzer(t *testing.T, rolls int) *analysis.Analyzer[string] {
	t.Helper()
	src := dice.NewSeededSource(17)
	ds := make([]*dice.Die[string], 3)
	for i := range ds {
		d, err := dice.NewDie([]string{"A", "B", "C"}, src)
		require.NoError(t, err)
		ds[i] = d
	}
	g, err := play.NewGame(ds, nil)
	require.NoError(t, err)
	require.NoError(t, g.Play(rolls))
	a, err := analysis.New(g)
	require.NoError(t, err)
	return a
}

func TestBuild_Wide(t *testing.T) {
	a := playedAnalyzer(t, 40)
	r, err := report.Build("abc", a, play.FormWide)
	require.NoError(t, err)

	assert.Equal(t, "abc", r.DiceSet)
	assert.Equal(t, a.SessionID(), r.SessionID)
	assert.Equal(t, 40, r.Rolls)
	assert.Equal(t, 3, r.Dice)
	assert.Equal(t, a.Jackpot(), r.Jackpots)

	res, ok := r.Sheet(report.SheetResults)
	require.True(t, ok)
	assert.Equal(t, []string{"roll_number", "die_0", "die_1", "die_2"}, res.Header)
	assert.Len(t, res.Rows, 40)

	combos, ok := r.Sheet(report.SheetCombinations)
	require.True(t, ok)
	total := 0
	for _, row := range combos.Rows {
		total += row[1].(int)
	}
	assert.Equal(t, 40, total)

	_, ok = r.Sheet("missing")
	assert.False(t, ok)
}

func TestBuild_Narrow(t *testing.T) {
	a := playedAnalyzer(t, 5)
	r, err := report.Build("abc", a, play.FormNarrow)
	require.NoError(t, err)
	res, ok := r.Sheet(report.SheetResults)
	require.True(t, ok)
	assert.Equal(t, []string{"roll_number", "die_number", "face_rolled"}, res.Header)
	assert.Len(t, res.Rows, 15)
}

func TestBuild_InvalidForm(t *testing.T) {
	_, err := report.Build("abc", playedAnalyzer(t, 5), play.Form("diagonal"))
	assert.ErrorIs(t, err, simerr.ErrInvalidArgument)
}

func TestJackpotRate(t *testing.T) {
	assert.Equal(t, 0.0, report.Report{}.JackpotRate())
	assert.Equal(t, 0.25, report.Report{Rolls: 8, Jackpots: 2}.JackpotRate())
}

func TestFormatFaces(t *testing.T) {
	assert.Equal(t, "(1, 3, 3)", report.FormatFaces([]int{1, 3, 3}))
	assert.Equal(t, "()", report.FormatFaces([]string{}))
}

func TestWriteText(t *testing.T) {
	r, err := report.Build("abc", playedAnalyzer(t, 1500), play.FormWide)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, r, report.TextOptions{Locale: "en-US", MaxRows: 3}))
	out := buf.String()
	assert.Contains(t, out, "rolls     1,500")
	assert.Contains(t, out, "Results (1,500 rows)")
	assert.Contains(t, out, "... 1,497 more")
	assert.Contains(t, out, "Combinations (")
	assert.Contains(t, out, r.SessionID)
}

func TestWriteText_FacesNotLocalized(t *testing.T) {
	d, err := dice.NewDie([]int{1000}, dice.NewSeededSource(1))
	require.NoError(t, err)
	g, err := play.NewGame([]*dice.Die[int]{d}, nil)
	require.NoError(t, err)
	require.NoError(t, g.Play(1200))
	a, err := analysis.New(g)
	require.NoError(t, err)

	for _, form := range []play.Form{play.FormWide, play.FormNarrow} {
		r, err := report.Build("big", a, form)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, report.WriteText(&buf, r, report.TextOptions{Locale: "en-US", MaxRows: 2}))
		out := buf.String()
		results := out[strings.Index(out, "Results ("):strings.Index(out, "FaceCounts (")]
		assert.Contains(t, results, "1000", "form %s", form)
		assert.NotContains(t, results, "1,000", "form %s", form)
		assert.Contains(t, results, "... 1,198 more", "form %s", form)
	}
}

func TestBuild_FaceColumns(t *testing.T) {
	wide, err := report.Build("abc", playedAnalyzer(t, 2), play.FormWide)
	require.NoError(t, err)
	res, _ := wide.Sheet(report.SheetResults)
	assert.Equal(t, []int{1, 2, 3}, res.FaceColumns)
	assert.False(t, res.IsFaceColumn(0))

	narrow, err := report.Build("abc", playedAnalyzer(t, 2), play.FormNarrow)
	require.NoError(t, err)
	res, _ = narrow.Sheet(report.SheetResults)
	assert.True(t, res.IsFaceColumn(2))
	assert.False(t, res.IsFaceColumn(1))
}

func TestWriteText_NegativeMaxRows(t *testing.T) {
	r, err := report.Build("abc", playedAnalyzer(t, 4), play.FormWide)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NotPanics(t, func() {
		require.NoError(t, report.WriteText(&buf, r, report.TextOptions{Locale: "en-US", MaxRows: -1}))
	})
	assert.Contains(t, buf.String(), "Results (4 rows)")
	assert.NotContains(t, buf.String(), "roll_number")
}

func TestWriteText_BadLocale(t *testing.T) {
	r, err := report.Build("abc", playedAnalyzer(t, 2), play.FormWide)
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.Error(t, report.WriteText(&buf, r, report.TextOptions{Locale: "not a locale!"}))
}

func TestWriteXLSX(t *testing.T) {
	r, err := report.Build("abc", playedAnalyzer(t, 12), play.FormNarrow)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "session.xlsx")
	require.NoError(t, report.WriteXLSX(path, r))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{
		report.SheetSummary,
		report.SheetResults,
		report.SheetFaceCounts,
		report.SheetCombinations,
		report.SheetPermutations,
	}, f.GetSheetList())

	summary, err := f.GetRows(report.SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"session", r.SessionID}, summary[1])
	assert.Equal(t, []string{"rolls", "12"}, summary[3])

	results, err := f.GetRows(report.SheetResults)
	require.NoError(t, err)
	assert.Len(t, results, 1+36)
	assert.Equal(t, []string{"roll_number", "die_number", "face_rolled"}, results[0])
}
