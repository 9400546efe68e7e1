package xlsplit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// createRegionSheet builds:
//
//	A1: "Name"    B1: "Q1"  C1: "Q2"
//	A2: "Alice"   B2: 1     C2: 2      (A2:A3 merged)
//	              B3: 3     C3: 4
func createRegionSheet(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Name")
	f.SetCellValue(sheet, "B1", "Q1")
	f.SetCellValue(sheet, "C1", "Q2")
	f.SetCellValue(sheet, "A2", "Alice")
	f.SetCellValue(sheet, "B2", 1)
	f.SetCellValue(sheet, "C2", 2)
	f.SetCellValue(sheet, "B3", 3)
	f.SetCellValue(sheet, "C3", 4)
	require.NoError(t, f.MergeCell(sheet, "A2", "A3"))
	return f
}

// createHeaderSheet builds:
//
//	A1: "Region"  B1: "Sales" (B1:C1 merged)
//	A2: "x"       B2: 1       C2: 2
func createHeaderSheet(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Region")
	f.SetCellValue(sheet, "B1", "Sales")
	f.SetCellValue(sheet, "A2", "x")
	f.SetCellValue(sheet, "B2", 1)
	f.SetCellValue(sheet, "C2", 2)
	require.NoError(t, f.MergeCell(sheet, "B1", "C1"))
	return f
}

func mustArea(t *testing.T, s string) AreaRef {
	t.Helper()
	a, err := ParseAreaRef(s)
	require.NoError(t, err)
	return a
}

func mustCell(t *testing.T, s string) CellRef {
	t.Helper()
	c, err := ParseCellRef(s)
	require.NoError(t, err)
	return c
}

// reopen writes f to memory and opens the result.
func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	out, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { out.Close() })
	return out
}

func cellValue(t *testing.T, f *excelize.File, cell string) string {
	t.Helper()
	v, err := f.GetCellValue("Sheet1", cell)
	require.NoError(t, err)
	return v
}

func TestReadTable_Merges(t *testing.T) {
	f := createRegionSheet(t)
	table, err := ReadTable(f, mustArea(t, "Sheet1!A1:C3"))
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"Name", "Q1", "Q2"}, {"Alice", "1", "2"}, {"3", "4"}}, texts(table))
	assert.Equal(t, [2]int{2, 1}, spanOf(table.Child(1).Child(0)))
	assert.Empty(t, ValidateTable(table))
}

func TestReadTable_DefaultSheet(t *testing.T) {
	f := createHeaderSheet(t)
	table, err := ReadTable(f, mustArea(t, "A1:C2"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Region", "Sales"}, {"x", "1", "2"}}, texts(table))
	assert.Equal(t, [2]int{1, 2}, spanOf(table.Child(0).Child(1)))
}

func TestReadTable_Errors(t *testing.T) {
	f := createHeaderSheet(t)

	_, err := ReadTable(f, mustArea(t, "C1:C2"))
	assert.ErrorContains(t, err, "crosses area")

	_, err = ReadTable(f, mustArea(t, "Missing!A1:B2"))
	assert.ErrorContains(t, err, "not found")
}

func TestReadTable_MergeStraddlesArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A2", "wide")
	require.NoError(t, f.MergeCell("Sheet1", "A2", "E2"))

	// Neither corner of A2:E2 lies in B1:C3, but the merge runs through it.
	_, err := ReadTable(f, mustArea(t, "B1:C3"))
	assert.ErrorContains(t, err, "crosses area")

	_, err = SplitRange(f, mustArea(t, "B1:C3"), mustCell(t, "B1"), Horizontal, After)
	assert.ErrorContains(t, err, "crosses area")
	assert.Equal(t, "wide", cellValue(t, f, "A2"))
	merges, err := f.GetMergeCells("Sheet1")
	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, "E2", merges[0].GetEndAxis())
}

func TestWriteTable(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	table := NewTable(
		NewRow(NewSpanCell("wide", 1, 2)),
		NewRow(NewCell("l"), NewCell("r")),
	)

	size, err := WriteTable(f, table, mustCell(t, "Sheet1!B2"))
	require.NoError(t, err)
	assert.Equal(t, Size{Width: 2, Height: 2}, size)

	out := reopen(t, f)
	assert.Equal(t, "wide", cellValue(t, out, "B2"))
	assert.Equal(t, "r", cellValue(t, out, "C3"))
	merges, err := out.GetMergeCells("Sheet1")
	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, "B2", merges[0].GetStartAxis())
	assert.Equal(t, "C2", merges[0].GetEndAxis())
}

func TestSplitRange_Horizontal(t *testing.T) {
	f := createRegionSheet(t)

	written, err := SplitRange(f, mustArea(t, "A1:C3"), mustCell(t, "B2"), Horizontal, After)
	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Equal(t, "Sheet1!A1:C2", written[0].String())
	assert.Equal(t, "Sheet1!A4:C4", written[1].String())

	out := reopen(t, f)
	assert.Equal(t, "Alice", cellValue(t, out, "A2"))
	assert.Equal(t, "", cellValue(t, out, "B3"))
	assert.Equal(t, "", cellValue(t, out, "A4"))
	assert.Equal(t, "3", cellValue(t, out, "B4"))
	assert.Equal(t, "4", cellValue(t, out, "C4"))

	merges, err := out.GetMergeCells("Sheet1")
	require.NoError(t, err)
	assert.Empty(t, merges, "the rowspan was cut down to one row")
}

func TestSplitRange_VerticalKeepsMerge(t *testing.T) {
	f := createHeaderSheet(t)

	written, err := SplitRange(f, mustArea(t, "A1:C2"), mustCell(t, "A2"), Vertical, After)
	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Equal(t, "Sheet1!A1:A2", written[0].String())
	assert.Equal(t, "Sheet1!C1:D2", written[1].String())

	out := reopen(t, f)
	assert.Equal(t, "Region", cellValue(t, out, "A1"))
	assert.Equal(t, "", cellValue(t, out, "B1"))
	assert.Equal(t, "Sales", cellValue(t, out, "C1"))
	assert.Equal(t, "1", cellValue(t, out, "C2"))
	assert.Equal(t, "2", cellValue(t, out, "D2"))

	merges, err := out.GetMergeCells("Sheet1")
	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, "C1", merges[0].GetStartAxis())
	assert.Equal(t, "D1", merges[0].GetEndAxis())
}

func TestSplitRange_VerticalThroughMerge(t *testing.T) {
	f := createHeaderSheet(t)

	written, err := SplitRange(f, mustArea(t, "A1:C2"), mustCell(t, "C2"), Vertical, Before, WithGap(0))
	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Equal(t, "Sheet1!A1:B2", written[0].String())
	assert.Equal(t, "Sheet1!C1:C2", written[1].String())

	out := reopen(t, f)
	assert.Equal(t, "Sales", cellValue(t, out, "B1"))
	assert.Equal(t, "", cellValue(t, out, "C1"))
	assert.Equal(t, "2", cellValue(t, out, "C2"))
}

func TestSplitRange_TargetNotEmpty(t *testing.T) {
	t.Run("value below the range", func(t *testing.T) {
		f := createRegionSheet(t)
		f.SetCellValue("Sheet1", "B4", "keep-me")

		written, err := SplitRange(f, mustArea(t, "A1:C3"), mustCell(t, "B2"), Horizontal, After)
		assert.ErrorIs(t, err, ErrTargetNotEmpty)
		assert.ErrorContains(t, err, "Sheet1!B4")
		assert.Empty(t, written)

		assert.Equal(t, "keep-me", cellValue(t, f, "B4"))
		assert.Equal(t, "3", cellValue(t, f, "B3"))
		merges, err := f.GetMergeCells("Sheet1")
		require.NoError(t, err)
		assert.Len(t, merges, 1, "the source merge is untouched")
	})

	t.Run("formula right of the range", func(t *testing.T) {
		f := createHeaderSheet(t)
		require.NoError(t, f.SetCellFormula("Sheet1", "D2", "SUM(B2:C2)"))

		_, err := SplitRange(f, mustArea(t, "A1:C2"), mustCell(t, "A2"), Vertical, After)
		assert.ErrorIs(t, err, ErrTargetNotEmpty)
		assert.Equal(t, "Sales", cellValue(t, f, "B1"))
	})

	t.Run("merge reaching into the target", func(t *testing.T) {
		f := createHeaderSheet(t)
		require.NoError(t, f.MergeCell("Sheet1", "D2", "E2"))

		_, err := SplitRange(f, mustArea(t, "A1:C2"), mustCell(t, "A2"), Vertical, After)
		assert.ErrorIs(t, err, ErrTargetNotEmpty)
		assert.ErrorContains(t, err, "D2:E2")
	})

	t.Run("values past the target are fine", func(t *testing.T) {
		f := createRegionSheet(t)
		f.SetCellValue("Sheet1", "B5", "keep-me")
		f.SetCellValue("Sheet1", "D1", "side")

		written, err := SplitRange(f, mustArea(t, "A1:C3"), mustCell(t, "B2"), Horizontal, After)
		require.NoError(t, err)
		require.Len(t, written, 2)
		assert.Equal(t, "keep-me", cellValue(t, f, "B5"))
		assert.Equal(t, "side", cellValue(t, f, "D1"))
		assert.Equal(t, "3", cellValue(t, f, "B4"))
	})
}

func TestSplitRange_Errors(t *testing.T) {
	f := createRegionSheet(t)

	_, err := SplitRange(f, mustArea(t, "A1:C3"), mustCell(t, "E9"), Horizontal, After)
	assert.ErrorContains(t, err, "outside area")

	_, err = SplitRange(f, mustArea(t, "A1:C3"), mustCell(t, "A1"), Horizontal, Before)
	assert.ErrorIs(t, err, ErrNothingToSplit)

	// The failed split left the sheet alone.
	assert.Equal(t, "Q2", cellValue(t, f, "C1"))
}
