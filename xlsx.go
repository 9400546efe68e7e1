package xlsplit

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadTable reads a worksheet area into a table node. Every cell becomes a
// table cell holding its formatted value; merged ranges become spans and the
// cells they cover are skipped. A merged range that overlaps the area without
// lying inside it is an error. An empty sheet name in area means the first
// sheet.
func ReadTable(f *excelize.File, area AreaRef) (*Node, error) {
	sheet, err := resolveSheet(f, area.First.Sheet)
	if err != nil {
		return nil, err
	}
	size := area.Size()
	if size.Width < 1 || size.Height < 1 {
		return nil, fmt.Errorf("invalid area %s", area)
	}

	merges, err := readMerges(f, sheet)
	if err != nil {
		return nil, err
	}
	spans := make(map[CellRef]Size)
	covered := make(map[CellRef]bool)
	for _, merged := range merges {
		if !merged.Overlaps(area) {
			continue
		}
		if !area.Encloses(merged) {
			return nil, fmt.Errorf("merged range %s crosses area %s", merged, area)
		}
		first, last := merged.First, merged.Last
		spans[first] = merged.Size()
		for r := first.Row; r <= last.Row; r++ {
			for c := first.Col; c <= last.Col; c++ {
				if r != first.Row || c != first.Col {
					covered[NewCellRef(sheet, r, c)] = true
				}
			}
		}
	}

	table := NewTable()
	for r := area.First.Row; r <= area.Last.Row; r++ {
		row := NewRow()
		for c := area.First.Col; c <= area.Last.Col; c++ {
			ref := NewCellRef(sheet, r, c)
			if covered[ref] {
				continue
			}
			value, err := f.GetCellValue(sheet, ref.CellName())
			if err != nil {
				return nil, fmt.Errorf("read cell %s: %w", ref, err)
			}
			cell := NewCell(value)
			if span, ok := spans[ref]; ok {
				setSpan(cell, AttrRowSpan, span.Height)
				setSpan(cell, AttrColSpan, span.Width)
			}
			row.AppendChild(cell)
		}
		table.AppendChild(row)
	}
	return table, nil
}

// WriteTable writes table with its top-left slot at at, merging spanned
// cells. Empty cells are left untouched. It returns the size written.
func WriteTable(f *excelize.File, table *Node, at CellRef) (Size, error) {
	sheet, err := resolveSheet(f, at.Sheet)
	if err != nil {
		return ZeroSize, err
	}
	grid, err := BuildGrid(table)
	if err != nil {
		return ZeroSize, err
	}
	for r := 0; r < grid.Height(); r++ {
		for _, cell := range grid.CellsInRow(r) {
			o, _ := grid.Origin(cell)
			topLeft := NewCellRef(sheet, at.Row+o.Row, at.Col+o.Col)
			if text := cell.Text(); text != "" {
				if err := f.SetCellValue(sheet, topLeft.CellName(), text); err != nil {
					return ZeroSize, fmt.Errorf("write cell %s: %w", topLeft, err)
				}
			}
			rs, cs := rowSpan(cell), colSpan(cell)
			if rs <= 1 && cs <= 1 {
				continue
			}
			bottomRight := NewCellRef(sheet, topLeft.Row+rs-1, topLeft.Col+cs-1)
			if err := f.MergeCell(sheet, topLeft.CellName(), bottomRight.CellName()); err != nil {
				return ZeroSize, fmt.Errorf("merge cells %s:%s: %w", topLeft.CellName(), bottomRight.CellName(), err)
			}
		}
	}
	return Size{Width: grid.Width(), Height: grid.Height()}, nil
}

// SplitRange splits the table held in a worksheet area. It reads the area,
// places the selection in the cell covering anchor, runs the split command
// for axis and side through an Editor and writes the resulting tables back
// from the area's top-left cell: stacked for horizontal splits, side by side
// for vertical ones, separated by the configured gap. It returns the areas
// written, in document order. Nothing is written when a target cell outside
// area is in use; the error then wraps ErrTargetNotEmpty.
func SplitRange(f *excelize.File, area AreaRef, anchor CellRef, axis Axis, side Side, opts ...Option) ([]AreaRef, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	sheet, err := resolveSheet(f, area.First.Sheet)
	if err != nil {
		return nil, err
	}
	area.First.Sheet, area.Last.Sheet, anchor.Sheet = sheet, sheet, sheet
	if !area.Contains(anchor) {
		return nil, fmt.Errorf("anchor %s is outside area %s", anchor, area)
	}

	table, err := ReadTable(f, area)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", area, err)
	}
	grid, err := BuildGrid(table)
	if err != nil {
		return nil, fmt.Errorf("read table %s: %w", area, err)
	}
	cell := grid.CellAt(anchor.Row-area.First.Row, anchor.Col-area.First.Col)
	if cell == nil {
		return nil, fmt.Errorf("anchor %s: %w", anchor, ErrNoAnchorCell)
	}

	doc := NewDocumentModel(NewDocument(table))
	ed := NewEditor(doc, opts...)
	ed.SetSelection(Collapsed(CellPosition(cell)))
	name := SplitCommandName(axis, side)
	if err := ed.Execute(name); err != nil {
		return nil, fmt.Errorf("%s at %s: %w", name, anchor, err)
	}

	var tables []*Node
	var targets []AreaRef
	cursor := area.First
	for _, t := range doc.Root().Children() {
		if !t.Is(KindTable) {
			continue
		}
		grid, err := BuildGrid(t)
		if err != nil {
			return nil, fmt.Errorf("lay out split table: %w", err)
		}
		size := Size{Width: grid.Width(), Height: grid.Height()}
		tables = append(tables, t)
		targets = append(targets, AreaAt(cursor, size))
		if axis == Horizontal {
			cursor.Row += size.Height + o.gap
		} else {
			cursor.Col += size.Width + o.gap
		}
	}
	if err := checkTargets(f, area, targets); err != nil {
		return nil, err
	}

	if err := clearArea(f, area); err != nil {
		return nil, err
	}
	var written []AreaRef
	for i, t := range tables {
		if _, err := WriteTable(f, t, targets[i].First); err != nil {
			return written, fmt.Errorf("write table at %s: %w", targets[i].First, err)
		}
		written = append(written, targets[i])
	}
	return written, nil
}

// checkTargets fails with ErrTargetNotEmpty when a target cell outside area
// holds a value or formula, or when a merged range not enclosed by area
// overlaps a target.
func checkTargets(f *excelize.File, area AreaRef, targets []AreaRef) error {
	sheet := area.First.Sheet
	merges, err := readMerges(f, sheet)
	if err != nil {
		return err
	}
	for _, target := range targets {
		for _, merged := range merges {
			if target.Overlaps(merged) && !area.Encloses(merged) {
				return fmt.Errorf("%w: merged range %s overlaps %s", ErrTargetNotEmpty, merged, target)
			}
		}
		for r := target.First.Row; r <= target.Last.Row; r++ {
			for c := target.First.Col; c <= target.Last.Col; c++ {
				ref := NewCellRef(sheet, r, c)
				if area.Contains(ref) {
					continue
				}
				value, err := f.GetCellValue(sheet, ref.CellName())
				if err != nil {
					return fmt.Errorf("read cell %s: %w", ref, err)
				}
				formula, err := f.GetCellFormula(sheet, ref.CellName())
				if err != nil {
					return fmt.Errorf("read cell %s: %w", ref, err)
				}
				if value != "" || formula != "" {
					return fmt.Errorf("%w: %s is in use", ErrTargetNotEmpty, ref)
				}
			}
		}
	}
	return nil
}

// readMerges returns the merged ranges of sheet.
func readMerges(f *excelize.File, sheet string) ([]AreaRef, error) {
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, fmt.Errorf("get merged cells of %q: %w", sheet, err)
	}
	out := make([]AreaRef, 0, len(merges))
	for _, mc := range merges {
		first, err := ParseCellRef(mc.GetStartAxis())
		if err != nil {
			return nil, fmt.Errorf("merged range start: %w", err)
		}
		last, err := ParseCellRef(mc.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("merged range end: %w", err)
		}
		first.Sheet, last.Sheet = sheet, sheet
		out = append(out, NewAreaRef(first, last))
	}
	return out, nil
}

// clearArea removes values and merged ranges inside area.
func clearArea(f *excelize.File, area AreaRef) error {
	sheet := area.First.Sheet
	if err := f.UnmergeCell(sheet, area.First.CellName(), area.Last.CellName()); err != nil {
		return fmt.Errorf("unmerge %s: %w", area, err)
	}
	for r := area.First.Row; r <= area.Last.Row; r++ {
		for c := area.First.Col; c <= area.Last.Col; c++ {
			name := NewCellRef(sheet, r, c).CellName()
			if err := f.SetCellValue(sheet, name, nil); err != nil {
				return fmt.Errorf("clear cell %s: %w", name, err)
			}
		}
	}
	return nil
}

// resolveSheet returns sheet, or the first sheet when empty, after checking
// that it exists.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return "", fmt.Errorf("workbook has no sheets")
		}
		return sheets[0], nil
	}
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return "", fmt.Errorf("sheet %q: %w", sheet, err)
	}
	if idx < 0 {
		return "", fmt.Errorf("sheet %q not found", sheet)
	}
	return sheet, nil
}
