package xlsplit

import (
	"fmt"
	"sort"
)

// GridSplitter is the default TableSplitter. It lays the table out as a grid,
// cuts it at a row or column boundary next to the anchor cell and inserts the
// second half as a new table directly after the original. Cells crossing the
// boundary are shortened and continued by an empty cell in the new table.
type GridSplitter struct{}

// NewGridSplitter creates a GridSplitter.
func NewGridSplitter() *GridSplitter {
	return &GridSplitter{}
}

// SplitAlongRows moves the rows from the boundary down into a new table.
// The boundary is the anchor cell's first row, or the row after its last
// spanned row when insertAfter is set.
func (s *GridSplitter) SplitAlongRows(table, cell *Node, insertAfter bool, at Position) error {
	grid, origin, err := s.prepare(table, cell, at)
	if err != nil {
		return fmt.Errorf("split along rows: %w", err)
	}
	boundary := origin.Row
	if insertAfter {
		boundary += rowSpan(cell)
	}
	if boundary <= 0 || boundary >= grid.Height() {
		return fmt.Errorf("split along rows at row %d of %d: %w", boundary, grid.Height(), ErrNothingToSplit)
	}

	continued := make(map[*Node]int) // continuation cell -> column
	for r := 0; r < boundary; r++ {
		for _, c := range grid.CellsInRow(r) {
			o, rs := grid.origins[c], rowSpan(c)
			if o.Row+rs <= boundary {
				continue
			}
			setSpan(c, AttrRowSpan, boundary-o.Row)
			cont := continuationCell(c)
			setSpan(cont, AttrRowSpan, o.Row+rs-boundary)
			continued[cont] = o.Col
		}
	}

	lower := tableLike(table)
	for _, row := range table.Children()[boundary:] {
		lower.AppendChild(row)
	}
	if len(continued) > 0 {
		s.mergeIntoRow(lower.Child(0), grid, boundary, continued)
	}
	splitHeading(table, lower, AttrHeadingRows, boundary)
	insertAfterNode(table, lower)
	return nil
}

// SplitAlongColumns moves the columns from the boundary rightwards into a new
// table. The boundary is the anchor cell's first column, or the column after
// its last spanned column when insertAfter is set.
func (s *GridSplitter) SplitAlongColumns(table, cell *Node, insertAfter bool, at Position) error {
	grid, origin, err := s.prepare(table, cell, at)
	if err != nil {
		return fmt.Errorf("split along columns: %w", err)
	}
	boundary := origin.Col
	if insertAfter {
		boundary += colSpan(cell)
	}
	if boundary <= 0 || boundary >= grid.Width() {
		return fmt.Errorf("split along columns at column %d of %d: %w", boundary, grid.Width(), ErrNothingToSplit)
	}

	right := tableLike(table)
	for r := 0; r < grid.Height(); r++ {
		twin := NewElement(KindTableRow, table.Child(r).Attrs())
		// Cells come sorted by column, so a crossing cell is continued
		// before any moved cell of the same row.
		for _, c := range grid.CellsInRow(r) {
			o, cs := grid.origins[c], colSpan(c)
			switch {
			case o.Col >= boundary:
				twin.AppendChild(c)
			case o.Col+cs > boundary:
				setSpan(c, AttrColSpan, boundary-o.Col)
				cont := continuationCell(c)
				setSpan(cont, AttrColSpan, o.Col+cs-boundary)
				twin.AppendChild(cont)
			}
		}
		right.AppendChild(twin)
	}
	splitHeading(table, right, AttrHeadingColumns, boundary)
	insertAfterNode(table, right)
	return nil
}

// prepare checks the split request and lays out the table.
func (s *GridSplitter) prepare(table, cell *Node, at Position) (*TableGrid, CellRef, error) {
	if !table.Is(KindTable) {
		return nil, CellRef{}, ErrNoTable
	}
	if cell == nil {
		return nil, CellRef{}, ErrNoAnchorCell
	}
	if table.Parent() == nil {
		return nil, CellRef{}, ErrDetachedTable
	}
	if !at.IsZero() && !isWithin(at.Parent(), table) {
		return nil, CellRef{}, fmt.Errorf("position %s: %w", at, ErrAnchorOutsideTable)
	}
	grid, err := BuildGrid(table)
	if err != nil {
		return nil, CellRef{}, err
	}
	origin, ok := grid.Origin(cell)
	if !ok {
		return nil, CellRef{}, fmt.Errorf("cell %q: %w", cell.Text(), ErrAnchorOutsideTable)
	}
	return grid, origin, nil
}

// mergeIntoRow places continuation cells among the cells that start in the
// boundary row, keeping column order.
func (s *GridSplitter) mergeIntoRow(row *Node, grid *TableGrid, boundary int, continued map[*Node]int) {
	type placed struct {
		col  int
		cell *Node
	}
	var cells []placed
	for _, c := range grid.CellsInRow(boundary) {
		cells = append(cells, placed{col: grid.origins[c].Col, cell: c})
	}
	for c, col := range continued {
		cells = append(cells, placed{col: col, cell: c})
	}
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].col < cells[j].col })
	for i, p := range cells {
		row.InsertChild(i, p.cell)
	}
}

// continuationCell creates an empty cell carrying the attributes of c.
func continuationCell(c *Node) *Node {
	return NewElement(KindTableCell, c.Attrs(), NewParagraph(""))
}

// tableLike creates an empty table with the attributes of table.
func tableLike(table *Node) *Node {
	return NewElement(KindTable, table.Attrs())
}

// splitHeading divides a heading count between the first and second table.
func splitHeading(first, second *Node, attr string, boundary int) {
	h := first.IntAttr(attr, 0)
	setCount(first, attr, min(h, boundary))
	setCount(second, attr, max(0, h-boundary))
}

func setCount(n *Node, attr string, v int) {
	if v <= 0 {
		n.RemoveAttr(attr)
		return
	}
	n.SetAttr(attr, v)
}

// insertAfterNode inserts n into ref's parent directly after ref.
func insertAfterNode(ref, n *Node) {
	ref.Parent().InsertChild(ref.Index()+1, n)
}

// isWithin reports whether n is ancestor or lies inside it.
func isWithin(n, ancestor *Node) bool {
	for ; n != nil; n = n.Parent() {
		if n == ancestor {
			return true
		}
	}
	return false
}
