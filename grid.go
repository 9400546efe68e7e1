package xlsplit

import (
	"fmt"
	"sort"
)

// TableGrid is the slot layout of a table: every slot is covered by the cell
// whose span reaches it, or nil for holes in ragged rows.
type TableGrid struct {
	table   *Node
	slots   [][]*Node
	origins map[*Node]CellRef
	width   int
}

// BuildGrid lays out table into a grid. It fails with ErrMalformedTable when
// the table has structural errors (see ValidateTable).
func BuildGrid(table *Node) (*TableGrid, error) {
	grid, issues := layoutTable(table)
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return nil, fmt.Errorf("%w: %s", ErrMalformedTable, issue)
		}
	}
	return grid, nil
}

// layoutTable places every cell and collects the problems it runs into.
func layoutTable(table *Node) (*TableGrid, []ValidationIssue) {
	var issues []ValidationIssue
	height := table.ChildCount()
	g := &TableGrid{
		table:   table,
		slots:   make([][]*Node, height),
		origins: make(map[*Node]CellRef),
	}

	for r, row := range table.children {
		if !row.Is(KindTableRow) {
			issues = append(issues, errorIssue(r, 0, "table child %d is %q, not a row", r, row.Kind()))
			continue
		}
		col := 0
		for i, cell := range row.children {
			if !cell.Is(KindTableCell) {
				issues = append(issues, errorIssue(r, col, "row %d child %d is %q, not a cell", r, i, cell.Kind()))
				continue
			}
			for col < len(g.slots[r]) && g.slots[r][col] != nil {
				col++
			}
			rs, cs := rowSpan(cell), colSpan(cell)
			if rs < 1 || cs < 1 {
				issues = append(issues, errorIssue(r, col, "invalid span %dx%d", rs, cs))
				continue
			}
			if r+rs > height {
				issues = append(issues, errorIssue(r, col, "rowspan %d extends past the last row", rs))
				rs = height - r
			}
			g.origins[cell] = NewCellRef("", r, col)
			for dr := 0; dr < rs; dr++ {
				for dc := 0; dc < cs; dc++ {
					if prev := g.place(r+dr, col+dc, cell); prev != nil {
						issues = append(issues, errorIssue(r+dr, col+dc, "cell overlaps the cell starting at %s", g.origins[prev]))
					}
				}
			}
			col += cs
		}
	}

	for _, row := range g.slots {
		if len(row) > g.width {
			g.width = len(row)
		}
	}
	for r, row := range g.slots {
		for c := 0; c < g.width; c++ {
			if c >= len(row) || row[c] == nil {
				issues = append(issues, ValidationIssue{
					Severity: SeverityWarning,
					CellRef:  NewCellRef("", r, c),
					Message:  "slot is not covered by any cell",
				})
			}
		}
	}
	return g, issues
}

// place puts cell into slot (row, col), growing the row as needed. It returns
// the cell that already occupied the slot, if any.
func (g *TableGrid) place(row, col int, cell *Node) *Node {
	for len(g.slots[row]) <= col {
		g.slots[row] = append(g.slots[row], nil)
	}
	prev := g.slots[row][col]
	if prev == nil {
		g.slots[row][col] = cell
	}
	return prev
}

// Table returns the table the grid was built from.
func (g *TableGrid) Table() *Node { return g.table }

// Height returns the number of rows.
func (g *TableGrid) Height() int { return len(g.slots) }

// Width returns the number of columns of the widest row.
func (g *TableGrid) Width() int { return g.width }

// CellAt returns the cell covering slot (row, col), or nil.
func (g *TableGrid) CellAt(row, col int) *Node {
	if row < 0 || row >= len(g.slots) || col < 0 || col >= len(g.slots[row]) {
		return nil
	}
	return g.slots[row][col]
}

// Origin returns the top-left slot of cell.
func (g *TableGrid) Origin(cell *Node) (CellRef, bool) {
	ref, ok := g.origins[cell]
	return ref, ok
}

// CellsInRow returns the cells whose top-left slot is in row, ordered by column.
func (g *TableGrid) CellsInRow(row int) []*Node {
	var cells []*Node
	for cell, ref := range g.origins {
		if ref.Row == row {
			cells = append(cells, cell)
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		return g.origins[cells[i]].Col < g.origins[cells[j]].Col
	})
	return cells
}

func errorIssue(row, col int, format string, args ...any) ValidationIssue {
	return ValidationIssue{
		Severity: SeverityError,
		CellRef:  NewCellRef("", row, col),
		Message:  fmt.Sprintf(format, args...),
	}
}
