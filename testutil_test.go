package xlsplit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// splitCall records one delegate invocation.
type splitCall struct {
	method      string
	table       *Node
	cell        *Node
	insertAfter bool
	at          Position
}

// recordingSplitter is a TableSplitter that records calls and returns err.
type recordingSplitter struct {
	calls []splitCall
	err   error
}

func (s *recordingSplitter) SplitAlongRows(table, cell *Node, insertAfter bool, at Position) error {
	s.calls = append(s.calls, splitCall{"rows", table, cell, insertAfter, at})
	return s.err
}

func (s *recordingSplitter) SplitAlongColumns(table, cell *Node, insertAfter bool, at Position) error {
	s.calls = append(s.calls, splitCall{"columns", table, cell, insertAfter, at})
	return s.err
}

// gridFixture is a document with one table and its cells addressed by slot.
type gridFixture struct {
	doc   *Document
	table *Node
	cells map[string]*Node // cell text -> cell
}

// newTwoByTwo builds:
//
//	| a | b |
//	| c | d |
func newTwoByTwo(t *testing.T) *gridFixture {
	t.Helper()
	return newFixture(t, NewTable(
		NewRow(NewCell("a"), NewCell("b")),
		NewRow(NewCell("c"), NewCell("d")),
	))
}

// newSpanned builds a 3x3 table with a rowspan and a colspan:
//
//	| a     | b | c |
//	| (a)   | d     |
//	| e     | f | g |
func newSpanned(t *testing.T) *gridFixture {
	t.Helper()
	return newFixture(t, NewTable(
		NewRow(NewSpanCell("a", 2, 1), NewCell("b"), NewCell("c")),
		NewRow(NewSpanCell("d", 1, 2)),
		NewRow(NewCell("e"), NewCell("f"), NewCell("g")),
	))
}

func newFixture(t *testing.T, table *Node) *gridFixture {
	t.Helper()
	root := NewDocument(NewParagraph("intro"), table, NewParagraph("outro"))
	fx := &gridFixture{
		doc:   NewDocumentModel(root),
		table: table,
		cells: make(map[string]*Node),
	}
	walk(table, func(n *Node, _ int) bool {
		if n.Is(KindTableCell) {
			fx.cells[n.Text()] = n
		}
		return true
	})
	require.NotEmpty(t, fx.cells)
	return fx
}

// selectCell puts a caret in the named cell and returns the position.
func (fx *gridFixture) selectCell(name string) Position {
	pos := CellPosition(fx.cells[name])
	fx.doc.SetSelection(Collapsed(pos))
	return pos
}

// texts returns the cell texts of table row by row.
func texts(table *Node) [][]string {
	var out [][]string
	for _, row := range table.Children() {
		var line []string
		for _, cell := range row.Children() {
			line = append(line, cell.Text())
		}
		out = append(out, line)
	}
	return out
}

// spanOf returns the rowspan and colspan of cell.
func spanOf(cell *Node) [2]int {
	return [2]int{rowSpan(cell), colSpan(cell)}
}
