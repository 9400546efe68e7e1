package xlsplit

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellRef is a 0-based slot address, either in a worksheet or, with an empty
// sheet, inside a table grid.
type CellRef struct {
	Sheet string
	Row   int
	Col   int
}

// NewCellRef creates a CellRef with explicit sheet, row, col.
func NewCellRef(sheet string, row, col int) CellRef {
	return CellRef{Sheet: sheet, Row: row, Col: col}
}

// ParseCellRef parses "B5", "$B$5", "Sheet1!B5" or "'My Sheet'!B5".
func ParseCellRef(s string) (CellRef, error) {
	var sheet string
	name := strings.TrimSpace(s)
	if i := strings.LastIndex(name, "!"); i >= 0 {
		sheet, name = strings.Trim(name[:i], "'"), name[i+1:]
	}
	col, row, err := excelize.CellNameToCoordinates(strings.ReplaceAll(name, "$", ""))
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: %w", s, err)
	}
	return NewCellRef(sheet, row-1, col-1), nil
}

// String formats the ref as "Sheet1!A1", or "A1" without a sheet.
func (c CellRef) String() string {
	if c.Sheet != "" {
		return c.Sheet + "!" + c.CellName()
	}
	return c.CellName()
}

// CellName returns the A1-style name without the sheet. Negative coordinates
// yield "?".
func (c CellRef) CellName() string {
	name, err := excelize.CoordinatesToCellName(c.Col+1, c.Row+1)
	if err != nil {
		return "?"
	}
	return name
}

// AreaRef is the rectangle between two cells, both inclusive.
type AreaRef struct {
	First CellRef
	Last  CellRef
}

// NewAreaRef creates an AreaRef from two cell references.
func NewAreaRef(first, last CellRef) AreaRef {
	return AreaRef{First: first, Last: last}
}

// AreaAt returns the area of the given size whose top-left cell is start.
func AreaAt(start CellRef, size Size) AreaRef {
	return NewAreaRef(start, NewCellRef(start.Sheet, start.Row+size.Height-1, start.Col+size.Width-1))
}

// ParseAreaRef parses "A1:C5" or "Sheet1!A1:C5". The last cell inherits the
// sheet of the first.
func ParseAreaRef(s string) (AreaRef, error) {
	first, last, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return AreaRef{}, fmt.Errorf("invalid area reference %q: missing ':'", s)
	}
	a, err := ParseCellRef(first)
	if err != nil {
		return AreaRef{}, err
	}
	b, err := ParseCellRef(last)
	if err != nil {
		return AreaRef{}, err
	}
	if b.Sheet == "" {
		b.Sheet = a.Sheet
	}
	return NewAreaRef(a, b), nil
}

// String formats the area as "Sheet1!A1:C5" or "A1:C5".
func (a AreaRef) String() string {
	if a.First.Sheet == a.Last.Sheet {
		return a.First.String() + ":" + a.Last.CellName()
	}
	return a.First.String() + ":" + a.Last.String()
}

// Size returns the dimensions of the area.
func (a AreaRef) Size() Size {
	return Size{
		Width:  a.Last.Col - a.First.Col + 1,
		Height: a.Last.Row - a.First.Row + 1,
	}
}

// Contains reports whether ref lies in the area. A ref on another sheet never
// does; an area without a sheet ignores the ref's sheet.
func (a AreaRef) Contains(ref CellRef) bool {
	if a.First.Sheet != "" && a.First.Sheet != ref.Sheet {
		return false
	}
	return ref.Row >= a.First.Row && ref.Row <= a.Last.Row &&
		ref.Col >= a.First.Col && ref.Col <= a.Last.Col
}

// Overlaps reports whether the two rectangles share at least one cell.
// Sheets are not compared.
func (a AreaRef) Overlaps(b AreaRef) bool {
	return a.First.Row <= b.Last.Row && b.First.Row <= a.Last.Row &&
		a.First.Col <= b.Last.Col && b.First.Col <= a.Last.Col
}

// Encloses reports whether b lies entirely inside a. Sheets are not compared.
func (a AreaRef) Encloses(b AreaRef) bool {
	return b.First.Row >= a.First.Row && b.Last.Row <= a.Last.Row &&
		b.First.Col >= a.First.Col && b.Last.Col <= a.Last.Col
}

// Size is a width in columns and a height in rows.
type Size struct {
	Width  int
	Height int
}

// ZeroSize is the empty Size.
var ZeroSize = Size{}

// String formats the Size as "(WxH)".
func (s Size) String() string {
	return fmt.Sprintf("(%dx%d)", s.Width, s.Height)
}
