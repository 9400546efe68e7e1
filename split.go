package xlsplit

import (
	"fmt"
	"strings"
)

// Axis is the direction of a table split.
type Axis int

const (
	// Horizontal splits at a row boundary; the new table holds the lower rows.
	Horizontal Axis = iota
	// Vertical splits at a column boundary; the new table holds the right columns.
	Vertical
)

// String returns "horizontal" or "vertical".
func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseAxis parses an axis name. The empty string yields Horizontal.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "horizontally", "rows":
		return Horizontal, nil
	case "vertical", "vertically", "columns":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("invalid axis %q", s)
}

// Side says whether the split boundary falls before or after the anchor cell.
type Side int

const (
	// After puts the boundary after the anchor cell, so the anchor stays in
	// the original table.
	After Side = iota
	// Before puts the boundary before the anchor cell, so the anchor moves to
	// the new table.
	Before
)

// String returns "after" or "before".
func (s Side) String() string {
	if s == Before {
		return "before"
	}
	return "after"
}

// ParseSide parses a side name. The empty string yields After.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "after":
		return After, nil
	case "before":
		return Before, nil
	}
	return After, fmt.Errorf("invalid side %q", s)
}

// TableSplitter performs the structural rewrite of a split. cell may be nil
// when the selection is inside the table but outside every cell; the
// splitter decides what that means.
type TableSplitter interface {
	SplitAlongRows(table, cell *Node, insertAfter bool, at Position) error
	SplitAlongColumns(table, cell *Node, insertAfter bool, at Position) error
}

// SplitOption configures a SplitTableCommand.
type SplitOption func(*splitOptions)

type splitOptions struct {
	axis Axis
	side Side
}

// WithAxis sets the split axis (default: Horizontal).
func WithAxis(axis Axis) SplitOption {
	return func(o *splitOptions) { o.axis = axis }
}

// WithSide sets the side of the anchor cell the boundary falls on (default: After).
func WithSide(side Side) SplitOption {
	return func(o *splitOptions) { o.side = side }
}

// SplitTableCommand splits the table around the selection into two tables.
// Axis and side are fixed at construction; everything else is re-derived
// from the selection on each call.
type SplitTableCommand struct {
	axis     Axis
	side     Side
	source   PositionSource
	splitter TableSplitter
	enabled  bool
}

// NewSplitTableCommand creates a split command reading the selection from
// source and delegating the rewrite to splitter.
func NewSplitTableCommand(source PositionSource, splitter TableSplitter, opts ...SplitOption) *SplitTableCommand {
	o := splitOptions{axis: Horizontal, side: After}
	for _, opt := range opts {
		opt(&o)
	}
	return &SplitTableCommand{
		axis:     o.axis,
		side:     o.side,
		source:   source,
		splitter: splitter,
	}
}

// SplitCommandName returns the registry name for an axis and side:
// splitTableHorizontally, splitTableVerticallyBefore and so on.
func SplitCommandName(axis Axis, side Side) string {
	name := "splitTableHorizontally"
	if axis == Vertical {
		name = "splitTableVertically"
	}
	if side == Before {
		name += "Before"
	}
	return name
}

// Name implements Command.
func (c *SplitTableCommand) Name() string { return SplitCommandName(c.axis, c.side) }

// Axis returns the configured axis.
func (c *SplitTableCommand) Axis() Axis { return c.axis }

// Side returns the configured side.
func (c *SplitTableCommand) Side() Side { return c.side }

// IsEnabled implements Command.
func (c *SplitTableCommand) IsEnabled() bool { return c.enabled }

// Refresh enables the command when the selection is inside a table.
func (c *SplitTableCommand) Refresh() bool {
	c.enabled = false
	if pos, ok := c.source.FirstPosition(); ok {
		c.enabled = FindAncestor(KindTable, pos) != nil
	}
	return c.enabled
}

// Execute hands the enclosing table and anchor cell to the splitter.
// Errors from the splitter are returned unchanged.
func (c *SplitTableCommand) Execute() error {
	pos, ok := c.source.FirstPosition()
	if !ok {
		return fmt.Errorf("%s: %w", c.Name(), ErrNoTable)
	}
	table := FindAncestor(KindTable, pos)
	if table == nil {
		return fmt.Errorf("%s at %s: %w", c.Name(), pos, ErrNoTable)
	}
	// Nil when the selection is between rows; passed through as is.
	cell := FindAncestor(KindTableCell, pos)
	insertAfter := c.side == After

	if c.axis == Horizontal {
		return c.splitter.SplitAlongRows(table, cell, insertAfter, pos)
	}
	return c.splitter.SplitAlongColumns(table, cell, insertAfter, pos)
}
