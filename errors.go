package xlsplit

import "errors"

var (
	// ErrNoTable is returned when a split is requested while the selection is
	// not inside any table.
	ErrNoTable = errors.New("selection is not inside a table")

	// ErrUnknownCommand is returned by the registry for unregistered names.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrCommandDisabled is returned when executing a command whose last
	// refresh reported it disabled.
	ErrCommandDisabled = errors.New("command is disabled")

	// ErrReentrantExecute is returned when a command is executed while
	// another execution is still in progress.
	ErrReentrantExecute = errors.New("command execution already in progress")

	// ErrNoAnchorCell is returned by GridSplitter when the selection sits in
	// a table but outside every cell.
	ErrNoAnchorCell = errors.New("no anchor cell")

	// ErrAnchorOutsideTable is returned by GridSplitter when the anchor cell
	// or position does not belong to the table being split.
	ErrAnchorOutsideTable = errors.New("anchor is outside the table")

	// ErrDetachedTable is returned by GridSplitter for a table without a
	// parent, since the second table has nowhere to go.
	ErrDetachedTable = errors.New("table is not attached to a document")

	// ErrTargetNotEmpty is returned by SplitRange when writing the split
	// tables would overwrite values or merged cells outside the source area.
	ErrTargetNotEmpty = errors.New("target cells are not empty")

	// ErrMalformedTable wraps structural problems found while building a grid.
	ErrMalformedTable = errors.New("malformed table")

	// ErrNothingToSplit is returned when the split boundary falls on the
	// table edge, which would leave one side empty.
	ErrNothingToSplit = errors.New("split boundary is on the table edge")

	// ErrNoMatch is returned by FindCell when no cell satisfies the condition.
	ErrNoMatch = errors.New("no cell matches")
)
