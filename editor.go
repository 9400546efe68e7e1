package xlsplit

import (
	"errors"
	"log/slog"
)

// Editor hosts a document and the table split commands. It refreshes
// command enablement whenever the selection or the document changes.
type Editor struct {
	doc      *Document
	commands *CommandRegistry
	logger   *slog.Logger
}

// NewEditor creates an editor over doc and registers one split command per
// axis and side, all delegating to the configured splitter.
func NewEditor(doc *Document, opts ...Option) *Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	reg := NewCommandRegistry(o.logger)
	for _, l := range o.listeners {
		reg.AddListener(l)
	}
	for _, axis := range []Axis{Horizontal, Vertical} {
		for _, side := range []Side{After, Before} {
			reg.Register(NewSplitTableCommand(doc, o.splitter, WithAxis(axis), WithSide(side)))
		}
	}

	e := &Editor{doc: doc, commands: reg, logger: o.logger}
	e.Refresh()
	return e
}

// Document returns the edited document.
func (e *Editor) Document() *Document { return e.doc }

// Commands returns the command registry.
func (e *Editor) Commands() *CommandRegistry { return e.commands }

// Command returns the named command.
func (e *Editor) Command(name string) (Command, bool) { return e.commands.Get(name) }

// Refresh re-derives the enabled flag of every command.
func (e *Editor) Refresh() { e.commands.RefreshAll() }

// SetSelection replaces the selection and refreshes the commands.
func (e *Editor) SetSelection(s Selection) {
	e.doc.SetSelection(s)
	if pos, ok := s.FirstPosition(); ok {
		e.logger.Debug("selection changed", "position", pos.String())
	}
	e.Refresh()
}

// SelectWhere places a caret in the first cell matching condition
// (see FindCell).
func (e *Editor) SelectWhere(condition string) error {
	cell, err := FindCell(e.doc.Root(), condition)
	if err != nil {
		return err
	}
	e.SetSelection(Collapsed(CellPosition(cell)))
	return nil
}

// Execute runs the named command and refreshes the commands afterwards.
func (e *Editor) Execute(name string) error {
	err := e.commands.Execute(name)
	if errors.Is(err, ErrReentrantExecute) {
		// The outer execution refreshes once it completes.
		return err
	}
	e.Refresh()
	return err
}

// CellPosition returns the caret position at the start of cell's first
// paragraph, or at the start of the cell when it has none.
func CellPosition(cell *Node) Position {
	if first := cell.Child(0); first.Is(KindParagraph) {
		return PositionIn(first)
	}
	return PositionIn(cell)
}
