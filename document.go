package xlsplit

// Range is a selected span of the document between two positions.
type Range struct {
	Start Position
	End   Position
}

// Selection is an ordered list of ranges. The first range leads.
type Selection struct {
	ranges []Range
}

// NewSelection creates a selection from ranges.
func NewSelection(ranges ...Range) Selection {
	return Selection{ranges: append([]Range(nil), ranges...)}
}

// Collapsed creates a caret selection at pos.
func Collapsed(pos Position) Selection {
	return NewSelection(Range{Start: pos, End: pos})
}

// FirstPosition returns the start of the first range.
func (s Selection) FirstPosition() (Position, bool) {
	if len(s.ranges) == 0 {
		return Position{}, false
	}
	return s.ranges[0].Start, true
}

// PositionSource provides the leading position of the current selection.
type PositionSource interface {
	FirstPosition() (Position, bool)
}

// Document is a document tree together with its current selection.
type Document struct {
	root      *Node
	selection Selection
}

// NewDocumentModel wraps root in a Document with an empty selection.
func NewDocumentModel(root *Node) *Document {
	return &Document{root: root}
}

// Root returns the document root node.
func (d *Document) Root() *Node { return d.root }

// Selection returns the current selection.
func (d *Document) Selection() Selection { return d.selection }

// SetSelection replaces the current selection.
func (d *Document) SetSelection(s Selection) { d.selection = s }

// FirstPosition implements PositionSource.
func (d *Document) FirstPosition() (Position, bool) {
	return d.selection.FirstPosition()
}

// Tables returns every table in the document in depth-first order.
func (d *Document) Tables() []*Node {
	var out []*Node
	walk(d.root, func(n *Node, _ int) bool {
		if n.Is(KindTable) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// walk visits n and its descendants depth-first. The callback receives the
// depth of each node relative to n and returns false to skip its subtree.
func walk(n *Node, fn func(n *Node, depth int) bool) {
	var visit func(n *Node, depth int)
	visit = func(n *Node, depth int) {
		if !fn(n, depth) {
			return
		}
		for _, c := range n.children {
			visit(c, depth+1)
		}
	}
	visit(n, 0)
}
