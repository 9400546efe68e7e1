package xlsplit

import (
	"strconv"
	"strings"
)

// Kind identifies the structural type of a Node.
type Kind string

// Built-in node kinds.
const (
	KindRoot      Kind = "$root"
	KindTable     Kind = "table"
	KindTableRow  Kind = "tableRow"
	KindTableCell Kind = "tableCell"
	KindParagraph Kind = "paragraph"
	KindText      Kind = "$text"
)

// Attribute names understood by the table code.
const (
	AttrRowSpan        = "rowspan"
	AttrColSpan        = "colspan"
	AttrHeadingRows    = "headingRows"
	AttrHeadingColumns = "headingColumns"
)

// Node is an element of the document tree. Elements hold ordered children;
// text nodes hold a string and never have children.
type Node struct {
	kind     Kind
	attrs    map[string]any
	text     string
	parent   *Node
	children []*Node
}

// NewElement creates an element node and appends the given children to it.
func NewElement(kind Kind, attrs map[string]any, children ...*Node) *Node {
	n := &Node{kind: kind, attrs: make(map[string]any, len(attrs))}
	for k, v := range attrs {
		n.attrs[k] = v
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// NewText creates a text node.
func NewText(s string) *Node {
	return &Node{kind: KindText, text: s}
}

// NewDocument creates a root node holding the given blocks.
func NewDocument(children ...*Node) *Node {
	return NewElement(KindRoot, nil, children...)
}

// NewTable creates a table from rows.
func NewTable(rows ...*Node) *Node {
	return NewElement(KindTable, nil, rows...)
}

// NewRow creates a table row from cells.
func NewRow(cells ...*Node) *Node {
	return NewElement(KindTableRow, nil, cells...)
}

// NewCell creates a single-slot table cell holding one paragraph with text.
func NewCell(text string) *Node {
	return NewElement(KindTableCell, nil, NewParagraph(text))
}

// NewSpanCell creates a table cell spanning rows x cols slots.
func NewSpanCell(text string, rows, cols int) *Node {
	c := NewCell(text)
	if rows > 1 {
		c.SetAttr(AttrRowSpan, rows)
	}
	if cols > 1 {
		c.SetAttr(AttrColSpan, cols)
	}
	return c
}

// NewParagraph creates a paragraph. An empty string yields an empty paragraph.
func NewParagraph(text string) *Node {
	if text == "" {
		return NewElement(KindParagraph, nil)
	}
	return NewElement(KindParagraph, nil, NewText(text))
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Is reports whether the node is of the given kind.
func (n *Node) Is(kind Kind) bool { return n != nil && n.kind == kind }

// Parent returns the enclosing node, or nil for a detached node or the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Index returns the offset of n in its parent, or -1 when detached.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Root returns the top-most ancestor of n (n itself when detached).
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Attr returns an attribute value.
func (n *Node) Attr(name string) (any, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// Attrs returns a copy of all attributes.
func (n *Node) Attrs() map[string]any {
	out := make(map[string]any, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(name string, value any) {
	if n.attrs == nil {
		n.attrs = make(map[string]any)
	}
	n.attrs[name] = value
}

// RemoveAttr deletes an attribute.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// IntAttr returns an integer attribute, or def when absent or not numeric.
func (n *Node) IntAttr(name string, def int) int {
	v, ok := n.attrs[name]
	if !ok {
		return def
	}
	if i, ok := toInt(v); ok {
		return i
	}
	return def
}

// Text returns the concatenated text of the subtree.
func (n *Node) Text() string {
	if n.kind == KindText {
		return n.text
	}
	var b strings.Builder
	for i, c := range n.children {
		if i > 0 && c.kind == KindParagraph {
			b.WriteByte('\n')
		}
		b.WriteString(c.Text())
	}
	return b.String()
}

// AppendChild detaches child from its current parent and appends it to n.
func (n *Node) AppendChild(child *Node) {
	n.InsertChild(len(n.children), child)
}

// InsertChild detaches child from its current parent and inserts it at index.
// Index is clamped to the valid range.
func (n *Node) InsertChild(index int, child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	if index < 0 {
		index = 0
	}
	if index > len(n.children) {
		index = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
}

// RemoveChild detaches child from n. It reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// rowSpan and colSpan read cell spans, treating missing values as 1.
func rowSpan(cell *Node) int { return cell.IntAttr(AttrRowSpan, 1) }
func colSpan(cell *Node) int { return cell.IntAttr(AttrColSpan, 1) }

// setSpan stores a span, dropping the attribute when it is back to 1.
func setSpan(cell *Node, attr string, span int) {
	if span <= 1 {
		cell.RemoveAttr(attr)
		return
	}
	cell.SetAttr(attr, span)
}

// toInt converts any numeric value to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, true
		}
	}
	return 0, false
}
