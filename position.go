package xlsplit

import "fmt"

// Position is an immutable location in the document tree: an offset between
// the children of a parent node. Offset 0 is before the first child.
type Position struct {
	parent *Node
	offset int
}

// NewPosition creates a position at offset inside parent.
func NewPosition(parent *Node, offset int) Position {
	return Position{parent: parent, offset: offset}
}

// PositionIn returns the position at the start of node.
func PositionIn(node *Node) Position {
	return Position{parent: node}
}

// Parent returns the node containing the position.
func (p Position) Parent() *Node { return p.parent }

// Offset returns the child offset inside Parent.
func (p Position) Offset() int { return p.offset }

// IsZero reports whether the position points nowhere.
func (p Position) IsZero() bool { return p.parent == nil }

// String formats the position as "tableCell[0]".
func (p Position) String() string {
	if p.parent == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s[%d]", p.parent.Kind(), p.offset)
}

// FindAncestor returns the nearest node of the given kind enclosing pos,
// starting with the node that contains pos. It returns nil when no such node
// exists up to the root.
func FindAncestor(kind Kind, pos Position) *Node {
	for n := pos.Parent(); n != nil; n = n.Parent() {
		if n.Is(kind) {
			return n
		}
	}
	return nil
}
