package xlsplit

import (
	"fmt"
	"sort"
	"strings"
)

// Describe returns a human-readable tree of the blocks and tables under n.
// Tables show their grid size, cells their top-left slot, span and text:
//
//	table (2x2)
//	  A1 "Name"
//	  B1 "Total" rowspan=2
//
// Useful for debugging splits during development.
func Describe(n *Node) string {
	var b strings.Builder
	describeNode(&b, n, 0)
	return b.String()
}

func describeNode(b *strings.Builder, n *Node, indent int) {
	prefix := strings.Repeat("  ", indent)
	switch n.Kind() {
	case KindTable:
		describeTable(b, n, indent)
	case KindParagraph:
		fmt.Fprintf(b, "%sparagraph %q\n", prefix, n.Text())
	case KindText:
		fmt.Fprintf(b, "%stext %q\n", prefix, n.Text())
	default:
		fmt.Fprintf(b, "%s%s%s\n", prefix, n.Kind(), describeAttrs(n))
		for _, c := range n.children {
			describeNode(b, c, indent+1)
		}
	}
}

func describeTable(b *strings.Builder, table *Node, indent int) {
	prefix := strings.Repeat("  ", indent)
	grid, err := BuildGrid(table)
	if err != nil {
		fmt.Fprintf(b, "%stable (malformed: %v)\n", prefix, err)
		return
	}
	size := Size{Width: grid.Width(), Height: grid.Height()}
	fmt.Fprintf(b, "%stable %s%s\n", prefix, size, describeAttrs(table))

	for r := 0; r < grid.Height(); r++ {
		for _, cell := range grid.CellsInRow(r) {
			o, _ := grid.Origin(cell)
			var nested []*Node
			var text []string
			for _, c := range cell.children {
				if c.Is(KindTable) {
					nested = append(nested, c)
					continue
				}
				text = append(text, c.Text())
			}
			fmt.Fprintf(b, "%s  %s %q%s\n", prefix, o, strings.Join(text, "\n"), describeAttrs(cell))
			for _, t := range nested {
				describeTable(b, t, indent+2)
			}
		}
	}
}

// describeAttrs formats attributes as ` key=value` pairs in key order.
func describeAttrs(n *Node) string {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, n.attrs[k])
	}
	return b.String()
}
