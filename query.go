package xlsplit

import (
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Variables available to cell conditions:
//
//	row, col          0-based top-left slot of the cell
//	rowspan, colspan  cell spans
//	text              cell text
//	table             index of the table in document order
//	depth             table nesting depth, 0 for top-level tables
type cellEnv = map[string]any

// programCache holds compiled conditions keyed by source text.
var programCache sync.Map

// FindCell returns the first cell, in document order, for which condition
// evaluates to true. Conditions are expr-lang expressions, for example
// `row == 1 && col == 0` or `text startsWith "Total"`.
func FindCell(root *Node, condition string) (*Node, error) {
	program, err := compileCondition(condition)
	if err != nil {
		return nil, err
	}
	tables := NewDocumentModel(root).Tables()
	for ti, table := range tables {
		grid, err := BuildGrid(table)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", ti, err)
		}
		depth := tableDepth(table)
		for r := 0; r < grid.Height(); r++ {
			for _, cell := range grid.CellsInRow(r) {
				o := grid.origins[cell]
				env := cellEnv{
					"row":     o.Row,
					"col":     o.Col,
					"rowspan": rowSpan(cell),
					"colspan": colSpan(cell),
					"text":    cell.Text(),
					"table":   ti,
					"depth":   depth,
				}
				ok, err := runCondition(program, condition, env)
				if err != nil {
					return nil, err
				}
				if ok {
					return cell, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("%w %q", ErrNoMatch, condition)
}

func compileCondition(condition string) (*vm.Program, error) {
	if cached, ok := programCache.Load(condition); ok {
		return cached.(*vm.Program), nil
	}
	program, err := expr.Compile(condition, expr.Env(cellEnv{
		"row": 0, "col": 0, "rowspan": 0, "colspan": 0,
		"text": "", "table": 0, "depth": 0,
	}))
	if err != nil {
		return nil, fmt.Errorf("compile condition %q: %w", condition, err)
	}
	programCache.Store(condition, program)
	return program, nil
}

func runCondition(program *vm.Program, condition string, env cellEnv) (bool, error) {
	result, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate condition %q: %w", condition, err)
	}
	if result == nil {
		return false, nil
	}
	b, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("condition %q evaluated to %T, expected bool", condition, result)
	}
	return b, nil
}

// tableDepth counts the tables enclosing table.
func tableDepth(table *Node) int {
	depth := 0
	for n := table.Parent(); n != nil; n = n.Parent() {
		if n.Is(KindTable) {
			depth++
		}
	}
	return depth
}
