package xlsplit

import "fmt"

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // Table cannot be laid out or split
	SeverityWarning                 // Table lays out but has uncovered slots
)

// ValidationIssue represents a single problem found in a table.
type ValidationIssue struct {
	Severity Severity
	CellRef  CellRef // slot the issue was found at, 0-based
	Message  string
}

// String formats the issue as "[ERROR] B1: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] %s: %s", sev, v.CellRef, v.Message)
}

// ValidateTable checks the structure of a table without modifying it:
// row and cell kinds, span values, overlapping cells, rowspans running past
// the last row, and uncovered slots.
func ValidateTable(table *Node) []ValidationIssue {
	if !table.Is(KindTable) {
		return []ValidationIssue{errorIssue(0, 0, "node is %q, not a table", table.Kind())}
	}
	_, issues := layoutTable(table)
	return issues
}

// ValidateDocument validates every table of the document, keyed by the
// table's index in Document.Tables. Tables without issues are omitted.
func ValidateDocument(doc *Document) map[int][]ValidationIssue {
	out := make(map[int][]ValidationIssue)
	for i, table := range doc.Tables() {
		if issues := ValidateTable(table); len(issues) > 0 {
			out[i] = issues
		}
	}
	return out
}
