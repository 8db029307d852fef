package ledger

import "strings"

// Snapshot is one caller-owned read of a ledger table. Header order defines
// the column-to-index mapping; rows hold cell values positionally and may be
// shorter than the header row when trailing cells are empty.
type Snapshot struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex resolves a header name to its zero-based column index.
func (s Snapshot) ColumnIndex(name string) (int, bool) {
	for i, h := range s.Headers {
		if h == name {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the value at (rowIndex, colIndex), treating missing trailing
// cells as empty strings.
func (s Snapshot) Cell(rowIndex, colIndex int) string {
	if rowIndex < 0 || rowIndex >= len(s.Rows) {
		return ""
	}
	row := s.Rows[rowIndex]
	if colIndex < 0 || colIndex >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[colIndex])
}

// cellByName is Cell with header-name resolution; absent columns read empty.
func (s Snapshot) cellByName(rowIndex int, name string) string {
	idx, ok := s.ColumnIndex(name)
	if !ok {
		return ""
	}
	return s.Cell(rowIndex, idx)
}
