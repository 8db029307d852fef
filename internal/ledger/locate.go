package ledger

import "strings"

// Match identifies the ledger row a search resolved to.
type Match struct {
	// RowIndex is the zero-based index of the authoritative row within the
	// snapshot. When several rows match, the first in the store's iteration
	// order wins; Candidates carries the total so callers can warn about the
	// ambiguity.
	RowIndex   int
	Candidates int
}

// Locate finds the ledger row for a (category, product name) pair. Both terms
// are matched by case-insensitive substring containment against the category
// and product-name columns, so a short search term can match more rows than
// intended. Returns ErrNoMatch when nothing matches.
func Locate(snap Snapshot, category, productName string) (Match, error) {
	catIdx, ok := snap.ColumnIndex(ColumnCategory)
	if !ok {
		return Match{}, &ColumnError{Column: ColumnCategory}
	}
	nameIdx, ok := snap.ColumnIndex(ColumnProductName)
	if !ok {
		return Match{}, &ColumnError{Column: ColumnProductName}
	}

	wantCat := strings.ToLower(strings.TrimSpace(category))
	wantName := strings.ToLower(strings.TrimSpace(productName))

	match := Match{RowIndex: -1}
	for i := range snap.Rows {
		rowCat := strings.ToLower(snap.Cell(i, catIdx))
		rowName := strings.ToLower(snap.Cell(i, nameIdx))
		if strings.Contains(rowCat, wantCat) && strings.Contains(rowName, wantName) {
			if match.RowIndex < 0 {
				match.RowIndex = i
			}
			match.Candidates++
		}
	}

	if match.RowIndex < 0 {
		return Match{}, ErrNoMatch
	}
	return match, nil
}
