package ledger

import (
	"errors"
	"fmt"
)

// ErrNoMatch signals that no ledger row exists for the searched pair. It is
// the row-creation trigger, not a failure.
var ErrNoMatch = errors.New("no matching ledger row")

// CapacityError reports that every slot of a row is already occupied. It is a
// user-visible rejection; the row is left untouched.
type CapacityError struct {
	ProductName string
	SlotCount   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("all %d quote slots are filled for %q; cannot add more quotes", e.SlotCount, e.ProductName)
}

// ColumnError reports that a required column exists under neither naming
// variant in the table's current headers.
type ColumnError struct {
	Column    string
	Alternate string
}

func (e *ColumnError) Error() string {
	if e.Alternate != "" {
		return fmt.Sprintf("column %q not found (also tried %q)", e.Column, e.Alternate)
	}
	return fmt.Sprintf("column %q not found", e.Column)
}

// FormatError reports a price value that cannot be parsed back to a number.
// Callers skip the value rather than abort.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%q is not a valid price", e.Value)
}

// WriteError reports a failed or partially completed store write. When some of
// a slot's cells were written before the failure, the row is left in a
// partially filled state; the store offers no transactions, so no rollback is
// attempted and the count is surfaced instead.
type WriteError struct {
	Table        string
	CellsWritten int
	CellsPlanned int
	Err          error
}

func (e *WriteError) Error() string {
	if e.CellsWritten > 0 {
		return fmt.Sprintf("table %s: wrote %d of %d cells before failing: %v", e.Table, e.CellsWritten, e.CellsPlanned, e.Err)
	}
	return fmt.Sprintf("table %s: write failed: %v", e.Table, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
