package ledger

import (
	"github.com/magnias/quotedesk/internal/domain/models"
)

// Allocate returns the first open slot index of the row, scanning 1..SlotCount
// in order. A slot is open when its price cell is empty; occupied slots are
// never overwritten and no later index is picked while an earlier one is
// empty. Returns a CapacityError when the row is full.
func Allocate(snap Snapshot, rowIndex int, schema Schema) (int, error) {
	for i := 1; i <= schema.SlotCount; i++ {
		colIdx, ok := snap.ColumnIndex(schema.PriceColumn(i))
		if !ok {
			return 0, &ColumnError{Column: schema.PriceColumn(i)}
		}
		if snap.Cell(rowIndex, colIdx) == "" {
			return i, nil
		}
	}

	name := snap.cellByName(rowIndex, ColumnProductName)
	return 0, &CapacityError{ProductName: name, SlotCount: schema.SlotCount}
}

// ResolveCustomerColumn maps slot i's end-customer field to a concrete header
// index. The expected name follows the schema's pluralization rule; when that
// header is absent the opposite pluralization is tried before giving up. The
// returned name is the one actually present, so writes land under whichever
// header the table already uses.
func ResolveCustomerColumn(snap Snapshot, schema Schema, i int) (int, string, error) {
	expected := schema.CustomerColumn(i)
	if idx, ok := snap.ColumnIndex(expected); ok {
		return idx, expected, nil
	}

	alternate := schema.AlternateCustomerColumn(i)
	if idx, ok := snap.ColumnIndex(alternate); ok {
		return idx, alternate, nil
	}

	return 0, "", &ColumnError{Column: expected, Alternate: alternate}
}

// DecodeRow materializes the typed view of a snapshot row, reading every slot
// with the same pluralization fallback the allocator uses. Slots past the
// last occupied index come back empty and are retained so slot numbering is
// preserved.
func DecodeRow(snap Snapshot, rowIndex int, schema Schema) models.QuoteLedgerRow {
	row := models.QuoteLedgerRow{
		Category:    snap.cellByName(rowIndex, ColumnCategory),
		ProductName: snap.cellByName(rowIndex, ColumnProductName),
		Distributor: snap.cellByName(rowIndex, ColumnRowDistributor),
	}

	for i := 1; i <= schema.SlotCount; i++ {
		slot := models.QuoteSlot{
			Index:     i,
			Price:     snap.cellByName(rowIndex, schema.PriceColumn(i)),
			QuoteDate: snap.cellByName(rowIndex, schema.DateColumn(i)),
		}
		if custIdx, _, err := ResolveCustomerColumn(snap, schema, i); err == nil {
			slot.EndCustomer = snap.Cell(rowIndex, custIdx)
		}
		if schema.PerSlotDistributor {
			slot.Distributor = snap.cellByName(rowIndex, schema.DistributorColumn(i))
		}
		row.Slots = append(row.Slots, slot)
	}

	return row
}
