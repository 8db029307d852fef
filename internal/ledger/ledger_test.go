package ledger

import (
	"github.com/magnias/quotedesk/internal/config"
)

// Shared fixtures for the merge pipeline tests: the 4-slot ledger generation
// as it exists in production, plural customer columns at indices 3 and 4.

var fourSlotHeaders = []string{
	"Products", "Product Name", "Distributor",
	"DC-1", "Quote Date 1", "End Customer 1",
	"DC-2", "Quote Date 2", "End Customer 2",
	"DC-3", "Quote Date 3", "End Customers 3",
	"DC-4", "Quote Date 4", "End Customers 4",
}

func fourSlotSchema() Schema {
	return NewSchema(config.LedgerEntry{
		Table:               "QuoteUSD",
		SlotCount:           4,
		PriceDecimals:       4,
		PluralCustomerSlots: []int{3, 4},
		DefaultHeaders:      fourSlotHeaders,
	})
}

func fourSlotSnapshot(rows ...[]string) Snapshot {
	return Snapshot{Headers: fourSlotHeaders, Rows: rows}
}

// rowWithSlots builds a ledger row with the first n slots occupied.
func rowWithSlots(category, product string, n int) []string {
	row := make([]string, len(fourSlotHeaders))
	row[0] = category
	row[1] = product
	row[2] = "Arrow"
	for i := 1; i <= n; i++ {
		base := 3 * i
		row[base] = "$1.0000"
		row[base+1] = "2024-03-01"
		row[base+2] = "Acme"
	}
	return row
}
