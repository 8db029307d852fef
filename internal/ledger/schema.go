package ledger

import (
	"fmt"

	"github.com/magnias/quotedesk/internal/config"
)

// Column names shared by every ledger generation.
const (
	ColumnCategory       = "Products"
	ColumnProductName    = "Product Name"
	ColumnRowDistributor = "Distributor"
)

// Schema captures one ledger generation's layout: how many quote slots a row
// carries, price precision, which customer columns are plural-named, and the
// header list used when the table is still empty.
type Schema struct {
	SlotCount          int
	PriceDecimals      int
	PerSlotDistributor bool
	DefaultHeaders     []string

	pluralSlots map[int]bool
}

// NewSchema builds a Schema from its configuration entry.
func NewSchema(entry config.LedgerEntry) Schema {
	plural := make(map[int]bool, len(entry.PluralCustomerSlots))
	for _, idx := range entry.PluralCustomerSlots {
		plural[idx] = true
	}

	return Schema{
		SlotCount:          entry.SlotCount,
		PriceDecimals:      entry.PriceDecimals,
		PerSlotDistributor: entry.PerSlotDistributor,
		DefaultHeaders:     entry.DefaultHeaders,
		pluralSlots:        plural,
	}
}

// PriceColumn names the price cell of slot i.
func (s Schema) PriceColumn(i int) string {
	return fmt.Sprintf("DC-%d", i)
}

// DateColumn names the quote-date cell of slot i.
func (s Schema) DateColumn(i int) string {
	return fmt.Sprintf("Quote Date %d", i)
}

// DistributorColumn names the per-slot distributor cell of slot i.
func (s Schema) DistributorColumn(i int) string {
	return fmt.Sprintf("Distributor-%d", i)
}

// CustomerColumn names the end-customer cell of slot i following the
// generation's pluralization rule.
func (s Schema) CustomerColumn(i int) string {
	if s.pluralSlots[i] {
		return fmt.Sprintf("End Customers %d", i)
	}
	return fmt.Sprintf("End Customer %d", i)
}

// AlternateCustomerColumn returns the opposite pluralization for slot i. The
// external tables were named by hand over several years, so a header can
// disagree with the rule and the reader must try both.
func (s Schema) AlternateCustomerColumn(i int) string {
	if s.pluralSlots[i] {
		return fmt.Sprintf("End Customer %d", i)
	}
	return fmt.Sprintf("End Customers %d", i)
}
