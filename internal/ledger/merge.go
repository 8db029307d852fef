package ledger

import (
	"github.com/magnias/quotedesk/internal/domain/models"
)

// headerRowOffset converts a zero-based snapshot row index into the store's
// 1-based physical row number, where physical row 1 holds the headers.
const headerRowOffset = 2

// PlanKind distinguishes the two outcomes of a merge.
type PlanKind int

const (
	// PlanUpdate fills the next open slot of an existing row with single-cell
	// writes.
	PlanUpdate PlanKind = iota
	// PlanAppend creates a brand-new row seeded into slot 1.
	PlanAppend
)

// CellWrite is one single-cell update at a physical (row, column) position,
// both 1-based per the row store's addressing.
type CellWrite struct {
	Row    int
	Column int
	Name   string
	Value  string
}

// Plan is the fully resolved write set for one quote submission. The caller
// executes it against the store; the planning itself is pure.
type Plan struct {
	Kind           PlanKind
	SlotIndex      int
	Candidates     int
	CustomerColumn string
	FormattedPrice string

	// Writes is populated for PlanUpdate: three cells, or four when the
	// schema carries a per-slot distributor.
	Writes []CellWrite

	// RowValues is populated for PlanAppend, positional against the headers
	// the table currently uses.
	RowValues []string
}

// PlanMerge runs the locate → allocate → format pipeline over a snapshot and
// returns the writes that would merge the submission. A missing row yields an
// append plan; a full row yields a CapacityError; nothing is written here.
func PlanMerge(snap Snapshot, schema Schema, sub models.QuoteSubmission) (Plan, error) {
	price := FormatPrice(sub.Price, sub.Currency, schema.PriceDecimals)

	match, err := Locate(snap, sub.Category, sub.ProductName)
	if err != nil {
		if err == ErrNoMatch {
			return planAppend(snap, schema, sub, price)
		}
		return Plan{}, err
	}

	slot, err := Allocate(snap, match.RowIndex, schema)
	if err != nil {
		return Plan{}, err
	}

	priceIdx, ok := snap.ColumnIndex(schema.PriceColumn(slot))
	if !ok {
		return Plan{}, &ColumnError{Column: schema.PriceColumn(slot)}
	}
	dateIdx, ok := snap.ColumnIndex(schema.DateColumn(slot))
	if !ok {
		return Plan{}, &ColumnError{Column: schema.DateColumn(slot)}
	}
	custIdx, custName, err := ResolveCustomerColumn(snap, schema, slot)
	if err != nil {
		return Plan{}, err
	}

	physRow := match.RowIndex + headerRowOffset
	plan := Plan{
		Kind:           PlanUpdate,
		SlotIndex:      slot,
		Candidates:     match.Candidates,
		CustomerColumn: custName,
		FormattedPrice: price,
		Writes: []CellWrite{
			{Row: physRow, Column: priceIdx + 1, Name: schema.PriceColumn(slot), Value: price},
			{Row: physRow, Column: dateIdx + 1, Name: schema.DateColumn(slot), Value: sub.QuoteDate},
			{Row: physRow, Column: custIdx + 1, Name: custName, Value: sub.EndCustomer},
		},
	}

	if schema.PerSlotDistributor {
		distIdx, ok := snap.ColumnIndex(schema.DistributorColumn(slot))
		if !ok {
			return Plan{}, &ColumnError{Column: schema.DistributorColumn(slot)}
		}
		plan.Writes = append(plan.Writes, CellWrite{
			Row:    physRow,
			Column: distIdx + 1,
			Name:   schema.DistributorColumn(slot),
			Value:  sub.Distributor,
		})
	}

	return plan, nil
}

// planAppend builds the new-row path: slot 1 populated, every other cell an
// empty string. Headers come from the live table when it has any; a table
// that is still empty falls back to the schema's default header list.
func planAppend(snap Snapshot, schema Schema, sub models.QuoteSubmission, price string) (Plan, error) {
	headers := snap.Headers
	if len(headers) == 0 {
		headers = schema.DefaultHeaders
	}

	layout := Snapshot{Headers: headers}
	values := make([]string, len(headers))

	set := func(name, value string) {
		if idx, ok := layout.ColumnIndex(name); ok {
			values[idx] = value
		}
	}

	set(ColumnCategory, sub.Category)
	set(ColumnProductName, sub.ProductName)
	set(ColumnRowDistributor, sub.Distributor)
	set(schema.PriceColumn(1), price)
	set(schema.DateColumn(1), sub.QuoteDate)

	custName := schema.CustomerColumn(1)
	custIdx, name, err := ResolveCustomerColumn(layout, schema, 1)
	if err == nil {
		custName = name
		values[custIdx] = sub.EndCustomer
	}

	if schema.PerSlotDistributor {
		set(schema.DistributorColumn(1), sub.Distributor)
	}

	return Plan{
		Kind:           PlanAppend,
		SlotIndex:      1,
		CustomerColumn: custName,
		FormattedPrice: price,
		RowValues:      values,
	}, nil
}
