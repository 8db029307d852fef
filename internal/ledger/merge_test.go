package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magnias/quotedesk/internal/config"
	"github.com/magnias/quotedesk/internal/domain/models"
)

func usdSubmission() models.QuoteSubmission {
	return models.QuoteSubmission{
		Currency:    models.CurrencyUSD,
		Category:    "ESD",
		ProductName: "Diode-X",
		Price:       1.23456,
		EndCustomer: "Foxconn",
		Distributor: "Avnet",
		QuoteDate:   "2024-06-15",
	}
}

func TestPlanMergeFillsThirdSlot(t *testing.T) {
	schema := fourSlotSchema()
	snap := fourSlotSnapshot(
		rowWithSlots("CMF", "Filter-9", 1),
		rowWithSlots("ESD", "Diode-X", 2),
	)

	plan, err := PlanMerge(snap, schema, usdSubmission())
	require.NoError(t, err)

	assert.Equal(t, PlanUpdate, plan.Kind)
	assert.Equal(t, 3, plan.SlotIndex)
	assert.Equal(t, "End Customers 3", plan.CustomerColumn)
	assert.Equal(t, "$1.2346", plan.FormattedPrice)
	require.Len(t, plan.Writes, 3)

	// The matched row is snapshot index 1, physically row 3 (headers are row 1).
	for _, w := range plan.Writes {
		assert.Equal(t, 3, w.Row)
	}

	// DC-3 is header index 9, Quote Date 3 index 10, End Customers 3 index 11;
	// the store addresses columns 1-based.
	assert.Equal(t, CellWrite{Row: 3, Column: 10, Name: "DC-3", Value: "$1.2346"}, plan.Writes[0])
	assert.Equal(t, CellWrite{Row: 3, Column: 11, Name: "Quote Date 3", Value: "2024-06-15"}, plan.Writes[1])
	assert.Equal(t, CellWrite{Row: 3, Column: 12, Name: "End Customers 3", Value: "Foxconn"}, plan.Writes[2])
}

func TestPlanMergePerSlotDistributor(t *testing.T) {
	headers := append([]string{}, fourSlotHeaders...)
	headers = append(headers, "Distributor-1", "Distributor-2", "Distributor-3", "Distributor-4")

	schema := NewSchema(config.LedgerEntry{
		Table:               "QuoteUSD",
		SlotCount:           4,
		PriceDecimals:       4,
		PluralCustomerSlots: []int{3, 4},
		PerSlotDistributor:  true,
		DefaultHeaders:      headers,
	})

	row := rowWithSlots("ESD", "Diode-X", 2)
	row = append(row, "", "", "", "")
	snap := Snapshot{Headers: headers, Rows: [][]string{row}}

	plan, err := PlanMerge(snap, schema, usdSubmission())
	require.NoError(t, err)
	require.Len(t, plan.Writes, 4)
	assert.Equal(t, "Distributor-3", plan.Writes[3].Name)
	assert.Equal(t, "Avnet", plan.Writes[3].Value)
}

func TestPlanMergeCapacityExhausted(t *testing.T) {
	schema := fourSlotSchema()
	snap := fourSlotSnapshot(rowWithSlots("ESD", "Diode-X", 4))

	_, err := PlanMerge(snap, schema, usdSubmission())
	var capacityErr *CapacityError
	require.ErrorAs(t, err, &capacityErr)
}

func TestPlanMergeCreatesRowOnNoMatch(t *testing.T) {
	schema := fourSlotSchema()
	snap := fourSlotSnapshot(rowWithSlots("CMF", "Filter-9", 1))

	sub := usdSubmission()
	sub.ProductName = "Varistor-7"

	plan, err := PlanMerge(snap, schema, sub)
	require.NoError(t, err)

	assert.Equal(t, PlanAppend, plan.Kind)
	assert.Equal(t, 1, plan.SlotIndex)
	require.Len(t, plan.RowValues, len(fourSlotHeaders))

	assert.Equal(t, "ESD", plan.RowValues[0])
	assert.Equal(t, "Varistor-7", plan.RowValues[1])
	assert.Equal(t, "Avnet", plan.RowValues[2])
	assert.Equal(t, "$1.2346", plan.RowValues[3])
	assert.Equal(t, "2024-06-15", plan.RowValues[4])
	assert.Equal(t, "Foxconn", plan.RowValues[5])

	// Only slot 1 is populated; every other slot cell is an empty string.
	for i := 6; i < len(plan.RowValues); i++ {
		assert.Empty(t, plan.RowValues[i], "cell %d (%s) should be empty", i, fourSlotHeaders[i])
	}
}

func TestPlanMergeEmptyTableUsesDefaultHeaders(t *testing.T) {
	schema := fourSlotSchema()
	snap := Snapshot{}

	plan, err := PlanMerge(snap, schema, usdSubmission())
	require.NoError(t, err)

	assert.Equal(t, PlanAppend, plan.Kind)
	require.Len(t, plan.RowValues, len(schema.DefaultHeaders))
	assert.Equal(t, "ESD", plan.RowValues[0])
	assert.Equal(t, "Diode-X", plan.RowValues[1])
	assert.Equal(t, "$1.2346", plan.RowValues[3])
}

func TestParseQuoteDateLayouts(t *testing.T) {
	for _, value := range []string{"2024.06.15", "2024-06-15", "6/15/2024"} {
		parsed, err := ParseQuoteDate(value)
		require.NoError(t, err, value)
		assert.Equal(t, 2024, parsed.Year())
		assert.Equal(t, 15, parsed.Day())
	}

	_, err := ParseQuoteDate("15 June 2024")
	assert.Error(t, err)
}
