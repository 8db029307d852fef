package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateFirstOpenSlot(t *testing.T) {
	schema := fourSlotSchema()

	for occupied := 0; occupied < schema.SlotCount; occupied++ {
		snap := fourSlotSnapshot(rowWithSlots("ESD", "Diode-X", occupied))

		slot, err := Allocate(snap, 0, schema)
		require.NoError(t, err)
		assert.Equal(t, occupied+1, slot, "occupied slots form a contiguous prefix; the next index follows it")
	}
}

func TestAllocateCapacityExhausted(t *testing.T) {
	schema := fourSlotSchema()
	snap := fourSlotSnapshot(rowWithSlots("ESD", "Diode-X", 4))

	_, err := Allocate(snap, 0, schema)
	var capacityErr *CapacityError
	require.ErrorAs(t, err, &capacityErr)
	assert.Equal(t, "Diode-X", capacityErr.ProductName)
	assert.Equal(t, 4, capacityErr.SlotCount)
}

func TestAllocateMissingPriceColumn(t *testing.T) {
	schema := fourSlotSchema()
	snap := Snapshot{Headers: []string{"Products", "Product Name"}, Rows: [][]string{{"ESD", "Diode-X"}}}

	_, err := Allocate(snap, 0, schema)
	var columnErr *ColumnError
	require.ErrorAs(t, err, &columnErr)
	assert.Equal(t, "DC-1", columnErr.Column)
}

func TestResolveCustomerColumn(t *testing.T) {
	schema := fourSlotSchema()

	t.Run("expected name present", func(t *testing.T) {
		snap := Snapshot{Headers: fourSlotHeaders}

		idx, name, err := ResolveCustomerColumn(snap, schema, 3)
		require.NoError(t, err)
		assert.Equal(t, "End Customers 3", name)
		assert.Equal(t, "End Customers 3", snap.Headers[idx])
	})

	t.Run("falls back to singular for plural-ruled index", func(t *testing.T) {
		// A hand-edited table where slot 3 kept the singular name.
		headers := make([]string, len(fourSlotHeaders))
		copy(headers, fourSlotHeaders)
		headers[11] = "End Customer 3"
		snap := Snapshot{Headers: headers}

		idx, name, err := ResolveCustomerColumn(snap, schema, 3)
		require.NoError(t, err)
		assert.Equal(t, "End Customer 3", name)
		assert.Equal(t, 11, idx)
	})

	t.Run("falls back to plural for singular-ruled index", func(t *testing.T) {
		headers := make([]string, len(fourSlotHeaders))
		copy(headers, fourSlotHeaders)
		headers[5] = "End Customers 1"
		snap := Snapshot{Headers: headers}

		_, name, err := ResolveCustomerColumn(snap, schema, 1)
		require.NoError(t, err)
		assert.Equal(t, "End Customers 1", name)
	})

	t.Run("neither variant present", func(t *testing.T) {
		snap := Snapshot{Headers: []string{"Products", "Product Name"}}

		_, _, err := ResolveCustomerColumn(snap, schema, 3)
		var columnErr *ColumnError
		require.ErrorAs(t, err, &columnErr)
		assert.Equal(t, "End Customers 3", columnErr.Column)
		assert.Equal(t, "End Customer 3", columnErr.Alternate)
	})
}

func TestDecodeRow(t *testing.T) {
	schema := fourSlotSchema()
	snap := fourSlotSnapshot(rowWithSlots("ESD", "Diode-X", 2))

	row := DecodeRow(snap, 0, schema)
	assert.Equal(t, "ESD", row.Category)
	assert.Equal(t, "Diode-X", row.ProductName)
	assert.Equal(t, "Arrow", row.Distributor)
	require.Len(t, row.Slots, 4)

	assert.True(t, row.Slots[0].Occupied())
	assert.True(t, row.Slots[1].Occupied())
	assert.False(t, row.Slots[2].Occupied())
	assert.False(t, row.Slots[3].Occupied())

	assert.Equal(t, "$1.0000", row.Slots[0].Price)
	assert.Equal(t, "2024-03-01", row.Slots[0].QuoteDate)
	assert.Equal(t, "Acme", row.Slots[0].EndCustomer)
}

func TestDecodeRowReadsMisnamedCustomerColumn(t *testing.T) {
	schema := fourSlotSchema()
	headers := make([]string, len(fourSlotHeaders))
	copy(headers, fourSlotHeaders)
	headers[11] = "End Customer 3"

	snap := Snapshot{Headers: headers, Rows: [][]string{rowWithSlots("ESD", "Diode-X", 3)}}

	row := DecodeRow(snap, 0, schema)
	assert.Equal(t, "Acme", row.Slots[2].EndCustomer)
	assert.True(t, row.Slots[2].Occupied())
}
