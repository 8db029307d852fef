package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateCaseInsensitiveSubstring(t *testing.T) {
	snap := fourSlotSnapshot(
		rowWithSlots("CMF", "Filter-9", 1),
		rowWithSlots("ESD", "Diode-X", 1),
	)

	match, err := Locate(snap, "esd", "diode")
	require.NoError(t, err)
	assert.Equal(t, 1, match.RowIndex)
	assert.Equal(t, 1, match.Candidates)
}

func TestLocateNoMatch(t *testing.T) {
	snap := fourSlotSnapshot(rowWithSlots("ESD", "Diode-X", 1))

	_, err := Locate(snap, "ESD", "Varistor")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestLocateEmptyTable(t *testing.T) {
	snap := Snapshot{Headers: fourSlotHeaders}

	_, err := Locate(snap, "ESD", "Diode-X")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestLocateFirstOfSeveralWins(t *testing.T) {
	// A generic search term can match several rows; the first row in store
	// order is authoritative and the ambiguity is reported via Candidates.
	snap := fourSlotSnapshot(
		rowWithSlots("ESD", "Diode-X1", 1),
		rowWithSlots("ESD", "Diode-X2", 1),
		rowWithSlots("ESD", "Diode-X10", 1),
	)

	match, err := Locate(snap, "ESD", "Diode-X1")
	require.NoError(t, err)
	assert.Equal(t, 0, match.RowIndex)
	assert.Equal(t, 2, match.Candidates) // Diode-X1 and Diode-X10
}

func TestLocateMissingSearchColumns(t *testing.T) {
	snap := Snapshot{Headers: []string{"Wrong", "Columns"}, Rows: [][]string{{"a", "b"}}}

	_, err := Locate(snap, "ESD", "Diode-X")
	var columnErr *ColumnError
	require.ErrorAs(t, err, &columnErr)
	assert.Equal(t, ColumnCategory, columnErr.Column)
}
