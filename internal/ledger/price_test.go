package ledger

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magnias/quotedesk/internal/domain/models"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		currency models.Currency
		decimals int
		want     string
	}{
		{"usd rounds half up", 1.23456, models.CurrencyUSD, 4, "$1.2346"},
		{"rmb symbol", 8.5, models.CurrencyRMB, 4, "¥8.5000"},
		{"leading digit below one", 0.175, models.CurrencyUSD, 4, "$0.1750"},
		{"five decimal generation", 0.12345, models.CurrencyUSD, 5, "$0.12345"},
		{"zero", 0, models.CurrencyUSD, 4, "$0.0000"},
		{"no thousands separators", 12345.6789, models.CurrencyUSD, 4, "$12345.6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.value, tt.currency, tt.decimals))
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		display string
		want    float64
		wantErr bool
	}{
		{"dollar prefix", "$1.2346", 1.2346, false},
		{"yuan prefix", "¥8.5000", 8.5, false},
		{"thousands separators stripped", "$1,234.50", 1234.5, false},
		{"bare number", "0.175", 0.175, false},
		{"whitespace tolerated", " $2.00 ", 2.0, false},
		{"empty", "", 0, true},
		{"symbol only", "$", 0, true},
		{"not a number", "$n/a", 0, true},
		{"double decimal point", "$1.2.3", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.display)
			if tt.wantErr {
				require.Error(t, err)
				var formatErr *FormatError
				assert.ErrorAs(t, err, &formatErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceRoundTrip(t *testing.T) {
	values := []float64{0, 0.001, 0.175, 1.23456, 2.5, 99.99999, 1234.56789, 100000}
	currencies := []models.Currency{models.CurrencyUSD, models.CurrencyRMB}

	for _, decimals := range []int{4, 5} {
		for _, currency := range currencies {
			for _, value := range values {
				name := fmt.Sprintf("%s_%d_%v", currency, decimals, value)
				t.Run(name, func(t *testing.T) {
					parsed, err := ParsePrice(FormatPrice(value, currency, decimals))
					require.NoError(t, err)

					want, _ := decimal.NewFromFloat(value).Round(int32(decimals)).Float64()
					assert.Equal(t, want, parsed)
				})
			}
		}
	}
}
