package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/magnias/quotedesk/internal/domain/models"
)

// FormatPrice renders a raw price as the canonical display string stored in
// the ledger: currency symbol, half-up rounding to the configured precision,
// no thousands separators, always a leading digit before the point
// ("$0.1750", never "$.175").
func FormatPrice(value float64, currency models.Currency, decimals int) string {
	d := decimal.NewFromFloat(value).Round(int32(decimals))
	return currency.Symbol() + d.StringFixed(int32(decimals))
}

// ParsePrice converts a stored display string back to a number for
// aggregation, stripping currency symbols and thousands separators first.
// Returns a FormatError when the remainder is not a decimal number; callers
// treat that as "skip this value", not a fatal condition.
func ParsePrice(display string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", "¥", "", ",", "").Replace(display)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, &FormatError{Value: display}
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, &FormatError{Value: display}
	}

	f, _ := d.Float64()
	return f, nil
}
