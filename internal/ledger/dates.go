package ledger

import (
	"fmt"
	"time"
)

// quoteDateLayouts lists the textual date formats the ledgers have
// accumulated over the years. Dates are stored as free text, so readers must
// accept all of them.
var quoteDateLayouts = []string{
	"2006.01.02",
	"2006-01-02",
	"1/2/2006",
}

// ParseQuoteDate interprets a stored quote date, trying each accepted layout
// in order.
func ParseQuoteDate(value string) (time.Time, error) {
	for _, layout := range quoteDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized quote date %q", value)
}
