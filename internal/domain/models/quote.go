package models

// Currency enumerates the ledgers the dashboard maintains.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyRMB Currency = "RMB"
)

// Symbol returns the display prefix used when storing prices for this currency.
func (c Currency) Symbol() string {
	if c == CurrencyRMB {
		return "¥"
	}
	return "$"
}

// Valid reports whether the currency is one the dashboard supports.
func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyRMB
}

// QuoteSlot is one historical quote occupying a numbered slot of a ledger row.
// A slot is occupied when price, date and customer are all non-empty.
type QuoteSlot struct {
	Index       int    `json:"index"`
	Price       string `json:"price"`
	QuoteDate   string `json:"quote_date"`
	EndCustomer string `json:"end_customer"`
	Distributor string `json:"distributor,omitempty"`
}

// Occupied reports whether every mandatory field of the slot holds a value.
func (s QuoteSlot) Occupied() bool {
	return s.Price != "" && s.QuoteDate != "" && s.EndCustomer != ""
}

// QuoteLedgerRow is one record per (category, product name) pair in a
// currency ledger, holding a bounded history of quotes.
type QuoteLedgerRow struct {
	Category    string      `json:"category"`
	ProductName string      `json:"product_name"`
	Distributor string      `json:"distributor,omitempty"` // row-level, legacy layout
	Slots       []QuoteSlot `json:"slots"`
}

// QuoteSubmission carries one user-entered quote bound for a ledger.
type QuoteSubmission struct {
	Currency    Currency `json:"currency" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	ProductName string   `json:"product_name" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	EndCustomer string   `json:"end_customer" binding:"required"`
	Distributor string   `json:"distributor"`
	QuoteDate   string   `json:"quote_date" binding:"required"`
}

// QuoteResult summarizes the outcome of merging a submission.
type QuoteResult struct {
	SubmissionID   string `json:"submission_id"`
	Created        bool   `json:"created"`
	SlotIndex      int    `json:"slot_index"`
	FormattedPrice string `json:"formatted_price"`
	Candidates     int    `json:"candidates"`
	Message        string `json:"message"`
}
