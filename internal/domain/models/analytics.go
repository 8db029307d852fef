package models

// MonthlyActivity aggregates quoting activity for one calendar month.
type MonthlyActivity struct {
	Month        string  `json:"month"` // YYYY-MM
	Quotes       int     `json:"quotes"`
	AveragePrice float64 `json:"average_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
}

// ActivityReport is the chart-feeding summary for one currency ledger.
type ActivityReport struct {
	Currency       Currency          `json:"currency"`
	TotalQuotes    int               `json:"total_quotes"`
	TotalProducts  int               `json:"total_products"`
	SkippedPrices  int               `json:"skipped_prices"`
	Months         []MonthlyActivity `json:"months"`
	ConvertedTotal float64           `json:"converted_total,omitempty"`
	ConvertedInto  Currency          `json:"converted_into,omitempty"`
}
