package models

// ProductRow is one product record from a category table, keyed by header name.
// Catalog tables differ in shape per category, so the row stays dynamic here;
// ledger rows, which the merge logic reasons about, get the typed QuoteLedgerRow.
type ProductRow map[string]string

// NewProductRequest carries a product record to append to a category table.
type NewProductRequest struct {
	Category string            `json:"category" binding:"required"`
	Fields   map[string]string `json:"fields" binding:"required"`
}

// CategoryListing is the payload returned when browsing a category.
type CategoryListing struct {
	Category    string       `json:"category"`
	Headers     []string     `json:"headers"`
	Rows        []ProductRow `json:"rows"`
	RefreshedAt string       `json:"refreshed_at"`
}
