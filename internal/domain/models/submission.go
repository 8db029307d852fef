package models

import "time"

// SubmissionOutcome labels how a quote submission was resolved.
type SubmissionOutcome string

const (
	OutcomeSlotFilled SubmissionOutcome = "slot_filled"
	OutcomeRowCreated SubmissionOutcome = "row_created"
	OutcomeRejected   SubmissionOutcome = "rejected"
)

// SubmissionRecord is the audit entry persisted for every quote submission.
type SubmissionRecord struct {
	ID             string            `bson:"_id" json:"id"`
	User           string            `bson:"user" json:"user"`
	Currency       Currency          `bson:"currency" json:"currency"`
	Category       string            `bson:"category" json:"category"`
	ProductName    string            `bson:"product_name" json:"product_name"`
	SlotIndex      int               `bson:"slot_index" json:"slot_index"`
	FormattedPrice string            `bson:"formatted_price" json:"formatted_price"`
	EndCustomer    string            `bson:"end_customer" json:"end_customer"`
	Distributor    string            `bson:"distributor,omitempty" json:"distributor,omitempty"`
	QuoteDate      string            `bson:"quote_date" json:"quote_date"`
	Outcome        SubmissionOutcome `bson:"outcome" json:"outcome"`
	FailureReason  string            `bson:"failure_reason,omitempty" json:"failure_reason,omitempty"`
	CreatedAt      time.Time         `bson:"created_at" json:"created_at"`
}
