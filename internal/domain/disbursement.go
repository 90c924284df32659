package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Messages produced by the payment processor
const (
	MsgPaymentProcessed = "Payment processed successfully."
	MsgErrorPrefix      = "Error processing payment: "
)

// DisbursementResult is the terminal outcome of a single ProcessPayment call
type DisbursementResult struct {
	ID      uuid.UUID
	Success bool
	Message string
	// Total is the disbursed amount; only meaningful when Success is true
	Total decimal.Decimal
	// Kind is KindNone on success, otherwise the failure class
	Kind ErrorKind
}
