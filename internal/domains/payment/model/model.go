package model

import (
	"time"

	"inn/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldMethod        = "method"
	FieldStatus        = "status"
	FieldTransactionID = "transaction_id"
	FieldProcessedAt   = "processed_at"
)

type Payment struct {
	ID            string     `db:"id"`
	BookingID     string     `db:"booking_id"`
	Amount        float64    `db:"amount"`
	Method        string     `db:"method"`
	Status        string     `db:"status"`
	TransactionID *string    `db:"transaction_id"`
	ProcessedAt   *time.Time `db:"processed_at"`
	model.Metadata
}
