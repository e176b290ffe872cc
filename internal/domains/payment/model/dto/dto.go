package dto

import (
	"time"

	"github.com/google/uuid"

	"inn/internal/domains/payment/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

type CreatePaymentRequest struct {
	BookingID string  `json:"booking_id" validate:"required"`
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
	Method    string  `json:"method"     validate:"required,oneof=credit_card debit_card cash bank_transfer"`
}

func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	return model.Payment{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		Amount:    c.Amount,
		Method:    c.Method,
		Status:    constant.PaymentStatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentRequest struct {
	Amount *float64 `db:"amount" json:"amount" validate:"omitempty,gt=0"`
	Method string   `db:"method" json:"method" validate:"omitempty,oneof=credit_card debit_card cash bank_transfer"`
	Status string   `db:"status" json:"status" validate:"omitempty,oneof=pending completed failed"`
}

type PaymentResponse struct {
	ID            string     `json:"id"`
	BookingID     string     `json:"booking_id"`
	Amount        float64    `json:"amount"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	TransactionID *string    `json:"transaction_id,omitempty"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Method = model.Method
	r.Status = model.Status
	r.TransactionID = model.TransactionID
	r.ProcessedAt = model.ProcessedAt
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
