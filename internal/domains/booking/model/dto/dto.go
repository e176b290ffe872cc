package dto

import (
	"time"

	"github.com/google/uuid"

	"inn/internal/domains/booking/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

type CreateBookingRequest struct {
	UserID       string `json:"user_id"        validate:"required"`
	RoomID       string `json:"room_id"        validate:"required"`
	CheckInDate  string `json:"check_in_date"  validate:"required"`
	CheckOutDate string `json:"check_out_date" validate:"required"`
	Status       string `json:"status"         validate:"omitempty,oneof=pending confirmed cancelled"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.StayDateFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.StayDateFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	status := constant.BookingStatusPending
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:           uuid.NewString(),
		UserID:       c.UserID,
		RoomID:       c.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	CheckInDate  string `json:"check_in_date"  validate:"omitempty"`
	CheckOutDate string `json:"check_out_date" validate:"omitempty"`
	Status       string `db:"status"           json:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
}

type BookingResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	RoomID       string `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Status       string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.RoomID = model.RoomID
	r.CheckInDate = model.CheckInDate.Format(constant.StayDateFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.StayDateFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
