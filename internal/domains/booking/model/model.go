package model

import (
	"time"

	"inn/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatus       = "status"
)

type Booking struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	RoomID       string    `db:"room_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	Status       string    `db:"status"`
	model.Metadata
}
