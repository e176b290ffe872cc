package model

import "inn/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldRoomType      = "room_type"
	FieldPricePerNight = "price_per_night"
	FieldMaxGuests     = "max_guests"
	FieldDescription   = "description"
	FieldStatus        = "status"
	FieldAmenities     = "amenities"
	FieldPhotos        = "photos"
)

type Room struct {
	ID            string    `db:"id"`
	RoomNumber    string    `db:"room_number"`
	RoomType      string    `db:"room_type"`
	PricePerNight float64   `db:"price_per_night"`
	MaxGuests     int       `db:"max_guests"`
	Description   string    `db:"description"`
	Status        string    `db:"status"`
	Amenities     Amenities `db:"amenities"`
	Photos        PhotoList `db:"photos"`
	model.Metadata
}
