package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"inn/internal/domains/room/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber    string          `json:"room_number"     validate:"required,max=20"`
	RoomType      string          `json:"room_type"       validate:"required,oneof=single double suite"`
	PricePerNight float64         `json:"price_per_night" validate:"required,min=0"`
	MaxGuests     int             `json:"max_guests"      validate:"required,min=1"`
	Description   string          `json:"description"     validate:"omitempty,max=500"`
	Status        string          `json:"status"          validate:"omitempty,oneof=available booked maintenance"`
	Amenities     model.Amenities `json:"amenities"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == "" {
		status = constant.RoomStatusAvailable
	}

	return model.Room{
		ID:            uuid.NewString(),
		RoomNumber:    c.RoomNumber,
		RoomType:      c.RoomType,
		PricePerNight: c.PricePerNight,
		MaxGuests:     c.MaxGuests,
		Description:   c.Description,
		Status:        status,
		Amenities:     c.Amenities,
		Photos:        model.PhotoList{},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber    string           `db:"room_number"     json:"room_number"     validate:"omitempty,max=20"`
	RoomType      string           `db:"room_type"       json:"room_type"       validate:"omitempty,oneof=single double suite"`
	PricePerNight *float64         `db:"price_per_night" json:"price_per_night" validate:"omitempty,min=0"`
	MaxGuests     *int             `db:"max_guests"      json:"max_guests"      validate:"omitempty,min=1"`
	Description   string           `db:"description"     json:"description"     validate:"omitempty,max=500"`
	Status        string           `db:"status"          json:"status"          validate:"omitempty,oneof=available booked maintenance"`
	Amenities     *model.Amenities `db:"amenities"       json:"amenities"`
}

type UploadPhotoRequest struct {
	Photo     *multipart.FileHeader `json:"photo" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	PhotoFile multipart.File        `json:"-"`
}

type RoomResponse struct {
	ID            string          `json:"id"`
	RoomNumber    string          `json:"room_number"`
	RoomType      string          `json:"room_type"`
	PricePerNight float64         `json:"price_per_night"`
	MaxGuests     int             `json:"max_guests"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	Amenities     model.Amenities `json:"amenities"`
	Photos        model.PhotoList `json:"photos"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.PricePerNight = model.PricePerNight
	r.MaxGuests = model.MaxGuests
	r.Description = model.Description
	r.Status = model.Status
	r.Amenities = model.Amenities
	r.Photos = model.Photos
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// AvailabilityRequest carries the requested stay plus optional room filters.
// Dates are already parsed and validated by the handler.
type AvailabilityRequest struct {
	CheckInDate  string
	CheckOutDate string
	RoomType     string
	MaxGuests    *int
}

type AvailabilityResponse struct {
	AvailableRooms []RoomResponse `json:"availableRooms"`
	TotalAvailable int            `json:"totalAvailable"`
}

func (r *AvailabilityResponse) FromModels(models []model.Room) {
	r.TotalAvailable = len(models)

	r.AvailableRooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.AvailableRooms[i].FromModel(mod)
	}
}

type AmenitySearchResponse struct {
	Rooms              []RoomResponse `json:"rooms"`
	TotalRooms         int            `json:"totalRooms"`
	RequestedAmenities []string       `json:"requestedAmenities"`
}

func (r *AmenitySearchResponse) FromModels(models []model.Room, requested []string) {
	r.TotalRooms = len(models)
	r.RequestedAmenities = requested

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
