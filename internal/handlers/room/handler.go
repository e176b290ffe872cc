package room

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"inn/infras/otel"
	"inn/internal/domains/room/model"
	"inn/internal/domains/room/model/dto"
	"inn/internal/domains/room/service"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/validator"
	"inn/transport/http/response"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Get("/amenities", handler.SearchByAmenities)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Patch("/{id}", handler.UpdateRoom)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
		routerGroup.Post("/{id}/photos", handler.UploadPhoto)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a new room with the provided details.
// @Tags Room
// @Accept json
// @Produce json
// @Param room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	var req dto.CreateRoomRequest
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Room created successfully")
}

// GetRooms retrieves rooms based on query parameters.
// @Summary Get all rooms
// @Description Retrieve rooms with optional filtering and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param roomType query string false "Filter by room type"
// @Param minPrice query number false "Minimum price per night"
// @Param maxPrice query number false "Maximum price per night"
// @Param maxGuests query integer false "Minimum guest capacity"
// @Param availabilityStatus query string false "Filter by room status"
// @Param amenities query string false "Comma-separated amenities the room must have"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if roomType := query.Get(constant.RequestParamRoomType); roomType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if minPrice := shared.ConvertStringToFloat(query.Get(constant.RequestParamMinPrice)); minPrice != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "min_price",
			Field:    model.FieldPricePerNight,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    *minPrice,
			Table:    model.TableName,
		})
	}

	if maxPrice := shared.ConvertStringToFloat(query.Get(constant.RequestParamMaxPrice)); maxPrice != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "max_price",
			Field:    model.FieldPricePerNight,
			Operator: gDto.FilterOperatorLessEq,
			Value:    *maxPrice,
			Table:    model.TableName,
		})
	}

	if guestsStr := query.Get(constant.RequestParamMaxGuests); guestsStr != constant.Empty {
		// An unparseable value disables the filter, same as minPrice/maxPrice.
		if guests, err := shared.ConvertStringToInt(guestsStr); err == nil {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    model.FieldMaxGuests,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    guests,
				Table:    model.TableName,
			})
		}
	}

	if status := query.Get(constant.RequestParamAvailabilityStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	amenities := splitAmenities(query.Get(constant.RequestParamAmenities))

	rooms, err := handler.service.GetAll(ctx, queryParams, filterGroup, amenities)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// CheckAvailability lists rooms free for a requested stay.
// @Summary Check room availability
// @Description List rooms with no conflicting confirmed booking for the stay. Dates follow YYYY-MM-DD and the range is half-open, so a stay may start the day another ends.
// @Tags Room
// @Accept json
// @Produce json
// @Param checkInDate query string true "Stay start date (YYYY-MM-DD)"
// @Param checkOutDate query string true "Stay end date (YYYY-MM-DD)"
// @Param roomType query string false "Filter by room type"
// @Param maxGuests query integer false "Minimum guest capacity"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/availability [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	query := r.URL.Query()

	checkIn := query.Get(constant.RequestParamCheckInDate)
	checkOut := query.Get(constant.RequestParamCheckOutDate)

	if checkIn == constant.Empty || checkOut == constant.Empty {
		response.WithError(w, failure.BadRequestFromString("Both checkInDate and checkOutDate are required"))

		return
	}

	in, err := time.Parse(constant.StayDateFormat, checkIn)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("checkInDate must follow the YYYY-MM-DD format"))

		return
	}

	out, err := time.Parse(constant.StayDateFormat, checkOut)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("checkOutDate must follow the YYYY-MM-DD format"))

		return
	}

	if !out.After(in) {
		response.WithError(w, failure.BadRequestFromString("checkOutDate must be after checkInDate"))

		return
	}

	req := dto.AvailabilityRequest{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		RoomType:     query.Get(constant.RequestParamRoomType),
	}

	if guestsStr := query.Get(constant.RequestParamMaxGuests); guestsStr != constant.Empty {
		guests, err := shared.ConvertStringToInt(guestsStr)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("maxGuests must be a number"))

			return
		}

		req.MaxGuests = &guests
	}

	availability, err := handler.service.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// SearchByAmenities lists rooms offering every requested amenity.
// @Summary Search rooms by amenities
// @Description List rooms that offer all of the requested amenities.
// @Tags Room
// @Accept json
// @Produce json
// @Param amenities query string true "Comma-separated amenity names"
// @Param roomType query string false "Filter by room type"
// @Success 200 {object} response.Data[dto.AmenitySearchResponse] "Matching rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/amenities [get]
func (handler *Handler) SearchByAmenities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchByAmenities")
	defer scope.End()

	query := r.URL.Query()

	amenities := splitAmenities(query.Get(constant.RequestParamAmenities))
	if len(amenities) == 0 {
		response.WithError(w, failure.BadRequestFromString("amenities parameter is required"))

		return
	}

	result, err := handler.service.SearchByAmenities(ctx, amenities, query.Get(constant.RequestParamRoomType))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search rooms by amenities")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Amenity search completed successfully")

	response.WithJSON(w, http.StatusOK, result)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room retrieved successfully")

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Update the details of an existing room.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param room body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Description Delete a room using its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}

// UploadPhoto attaches a photo to a room's gallery.
// @Summary Upload a room photo
// @Description Upload a photo for a room and append it to the room's gallery.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param photo formData file true "Photo file (png or jpeg, max 5 MB)"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room with the new photo"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id}/photos [post]
// @Security BearerAuth
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UploadPhotoRequest{}

	file, fileHeader, err := r.FormFile("photo")
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.UploadPhoto(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload room photo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room photo uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, room)
}

func splitAmenities(raw string) []string {
	if raw == constant.Empty {
		return nil
	}

	parts := strings.Split(raw, ",")
	amenities := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != constant.Empty {
			amenities = append(amenities, trimmed)
		}
	}

	return amenities
}
