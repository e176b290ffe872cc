package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"inn/config"
	"inn/infras/otel"
	"inn/infras/s3"
	bookingModel "inn/internal/domains/booking/model"
	bookingRepo "inn/internal/domains/booking/repository"
	"inn/internal/domains/room/model"
	"inn/internal/domains/room/model/dto"
	"inn/internal/domains/room/repository"
	"inn/shared"
	"inn/shared/cache"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	"inn/shared/failure"
	"inn/shared/timezone"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"

	photoDirectory = "rooms"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, amenities []string) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	SearchByAmenities(ctx context.Context, amenities []string, roomType string) (dto.AmenitySearchResponse, error)
	UploadPhoto(ctx context.Context, id string, req dto.UploadPhotoRequest) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo        repository.Room
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(repo repository.Room, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	taken, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    req.RoomNumber,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number uniqueness")

		return fmt.Errorf("failed to check room number uniqueness: %w", err)
	}

	if taken {
		return failure.Conflict("Room number already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("Room number already exists") // nolint:wrapcheck
		}

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup, amenities []string) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)
	if len(amenities) > 0 {
		cacheKey = shared.BuildCacheKey(cacheKey, strings.Join(amenities, ","))
	}

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	var (
		models []model.Room
		total  int
	)

	// The amenity predicate runs in memory because the column holds either
	// a list or a name-to-bool map. Pagination must then run in memory too:
	// a SQL page would drop matching rooms past the page boundary.
	if len(amenities) > 0 {
		models, err = s.repo.GetAll(ctx, gDto.QueryParams{SortBy: req.SortBy, SortDir: req.SortDir}, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get rooms")

			return res, fmt.Errorf("failed to get rooms: %w", err)
		}

		models = matchAmenities(models, amenities)
		total = len(models)
		models = pageOf(models, req)
	} else {
		total, err = s.Count(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count rooms")

			return res, fmt.Errorf("failed to count rooms: %w", err)
		}

		models, err = s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get rooms")

			return res, fmt.Errorf("failed to get rooms: %w", err)
		}
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to check room existence: %w", err)
	}

	if !exist {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			return failure.Conflict("Room number already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		log.Error().Msg("room not found")

		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bucketName := s.cfg.External.S3.BucketName
		for _, photoURL := range room.Photos {
			objectName := s.s3.GetObjectNameFromURL(bucketName, photoURL)
			if objectName != constant.Empty {
				_ = s.s3.DeleteFile(c, bucketName, photoDirectory, objectName)
			}
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()

	return nil
}

// CheckAvailability returns rooms free for the requested stay. A room
// qualifies when its administrative status is exactly available and no
// confirmed booking overlaps the half-open interval [checkIn, checkOut).
func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    constant.RoomStatusMaintenance,
				Table:    model.TableName,
			},
		},
	}

	if req.RoomType != constant.Empty {
		roomFilter.Filters = append(roomFilter.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    req.RoomType,
			Table:    model.TableName,
		})
	}

	if req.MaxGuests != nil {
		roomFilter.Filters = append(roomFilter.Filters, gDto.Filter{
			Field:    model.FieldMaxGuests,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    *req.MaxGuests,
			Table:    model.TableName,
		})
	}

	rooms, err := s.repo.GetAll(ctx, gDto.QueryParams{}, roomFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get candidate rooms")

		return res, fmt.Errorf("failed to get candidate rooms: %w", err)
	}

	// Strict inequalities on both sides keep back-to-back stays
	// (checkout day == checkin day) from counting as a conflict.
	bookingFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.BookingStatusConfirmed,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldCheckOutDate,
				Operator: gDto.FilterOperatorGreater,
				Value:    req.CheckInDate,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldCheckInDate,
				Operator: gDto.FilterOperatorLess,
				Value:    req.CheckOutDate,
				Table:    bookingModel.TableName,
			},
		},
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, bookingFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get overlapping bookings")

		return res, fmt.Errorf("failed to get overlapping bookings: %w", err)
	}

	bookedRoomIDs := make(map[string]struct{}, len(bookings))
	for _, booking := range bookings {
		bookedRoomIDs[booking.RoomID] = struct{}{}
	}

	available := make([]model.Room, 0, len(rooms))

	for _, room := range rooms {
		if _, booked := bookedRoomIDs[room.ID]; booked {
			continue
		}

		// Administrative status is an independent veto: a room flagged
		// booked stays excluded even without an overlapping booking.
		if room.Status != constant.RoomStatusAvailable {
			continue
		}

		available = append(available, room)
	}

	res.FromModels(available)

	return res, nil
}

func (s *serviceImpl) SearchByAmenities(ctx context.Context, amenities []string, roomType string) (res dto.AmenitySearchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchByAmenities")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	if roomType != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	rooms, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(matchAmenities(rooms, amenities), amenities)

	return res, nil
}

func (s *serviceImpl) UploadPhoto(ctx context.Context, id string, req dto.UploadPhotoRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	parts := strings.Split(req.Photo.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err := s.s3.UploadFile(ctx, bucketName, photoDirectory, req.PhotoFile, req.Photo, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload photo to S3")

		return res, fmt.Errorf("failed to upload photo: %w", err)
	}

	room.Photos = append(room.Photos, url)

	updatedFields := map[string]any{model.FieldPhotos: room.Photos}
	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = user

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		_ = s.s3.DeleteFile(ctx, bucketName, photoDirectory, filename)

		log.Error().Err(err).Msg("failed to update room photos")

		return res, fmt.Errorf("failed to update room photos: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()

	res.FromModel(room)

	return res, nil
}

// pageOf slices the same page the repository would have selected with
// LIMIT/OFFSET: page+limit picks an offset window, limit alone caps the list.
func pageOf(rooms []model.Room, req gDto.QueryParams) []model.Room {
	if req.Page > 0 && req.Limit > 0 {
		start := (req.Page - 1) * req.Limit
		if start >= len(rooms) {
			return nil
		}

		return rooms[start:min(start+req.Limit, len(rooms))]
	}

	if req.Limit > 0 && req.Limit < len(rooms) {
		return rooms[:req.Limit]
	}

	return rooms
}

func matchAmenities(rooms []model.Room, requested []string) []model.Room {
	matched := make([]model.Room, 0, len(rooms))

	for _, room := range rooms {
		if room.Amenities.HasAll(requested) {
			matched = append(matched, room)
		}
	}

	return matched
}
