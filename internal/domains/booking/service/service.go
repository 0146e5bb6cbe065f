package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rri/config"
	"rri/infras/otel"
	"rri/internal/domains/booking/model"
	"rri/internal/domains/booking/model/dto"
	"rri/internal/domains/booking/repository"
	roomRepo "rri/internal/domains/room/repository"
	"rri/shared"
	"rri/shared/cache"
	"rri/shared/constant"
	"rri/shared/failure"
	"rri/shared/timezone"
)

const (
	cacheBookingsOverview = "bookings:overview"
	cacheBookingsRecent   = "bookings:recent"
	cachePrefixBookings   = "bookings"
	cachePrefixStats      = "stats"

	recentBookingsLimit = 8
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	Overview(ctx context.Context) (dto.BookingsOverviewResponse, error)
	Recent(ctx context.Context) ([]dto.RecentBookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create validates the requested stay and writes the booking. The checks run
// cheapest-first: room existence, then date ordering, then the conflict-gated
// insert inside the repository transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomExists, err := s.roomRepo.Exist(ctx, req.RoomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return failure.NotFound("Room not found") // nolint:wrapcheck
	}

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !booking.Stay().IsValid() {
		return failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefixBookings)
		shared.InvalidateCaches(c, s.cache, cachePrefixStats)
	}()

	return nil
}

// Overview assembles the bookings page payload: every booking with its room,
// the room selector, and booking counts.
func (s *serviceImpl) Overview(ctx context.Context) (res dto.BookingsOverviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheBookingsOverview, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheBookingsOverview).Msg("cache hit for bookings overview")

		return res, nil
	}

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.Bookings = make([]dto.BookingResponse, 0, len(bookings))
	plain := make([]model.Booking, 0, len(bookings))

	for _, b := range bookings {
		var item dto.BookingResponse
		item.FromModel(b)

		res.Bookings = append(res.Bookings, item)
		plain = append(plain, b.Booking)
	}

	res.Rooms = make([]dto.RoomOption, 0, len(rooms))
	for _, r := range rooms {
		res.Rooms = append(res.Rooms, dto.RoomOption{
			ID:     r.ID,
			Number: r.Number,
			Type:   r.Type,
		})
	}

	res.Stats = model.AggregateStats(plain, timezone.Today())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheBookingsOverview, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings overview to cache")
		}
	}()

	return res, nil
}

// Recent returns the latest bookings by creation time for the dashboard feed.
func (s *serviceImpl) Recent(ctx context.Context) (res []dto.RecentBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recent")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheBookingsRecent, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheBookingsRecent).Msg("cache hit for recent bookings")

		return res, nil
	}

	bookings, err := s.repo.Recent(ctx, recentBookingsLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res = make([]dto.RecentBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		var item dto.RecentBookingResponse
		item.FromModel(b)

		res = append(res, item)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheBookingsRecent, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save recent bookings to cache")
		}
	}()

	return res, nil
}
