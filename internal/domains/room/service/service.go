package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rri/config"
	"rri/infras/otel"
	"rri/internal/domains/room/model"
	"rri/internal/domains/room/model/dto"
	"rri/internal/domains/room/repository"
	"rri/shared"
	"rri/shared/cache"
	"rri/shared/constant"
)

const (
	cacheRoomsOverview = "rooms:overview"

	cachePrefixRooms    = "rooms"
	cachePrefixBookings = "bookings"
	cachePrefixStats    = "stats"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	Overview(ctx context.Context) (dto.RoomsOverviewResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	// The room selector on the bookings page and the dashboard counts both
	// include rooms, so their caches go stale too.
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefixRooms)
		shared.InvalidateCaches(c, s.cache, cachePrefixBookings)
		shared.InvalidateCaches(c, s.cache, cachePrefixStats)
	}()

	return nil
}

// Overview assembles the rooms page payload: the room list, the type catalog,
// and per-type / per-status counts.
func (s *serviceImpl) Overview(ctx context.Context) (res dto.RoomsOverviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheRoomsOverview, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheRoomsOverview).Msg("cache hit for rooms overview")

		return res, nil
	}

	rooms, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	types, err := s.repo.GetTypes(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.Rooms = make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		var item dto.RoomResponse
		item.FromModel(r)

		res.Rooms = append(res.Rooms, item)
	}

	res.Types = types
	res.Stats = model.AggregateStats(rooms, types)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRoomsOverview, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms overview to cache")
		}
	}()

	return res, nil
}
