package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rri/config"
	"rri/infras/otel"
	bookingModel "rri/internal/domains/booking/model"
	bookingRepo "rri/internal/domains/booking/repository"
	roomRepo "rri/internal/domains/room/repository"
	"rri/internal/domains/stats/model"
	"rri/shared/cache"
	"rri/shared/constant"
	"rri/shared/timezone"
)

const cacheStatsOverview = "stats:overview"

type Stats interface {
	Overview(ctx context.Context) (model.Overview, error)
}

type serviceImpl struct {
	roomRepo    roomRepo.Room
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(roomRepo roomRepo.Room, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Stats {
	return &serviceImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Overview recomputes the dashboard numbers from full room and booking
// snapshots on every cache miss.
func (s *serviceImpl) Overview(ctx context.Context) (res model.Overview, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheStatsOverview, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheStatsOverview).Msg("cache hit for stats overview")

		return res, nil
	}

	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	joined, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	bookings := make([]bookingModel.Booking, 0, len(joined))
	for _, b := range joined {
		bookings = append(bookings, b.Booking)
	}

	res = model.Compute(rooms, bookings, timezone.Today())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStatsOverview, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stats overview to cache")
		}
	}()

	return res, nil
}
