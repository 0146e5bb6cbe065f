//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"rri/config"
	"rri/infras/jwt"
	"rri/infras/otel"
	"rri/infras/postgres"
	"rri/infras/redis"
	"rri/shared/cache"
	"rri/transport/http"
	"rri/transport/http/middleware"
	"rri/transport/http/router"

	authService "rri/internal/domains/auth/service"
	bookingRepository "rri/internal/domains/booking/repository"
	bookingService "rri/internal/domains/booking/service"
	roomRepository "rri/internal/domains/room/repository"
	roomService "rri/internal/domains/room/service"
	statsService "rri/internal/domains/stats/service"
	userRepository "rri/internal/domains/user/repository"
	userService "rri/internal/domains/user/service"

	authHandler "rri/internal/handlers/auth"
	bookingHandler "rri/internal/handlers/booking"
	healthHandler "rri/internal/handlers/health"
	roomHandler "rri/internal/handlers/room"
	statsHandler "rri/internal/handlers/stats"
	userHandler "rri/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(healthHandler.Pinger), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var statsDomain = wire.NewSet(
	statsService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	userDomain,
	authDomain,
	statsDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	userHandler.New,
	statsHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
