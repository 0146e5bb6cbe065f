package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rri/config"
	"rri/infras/otel"
	"rri/internal/domains/user/model"
	"rri/internal/domains/user/model/dto"
	"rri/internal/domains/user/repository"
	"rri/shared"
	"rri/shared/cache"
	"rri/shared/constant"
	"rri/shared/failure"
	"rri/shared/password"
	"rri/shared/timezone"
)

const (
	cacheUsersOverview = "users:overview"
	cachePrefixUsers   = "users"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) error
	Overview(ctx context.Context) (dto.UsersOverviewResponse, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.ExistByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email is taken")

		return fmt.Errorf("failed to check if email is taken: %w", err)
	}

	if exists {
		return failure.Conflict("Email already registered") // nolint:wrapcheck
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(hash)); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cachePrefixUsers)
	}()

	return nil
}

// Overview assembles the users page payload: all accounts plus role counts.
func (s *serviceImpl) Overview(ctx context.Context) (res dto.UsersOverviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheUsersOverview, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheUsersOverview).Msg("cache hit for users overview")

		return res, nil
	}

	users, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.Users = make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		var item dto.UserResponse
		item.FromModel(u)

		res.Users = append(res.Users, item)
	}

	res.Stats = model.AggregateStats(users, timezone.Now())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheUsersOverview, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users overview to cache")
		}
	}()

	return res, nil
}
