package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"rri/infras/jwt"
	"rri/infras/otel"
	"rri/internal/domains/auth/model/dto"
	userRepo "rri/internal/domains/user/repository"
	"rri/shared/constant"
	"rri/shared/failure"
	"rri/shared/password"
)

// Credential failures share one message so the response never reveals whether
// the email exists.
const invalidCredentialsMsg = "Invalid email or password"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	jwt      jwt.JWT
	otel     otel.Otel
}

func New(userRepo userRepo.User, jwtService jwt.JWT, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		jwt:      jwtService,
		otel:     otel,
	}
}

// Register creates a guest account and signs it in.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.userRepo.ExistByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email is taken")

		return res, fmt.Errorf("failed to check if email is taken: %w", err)
	}

	if exists {
		return res, failure.Conflict("Email already registered") // nolint:wrapcheck
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hash)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwt.Generate(user.ID, user.Name, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res.FromUserModel(token, user)

	return res, nil
}

// Login verifies credentials and issues a fresh token.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.Unauthorized(invalidCredentialsMsg) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, user.PasswordHash); err != nil {
		return res, failure.Unauthorized(invalidCredentialsMsg) // nolint:wrapcheck
	}

	token, err := s.jwt.Generate(user.ID, user.Name, user.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token")

		return res, fmt.Errorf("failed to generate token: %w", err)
	}

	res.FromUserModel(token, user)

	return res, nil
}
