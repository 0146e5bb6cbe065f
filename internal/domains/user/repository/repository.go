package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"

	"rri/infras/otel"
	"rri/infras/postgres"
	"rri/internal/domains/user/model"
	"rri/shared/constant"
	"rri/shared/failure"
	"rri/shared/logger"
)

const (
	insertUserSQL = `
		INSERT INTO users (id, name, email, password_hash, role, created_at)
		VALUES (:id, :name, :email, :password_hash, :role, :created_at)`

	selectUsersSQL = `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		ORDER BY created_at DESC`

	selectUserByEmailSQL = `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE email = $1`

	userExistsByEmailSQL = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
)

type User interface {
	Insert(ctx context.Context, user model.User) error
	GetAll(ctx context.Context) ([]model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	ExistByEmail(ctx context.Context, email string) (bool, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) User {
	return &repositoryImpl{
		db:   db,
		otel: otl,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, user model.User) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "user.Insert")
	defer scope.End()

	queryCtx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	_, err := r.db.Write.NamedExecContext(queryCtx, insertUserSQL, user)
	if err != nil {
		scope.TraceError(err)
		if postgres.IsErrorCode(err, constant.PqErrorCodeUniqueViolation) {
			return failure.Conflict("Email already registered")
		}

		logger.ErrorWithStack(err)
		return failure.InternalFromString("failed to create user")
	}

	return nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.User, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "user.GetAll")
	defer scope.End()

	queryCtx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	users := make([]model.User, 0)
	err := r.db.Read.SelectContext(queryCtx, &users, selectUsersSQL)
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return nil, failure.InternalFromString("failed to fetch users")
	}

	return users, nil
}

// GetByEmail returns a zero-value user with a nil error when no row matches;
// callers check for an empty ID so lookup misses and bad passwords share one
// failure path.
func (r *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "user.GetByEmail")
	defer scope.End()

	queryCtx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	var user model.User
	err := r.db.Read.GetContext(queryCtx, &user, selectUserByEmailSQL, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, nil
		}

		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return model.User{}, failure.InternalFromString("failed to fetch user")
	}

	return user, nil
}

func (r *repositoryImpl) ExistByEmail(ctx context.Context, email string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "user.ExistByEmail")
	defer scope.End()

	queryCtx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	var exists bool
	err := r.db.Read.GetContext(queryCtx, &exists, userExistsByEmailSQL, email)
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return false, failure.InternalFromString("failed to check user")
	}

	return exists, nil
}
