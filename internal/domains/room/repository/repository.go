package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"rri/infras/otel"
	"rri/infras/postgres"
	"rri/internal/domains/room/model"
	"rri/shared/constant"
	"rri/shared/failure"
	"rri/shared/logger"
)

const (
	insertRoomSQL = `
		INSERT INTO rooms (id, number, type_id, beds, price, status)
		VALUES (:id, :number, :type_id, :beds, :price, :status)`

	selectRoomsSQL = `
		SELECT r.id, r.number, r.type_id, rt.name AS type, r.beds, r.price, r.status
		FROM rooms r
		LEFT JOIN room_types rt ON rt.id = r.type_id
		ORDER BY r.number ASC`

	selectRoomTypesSQL = `
		SELECT id, name
		FROM room_types
		ORDER BY id ASC`

	roomExistsSQL = `SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1)`
)

type Room interface {
	Insert(ctx context.Context, room model.Room) error
	GetAll(ctx context.Context) ([]model.Room, error)
	GetTypes(ctx context.Context) ([]model.RoomType, error)
	Exist(ctx context.Context, id string) (bool, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Room {
	return &repositoryImpl{
		db:   db,
		otel: otl,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, room model.Room) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "room.Insert")
	defer scope.End()

	queryCtx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	_, err := r.db.Write.NamedExecContext(queryCtx, insertRoomSQL, room)
	if err != nil {
		scope.TraceError(err)
		switch {
		case postgres.IsErrorCode(err, constant.PqErrorCodeUniqueViolation):
			return failure.Conflict("Room number already exists")
		case postgres.IsErrorCode(err, constant.PqErrorCodeFkViolation):
			return failure.BadRequestFromString("unknown room type")
		default:
			logger.ErrorWithStack(err)
			return failure.InternalFromString("failed to create room")
		}
	}

	return nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Room, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "room.GetAll")
	defer scope.End()

	queryCtx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	rooms := make([]model.Room, 0)
	err := r.db.Read.SelectContext(queryCtx, &rooms, selectRoomsSQL)
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return nil, failure.InternalFromString("failed to fetch rooms")
	}

	return rooms, nil
}

func (r *repositoryImpl) GetTypes(ctx context.Context) ([]model.RoomType, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "room.GetTypes")
	defer scope.End()

	queryCtx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	types := make([]model.RoomType, 0)
	err := r.db.Read.SelectContext(queryCtx, &types, selectRoomTypesSQL)
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return nil, failure.InternalFromString("failed to fetch room types")
	}

	return types, nil
}

func (r *repositoryImpl) Exist(ctx context.Context, id string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "room.Exist")
	defer scope.End()

	queryCtx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	var exists bool
	err := r.db.Read.GetContext(queryCtx, &exists, roomExistsSQL, id)
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return false, failure.InternalFromString("failed to check room")
	}

	return exists, nil
}
