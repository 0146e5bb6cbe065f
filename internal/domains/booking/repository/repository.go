package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"

	"rri/infras/otel"
	"rri/infras/postgres"
	"rri/internal/domains/booking/model"
	"rri/shared/constant"
	"rri/shared/failure"
	"rri/shared/logger"
)

const (
	insertBookingSQL = `
		INSERT INTO bookings (id, room_id, guest_name, guest_email, check_in, check_out, status, total_amount, created_at)
		VALUES (:id, :room_id, :guest_name, :guest_email, :check_in, :check_out, :status, :total_amount, :created_at)`

	// Half-open overlap test against every live booking on the room; a stay
	// ending on another's start day does not conflict.
	conflictExistsSQL = `
		SELECT EXISTS (
			SELECT 1
			FROM bookings
			WHERE room_id = $1
			  AND status <> 'cancelled'
			  AND NOT (check_out <= $2 OR check_in >= $3)
		)`

	selectBookingsSQL = `
		SELECT
			b.id, b.room_id, b.guest_name, b.guest_email,
			b.check_in, b.check_out, b.status, b.total_amount, b.created_at,
			r.number AS room_number,
			rt.name AS room_type
		FROM bookings b
		LEFT JOIN rooms r ON r.id = b.room_id
		LEFT JOIN room_types rt ON rt.id = r.type_id
		ORDER BY b.check_in DESC, b.id DESC`

	selectRecentBookingsSQL = `
		SELECT
			b.id, b.guest_name, b.guest_email, b.check_in, b.check_out, b.status,
			(b.check_out - b.check_in) AS nights,
			b.total_amount AS total,
			r.number AS room_number,
			rt.name AS room_type
		FROM bookings b
		LEFT JOIN rooms r ON r.id = b.room_id
		LEFT JOIN room_types rt ON rt.id = r.type_id
		ORDER BY b.created_at DESC
		LIMIT $1`
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	GetAll(ctx context.Context) ([]model.BookingWithRoom, error)
	Recent(ctx context.Context, limit int) ([]model.RecentBooking, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otl otel.Otel) Booking {
	return &repositoryImpl{
		db:   db,
		otel: otl,
	}
}

// Insert writes a booking after re-checking for date conflicts inside a
// serializable transaction, so two overlapping requests cannot both pass the
// check. The exclusion constraint on bookings backstops the same rule at the
// schema level.
func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "booking.Insert")
	defer scope.End()

	queryCtx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	tx, err := r.db.Write.BeginTxx(queryCtx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return failure.InternalFromString("failed to start transaction")
	}
	defer tx.Rollback() //nolint:errcheck

	var conflict bool
	err = tx.GetContext(queryCtx, &conflict, conflictExistsSQL, booking.RoomID, booking.CheckIn, booking.CheckOut)
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return failure.InternalFromString("failed to check booking conflicts")
	}

	if conflict {
		return failure.Conflict("Room is already booked for the selected dates")
	}

	_, err = tx.NamedExecContext(queryCtx, insertBookingSQL, booking)
	if err != nil {
		scope.TraceError(err)
		return translateBookingWriteError(err)
	}

	if err = tx.Commit(); err != nil {
		scope.TraceError(err)
		return translateBookingWriteError(err)
	}

	return nil
}

func translateBookingWriteError(err error) error {
	switch {
	case postgres.IsErrorCode(err, constant.PqErrorCodeExclusionViolation),
		postgres.IsErrorCode(err, constant.PqErrorCodeSerializationFailure):
		return failure.Conflict("Room is already booked for the selected dates")
	case postgres.IsErrorCode(err, constant.PqErrorCodeFkViolation):
		return failure.NotFound("Room not found")
	default:
		logger.ErrorWithStack(err)
		return failure.InternalFromString("failed to create booking")
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.BookingWithRoom, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "booking.GetAll")
	defer scope.End()

	queryCtx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	bookings := make([]model.BookingWithRoom, 0)
	err := r.db.Read.SelectContext(queryCtx, &bookings, selectBookingsSQL)
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return nil, failure.InternalFromString("failed to fetch bookings")
	}

	return bookings, nil
}

func (r *repositoryImpl) Recent(ctx context.Context, limit int) ([]model.RecentBooking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, "booking.Recent")
	defer scope.End()

	queryCtx, cancel := r.db.QueryContext(ctx)
	defer cancel()

	bookings := make([]model.RecentBooking, 0)
	err := r.db.Read.SelectContext(queryCtx, &bookings, selectRecentBookingsSQL, limit)
	if err != nil {
		scope.TraceError(err)
		logger.ErrorWithStack(err)
		return nil, failure.InternalFromString("failed to fetch recent bookings")
	}

	return bookings, nil
}
