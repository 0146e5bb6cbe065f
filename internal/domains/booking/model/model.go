package model

import (
	"time"

	"rri/shared/constant"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldGuestName   = "guest_name"
	FieldGuestEmail  = "guest_email"
	FieldCheckIn     = "check_in"
	FieldCheckOut    = "check_out"
	FieldStatus      = "status"
	FieldTotalAmount = "total_amount"
	FieldCreatedAt   = "created_at"
)

type Booking struct {
	ID          string    `db:"id"`
	RoomID      string    `db:"room_id"`
	GuestName   string    `db:"guest_name"`
	GuestEmail  *string   `db:"guest_email"`
	CheckIn     time.Time `db:"check_in"`
	CheckOut    time.Time `db:"check_out"`
	Status      string    `db:"status"`
	TotalAmount float64   `db:"total_amount"`
	CreatedAt   time.Time `db:"created_at"`
}

// BookingWithRoom is a booking row joined with its room's number and type name.
// The join is LEFT, so both can be NULL for a dangling room reference.
type BookingWithRoom struct {
	Booking
	RoomNumber *string `db:"room_number"`
	RoomType   *string `db:"room_type"`
}

// RecentBooking is the dashboard row shape: nights and total computed in the query.
type RecentBooking struct {
	ID         string    `db:"id"`
	GuestName  string    `db:"guest_name"`
	GuestEmail *string   `db:"guest_email"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	Nights     int       `db:"nights"`
	Status     string    `db:"status"`
	Total      float64   `db:"total"`
	RoomNumber *string   `db:"room_number"`
	RoomType   *string   `db:"room_type"`
}

// Stay returns the booking's half-open date interval [check_in, check_out).
func (b Booking) Stay() DateRange {
	return DateRange{Start: b.CheckIn, End: b.CheckOut}
}

// ConflictsWith reports whether this booking blocks the given stay. Cancelled
// bookings never conflict.
func (b Booking) ConflictsWith(stay DateRange) bool {
	if b.Status == constant.BookingStatusCancelled {
		return false
	}

	return b.Stay().Overlaps(stay)
}

// SpansDate reports whether the given calendar date falls inside [check_in, check_out],
// boundaries included. Used by the revenue aggregation.
func (b Booking) SpansDate(date time.Time) bool {
	return !b.CheckIn.After(date) && !b.CheckOut.Before(date)
}
