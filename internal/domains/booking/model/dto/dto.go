package dto

import (
	"time"

	"github.com/google/uuid"

	"rri/internal/domains/booking/model"
	"rri/shared/constant"
	"rri/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID      string   `json:"room_id"      validate:"required"`
	GuestName   string   `json:"guest_name"   validate:"required,max=100"`
	GuestEmail  string   `json:"guest_email"  validate:"omitempty,email,max=100"`
	CheckIn     string   `json:"check_in"     validate:"required,datetime=2006-01-02"`
	CheckOut    string   `json:"check_out"    validate:"required,datetime=2006-01-02"`
	TotalAmount *float64 `json:"total_amount" validate:"omitempty,gte=0"`
	// TotalPrice is the legacy client key for the same field; total_amount wins when both are set.
	TotalPrice *float64 `json:"total_price" validate:"omitempty,gte=0"`
	Status     string   `json:"status"      validate:"omitempty,oneof=booked confirmed checked_in checked_out cancelled"`
}

// Amount resolves the caller-supplied total, defaulting to 0.
func (c *CreateBookingRequest) Amount() float64 {
	if c.TotalAmount != nil {
		return *c.TotalAmount
	}

	if c.TotalPrice != nil {
		return *c.TotalPrice
	}

	return 0
}

func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	checkIn, err := time.Parse(constant.DateFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.DateFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	status := constant.BookingStatusBooked
	if c.Status != "" {
		status = c.Status
	}

	var guestEmail *string
	if c.GuestEmail != "" {
		guestEmail = &c.GuestEmail
	}

	return model.Booking{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		GuestName:   c.GuestName,
		GuestEmail:  guestEmail,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Status:      status,
		TotalAmount: c.Amount(),
		CreatedAt:   timezone.Now(),
	}, nil
}

type BookingResponse struct {
	ID          string  `json:"id"`
	GuestName   string  `json:"guest_name"`
	GuestEmail  *string `json:"guest_email"`
	RoomID      string  `json:"room_id"`
	RoomNumber  *string `json:"room_number"`
	RoomType    *string `json:"room_type"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
	CreatedAt   string  `json:"created_at"`
}

func (r *BookingResponse) FromModel(m model.BookingWithRoom) {
	r.ID = m.ID
	r.GuestName = m.GuestName
	r.GuestEmail = m.GuestEmail
	r.RoomID = m.RoomID
	r.RoomNumber = m.RoomNumber
	r.RoomType = m.RoomType
	r.CheckIn = m.CheckIn.Format(constant.DateFormat)
	r.CheckOut = m.CheckOut.Format(constant.DateFormat)
	r.Status = m.Status
	r.TotalAmount = m.TotalAmount
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateTimeFormat)
}

// RoomOption is the room selector entry for the bookings page.
type RoomOption struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Type   string `json:"type"`
}

type BookingsOverviewResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Rooms    []RoomOption      `json:"rooms"`
	Stats    model.Stats       `json:"stats"`
}

type RecentBookingResponse struct {
	ID         string  `json:"id"`
	GuestName  string  `json:"guest_name"`
	GuestEmail *string `json:"guest_email"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Nights     int     `json:"nights"`
	Status     string  `json:"status"`
	Total      float64 `json:"total"`
	RoomNumber *string `json:"room_number"`
	RoomType   *string `json:"room_type"`
}

func (r *RecentBookingResponse) FromModel(m model.RecentBooking) {
	r.ID = m.ID
	r.GuestName = m.GuestName
	r.GuestEmail = m.GuestEmail
	r.CheckIn = m.CheckIn.Format(constant.DateFormat)
	r.CheckOut = m.CheckOut.Format(constant.DateFormat)
	r.Nights = m.Nights
	r.Status = m.Status
	r.Total = m.Total
	r.RoomNumber = m.RoomNumber
	r.RoomType = m.RoomType
}
