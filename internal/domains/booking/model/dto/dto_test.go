package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rri/internal/domains/booking/model/dto"
	"rri/shared/constant"
)

func f(v float64) *float64 {
	return &v
}

func TestCreateBookingRequest_Amount(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateBookingRequest
		want float64
	}{
		{
			name: "total_amount wins",
			req:  dto.CreateBookingRequest{TotalAmount: f(200), TotalPrice: f(100)},
			want: 200,
		},
		{
			name: "total_price accepted as legacy alias",
			req:  dto.CreateBookingRequest{TotalPrice: f(100)},
			want: 100,
		},
		{
			name: "defaults to zero",
			req:  dto.CreateBookingRequest{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Amount())
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:    "room-1",
		GuestName: "Ayu Lestari",
		CheckIn:   "2025-01-10",
		CheckOut:  "2025-01-15",
	}

	booking, err := req.ToModel()

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, constant.BookingStatusBooked, booking.Status)
	assert.Nil(t, booking.GuestEmail)
	assert.Equal(t, "2025-01-10", booking.CheckIn.Format(constant.DateFormat))
	assert.Equal(t, 5, booking.Stay().Nights())
}

func TestCreateBookingRequest_ToModel_BadDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		RoomID:    "room-1",
		GuestName: "Ayu Lestari",
		CheckIn:   "10-01-2025",
		CheckOut:  "2025-01-15",
	}

	_, err := req.ToModel()

	assert.Error(t, err)
}
