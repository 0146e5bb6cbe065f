package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rri/internal/domains/booking/model"
	"rri/shared/constant"
)

func date(day int) time.Time {
	return time.Date(2025, time.January, day, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    model.DateRange
		b    model.DateRange
		want bool
	}{
		{
			name: "identical ranges overlap",
			a:    model.DateRange{Start: date(10), End: date(15)},
			b:    model.DateRange{Start: date(10), End: date(15)},
			want: true,
		},
		{
			name: "contained range overlaps",
			a:    model.DateRange{Start: date(10), End: date(15)},
			b:    model.DateRange{Start: date(12), End: date(14)},
			want: true,
		},
		{
			name: "partial overlap at the end",
			a:    model.DateRange{Start: date(10), End: date(15)},
			b:    model.DateRange{Start: date(14), End: date(20)},
			want: true,
		},
		{
			name: "back to back stays do not overlap",
			a:    model.DateRange{Start: date(10), End: date(15)},
			b:    model.DateRange{Start: date(15), End: date(18)},
			want: false,
		},
		{
			name: "disjoint ranges do not overlap",
			a:    model.DateRange{Start: date(10), End: date(12)},
			b:    model.DateRange{Start: date(20), End: date(22)},
			want: false,
		},
		{
			name: "earlier stay ending on start day does not overlap",
			a:    model.DateRange{Start: date(15), End: date(18)},
			b:    model.DateRange{Start: date(10), End: date(15)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))

			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestDateRange_IsValid(t *testing.T) {
	assert.True(t, model.DateRange{Start: date(10), End: date(11)}.IsValid())
	assert.False(t, model.DateRange{Start: date(10), End: date(10)}.IsValid())
	assert.False(t, model.DateRange{Start: date(11), End: date(10)}.IsValid())
}

func TestDateRange_Nights(t *testing.T) {
	assert.Equal(t, 5, model.DateRange{Start: date(10), End: date(15)}.Nights())
	assert.Equal(t, 1, model.DateRange{Start: date(10), End: date(11)}.Nights())
}

func TestBooking_ConflictsWith(t *testing.T) {
	stay := model.DateRange{Start: date(12), End: date(14)}

	tests := []struct {
		name    string
		booking model.Booking
		want    bool
	}{
		{
			name: "overlapping booked stay conflicts",
			booking: model.Booking{
				CheckIn:  date(10),
				CheckOut: date(15),
				Status:   constant.BookingStatusBooked,
			},
			want: true,
		},
		{
			name: "overlapping cancelled stay never conflicts",
			booking: model.Booking{
				CheckIn:  date(10),
				CheckOut: date(15),
				Status:   constant.BookingStatusCancelled,
			},
			want: false,
		},
		{
			name: "adjacent stay does not conflict",
			booking: model.Booking{
				CheckIn:  date(14),
				CheckOut: date(18),
				Status:   constant.BookingStatusConfirmed,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.ConflictsWith(stay))
		})
	}
}

func TestBooking_SpansDate(t *testing.T) {
	booking := model.Booking{CheckIn: date(10), CheckOut: date(15)}

	// Boundaries are inclusive for the revenue aggregation.
	assert.True(t, booking.SpansDate(date(10)))
	assert.True(t, booking.SpansDate(date(12)))
	assert.True(t, booking.SpansDate(date(15)))
	assert.False(t, booking.SpansDate(date(9)))
	assert.False(t, booking.SpansDate(date(16)))
}

func TestAggregateStats(t *testing.T) {
	today := date(10)

	bookings := []model.Booking{
		{CheckIn: date(10), CheckOut: date(12), Status: constant.BookingStatusBooked},
		{CheckIn: date(11), CheckOut: date(13), Status: constant.BookingStatusConfirmed},
		{CheckIn: date(17), CheckOut: date(19), Status: constant.BookingStatusCheckedIn},
		// Outside the seven-day window.
		{CheckIn: date(18), CheckOut: date(20), Status: constant.BookingStatusConfirmed},
		// Cancelled bookings never count as upcoming.
		{CheckIn: date(11), CheckOut: date(12), Status: constant.BookingStatusCancelled},
		// Already started stays are not upcoming.
		{CheckIn: date(8), CheckOut: date(14), Status: constant.BookingStatusCheckedOut},
	}

	stats := model.AggregateStats(bookings, today)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 1, stats.ByStatus.Booked)
	assert.Equal(t, 2, stats.ByStatus.Confirmed)
	assert.Equal(t, 1, stats.ByStatus.CheckedIn)
	assert.Equal(t, 1, stats.ByStatus.CheckedOut)
	assert.Equal(t, 1, stats.ByStatus.Cancelled)
	assert.Equal(t, 3, stats.Upcoming7d)
}

func TestAggregateStats_Empty(t *testing.T) {
	stats := model.AggregateStats(nil, date(1))

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Upcoming7d)
}
