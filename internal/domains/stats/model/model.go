package model

import (
	"math"
	"time"

	bookingModel "rri/internal/domains/booking/model"
	roomModel "rri/internal/domains/room/model"
	"rri/shared/constant"
)

// Dashboard placeholders carried over from the admin UI; ADR and RevPAR are not
// computed yet.
const (
	placeholderADR    = 120
	placeholderRevPAR = 0
)

type Deltas struct {
	Revenue   int `json:"revenue"`
	Occupancy int `json:"occupancy"`
	ADR       int `json:"adr"`
}

type Overview struct {
	RoomsTotal       int     `json:"rooms_total"`
	RoomsAvailable   int     `json:"rooms_available"`
	RoomsOccupied    int     `json:"rooms_occupied"`
	RoomsMaintenance int     `json:"rooms_maintenance"`
	CheckinsToday    int     `json:"checkins_today"`
	CheckoutsToday   int     `json:"checkouts_today"`
	RevenueToday     float64 `json:"revenue_today"`
	OccupancyPct     int     `json:"occupancy_pct"`
	ADR              float64 `json:"adr"`
	RevPAR           float64 `json:"revpar"`
	Deltas           Deltas  `json:"deltas"`
}

// revenueStatuses are the currently-active stay states that count toward today's
// revenue; booked-but-not-confirmed and cancelled contribute nothing.
func countsTowardRevenue(status string) bool {
	switch status {
	case constant.BookingStatusConfirmed, constant.BookingStatusCheckedIn, constant.BookingStatusCheckedOut:
		return true
	default:
		return false
	}
}

// Compute aggregates the dashboard overview from full room and booking snapshots.
// It is a pure recomputation: no incremental state, no I/O.
func Compute(rooms []roomModel.Room, bookings []bookingModel.Booking, today time.Time) Overview {
	overview := Overview{
		RoomsTotal: len(rooms),
		ADR:        placeholderADR,
		RevPAR:     placeholderRevPAR,
		Deltas:     Deltas{Revenue: 5, Occupancy: 2, ADR: -1},
	}

	for _, r := range rooms {
		switch r.Status {
		case constant.RoomStatusAvailable:
			overview.RoomsAvailable++
		case constant.RoomStatusOccupied:
			overview.RoomsOccupied++
		case constant.RoomStatusMaintenance:
			overview.RoomsMaintenance++
		}
	}

	for _, b := range bookings {
		if b.CheckIn.Equal(today) {
			overview.CheckinsToday++
		}

		if b.CheckOut.Equal(today) {
			overview.CheckoutsToday++
		}

		if countsTowardRevenue(b.Status) && b.SpansDate(today) {
			overview.RevenueToday += b.TotalAmount
		}
	}

	if overview.RoomsTotal > 0 {
		overview.OccupancyPct = int(math.Round(float64(overview.RoomsOccupied) / float64(overview.RoomsTotal) * 100))
	}

	return overview
}
