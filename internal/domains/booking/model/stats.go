package model

import (
	"time"

	"rri/shared/constant"
)

const upcomingWindowDays = 7

type StatusCounts struct {
	Booked     int `json:"booked"`
	Confirmed  int `json:"confirmed"`
	CheckedIn  int `json:"checked_in"`
	CheckedOut int `json:"checked_out"`
	Cancelled  int `json:"cancelled"`
}

type Stats struct {
	Total      int          `json:"total"`
	ByStatus   StatusCounts `json:"byStatus"`
	Upcoming7d int          `json:"upcoming7d"`
}

// AggregateStats recomputes booking counts from a full snapshot. Upcoming7d counts
// non-cancelled bookings whose check-in falls within [today, today+7d] inclusive.
func AggregateStats(bookings []Booking, today time.Time) Stats {
	stats := Stats{Total: len(bookings)}
	windowEnd := today.AddDate(0, 0, upcomingWindowDays)

	for _, b := range bookings {
		switch b.Status {
		case constant.BookingStatusBooked:
			stats.ByStatus.Booked++
		case constant.BookingStatusConfirmed:
			stats.ByStatus.Confirmed++
		case constant.BookingStatusCheckedIn:
			stats.ByStatus.CheckedIn++
		case constant.BookingStatusCheckedOut:
			stats.ByStatus.CheckedOut++
		case constant.BookingStatusCancelled:
			stats.ByStatus.Cancelled++
		}

		if b.Status != constant.BookingStatusCancelled &&
			!b.CheckIn.Before(today) && !b.CheckIn.After(windowEnd) {
			stats.Upcoming7d++
		}
	}

	return stats
}
