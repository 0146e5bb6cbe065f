package model

import (
	"time"

	"rri/shared/constant"
)

const recentWindowDays = 7

type Stats struct {
	Total    int `json:"total"`
	Admins   int `json:"admins"`
	Staff    int `json:"staff"`
	Guests   int `json:"guests"`
	Recent7d int `json:"recent7d"`
}

// AggregateStats recomputes user counts from a full snapshot. Recent7d counts accounts
// created within the last seven days of now.
func AggregateStats(users []User, now time.Time) Stats {
	stats := Stats{Total: len(users)}
	windowStart := now.AddDate(0, 0, -recentWindowDays)

	for _, u := range users {
		switch u.Role {
		case constant.RoleAdmin:
			stats.Admins++
		case constant.RoleStaff:
			stats.Staff++
		case constant.RoleGuest:
			stats.Guests++
		}

		if !u.CreatedAt.Before(windowStart) {
			stats.Recent7d++
		}
	}

	return stats
}
