package model

import "rri/shared/constant"

type Totals struct {
	TotalRooms  int `json:"totalRooms"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
}

type Stats struct {
	ByType map[string]int `json:"byType"`
	Totals Totals         `json:"totals"`
}

// AggregateStats recomputes room counts from a full snapshot. Every known type gets
// an entry in ByType, zero or not.
func AggregateStats(rooms []Room, types []RoomType) Stats {
	byType := make(map[string]int, len(types))
	for _, t := range types {
		byType[t.Name] = 0
	}

	totals := Totals{TotalRooms: len(rooms)}

	for _, r := range rooms {
		byType[r.Type]++

		switch r.Status {
		case constant.RoomStatusAvailable:
			totals.Available++
		case constant.RoomStatusOccupied:
			totals.Occupied++
		case constant.RoomStatusMaintenance:
			totals.Maintenance++
		}
	}

	return Stats{ByType: byType, Totals: totals}
}
