package domain

import "time"

// Campaign represents an advertiser campaign that owns creatives.
// Budget is stored in integer units (e.g. cents).
type Campaign struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Advertiser  string          `json:"advertiser"`
	Objective   string          `json:"objective"`
	Audience    string          `json:"audience"`
	Placements  []PlacementType `json:"placements"`
	Budget      int64           `json:"budget"`
	FlightStart time.Time       `json:"flight_start"`
	FlightEnd   time.Time       `json:"flight_end"`
	Brief       string          `json:"brief"`
	CreatedAt   time.Time       `json:"created_at"`
}
