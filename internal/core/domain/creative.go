package domain

import (
	"fmt"
	"time"
)

// PlacementType is the inventory class a creative is built for.
type PlacementType string

const (
	PlacementOLV     PlacementType = "olv" // online video
	PlacementSTV     PlacementType = "stv" // streaming TV
	PlacementPreroll PlacementType = "preroll"
)

// Valid reports whether p is one of the known placement types.
func (p PlacementType) Valid() bool {
	switch p {
	case PlacementOLV, PlacementSTV, PlacementPreroll:
		return true
	}
	return false
}

// Creative represents one candidate video ad asset.
type Creative struct {
	ID             int64          `json:"id"`
	CampaignID     int64          `json:"campaign_id"`
	Name           string         `json:"name"`
	Prompt         string         `json:"prompt"`
	VideoURL       string         `json:"video_url"`
	Duration       int            `json:"duration_seconds"` // in seconds
	Width          int            `json:"width"`
	Height         int            `json:"height"`
	AspectRatio    string         `json:"aspect_ratio"`
	Format         string         `json:"format"`
	Placement      PlacementType  `json:"placement_type"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	// MeasurementConfig is the JSON encoded list of selected vendor keys.
	MeasurementConfig string    `json:"measurement_config"`
	VastURL           string    `json:"vast_url"`
	CreatedAt         time.Time `json:"created_at"`
}

// VastDuration renders Duration as the HH:MM:SS string VAST expects.
func (c Creative) VastDuration() string {
	d := c.Duration
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", d/3600, (d/60)%60, d%60)
}
