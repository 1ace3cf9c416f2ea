package domain

import (
	"encoding/json"
	"time"
)

// AuditStatus is the review state a DSP reports for an uploaded creative.
type AuditStatus string

const (
	AuditPending     AuditStatus = "pending"
	AuditUnderReview AuditStatus = "under_review"
	AuditApproved    AuditStatus = "approved"
	AuditRejected    AuditStatus = "rejected"
	AuditActive      AuditStatus = "active"
)

// UploadRequest is the normalized payload handed to a DSP adapter.
type UploadRequest struct {
	VideoURL     string
	VastURL      string
	Duration     int
	Width        int
	Height       int
	Placement    PlacementType
	CampaignName string
}

// UploadResult is the normalized adapter response.
type UploadResult struct {
	DSP             string
	AssetID         string
	CreativeID      string
	AuditStatus     AuditStatus
	Placement       PlacementType
	VastURL         string
	RequestPayload  map[string]any
	ResponsePayload map[string]any
}

// TraffickingRecord stores the outcome of one upload of a creative to a DSP.
type TraffickingRecord struct {
	ID              int64           `json:"id"`
	CreativeID      int64           `json:"creative_id"`
	DSP             string          `json:"dsp"`
	DSPCreativeID   string          `json:"dsp_creative_id"`
	DSPAssetID      string          `json:"dsp_asset_id"`
	VastURL         string          `json:"vast_url"`
	AuditStatus     AuditStatus     `json:"audit_status"`
	Placement       PlacementType   `json:"placement_type"`
	RequestPayload  json.RawMessage `json:"request_payload"`
	ResponsePayload json.RawMessage `json:"response_payload"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
