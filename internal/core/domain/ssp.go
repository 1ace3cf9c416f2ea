package domain

import "slices"

// SSPConfig is a static catalog entry describing a supply-side platform.
type SSPConfig struct {
	Key              string   `json:"key"`
	Name             string   `json:"name"`
	TakeRatePct      float64  `json:"take_rate_pct"`
	SupportedFormats []string `json:"supported_formats"`
	OpenRTBVersion   string   `json:"openrtb_version"`
	Specialization   string   `json:"specialization"`
	PodSupport       bool     `json:"pod_support"`
	HeaderBidding    bool     `json:"header_bidding"`
	Notes            string   `json:"notes"`
}

// Supports reports whether the SSP accepts the given placement type.
func (s SSPConfig) Supports(placement string) bool {
	return slices.Contains(s.SupportedFormats, placement)
}
