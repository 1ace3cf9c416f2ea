package configs

// VAST configures tag generation.
type VAST struct {
	AdSystem string `env:"AD_SYSTEM" envDefault:"DreamTraffic"`
	// TrackingBase prefixes every impression, click and event beacon.
	TrackingBase string `env:"TRACKING_BASE" envDefault:"https://track.dreamtraffic.demo"`
	// TagBase is the public URL prefix generated tags are served under.
	TagBase string `env:"TAG_BASE" envDefault:"http://localhost:8080/api/v1/vast"`
}
