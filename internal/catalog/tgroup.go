package catalog

import "dreamtraffic/internal/core/domain"

// DefaultTGroups returns the exchange's pre-configured T-Groups, one per
// major DSP plus a broad group for challenger DSPs.
func DefaultTGroups() []domain.TGroup {
	return []domain.TGroup{
		{
			Name:         "amazon_premium",
			DSP:          "amazon",
			AllowedSSPs:  []string{"magnite", "pubmatic", "index_exchange"},
			GeoTargets:   []string{"US"},
			FormatFilter: []string{"olv", "stv"},
			MinBidFloor:  5.0,
		},
		{
			Name:         "ttd_open",
			DSP:          "thetradedesk",
			AllowedSSPs:  []string{"magnite", "pubmatic", "index_exchange"},
			GeoTargets:   []string{"US"},
			FormatFilter: []string{"olv", "stv"},
			MinBidFloor:  3.0,
		},
		{
			Name:         "dv360_google",
			DSP:          "dv360",
			AllowedSSPs:  []string{"magnite", "pubmatic", "index_exchange"},
			GeoTargets:   []string{"US"},
			FormatFilter: []string{"olv", "stv"},
			MinBidFloor:  4.0,
		},
		{
			Name:         "challenger_broad",
			DSP:          "challenger",
			AllowedSSPs:  []string{"pubmatic", "magnite"},
			GeoTargets:   []string{"US"},
			FormatFilter: []string{"olv"},
			MinBidFloor:  2.0,
		},
	}
}

// DefaultTGroupAliases maps DSPs that share another DSP's T-Group to the
// group name.
func DefaultTGroupAliases() map[string]string {
	return map[string]string{
		"stackadapt": "challenger_broad",
		"adelphic":   "challenger_broad",
	}
}
