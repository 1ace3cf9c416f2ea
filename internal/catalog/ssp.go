// Package catalog holds the static SSP, measurement vendor and T-Group
// catalogs. Registries are immutable once built and are safe for
// concurrent use.
package catalog

import (
	"slices"
	"strings"

	"github.com/rotisserie/eris"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

// SSPRegistry is an ordered, read-only set of SSP configurations.
type SSPRegistry struct {
	order []string
	ssps  map[string]domain.SSPConfig
}

// NewSSPRegistry builds a registry preserving the given order. Later
// entries with a duplicate key replace earlier ones in place.
func NewSSPRegistry(ssps ...domain.SSPConfig) *SSPRegistry {
	r := &SSPRegistry{ssps: make(map[string]domain.SSPConfig, len(ssps))}
	for _, s := range ssps {
		if _, ok := r.ssps[s.Key]; !ok {
			r.order = append(r.order, s.Key)
		}
		s.SupportedFormats = slices.Clone(s.SupportedFormats)
		r.ssps[s.Key] = s
	}
	return r
}

// Get returns the SSP with the given key.
func (r *SSPRegistry) Get(key string) (domain.SSPConfig, error) {
	s, ok := r.ssps[key]
	if !ok {
		return domain.SSPConfig{}, eris.Wrapf(port.ErrNotFound, "unknown ssp %q, available: %s", key, strings.Join(r.order, ", "))
	}
	s.SupportedFormats = slices.Clone(s.SupportedFormats)
	return s, nil
}

// List returns every SSP in registration order.
func (r *SSPRegistry) List() []domain.SSPConfig {
	out := make([]domain.SSPConfig, 0, len(r.order))
	for _, k := range r.order {
		s := r.ssps[k]
		s.SupportedFormats = slices.Clone(s.SupportedFormats)
		out = append(out, s)
	}
	return out
}

// Keys returns the SSP keys in registration order.
func (r *SSPRegistry) Keys() []string {
	return slices.Clone(r.order)
}

// DefaultSSPs returns the built-in SSP catalog.
func DefaultSSPs() *SSPRegistry {
	return NewSSPRegistry(
		domain.SSPConfig{
			Key:              "magnite",
			Name:             "Magnite",
			TakeRatePct:      15.0,
			SupportedFormats: []string{"olv", "stv", "ctv"},
			OpenRTBVersion:   "2.6",
			Specialization:   "Premium video, CTV programmatic guaranteed",
			PodSupport:       true,
			HeaderBidding:    true,
			Notes:            "Largest independent sell-side platform. Strong CTV inventory.",
		},
		domain.SSPConfig{
			Key:              "pubmatic",
			Name:             "PubMatic",
			TakeRatePct:      14.0,
			SupportedFormats: []string{"olv", "stv"},
			OpenRTBVersion:   "2.6",
			Specialization:   "Cloud infrastructure, OpenWrap header bidding",
			HeaderBidding:    true,
			Notes:            "Cloud-native SSP. Strong in mobile and video.",
		},
		domain.SSPConfig{
			Key:              "index_exchange",
			Name:             "Index Exchange",
			TakeRatePct:      12.0,
			SupportedFormats: []string{"olv", "stv"},
			OpenRTBVersion:   "2.6",
			Specialization:   "Transparency, header bidding marketplace",
			HeaderBidding:    true,
			Notes:            "Known for supply path transparency and exchange-level reporting.",
		},
		domain.SSPConfig{
			Key:              "freewheel",
			Name:             "FreeWheel (Comcast)",
			TakeRatePct:      18.0,
			SupportedFormats: []string{"stv", "ctv"},
			OpenRTBVersion:   "2.6",
			Specialization:   "Premium streaming TV, ad pod management",
			PodSupport:       true,
			Notes:            "Premium CTV/streaming supply. OpenRTB 2.6 pod bidding support.",
		},
	)
}
