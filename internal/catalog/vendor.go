package catalog

import (
	"strings"

	"github.com/rotisserie/eris"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

// VendorRegistry is an ordered, read-only set of measurement vendors.
type VendorRegistry struct {
	order   []string
	vendors map[string]domain.VendorConfig
}

// NewVendorRegistry builds a registry preserving the given order.
func NewVendorRegistry(vendors ...domain.VendorConfig) *VendorRegistry {
	r := &VendorRegistry{vendors: make(map[string]domain.VendorConfig, len(vendors))}
	for _, v := range vendors {
		if _, ok := r.vendors[v.Key]; !ok {
			r.order = append(r.order, v.Key)
		}
		r.vendors[v.Key] = v
	}
	return r
}

// Get returns the vendor with the given key.
func (r *VendorRegistry) Get(key string) (domain.VendorConfig, error) {
	v, ok := r.vendors[key]
	if !ok {
		return domain.VendorConfig{}, eris.Wrapf(port.ErrNotFound, "unknown measurement vendor %q, available: %s", key, strings.Join(r.order, ", "))
	}
	return v, nil
}

// List returns every vendor in registration order.
func (r *VendorRegistry) List() []domain.VendorConfig {
	out := make([]domain.VendorConfig, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.vendors[k])
	}
	return out
}

// Resolve maps keys to vendors in the given order, silently skipping keys
// that are not registered.
func (r *VendorRegistry) Resolve(keys []string) []domain.VendorConfig {
	out := make([]domain.VendorConfig, 0, len(keys))
	for _, k := range keys {
		if v, ok := r.vendors[k]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Validate returns an ErrNotFound error for the first unknown key.
func (r *VendorRegistry) Validate(keys []string) error {
	for _, k := range keys {
		if _, err := r.Get(k); err != nil {
			return err
		}
	}
	return nil
}

// TotalCPM sums the CPM of the known vendors among keys.
func (r *VendorRegistry) TotalCPM(keys []string) float64 {
	var total float64
	for _, v := range r.Resolve(keys) {
		total += v.CPM
	}
	return total
}

// DefaultVendors returns the built-in measurement vendor catalog.
func DefaultVendors() *VendorRegistry {
	return NewVendorRegistry(
		domain.VendorConfig{
			Key:             "ias",
			Name:            "Integral Ad Science",
			VerificationURL: "https://pixel.adsafeprotected.com/services/pub",
			ScriptURL:       "https://fw.adsafeprotected.com/rfw/dv/fwjsvid/st/291582/36966574.js",
			CPM:             0.02,
			TagKey:          "ias-pub-291582",
		},
		domain.VendorConfig{
			Key:             "moat",
			Name:            "Moat by Oracle",
			VerificationURL: "https://z.moatads.com/dreamtrafficpixel/moatvideo.js",
			ScriptURL:       "https://z.moatads.com/dreamtrafficpixel/moatvideo.js",
			CPM:             0.03,
			TagKey:          "moat-dreamtraffic",
		},
		domain.VendorConfig{
			Key:             "doubleverify",
			Name:            "DoubleVerify",
			VerificationURL: "https://cdn.doubleverify.com/dvbs_src.js",
			ScriptURL:       "https://cdn.doubleverify.com/dvbs_src.js",
			CPM:             0.025,
			TagKey:          "dv-ctx-123456",
		},
	)
}
