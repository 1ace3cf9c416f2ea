package domain

// VendorConfig describes a measurement vendor whose verification script is
// embedded in generated tags.
type VendorConfig struct {
	Key             string  `json:"key"`
	Name            string  `json:"name"`
	VerificationURL string  `json:"verification_url"`
	ScriptURL       string  `json:"script_url"`
	CPM             float64 `json:"cpm"`
	// TagKey is the vendor attribute used on VAST Verification elements.
	TagKey string `json:"tag_key"`
}

// OMIDPartner returns the Open Measurement partner identifier.
func (v VendorConfig) OMIDPartner() string {
	return "com." + v.Key
}
