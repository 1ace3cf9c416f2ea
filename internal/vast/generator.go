// Package vast renders VAST 4.2 InLine and Wrapper documents carrying
// OMID verification for the selected measurement vendors.
package vast

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"dreamtraffic/internal/catalog"
	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

// Macro placeholders substituted by the player at request time.
const (
	CacheBuster = "[CACHEBUSTING]"
	Timestamp   = "[TIMESTAMP]"
	Reason      = "[REASON]"
)

// InlineEvents are the linear tracking events of an InLine ad, in order.
var InlineEvents = []string{
	"start", "firstQuartile", "midpoint", "thirdQuartile",
	"complete", "pause", "resume", "mute", "unmute",
	"fullscreen", "exitFullscreen", "skip",
}

// WrapperEvents are the quartile events a Wrapper reports.
var WrapperEvents = []string{"start", "firstQuartile", "midpoint", "thirdQuartile", "complete"}

// Fixed media file descriptors.
const (
	mediaDelivery = "progressive"
	mediaType     = "video/mp4"
	mediaWidth    = 1920
	mediaHeight   = 1080
	mediaCodec    = "H.264"
	mediaBitrate  = 5000
)

// Options configures the generator. Empty fields take defaults.
type Options struct {
	AdSystem        string
	WrapperAdSystem string
	TrackingBase    string
}

// InlineRequest describes the creative rendered into an InLine document.
// Duration is written verbatim and must already be HH:MM:SS. An empty AdID
// is replaced by a generated one.
type InlineRequest struct {
	VideoURL     string
	Duration     string
	Title        string
	Advertiser   string
	VendorKeys   []string
	ClickThrough string
	AdID         string
}

// WrapperRequest describes a Wrapper forwarding to TagURI.
type WrapperRequest struct {
	TagURI     string
	VendorKeys []string
	AdID       string
}

// Generator renders VAST documents. It holds no mutable state.
type Generator struct {
	vendors *catalog.VendorRegistry
	opts    Options
	newID   func() string
}

// NewGenerator returns a generator resolving vendors from the registry.
func NewGenerator(vendors *catalog.VendorRegistry, opts Options) *Generator {
	if opts.AdSystem == "" {
		opts.AdSystem = "DreamTraffic"
	}
	if opts.WrapperAdSystem == "" {
		opts.WrapperAdSystem = opts.AdSystem + " Wrapper"
	}
	if opts.TrackingBase == "" {
		opts.TrackingBase = "https://track.dreamtraffic.demo"
	}
	opts.TrackingBase = strings.TrimRight(opts.TrackingBase, "/")
	return &Generator{vendors: vendors, opts: opts, newID: hexID}
}

func hexID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Inline renders an InLine document. Unknown vendor keys are skipped.
func (g *Generator) Inline(req InlineRequest) (string, error) {
	adID := req.AdID
	if adID == "" {
		adID = "dt-" + g.newID()[:12]
	}
	if req.Duration == "" {
		req.Duration = "00:00:30"
	}
	if req.Title == "" {
		req.Title = "DreamTraffic Creative"
	}
	if req.Advertiser == "" {
		req.Advertiser = "DreamTraffic Demo"
	}
	if req.ClickThrough == "" {
		req.ClickThrough = "https://lumalabs.ai"
	}
	id := url.QueryEscape(adID)

	events := make([]Tracking, 0, len(InlineEvents))
	for _, e := range InlineEvents {
		events = append(events, Tracking{
			Event: e,
			URL:   g.opts.TrackingBase + "/" + e + "?id=" + id + "&cb=" + CacheBuster + "&ts=" + Timestamp,
		})
	}

	doc := &Document{
		Version: Version,
		Ads: []Ad{{
			ID: adID,
			InLine: &InLine{
				AdSystem:   g.opts.AdSystem,
				AdTitle:    req.Title,
				Advertiser: req.Advertiser,
				Impression: Impression{
					ID:  "dt-imp",
					URL: g.opts.TrackingBase + "/impression?id=" + id + "&cb=" + CacheBuster,
				},
				AdVerifications: g.verifications(req.VendorKeys),
				Creatives: Creatives{Creative: []Creative{{
					ID:   "creative-" + adID,
					AdID: adID,
					Linear: Linear{
						Duration: req.Duration,
						MediaFiles: &MediaFiles{MediaFile: []MediaFile{{
							Delivery: mediaDelivery,
							Type:     mediaType,
							Width:    mediaWidth,
							Height:   mediaHeight,
							Codec:    mediaCodec,
							Bitrate:  mediaBitrate,
							URL:      req.VideoURL,
						}}},
						TrackingEvents: TrackingEvents{Tracking: events},
						VideoClicks: &VideoClicks{
							ClickThrough:  Click{ID: "dt-click", URL: req.ClickThrough},
							ClickTracking: Click{ID: "dt-click-track", URL: g.opts.TrackingBase + "/click?id=" + id + "&cb=" + CacheBuster},
						},
					},
				}}},
			},
		}},
	}
	return Render(doc)
}

// Wrapper renders a Wrapper document. It fails with ErrInvalidArgument when
// TagURI is empty.
func (g *Generator) Wrapper(req WrapperRequest) (string, error) {
	if strings.TrimSpace(req.TagURI) == "" {
		return "", eris.Wrap(port.ErrInvalidArgument, "vast ad tag uri is required")
	}
	adID := req.AdID
	if adID == "" {
		adID = "dt-wrapper-" + g.newID()[:8]
	}
	id := url.QueryEscape(adID)

	events := make([]Tracking, 0, len(WrapperEvents))
	for _, e := range WrapperEvents {
		events = append(events, Tracking{
			Event: e,
			URL:   g.opts.TrackingBase + "/wrapper-" + e + "?id=" + id + "&cb=" + CacheBuster,
		})
	}

	doc := &Document{
		Version: Version,
		Ads: []Ad{{
			ID: adID,
			Wrapper: &Wrapper{
				AdSystem:     g.opts.WrapperAdSystem,
				VASTAdTagURI: CData{Text: req.TagURI},
				Impression: Impression{
					ID:  "dt-wrapper-imp",
					URL: g.opts.TrackingBase + "/wrapper-impression?id=" + id + "&cb=" + CacheBuster,
				},
				AdVerifications: g.verifications(req.VendorKeys),
				Creatives: Creatives{Creative: []Creative{{
					Linear: Linear{TrackingEvents: TrackingEvents{Tracking: events}},
				}}},
			},
		}},
	}
	return Render(doc)
}

// verifications returns nil when no known vendor is selected so the
// AdVerifications element is omitted entirely.
func (g *Generator) verifications(keys []string) *AdVerifications {
	vendors := g.vendors.Resolve(keys)
	if len(vendors) == 0 {
		return nil
	}
	out := &AdVerifications{Verifications: make([]Verification, 0, len(vendors))}
	for _, v := range vendors {
		out.Verifications = append(out.Verifications, verification(v))
	}
	return out
}

type verificationParams struct {
	Partner   string `json:"partner"`
	VendorKey string `json:"vendorKey"`
}

func verification(v domain.VendorConfig) Verification {
	params, _ := json.Marshal(verificationParams{Partner: v.OMIDPartner(), VendorKey: v.TagKey})
	return Verification{
		Vendor: v.TagKey,
		JavaScriptResource: JavaScriptResource{
			APIFramework:    "omid",
			BrowserOptional: true,
			URL:             v.ScriptURL,
		},
		TrackingEvents: TrackingEvents{Tracking: []Tracking{{
			Event: "verificationNotExecuted",
			URL:   v.VerificationURL + "/verify-not-executed?vendor=" + url.QueryEscape(v.Key) + "&reason=" + Reason,
		}}},
		VerificationParameters: CData{Text: string(params)},
	}
}
