package vast

import (
	"encoding/xml"

	"github.com/rotisserie/eris"
)

// Namespace is the IAB VAST XML namespace.
const Namespace = "http://www.iab.com/VAST"

// Version is the VAST version emitted on every document.
const Version = "4.2"

// Document is the VAST root element.
type Document struct {
	XMLName xml.Name `xml:"http://www.iab.com/VAST VAST"`
	Version string   `xml:"version,attr"`
	Ads     []Ad     `xml:"Ad"`
}

// Ad holds exactly one of InLine or Wrapper.
type Ad struct {
	ID      string   `xml:"id,attr,omitempty"`
	InLine  *InLine  `xml:"InLine"`
	Wrapper *Wrapper `xml:"Wrapper"`
}

// InLine is a self-contained ad.
type InLine struct {
	AdSystem        string           `xml:"AdSystem"`
	AdTitle         string           `xml:"AdTitle"`
	Advertiser      string           `xml:"Advertiser"`
	Impression      Impression       `xml:"Impression"`
	AdVerifications *AdVerifications `xml:"AdVerifications"`
	Creatives       Creatives        `xml:"Creatives"`
}

// Wrapper forwards the player to another VAST document.
type Wrapper struct {
	AdSystem        string           `xml:"AdSystem"`
	VASTAdTagURI    CData            `xml:"VASTAdTagURI"`
	Impression      Impression       `xml:"Impression"`
	AdVerifications *AdVerifications `xml:"AdVerifications"`
	Creatives       Creatives        `xml:"Creatives"`
}

// CData is an element whose text is written as a CDATA section.
type CData struct {
	Text string `xml:",cdata"`
}

type Impression struct {
	ID  string `xml:"id,attr,omitempty"`
	URL string `xml:",cdata"`
}

type AdVerifications struct {
	Verifications []Verification `xml:"Verification"`
}

// Verification carries one measurement vendor's OMID script.
type Verification struct {
	Vendor                 string             `xml:"vendor,attr"`
	JavaScriptResource     JavaScriptResource `xml:"JavaScriptResource"`
	TrackingEvents         TrackingEvents     `xml:"TrackingEvents"`
	VerificationParameters CData              `xml:"VerificationParameters"`
}

type JavaScriptResource struct {
	APIFramework    string `xml:"apiFramework,attr"`
	BrowserOptional bool   `xml:"browserOptional,attr"`
	URL             string `xml:",cdata"`
}

type TrackingEvents struct {
	Tracking []Tracking `xml:"Tracking"`
}

type Tracking struct {
	Event string `xml:"event,attr"`
	URL   string `xml:",cdata"`
}

type Creatives struct {
	Creative []Creative `xml:"Creative"`
}

type Creative struct {
	ID     string `xml:"id,attr,omitempty"`
	AdID   string `xml:"adId,attr,omitempty"`
	Linear Linear `xml:"Linear"`
}

type Linear struct {
	Duration       string         `xml:"Duration,omitempty"`
	MediaFiles     *MediaFiles    `xml:"MediaFiles"`
	TrackingEvents TrackingEvents `xml:"TrackingEvents"`
	VideoClicks    *VideoClicks   `xml:"VideoClicks"`
}

type MediaFiles struct {
	MediaFile []MediaFile `xml:"MediaFile"`
}

type MediaFile struct {
	Delivery string `xml:"delivery,attr"`
	Type     string `xml:"type,attr"`
	Width    int    `xml:"width,attr"`
	Height   int    `xml:"height,attr"`
	Codec    string `xml:"codec,attr"`
	Bitrate  int    `xml:"bitrate,attr"`
	URL      string `xml:",cdata"`
}

type VideoClicks struct {
	ClickThrough  Click `xml:"ClickThrough"`
	ClickTracking Click `xml:"ClickTracking"`
}

type Click struct {
	ID  string `xml:"id,attr,omitempty"`
	URL string `xml:",cdata"`
}

// Parse decodes a VAST document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "vast: parse document")
	}
	return &doc, nil
}

// Render encodes doc with two-space indentation and an XML declaration.
func Render(doc *Document) (string, error) {
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "vast: render document")
	}
	return xml.Header + string(out), nil
}
