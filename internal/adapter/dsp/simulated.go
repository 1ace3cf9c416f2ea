// Package dsp holds the demand-side platform integrations. The adapters
// simulate each platform's upload API: identifiers are random, payloads
// mirror the real request shapes and nothing leaves the process.
package dsp

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"dreamtraffic/internal/core/domain"
	"dreamtraffic/internal/core/port"
)

// Profile describes how a simulated DSP names its objects and what it
// reports back.
type Profile struct {
	Name       string
	IDPrefix   string
	IDLength   int
	Placements []domain.PlacementType
	// CoercePlacement replaces an unsupported placement with the first
	// supported one instead of passing it through.
	CoercePlacement bool
	// PollStatus is what CheckAuditStatus reports for any creative.
	PollStatus domain.AuditStatus
	Request    func(req domain.UploadRequest, placement domain.PlacementType, assetID string) map[string]any
	Response   func(assetID, creativeID string, placement domain.PlacementType) map[string]any
}

// Simulated is a port.DSPAdapter driven by a Profile.
type Simulated struct {
	p     Profile
	newID func() string
}

var _ port.DSPAdapter = (*Simulated)(nil)

func New(p Profile) *Simulated {
	return &Simulated{p: p, newID: hexID}
}

func hexID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (s *Simulated) Name() string { return s.p.Name }

func (s *Simulated) id(kind string) string {
	return s.p.IDPrefix + "-" + kind + "-" + s.newID()[:s.p.IDLength]
}

// UploadCreative registers the creative and reports it as pending review.
func (s *Simulated) UploadCreative(ctx context.Context, req domain.UploadRequest) (*domain.UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	placement := req.Placement
	if s.p.CoercePlacement && !slices.Contains(s.p.Placements, placement) {
		placement = s.p.Placements[0]
	}
	assetID := s.id("asset")
	creativeID := s.id("cr")

	return &domain.UploadResult{
		DSP:             s.p.Name,
		AssetID:         assetID,
		CreativeID:      creativeID,
		AuditStatus:     domain.AuditPending,
		Placement:       placement,
		VastURL:         req.VastURL,
		RequestPayload:  s.p.Request(req, placement, assetID),
		ResponsePayload: s.p.Response(assetID, creativeID, placement),
	}, nil
}

func (s *Simulated) CheckAuditStatus(ctx context.Context, _ string) (domain.AuditStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.p.PollStatus, nil
}

func (s *Simulated) SupportedPlacements() []domain.PlacementType {
	return slices.Clone(s.p.Placements)
}

// Registry indexes adapters by name.
func Registry(adapters ...port.DSPAdapter) map[string]port.DSPAdapter {
	m := make(map[string]port.DSPAdapter, len(adapters))
	for _, a := range adapters {
		m[a.Name()] = a
	}
	return m
}

// Defaults returns the five built-in simulated DSPs keyed by name.
func Defaults() map[string]port.DSPAdapter {
	return Registry(
		New(Amazon()),
		New(TheTradeDesk()),
		New(DV360()),
		New(StackAdapt()),
		New(Adelphic()),
	)
}
