package dsp

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamtraffic/internal/core/domain"
)

var upload = domain.UploadRequest{
	VideoURL:     "https://cdn.example.test/v.mp4",
	VastURL:      "https://tags.example.test/inline/1",
	Duration:     30,
	Width:        1920,
	Height:       1080,
	Placement:    domain.PlacementSTV,
	CampaignName: "Spring",
}

func TestDefaults(t *testing.T) {
	cases := []struct {
		name       string
		idPattern  string
		placements []domain.PlacementType
		poll       domain.AuditStatus
	}{
		{"amazon", `^amzn-cr-[0-9a-f]{12}$`, []domain.PlacementType{domain.PlacementOLV, domain.PlacementSTV}, domain.AuditUnderReview},
		{"thetradedesk", `^ttd-cr-[0-9a-f]{10}$`, []domain.PlacementType{domain.PlacementOLV, domain.PlacementSTV}, domain.AuditUnderReview},
		{"dv360", `^dv360-cr-[0-9a-f]{10}$`, []domain.PlacementType{domain.PlacementOLV, domain.PlacementSTV}, domain.AuditUnderReview},
		{"stackadapt", `^sa-cr-[0-9a-f]{8}$`, []domain.PlacementType{domain.PlacementOLV}, domain.AuditPending},
		{"adelphic", `^adel-cr-[0-9a-f]{8}$`, []domain.PlacementType{domain.PlacementOLV}, domain.AuditPending},
	}
	adapters := Defaults()
	require.Len(t, adapters, len(cases))

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, ok := adapters[tc.name]
			require.True(t, ok)
			assert.Equal(t, tc.name, a.Name())
			assert.Equal(t, tc.placements, a.SupportedPlacements())

			res, err := a.UploadCreative(context.Background(), upload)
			require.NoError(t, err)
			assert.Equal(t, tc.name, res.DSP)
			assert.Regexp(t, regexp.MustCompile(tc.idPattern), res.CreativeID)
			assert.Equal(t, domain.AuditPending, res.AuditStatus)
			assert.Equal(t, upload.VastURL, res.VastURL)

			_, err = json.Marshal(res.RequestPayload)
			require.NoError(t, err)
			_, err = json.Marshal(res.ResponsePayload)
			require.NoError(t, err)

			status, err := a.CheckAuditStatus(context.Background(), res.CreativeID)
			require.NoError(t, err)
			assert.Equal(t, tc.poll, status)
		})
	}
}

func TestAmazon_CoercesUnsupportedPlacement(t *testing.T) {
	a := New(Amazon())
	req := upload
	req.Placement = domain.PlacementPreroll

	res, err := a.UploadCreative(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.PlacementOLV, res.Placement)
	assert.Equal(t, "OLV", res.RequestPayload["placementType"])
}

func TestChallenger_PassesPlacementThrough(t *testing.T) {
	res, err := New(StackAdapt()).UploadCreative(context.Background(), upload)
	require.NoError(t, err)
	assert.Equal(t, domain.PlacementSTV, res.Placement)
	assert.Equal(t, true, res.RequestPayload["contextualTargeting"])
}

func TestUpload_DistinctIDs(t *testing.T) {
	a := New(TheTradeDesk())
	first, err := a.UploadCreative(context.Background(), upload)
	require.NoError(t, err)
	second, err := a.UploadCreative(context.Background(), upload)
	require.NoError(t, err)
	assert.NotEqual(t, first.CreativeID, second.CreativeID)
	assert.NotEqual(t, first.AssetID, first.CreativeID)
	assert.Equal(t, "Spring - STV", first.RequestPayload["CreativeName"])
}

func TestUpload_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(DV360()).UploadCreative(ctx, upload)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSupportedPlacements_IsCopy(t *testing.T) {
	a := New(Amazon())
	p := a.SupportedPlacements()
	p[0] = domain.PlacementPreroll
	assert.Equal(t, domain.PlacementOLV, a.SupportedPlacements()[0])
}
