package dsp

import (
	"fmt"
	"strings"

	"dreamtraffic/internal/core/domain"
)

var amazonCertifiedSupply = []string{"magnite", "pubmatic", "index_exchange"}

var amazonCodecs = map[domain.PlacementType]string{
	domain.PlacementOLV: "H.264",
	domain.PlacementSTV: "H.264 High Profile",
}

// Amazon models Amazon DSP with its Certified Supply Exchange partners and
// the managed-service fee schedule.
func Amazon() Profile {
	return Profile{
		Name:            "amazon",
		IDPrefix:        "amzn",
		IDLength:        12,
		Placements:      []domain.PlacementType{domain.PlacementOLV, domain.PlacementSTV},
		CoercePlacement: true,
		PollStatus:      domain.AuditUnderReview,
		Request: func(req domain.UploadRequest, placement domain.PlacementType, _ string) map[string]any {
			return map[string]any{
				"advertiserId":  "AMZN_ADV_DEMO",
				"creativeType":  "VIDEO",
				"placementType": strings.ToUpper(string(placement)),
				"videoAsset": map[string]any{
					"url":        req.VideoURL,
					"vastTagUrl": req.VastURL,
					"duration":   req.Duration,
					"width":      req.Width,
					"height":     req.Height,
					"codec":      amazonCodecs[placement],
				},
				"campaignName":            req.CampaignName,
				"certifiedSupplyExchange": amazonCertifiedSupply,
				"feeSchedule": map[string]any{
					"type":           "managed_service",
					"rate":           0.12,
					"effective_date": "2025-06-01",
				},
			}
		},
		Response: func(assetID, creativeID string, placement domain.PlacementType) map[string]any {
			return map[string]any{
				"assetId":                 assetID,
				"creativeId":              creativeID,
				"auditStatus":             string(domain.AuditPending),
				"placementType":           strings.ToUpper(string(placement)),
				"estimatedReviewTime":     "24-48 hours",
				"certifiedSupplyPartners": amazonCertifiedSupply,
				"_simulated":              true,
			}
		},
	}
}

func TheTradeDesk() Profile {
	return Profile{
		Name:       "thetradedesk",
		IDPrefix:   "ttd",
		IDLength:   10,
		Placements: []domain.PlacementType{domain.PlacementOLV, domain.PlacementSTV},
		PollStatus: domain.AuditUnderReview,
		Request: func(req domain.UploadRequest, placement domain.PlacementType, _ string) map[string]any {
			return map[string]any{
				"AdvertiserId": "TTD_ADV_DEMO",
				"CreativeName": displayName(req.CampaignName, placement),
				"VastTagUrl":   req.VastURL,
				"VideoAttributes": map[string]any{
					"Duration": req.Duration,
					"Width":    req.Width,
					"Height":   req.Height,
				},
				"Uid2Enabled":       true,
				"KokaiOptimization": true,
			}
		},
		Response: func(assetID, creativeID string, _ domain.PlacementType) map[string]any {
			return map[string]any{
				"CreativeId":  creativeID,
				"AssetId":     assetID,
				"AuditStatus": string(domain.AuditPending),
				"Uid2Ready":   true,
				"_simulated":  true,
			}
		},
	}
}

// DV360 models the two-step asset then creative upload of Display & Video 360.
func DV360() Profile {
	return Profile{
		Name:       "dv360",
		IDPrefix:   "dv360",
		IDLength:   10,
		Placements: []domain.PlacementType{domain.PlacementOLV, domain.PlacementSTV},
		PollStatus: domain.AuditUnderReview,
		Request: func(req domain.UploadRequest, placement domain.PlacementType, assetID string) map[string]any {
			return map[string]any{
				"advertiserId": "DV360_ADV_DEMO",
				"displayName":  displayName(req.CampaignName, placement),
				"entityStatus": "ENTITY_STATUS_ACTIVE",
				"creativeType": "CREATIVE_TYPE_VIDEO",
				"assets":       []map[string]any{{"asset": map[string]any{"mediaId": assetID}, "role": "ASSET_ROLE_MAIN"}},
				"vastTagUrl":   req.VastURL,
				"dimensions":   map[string]any{"widthPixels": req.Width, "heightPixels": req.Height},
			}
		},
		Response: func(assetID, creativeID string, _ domain.PlacementType) map[string]any {
			return map[string]any{
				"creativeId": creativeID,
				"assetId":    assetID,
				"approvalStatus": map[string]any{
					"status":       "APPROVAL_STATUS_PENDING_REVIEW",
					"googleReview": true,
				},
				"_simulated": true,
			}
		},
	}
}

func StackAdapt() Profile {
	return challenger("stackadapt", "sa", map[string]any{
		"contextualTargeting": true,
		"householdTargeting":  true,
	})
}

func Adelphic() Profile {
	return challenger("adelphic", "adel", map[string]any{
		"viantHouseholdId": true,
	})
}

// challenger builds the thinner profile shared by the OLV-only challenger DSPs.
func challenger(name, prefix string, targeting map[string]any) Profile {
	return Profile{
		Name:       name,
		IDPrefix:   prefix,
		IDLength:   8,
		Placements: []domain.PlacementType{domain.PlacementOLV},
		PollStatus: domain.AuditPending,
		Request: func(req domain.UploadRequest, _ domain.PlacementType, _ string) map[string]any {
			m := map[string]any{
				"campaignName": req.CampaignName,
				"vastTag":      req.VastURL,
				"_simulated":   true,
			}
			for k, v := range targeting {
				m[k] = v
			}
			return m
		},
		Response: func(_, creativeID string, _ domain.PlacementType) map[string]any {
			return map[string]any{
				"creativeId": creativeID,
				"status":     "pending_review",
				"_simulated": true,
			}
		},
	}
}

func displayName(campaign string, placement domain.PlacementType) string {
	return fmt.Sprintf("%s - %s", campaign, strings.ToUpper(string(placement)))
}
