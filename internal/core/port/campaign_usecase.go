package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the campaign
// publisher. This interface is the primary port into the application domain.
type CampaignUseCase interface {
	// Publish walks one submission through the entity-creation sequence
	// (campaign, ad set, creative, ad) and mirrors the result locally. It
	// returns all three ids on success. Any stage failure aborts the whole
	// submission; already-created remote entities are not rolled back.
	Publish(ctx context.Context, sub domain.Submission) (*PublishResult, error)

	// ListCampaigns returns the mirrored campaigns, newest first.
	ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error)
	// ListPromotions returns the mirrored ad sets with creative counts.
	ListPromotions(ctx context.Context) ([]domain.Promotion, error)
	// ListAds returns the mirrored ads under a campaign and ad set.
	ListAds(ctx context.Context, campaignID, adSetID string) ([]domain.AdRecord, error)

	// Insights fetches the campaign's recent performance from the platform.
	// It returns nil when the campaign has no stats for the period.
	Insights(ctx context.Context, campaignID string) (*Insights, error)
	// Pages lists the pages available to publish on behalf of.
	Pages(ctx context.Context) ([]Page, error)
}

// PublishResult carries the identifiers of everything a successful
// submission created or attached to. There is no partial-success shape.
type PublishResult struct {
	CampaignID string `json:"campaignId"`
	AdSetID    string `json:"adSetId"`
	AdID       string `json:"adId"`
}
