package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// MirrorRepository persists the local mirror of the remote entity graph. All
// records are keyed by the remote platform's identifiers so the two systems'
// keys stay aligned. Writes happen only after the corresponding remote
// creation call has succeeded; the mirror must never show an entity that
// does not exist remotely.
type MirrorRepository interface {
	// SaveCampaign writes a campaign record with merge semantics: fields
	// absent from this write are left untouched on an existing record.
	SaveCampaign(ctx context.Context, rec domain.CampaignRecord) error
	// SaveAdSet writes an ad set record exactly once per ad set lifetime.
	// Repeated writes for the same id are ignored.
	SaveAdSet(ctx context.Context, rec domain.AdSetRecord) error
	// SaveAd writes an ad record for every successful ad creation.
	SaveAd(ctx context.Context, rec domain.AdRecord) error

	// ListCampaigns returns all mirrored campaigns, newest first.
	ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error)
	// ListPromotions returns one row per mirrored ad set with its parent
	// campaign and creative count, newest first.
	ListPromotions(ctx context.Context) ([]domain.Promotion, error)
	// ListAds returns the ads under a campaign and ad set, newest first.
	ListAds(ctx context.Context, campaignID, adSetID string) ([]domain.AdRecord, error)
}
