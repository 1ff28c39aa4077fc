package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// CampaignUseCase assembles and publishes campaigns against the advertising
// platform and mirrors the created entity graph into the local store. It
// implements port.CampaignUseCase.
type CampaignUseCase struct {
	graph  port.GraphClient
	mirror port.MirrorRepository
	poller *videoPoller

	// pageID is the page creatives are published on behalf of; linkURL is
	// the destination every call to action points at.
	pageID  string
	linkURL string

	now func() time.Time
}

// NewCampaignUseCase creates the orchestrator with the provided outbound
// ports. pageID and linkURL come from the platform configuration.
func NewCampaignUseCase(graph port.GraphClient, mirror port.MirrorRepository, pageID, linkURL string) *CampaignUseCase {
	return &CampaignUseCase{
		graph:   graph,
		mirror:  mirror,
		poller:  newVideoPoller(graph),
		pageID:  pageID,
		linkURL: linkURL,
		now:     time.Now,
	}
}

// Publish runs the four creation stages in order, reusing the submission's
// existing ids where present:
//
//	campaign -> ad set -> creative -> ad
//
// Each stage transmits one creation request and must yield a non-empty id
// before the next stage runs. Any failure aborts the submission; no stage is
// retried and already-created remote entities are left in place. Mirror
// writes happen only after every remote call has succeeded.
func (u *CampaignUseCase) Publish(ctx context.Context, sub domain.Submission) (*port.PublishResult, error) {
	form := sub.Form
	if err := form.Validate(); err != nil {
		return nil, err
	}
	media, err := domain.DecodeMediaPayload(form.CampaignDetail.Media)
	if err != nil {
		return nil, err
	}

	campaignID := sub.ExistingCampaignID
	createdCampaign := false
	if campaignID == "" {
		campaignID, err = u.graph.CreateCampaign(ctx, buildCampaignRequest(form))
		if err != nil {
			return nil, err
		}
		if campaignID == "" {
			return nil, &domain.MissingIdentifierError{Entity: "campaign"}
		}
		createdCampaign = true
	}

	adSetID := sub.ExistingAdSetID
	if adSetID == "" {
		adSetID, err = u.graph.CreateAdSet(ctx, buildAdSetRequest(form, campaignID, u.now()))
		if err != nil {
			return nil, err
		}
		if adSetID == "" {
			return nil, &domain.MissingIdentifierError{Entity: "ad set"}
		}
	}

	creativeReq, err := u.assembleCreative(ctx, form, media)
	if err != nil {
		return nil, err
	}
	creativeID, err := u.graph.CreateCreative(ctx, creativeReq)
	if err != nil {
		return nil, err
	}
	if creativeID == "" {
		return nil, &domain.MissingIdentifierError{Entity: "creative"}
	}

	adID, err := u.graph.CreateAd(ctx, buildAdRequest(form, adSetID, creativeID))
	if err != nil {
		return nil, err
	}
	if adID == "" {
		return nil, &domain.MissingIdentifierError{Entity: "ad"}
	}

	if err = u.persist(ctx, sub, campaignID, adSetID, adID, createdCampaign); err != nil {
		return nil, fmt.Errorf("ad %s published but mirroring failed: %w", adID, err)
	}

	return &port.PublishResult{
		CampaignID: campaignID,
		AdSetID:    adSetID,
		AdID:       adID,
	}, nil
}

// assembleCreative runs the media pipeline for the form's creative type and
// returns the creation request for the resulting creative. For video this
// blocks on the readiness poll until a thumbnail exists or the poll times
// out.
func (u *CampaignUseCase) assembleCreative(ctx context.Context, form domain.CampaignFormData, media []byte) (port.CreativeCreateReq, error) {
	switch form.Type {
	case domain.CreativeVideo:
		videoID, err := u.graph.UploadVideo(ctx, uuid.NewString()+".mp4", media)
		if err != nil {
			return port.CreativeCreateReq{}, err
		}
		if videoID == "" {
			return port.CreativeCreateReq{}, &domain.MissingIdentifierError{Entity: "video"}
		}
		thumbnail, err := u.poller.WaitForThumbnail(ctx, videoID)
		if err != nil {
			return port.CreativeCreateReq{}, err
		}
		return buildVideoCreative(form, u.pageID, videoID, thumbnail, u.linkURL), nil
	default:
		hash, err := u.graph.UploadImage(ctx, uuid.NewString()+".jpg", media)
		if err != nil {
			return port.CreativeCreateReq{}, err
		}
		return buildImageCreative(form, u.pageID, hash, u.linkURL), nil
	}
}

// persist mirrors the submission's entity graph. The campaign record is
// merge-written only when the campaign was created by this submission; the
// ad set record is written only on the first-ad transition (no existing ad
// set id on entry); the ad record is written on every invocation.
func (u *CampaignUseCase) persist(ctx context.Context, sub domain.Submission, campaignID, adSetID, adID string, createdCampaign bool) error {
	now := u.now().UTC()
	form := sub.Form

	if createdCampaign {
		err := u.mirror.SaveCampaign(ctx, domain.CampaignRecord{
			ID:        campaignID,
			Name:      form.CampaignDetail.Name,
			Objective: form.CampaignDetail.Goal.Objective(),
			CreatedAt: now,
		})
		if err != nil {
			return err
		}
	}

	if sub.ExistingAdSetID == "" {
		err := u.mirror.SaveAdSet(ctx, domain.AdSetRecord{
			ID:         adSetID,
			CampaignID: campaignID,
			Name:       fmt.Sprintf("%s Ad Set", form.CampaignDetail.Name),
			CreatedAt:  now,
		})
		if err != nil {
			return err
		}
	}

	return u.mirror.SaveAd(ctx, domain.AdRecord{
		ID:           adID,
		AdSetID:      adSetID,
		CampaignID:   campaignID,
		Name:         form.CampaignDetail.Name,
		Status:       domain.StatusPaused,
		CreativeType: form.Type,
		Snapshot:     form.Snapshot(),
		CreatedAt:    now,
	})
}

// ListCampaigns returns the mirrored campaigns, newest first.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error) {
	return u.mirror.ListCampaigns(ctx)
}

// ListPromotions returns the mirrored ad sets with creative counts.
func (u *CampaignUseCase) ListPromotions(ctx context.Context) ([]domain.Promotion, error) {
	return u.mirror.ListPromotions(ctx)
}

// ListAds returns the mirrored ads under a campaign and ad set.
func (u *CampaignUseCase) ListAds(ctx context.Context, campaignID, adSetID string) ([]domain.AdRecord, error) {
	return u.mirror.ListAds(ctx, campaignID, adSetID)
}

// Insights passes through to the platform's insights endpoint.
func (u *CampaignUseCase) Insights(ctx context.Context, campaignID string) (*port.Insights, error) {
	return u.graph.CampaignInsights(ctx, campaignID)
}

// Pages passes through to the platform's page listing.
func (u *CampaignUseCase) Pages(ctx context.Context) ([]port.Page, error) {
	return u.graph.ListPages(ctx)
}
