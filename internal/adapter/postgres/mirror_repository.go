package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// MirrorRepository implements port.MirrorRepository using pgxpool. Rows are
// keyed by the remote platform's identifiers; the campaign/adset/ad
// hierarchy mirrors the remote entity graph.
type MirrorRepository struct {
	pool *pgxpool.Pool
}

// NewMirrorRepository returns a new repository instance.
func NewMirrorRepository(pool *pgxpool.Pool) *MirrorRepository {
	return &MirrorRepository{pool: pool}
}

// SaveCampaign upserts a campaign record with merge semantics: empty fields
// in this write never clobber populated fields on an existing row, so
// concurrent partial updates degrade to last-write-wins per field.
func (r *MirrorRepository) SaveCampaign(ctx context.Context, rec domain.CampaignRecord) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO campaigns (id, name, objective, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE SET
            name      = COALESCE(NULLIF(EXCLUDED.name, ''), campaigns.name),
            objective = COALESCE(NULLIF(EXCLUDED.objective, ''), campaigns.objective)`,
		rec.ID, rec.Name, rec.Objective, rec.CreatedAt)
	return err
}

// SaveAdSet writes an ad set record once. A conflicting id means the
// first-ad transition already happened, so the write is a no-op.
func (r *MirrorRepository) SaveAdSet(ctx context.Context, rec domain.AdSetRecord) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO adsets (id, campaign_id, name, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING`,
		rec.ID, rec.CampaignID, rec.Name, rec.CreatedAt)
	return err
}

// SaveAd writes an ad record with its serialized form snapshot.
func (r *MirrorRepository) SaveAd(ctx context.Context, rec domain.AdRecord) error {
	snapshot, err := json.Marshal(rec.Snapshot)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO ads (id, adset_id, campaign_id, name, status, creative_type, snapshot, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (id) DO NOTHING`,
		rec.ID, rec.AdSetID, rec.CampaignID, rec.Name, rec.Status, string(rec.CreativeType), snapshot, rec.CreatedAt)
	return err
}

// ListCampaigns returns all mirrored campaigns, newest first.
func (r *MirrorRepository) ListCampaigns(ctx context.Context) ([]domain.CampaignRecord, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, objective, created_at
        FROM campaigns
        ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRecord, error) {
		var rec domain.CampaignRecord
		err := row.Scan(&rec.ID, &rec.Name, &rec.Objective, &rec.CreatedAt)
		return rec, err
	})
}

// ListPromotions returns one row per ad set with its parent campaign name
// and the number of ads inside, newest first.
func (r *MirrorRepository) ListPromotions(ctx context.Context) ([]domain.Promotion, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT s.campaign_id, c.name, s.id, s.name, s.created_at, count(a.id)
        FROM adsets s
        JOIN campaigns c ON c.id = s.campaign_id
        LEFT JOIN ads a ON a.adset_id = s.id
        GROUP BY s.campaign_id, c.name, s.id, s.name, s.created_at
        ORDER BY s.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Promotion, error) {
		var p domain.Promotion
		err := row.Scan(&p.CampaignID, &p.CampaignName, &p.AdSetID, &p.PromotionName, &p.CreatedAt, &p.CreativeCount)
		return p, err
	})
}

// ListAds returns the ads under a campaign and ad set, newest first.
func (r *MirrorRepository) ListAds(ctx context.Context, campaignID, adSetID string) ([]domain.AdRecord, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, adset_id, campaign_id, name, status, creative_type, snapshot, created_at
        FROM ads
        WHERE campaign_id = $1 AND adset_id = $2
        ORDER BY created_at DESC`,
		campaignID, adSetID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AdRecord, error) {
		var (
			rec          domain.AdRecord
			creativeType string
			snapshot     []byte
		)
		if err := row.Scan(&rec.ID, &rec.AdSetID, &rec.CampaignID, &rec.Name, &rec.Status, &creativeType, &snapshot, &rec.CreatedAt); err != nil {
			return rec, err
		}
		rec.CreativeType = domain.CreativeType(creativeType)
		if err := json.Unmarshal(snapshot, &rec.Snapshot); err != nil {
			return rec, err
		}
		return rec, nil
	})
}
