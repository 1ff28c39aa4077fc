package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
)

// Seed inserts demo mirror data so the listing pages have something to show
// without hitting the real advertising platform.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	goals := []domain.Goal{domain.GoalCoupon, domain.GoalUpdate, domain.GoalEvent}

	for i := 1; i <= 3; i++ {
		campaignID := fmt.Sprintf("demo-campaign-%d", i)
		name := fmt.Sprintf("Demo Campaign %d", i)
		goal := goals[(i-1)%len(goals)]
		createdAt := time.Now().UTC().AddDate(0, 0, -i)

		_, err := pool.Exec(ctx, `INSERT INTO campaigns (id, name, objective, created_at)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
			campaignID, name, goal.Objective(), createdAt)
		if err != nil {
			return err
		}

		adSetID := fmt.Sprintf("demo-adset-%d", i)
		_, err = pool.Exec(ctx, `INSERT INTO adsets (id, campaign_id, name, created_at)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
			adSetID, campaignID, fmt.Sprintf("%s Ad Set", name), createdAt)
		if err != nil {
			return err
		}

		for j := 1; j <= 2; j++ {
			start := createdAt.AddDate(0, 0, 1)
			end := createdAt.AddDate(0, 0, 8)
			form := domain.CampaignFormData{
				Channel: domain.ChannelSet{Facebook: true, Instagram: j%2 == 0},
				Type:    domain.CreativeImage,
				CampaignDetail: domain.CampaignDetail{
					Media:       domain.MediaPlaceholder,
					Name:        name,
					Description: "Seeded demo ad",
					Goal:        goal,
				},
				TargetAudience: domain.TargetAudience{
					Gender:          domain.GenderAll,
					MinAge:          18,
					MaxAge:          65,
					LocationRangeKM: 20,
				},
				Budget:  domain.Budget{StartDate: &start, EndDate: &end, MinimumBudget: 500},
				Payment: domain.Payment{SelectedCard: "visa-156"},
			}
			snapshot, err := json.Marshal(form.Snapshot())
			if err != nil {
				return err
			}
			_, err = pool.Exec(ctx, `INSERT INTO ads
(id, adset_id, campaign_id, name, status, creative_type, snapshot, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING`,
				"demo-ad-"+uuid.NewString(), adSetID, campaignID, name,
				domain.StatusPaused, string(domain.CreativeImage), snapshot,
				createdAt.Add(time.Duration(j)*time.Hour))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
