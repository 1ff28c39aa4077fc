package domain

import "time"

// StatusPaused is the lifecycle status every entity is created with. The
// publisher never auto-activates spend; activation is an explicit follow-on
// action outside this system.
const StatusPaused = "PAUSED"

// FormSnapshot is the serialized form stored with each ad for audit and
// resubmission. The media payload is replaced with a placeholder token and
// the derived total budget is materialized; dates keep their absolute
// RFC 3339 encoding through JSON marshalling.
type FormSnapshot struct {
	CampaignFormData
	TotalBudget int64  `json:"totalBudget"`
	Platform    string `json:"platform"`
}

// Snapshot builds the persistable snapshot of the form.
func (f CampaignFormData) Snapshot() FormSnapshot {
	s := FormSnapshot{
		CampaignFormData: f,
		TotalBudget:      f.Budget.TotalBudget(),
		Platform:         f.Channel.Platform(),
	}
	s.CampaignDetail.Media = MediaPlaceholder
	return s
}

// CampaignRecord mirrors a remote campaign. ID is the platform-assigned
// campaign id and is treated as an immutable key by both systems.
type CampaignRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Objective string    `json:"objective"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdSetRecord mirrors a remote ad set under its campaign. It is written
// exactly once, when the first ad targeting the ad set is created.
type AdSetRecord struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AdRecord mirrors a published ad under its campaign and ad set.
type AdRecord struct {
	ID           string       `json:"id"`
	AdSetID      string       `json:"adSetId"`
	CampaignID   string       `json:"campaignId"`
	Name         string       `json:"name"`
	Status       string       `json:"status"`
	CreativeType CreativeType `json:"type"`
	Snapshot     FormSnapshot `json:"snapshot"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Promotion is the ad-set rollup shown on the promotions listing: one row
// per ad set with its parent campaign and the number of creatives inside.
type Promotion struct {
	CampaignID    string    `json:"campaignId"`
	CampaignName  string    `json:"campaignName"`
	AdSetID       string    `json:"adSetId"`
	PromotionName string    `json:"promotionName"`
	CreatedAt     time.Time `json:"createdAt"`
	CreativeCount int       `json:"creativeCount"`
}
