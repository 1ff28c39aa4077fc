package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validForm() CampaignFormData {
	return CampaignFormData{
		Channel: ChannelSet{Facebook: true},
		Type:    CreativeImage,
		CampaignDetail: CampaignDetail{
			Media: "data:image/jpeg;base64,AAAA",
			Name:  "Summer Sale",
			Goal:  GoalCoupon,
		},
		TargetAudience: TargetAudience{
			Gender:          GenderAll,
			MinAge:          18,
			MaxAge:          65,
			LocationRangeKM: 20,
		},
		Budget:  Budget{MinimumBudget: 500},
		Payment: Payment{SelectedCard: "visa-156"},
	}
}

func TestValidateRejectsEmptyChannelSet(t *testing.T) {
	form := validForm()
	form.Channel = ChannelSet{}
	require.Error(t, form.Validate())
}

func TestValidateRejectsEndBeforeStart(t *testing.T) {
	form := validForm()
	form.Budget.StartDate = date(2024, time.August, 5)
	form.Budget.EndDate = date(2024, time.August, 1)
	require.Error(t, form.Validate())
}

func TestPlatformLabel(t *testing.T) {
	require.Equal(t, "Facebook", ChannelSet{Facebook: true}.Platform())
	require.Equal(t, "Instagram", ChannelSet{Instagram: true}.Platform())
	require.Equal(t, "Both", ChannelSet{Facebook: true, Instagram: true}.Platform())
}

func TestGoalObjectiveMapping(t *testing.T) {
	require.Equal(t, "OUTCOME_SALES", GoalCoupon.Objective())
	require.Equal(t, "OUTCOME_AWARENESS", GoalUpdate.Objective())
	require.Equal(t, "OUTCOME_ENGAGEMENT", GoalEvent.Objective())
	require.Equal(t, "OUTCOME_TRAFFIC", Goal("unknown").Objective())
}

func TestSnapshotReplacesMediaAndKeepsIdentity(t *testing.T) {
	form := validForm()
	form.Budget.StartDate = date(2024, time.August, 1)
	form.Budget.EndDate = date(2024, time.August, 3)

	snap := form.Snapshot()
	require.Equal(t, MediaPlaceholder, snap.CampaignDetail.Media)
	require.Equal(t, int64(1500), snap.TotalBudget)
	require.Equal(t, "Facebook", snap.Platform)
	// the source form is untouched
	require.NotEqual(t, MediaPlaceholder, form.CampaignDetail.Media)
}

func TestSnapshotRoundTripThroughJSON(t *testing.T) {
	form := validForm()
	form.Budget.StartDate = date(2024, time.August, 1)
	form.Budget.EndDate = date(2024, time.August, 3)
	snap := form.Snapshot()

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var restored FormSnapshot
	require.NoError(t, json.Unmarshal(raw, &restored))
	require.Equal(t, snap.CampaignDetail.Name, restored.CampaignDetail.Name)
	require.Equal(t, snap.Type, restored.Type)
	require.Equal(t, snap.TotalBudget, restored.TotalBudget)
	require.True(t, snap.Budget.StartDate.Equal(*restored.Budget.StartDate))
	require.True(t, snap.Budget.EndDate.Equal(*restored.Budget.EndDate))
}
