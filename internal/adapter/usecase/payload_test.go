package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
)

func audience(gender domain.Gender, locations ...domain.Location) domain.TargetAudience {
	return domain.TargetAudience{
		Gender:          gender,
		MinAge:          18,
		MaxAge:          65,
		Locations:       locations,
		LocationRangeKM: 20,
	}
}

func TestBuildTargetingGender(t *testing.T) {
	require.Nil(t, buildTargeting(audience(domain.GenderAll)).Genders)
	require.Equal(t, []int{1}, buildTargeting(audience(domain.GenderMale)).Genders)
	require.Equal(t, []int{2}, buildTargeting(audience(domain.GenderFemale)).Genders)
}

func TestBuildTargetingCustomLocations(t *testing.T) {
	loc := domain.Location{ID: "l1", Address: "Main St", Latitude: 40.7, Longitude: -74.0}
	got := buildTargeting(audience(domain.GenderAll, loc))

	require.Empty(t, got.GeoLocations.Countries)
	require.Len(t, got.GeoLocations.CustomLocations, 1)
	entry := got.GeoLocations.CustomLocations[0]
	require.Equal(t, 40.7, entry.Latitude)
	require.Equal(t, -74.0, entry.Longitude)
	require.Equal(t, 20, entry.Radius)
	require.Equal(t, "kilometer", entry.DistanceUnit)
}

func TestBuildTargetingCountryFallback(t *testing.T) {
	got := buildTargeting(audience(domain.GenderAll))
	require.Equal(t, []string{"US"}, got.GeoLocations.Countries)
	require.Nil(t, got.GeoLocations.CustomLocations)
}

func TestBuildScheduleClampsEarlyStart(t *testing.T) {
	now := time.Date(2024, time.August, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	start, _ := buildSchedule(domain.Budget{StartDate: &past}, now)
	require.NotNil(t, start)
	require.Equal(t, now.Add(10*time.Minute), *start)
}

func TestBuildScheduleKeepsFutureStart(t *testing.T) {
	now := time.Date(2024, time.August, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)

	start, _ := buildSchedule(domain.Budget{StartDate: &future}, now)
	require.NotNil(t, start)
	require.Equal(t, future, *start)
}

func TestBuildScheduleEndCoversFullDay(t *testing.T) {
	now := time.Date(2024, time.August, 1, 12, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.August, 3, 9, 30, 0, 0, time.UTC)

	_, got := buildSchedule(domain.Budget{EndDate: &end}, now)
	require.NotNil(t, got)
	require.Equal(t, time.Date(2024, time.August, 3, 23, 59, 59, 999_000_000, time.UTC), *got)
}

func TestBuildScheduleOmitsAbsentDates(t *testing.T) {
	start, end := buildSchedule(domain.Budget{}, time.Now())
	require.Nil(t, start)
	require.Nil(t, end)
}

func TestBuildAdSetRequest(t *testing.T) {
	form := imageForm()
	now := time.Date(2024, time.August, 1, 12, 0, 0, 0, time.UTC)

	req := buildAdSetRequest(form, "camp-1", now)
	require.Equal(t, "Summer Sale Ad Set", req.Name)
	require.Equal(t, "camp-1", req.CampaignID)
	require.Equal(t, domain.StatusPaused, req.Status)
	require.Equal(t, "IMPRESSIONS", req.BillingEvent)
	require.Equal(t, "REACH", req.OptimizationGoal)
	require.Equal(t, "LOWEST_COST_WITHOUT_CAP", req.BidStrategy)
	// 500 major units transmitted as minor currency units
	require.Equal(t, int64(50000), req.DailyBudget)
}

func TestBuildCreativeVariants(t *testing.T) {
	form := imageForm()

	img := buildImageCreative(form, "page-1", "hash-1", "https://example.com")
	require.NotNil(t, img.ObjectStorySpec.LinkData)
	require.Nil(t, img.ObjectStorySpec.VideoData)
	require.Equal(t, "hash-1", img.ObjectStorySpec.LinkData.ImageHash)
	require.Equal(t, "LEARN_MORE", img.ObjectStorySpec.LinkData.CallToAction.Type)
	require.Equal(t, "https://example.com", img.ObjectStorySpec.LinkData.CallToAction.Value.Link)

	vid := buildVideoCreative(form, "page-1", "vid-1", "https://cdn/thumb.jpg", "https://example.com")
	require.Nil(t, vid.ObjectStorySpec.LinkData)
	require.NotNil(t, vid.ObjectStorySpec.VideoData)
	require.Equal(t, "vid-1", vid.ObjectStorySpec.VideoData.VideoID)
	require.Equal(t, "https://cdn/thumb.jpg", vid.ObjectStorySpec.VideoData.ImageURL)
}

func TestBuildCampaignRequest(t *testing.T) {
	req := buildCampaignRequest(imageForm())
	require.Equal(t, "Summer Sale", req.Name)
	require.Equal(t, "OUTCOME_SALES", req.Objective)
	require.Equal(t, domain.StatusPaused, req.Status)
	require.NotNil(t, req.SpecialAdCategories)
	require.Empty(t, req.SpecialAdCategories)
}
