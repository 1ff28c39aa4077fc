package usecase

import (
	"fmt"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Platform gender codes. Unrestricted delivery omits the field entirely.
const (
	genderCodeMale   = 1
	genderCodeFemale = 2
)

const (
	billingEvent     = "IMPRESSIONS"
	optimizationGoal = "REACH"
	bidStrategy      = "LOWEST_COST_WITHOUT_CAP"
	distanceUnit     = "kilometer"
	callToActionType = "LEARN_MORE"

	// fallbackCountry is the country-level geo target used when the
	// operator picked no locations. This is a policy fallback, not a
	// platform requirement: the platform rejects an empty geo spec, so an
	// empty location list degrades to country targeting instead of being
	// dropped.
	fallbackCountry = "US"

	// minStartLead is the floor between "now" and the transmitted start
	// time. The platform rejects start times too close to now.
	minStartLead = 10 * time.Minute
)

func buildCampaignRequest(form domain.CampaignFormData) port.CampaignCreateReq {
	return port.CampaignCreateReq{
		Name:                form.CampaignDetail.Name,
		Objective:           form.CampaignDetail.Goal.Objective(),
		Status:              domain.StatusPaused,
		SpecialAdCategories: []string{},
	}
}

func buildTargeting(a domain.TargetAudience) port.Targeting {
	t := port.Targeting{
		AgeMin: a.MinAge,
		AgeMax: a.MaxAge,
	}
	switch a.Gender {
	case domain.GenderMale:
		t.Genders = []int{genderCodeMale}
	case domain.GenderFemale:
		t.Genders = []int{genderCodeFemale}
	}
	if len(a.Locations) == 0 {
		t.GeoLocations.Countries = []string{fallbackCountry}
		return t
	}
	t.GeoLocations.CustomLocations = make([]port.CustomLocation, 0, len(a.Locations))
	for _, loc := range a.Locations {
		t.GeoLocations.CustomLocations = append(t.GeoLocations.CustomLocations, port.CustomLocation{
			Latitude:     loc.Latitude,
			Longitude:    loc.Longitude,
			Radius:       a.LocationRangeKM,
			DistanceUnit: distanceUnit,
		})
	}
	return t
}

// buildSchedule maps the budget dates onto transmitted times. The start is
// clamped to at least now+minStartLead; the end is stretched to the last
// instant of its calendar day so a same-day end still covers the full day.
func buildSchedule(b domain.Budget, now time.Time) (start, end *time.Time) {
	if b.StartDate != nil {
		s := *b.StartDate
		if floor := now.Add(minStartLead); s.Before(floor) {
			s = floor
		}
		start = &s
	}
	if b.EndDate != nil {
		e := domain.EndOfDay(*b.EndDate)
		end = &e
	}
	return start, end
}

func buildAdSetRequest(form domain.CampaignFormData, campaignID string, now time.Time) port.AdSetCreateReq {
	start, end := buildSchedule(form.Budget, now)
	return port.AdSetCreateReq{
		Name:             fmt.Sprintf("%s Ad Set", form.CampaignDetail.Name),
		CampaignID:       campaignID,
		Status:           domain.StatusPaused,
		BillingEvent:     billingEvent,
		OptimizationGoal: optimizationGoal,
		BidStrategy:      bidStrategy,
		DailyBudget:      form.Budget.MinimumBudget * 100, // minor currency units
		Targeting:        buildTargeting(form.TargetAudience),
		StartTime:        start,
		EndTime:          end,
	}
}

func callToAction(link string) port.CallToAction {
	cta := port.CallToAction{Type: callToActionType}
	cta.Value.Link = link
	return cta
}

func buildImageCreative(form domain.CampaignFormData, pageID, imageHash, link string) port.CreativeCreateReq {
	return port.CreativeCreateReq{
		Name: fmt.Sprintf("%s Creative", form.CampaignDetail.Name),
		ObjectStorySpec: port.ObjectStorySpec{
			PageID: pageID,
			LinkData: &port.LinkData{
				ImageHash:    imageHash,
				Link:         link,
				Message:      form.CampaignDetail.Description,
				CallToAction: callToAction(link),
			},
		},
	}
}

func buildVideoCreative(form domain.CampaignFormData, pageID, videoID, thumbnailURL, link string) port.CreativeCreateReq {
	return port.CreativeCreateReq{
		Name: fmt.Sprintf("%s Creative", form.CampaignDetail.Name),
		ObjectStorySpec: port.ObjectStorySpec{
			PageID: pageID,
			VideoData: &port.VideoData{
				VideoID:      videoID,
				ImageURL:     thumbnailURL,
				Message:      form.CampaignDetail.Description,
				CallToAction: callToAction(link),
			},
		},
	}
}

func buildAdRequest(form domain.CampaignFormData, adSetID, creativeID string) port.AdCreateReq {
	return port.AdCreateReq{
		Name:       form.CampaignDetail.Name,
		AdSetID:    adSetID,
		CreativeID: creativeID,
		Status:     domain.StatusPaused,
	}
}
