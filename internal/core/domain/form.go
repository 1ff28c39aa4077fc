package domain

import (
	"errors"
	"time"
)

// CreativeType selects which media pipeline and creative payload shape is
// used when publishing an ad.
type CreativeType string

const (
	CreativeImage CreativeType = "image"
	CreativeVideo CreativeType = "video"
)

// Gender restricts ad delivery. GenderAll omits the restriction entirely so
// the platform default (unrestricted) applies.
type Gender string

const (
	GenderAll    Gender = "all"
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Goal is the campaign goal selected in the wizard. It maps onto the
// platform's objective codes via Objective.
type Goal string

const (
	GoalCoupon Goal = "coupon"
	GoalUpdate Goal = "update"
	GoalEvent  Goal = "event"
)

// Objective returns the platform objective code for the goal. Unknown goals
// fall back to traffic, matching the default the publisher has always used.
func (g Goal) Objective() string {
	switch g {
	case GoalCoupon:
		return "OUTCOME_SALES"
	case GoalUpdate:
		return "OUTCOME_AWARENESS"
	case GoalEvent:
		return "OUTCOME_ENGAGEMENT"
	default:
		return "OUTCOME_TRAFFIC"
	}
}

// ChannelSet holds the delivery channels picked in the first wizard step. At
// least one channel must remain selected at all times.
type ChannelSet struct {
	Facebook  bool `json:"facebook"`
	Instagram bool `json:"instagram"`
}

// Empty reports whether no channel is selected.
func (c ChannelSet) Empty() bool { return !c.Facebook && !c.Instagram }

// Platform renders the channel set as a display label.
func (c ChannelSet) Platform() string {
	switch {
	case c.Facebook && c.Instagram:
		return "Both"
	case c.Instagram:
		return "Instagram"
	default:
		return "Facebook"
	}
}

// Location is a geo target picked on the map widget. ID is opaque and unique
// within a single targeting set; uniqueness is by address.
type Location struct {
	ID        string  `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CampaignDetail is the second wizard step: the creative media plus naming
// and goal. Media carries the base64 data URL produced by EncodeMedia.
type CampaignDetail struct {
	Media       string `json:"media"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Goal        Goal   `json:"goal" validate:"oneof=coupon update event"`
}

// TargetAudience is the third wizard step. LocationRangeKM is the radius in
// kilometers shared by every custom location entry.
type TargetAudience struct {
	Gender          Gender     `json:"gender" validate:"oneof=all male female"`
	MinAge          int        `json:"minAge" validate:"gte=13,lte=100"`
	MaxAge          int        `json:"maxAge" validate:"gte=13,lte=100,gtefield=MinAge"`
	Locations       []Location `json:"locations"`
	LocationRangeKM int        `json:"locationRange" validate:"gte=0,lte=100"`
}

// Budget is the fourth wizard step. MinimumBudget is the daily spend in major
// currency units; it is converted to minor units before transmission.
type Budget struct {
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	MinimumBudget int64      `json:"minimumBudget" validate:"gt=0"`
}

// Payment is the final wizard step. It never leaves this system; the selected
// card is stored with the form snapshot only.
type Payment struct {
	SelectedCard string `json:"selectedCard"`
}

// CampaignFormData is the accumulated wizard state, submitted once when the
// operator finishes the last step.
type CampaignFormData struct {
	Channel        ChannelSet     `json:"channel"`
	Type           CreativeType   `json:"type" validate:"oneof=image video"`
	CampaignDetail CampaignDetail `json:"campaignDetail"`
	TargetAudience TargetAudience `json:"targetAudience"`
	Budget         Budget         `json:"budget"`
	Payment        Payment        `json:"payment"`
}

// Validate checks the cross-field rules the struct tags cannot express.
func (f CampaignFormData) Validate() error {
	if f.Channel.Empty() {
		return errors.New("at least one channel must be selected")
	}
	if f.CampaignDetail.Media == "" {
		return errors.New("campaign media is required")
	}
	if f.Budget.StartDate != nil && f.Budget.EndDate != nil && f.Budget.EndDate.Before(*f.Budget.StartDate) {
		return errors.New("end date must not be before start date")
	}
	return nil
}

// Submission is one publish request: a finalized form snapshot plus the
// optional identifiers that switch the orchestrator into find-or-create mode.
type Submission struct {
	Form               CampaignFormData `json:"formData"`
	ExistingCampaignID string           `json:"existingCampaignId,omitempty"`
	ExistingAdSetID    string           `json:"existingAdSetId,omitempty"`
}
