package port

import (
	"context"
	"time"
)

// GraphClient is the outbound port to the advertising platform's HTTP API.
// Creation methods return the platform-assigned id on success. Failures wrap
// the platform's error body verbatim in a domain.CreationError.
type GraphClient interface {
	CreateCampaign(ctx context.Context, req CampaignCreateReq) (string, error)
	CreateAdSet(ctx context.Context, req AdSetCreateReq) (string, error)
	CreateCreative(ctx context.Context, req CreativeCreateReq) (string, error)
	CreateAd(ctx context.Context, req AdCreateReq) (string, error)

	// UploadImage uploads image bytes and returns the content hash addressing
	// the stored image. The hash is looked up by the given filename key
	// first, falling back to the first entry of the images collection.
	UploadImage(ctx context.Context, filename string, data []byte) (string, error)
	// UploadVideo uploads video bytes and returns the asynchronous job id.
	UploadVideo(ctx context.Context, filename string, data []byte) (string, error)
	// VideoStatus checks the processing state of an uploaded video.
	VideoStatus(ctx context.Context, videoID string) (VideoStatus, error)

	ListPages(ctx context.Context) ([]Page, error)
	CampaignInsights(ctx context.Context, campaignID string) (*Insights, error)
}

// CampaignCreateReq is the campaign creation payload.
type CampaignCreateReq struct {
	Name                string   `json:"name"`
	Objective           string   `json:"objective"`
	Status              string   `json:"status"`
	SpecialAdCategories []string `json:"special_ad_categories"`
}

// CustomLocation targets a radius around a coordinate. DistanceUnit is
// always kilometers in this system.
type CustomLocation struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Radius       int     `json:"radius"`
	DistanceUnit string  `json:"distance_unit"`
}

// GeoLocations carries either custom radius targets or a country fallback,
// never both.
type GeoLocations struct {
	Countries       []string         `json:"countries,omitempty"`
	CustomLocations []CustomLocation `json:"custom_locations,omitempty"`
}

// Targeting is the ad set targeting spec. Genders is omitted entirely for
// unrestricted delivery; otherwise it holds exactly one platform gender code.
type Targeting struct {
	GeoLocations GeoLocations `json:"geo_locations"`
	AgeMin       int          `json:"age_min"`
	AgeMax       int          `json:"age_max"`
	Genders      []int        `json:"genders,omitempty"`
}

// AdSetCreateReq is the ad set creation payload. DailyBudget is in the
// platform's minor currency unit.
type AdSetCreateReq struct {
	Name             string     `json:"name"`
	CampaignID       string     `json:"campaign_id"`
	Status           string     `json:"status"`
	BillingEvent     string     `json:"billing_event"`
	OptimizationGoal string     `json:"optimization_goal"`
	BidStrategy      string     `json:"bid_strategy"`
	DailyBudget      int64      `json:"daily_budget"`
	Targeting        Targeting  `json:"targeting"`
	StartTime        *time.Time `json:"start_time,omitempty"`
	EndTime          *time.Time `json:"end_time,omitempty"`
}

// CallToAction is the fixed-text call to action attached to every creative.
type CallToAction struct {
	Type  string `json:"type"`
	Value struct {
		Link string `json:"link"`
	} `json:"value"`
}

// LinkData is the image-creative story shape.
type LinkData struct {
	ImageHash    string       `json:"image_hash"`
	Link         string       `json:"link"`
	Message      string       `json:"message"`
	CallToAction CallToAction `json:"call_to_action"`
}

// VideoData is the video-creative story shape. ImageURL is the processed
// thumbnail used as the cover image.
type VideoData struct {
	VideoID      string       `json:"video_id"`
	ImageURL     string       `json:"image_url"`
	Message      string       `json:"message"`
	CallToAction CallToAction `json:"call_to_action"`
}

// ObjectStorySpec binds a creative's story to a page. Exactly one of
// LinkData and VideoData is set, dispatched once on the creative type.
type ObjectStorySpec struct {
	PageID    string     `json:"page_id"`
	LinkData  *LinkData  `json:"link_data,omitempty"`
	VideoData *VideoData `json:"video_data,omitempty"`
}

// CreativeCreateReq is the ad creative creation payload.
type CreativeCreateReq struct {
	Name            string          `json:"name"`
	ObjectStorySpec ObjectStorySpec `json:"object_story_spec"`
}

// AdCreateReq is the final ad creation payload tying the creative to its
// ad set.
type AdCreateReq struct {
	Name       string `json:"name"`
	AdSetID    string `json:"adset_id"`
	CreativeID string `json:"creative_id"`
	Status     string `json:"status"`
}

// VideoStatus is the processing state of an uploaded video. ThumbnailURI is
// populated once the platform has rendered a thumbnail.
type VideoStatus struct {
	Status       string
	ThumbnailURI string
}

// Ready reports whether processing finished and a thumbnail is available.
func (s VideoStatus) Ready() bool {
	return s.Status == "ready" && s.ThumbnailURI != ""
}

// Page is a page the configured account can publish on behalf of.
type Page struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InsightAction is a single action counter inside an insights row.
type InsightAction struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insights is the last-30-days performance summary for a campaign. The
// platform reports all metrics as strings.
type Insights struct {
	Impressions string          `json:"impressions"`
	Reach       string          `json:"reach"`
	Spend       string          `json:"spend"`
	Clicks      string          `json:"clicks"`
	CTR         string          `json:"ctr"`
	CPC         string          `json:"cpc"`
	Actions     []InsightAction `json:"actions,omitempty"`
}
