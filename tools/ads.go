package tools

type AdCopy struct {
	Headline1   string `json:"headline_1,omitempty"`
	Headline2   string `json:"headline_2,omitempty"`
	Description string `json:"description,omitempty"`
	DisplayURL  string `json:"display_url,omitempty"`
}

type CreateGoogleAdInput struct {
	CampaignName   string   `json:"campaign_name" jsonschema_description:"Campaign name"`
	CampaignType   string   `json:"campaign_type" jsonschema:"enum=search,enum=display" jsonschema_description:"Ad type"`
	Keywords       []string `json:"keywords,omitempty" jsonschema_description:"Target keywords (for search ads)"`
	AdCopy         *AdCopy  `json:"ad_copy,omitempty"`
	LandingPage    string   `json:"landing_page,omitempty" jsonschema_description:"Landing page URL"`
	Budget         float64  `json:"budget" jsonschema_description:"Daily budget in INR"`
	TargetLocation string   `json:"target_location,omitempty" jsonschema_description:"Geographic targeting (e.g., 'Pune, India')"`
}

var CreateGoogleAdDefinition = NewDefinition[CreateGoogleAdInput](
	CategoryPaidAds,
	"create_google_ad",
	"Create a Google Search or Display ad campaign for property listing.",
	Stub("create_google_ad"),
)
