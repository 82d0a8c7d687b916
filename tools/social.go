package tools

type SendWhatsAppCampaignInput struct {
	TemplateName string         `json:"template_name" jsonschema_description:"Name of approved WhatsApp template"`
	Recipients   []string       `json:"recipients" jsonschema_description:"Phone numbers with country code (e.g., ['+919876543210'])"`
	Variables    map[string]any `json:"variables,omitempty" jsonschema_description:"Template variables (e.g., {'name': 'John', 'property': '3BHK'})"`
	PropertyID   string         `json:"property_id,omitempty" jsonschema_description:"Property ID to track campaign"`
}

var SendWhatsAppCampaignDefinition = NewDefinition[SendWhatsAppCampaignInput](
	CategorySocialMedia,
	"send_whatsapp_campaign",
	"Send a WhatsApp campaign to a list of contacts using approved templates.",
	Stub("send_whatsapp_campaign"),
)

type TargetAudience struct {
	AgeMin    int      `json:"age_min,omitempty"`
	AgeMax    int      `json:"age_max,omitempty"`
	Locations []string `json:"locations,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

type AdCreative struct {
	Headline string `json:"headline,omitempty"`
	Body     string `json:"body,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	CTA      string `json:"cta,omitempty"`
}

type CreateFacebookAdInput struct {
	CampaignName   string          `json:"campaign_name" jsonschema_description:"Campaign name"`
	PropertyID     string          `json:"property_id" jsonschema_description:"Property ID to promote"`
	Budget         float64         `json:"budget" jsonschema_description:"Daily budget in INR"`
	DurationDays   int             `json:"duration_days,omitempty" jsonschema_description:"Campaign duration in days"`
	TargetAudience *TargetAudience `json:"target_audience,omitempty"`
	AdCreative     *AdCreative     `json:"ad_creative,omitempty"`
}

var CreateFacebookAdDefinition = NewDefinition[CreateFacebookAdInput](
	CategorySocialMedia,
	"create_facebook_ad",
	"Create a Facebook ad campaign for a property listing. Automatically targets relevant audience.",
	Stub("create_facebook_ad"),
)

type PostToInstagramInput struct {
	PostType   string   `json:"post_type" jsonschema:"enum=feed,enum=story,enum=reel" jsonschema_description:"Type of Instagram post"`
	PropertyID string   `json:"property_id" jsonschema_description:"Property ID"`
	Caption    string   `json:"caption,omitempty" jsonschema_description:"Post caption with hashtags"`
	MediaURLs  []string `json:"media_urls" jsonschema_description:"Image or video URLs"`
	Tags       []string `json:"tags,omitempty" jsonschema_description:"Hashtags (without #)"`
}

var PostToInstagramDefinition = NewDefinition[PostToInstagramInput](
	CategorySocialMedia,
	"post_to_instagram",
	"Create an Instagram post or story for a property listing.",
	Stub("post_to_instagram"),
)
