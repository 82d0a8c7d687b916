package tools

type LeadData struct {
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Source       string `json:"source,omitempty"`
	InterestedIn string `json:"interested_in,omitempty"`
}

type QualificationCriteria struct {
	BudgetRange        string `json:"budget_range,omitempty"`
	Timeline           string `json:"timeline,omitempty"`
	LocationPreference string `json:"location_preference,omitempty"`
}

type QualifyLeadInput struct {
	LeadID                string                 `json:"lead_id" jsonschema_description:"Lead ID"`
	LeadData              LeadData               `json:"lead_data"`
	QualificationCriteria *QualificationCriteria `json:"qualification_criteria,omitempty"`
}

var QualifyLeadDefinition = NewDefinition[QualifyLeadInput](
	CategoryLeadManagement,
	"qualify_lead",
	"Automatically qualify a lead by asking questions and scoring responses.",
	Stub("qualify_lead"),
)

// BuyerCriteria requires a budget window; everything else narrows the match.
type BuyerCriteria struct {
	BudgetMin         float64  `json:"budget_min"`
	BudgetMax         float64  `json:"budget_max"`
	Locations         []string `json:"locations,omitempty"`
	BHK               int      `json:"bhk,omitempty"`
	PropertyType      string   `json:"property_type,omitempty"`
	MustHaveAmenities []string `json:"must_have_amenities,omitempty"`
}

type MatchPropertiesToBuyerInput struct {
	BuyerCriteria BuyerCriteria `json:"buyer_criteria"`
	MaxResults    int           `json:"max_results,omitempty" jsonschema_description:"Maximum properties to return (default 5)"`
}

var MatchPropertiesToBuyerDefinition = NewDefinition[MatchPropertiesToBuyerInput](
	CategoryLeadManagement,
	"match_properties_to_buyer",
	"Find and match properties from database that match buyer's criteria.",
	Stub("match_properties_to_buyer"),
)

type ScheduleSiteVisitInput struct {
	LeadID        string `json:"lead_id"`
	PropertyID    string `json:"property_id"`
	VisitDate     string `json:"visit_date" jsonschema_description:"ISO format date (YYYY-MM-DD)"`
	VisitTime     string `json:"visit_time" jsonschema_description:"Time in HH:MM format"`
	SendReminders bool   `json:"send_reminders,omitempty" jsonschema_description:"Send WhatsApp reminders 24h and 1h before"`
}

var ScheduleSiteVisitDefinition = NewDefinition[ScheduleSiteVisitInput](
	CategoryLeadManagement,
	"schedule_site_visit",
	"Schedule a site visit for a lead and send calendar invites.",
	Stub("schedule_site_visit"),
)

type SendPropertyBrochureInput struct {
	PropertyID         string `json:"property_id"`
	RecipientPhone     string `json:"recipient_phone,omitempty"`
	RecipientEmail     string `json:"recipient_email,omitempty"`
	DeliveryMethod     string `json:"delivery_method,omitempty" jsonschema:"enum=whatsapp,enum=email,enum=both"`
	IncludeFloorPlan   bool   `json:"include_floor_plan,omitempty"`
	IncludeLocationMap bool   `json:"include_location_map,omitempty"`
}

var SendPropertyBrochureDefinition = NewDefinition[SendPropertyBrochureInput](
	CategoryLeadManagement,
	"send_property_brochure",
	"Generate and send a property brochure via WhatsApp or email.",
	Stub("send_property_brochure"),
)
