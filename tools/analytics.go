package tools

type GeneratePerformanceReportInput struct {
	ReportType string   `json:"report_type" jsonschema:"enum=campaign,enum=listing,enum=overall,enum=roi" jsonschema_description:"Type of report"`
	TimePeriod string   `json:"time_period" jsonschema:"enum=today,enum=week,enum=month,enum=quarter,enum=year" jsonschema_description:"Time period for report"`
	EntityID   string   `json:"entity_id,omitempty" jsonschema_description:"Campaign ID or Property ID (if specific report)"`
	Metrics    []string `json:"metrics,omitempty" jsonschema_description:"Metrics to include (e.g., ['reach', 'conversions', 'roi'])"`
}

var GeneratePerformanceReportDefinition = NewDefinition[GeneratePerformanceReportInput](
	CategoryAnalytics,
	"generate_performance_report",
	"Generate a comprehensive performance report for campaigns, listings, or overall business.",
	Stub("generate_performance_report"),
)

type TrackLeadSourceInput struct {
	LeadID        string         `json:"lead_id"`
	Source        string         `json:"source" jsonschema:"enum=99acres,enum=magicbricks,enum=facebook,enum=instagram,enum=google_ads,enum=whatsapp,enum=referral,enum=direct"`
	SourceDetails map[string]any `json:"source_details,omitempty" jsonschema_description:"Additional source info (campaign_id, ad_id, etc.)"`
}

var TrackLeadSourceDefinition = NewDefinition[TrackLeadSourceInput](
	CategoryAnalytics,
	"track_lead_source",
	"Track and attribute lead sources to measure marketing effectiveness.",
	Stub("track_lead_source"),
)

type CalculateCampaignROIInput struct {
	CampaignID       string  `json:"campaign_id"`
	TotalSpent       float64 `json:"total_spent,omitempty"`
	LeadsGenerated   int     `json:"leads_generated,omitempty"`
	Conversions      int     `json:"conversions,omitempty"`
	RevenueGenerated float64 `json:"revenue_generated,omitempty"`
}

var CalculateCampaignROIDefinition = NewDefinition[CalculateCampaignROIInput](
	CategoryAnalytics,
	"calculate_campaign_roi",
	"Calculate ROI for a specific marketing campaign.",
	Stub("calculate_campaign_roi"),
)
