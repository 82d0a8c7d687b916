package tools

// Registry returns all tool definitions wired for the agent, in catalog order.
func Registry() []ToolDefinition {
	return []ToolDefinition{
		// property portals
		PostTo99AcresDefinition,
		PostToMagicBricksDefinition,
		UpdateGoogleMyBusinessDefinition,
		// social media
		SendWhatsAppCampaignDefinition,
		CreateFacebookAdDefinition,
		PostToInstagramDefinition,
		// paid ads
		CreateGoogleAdDefinition,
		// lead management
		QualifyLeadDefinition,
		MatchPropertiesToBuyerDefinition,
		ScheduleSiteVisitDefinition,
		SendPropertyBrochureDefinition,
		// analytics
		GeneratePerformanceReportDefinition,
		TrackLeadSourceDefinition,
		CalculateCampaignROIDefinition,
	}
}

// Lookup finds a definition by name.
func Lookup(defs []ToolDefinition, name string) (ToolDefinition, bool) {
	for _, d := range defs {
		if d.Name == name {
			return d, true
		}
	}
	return ToolDefinition{}, false
}

// ByCategory groups defs by category, keeping catalog order inside each group.
func ByCategory(defs []ToolDefinition) map[Category][]ToolDefinition {
	out := make(map[Category][]ToolDefinition)
	for _, d := range defs {
		out[d.Category] = append(out[d.Category], d)
	}
	return out
}
