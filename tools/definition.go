package tools

import (
	"context"
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"
)

// Category groups tools for listing and reporting.
type Category string

const (
	CategoryPropertyPortals Category = "property_portals"
	CategorySocialMedia     Category = "social_media"
	CategoryPaidAds         Category = "paid_ads"
	CategoryLeadManagement  Category = "lead_management"
	CategoryCommunication   Category = "communication"
	CategoryAnalytics       Category = "analytics"
)

// Categories returns every category in display order. Communication has no tools yet.
func Categories() []Category {
	return []Category{
		CategoryPropertyPortals,
		CategorySocialMedia,
		CategoryPaidAds,
		CategoryLeadManagement,
		CategoryCommunication,
		CategoryAnalytics,
	}
}

// ToolFunc executes a tool call. input is the raw JSON object the model produced.
type ToolFunc func(ctx context.Context, input json.RawMessage) (string, error)

type ToolDefinition struct {
	Name        string
	Description string
	Category    Category
	Schema      *jsonschema.Schema
	InputSchema anthropic.ToolInputSchemaParam
	Function    ToolFunc
}

// NewDefinition builds a definition whose input schema is reflected from T.
func NewDefinition[T any](category Category, name, description string, fn ToolFunc) ToolDefinition {
	schema := GenerateSchema[T]()
	return ToolDefinition{
		Name:        name,
		Description: description,
		Category:    category,
		Schema:      schema,
		InputSchema: InputSchemaOf(schema),
		Function:    fn,
	}
}

// GenerateSchema reflects T into an inline JSON Schema. Fields without omitempty are required.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// InputSchemaOf converts a reflected schema into the object schema sent to the Messages API.
func InputSchemaOf(s *jsonschema.Schema) anthropic.ToolInputSchemaParam {
	return anthropic.ToolInputSchemaParam{
		Properties: s.Properties,
		Required:   s.Required,
	}
}

// Fields lists the top-level property names of the tool input in declaration order.
func (d ToolDefinition) Fields() []string {
	if d.Schema == nil || d.Schema.Properties == nil {
		return nil
	}
	names := make([]string, 0, d.Schema.Properties.Len())
	for pair := d.Schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}
