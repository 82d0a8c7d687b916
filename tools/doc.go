// Package tools defines the realtor tool catalog handed to the model.
//
// Includes:
//   - ToolDefinition: name, description, category, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - The catalog: property portals, social media, paid ads, lead management and analytics tools.
//   - Stub: the placeholder handler every catalog tool dispatches to. It never fails.
//   - CheckSchemas / ValidateInput: JSON Schema checks over the catalog and tool inputs.
package tools
