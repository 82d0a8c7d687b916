package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/petasbytes/realtor-agent/internal/logging"
	"github.com/petasbytes/realtor-agent/internal/provider"
	"github.com/petasbytes/realtor-agent/internal/telemetry"
	"github.com/petasbytes/realtor-agent/tools"
)

// errToolNotFound is the tool_result content for names outside the catalog.
const errToolNotFound = "tool not found"

type Runner struct {
	Client    *anthropic.Client
	Tools     []tools.ToolDefinition
	Model     anthropic.Model
	MaxTokens int64
	Logger    *slog.Logger
	Events    *telemetry.Emitter
}

func New(client *anthropic.Client, toolDefs []tools.ToolDefinition) *Runner {
	return &Runner{
		Client:    client,
		Tools:     toolDefs,
		Model:     provider.DefaultModel,
		MaxTokens: provider.DefaultMaxTokens,
		Logger:    logging.Discard(),
	}
}

// Call is one dispatched tool invocation.
type Call struct {
	ID         string
	Name       string
	Category   tools.Category
	Input      json.RawMessage
	Output     string
	IsError    bool
	Violations []string
}

// ResultBlock is the tool_result block answering c.
func (c Call) ResultBlock() anthropic.ContentBlockParamUnion {
	return anthropic.NewToolResultBlock(c.ID, c.Output, c.IsError)
}

func (r *Runner) anthropicTools() []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(r.Tools))
	for _, t := range r.Tools {
		out = append(out, anthropic.ToolUnionParam{OfTool: &anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: t.InputSchema,
		}})
	}
	return out
}

func (r *Runner) logger() *slog.Logger { return logging.OrDiscard(r.Logger) }

// Step sends conv in a single model call and executes every tool the model asked for, in order.
// ctx is handed to each tool; a turn id is attached when ctx has none.
func (r *Runner) Step(ctx context.Context, system string, conv []anthropic.MessageParam) (*anthropic.Message, []Call, error) {
	ctx, turnID := telemetry.EnsureTurnID(ctx)

	params := anthropic.MessageNewParams{
		Model:     r.Model,
		MaxTokens: r.MaxTokens,
		Messages:  conv,
		Tools:     r.anthropicTools(),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	start := time.Now()
	msg, err := r.Client.Messages.New(ctx, params)
	fields := map[string]any{
		"turn_id":     turnID,
		"model":       string(r.Model),
		"duration_ms": time.Since(start).Milliseconds(),
		"messages":    len(conv),
		"error":       nil,
	}
	if err != nil {
		fields["error"] = "model call failed"
		r.Events.Emit("model_call", fields)
		r.logger().Error("model call failed", "turn_id", turnID, "err", err)
		return nil, nil, fmt.Errorf("runner: model call: %w", err)
	}

	var uses []anthropic.ToolUseBlock
	for _, block := range msg.Content {
		if v, ok := block.AsAny().(anthropic.ToolUseBlock); ok {
			uses = append(uses, v)
		}
	}
	fields["stop_reason"] = string(msg.StopReason)
	fields["input_tokens"] = msg.Usage.InputTokens
	fields["output_tokens"] = msg.Usage.OutputTokens
	fields["tool_uses"] = len(uses)
	r.Events.Emit("model_call", fields)
	r.logger().Debug("model call", "turn_id", turnID, "stop_reason", msg.StopReason, "tool_uses", len(uses))

	calls := make([]Call, 0, len(uses))
	for _, u := range uses {
		// Pass raw JSON input through to the tool implementation
		calls = append(calls, r.execTool(ctx, turnID, u.ID, u.Name, json.RawMessage(u.JSON.Input.Raw())))
	}
	return msg, calls, nil
}

func (r *Runner) execTool(ctx context.Context, turnID, id, name string, input json.RawMessage) Call {
	call := Call{ID: id, Name: name, Input: input}

	emit := func(durationMs int64, errStr string) {
		fields := map[string]any{
			"tool_name":         name,
			"category":          string(call.Category),
			"duration_ms":       durationMs,
			"input_size":        len(input),
			"output_size":       len(call.Output),
			"schema_violations": len(call.Violations),
			"turn_id":           turnID,
			"error":             nil,
		}
		if errStr != "" {
			fields["error"] = errStr
		}
		r.Events.Emit("tool_exec", fields)
	}

	start := time.Now()
	def, ok := tools.Lookup(r.Tools, name)
	if !ok || def.Function == nil {
		call.Output, call.IsError = errToolNotFound, true
		r.logger().Warn("unknown tool requested", "tool", name, "turn_id", turnID)
		emit(time.Since(start).Milliseconds(), errToolNotFound)
		return call
	}
	call.Category = def.Category

	violations, err := tools.ValidateInput(def, input)
	if err != nil {
		r.logger().Warn("tool input not validated", "tool", name, "err", err)
	}
	if len(violations) > 0 {
		call.Violations = violations
		r.logger().Warn("tool input does not match schema", "tool", name, "violations", violations)
	}

	out, err := def.Function(ctx, input)
	if err != nil {
		call.Output, call.IsError = err.Error(), true
		// Generic error string keeps raw payloads out of telemetry.
		emit(time.Since(start).Milliseconds(), "tool error")
		return call
	}
	call.Output = out
	emit(time.Since(start).Milliseconds(), "")
	return call
}
