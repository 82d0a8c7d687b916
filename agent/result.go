package agent

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/tidwall/gjson"

	"github.com/petasbytes/realtor-agent/internal/runner"
)

// ToolUse is a tool invocation requested by the model.
type ToolUse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// ToolResult is the handler output for one ToolUse.
type ToolResult struct {
	ToolUseID string          `json:"tool_use_id"`
	Name      string          `json:"name"`
	Result    json.RawMessage `json:"result"`
	IsError   bool            `json:"is_error,omitempty"`
}

// Result is the outcome of one exchange with the model.
type Result struct {
	// Message is every text block of the reply, concatenated without separators.
	Message     string       `json:"message"`
	ToolUses    []ToolUse    `json:"tool_uses"`
	ToolResults []ToolResult `json:"tool_results"`
	StopReason  string       `json:"stop_reason"`
}

func newResult(msg *anthropic.Message, calls []runner.Call) *Result {
	res := &Result{
		ToolUses:    make([]ToolUse, 0, len(calls)),
		ToolResults: make([]ToolResult, 0, len(calls)),
		StopReason:  string(msg.StopReason),
	}
	for _, block := range msg.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			res.Message += tb.Text
		}
	}
	for _, c := range calls {
		res.ToolUses = append(res.ToolUses, ToolUse{ID: c.ID, Name: c.Name, Input: rawOrString(string(c.Input), "{}")})
		res.ToolResults = append(res.ToolResults, ToolResult{
			ToolUseID: c.ID,
			Name:      c.Name,
			Result:    rawOrString(c.Output, `""`),
			IsError:   c.IsError,
		})
	}
	return res
}

// rawOrString keeps s as raw JSON when it is valid, otherwise encodes it as a JSON string.
func rawOrString(s, empty string) json.RawMessage {
	if s == "" {
		return json.RawMessage(empty)
	}
	if gjson.Valid(s) {
		return json.RawMessage(s)
	}
	b, _ := json.Marshal(s)
	return b
}
