package metrics

import (
	"sort"
	"time"
)

// Turn tallies what happened during one agent turn.
// Not safe for concurrent use; a turn is driven by a single goroutine.
type Turn struct {
	start time.Time

	ModelCalls   int
	InputTokens  int64
	OutputTokens int64
	ToolCalls    int
	ToolErrors   int
	Violations   int
	ByCategory   map[string]int
}

// NewTurn starts a tally at now.
func NewTurn(now time.Time) *Turn {
	return &Turn{start: now, ByCategory: map[string]int{}}
}

// AddModelCall records one model round trip and its token usage.
func (t *Turn) AddModelCall(inputTokens, outputTokens int64) {
	t.ModelCalls++
	t.InputTokens += inputTokens
	t.OutputTokens += outputTokens
}

// AddTool records one dispatched tool call. category may be empty for unknown tools.
func (t *Turn) AddTool(category string, isErr bool, violations int) {
	t.ToolCalls++
	if isErr {
		t.ToolErrors++
	}
	t.Violations += violations
	if category == "" {
		category = "unknown"
	}
	t.ByCategory[category]++
}

// Categories lists the categories that saw at least one call, sorted.
func (t *Turn) Categories() []string {
	out := make([]string, 0, len(t.ByCategory))
	for c := range t.ByCategory {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Fields returns the summary event fields, with duration measured up to end.
func (t *Turn) Fields(end time.Time) map[string]any {
	return map[string]any{
		"duration_ms":       end.Sub(t.start).Milliseconds(),
		"model_calls":       t.ModelCalls,
		"input_tokens":      t.InputTokens,
		"output_tokens":     t.OutputTokens,
		"tool_calls":        t.ToolCalls,
		"tool_errors":       t.ToolErrors,
		"schema_violations": t.Violations,
		"tool_categories":   t.ByCategory,
	}
}
