package metrics

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/anthropics/anthropic-sdk-go"
)

// blockOverhead is the fixed per-block cost added by EstimateTokens.
const blockOverhead = 4

// EstimateTokens is a deterministic size estimate of msgs for telemetry: runes of text,
// tool_result text and encoded tool_use input, plus a fixed overhead per block.
// It does not match the provider's tokenizer.
func EstimateTokens(msgs []anthropic.MessageParam) int {
	total := 0
	for _, m := range msgs {
		for _, blk := range m.Content {
			total += blockOverhead + blockRunes(blk)
		}
	}
	return total
}

func blockRunes(blk anthropic.ContentBlockParamUnion) int {
	switch {
	case blk.OfText != nil:
		return utf8.RuneCountInString(blk.OfText.Text)
	case blk.OfToolResult != nil:
		n := 0
		for _, c := range blk.OfToolResult.Content {
			if c.OfText != nil {
				n += utf8.RuneCount([]byte(c.OfText.Text))
			}
		}
		return n
	case blk.OfToolUse != nil:
		b, err := json.Marshal(blk.OfToolUse.Input)
		if err != nil {
			return 0
		}
		return utf8.RuneCount(b)
	}
	// images, documents, thinking: overhead only
	return 0
}
