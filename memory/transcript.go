package memory

import (
	"strings"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
)

// Message is the text-only view of a transcript entry.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text,omitempty"`
}

// Transcript is an append-only, in-memory message log. The zero value is ready to use.
type Transcript struct {
	mu   sync.RWMutex
	msgs []anthropic.MessageParam
}

// Append adds entries at the end, oldest first.
func (t *Transcript) Append(msgs ...anthropic.MessageParam) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.msgs = append(t.msgs, msgs...)
}

// Messages returns a copy of the entries, suitable for a request body.
func (t *Transcript) Messages() []anthropic.MessageParam {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]anthropic.MessageParam, len(t.msgs))
	copy(out, t.msgs)
	return out
}

func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.msgs)
}

// Text returns the role + text view of every entry that carries text.
// Tool blocks are left out; multiple text blocks in one entry are joined by newlines.
func (t *Transcript) Text() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Message, 0, len(t.msgs))
	for _, m := range t.msgs {
		var parts []string
		for _, blk := range m.Content {
			if tb := blk.OfText; tb != nil && tb.Text != "" {
				parts = append(parts, tb.Text)
			}
		}
		if len(parts) == 0 {
			continue
		}
		out = append(out, Message{Role: string(m.Role), Text: strings.Join(parts, "\n")})
	}
	return out
}

// PendingToolUses returns the tool_use ids of the newest entry, in request order, when that
// entry is an assistant message still waiting for its tool results. Otherwise nil.
func (t *Transcript) PendingToolUses() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.msgs) == 0 {
		return nil
	}
	last := t.msgs[len(t.msgs)-1]
	if last.Role != anthropic.MessageParamRoleAssistant {
		return nil
	}
	var ids []string
	for _, blk := range last.Content {
		if tu := blk.OfToolUse; tu != nil && tu.ID != "" {
			ids = append(ids, tu.ID)
		}
	}
	return ids
}
