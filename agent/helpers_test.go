package agent_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/petasbytes/realtor-agent/agent"
)

// scriptedTransport answers successive requests with successive bodies, repeating the last.
type scriptedTransport struct {
	mu       sync.Mutex
	status   int
	bodies   []string
	requests [][]byte
}

func (s *scriptedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	b, _ := io.ReadAll(req.Body)
	_ = req.Body.Close()

	s.mu.Lock()
	i := len(s.requests)
	s.requests = append(s.requests, b)
	if i >= len(s.bodies) {
		i = len(s.bodies) - 1
	}
	body := s.bodies[i]
	status := s.status
	s.mu.Unlock()

	if status == 0 {
		status = 200
	}
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
		Request:    req,
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp, nil
}

func (s *scriptedTransport) request(t *testing.T, i int) sentRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= len(s.requests) {
		t.Fatalf("request %d not sent (have %d)", i, len(s.requests))
	}
	var r sentRequest
	if err := json.Unmarshal(s.requests[i], &r); err != nil {
		t.Fatalf("unmarshal request %d: %v", i, err)
	}
	return r
}

func (s *scriptedTransport) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

type sentBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	IsError   bool            `json:"is_error,omitempty"`
}

type sentRequest struct {
	Model     string `json:"model"`
	MaxTokens int64  `json:"max_tokens"`
	System    []struct {
		Text string `json:"text"`
	} `json:"system"`
	Messages []struct {
		Role    string      `json:"role"`
		Content []sentBlock `json:"content"`
	} `json:"messages"`
	Tools []struct {
		Name string `json:"name"`
	} `json:"tools"`
}

var fixedNow = time.Date(2025, 5, 14, 10, 30, 0, 0, time.UTC)

func newTestAgent(t *testing.T, rt http.RoundTripper, opts ...agent.Option) *agent.Agent {
	t.Helper()
	c := anthropic.NewClient(
		option.WithHTTPClient(&http.Client{Transport: rt}),
		option.WithAPIKey("test-key"),
		option.WithMaxRetries(0),
	)
	opts = append([]agent.Option{agent.WithClock(func() time.Time { return fixedNow })}, opts...)
	return agent.New(&c, opts...)
}

const textReply = `{"id":"msg_t","type":"message","role":"assistant","content":[{"type":"text","text":"Sure, "},{"type":"text","text":"happy to help."}],"stop_reason":"end_turn","usage":{"input_tokens":10,"output_tokens":5}}`

const toolReply = `{
	"id": "msg_u",
	"type": "message",
	"role": "assistant",
	"stop_reason": "tool_use",
	"usage": {"input_tokens": 900, "output_tokens": 120},
	"content": [
		{"type": "text", "text": "Posting to both portals now."},
		{"type": "tool_use", "id": "tu_1", "name": "post_to_99acres", "input": {"property_type": "apartment", "bhk": 3, "location": "Hinjewadi, Pune", "price": 9500000}},
		{"type": "tool_use", "id": "tu_2", "name": "post_to_magicbricks", "input": {"property_data": {"bhk": 3}, "boost_listing": true}}
	]
}`
