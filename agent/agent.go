package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/google/uuid"

	"github.com/petasbytes/realtor-agent/internal/logging"
	"github.com/petasbytes/realtor-agent/internal/metrics"
	"github.com/petasbytes/realtor-agent/internal/runner"
	"github.com/petasbytes/realtor-agent/internal/telemetry"
	"github.com/petasbytes/realtor-agent/memory"
	"github.com/petasbytes/realtor-agent/tools"
)

// Agent holds one conversation. Methods are safe for concurrent use; calls are serialized.
type Agent struct {
	mu sync.Mutex

	id           string
	runner       *runner.Runner
	transcript   memory.Transcript
	pending      []runner.Call
	pendingCtx   map[string]any
	systemPrompt string
	now          func() time.Time
	logger       *slog.Logger
	events       *telemetry.Emitter
}

type Option func(*Agent)

// WithModel overrides the model name.
func WithModel(model string) Option {
	return func(a *Agent) {
		if model != "" {
			a.runner.Model = anthropic.Model(model)
		}
	}
}

// WithMaxTokens overrides the response token limit.
func WithMaxTokens(n int64) Option {
	return func(a *Agent) {
		if n > 0 {
			a.runner.MaxTokens = n
		}
	}
}

// WithTools replaces the tool catalog.
func WithTools(defs []tools.ToolDefinition) Option {
	return func(a *Agent) { a.runner.Tools = defs }
}

// WithClock sets the time source used for the prompt date and turn durations.
func WithClock(now func() time.Time) Option {
	return func(a *Agent) {
		if now != nil {
			a.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Agent) {
		a.logger = logging.OrDiscard(l)
		a.runner.Logger = a.logger
	}
}

func WithEmitter(e *telemetry.Emitter) Option {
	return func(a *Agent) {
		a.events = e
		a.runner.Events = e
	}
}

// WithSystemPrompt replaces DefaultSystemPrompt. The date line is still appended.
func WithSystemPrompt(base string) Option {
	return func(a *Agent) {
		if strings.TrimSpace(base) != "" {
			a.systemPrompt = base
		}
	}
}

// New returns an agent with an empty transcript and the full tool catalog.
func New(client *anthropic.Client, opts ...Option) *Agent {
	a := &Agent{
		id:           uuid.NewString(),
		runner:       runner.New(client, tools.Registry()),
		systemPrompt: DefaultSystemPrompt,
		now:          time.Now,
		logger:       logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ID identifies this agent instance in logs and telemetry.
func (a *Agent) ID() string { return a.id }

// History returns the role and text of every transcript entry that carries text.
func (a *Agent) History() []memory.Message { return a.transcript.Text() }

// Len is the number of transcript entries.
func (a *Agent) Len() int { return a.transcript.Len() }

// Pending reports how many tool results await delivery to the model.
func (a *Agent) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}

// Chat sends userMessage to the model and dispatches the tools it asks for. reqCtx is made
// available to the tool handlers and may be nil. Tool results from the previous exchange, if
// any, are delivered ahead of the new text.
//
// On error the transcript and pending results are left unchanged.
func (a *Agent) Chat(ctx context.Context, userMessage string, reqCtx map[string]any) (*Result, error) {
	if strings.TrimSpace(userMessage) == "" {
		return nil, ErrEmptyMessage
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	blocks, err := a.pendingBlocks()
	if err != nil {
		return nil, err
	}
	blocks = append(blocks, anthropic.NewTextBlock(userMessage))
	return a.exchange(ctx, anthropic.NewUserMessage(blocks...), reqCtx, metrics.CountFeatures(userMessage).Fields("input"))
}

// Continue delivers the pending tool results without new user text, using the request
// context of the exchange that produced them.
func (a *Agent) Continue(ctx context.Context) (*Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.pending) == 0 {
		return nil, ErrNothingPending
	}
	blocks, err := a.pendingBlocks()
	if err != nil {
		return nil, err
	}
	return a.exchange(ctx, anthropic.NewUserMessage(blocks...), a.pendingCtx, nil)
}

// FollowUp calls Continue until the model stops requesting tools or maxIterations exchanges
// have been made. It returns ErrMaxIterations, with the results gathered so far, when tool
// results are still pending at the limit.
func (a *Agent) FollowUp(ctx context.Context, maxIterations int) ([]*Result, error) {
	var out []*Result
	for i := 0; i < maxIterations; i++ {
		res, err := a.Continue(ctx)
		if errors.Is(err, ErrNothingPending) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, res)
	}
	if a.Pending() > 0 {
		return out, ErrMaxIterations
	}
	return out, nil
}

// pendingBlocks builds the tool_result blocks owed to the newest assistant message. The
// results must answer exactly the tool_use ids that message carries, in order, or the API
// rejects the conversation.
func (a *Agent) pendingBlocks() ([]anthropic.ContentBlockParamUnion, error) {
	want := a.transcript.PendingToolUses()
	if len(want) != len(a.pending) {
		return nil, fmt.Errorf("%w: transcript awaits %d tool results, have %d", ErrPendingMismatch, len(want), len(a.pending))
	}
	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(a.pending)+1)
	for i, c := range a.pending {
		if c.ID != want[i] {
			return nil, fmt.Errorf("%w: result %d is for %q, transcript expects %q", ErrPendingMismatch, i, c.ID, want[i])
		}
		blocks = append(blocks, c.ResultBlock())
	}
	return blocks, nil
}

// exchange runs one model call for userMsg. Callers hold a.mu.
func (a *Agent) exchange(ctx context.Context, userMsg anthropic.MessageParam, reqCtx map[string]any, extra map[string]any) (*Result, error) {
	ctx, turnID := telemetry.EnsureTurnID(ctx)
	if reqCtx != nil {
		ctx = tools.WithRequestContext(ctx, reqCtx)
	}

	now := a.now()
	tally := metrics.NewTurn(now)

	conv := append(a.transcript.Messages(), userMsg)

	started := map[string]any{
		"turn_id":         turnID,
		"agent_id":        a.id,
		"history_len":     len(conv) - 1,
		"history_tokens":  metrics.EstimateTokens(conv),
		"pending_results": len(a.pending),
	}
	for k, v := range extra {
		started[k] = v
	}
	a.events.Emit("turn_started", started)

	msg, calls, err := a.runner.Step(ctx, SystemPrompt(a.systemPrompt, now), conv)
	if err != nil {
		fields := tally.Fields(a.now())
		fields["turn_id"] = turnID
		fields["agent_id"] = a.id
		fields["error"] = "model call failed"
		a.events.Emit("turn_finished", fields)
		return nil, err
	}

	a.transcript.Append(userMsg, msg.ToParam())
	a.pending = calls
	a.pendingCtx = reqCtx

	tally.AddModelCall(msg.Usage.InputTokens, msg.Usage.OutputTokens)
	for _, c := range calls {
		tally.AddTool(string(c.Category), c.IsError, len(c.Violations))
	}
	res := newResult(msg, calls)

	fields := tally.Fields(a.now())
	fields["turn_id"] = turnID
	fields["agent_id"] = a.id
	fields["stop_reason"] = res.StopReason
	fields["error"] = nil
	a.events.Emit("turn_finished", fields)

	a.logger.Info("turn finished",
		"agent_id", a.id,
		"turn_id", turnID,
		"stop_reason", res.StopReason,
		"tool_calls", len(calls),
		"categories", tally.Categories(),
	)
	return res, nil
}
