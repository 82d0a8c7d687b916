package agent

import "errors"

var (
	// ErrEmptyMessage is returned by Chat for blank user input.
	ErrEmptyMessage = errors.New("agent: empty message")
	// ErrNothingPending is returned by Continue when no tool results await delivery.
	ErrNothingPending = errors.New("agent: no pending tool results")
	// ErrMaxIterations is returned by FollowUp when the model still wants tools after the limit.
	ErrMaxIterations = errors.New("agent: follow-up iteration limit reached")
	// ErrPendingMismatch is returned when the held tool results do not answer the tool_use
	// blocks of the last assistant message.
	ErrPendingMismatch = errors.New("agent: pending tool results out of step with transcript")
)
