// Package provider builds the Anthropic Messages API client.
package provider

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/petasbytes/realtor-agent/internal/config"
)

// DefaultModel is the model the agent was tuned against.
const DefaultModel = anthropic.Model("claude-sonnet-4-20250514")

// DefaultMaxTokens bounds each response.
const DefaultMaxTokens int64 = 4096

// NewAnthropicClient returns a client. Without options the SDK reads ANTHROPIC_API_KEY and
// ANTHROPIC_BASE_URL from the environment.
func NewAnthropicClient(opts ...option.RequestOption) *anthropic.Client {
	c := anthropic.NewClient(opts...)
	return &c
}

// ClientOptions translates cfg into request options. Unset fields keep the SDK defaults.
func ClientOptions(cfg config.Config) []option.RequestOption {
	var opts []option.RequestOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.MaxRetries != nil {
		opts = append(opts, option.WithMaxRetries(*cfg.MaxRetries))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	return opts
}

// FromConfig is NewAnthropicClient(ClientOptions(cfg)...) with extra options appended last.
func FromConfig(cfg config.Config, extra ...option.RequestOption) *anthropic.Client {
	return NewAnthropicClient(append(ClientOptions(cfg), extra...)...)
}
