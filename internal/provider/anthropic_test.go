package provider_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petasbytes/realtor-agent/internal/config"
	"github.com/petasbytes/realtor-agent/internal/provider"
)

type captureRT struct {
	req *http.Request
}

func (c *captureRT) RoundTrip(req *http.Request) (*http.Response, error) {
	c.req = req
	body := `{"id":"msg_1","type":"message","role":"assistant","model":"m","content":[{"type":"text","text":"ok"}],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":1}}`
	return &http.Response{
		StatusCode: 200,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func TestClientOptions_Empty(t *testing.T) {
	assert.Empty(t, provider.ClientOptions(config.Config{}))
}

func TestFromConfig_AppliesKeyAndBaseURL(t *testing.T) {
	zero := 0
	cfg := config.DefaultConfig()
	cfg.APIKey = "sk-test"
	cfg.BaseURL = "https://proxy.example.test/"
	cfg.MaxRetries = &zero

	rt := &captureRT{}
	client := provider.FromConfig(cfg, option.WithHTTPClient(&http.Client{Transport: rt}))

	_, err := client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     provider.DefaultModel,
		MaxTokens: provider.DefaultMaxTokens,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock("hi"))},
	})
	require.NoError(t, err)
	require.NotNil(t, rt.req)
	assert.Equal(t, "proxy.example.test", rt.req.URL.Host)
	assert.Equal(t, "sk-test", rt.req.Header.Get("X-Api-Key"))
}
