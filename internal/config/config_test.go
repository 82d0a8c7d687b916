package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petasbytes/realtor-agent/internal/config"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "realtor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := config.DefaultConfig()
	assert.Equal(t, "claude-sonnet-4-20250514", c.Model)
	assert.Equal(t, int64(4096), c.MaxTokens)
	assert.Equal(t, ".agent", c.Telemetry.Dir)
	assert.False(t, c.Telemetry.On())
	assert.False(t, c.FollowUpOn())
	assert.Nil(t, c.MaxRetries)
}

func TestMerge_NonZeroWins(t *testing.T) {
	zero := 0
	base := config.DefaultConfig()
	got := base.Merge(config.Config{Model: "claude-x", MaxRetries: &zero, Log: config.Log{Format: "json"}})

	assert.Equal(t, "claude-x", got.Model)
	assert.Equal(t, int64(4096), got.MaxTokens)
	require.NotNil(t, got.MaxRetries)
	assert.Equal(t, 0, *got.MaxRetries)
	assert.Equal(t, "info", got.Log.Level)
	assert.Equal(t, "json", got.Log.Format)

	zero = 7
	assert.Equal(t, 0, *got.MaxRetries, "merge must copy the pointer target")
}

func TestLoad_Precedence(t *testing.T) {
	path := writeYAML(t, `
model: claude-from-file
max_tokens: 1024
timeout: 30s
max_retries: 1
telemetry:
  enabled: true
  dir: /tmp/file-artifacts
log:
  level: debug
`)
	c, err := config.Load(path, envMap(map[string]string{
		"ANTHROPIC_API_KEY":     "sk-env",
		"REALTOR_MAX_TOKENS":    "2048",
		"REALTOR_ARTIFACTS_DIR": "/tmp/env-artifacts",
	}))
	require.NoError(t, err)

	assert.Equal(t, "claude-from-file", c.Model)
	assert.Equal(t, int64(2048), c.MaxTokens)
	assert.Equal(t, 30*time.Second, c.Timeout)
	assert.Equal(t, "sk-env", c.APIKey)
	assert.Equal(t, "/tmp/env-artifacts", c.Telemetry.Dir)
	assert.True(t, c.Telemetry.On())
	assert.Equal(t, "debug", c.Log.Level)
	require.NotNil(t, c.MaxRetries)
	assert.Equal(t, 1, *c.MaxRetries)
	assert.NoError(t, c.Validate())
}

func TestLoad_EnvSwitchesOffFileSetting(t *testing.T) {
	path := writeYAML(t, "follow_up: true\ntelemetry:\n  enabled: true\n")

	c, err := config.Load(path, envMap(nil))
	require.NoError(t, err)
	assert.True(t, c.Telemetry.On())
	assert.True(t, c.FollowUpOn())

	c, err = config.Load(path, envMap(map[string]string{"REALTOR_OBSERVE_JSON": "0"}))
	require.NoError(t, err)
	assert.False(t, c.Telemetry.On(), "env must override the file in both directions")
	assert.True(t, c.FollowUpOn())
}

func TestMerge_ExplicitFalseWins(t *testing.T) {
	base := config.DefaultConfig().Merge(config.Config{
		FollowUp:  config.Bool(true),
		Telemetry: config.Telemetry{Enabled: config.Bool(true)},
	})
	require.True(t, base.FollowUpOn())

	unset := base.Merge(config.Config{})
	assert.True(t, unset.FollowUpOn(), "nil switches leave lower layers alone")
	assert.True(t, unset.Telemetry.On())

	off := base.Merge(config.Config{FollowUp: config.Bool(false), Telemetry: config.Telemetry{Enabled: config.Bool(false)}})
	assert.False(t, off.FollowUpOn())
	assert.False(t, off.Telemetry.On())
	assert.True(t, base.FollowUpOn(), "merge must not write through to the receiver's switches")
}

func TestLoad_NoFile(t *testing.T) {
	c, err := config.Load("", envMap(map[string]string{"REALTOR_OBSERVE_JSON": "1"}))
	require.NoError(t, err)
	assert.True(t, c.Telemetry.On())
	assert.Equal(t, config.DefaultConfig().Model, c.Model)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), envMap(nil))
	assert.Error(t, err)

	_, err = config.Load(writeYAML(t, "modle: typo\n"), envMap(nil))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Load("", envMap(map[string]string{"REALTOR_MAX_TOKENS": "lots"}))
	assert.Error(t, err)

	_, err = config.Load("", envMap(map[string]string{"REALTOR_OBSERVE_JSON": "maybe"}))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := config.DefaultConfig()
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)

	c.APIKey = "sk"
	assert.NoError(t, c.Validate())

	neg := -1
	c.MaxRetries = &neg
	c.MaxIterations = 0
	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_retries")
	assert.Contains(t, err.Error(), "max_iterations")
}
