// Package config loads agent settings from defaults, an optional YAML file, the environment
// and command-line overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is returned by Validate when no API key is configured.
var ErrMissingAPIKey = errors.New("config: ANTHROPIC_API_KEY is not set")

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Telemetry configures the JSONL event sink.
type Telemetry struct {
	Enabled *bool  `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// On reports whether event emission is switched on.
func (t Telemetry) On() bool { return t.Enabled != nil && *t.Enabled }

// Config is the full agent configuration.
type Config struct {
	Model         string        `yaml:"model"`
	MaxTokens     int64         `yaml:"max_tokens"`
	APIKey        string        `yaml:"api_key"`
	BaseURL       string        `yaml:"base_url"`
	MaxRetries    *int          `yaml:"max_retries"`
	Timeout       time.Duration `yaml:"timeout"`
	SystemPrompt  string        `yaml:"system_prompt"`
	FollowUp      *bool         `yaml:"follow_up"`
	MaxIterations int           `yaml:"max_iterations"`
	Log           Log           `yaml:"log"`
	Telemetry     Telemetry     `yaml:"telemetry"`
}

// Bool returns a pointer to b, for the optional switches in Config.
func Bool(b bool) *bool { return &b }

// FollowUpOn reports whether tool results are sent back automatically.
func (c Config) FollowUpOn() bool { return c.FollowUp != nil && *c.FollowUp }

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Model:         "claude-sonnet-4-20250514",
		MaxTokens:     4096,
		Timeout:       2 * time.Minute,
		MaxIterations: 5,
		Log:           Log{Level: "info", Format: "text"},
		FollowUp:      Bool(false),
		Telemetry:     Telemetry{Enabled: Bool(false), Dir: ".agent"},
	}
}

// Merge returns c with every set field of other applied on top: non-zero values, and switches
// that are non-nil whichever way they point.
func (c Config) Merge(other Config) Config {
	if other.Model != "" {
		c.Model = other.Model
	}
	if other.MaxTokens > 0 {
		c.MaxTokens = other.MaxTokens
	}
	if other.APIKey != "" {
		c.APIKey = other.APIKey
	}
	if other.BaseURL != "" {
		c.BaseURL = other.BaseURL
	}
	if other.MaxRetries != nil {
		n := *other.MaxRetries
		c.MaxRetries = &n
	}
	if other.Timeout > 0 {
		c.Timeout = other.Timeout
	}
	if other.SystemPrompt != "" {
		c.SystemPrompt = other.SystemPrompt
	}
	if other.FollowUp != nil {
		c.FollowUp = Bool(*other.FollowUp)
	}
	if other.MaxIterations > 0 {
		c.MaxIterations = other.MaxIterations
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
	if other.Telemetry.Enabled != nil {
		c.Telemetry.Enabled = Bool(*other.Telemetry.Enabled)
	}
	if other.Telemetry.Dir != "" {
		c.Telemetry.Dir = other.Telemetry.Dir
	}
	return c
}

// LoadFile reads a YAML config file. Unknown keys are rejected.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	var c Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}

// FromEnv reads the environment through getenv (os.Getenv in production).
func FromEnv(getenv func(string) string) (Config, error) {
	var c Config
	c.APIKey = getenv("ANTHROPIC_API_KEY")
	c.BaseURL = getenv("ANTHROPIC_BASE_URL")
	c.Model = getenv("REALTOR_MODEL")
	c.Log.Level = getenv("REALTOR_LOG_LEVEL")
	c.Telemetry.Dir = getenv("REALTOR_ARTIFACTS_DIR")

	if v := strings.TrimSpace(getenv("REALTOR_MAX_TOKENS")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("config: REALTOR_MAX_TOKENS=%q: want a positive integer", v)
		}
		c.MaxTokens = n
	}
	if v := strings.TrimSpace(getenv("REALTOR_OBSERVE_JSON")); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: REALTOR_OBSERVE_JSON=%q: %w", v, err)
		}
		c.Telemetry.Enabled = Bool(on)
	}
	return c, nil
}

// Load resolves defaults < file (when path is non-empty) < environment.
func Load(path string, getenv func(string) string) (Config, error) {
	c := DefaultConfig()
	if path != "" {
		fc, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		c = c.Merge(fc)
	}
	ec, err := FromEnv(getenv)
	if err != nil {
		return Config{}, err
	}
	return c.Merge(ec), nil
}

// Validate checks the settings needed to talk to the model.
func (c Config) Validate() error {
	var errs []error
	if c.APIKey == "" {
		errs = append(errs, ErrMissingAPIKey)
	}
	if c.Model == "" {
		errs = append(errs, errors.New("config: model is empty"))
	}
	if c.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("config: max_tokens must be positive, got %d", c.MaxTokens))
	}
	if c.MaxRetries != nil && *c.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("config: max_retries must not be negative, got %d", *c.MaxRetries))
	}
	if c.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("config: max_iterations must be positive, got %d", c.MaxIterations))
	}
	return errors.Join(errs...)
}
