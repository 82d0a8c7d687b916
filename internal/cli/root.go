// Package cli implements the realtor-agent commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/petasbytes/realtor-agent/agent"
	"github.com/petasbytes/realtor-agent/internal/config"
	"github.com/petasbytes/realtor-agent/internal/logging"
	"github.com/petasbytes/realtor-agent/internal/provider"
	"github.com/petasbytes/realtor-agent/internal/telemetry"
	"github.com/petasbytes/realtor-agent/tools"
)

var (
	configPath string
	modelFlag  string
	logLevel   string
	followUp   bool

	// clientOptions are appended to the configured client options; tests inject transports here.
	clientOptions []option.RequestOption
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:           "realtor-agent",
	Short:         "AI assistant for real estate professionals",
	Long:          "Chat with a Claude-backed assistant that posts listings, runs campaigns, manages leads and reports on results.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	RootCmd.PersistentFlags().StringVarP(&modelFlag, "model", "m", "", "Model name (default: $REALTOR_MODEL or "+string(provider.DefaultModel)+")")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	RootCmd.PersistentFlags().BoolVar(&followUp, "follow-up", false, "Send tool results back to the model until it stops calling tools")
}

// loadConfig resolves defaults < file < environment < flags. Switches given on the command
// line win in both directions; unset ones leave the lower layers alone.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath, os.Getenv)
	if err != nil {
		return config.Config{}, err
	}
	flags := config.Config{
		Model: modelFlag,
		Log:   config.Log{Level: logLevel},
	}
	if cmd.Flags().Changed("follow-up") {
		flags.FollowUp = config.Bool(followUp)
	}
	return cfg.Merge(flags), nil
}

// session bundles what a model-calling command needs.
type session struct {
	cfg    config.Config
	logger *slog.Logger
	agent  *agent.Agent
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	catalog := tools.Registry()
	if err := tools.CheckSchemas(catalog); err != nil {
		return nil, fmt.Errorf("tool catalog: %w", err)
	}

	events := telemetry.NewEmitter(cfg.Telemetry.Dir, cfg.Telemetry.On(), logger)
	client := provider.FromConfig(cfg, clientOptions...)
	a := agent.New(client,
		agent.WithModel(cfg.Model),
		agent.WithMaxTokens(cfg.MaxTokens),
		agent.WithSystemPrompt(cfg.SystemPrompt),
		agent.WithTools(catalog),
		agent.WithLogger(logger),
		agent.WithEmitter(events),
	)
	logger.Debug("agent ready", "agent_id", a.ID(), "model", cfg.Model, "tools", len(catalog))
	return &session{cfg: cfg, logger: logger, agent: a}, nil
}
