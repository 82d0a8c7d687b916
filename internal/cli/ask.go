package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petasbytes/realtor-agent/agent"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Send one message and print the result as JSON",
		Long:  "Send a single message to the assistant, run the tools it asks for and print the result. With --follow-up the tool results are sent back and every further result is printed too.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAsk,
	}

	cmd.Flags().StringArray("context", nil, "Request context passed to tools as key=value, repeatable, e.g. --context realtor_id=r-42")

	RootCmd.AddCommand(cmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	pairs, _ := cmd.Flags().GetStringArray("context")
	message := strings.Join(args, " ")

	reqCtx, err := parseContext(pairs)
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	res, err := s.agent.Chat(cmd.Context(), message, reqCtx)
	if err != nil {
		return err
	}
	results := []*agent.Result{res}
	if s.cfg.FollowUpOn() {
		more, err := s.agent.FollowUp(cmd.Context(), s.cfg.MaxIterations)
		results = append(results, more...)
		if err != nil && !errors.Is(err, agent.ErrMaxIterations) {
			return err
		}
		if err != nil {
			s.logger.Warn("follow-up stopped", "err", err)
		}
	}

	for _, r := range results {
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
	}
	return nil
}

// parseContext turns key=value pairs into the request context handed to tools.
// Later pairs win over earlier ones with the same key.
func parseContext(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("--context %q: want key=value", p)
		}
		out[k] = v
	}
	return out, nil
}
