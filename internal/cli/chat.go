package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/petasbytes/realtor-agent/agent"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "chat",
		Short: "Interactive conversation with the assistant",
		Long:  "Start a conversation. Type /history to print the transcript; Ctrl-C or end of input quits. The transcript is kept in memory only.",
		Args:  cobra.NoArgs,
		RunE:  runChat,
	})
}

func runChat(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	// Set up graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return chatLoop(ctx, s, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func chatLoop(ctx context.Context, s *session, in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "Chat with your realtor assistant (Ctrl-C to quit)")

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		defer close(inputCh)
		for scanner.Scan() {
			select {
			case inputCh <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(out, "\u001b[94mYou\u001b[0m: ")
		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nExiting...")
			return nil
		case line, ok = <-inputCh:
			if !ok {
				fmt.Fprintln(out)
				return scanner.Err()
			}
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "/history":
			for _, m := range s.agent.History() {
				fmt.Fprintf(out, "[%s] %s\n", m.Role, m.Text)
			}
			continue
		}

		res, err := s.agent.Chat(ctx, line, nil)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		printResult(out, res)

		if !s.cfg.FollowUpOn() {
			continue
		}
		more, err := s.agent.FollowUp(ctx, s.cfg.MaxIterations)
		for _, r := range more {
			printResult(out, r)
		}
		if err != nil {
			if errors.Is(err, agent.ErrMaxIterations) {
				s.logger.Warn("follow-up stopped", "err", err)
			} else {
				fmt.Fprintf(errOut, "error: %v\n", err)
			}
		}
	}
}

func printResult(w io.Writer, res *agent.Result) {
	if res.Message != "" {
		fmt.Fprintf(w, "\u001b[93mClaude\u001b[0m: %s\n", res.Message)
	}
	for _, tr := range res.ToolResults {
		status := "ok"
		if tr.IsError {
			status = "error"
		}
		fmt.Fprintf(w, "  \u001b[92mtool\u001b[0m: %s (%s)\n", tr.Name, status)
	}
}
