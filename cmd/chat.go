package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/careerstu/careerstu/internal/agent"
	"github.com/careerstu/careerstu/internal/corpus"
	"github.com/careerstu/careerstu/internal/llm"
	"github.com/careerstu/careerstu/internal/tools"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start a guidance conversation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

// runChat opens the store, builds the agent, and loops on user input.
func runChat(cmd *cobra.Command) error {
	ctx := cmd.Context()

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return fmt.Errorf("no LLM provider configured; set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, or OPENROUTER_API_KEY")
		}
		return fmt.Errorf("LLM provider: %w", err)
	}

	l, err := resolveLearner(cmd, s)
	if err != nil {
		return err
	}

	gw := corpus.NewEntGateway(s.Client())
	dispatcher, err := tools.NewDispatcher(gw, s.LearnerRepo())
	if err != nil {
		return fmt.Errorf("build dispatcher: %w", err)
	}

	a := agent.New(provider, dispatcher, s.LearnerRepo(), s.EventRepo(), l.LearnerID)

	mode, err := a.CurrentMode(ctx)
	if err != nil {
		return fmt.Errorf("resolve mode: %w", err)
	}

	name := l.Name
	if name == "" {
		name = l.LearnerID
	}
	fmt.Printf("Career STU — talking with %s (%s mode)\n", name, mode)
	fmt.Println("Type 'exit' to quit, '/reset' to clear the conversation.")
	fmt.Println()

	input := promptui.Prompt{Label: "You"}

	for {
		line, err := input.Run()
		if err != nil {
			// Ctrl-C / Ctrl-D end the session.
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				fmt.Println("Bye!")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == "exit", line == "quit":
			fmt.Println("Bye!")
			return nil
		case line == "/reset":
			a.Reset()
			fmt.Println("Conversation cleared.")
			continue
		}

		result, err := a.Turn(ctx, line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}

		if result.ModeChanged {
			fmt.Printf("[%s mode — %s]\n", result.Mode, result.ModeReason)
		}
		fmt.Printf("\nSTU: %s\n\n", result.Reply)
	}
}
