// Package agent runs the conversational loop: it resolves the operating
// mode from persisted learner state, builds the system prompt, and drives
// the LLM tool-use cycle against the tool dispatcher.
package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/careerstu/careerstu/internal/llm"
	"github.com/careerstu/careerstu/internal/modes"
	"github.com/careerstu/careerstu/internal/store"
	"github.com/careerstu/careerstu/internal/toolguard"
	"github.com/careerstu/careerstu/internal/tools"
)

const (
	// defaultMaxTokens bounds a single model response.
	defaultMaxTokens = 4096

	// maxToolRounds bounds consecutive tool-use cycles within one turn.
	maxToolRounds = 8
)

// Agent is one learner's conversation with Career STU. It is not safe
// for concurrent use; each learner session owns one Agent.
type Agent struct {
	provider   llm.Provider
	dispatcher *tools.Dispatcher
	learners   store.LearnerRepo
	events     store.EventRepo
	learnerID  string

	history []llm.Message
}

// New creates an agent for the given learner.
func New(provider llm.Provider, dispatcher *tools.Dispatcher, learners store.LearnerRepo, events store.EventRepo, learnerID string) *Agent {
	return &Agent{
		provider:   provider,
		dispatcher: dispatcher,
		learners:   learners,
		events:     events,
		learnerID:  learnerID,
	}
}

// TurnResult is the outcome of one conversational turn.
type TurnResult struct {
	// Reply is the assistant's final text for this turn.
	Reply string

	// Mode is the mode the turn ran in.
	Mode modes.Mode

	// ModeChanged reports whether this turn entered a new mode.
	ModeChanged bool

	// ModeReason explains the mode decision.
	ModeReason string

	// ToolsUsed lists the tools called during the turn, in call order.
	ToolsUsed []string
}

// Turn processes one user message: resolve the mode, run the tool-use
// loop, and return the assistant's reply. The mode decision is persisted
// before the model sees the message, so a refused tool call cannot roll
// it back.
func (a *Agent) Turn(ctx context.Context, userMessage string) (*TurnResult, error) {
	ctx = llm.WithPurpose(ctx, "chat-turn")

	mode, decision, err := a.resolveMode(ctx)
	if err != nil {
		return nil, err
	}

	lc, err := tools.BuildLearnerContext(ctx, a.learners, a.learnerID)
	if err != nil {
		return nil, fmt.Errorf("build learner context: %w", err)
	}

	system := BuildSystemPrompt(mode, lc)
	specs := toolSpecs(a.dispatcher.Guard().AllowedTools(mode))

	a.history = append(a.history, llm.Message{Role: llm.RoleUser, Content: userMessage})

	var toolsUsed []string
	for round := 0; ; round++ {
		resp, err := a.provider.Generate(ctx, llm.Request{
			System:    system,
			Messages:  a.history,
			Tools:     specs,
			MaxTokens: defaultMaxTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}

		if resp.StopReason != "tool_use" || len(resp.ToolCalls) == 0 {
			reply := string(resp.Content)
			a.history = append(a.history, llm.Message{Role: llm.RoleAssistant, Content: reply})
			return &TurnResult{
				Reply:       reply,
				Mode:        mode,
				ModeChanged: decision.Changed,
				ModeReason:  decision.Reason,
				ToolsUsed:   toolsUsed,
			}, nil
		}

		if round >= maxToolRounds {
			return nil, fmt.Errorf("turn exceeded %d tool rounds", maxToolRounds)
		}

		a.history = append(a.history, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   string(resp.Content),
			ToolCalls: resp.ToolCalls,
		})

		results := make([]llm.ToolResult, 0, len(resp.ToolCalls))
		for _, call := range resp.ToolCalls {
			toolsUsed = append(toolsUsed, call.Name)
			results = append(results, a.runTool(ctx, mode, call))
		}
		a.history = append(a.history, llm.Message{Role: llm.RoleUser, ToolResults: results})
	}
}

// Reset clears the conversation history. Persistent state is untouched.
func (a *Agent) Reset() {
	a.history = nil
}

// CurrentMode resolves the mode without persisting anything.
func (a *Agent) CurrentMode(ctx context.Context) (modes.Mode, error) {
	snap, err := a.learners.Snapshot(ctx, a.learnerID)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	decision, err := modes.Resolve(snap)
	if err != nil {
		return "", err
	}
	return decision.Mode, nil
}

// resolveMode resolves the operating mode from the persisted snapshot and
// records the transition when it changed. An inconsistent snapshot falls
// back to INTAKE rather than failing the turn.
func (a *Agent) resolveMode(ctx context.Context) (modes.Mode, modes.Decision, error) {
	snap, err := a.learners.Snapshot(ctx, a.learnerID)
	if err != nil {
		return "", modes.Decision{}, fmt.Errorf("snapshot: %w", err)
	}

	decision, err := modes.Resolve(snap)
	if err != nil {
		var inconsistent *modes.InconsistentStateError
		if !errors.As(err, &inconsistent) {
			return "", modes.Decision{}, err
		}
		decision = modes.Decision{
			Mode:    modes.FallbackMode,
			Changed: snap.Mode != modes.FallbackMode,
			Reason:  "inconsistent state: " + inconsistent.Reason,
		}
	}

	if decision.Changed {
		if err := a.learners.SetMode(ctx, a.learnerID, string(decision.Mode)); err != nil {
			return "", modes.Decision{}, fmt.Errorf("persist mode: %w", err)
		}
		if err := a.events.AppendModeTransition(ctx, store.ModeEventData{
			LearnerID: a.learnerID,
			FromMode:  string(snap.Mode),
			ToMode:    string(decision.Mode),
			Reason:    decision.Reason,
		}); err != nil {
			return "", modes.Decision{}, fmt.Errorf("record mode transition: %w", err)
		}
	}

	return decision.Mode, decision, nil
}

// runTool executes one tool call and packages the outcome as a tool
// result. Refusals, argument errors, and not-found lookups go back to the
// model as error results so it can adjust; an unavailable collaborator is
// reported the same way rather than aborting the turn.
func (a *Agent) runTool(ctx context.Context, mode modes.Mode, call llm.ToolCall) llm.ToolResult {
	out, err := a.dispatcher.Dispatch(ctx, mode, call.Name, call.Args)
	if err != nil {
		payload, _ := json.Marshal(map[string]string{"error": err.Error()})
		return llm.ToolResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: payload,
			IsError: true,
		}
	}

	payload, err := json.Marshal(out)
	if err != nil {
		msg, _ := json.Marshal(map[string]string{"error": "tool result not serializable: " + err.Error()})
		return llm.ToolResult{
			CallID:  call.ID,
			Name:    call.Name,
			Content: msg,
			IsError: true,
		}
	}

	return llm.ToolResult{
		CallID:  call.ID,
		Name:    call.Name,
		Content: payload,
	}
}

func toolSpecs(allowed []toolguard.Tool) []llm.ToolSpec {
	specs := make([]llm.ToolSpec, len(allowed))
	for i, t := range allowed {
		specs[i] = llm.ToolSpec{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		}
	}
	return specs
}
