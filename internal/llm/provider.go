package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction.
// Consumers call Generate with a Request and receive text, structured
// JSON, or tool calls depending on what the request asked for.
type Provider interface {
	// Generate sends a prompt to the LLM and returns a structured response.
	// The request's Schema field, when set, instructs the provider to return
	// JSON conforming to that schema. When Tools are set, the response may
	// carry ToolCalls instead of (or alongside) text content.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. A chat turn carries the full
	// transcript including prior tool calls and their results.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is raw text as json.RawMessage.
	// Mutually exclusive with Tools.
	Schema *Schema

	// Tools advertises the tools the model may call this turn.
	// When the model decides to call one, the response StopReason is
	// "tool_use" and ToolCalls carries the requested invocations.
	Tools []ToolSpec

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string

	// ToolCalls is set on assistant messages that requested tool
	// invocations, echoing the model's own prior turn back to it.
	ToolCalls []ToolCall

	// ToolResults is set on user messages that answer earlier tool calls.
	// Each result pairs with a ToolCall by CallID.
	ToolResults []ToolResult
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "riasec-profile".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// ToolSpec describes a tool the model may call.
type ToolSpec struct {
	// Name is the tool identifier, snake_case, e.g. "search_jobs".
	Name string

	// Description tells the model what the tool does and when to use it.
	Description string

	// InputSchema is the JSON Schema for the tool's arguments.
	InputSchema map[string]any
}

// ToolCall is a single tool invocation requested by the model.
type ToolCall struct {
	// ID is the provider-assigned call identifier. Results must echo it.
	ID string

	// Name is the tool being called.
	Name string

	// Args is the JSON-encoded arguments object.
	Args json.RawMessage
}

// ToolResult is the outcome of executing a tool call, sent back to the model.
type ToolResult struct {
	// CallID matches the ToolCall.ID this result answers.
	CallID string

	// Name is the tool that produced this result.
	Name string

	// Content is the JSON-encoded result payload.
	Content json.RawMessage

	// IsError marks results that describe a failure. The model sees the
	// content either way and decides how to proceed.
	IsError bool
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object. When the model called
	// tools, this may be empty or hold interstitial text. Otherwise it is
	// the raw assistant text, unquoted; string(Content) yields the reply.
	Content json.RawMessage

	// ToolCalls holds the tool invocations the model requested, in order.
	// Non-empty only when StopReason is "tool_use".
	ToolCalls []ToolCall

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "tool_use", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
