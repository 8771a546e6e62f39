// Package toolguard filters which tool operations the assistant may call
// in its current mode and validates their arguments before execution is
// delegated to the tool implementations.
package toolguard

import "github.com/careerstu/careerstu/internal/modes"

// Tool is one registry entry: a tool name, its JSON argument schema, and
// the modes in which it may be called. The registry is static for the
// process lifetime.
type Tool struct {
	Name        string
	Description string

	// InputSchema is the JSON Schema for the tool's arguments.
	InputSchema map[string]any

	// Modes lists the modes that allow this tool. Ignored when Global.
	Modes []modes.Mode

	// Global marks tools callable in every mode (learner-context read,
	// profile read).
	Global bool
}
