package tools

import (
	"fmt"

	"github.com/careerstu/careerstu/internal/modes"
)

// RefusedError indicates the dispatch guard rejected the call for the
// current mode. Recoverable: the orchestration layer reports the reason
// back to the model as a tool result.
type RefusedError struct {
	Tool   string
	Mode   modes.Mode
	Reason string
}

func (e *RefusedError) Error() string {
	return e.Reason
}

// UnknownToolError indicates the model requested a tool that is not in
// the registry.
type UnknownToolError struct {
	Tool string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", e.Tool)
}

// CollaboratorUnavailableError indicates a tool's backing collaborator
// (database, corpus) failed. Distinguishable from LLM provider failures
// so callers can retry or surface the right message.
type CollaboratorUnavailableError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorUnavailableError) Error() string {
	return fmt.Sprintf("collaborator %s unavailable: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorUnavailableError) Unwrap() error {
	return e.Err
}
