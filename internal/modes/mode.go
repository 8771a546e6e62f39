// Package modes decides which of the four operating modes the assistant is
// in for a given learner. The resolver is a pure function over a snapshot
// of persisted learner state; all side effects (persisting the transition,
// selecting prompts) happen outside this package, keyed off its output.
package modes

// Mode is the assistant's current operating stage.
type Mode string

const (
	ModeIntake        Mode = "INTAKE"
	ModeGoalDiscovery Mode = "GOAL_DISCOVERY"
	ModePathway       Mode = "PATHWAY"
	ModeLearning      Mode = "LEARNING"
)

// FallbackMode is the safe default callers should fall back to after an
// InconsistentStateError, while flagging the record for repair.
const FallbackMode = ModeIntake

// AllModes returns the four modes in stage order.
func AllModes() []Mode {
	return []Mode{ModeIntake, ModeGoalDiscovery, ModePathway, ModeLearning}
}

// Valid reports whether m is one of the four defined modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeIntake, ModeGoalDiscovery, ModePathway, ModeLearning:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeIntake:
		return "Intake"
	case ModeGoalDiscovery:
		return "Goal Discovery"
	case ModePathway:
		return "Pathway"
	case ModeLearning:
		return "Learning"
	default:
		return string(m)
	}
}
