package modes

import "fmt"

// InconsistentStateError indicates a LearnerSnapshot violates the state
// invariant. This is a persistence-layer bug, not a user error: the
// resolver never guesses a mode for an inconsistent snapshot. Callers
// should log the snapshot, flag the record for repair, and fall back to
// FallbackMode.
type InconsistentStateError struct {
	Snapshot LearnerSnapshot
	Reason   string
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("inconsistent learner state for %q: %s (goal=%q, active_pathway=%v, profile_complete=%v)",
		e.Snapshot.LearnerID, e.Reason, e.Snapshot.GoalStatus,
		e.Snapshot.HasActivePathway, e.Snapshot.ProfileComplete)
}
