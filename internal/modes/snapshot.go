package modes

// LearnerStatus is the learner's account lifecycle state.
type LearnerStatus string

const (
	StatusNew       LearnerStatus = "new"
	StatusActive    LearnerStatus = "active"
	StatusPaused    LearnerStatus = "paused"
	StatusCompleted LearnerStatus = "completed"
)

// GoalStatus is the state of the learner's career goal.
type GoalStatus string

const (
	GoalExploring GoalStatus = "exploring"
	GoalCommitted GoalStatus = "committed"
	GoalAchieved  GoalStatus = "achieved"
	GoalChanged   GoalStatus = "changed"
)

// LearnerSnapshot is a read-only view of the persisted learner state,
// assembled by the persistence collaborator and passed into Resolve.
//
// State invariant: exactly one of {no goal, goal exploring, goal committed
// without pathway, goal committed with active pathway} holds. Resolve
// rejects any other combination with *InconsistentStateError.
type LearnerSnapshot struct {
	LearnerID string
	Status    LearnerStatus

	// Mode is the last persisted mode, or empty for a brand-new learner.
	Mode Mode

	ProfileComplete bool

	// GoalStatus is empty when no goal row exists.
	GoalStatus GoalStatus

	HasActivePathway bool

	// CurrentPathwaySkill is the skill currently in progress, if any.
	CurrentPathwaySkill string
}

// HasGoal reports whether a goal row exists.
func (s *LearnerSnapshot) HasGoal() bool {
	return s.GoalStatus != ""
}
