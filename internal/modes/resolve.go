package modes

// Decision is the resolver's output for one conversational turn.
type Decision struct {
	Mode    Mode
	Changed bool
	Reason  string
}

// Resolve determines the current mode from a learner snapshot.
//
// The transition table is evaluated top-to-bottom and the first matching
// guard wins; guards are not mutually exclusive by construction, so the
// order is load-bearing. When no guard matches the mode is unchanged.
// Resolve is pure and idempotent: replaying the same snapshot always
// yields the same decision, and a snapshot whose Mode already reflects the
// decision reports Changed=false.
func Resolve(snap LearnerSnapshot) (Decision, error) {
	if err := validate(snap); err != nil {
		return Decision{}, err
	}

	current := snap.Mode
	reason := "new learner"
	if current == "" {
		current = ModeIntake
	}

	next := current
	switch {
	case current == ModeIntake && snap.ProfileComplete:
		next, reason = ModeGoalDiscovery, "profile complete"
	case current == ModeGoalDiscovery && snap.GoalStatus == GoalCommitted && !snap.HasActivePathway:
		next, reason = ModePathway, "goal committed"
	case current == ModePathway && snap.HasActivePathway:
		next, reason = ModeLearning, "pathway activated"
	case current == ModeLearning && snap.GoalStatus == GoalChanged:
		next, reason = ModeGoalDiscovery, "goal changed"
	default:
		if snap.Mode != "" {
			reason = "no transition guard matched"
		}
	}

	return Decision{
		Mode:    next,
		Changed: next != snap.Mode,
		Reason:  reason,
	}, nil
}

// validate enforces the snapshot state invariant. Exactly one of
// {no goal, goal exploring, goal committed without pathway, goal committed
// with active pathway} holds; goal "changed" with a still-active pathway
// is additionally legal as the transient state the LEARNING exit guard
// reads. Anything else is a persistence bug.
func validate(snap LearnerSnapshot) error {
	if snap.Mode != "" && !snap.Mode.Valid() {
		return &InconsistentStateError{Snapshot: snap, Reason: "unknown persisted mode " + string(snap.Mode)}
	}

	switch snap.GoalStatus {
	case "", GoalExploring, GoalCommitted, GoalAchieved, GoalChanged:
	default:
		return &InconsistentStateError{Snapshot: snap, Reason: "unknown goal status " + string(snap.GoalStatus)}
	}

	if snap.HasActivePathway {
		switch snap.GoalStatus {
		case GoalCommitted, GoalChanged:
		default:
			return &InconsistentStateError{Snapshot: snap, Reason: "active pathway without a committed goal"}
		}
	}

	return nil
}
