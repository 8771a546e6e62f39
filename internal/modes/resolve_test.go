package modes

import (
	"errors"
	"testing"
)

func TestResolve_NewLearnerStartsInIntake(t *testing.T) {
	d, err := Resolve(LearnerSnapshot{LearnerID: "l1", Status: StatusNew})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if d.Mode != ModeIntake {
		t.Errorf("mode = %q, want INTAKE", d.Mode)
	}
	if !d.Changed {
		t.Error("changed = false, want true for first resolution")
	}
}

func TestResolve_Transitions(t *testing.T) {
	tests := []struct {
		name string
		snap LearnerSnapshot
		want Mode
	}{
		{
			name: "intake to goal discovery on profile complete",
			snap: LearnerSnapshot{Mode: ModeIntake, ProfileComplete: true},
			want: ModeGoalDiscovery,
		},
		{
			name: "goal discovery to pathway on committed goal",
			snap: LearnerSnapshot{
				Mode:            ModeGoalDiscovery,
				ProfileComplete: true,
				GoalStatus:      GoalCommitted,
			},
			want: ModePathway,
		},
		{
			name: "pathway to learning on active pathway",
			snap: LearnerSnapshot{
				Mode:             ModePathway,
				ProfileComplete:  true,
				GoalStatus:       GoalCommitted,
				HasActivePathway: true,
			},
			want: ModeLearning,
		},
		{
			name: "learning back to goal discovery on changed goal",
			snap: LearnerSnapshot{
				Mode:             ModeLearning,
				ProfileComplete:  true,
				GoalStatus:       GoalChanged,
				HasActivePathway: true,
			},
			want: ModeGoalDiscovery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Resolve(tt.snap)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}
			if d.Mode != tt.want {
				t.Errorf("mode = %q, want %q", d.Mode, tt.want)
			}
			if !d.Changed {
				t.Error("changed = false, want true")
			}
			if d.Reason == "" {
				t.Error("reason empty")
			}
		})
	}
}

func TestResolve_NoGuardMatchStaysPut(t *testing.T) {
	tests := []struct {
		name string
		snap LearnerSnapshot
	}{
		{
			name: "intake with incomplete profile",
			snap: LearnerSnapshot{Mode: ModeIntake},
		},
		{
			name: "goal discovery while exploring",
			snap: LearnerSnapshot{
				Mode:            ModeGoalDiscovery,
				ProfileComplete: true,
				GoalStatus:      GoalExploring,
			},
		},
		{
			name: "pathway before pathway activation",
			snap: LearnerSnapshot{
				Mode:            ModePathway,
				ProfileComplete: true,
				GoalStatus:      GoalCommitted,
			},
		},
		{
			name: "learning with committed goal",
			snap: LearnerSnapshot{
				Mode:             ModeLearning,
				ProfileComplete:  true,
				GoalStatus:       GoalCommitted,
				HasActivePathway: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Resolve(tt.snap)
			if err != nil {
				t.Fatalf("Resolve error: %v", err)
			}
			if d.Mode != tt.snap.Mode {
				t.Errorf("mode = %q, want unchanged %q", d.Mode, tt.snap.Mode)
			}
			if d.Changed {
				t.Error("changed = true, want false")
			}
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	snap := LearnerSnapshot{Mode: ModeIntake, ProfileComplete: true}

	first, err := Resolve(snap)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if first.Mode != ModeGoalDiscovery || !first.Changed {
		t.Fatalf("first decision = %+v", first)
	}

	// Caller persists the decision; the next snapshot reflects it.
	snap.Mode = first.Mode
	second, err := Resolve(snap)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if second.Mode != ModeGoalDiscovery {
		t.Errorf("second mode = %q, want GOAL_DISCOVERY", second.Mode)
	}
	if second.Changed {
		t.Error("second changed = true, want false")
	}
}

func TestResolve_InconsistentSnapshot(t *testing.T) {
	tests := []struct {
		name string
		snap LearnerSnapshot
	}{
		{
			name: "active pathway while exploring",
			snap: LearnerSnapshot{
				Mode:             ModeLearning,
				GoalStatus:       GoalExploring,
				HasActivePathway: true,
			},
		},
		{
			name: "active pathway without any goal",
			snap: LearnerSnapshot{Mode: ModeLearning, HasActivePathway: true},
		},
		{
			name: "unknown goal status",
			snap: LearnerSnapshot{Mode: ModeIntake, GoalStatus: "wishful"},
		},
		{
			name: "unknown persisted mode",
			snap: LearnerSnapshot{Mode: "DAYDREAM"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.snap)
			var inconsistent *InconsistentStateError
			if !errors.As(err, &inconsistent) {
				t.Fatalf("error = %v, want InconsistentStateError", err)
			}
			if inconsistent.Snapshot.Mode != tt.snap.Mode {
				t.Errorf("error snapshot = %+v, want the offending snapshot", inconsistent.Snapshot)
			}
		})
	}
}

func TestResolve_GuardPriorityOrder(t *testing.T) {
	// A snapshot satisfying a lower guard must not fire from a different
	// current mode: only the current mode's row applies.
	snap := LearnerSnapshot{
		Mode:             ModeIntake,
		ProfileComplete:  false,
		GoalStatus:       GoalCommitted,
		HasActivePathway: false,
	}
	d, err := Resolve(snap)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if d.Mode != ModeIntake {
		t.Errorf("mode = %q, want INTAKE (GOAL_DISCOVERY row must not fire from INTAKE)", d.Mode)
	}
}

func TestFallbackMode(t *testing.T) {
	if FallbackMode != ModeIntake {
		t.Errorf("fallback mode = %q, want INTAKE", FallbackMode)
	}
}
