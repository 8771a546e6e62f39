package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/careerstu/careerstu/internal/modes"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestLearner(t *testing.T, s *Store) *Learner {
	t.Helper()
	l, err := s.LearnerRepo().CreateLearner(context.Background(), "test@example.com", "Test Learner")
	if err != nil {
		t.Fatalf("create learner: %v", err)
	}
	return l
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCreateAndGetLearner(t *testing.T) {
	s := openTestStore(t)
	l := createTestLearner(t, s)

	if l.LearnerID == "" {
		t.Fatal("expected generated learner ID")
	}
	if l.Status != "new" {
		t.Errorf("status = %q, want new", l.Status)
	}

	got, err := s.LearnerRepo().GetLearner(context.Background(), l.LearnerID)
	if err != nil {
		t.Fatalf("get learner: %v", err)
	}
	if got.Email != "test@example.com" {
		t.Errorf("email = %q", got.Email)
	}
}

func TestGetLearnerNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LearnerRepo().GetLearner(context.Background(), "nope")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
	if nf.Entity != "learner" {
		t.Errorf("entity = %q", nf.Entity)
	}
}

func TestUpdateProfile(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()
	l := createTestLearner(t, s)

	title := "Junior Analyst"
	hours := 6
	complete := true
	err := repo.UpdateProfile(ctx, l.LearnerID, ProfileUpdate{
		CurrentJobTitle:  &title,
		WeeklyStudyHours: &hours,
		ProfileComplete:  &complete,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}

	got, err := repo.GetLearner(ctx, l.LearnerID)
	if err != nil {
		t.Fatalf("get learner: %v", err)
	}
	if got.CurrentJobTitle != title || got.WeeklyStudyHours != hours || !got.ProfileComplete {
		t.Errorf("profile = %+v", got)
	}
	// Any profile write moves the learner out of status "new".
	if got.Status != "active" {
		t.Errorf("status = %q, want active", got.Status)
	}
}

func TestAddSkillDuplicateFails(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()
	l := createTestLearner(t, s)

	if _, err := repo.AddSkill(ctx, l.LearnerID, "SQL", "intermediate", ""); err != nil {
		t.Fatalf("add skill: %v", err)
	}
	if _, err := repo.AddSkill(ctx, l.LearnerID, "SQL", "advanced", ""); err == nil {
		t.Fatal("duplicate skill accepted")
	}

	skills, err := repo.Skills(ctx, l.LearnerID)
	if err != nil {
		t.Fatalf("skills: %v", err)
	}
	if len(skills) != 1 {
		t.Errorf("got %d skills, want 1", len(skills))
	}
	if skills[0].EvidenceSource != "self_reported" {
		t.Errorf("evidence = %q, want default self_reported", skills[0].EvidenceSource)
	}
}

func TestSetGoalNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()
	l := createTestLearner(t, s)

	if _, err := repo.SetGoal(ctx, l.LearnerID, "Data Analyst", ""); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	g2, err := repo.SetGoal(ctx, l.LearnerID, "Data Scientist", "committed")
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}

	goals, err := repo.Goals(ctx, l.LearnerID)
	if err != nil {
		t.Fatalf("goals: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("got %d goals, want 2", len(goals))
	}
	if goals[0].GoalID != g2.GoalID {
		t.Errorf("newest goal = %q, want %q", goals[0].GoalID, g2.GoalID)
	}
	if goals[0].Status != "committed" {
		t.Errorf("status = %q", goals[0].Status)
	}
}

func TestCreatePathwayRequiresOwnGoal(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()
	l := createTestLearner(t, s)

	_, err := repo.CreatePathway(ctx, l.LearnerID, "missing-goal", []string{"sql"})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}

func TestPathwayLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()
	l := createTestLearner(t, s)

	g, err := repo.SetGoal(ctx, l.LearnerID, "Data Scientist", "committed")
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}

	p, err := repo.CreatePathway(ctx, l.LearnerID, g.GoalID, []string{"sql", "python", "statistics"})
	if err != nil {
		t.Fatalf("create pathway: %v", err)
	}
	if p.TotalSkills != 3 || p.EstimatedHours != 60 {
		t.Errorf("pathway = %+v", p)
	}

	active, err := repo.ActivePathway(ctx, l.LearnerID)
	if err != nil {
		t.Fatalf("active pathway: %v", err)
	}
	if active == nil || active.PathwayID != p.PathwayID {
		t.Fatalf("active = %+v", active)
	}

	skills, err := repo.PathwaySkills(ctx, p.PathwayID)
	if err != nil {
		t.Fatalf("pathway skills: %v", err)
	}
	if len(skills) != 3 || skills[0].SkillName != "sql" || skills[2].SequenceOrder != 3 {
		t.Errorf("skills = %+v", skills)
	}

	// Nothing started: current skill is the first not-started one.
	cur, err := repo.CurrentSkill(ctx, p.PathwayID)
	if err != nil {
		t.Fatalf("current skill: %v", err)
	}
	if cur == nil || cur.SkillName != "sql" {
		t.Errorf("current = %+v", cur)
	}

	if _, err := repo.UpdatePathwayProgress(ctx, p.PathwayID, "python", "in_progress"); err != nil {
		t.Fatalf("update progress: %v", err)
	}
	cur, err = repo.CurrentSkill(ctx, p.PathwayID)
	if err != nil {
		t.Fatalf("current skill: %v", err)
	}
	if cur == nil || cur.SkillName != "python" {
		t.Errorf("current after start = %+v, want python (in progress wins)", cur)
	}

	completed, err := repo.UpdatePathwayProgress(ctx, p.PathwayID, "python", "completed")
	if err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if completed != 1 {
		t.Errorf("completed count = %d, want 1", completed)
	}

	active, err = repo.ActivePathway(ctx, l.LearnerID)
	if err != nil {
		t.Fatalf("active pathway: %v", err)
	}
	if active.CompletedSkills != 1 {
		t.Errorf("pathway completed = %d, want 1", active.CompletedSkills)
	}
}

func TestUpdatePathwayProgressUnknownSkill(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()
	l := createTestLearner(t, s)

	g, err := repo.SetGoal(ctx, l.LearnerID, "Data Scientist", "committed")
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}
	p, err := repo.CreatePathway(ctx, l.LearnerID, g.GoalID, []string{"sql"})
	if err != nil {
		t.Fatalf("create pathway: %v", err)
	}

	_, err = repo.UpdatePathwayProgress(ctx, p.PathwayID, "basket weaving", "completed")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}

func TestSnapshotAssembly(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()
	l := createTestLearner(t, s)

	// Brand-new learner: no mode, no goal, no pathway.
	snap, err := repo.Snapshot(ctx, l.LearnerID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Mode != "" || snap.HasGoal() || snap.HasActivePathway {
		t.Errorf("new learner snapshot = %+v", snap)
	}
	if snap.Status != modes.StatusNew {
		t.Errorf("status = %q", snap.Status)
	}

	complete := true
	if err := repo.UpdateProfile(ctx, l.LearnerID, ProfileUpdate{ProfileComplete: &complete}); err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if err := repo.SetMode(ctx, l.LearnerID, string(modes.ModeGoalDiscovery)); err != nil {
		t.Fatalf("set mode: %v", err)
	}
	g, err := repo.SetGoal(ctx, l.LearnerID, "Data Scientist", "committed")
	if err != nil {
		t.Fatalf("set goal: %v", err)
	}
	p, err := repo.CreatePathway(ctx, l.LearnerID, g.GoalID, []string{"sql", "python"})
	if err != nil {
		t.Fatalf("create pathway: %v", err)
	}
	if _, err := repo.UpdatePathwayProgress(ctx, p.PathwayID, "sql", "in_progress"); err != nil {
		t.Fatalf("update progress: %v", err)
	}

	snap, err = repo.Snapshot(ctx, l.LearnerID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Mode != modes.ModeGoalDiscovery {
		t.Errorf("mode = %q", snap.Mode)
	}
	if !snap.ProfileComplete {
		t.Error("profile complete not reflected")
	}
	if snap.GoalStatus != modes.GoalCommitted {
		t.Errorf("goal status = %q", snap.GoalStatus)
	}
	if !snap.HasActivePathway {
		t.Error("active pathway not reflected")
	}
	if snap.CurrentPathwaySkill != "sql" {
		t.Errorf("current skill = %q", snap.CurrentPathwaySkill)
	}
}

func TestEventAppends(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	err := events.AppendModeTransition(ctx, ModeEventData{
		LearnerID: "l1",
		FromMode:  "INTAKE",
		ToMode:    "GOAL_DISCOVERY",
		Reason:    "profile completed",
	})
	if err != nil {
		t.Fatalf("append mode transition: %v", err)
	}

	err = events.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "m", Purpose: "chat-turn", Success: true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	me, err := s.Client().ModeEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query mode event: %v", err)
	}
	le, err := s.Client().LLMRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query llm event: %v", err)
	}
	// Both event types share the one global sequence.
	if me.Sequence == le.Sequence {
		t.Errorf("sequences collide: %d", me.Sequence)
	}
	if me.Sequence != 1 || le.Sequence != 2 {
		t.Errorf("sequences = %d, %d, want 1, 2", me.Sequence, le.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := events.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:    "anthropic",
			Model:       "m",
			Purpose:     "chat-turn",
			InputTokens: 100 + i,
			Success:     true,
		})
		if err != nil {
			t.Fatalf("append llm request %d: %v", i, err)
		}
	}

	recs, err := events.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	// Newest first.
	if recs[0].Sequence <= recs[1].Sequence {
		t.Errorf("order = %d, %d, want descending", recs[0].Sequence, recs[1].Sequence)
	}
	if recs[0].InputTokens != 102 {
		t.Errorf("newest input tokens = %d, want 102", recs[0].InputTokens)
	}

	got, err := events.GetLLMEvent(ctx, recs[0].ID)
	if err != nil {
		t.Fatalf("get llm event: %v", err)
	}
	if got == nil || got.ID != recs[0].ID {
		t.Errorf("got = %+v", got)
	}

	missing, err := events.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Errorf("missing event = %+v, want nil", missing)
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude", Purpose: "chat-turn", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "anthropic", Model: "claude", Purpose: "chat-turn", InputTokens: 200, OutputTokens: 100, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt", Purpose: "classify", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
	}
	for i, data := range appends {
		if err := events.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := events.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	// Sorted by purpose name.
	if byPurpose[0].Purpose != "chat-turn" || byPurpose[1].Purpose != "classify" {
		t.Errorf("purposes = %q, %q", byPurpose[0].Purpose, byPurpose[1].Purpose)
	}
	ct := byPurpose[0]
	if ct.Calls != 2 || ct.InputTokens != 300 || ct.OutputTokens != 150 {
		t.Errorf("chat-turn usage = %+v", ct)
	}
	if ct.AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", ct.AvgLatencyMs)
	}

	byModel, err := events.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d models, want 2", len(byModel))
	}
	if byModel[0].Model != "claude" || byModel[0].Calls != 2 || byModel[0].InputTokens != 300 {
		t.Errorf("claude usage = %+v", byModel[0])
	}
}

func TestRecentModeTransitions(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	appends := []ModeEventData{
		{LearnerID: "l1", FromMode: "", ToMode: "INTAKE", Reason: "new learner"},
		{LearnerID: "l1", FromMode: "INTAKE", ToMode: "GOAL_DISCOVERY", Reason: "profile completed"},
		{LearnerID: "l2", FromMode: "", ToMode: "INTAKE", Reason: "new learner"},
	}
	for i, data := range appends {
		if err := events.AppendModeTransition(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := events.RecentModeTransitions(ctx, "", 10)
	if err != nil {
		t.Fatalf("recent transitions: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d transitions, want 3", len(all))
	}
	if all[0].LearnerID != "l2" {
		t.Errorf("newest learner = %q, want l2", all[0].LearnerID)
	}

	l1, err := events.RecentModeTransitions(ctx, "l1", 10)
	if err != nil {
		t.Fatalf("recent transitions for l1: %v", err)
	}
	if len(l1) != 2 {
		t.Fatalf("got %d transitions for l1, want 2", len(l1))
	}
	if l1[0].ToMode != "GOAL_DISCOVERY" || l1[1].ToMode != "INTAKE" {
		t.Errorf("transitions = %+v", l1)
	}
}
