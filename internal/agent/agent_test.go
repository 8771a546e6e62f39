package agent

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/careerstu/careerstu/internal/corpus"
	"github.com/careerstu/careerstu/internal/llm"
	"github.com/careerstu/careerstu/internal/modes"
	"github.com/careerstu/careerstu/internal/store"
	"github.com/careerstu/careerstu/internal/tools"
)

// fakeRepo is an in-memory LearnerRepo whose snapshot is set directly by
// each test.
type fakeRepo struct {
	learner  *store.Learner
	skills   []store.Skill
	goals    []store.Goal
	snapshot modes.LearnerSnapshot
	modeSets []string
}

func (f *fakeRepo) CreateLearner(_ context.Context, email, name string) (*store.Learner, error) {
	return &store.Learner{LearnerID: "l1", Email: email, Name: name, Status: "new"}, nil
}

func (f *fakeRepo) GetLearner(_ context.Context, id string) (*store.Learner, error) {
	if f.learner == nil || f.learner.LearnerID != id {
		return nil, &store.NotFoundError{Entity: "learner", ID: id}
	}
	return f.learner, nil
}

func (f *fakeRepo) ListLearners(context.Context) ([]store.Learner, error) {
	if f.learner == nil {
		return nil, nil
	}
	return []store.Learner{*f.learner}, nil
}

func (f *fakeRepo) UpdateProfile(_ context.Context, _ string, _ store.ProfileUpdate) error {
	return nil
}

func (f *fakeRepo) AddSkill(_ context.Context, id, name, prof, evidence string) (*store.Skill, error) {
	s := store.Skill{SkillID: "s1", LearnerID: id, SkillName: name, ProficiencyLevel: prof, EvidenceSource: evidence, CreatedAt: time.Now()}
	f.skills = append(f.skills, s)
	return &s, nil
}

func (f *fakeRepo) Skills(_ context.Context, _ string) ([]store.Skill, error) {
	return f.skills, nil
}

func (f *fakeRepo) SetGoal(_ context.Context, id, title, status string) (*store.Goal, error) {
	g := store.Goal{GoalID: "g1", LearnerID: id, TargetJobTitle: title, Status: status}
	f.goals = append([]store.Goal{g}, f.goals...)
	return &g, nil
}

func (f *fakeRepo) Goals(_ context.Context, _ string) ([]store.Goal, error) {
	return f.goals, nil
}

func (f *fakeRepo) CreatePathway(_ context.Context, id, goalID string, skills []string) (*store.Pathway, error) {
	return &store.Pathway{PathwayID: "p1", LearnerID: id, GoalID: goalID, Status: "active", TotalSkills: len(skills)}, nil
}

func (f *fakeRepo) ActivePathway(_ context.Context, _ string) (*store.Pathway, error) {
	return nil, nil
}

func (f *fakeRepo) PathwaySkills(_ context.Context, _ string) ([]store.PathwaySkill, error) {
	return nil, nil
}

func (f *fakeRepo) UpdatePathwayProgress(_ context.Context, _, _, _ string) (int, error) {
	return 1, nil
}

func (f *fakeRepo) CurrentSkill(_ context.Context, _ string) (*store.PathwaySkill, error) {
	return nil, nil
}

func (f *fakeRepo) SetMode(_ context.Context, _, mode string) error {
	f.modeSets = append(f.modeSets, mode)
	f.snapshot.Mode = modes.Mode(mode)
	return nil
}

func (f *fakeRepo) Snapshot(_ context.Context, _ string) (modes.LearnerSnapshot, error) {
	return f.snapshot, nil
}

// fakeEvents records appended events.
type fakeEvents struct {
	transitions []store.ModeEventData
	llmRequests []store.LLMRequestEventData
}

func (f *fakeEvents) AppendModeTransition(_ context.Context, data store.ModeEventData) error {
	f.transitions = append(f.transitions, data)
	return nil
}

func (f *fakeEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.llmRequests = append(f.llmRequests, data)
	return nil
}

func (f *fakeEvents) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEvents) GetLLMEvent(context.Context, int) (*store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByPurpose(context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func (f *fakeEvents) RecentModeTransitions(context.Context, string, int) ([]store.ModeTransitionRecord, error) {
	return nil, nil
}

func testAgent(t *testing.T, mock *llm.MockProvider) (*Agent, *fakeRepo, *fakeEvents) {
	t.Helper()

	gw := corpus.NewMemGateway()
	gw.AddJobs(corpus.Job{
		Link: "job-1", Title: "Data Analyst", Company: "Globex",
		Skills:     "sql, excel",
		RiasecCode: "ICE", RiasecConfidence: 0.8, PrimaryType: "I",
	})

	repo := &fakeRepo{
		learner: &store.Learner{LearnerID: "l1", Email: "l1@example.com", Status: "new"},
		snapshot: modes.LearnerSnapshot{
			LearnerID: "l1",
			Status:    modes.StatusNew,
		},
	}
	events := &fakeEvents{}

	d, err := tools.NewDispatcher(gw, repo)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	return New(mock, d, repo, events, "l1"), repo, events
}

func TestTurn_PlainReply(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Welcome! Tell me about your current role.`)},
	)
	a, repo, events := testAgent(t, mock)

	res, err := a.Turn(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}

	if res.Reply != "Welcome! Tell me about your current role." {
		t.Errorf("reply = %q", res.Reply)
	}
	if res.Mode != modes.ModeIntake {
		t.Errorf("mode = %s, want INTAKE", res.Mode)
	}

	// A brand-new learner enters INTAKE: persisted and logged once.
	if len(repo.modeSets) != 1 || repo.modeSets[0] != string(modes.ModeIntake) {
		t.Errorf("mode sets = %v", repo.modeSets)
	}
	if len(events.transitions) != 1 || events.transitions[0].ToMode != string(modes.ModeIntake) {
		t.Errorf("transitions = %+v", events.transitions)
	}
}

func TestTurn_SystemPromptCarriesModeAndContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`ok`)},
	)
	a, repo, _ := testAgent(t, mock)
	repo.learner.CurrentJobTitle = "Retail Clerk"

	if _, err := a.Turn(context.Background(), "hi"); err != nil {
		t.Fatalf("Turn: %v", err)
	}

	sys := mock.Calls[0].System
	if !strings.Contains(sys, "Current Mode: INTAKE") {
		t.Error("system prompt missing mode section")
	}
	if !strings.Contains(sys, "Retail Clerk") {
		t.Error("system prompt missing learner context")
	}
}

func TestTurn_OnlyModeToolsAdvertised(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`ok`)},
	)
	a, _, _ := testAgent(t, mock)

	if _, err := a.Turn(context.Background(), "hi"); err != nil {
		t.Fatalf("Turn: %v", err)
	}

	names := make(map[string]bool)
	for _, spec := range mock.Calls[0].Tools {
		names[spec.Name] = true
	}
	if !names["add_learner_skill"] || !names["get_learner_context"] {
		t.Errorf("intake tools missing: %v", names)
	}
	if names["create_pathway"] || names["search_jobs"] {
		t.Errorf("out-of-mode tools advertised: %v", names)
	}
}

func TestTurn_ToolUseLoop(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{ToolCalls: []llm.ToolCall{
			{ID: "call_1", Name: "add_learner_skill", Args: json.RawMessage(`{"learner_id":"l1","skill_name":"SQL","proficiency_level":"intermediate"}`)},
		}},
		llm.MockResponse{Content: json.RawMessage(`Got it, SQL recorded.`)},
	)
	a, repo, _ := testAgent(t, mock)

	res, err := a.Turn(context.Background(), "I know SQL")
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}

	if res.Reply != "Got it, SQL recorded." {
		t.Errorf("reply = %q", res.Reply)
	}
	if len(res.ToolsUsed) != 1 || res.ToolsUsed[0] != "add_learner_skill" {
		t.Errorf("tools used = %v", res.ToolsUsed)
	}
	if len(repo.skills) != 1 || repo.skills[0].SkillName != "SQL" {
		t.Errorf("skills = %+v", repo.skills)
	}

	// Second call carries the tool exchange in history.
	second := mock.Calls[1]
	var sawCall, sawResult bool
	for _, m := range second.Messages {
		if len(m.ToolCalls) > 0 {
			sawCall = true
		}
		for _, r := range m.ToolResults {
			if r.CallID == "call_1" && !r.IsError {
				sawResult = true
			}
		}
	}
	if !sawCall || !sawResult {
		t.Errorf("history missing tool exchange: call=%v result=%v", sawCall, sawResult)
	}
}

func TestTurn_RefusedToolBecomesErrorResult(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{ToolCalls: []llm.ToolCall{
			{ID: "call_1", Name: "create_pathway", Args: json.RawMessage(`{"learner_id":"l1","goal_id":"g1","skills_to_learn":["sql"]}`)},
		}},
		llm.MockResponse{Content: json.RawMessage(`Let's finish your profile first.`)},
	)
	a, _, _ := testAgent(t, mock)

	res, err := a.Turn(context.Background(), "make my pathway now")
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if res.Reply != "Let's finish your profile first." {
		t.Errorf("reply = %q", res.Reply)
	}

	second := mock.Calls[1]
	var errResult *llm.ToolResult
	for _, m := range second.Messages {
		for i := range m.ToolResults {
			if m.ToolResults[i].CallID == "call_1" {
				errResult = &m.ToolResults[i]
			}
		}
	}
	if errResult == nil || !errResult.IsError {
		t.Fatalf("refusal not surfaced as error result: %+v", errResult)
	}
	if !strings.Contains(string(errResult.Content), "create_pathway") {
		t.Errorf("error content = %s", errResult.Content)
	}
}

func TestTurn_ModeNotReResolvedMidTurn(t *testing.T) {
	// Completing the profile mid-turn must not change the running mode.
	mock := llm.NewMockProvider(
		llm.MockResponse{ToolCalls: []llm.ToolCall{
			{ID: "call_1", Name: "update_learner_profile", Args: json.RawMessage(`{"learner_id":"l1","updates":{"profile_complete":true}}`)},
		}},
		llm.MockResponse{Content: json.RawMessage(`Profile complete!`)},
	)
	a, repo, _ := testAgent(t, mock)

	res, err := a.Turn(context.Background(), "that's everything")
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if res.Mode != modes.ModeIntake {
		t.Errorf("mode = %s, want INTAKE for the whole turn", res.Mode)
	}

	// The next turn picks up the completed profile.
	repo.snapshot.ProfileComplete = true
	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`Let's find your direction.`)})

	res, err = a.Turn(context.Background(), "what now?")
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if res.Mode != modes.ModeGoalDiscovery {
		t.Errorf("mode = %s, want GOAL_DISCOVERY", res.Mode)
	}
	if !res.ModeChanged {
		t.Error("expected mode change on second turn")
	}
}

func TestTurn_InconsistentSnapshotFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Let's start over.`)},
	)
	a, repo, events := testAgent(t, mock)
	repo.snapshot.Mode = modes.Mode("SLEEPING")

	res, err := a.Turn(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Turn: %v", err)
	}
	if res.Mode != modes.FallbackMode {
		t.Errorf("mode = %s, want fallback %s", res.Mode, modes.FallbackMode)
	}
	if len(events.transitions) != 1 || !strings.Contains(events.transitions[0].Reason, "inconsistent") {
		t.Errorf("transitions = %+v", events.transitions)
	}
}

func TestReset_ClearsHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`hello`)},
		llm.MockResponse{Content: json.RawMessage(`hello again`)},
	)
	a, _, _ := testAgent(t, mock)

	if _, err := a.Turn(context.Background(), "first"); err != nil {
		t.Fatalf("Turn: %v", err)
	}
	a.Reset()
	if _, err := a.Turn(context.Background(), "second"); err != nil {
		t.Fatalf("Turn: %v", err)
	}

	// After reset, the second request starts a fresh transcript.
	if got := len(mock.Calls[1].Messages); got != 1 {
		t.Errorf("messages after reset = %d, want 1", got)
	}
}

func TestBuildSystemPrompt_NilContext(t *testing.T) {
	p := BuildSystemPrompt(modes.ModePathway, nil)
	if !strings.Contains(p, "Current Mode: PATHWAY") {
		t.Error("missing mode section")
	}
	if strings.Contains(p, "Current Learner Context") {
		t.Error("context section present without a learner")
	}
}
