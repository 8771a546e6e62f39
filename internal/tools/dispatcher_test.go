package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/careerstu/careerstu/internal/corpus"
	"github.com/careerstu/careerstu/internal/modes"
	"github.com/careerstu/careerstu/internal/store"
	"github.com/careerstu/careerstu/internal/toolguard"
)

// fakeLearnerRepo is a minimal in-memory LearnerRepo for dispatcher tests.
type fakeLearnerRepo struct {
	learners map[string]*store.Learner
	skills   map[string][]store.Skill
	goals    map[string][]store.Goal
	updates  []store.ProfileUpdate
}

func newFakeLearnerRepo() *fakeLearnerRepo {
	return &fakeLearnerRepo{
		learners: make(map[string]*store.Learner),
		skills:   make(map[string][]store.Skill),
		goals:    make(map[string][]store.Goal),
	}
}

func (f *fakeLearnerRepo) CreateLearner(_ context.Context, email, name string) (*store.Learner, error) {
	l := &store.Learner{LearnerID: "l-" + email, Email: email, Name: name, Status: "new"}
	f.learners[l.LearnerID] = l
	return l, nil
}

func (f *fakeLearnerRepo) GetLearner(_ context.Context, id string) (*store.Learner, error) {
	l, ok := f.learners[id]
	if !ok {
		return nil, &store.NotFoundError{Entity: "learner", ID: id}
	}
	return l, nil
}

func (f *fakeLearnerRepo) ListLearners(context.Context) ([]store.Learner, error) {
	out := make([]store.Learner, 0, len(f.learners))
	for _, l := range f.learners {
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLearnerRepo) UpdateProfile(_ context.Context, id string, u store.ProfileUpdate) error {
	if _, ok := f.learners[id]; !ok {
		return &store.NotFoundError{Entity: "learner", ID: id}
	}
	f.updates = append(f.updates, u)
	return nil
}

func (f *fakeLearnerRepo) AddSkill(_ context.Context, id, name, prof, evidence string) (*store.Skill, error) {
	s := store.Skill{SkillID: "s1", LearnerID: id, SkillName: name, ProficiencyLevel: prof, EvidenceSource: evidence, CreatedAt: time.Now()}
	f.skills[id] = append(f.skills[id], s)
	return &s, nil
}

func (f *fakeLearnerRepo) Skills(_ context.Context, id string) ([]store.Skill, error) {
	return f.skills[id], nil
}

func (f *fakeLearnerRepo) SetGoal(_ context.Context, id, title, status string) (*store.Goal, error) {
	if status == "" {
		status = "exploring"
	}
	g := store.Goal{GoalID: "g1", LearnerID: id, TargetJobTitle: title, Status: status}
	f.goals[id] = append([]store.Goal{g}, f.goals[id]...)
	return &g, nil
}

func (f *fakeLearnerRepo) Goals(_ context.Context, id string) ([]store.Goal, error) {
	return f.goals[id], nil
}

func (f *fakeLearnerRepo) CreatePathway(_ context.Context, id, goalID string, skills []string) (*store.Pathway, error) {
	return &store.Pathway{PathwayID: "p1", LearnerID: id, GoalID: goalID, Status: "active", TotalSkills: len(skills), EstimatedHours: len(skills) * 20}, nil
}

func (f *fakeLearnerRepo) ActivePathway(_ context.Context, _ string) (*store.Pathway, error) {
	return nil, nil
}

func (f *fakeLearnerRepo) PathwaySkills(_ context.Context, _ string) ([]store.PathwaySkill, error) {
	return nil, nil
}

func (f *fakeLearnerRepo) UpdatePathwayProgress(_ context.Context, _, _, _ string) (int, error) {
	return 1, nil
}

func (f *fakeLearnerRepo) CurrentSkill(_ context.Context, _ string) (*store.PathwaySkill, error) {
	return nil, nil
}

func (f *fakeLearnerRepo) SetMode(_ context.Context, _, _ string) error { return nil }

func (f *fakeLearnerRepo) Snapshot(_ context.Context, id string) (modes.LearnerSnapshot, error) {
	return modes.LearnerSnapshot{LearnerID: id}, nil
}

func testDispatcher(t *testing.T) (*Dispatcher, *fakeLearnerRepo) {
	t.Helper()

	gw := corpus.NewMemGateway()
	gw.AddJobs(
		corpus.Job{
			Link: "job-1", Title: "Data Scientist", Company: "Acme",
			Skills:     "python, sql, machine learning, statistics",
			RiasecCode: "IRC", RiasecConfidence: 0.9, PrimaryType: "I",
		},
		corpus.Job{
			Link: "job-2", Title: "Data Analyst", Company: "Globex",
			Skills:     "sql, excel",
			RiasecCode: "ICE", RiasecConfidence: 0.8, PrimaryType: "I",
		},
	)

	repo := newFakeLearnerRepo()
	repo.learners["l1"] = &store.Learner{LearnerID: "l1", Email: "l1@example.com", Status: "active"}

	d, err := NewDispatcher(gw, repo)
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}
	return d, repo
}

func TestDispatch_RefusedOutsideMode(t *testing.T) {
	d, _ := testDispatcher(t)

	_, err := d.Dispatch(context.Background(), modes.ModeIntake, "create_pathway",
		json.RawMessage(`{"learner_id":"l1","goal_id":"g1","skills_to_learn":["sql"]}`))

	var refused *RefusedError
	if !errors.As(err, &refused) {
		t.Fatalf("error = %v, want RefusedError", err)
	}
	if refused.Tool != "create_pathway" || refused.Mode != modes.ModeIntake {
		t.Errorf("refusal = %+v", refused)
	}
}

func TestDispatch_UnknownTool(t *testing.T) {
	d, _ := testDispatcher(t)

	_, err := d.Dispatch(context.Background(), modes.ModeIntake, "drop_tables", nil)
	var unknown *UnknownToolError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownToolError", err)
	}
}

func TestDispatch_InvalidArgs(t *testing.T) {
	d, _ := testDispatcher(t)

	// proficiency_level missing.
	_, err := d.Dispatch(context.Background(), modes.ModeIntake, "add_learner_skill",
		json.RawMessage(`{"learner_id":"l1","skill_name":"SQL"}`))

	var argErr *toolguard.ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("error = %v, want ArgumentError", err)
	}
}

func TestDispatch_InferRiasec(t *testing.T) {
	d, _ := testDispatcher(t)

	res, err := d.Dispatch(context.Background(), modes.ModeGoalDiscovery, "infer_riasec_from_skills",
		json.RawMessage(`{"skills":["data analysis","research","statistics"]}`))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	m := res.(map[string]any)
	code := m["riasec_code"].(string)
	if len(code) != 3 || code[0] != 'I' {
		t.Errorf("riasec_code = %q, want I-primary 3-letter code", code)
	}
}

func TestDispatch_SkillGapAgainstJob(t *testing.T) {
	d, _ := testDispatcher(t)

	res, err := d.Dispatch(context.Background(), modes.ModePathway, "calculate_skill_gap",
		json.RawMessage(`{"learner_skills":["python","sql"],"target_job_link":"job-1"}`))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	m := res.(map[string]any)
	if m["job_title"] != "Data Scientist" {
		t.Errorf("job_title = %v", m["job_title"])
	}
	if m["match_percentage"] != 50.0 {
		t.Errorf("match_percentage = %v, want 50", m["match_percentage"])
	}
	needs := m["skills_you_need"].([]string)
	if len(needs) != 2 {
		t.Errorf("skills_you_need = %v", needs)
	}
}

func TestDispatch_SkillGapUnknownJob(t *testing.T) {
	d, _ := testDispatcher(t)

	_, err := d.Dispatch(context.Background(), modes.ModePathway, "calculate_skill_gap",
		json.RawMessage(`{"learner_skills":["python"],"target_job_link":"job-404"}`))

	// Not-found is a tool-level error, not a collaborator outage.
	var nf *corpus.JobNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want JobNotFoundError", err)
	}
	var unavailable *CollaboratorUnavailableError
	if errors.As(err, &unavailable) {
		t.Error("not-found wrapped as collaborator failure")
	}
}

func TestDispatch_FindJobsBySkillMatch(t *testing.T) {
	d, _ := testDispatcher(t)

	res, err := d.Dispatch(context.Background(), modes.ModeGoalDiscovery, "find_jobs_by_skill_match",
		json.RawMessage(`{"learner_skills":["sql","excel"],"min_match_percent":50}`))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	out := res.([]map[string]any)
	if len(out) != 1 {
		t.Fatalf("got %d matches, want 1 (job-2 at 100%%)", len(out))
	}
	if out[0]["job_link"] != "job-2" || out[0]["match_percentage"] != 100.0 {
		t.Errorf("match = %+v", out[0])
	}
}

func TestDispatch_SalaryInfoNotFoundEnvelope(t *testing.T) {
	d, _ := testDispatcher(t)

	res, err := d.Dispatch(context.Background(), modes.ModeGoalDiscovery, "get_salary_info",
		json.RawMessage(`{"job_title":"Unicorn Wrangler"}`))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	m := res.(map[string]any)
	if m["found"] != false {
		t.Errorf("found = %v, want false envelope", m["found"])
	}
}

func TestDispatch_LearnerContextGlobal(t *testing.T) {
	d, _ := testDispatcher(t)
	args := json.RawMessage(`{"learner_id":"l1"}`)

	for _, m := range modes.AllModes() {
		res, err := d.Dispatch(context.Background(), m, "get_learner_context", args)
		if err != nil {
			t.Fatalf("get_learner_context in %s: %v", m, err)
		}
		lc := res.(*LearnerContext)
		if lc.Learner.LearnerID != "l1" {
			t.Errorf("learner = %+v", lc.Learner)
		}
	}
}

func TestDispatch_UpdateProfileFieldMapping(t *testing.T) {
	d, repo := testDispatcher(t)

	res, err := d.Dispatch(context.Background(), modes.ModeIntake, "update_learner_profile",
		json.RawMessage(`{"learner_id":"l1","updates":{"current_job_title":"Clerk","years_experience":4,"profile_complete":true,"favorite_color":"blue"}}`))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	m := res.(map[string]any)
	applied := m["updated_fields"].([]string)
	if len(applied) != 3 {
		t.Errorf("updated_fields = %v, want 3 known fields (unknown dropped)", applied)
	}

	if len(repo.updates) != 1 {
		t.Fatalf("got %d updates", len(repo.updates))
	}
	u := repo.updates[0]
	if u.CurrentJobTitle == nil || *u.CurrentJobTitle != "Clerk" {
		t.Errorf("CurrentJobTitle = %v", u.CurrentJobTitle)
	}
	if u.YearsExperience == nil || *u.YearsExperience != 4 {
		t.Errorf("YearsExperience = %v", u.YearsExperience)
	}
	if u.ProfileComplete == nil || !*u.ProfileComplete {
		t.Errorf("ProfileComplete = %v", u.ProfileComplete)
	}
}

func TestDispatch_UpdateProfileNoValidFields(t *testing.T) {
	d, _ := testDispatcher(t)

	_, err := d.Dispatch(context.Background(), modes.ModeIntake, "update_learner_profile",
		json.RawMessage(`{"learner_id":"l1","updates":{"favorite_color":"blue"}}`))
	if err == nil {
		t.Fatal("expected error for no valid fields")
	}
}

func TestDefinitions_AllToolsHandled(t *testing.T) {
	d, _ := testDispatcher(t)

	for _, def := range Definitions() {
		if _, ok := d.handlers[def.Name]; !ok {
			t.Errorf("tool %q has no handler", def.Name)
		}
	}
	if len(d.handlers) != len(Definitions()) {
		t.Errorf("handlers = %d, definitions = %d", len(d.handlers), len(Definitions()))
	}
}
