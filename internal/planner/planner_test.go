package planner

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/careerstu/careerstu/internal/llm"
)

const goodPlan = `{
	"skills": [
		{"name": "SQL", "estimated_hours": 25, "reason": "Foundation for all data work."},
		{"name": "Tableau", "estimated_hours": 15, "reason": "Builds directly on query skills."}
	],
	"rationale": "Query skills first, then visualization on top of them."
}`

func testInput() PlanInput {
	return PlanInput{
		TargetJobTitle:   "Data Analyst",
		MissingSkills:    []string{"SQL", "Tableau"},
		KnownSkills:      []string{"Excel"},
		WeeklyStudyHours: 6,
	}
}

func TestPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(goodPlan)})
	p := New(mock, DefaultConfig())

	plan, err := p.Plan(context.Background(), testInput())
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	if len(plan.Skills) != 2 {
		t.Fatalf("got %d skills, want 2", len(plan.Skills))
	}
	if plan.Skills[0].Name != "SQL" || plan.Skills[0].EstimatedHours != 25 {
		t.Errorf("first skill = %+v", plan.Skills[0])
	}
	if got := plan.SkillNames(); got[0] != "SQL" || got[1] != "Tableau" {
		t.Errorf("skill names = %v", got)
	}
	if plan.Rationale == "" {
		t.Error("missing rationale")
	}
}

func TestPlanRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(goodPlan)})
	p := New(mock, DefaultConfig())

	if _, err := p.Plan(context.Background(), testInput()); err != nil {
		t.Fatalf("plan: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "pathway-plan" {
		t.Fatalf("schema = %+v, want pathway-plan", req.Schema)
	}
	if len(req.Tools) != 0 {
		t.Errorf("tools advertised on a structured-output request: %v", req.Tools)
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Missing skills: SQL, Tableau") {
		t.Errorf("user message missing gap list:\n%s", msg)
	}
	if !strings.Contains(msg, "Study budget: 6 hours per week") {
		t.Errorf("user message missing study budget:\n%s", msg)
	}
}

func TestPlanRejectsInventedSkill(t *testing.T) {
	out := `{"skills": [{"name": "Kubernetes", "estimated_hours": 30, "reason": "x"}], "rationale": "y"}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(out)})
	p := New(mock, DefaultConfig())

	_, err := p.Plan(context.Background(), testInput())
	if err == nil || !strings.Contains(err.Error(), "Kubernetes") {
		t.Fatalf("error = %v, want invented-skill rejection", err)
	}
}

func TestPlanRejectsDuplicateSkill(t *testing.T) {
	out := `{"skills": [
		{"name": "SQL", "estimated_hours": 25, "reason": "x"},
		{"name": "sql", "estimated_hours": 10, "reason": "y"}
	], "rationale": "z"}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(out)})
	p := New(mock, DefaultConfig())

	_, err := p.Plan(context.Background(), testInput())
	if err == nil || !strings.Contains(err.Error(), "repeats") {
		t.Fatalf("error = %v, want duplicate rejection", err)
	}
}

func TestPlanEmptyGap(t *testing.T) {
	p := New(llm.NewMockProvider(), DefaultConfig())

	_, err := p.Plan(context.Background(), PlanInput{TargetJobTitle: "Data Analyst"})
	if err == nil {
		t.Fatal("expected error for empty gap")
	}
}

func TestPlanBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("not json")})
	p := New(mock, DefaultConfig())

	_, err := p.Plan(context.Background(), testInput())
	if err == nil || !strings.Contains(err.Error(), "parse plan response") {
		t.Fatalf("error = %v, want parse failure", err)
	}
}
