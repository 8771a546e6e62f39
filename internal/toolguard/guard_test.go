package toolguard

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/careerstu/careerstu/internal/modes"
)

func testRegistry(t *testing.T) *Guard {
	t.Helper()
	g, err := New([]Tool{
		{
			Name:   "get_learner_context",
			Global: true,
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"learner_id": map[string]any{"type": "string"},
				},
				"required": []any{"learner_id"},
			},
		},
		{
			Name:  "add_learner_skill",
			Modes: []modes.Mode{modes.ModeIntake},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"learner_id": map[string]any{"type": "string"},
					"skill_name": map[string]any{"type": "string"},
					"proficiency_level": map[string]any{
						"type": "string",
						"enum": []any{"none", "beginner", "intermediate", "advanced", "expert"},
					},
				},
				"required": []any{"learner_id", "skill_name", "proficiency_level"},
			},
		},
		{
			Name:  "create_pathway",
			Modes: []modes.Mode{modes.ModePathway},
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestGuard_AllowsToolInItsMode(t *testing.T) {
	g := testRegistry(t)

	d := g.Check(modes.ModeIntake, "add_learner_skill")
	if !d.Allowed {
		t.Errorf("decision = %+v, want allowed", d)
	}
}

func TestGuard_RefusesToolOutsideItsMode(t *testing.T) {
	g := testRegistry(t)

	// Creating a pathway mid-intake must be refused with a reason, not
	// silently dropped.
	d := g.Check(modes.ModeIntake, "create_pathway")
	if d.Allowed {
		t.Fatal("create_pathway allowed in INTAKE")
	}
	if !strings.Contains(d.Reason, "create_pathway") || !strings.Contains(d.Reason, "INTAKE") {
		t.Errorf("reason = %q, want tool and mode named", d.Reason)
	}
}

func TestGuard_GlobalToolAllowedEverywhere(t *testing.T) {
	g := testRegistry(t)

	for _, m := range modes.AllModes() {
		if d := g.Check(m, "get_learner_context"); !d.Allowed {
			t.Errorf("get_learner_context refused in %s: %q", m, d.Reason)
		}
	}
}

func TestGuard_UnknownToolAndMode(t *testing.T) {
	g := testRegistry(t)

	if d := g.Check(modes.ModeIntake, "drop_tables"); d.Allowed || d.Reason == "" {
		t.Errorf("unknown tool decision = %+v", d)
	}
	if d := g.Check("SIESTA", "create_pathway"); d.Allowed || d.Reason == "" {
		t.Errorf("unknown mode decision = %+v", d)
	}
}

func TestGuard_DuplicateToolRejected(t *testing.T) {
	_, err := New([]Tool{
		{Name: "x", Global: true},
		{Name: "x", Modes: []modes.Mode{modes.ModeIntake}},
	})
	if err == nil {
		t.Fatal("duplicate tool accepted")
	}
}

func TestGuard_AllowedToolsSorted(t *testing.T) {
	g := testRegistry(t)

	tools := g.AllowedTools(modes.ModeIntake)
	if len(tools) != 2 {
		t.Fatalf("got %d tools, want 2", len(tools))
	}
	if tools[0].Name != "add_learner_skill" || tools[1].Name != "get_learner_context" {
		t.Errorf("tools = %v, %v", tools[0].Name, tools[1].Name)
	}
}

func TestValidateArgs_Valid(t *testing.T) {
	g := testRegistry(t)

	args := json.RawMessage(`{"learner_id":"l1","skill_name":"SQL","proficiency_level":"beginner"}`)
	if err := g.ValidateArgs("add_learner_skill", args); err != nil {
		t.Errorf("ValidateArgs error: %v", err)
	}
}

func TestValidateArgs_MissingRequired(t *testing.T) {
	g := testRegistry(t)

	err := g.ValidateArgs("add_learner_skill", json.RawMessage(`{"learner_id":"l1"}`))
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("error = %v, want ArgumentError", err)
	}
	if argErr.Tool != "add_learner_skill" {
		t.Errorf("tool = %q", argErr.Tool)
	}
}

func TestValidateArgs_EnumViolation(t *testing.T) {
	g := testRegistry(t)

	args := json.RawMessage(`{"learner_id":"l1","skill_name":"SQL","proficiency_level":"wizard"}`)
	err := g.ValidateArgs("add_learner_skill", args)
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Errorf("error = %v, want ArgumentError", err)
	}
}

func TestValidateArgs_MalformedJSON(t *testing.T) {
	g := testRegistry(t)

	err := g.ValidateArgs("add_learner_skill", json.RawMessage(`{not json`))
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Errorf("error = %v, want ArgumentError", err)
	}
}

func TestValidateArgs_GuardsCacheIndependently(t *testing.T) {
	// Two guards may register the same tool name with different schemas.
	// Each must validate against its own, not whichever compiled first.
	strict, err := New([]Tool{{
		Name:   "set_goal",
		Global: true,
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{"title": map[string]any{"type": "string"}},
			"required":   []any{"title"},
		},
	}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	loose, err := New([]Tool{{
		Name:        "set_goal",
		Global:      true,
		InputSchema: map[string]any{"type": "object"},
	}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := strict.ValidateArgs("set_goal", json.RawMessage(`{}`)); err == nil {
		t.Error("strict guard accepted args missing required field")
	}
	if err := loose.ValidateArgs("set_goal", json.RawMessage(`{}`)); err != nil {
		t.Errorf("loose guard rejected valid args: %v", err)
	}
	// And the strict guard keeps its schema even after the loose one compiled.
	if err := strict.ValidateArgs("set_goal", json.RawMessage(`{}`)); err == nil {
		t.Error("strict guard lost its schema after another guard validated")
	}
}

func TestValidateArgs_NoSchemaPasses(t *testing.T) {
	g := testRegistry(t)

	if err := g.ValidateArgs("create_pathway", nil); err != nil {
		t.Errorf("ValidateArgs error: %v", err)
	}
}
