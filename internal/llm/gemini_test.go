package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"job_title": map[string]any{"type": "string"},
			"level":     map[string]any{"type": "string", "enum": []any{"Entry-level", "Mid-level", "Senior"}},
			"min_match": map[string]any{"type": "integer"},
			"skills": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"job_title", "skills"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["job_title"].Type != "STRING" {
		t.Fatalf("expected STRING for job_title, got %s", schema.Properties["job_title"].Type)
	}
	if schema.Properties["min_match"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for min_match, got %s", schema.Properties["min_match"].Type)
	}
	if len(schema.Properties["level"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["level"].Enum))
	}
	if schema.Properties["skills"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for skills, got %s", schema.Properties["skills"].Type)
	}
	if schema.Properties["skills"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for skills items, got %s", schema.Properties["skills"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestBuildGeminiTools(t *testing.T) {
	tools := buildGeminiTools([]ToolSpec{
		{
			Name:        "calculate_skill_gap",
			Description: "Compare learner skills against a job's requirements",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"job_link": map[string]any{"type": "string"},
				},
				"required": []string{"job_link"},
			},
		},
	})

	if len(tools) != 1 {
		t.Fatalf("expected 1 tool group, got %d", len(tools))
	}
	decls := tools[0].FunctionDeclarations
	if len(decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(decls))
	}
	if decls[0].Name != "calculate_skill_gap" {
		t.Fatalf("unexpected name %q", decls[0].Name)
	}
	if decls[0].Parameters.Type != "OBJECT" {
		t.Fatalf("expected OBJECT parameters, got %s", decls[0].Parameters.Type)
	}
	if len(decls[0].Parameters.Required) != 1 || decls[0].Parameters.Required[0] != "job_link" {
		t.Fatalf("unexpected required list: %v", decls[0].Parameters.Required)
	}
}
