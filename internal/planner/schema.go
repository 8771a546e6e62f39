package planner

import "github.com/careerstu/careerstu/internal/llm"

// PlanSchema defines the JSON schema for LLM pathway plan responses.
var PlanSchema = &llm.Schema{
	Name:        "pathway-plan",
	Description: "An ordered learning plan covering a learner's skill gap",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skills": map[string]any{
				"type":        "array",
				"description": "The missing skills in recommended learning order, foundations first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{
							"type":        "string",
							"description": "The skill name, exactly as given in the gap list",
						},
						"estimated_hours": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     100,
							"description": "Realistic study hours to reach working proficiency",
						},
						"reason": map[string]any{
							"type":        "string",
							"description": "One sentence on why this skill sits at this position",
						},
					},
					"required":             []any{"name", "estimated_hours", "reason"},
					"additionalProperties": false,
				},
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "Two or three sentences on the overall sequencing strategy",
			},
		},
		"required":             []any{"skills", "rationale"},
		"additionalProperties": false,
	},
}
