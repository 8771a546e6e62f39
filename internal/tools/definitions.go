// Package tools defines the assistant's tool registry and dispatches
// validated tool calls to their backing collaborators.
package tools

import (
	"github.com/careerstu/careerstu/internal/modes"
	"github.com/careerstu/careerstu/internal/toolguard"
)

// Definitions returns the full tool registry with per-mode availability.
// The schemas are what gets advertised to the LLM provider; the guard
// enforces the mode lists.
func Definitions() []toolguard.Tool {
	return []toolguard.Tool{
		// Job search
		{
			Name:        "search_jobs",
			Description: "Search jobs by title, skills, location, or level in the unified jobs corpus",
			Modes:       []modes.Mode{modes.ModeGoalDiscovery},
			InputSchema: objectSchema(map[string]any{
				"job_title": map[string]any{
					"type":        "string",
					"description": "Job title to search for (partial match supported)",
				},
				"skills": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "List of skills to match",
				},
				"location": map[string]any{
					"type":        "string",
					"description": "Job location (city, state, or remote)",
				},
				"job_level": map[string]any{
					"type":        "string",
					"description": "Job level (e.g., Entry, Mid-Senior, Director, Associate)",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of results to return",
					"default":     10,
				},
			}),
		},
		{
			Name:        "search_jobs_by_riasec",
			Description: "Find jobs matching a RIASEC code (e.g., 'SRI', 'IRA')",
			Modes:       []modes.Mode{modes.ModeGoalDiscovery},
			InputSchema: objectSchema(map[string]any{
				"riasec_code": map[string]any{
					"type":        "string",
					"description": "RIASEC code to match (e.g., 'SRI', 'IRA')",
				},
				"primary_type_only": map[string]any{
					"type":        "boolean",
					"description": "Only match primary RIASEC type (first letter)",
					"default":     false,
				},
				"job_level": map[string]any{
					"type":        "string",
					"description": "Filter by job level",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of results",
					"default":     10,
				},
			}, "riasec_code"),
		},
		{
			Name:        "get_job_details",
			Description: "Get full details for a specific job using its job link",
			Modes:       []modes.Mode{modes.ModeGoalDiscovery, modes.ModePathway, modes.ModeLearning},
			InputSchema: objectSchema(map[string]any{
				"job_link": map[string]any{
					"type":        "string",
					"description": "The job link identifier from search results",
				},
			}, "job_link"),
		},

		// RIASEC
		{
			Name:        "infer_riasec_from_skills",
			Description: "Given a list of skills, predict the most likely RIASEC code",
			Modes:       []modes.Mode{modes.ModeGoalDiscovery},
			InputSchema: objectSchema(map[string]any{
				"skills": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "List of skills to analyze",
				},
			}, "skills"),
		},
		{
			Name:        "get_riasec_description",
			Description: "Get description and career themes for a RIASEC code",
			Modes:       []modes.Mode{modes.ModeGoalDiscovery},
			InputSchema: objectSchema(map[string]any{
				"riasec_code": map[string]any{
					"type":        "string",
					"description": "RIASEC code (e.g., 'SRI')",
				},
			}, "riasec_code"),
		},
		{
			Name:        "compare_riasec_codes",
			Description: "Compare learner's RIASEC code to a target job's RIASEC code to assess fit",
			Modes:       []modes.Mode{modes.ModeGoalDiscovery},
			InputSchema: objectSchema(map[string]any{
				"learner_riasec": map[string]any{
					"type":        "string",
					"description": "Learner's RIASEC code",
				},
				"job_riasec": map[string]any{
					"type":        "string",
					"description": "Job's RIASEC code",
				},
			}, "learner_riasec", "job_riasec"),
		},

		// Salary and market
		{
			Name:        "get_salary_info",
			Description: "Look up salary and market demand for a job title",
			Modes:       []modes.Mode{modes.ModeGoalDiscovery, modes.ModePathway},
			InputSchema: objectSchema(map[string]any{
				"job_title": map[string]any{
					"type":        "string",
					"description": "Job title to look up",
				},
			}, "job_title"),
		},
		{
			Name:        "get_high_demand_jobs",
			Description: "Find jobs with labor shortages (good career prospects)",
			Modes:       []modes.Mode{modes.ModeGoalDiscovery},
			InputSchema: objectSchema(map[string]any{
				"riasec_type": map[string]any{
					"type":        "string",
					"description": "Filter by RIASEC primary type (S, I, R, A, E, C)",
				},
				"min_salary": map[string]any{
					"type":        "integer",
					"description": "Minimum salary threshold",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of results",
					"default":     10,
				},
			}),
		},

		// Skills gap
		{
			Name:        "calculate_skill_gap",
			Description: "Compare learner's skills to a target job's requirements",
			Modes:       []modes.Mode{modes.ModePathway},
			InputSchema: objectSchema(map[string]any{
				"learner_skills": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "List of skills the learner has",
				},
				"target_job_link": map[string]any{
					"type":        "string",
					"description": "Job link of the target job",
				},
			}, "learner_skills", "target_job_link"),
		},
		{
			Name:        "find_jobs_by_skill_match",
			Description: "Find jobs where learner has the highest skill match percentage",
			Modes:       []modes.Mode{modes.ModeGoalDiscovery, modes.ModePathway},
			InputSchema: objectSchema(map[string]any{
				"learner_skills": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "List of skills the learner has",
				},
				"min_match_percent": map[string]any{
					"type":        "number",
					"description": "Minimum match percentage (0-100)",
					"default":     50,
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of results",
					"default":     10,
				},
			}, "learner_skills"),
		},

		// Learner management
		{
			Name:        "get_learner_context",
			Description: "Get full learner profile, skills, goals, and pathway progress",
			Global:      true,
			InputSchema: objectSchema(map[string]any{
				"learner_id": map[string]any{
					"type":        "string",
					"description": "Learner's unique ID",
				},
			}, "learner_id"),
		},
		{
			Name:        "update_learner_profile",
			Description: "Update learner profile information",
			Modes:       []modes.Mode{modes.ModeIntake},
			InputSchema: objectSchema(map[string]any{
				"learner_id": map[string]any{
					"type":        "string",
					"description": "Learner's unique ID",
				},
				"updates": map[string]any{
					"type":        "object",
					"description": "Fields to update (e.g., current_job_title, years_experience)",
				},
			}, "learner_id", "updates"),
		},
		{
			Name:        "add_learner_skill",
			Description: "Add a skill to learner's profile",
			Modes:       []modes.Mode{modes.ModeIntake},
			InputSchema: objectSchema(map[string]any{
				"learner_id": map[string]any{
					"type":        "string",
					"description": "Learner's unique ID",
				},
				"skill_name": map[string]any{
					"type":        "string",
					"description": "Name of the skill",
				},
				"proficiency_level": map[string]any{
					"type":        "string",
					"description": "Proficiency: none, beginner, intermediate, advanced, expert",
					"enum":        []any{"none", "beginner", "intermediate", "advanced", "expert"},
				},
				"evidence_source": map[string]any{
					"type":        "string",
					"description": "Source: self_reported, validated, credential",
					"default":     "self_reported",
				},
			}, "learner_id", "skill_name", "proficiency_level"),
		},
		{
			Name:        "set_learner_goal",
			Description: "Set or update learner's career goal",
			Modes:       []modes.Mode{modes.ModeGoalDiscovery, modes.ModeLearning},
			InputSchema: objectSchema(map[string]any{
				"learner_id": map[string]any{
					"type":        "string",
					"description": "Learner's unique ID",
				},
				"target_job_title": map[string]any{
					"type":        "string",
					"description": "Target job title",
				},
				"status": map[string]any{
					"type":        "string",
					"description": "Goal status: exploring, committed, achieved, changed",
					"enum":        []any{"exploring", "committed", "achieved", "changed"},
					"default":     "exploring",
				},
			}, "learner_id", "target_job_title"),
		},
		{
			Name:        "create_pathway",
			Description: "Create a learning pathway for the learner",
			Modes:       []modes.Mode{modes.ModePathway},
			InputSchema: objectSchema(map[string]any{
				"learner_id": map[string]any{
					"type":        "string",
					"description": "Learner's unique ID",
				},
				"goal_id": map[string]any{
					"type":        "string",
					"description": "Goal ID to create pathway for",
				},
				"skills_to_learn": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Ordered list of skills to learn",
				},
			}, "learner_id", "goal_id", "skills_to_learn"),
		},
		{
			Name:        "update_pathway_progress",
			Description: "Update the status of a skill in a pathway",
			Modes:       []modes.Mode{modes.ModeLearning},
			InputSchema: objectSchema(map[string]any{
				"pathway_id": map[string]any{
					"type":        "string",
					"description": "Pathway's unique ID",
				},
				"skill_name": map[string]any{
					"type":        "string",
					"description": "Name of the skill to update",
				},
				"new_status": map[string]any{
					"type":        "string",
					"description": "New status for the skill",
					"enum":        []any{"not_started", "in_progress", "completed"},
				},
			}, "pathway_id", "skill_name", "new_status"),
		},
	}
}

// objectSchema builds a JSON Schema object with the given properties and
// required property names.
func objectSchema(props map[string]any, required ...string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		req := make([]any, 0, len(required))
		for _, r := range required {
			req = append(req, r)
		}
		s["required"] = req
	}
	return s
}
