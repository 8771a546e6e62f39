// Package planner turns a skill gap into an ordered learning plan using
// an LLM provider with structured output. The model sequences and sizes
// the missing skills; it cannot invent skills outside the gap.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/careerstu/careerstu/internal/llm"
)

// Planner produces ordered pathway plans using the LLM provider.
type Planner struct {
	provider llm.Provider
	config   Config
}

// New creates a Planner with the given provider and config.
func New(provider llm.Provider, cfg Config) *Planner {
	return &Planner{provider: provider, config: cfg}
}

// PlanInput describes the gap to plan for.
type PlanInput struct {
	// TargetJobTitle is the job the learner is working toward.
	TargetJobTitle string

	// MissingSkills is the gap: required skills the learner lacks.
	// The plan orders a subset of these; it never adds to them.
	MissingSkills []string

	// KnownSkills is what the learner already has, for sequencing context.
	KnownSkills []string

	// WeeklyStudyHours is the learner's stated study budget. Zero means
	// unknown.
	WeeklyStudyHours int
}

// PlannedSkill is one ordered step of a plan.
type PlannedSkill struct {
	Name           string
	EstimatedHours int
	Reason         string
}

// Plan is an ordered learning plan toward a target job.
type Plan struct {
	Skills    []PlannedSkill
	Rationale string
}

// SkillNames returns the plan's skill names in order, for pathway creation.
func (p *Plan) SkillNames() []string {
	names := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		names[i] = s.Name
	}
	return names
}

// planOutput is the raw LLM response before validation.
type planOutput struct {
	Skills []struct {
		Name           string `json:"name"`
		EstimatedHours int    `json:"estimated_hours"`
		Reason         string `json:"reason"`
	} `json:"skills"`
	Rationale string `json:"rationale"`
}

// Plan produces an ordered plan for the given gap.
func (p *Planner) Plan(ctx context.Context, input PlanInput) (*Plan, error) {
	if len(input.MissingSkills) == 0 {
		return nil, fmt.Errorf("nothing to plan: no missing skills")
	}

	ctx = llm.WithPurpose(ctx, "pathway-plan")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, p.config)},
		},
		Schema:      PlanSchema,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
	}

	resp, err := p.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plan generation failed: %w", err)
	}

	var raw planOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}

	plan := &Plan{Rationale: raw.Rationale}
	for _, s := range raw.Skills {
		plan.Skills = append(plan.Skills, PlannedSkill{
			Name:           s.Name,
			EstimatedHours: s.EstimatedHours,
			Reason:         s.Reason,
		})
	}

	if err := validatePlan(plan, input); err != nil {
		return nil, err
	}
	return plan, nil
}

// validatePlan enforces what the schema cannot: every planned skill must
// come from the gap, appear at most once, and the plan must not be empty.
func validatePlan(plan *Plan, input PlanInput) error {
	if len(plan.Skills) == 0 {
		return fmt.Errorf("empty plan")
	}

	allowed := make(map[string]bool, len(input.MissingSkills))
	for _, s := range input.MissingSkills {
		allowed[strings.ToLower(strings.TrimSpace(s))] = true
	}

	seen := make(map[string]bool, len(plan.Skills))
	for _, s := range plan.Skills {
		key := strings.ToLower(strings.TrimSpace(s.Name))
		if !allowed[key] {
			return fmt.Errorf("plan names skill %q outside the gap", s.Name)
		}
		if seen[key] {
			return fmt.Errorf("plan repeats skill %q", s.Name)
		}
		seen[key] = true
	}
	return nil
}
