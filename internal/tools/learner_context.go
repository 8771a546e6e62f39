package tools

import (
	"context"
	"fmt"

	"github.com/careerstu/careerstu/internal/store"
)

// LearnerContext is the full learner view assembled for the model: the
// get_learner_context tool result and the raw material for the system
// prompt's context section.
type LearnerContext struct {
	Learner       *store.Learner       `json:"learner"`
	Skills        []store.Skill        `json:"skills"`
	Goals         []store.Goal         `json:"goals"`
	ActivePathway *store.Pathway       `json:"active_pathway"`
	PathwaySkills []store.PathwaySkill `json:"pathway_skills"`
	CurrentSkill  *store.PathwaySkill  `json:"current_skill"`
}

// SkillNames returns the learner's skill names in stored order.
func (lc *LearnerContext) SkillNames() []string {
	names := make([]string, 0, len(lc.Skills))
	for _, s := range lc.Skills {
		names = append(names, s.SkillName)
	}
	return names
}

// CurrentGoal returns the newest goal, or nil when none exists.
func (lc *LearnerContext) CurrentGoal() *store.Goal {
	if len(lc.Goals) == 0 {
		return nil
	}
	return &lc.Goals[0]
}

// BuildLearnerContext assembles the learner's profile, skills, goals,
// and pathway progress in one read pass.
func BuildLearnerContext(ctx context.Context, repo store.LearnerRepo, learnerID string) (*LearnerContext, error) {
	learner, err := repo.GetLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	skills, err := repo.Skills(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}
	goals, err := repo.Goals(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}

	lc := &LearnerContext{
		Learner: learner,
		Skills:  skills,
		Goals:   goals,
	}

	active, err := repo.ActivePathway(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load active pathway: %w", err)
	}
	if active != nil {
		lc.ActivePathway = active
		lc.PathwaySkills, err = repo.PathwaySkills(ctx, active.PathwayID)
		if err != nil {
			return nil, fmt.Errorf("load pathway skills: %w", err)
		}
		lc.CurrentSkill, err = repo.CurrentSkill(ctx, active.PathwayID)
		if err != nil {
			return nil, fmt.Errorf("load current skill: %w", err)
		}
	}

	return lc, nil
}
