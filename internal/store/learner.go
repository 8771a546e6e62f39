package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/careerstu/careerstu/ent"
	"github.com/careerstu/careerstu/ent/goal"
	"github.com/careerstu/careerstu/ent/learner"
	"github.com/careerstu/careerstu/ent/learnerskill"
	"github.com/careerstu/careerstu/ent/pathway"
	"github.com/careerstu/careerstu/ent/pathwayskill"
	"github.com/careerstu/careerstu/internal/modes"
)

// skillHoursEstimate is the rough per-skill study estimate used when
// creating a pathway.
const skillHoursEstimate = 20

// learnerRepo implements LearnerRepo using the ent client.
type learnerRepo struct {
	client *ent.Client
}

func (r *learnerRepo) CreateLearner(ctx context.Context, email, name string) (*Learner, error) {
	row, err := r.client.Learner.Create().
		SetLearnerID(uuid.NewString()).
		SetEmail(email).
		SetName(name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create learner: %w", err)
	}
	return learnerFromEnt(row), nil
}

func (r *learnerRepo) GetLearner(ctx context.Context, learnerID string) (*Learner, error) {
	row, err := r.getLearnerRow(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	return learnerFromEnt(row), nil
}

func (r *learnerRepo) ListLearners(ctx context.Context) ([]Learner, error) {
	rows, err := r.client.Learner.Query().
		Order(ent.Desc(learner.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list learners: %w", err)
	}

	out := make([]Learner, len(rows))
	for i, row := range rows {
		out[i] = *learnerFromEnt(row)
	}
	return out, nil
}

func (r *learnerRepo) UpdateProfile(ctx context.Context, learnerID string, u ProfileUpdate) error {
	row, err := r.getLearnerRow(ctx, learnerID)
	if err != nil {
		return err
	}

	_, err = row.Update().
		SetNillableCurrentJobTitle(u.CurrentJobTitle).
		SetNillableCurrentIndustry(u.CurrentIndustry).
		SetNillableYearsExperience(u.YearsExperience).
		SetNillableEducationLevel(u.EducationLevel).
		SetNillableWeeklyStudyHours(u.WeeklyStudyHours).
		SetNillablePreferredStudyTimes(u.PreferredStudyTimes).
		SetNillableHasFamilyObligations(u.HasFamilyObligations).
		SetNillableEmploymentStatus(u.EmploymentStatus).
		SetNillablePreferredFormat(u.PreferredFormat).
		SetNillableDisposition(u.Disposition).
		SetNillableRiasecCode(u.RiasecCode).
		SetNillableProfileComplete(u.ProfileComplete).
		SetStatus("active").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *learnerRepo) AddSkill(ctx context.Context, learnerID, skillName, proficiency, evidence string) (*Skill, error) {
	if evidence == "" {
		evidence = "self_reported"
	}
	row, err := r.client.LearnerSkill.Create().
		SetSkillID(uuid.NewString()).
		SetLearnerID(learnerID).
		SetSkillName(skillName).
		SetProficiencyLevel(proficiency).
		SetEvidenceSource(evidence).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("add skill: %w", err)
	}
	return &Skill{
		SkillID:          row.SkillID,
		LearnerID:        row.LearnerID,
		SkillName:        row.SkillName,
		ProficiencyLevel: row.ProficiencyLevel,
		EvidenceSource:   row.EvidenceSource,
		CreatedAt:        row.CreatedAt,
	}, nil
}

func (r *learnerRepo) Skills(ctx context.Context, learnerID string) ([]Skill, error) {
	rows, err := r.client.LearnerSkill.Query().
		Where(learnerskill.LearnerID(learnerID)).
		Order(ent.Desc(learnerskill.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}

	skills := make([]Skill, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, Skill{
			SkillID:          row.SkillID,
			LearnerID:        row.LearnerID,
			SkillName:        row.SkillName,
			ProficiencyLevel: row.ProficiencyLevel,
			EvidenceSource:   row.EvidenceSource,
			CreatedAt:        row.CreatedAt,
		})
	}
	return skills, nil
}

func (r *learnerRepo) SetGoal(ctx context.Context, learnerID, targetJobTitle, status string) (*Goal, error) {
	if status == "" {
		status = "exploring"
	}
	row, err := r.client.Goal.Create().
		SetGoalID(uuid.NewString()).
		SetLearnerID(learnerID).
		SetTargetJobTitle(targetJobTitle).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("set goal: %w", err)
	}
	return goalFromEnt(row), nil
}

func (r *learnerRepo) Goals(ctx context.Context, learnerID string) ([]Goal, error) {
	rows, err := r.client.Goal.Query().
		Where(goal.LearnerID(learnerID)).
		Order(ent.Desc(goal.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}

	goals := make([]Goal, 0, len(rows))
	for _, row := range rows {
		goals = append(goals, *goalFromEnt(row))
	}
	return goals, nil
}

func (r *learnerRepo) CreatePathway(ctx context.Context, learnerID, goalID string, skillsToLearn []string) (*Pathway, error) {
	exists, err := r.client.Goal.Query().
		Where(goal.GoalID(goalID), goal.LearnerID(learnerID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("verify goal: %w", err)
	}
	if !exists {
		return nil, &NotFoundError{Entity: "goal", ID: goalID}
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	pathwayID := uuid.NewString()
	row, err := tx.Pathway.Create().
		SetPathwayID(pathwayID).
		SetLearnerID(learnerID).
		SetGoalID(goalID).
		SetTotalSkills(len(skillsToLearn)).
		SetEstimatedHours(len(skillsToLearn) * skillHoursEstimate).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("create pathway: %w", err)
	}

	for i, name := range skillsToLearn {
		_, err := tx.PathwaySkill.Create().
			SetPathwaySkillID(uuid.NewString()).
			SetPathwayID(pathwayID).
			SetSkillName(name).
			SetSequenceOrder(i + 1).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("create pathway skill %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit pathway: %w", err)
	}
	return pathwayFromEnt(row), nil
}

func (r *learnerRepo) ActivePathway(ctx context.Context, learnerID string) (*Pathway, error) {
	row, err := r.client.Pathway.Query().
		Where(pathway.LearnerID(learnerID), pathway.Status("active")).
		Order(ent.Desc(pathway.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query active pathway: %w", err)
	}
	return pathwayFromEnt(row), nil
}

func (r *learnerRepo) PathwaySkills(ctx context.Context, pathwayID string) ([]PathwaySkill, error) {
	rows, err := r.client.PathwaySkill.Query().
		Where(pathwayskill.PathwayID(pathwayID)).
		Order(ent.Asc(pathwayskill.FieldSequenceOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pathway skills: %w", err)
	}

	skills := make([]PathwaySkill, 0, len(rows))
	for _, row := range rows {
		skills = append(skills, *pathwaySkillFromEnt(row))
	}
	return skills, nil
}

func (r *learnerRepo) UpdatePathwayProgress(ctx context.Context, pathwayID, skillName, newStatus string) (int, error) {
	upd := r.client.PathwaySkill.Update().
		Where(pathwayskill.PathwayID(pathwayID), pathwayskill.SkillName(skillName)).
		SetStatus(newStatus)

	now := time.Now()
	switch newStatus {
	case "in_progress":
		upd = upd.SetStartedAt(now)
	case "completed":
		upd = upd.SetCompletedAt(now)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update pathway skill: %w", err)
	}
	if n == 0 {
		return 0, &NotFoundError{Entity: "pathway skill", ID: skillName}
	}

	completed, err := r.client.PathwaySkill.Query().
		Where(pathwayskill.PathwayID(pathwayID), pathwayskill.Status("completed")).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completed skills: %w", err)
	}

	_, err = r.client.Pathway.Update().
		Where(pathway.PathwayID(pathwayID)).
		SetCompletedSkills(completed).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update pathway count: %w", err)
	}
	return completed, nil
}

func (r *learnerRepo) CurrentSkill(ctx context.Context, pathwayID string) (*PathwaySkill, error) {
	for _, status := range []string{"in_progress", "not_started"} {
		row, err := r.client.PathwaySkill.Query().
			Where(pathwayskill.PathwayID(pathwayID), pathwayskill.Status(status)).
			Order(ent.Asc(pathwayskill.FieldSequenceOrder)).
			First(ctx)
		if err == nil {
			return pathwaySkillFromEnt(row), nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("query current skill: %w", err)
		}
	}
	// All skills completed.
	return nil, nil
}

func (r *learnerRepo) SetMode(ctx context.Context, learnerID, mode string) error {
	n, err := r.client.Learner.Update().
		Where(learner.LearnerID(learnerID)).
		SetCurrentMode(mode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set mode: %w", err)
	}
	if n == 0 {
		return &NotFoundError{Entity: "learner", ID: learnerID}
	}
	return nil
}

func (r *learnerRepo) Snapshot(ctx context.Context, learnerID string) (modes.LearnerSnapshot, error) {
	row, err := r.getLearnerRow(ctx, learnerID)
	if err != nil {
		return modes.LearnerSnapshot{}, err
	}

	snap := modes.LearnerSnapshot{
		LearnerID:       row.LearnerID,
		Status:          modes.LearnerStatus(row.Status),
		Mode:            modes.Mode(row.CurrentMode),
		ProfileComplete: row.ProfileComplete,
	}

	latest, err := r.client.Goal.Query().
		Where(goal.LearnerID(learnerID)).
		Order(ent.Desc(goal.FieldCreatedAt)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return modes.LearnerSnapshot{}, fmt.Errorf("query latest goal: %w", err)
	}
	if latest != nil {
		snap.GoalStatus = modes.GoalStatus(latest.Status)
	}

	active, err := r.ActivePathway(ctx, learnerID)
	if err != nil {
		return modes.LearnerSnapshot{}, err
	}
	if active != nil {
		snap.HasActivePathway = true
		current, err := r.CurrentSkill(ctx, active.PathwayID)
		if err != nil {
			return modes.LearnerSnapshot{}, err
		}
		if current != nil {
			snap.CurrentPathwaySkill = current.SkillName
		}
	}

	return snap, nil
}

func (r *learnerRepo) getLearnerRow(ctx context.Context, learnerID string) (*ent.Learner, error) {
	row, err := r.client.Learner.Query().
		Where(learner.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{Entity: "learner", ID: learnerID}
		}
		return nil, fmt.Errorf("query learner: %w", err)
	}
	return row, nil
}

func learnerFromEnt(row *ent.Learner) *Learner {
	return &Learner{
		LearnerID:            row.LearnerID,
		Email:                row.Email,
		Name:                 row.Name,
		Status:               row.Status,
		CurrentJobTitle:      row.CurrentJobTitle,
		CurrentIndustry:      row.CurrentIndustry,
		YearsExperience:      row.YearsExperience,
		EducationLevel:       row.EducationLevel,
		WeeklyStudyHours:     row.WeeklyStudyHours,
		PreferredStudyTimes:  row.PreferredStudyTimes,
		HasFamilyObligations: row.HasFamilyObligations,
		EmploymentStatus:     row.EmploymentStatus,
		PreferredFormat:      row.PreferredFormat,
		Disposition:          row.Disposition,
		RiasecCode:           row.RiasecCode,
		ProfileComplete:      row.ProfileComplete,
		CurrentMode:          row.CurrentMode,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}
}

func goalFromEnt(row *ent.Goal) *Goal {
	return &Goal{
		GoalID:         row.GoalID,
		LearnerID:      row.LearnerID,
		TargetJobTitle: row.TargetJobTitle,
		Status:         row.Status,
		CreatedAt:      row.CreatedAt,
	}
}

func pathwayFromEnt(row *ent.Pathway) *Pathway {
	return &Pathway{
		PathwayID:       row.PathwayID,
		LearnerID:       row.LearnerID,
		GoalID:          row.GoalID,
		Status:          row.Status,
		TotalSkills:     row.TotalSkills,
		CompletedSkills: row.CompletedSkills,
		EstimatedHours:  row.EstimatedHours,
		CreatedAt:       row.CreatedAt,
	}
}

func pathwaySkillFromEnt(row *ent.PathwaySkill) *PathwaySkill {
	return &PathwaySkill{
		PathwaySkillID: row.PathwaySkillID,
		PathwayID:      row.PathwayID,
		SkillName:      row.SkillName,
		SequenceOrder:  row.SequenceOrder,
		Status:         row.Status,
		EstimatedHours: row.EstimatedHours,
		StartedAt:      row.StartedAt,
		CompletedAt:    row.CompletedAt,
	}
}
