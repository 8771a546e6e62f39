package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/careerstu/careerstu/internal/corpus"
	"github.com/careerstu/careerstu/internal/modes"
	"github.com/careerstu/careerstu/internal/riasec"
	"github.com/careerstu/careerstu/internal/skillgap"
	"github.com/careerstu/careerstu/internal/store"
	"github.com/careerstu/careerstu/internal/toolguard"
)

// scanCandidates caps how many corpus jobs a skill-match scan considers.
const scanCandidates = 100

// Dispatcher routes validated tool calls to their backing collaborators.
// Every call passes the mode guard and argument validation before any
// collaborator is touched.
type Dispatcher struct {
	guard    *toolguard.Guard
	corpus   corpus.Gateway
	learners store.LearnerRepo
	handlers map[string]handler
}

type handler func(ctx context.Context, args json.RawMessage) (any, error)

// NewDispatcher builds the dispatcher and its guard from the registry.
func NewDispatcher(gw corpus.Gateway, learners store.LearnerRepo) (*Dispatcher, error) {
	guard, err := toolguard.New(Definitions())
	if err != nil {
		return nil, fmt.Errorf("build tool guard: %w", err)
	}

	d := &Dispatcher{
		guard:    guard,
		corpus:   gw,
		learners: learners,
	}
	d.handlers = map[string]handler{
		"search_jobs":              d.searchJobs,
		"search_jobs_by_riasec":    d.searchJobsByRiasec,
		"get_job_details":          d.getJobDetails,
		"infer_riasec_from_skills": d.inferRiasecFromSkills,
		"get_riasec_description":   d.getRiasecDescription,
		"compare_riasec_codes":     d.compareRiasecCodes,
		"get_salary_info":          d.getSalaryInfo,
		"get_high_demand_jobs":     d.getHighDemandJobs,
		"calculate_skill_gap":      d.calculateSkillGap,
		"find_jobs_by_skill_match": d.findJobsBySkillMatch,
		"get_learner_context":      d.getLearnerContext,
		"update_learner_profile":   d.updateLearnerProfile,
		"add_learner_skill":        d.addLearnerSkill,
		"set_learner_goal":         d.setLearnerGoal,
		"create_pathway":           d.createPathway,
		"update_pathway_progress":  d.updatePathwayProgress,
	}
	return d, nil
}

// Guard exposes the mode guard for advertising per-mode tool lists.
func (d *Dispatcher) Guard() *toolguard.Guard {
	return d.guard
}

// Dispatch checks the guard, validates args, and executes the tool.
// Returns *RefusedError when the mode disallows the tool,
// *toolguard.ArgumentError on invalid arguments, and
// *CollaboratorUnavailableError when a backing collaborator fails.
func (d *Dispatcher) Dispatch(ctx context.Context, mode modes.Mode, name string, args json.RawMessage) (any, error) {
	h, ok := d.handlers[name]
	if !ok {
		return nil, &UnknownToolError{Tool: name}
	}

	if decision := d.guard.Check(mode, name); !decision.Allowed {
		return nil, &RefusedError{Tool: name, Mode: mode, Reason: decision.Reason}
	}
	if err := d.guard.ValidateArgs(name, args); err != nil {
		return nil, err
	}

	return h(ctx, args)
}

func decodeArgs(raw json.RawMessage, into any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, into)
}

// collaboratorErr wraps infrastructure failures, passing domain
// not-found errors through untouched so they reach the model as tool
// results rather than being treated as outages.
func collaboratorErr(name string, err error) error {
	var jobNF *corpus.JobNotFoundError
	var rowNF *store.NotFoundError
	if errors.As(err, &jobNF) || errors.As(err, &rowNF) {
		return err
	}
	return &CollaboratorUnavailableError{Collaborator: name, Err: err}
}

func (d *Dispatcher) searchJobs(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		JobTitle string   `json:"job_title"`
		Skills   []string `json:"skills"`
		Location string   `json:"location"`
		JobLevel string   `json:"job_level"`
		Limit    int      `json:"limit"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	jobs, err := d.corpus.SearchJobs(ctx, corpus.JobQuery{
		Title:    args.JobTitle,
		Skills:   args.Skills,
		Location: args.Location,
		Level:    args.JobLevel,
		Limit:    args.Limit,
	})
	if err != nil {
		return nil, collaboratorErr("corpus", err)
	}
	return jobResults(jobs), nil
}

func (d *Dispatcher) searchJobsByRiasec(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		RiasecCode      string `json:"riasec_code"`
		PrimaryTypeOnly bool   `json:"primary_type_only"`
		JobLevel        string `json:"job_level"`
		Limit           int    `json:"limit"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	jobs, err := d.corpus.JobsByCode(ctx, args.RiasecCode, args.PrimaryTypeOnly, args.JobLevel, args.Limit)
	if err != nil {
		return nil, collaboratorErr("corpus", err)
	}
	return jobResults(jobs), nil
}

func (d *Dispatcher) getJobDetails(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		JobLink string `json:"job_link"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	job, err := d.corpus.JobByLink(ctx, args.JobLink)
	if err != nil {
		return nil, collaboratorErr("corpus", err)
	}
	return jobResult(*job), nil
}

func (d *Dispatcher) inferRiasecFromSkills(_ context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		Skills []string `json:"skills"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	res := riasec.Classify(args.Skills, "")
	return map[string]any{
		"riasec_code":  res.Code,
		"primary_type": res.PrimaryType,
		"confidence":   res.Confidence,
		"matched":      res.Matched,
	}, nil
}

func (d *Dispatcher) getRiasecDescription(_ context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		RiasecCode string `json:"riasec_code"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return riasec.Describe(args.RiasecCode)
}

func (d *Dispatcher) compareRiasecCodes(_ context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		LearnerRiasec string `json:"learner_riasec"`
		JobRiasec     string `json:"job_riasec"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return riasec.CompareCodes(args.LearnerRiasec, args.JobRiasec)
}

func (d *Dispatcher) getSalaryInfo(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		JobTitle string `json:"job_title"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	recs, err := d.corpus.SalaryInfo(ctx, args.JobTitle)
	if err != nil {
		return nil, collaboratorErr("corpus", err)
	}
	if len(recs) == 0 {
		return map[string]any{
			"found":        false,
			"message":      fmt.Sprintf("No salary data found for %q. This may be a less common job title.", args.JobTitle),
			"searched_for": args.JobTitle,
		}, nil
	}
	return map[string]any{
		"found":   true,
		"results": recs,
	}, nil
}

func (d *Dispatcher) getHighDemandJobs(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		RiasecType string `json:"riasec_type"`
		MinSalary  int    `json:"min_salary"`
		Limit      int    `json:"limit"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	recs, err := d.corpus.HighDemandJobs(ctx, corpus.DemandQuery{
		RiasecType: args.RiasecType,
		MinSalary:  args.MinSalary,
		Limit:      args.Limit,
	})
	if err != nil {
		return nil, collaboratorErr("corpus", err)
	}
	return recs, nil
}

func (d *Dispatcher) calculateSkillGap(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		LearnerSkills []string `json:"learner_skills"`
		TargetJobLink string   `json:"target_job_link"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	job, err := d.corpus.JobByLink(ctx, args.TargetJobLink)
	if err != nil {
		return nil, collaboratorErr("corpus", err)
	}

	gap := skillgap.Gap(args.LearnerSkills, job.Skills)
	return map[string]any{
		"job_title":             job.Title,
		"company":               job.Company,
		"job_link":              job.Link,
		"total_required_skills": gap.TotalRequired,
		"skills_you_have":       gap.Has,
		"skills_you_need":       gap.Needs,
		"match_count":           len(gap.Has),
		"gap_count":             len(gap.Needs),
		"match_percentage":      gap.MatchPercent,
		"suggested_next":        skillgap.SuggestNext(args.LearnerSkills, job.Skills, 3),
	}, nil
}

func (d *Dispatcher) findJobsBySkillMatch(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		LearnerSkills   []string `json:"learner_skills"`
		MinMatchPercent float64  `json:"min_match_percent"`
		Limit           int      `json:"limit"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.MinMatchPercent == 0 {
		args.MinMatchPercent = 50
	}
	if args.Limit <= 0 {
		args.Limit = corpus.DefaultLimit
	}

	// Pre-filter to jobs sharing at least one skill, then score the
	// candidates concurrently.
	candidates, err := d.corpus.SearchJobs(ctx, corpus.JobQuery{
		Skills: args.LearnerSkills,
		Limit:  scanCandidates,
	})
	if err != nil {
		return nil, collaboratorErr("corpus", err)
	}

	byRef := make(map[string]corpus.Job, len(candidates))
	targets := make([]skillgap.Target, 0, len(candidates))
	for _, j := range candidates {
		byRef[j.Link] = j
		targets = append(targets, skillgap.Target{
			Ref:         j.Link,
			Title:       j.Title,
			RequiredCSV: j.Skills,
		})
	}

	matches := skillgap.BestMatches(args.LearnerSkills, targets, args.MinMatchPercent, args.Limit)
	out := make([]map[string]any, 0, len(matches))
	for _, m := range matches {
		j := byRef[m.Target.Ref]
		out = append(out, map[string]any{
			"job_link":         j.Link,
			"job_title":        j.Title,
			"company":          j.Company,
			"job_location":     j.Location,
			"job_level":        j.Level,
			"riasec_code":      j.RiasecCode,
			"match_percentage": m.Result.MatchPercent,
			"skills_matched":   len(m.Result.Has),
			"total_skills":     m.Result.TotalRequired,
		})
	}
	return out, nil
}

func (d *Dispatcher) getLearnerContext(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		LearnerID string `json:"learner_id"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	lc, err := BuildLearnerContext(ctx, d.learners, args.LearnerID)
	if err != nil {
		return nil, collaboratorErr("store", err)
	}
	return lc, nil
}

func (d *Dispatcher) updateLearnerProfile(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		LearnerID string         `json:"learner_id"`
		Updates   map[string]any `json:"updates"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	update, applied := profileUpdateFromMap(args.Updates)
	if update.Empty() {
		return nil, fmt.Errorf("no valid fields to update")
	}

	if err := d.learners.UpdateProfile(ctx, args.LearnerID, update); err != nil {
		return nil, collaboratorErr("store", err)
	}
	return map[string]any{
		"success":        true,
		"learner_id":     args.LearnerID,
		"updated_fields": applied,
	}, nil
}

func (d *Dispatcher) addLearnerSkill(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		LearnerID        string `json:"learner_id"`
		SkillName        string `json:"skill_name"`
		ProficiencyLevel string `json:"proficiency_level"`
		EvidenceSource   string `json:"evidence_source"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	skill, err := d.learners.AddSkill(ctx, args.LearnerID, args.SkillName, args.ProficiencyLevel, args.EvidenceSource)
	if err != nil {
		return nil, collaboratorErr("store", err)
	}
	return map[string]any{
		"success":           true,
		"skill_id":          skill.SkillID,
		"skill_name":        skill.SkillName,
		"proficiency_level": skill.ProficiencyLevel,
	}, nil
}

func (d *Dispatcher) setLearnerGoal(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		LearnerID      string `json:"learner_id"`
		TargetJobTitle string `json:"target_job_title"`
		Status         string `json:"status"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	goal, err := d.learners.SetGoal(ctx, args.LearnerID, args.TargetJobTitle, args.Status)
	if err != nil {
		return nil, collaboratorErr("store", err)
	}
	return map[string]any{
		"success":          true,
		"goal_id":          goal.GoalID,
		"target_job_title": goal.TargetJobTitle,
		"status":           goal.Status,
	}, nil
}

func (d *Dispatcher) createPathway(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		LearnerID     string   `json:"learner_id"`
		GoalID        string   `json:"goal_id"`
		SkillsToLearn []string `json:"skills_to_learn"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	p, err := d.learners.CreatePathway(ctx, args.LearnerID, args.GoalID, args.SkillsToLearn)
	if err != nil {
		return nil, collaboratorErr("store", err)
	}
	return map[string]any{
		"success":         true,
		"pathway_id":      p.PathwayID,
		"goal_id":         p.GoalID,
		"total_skills":    p.TotalSkills,
		"estimated_hours": p.EstimatedHours,
		"skills":          args.SkillsToLearn,
	}, nil
}

func (d *Dispatcher) updatePathwayProgress(ctx context.Context, raw json.RawMessage) (any, error) {
	var args struct {
		PathwayID string `json:"pathway_id"`
		SkillName string `json:"skill_name"`
		NewStatus string `json:"new_status"`
	}
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}

	completed, err := d.learners.UpdatePathwayProgress(ctx, args.PathwayID, args.SkillName, args.NewStatus)
	if err != nil {
		return nil, collaboratorErr("store", err)
	}
	return map[string]any{
		"success":         true,
		"pathway_id":      args.PathwayID,
		"skill_name":      args.SkillName,
		"new_status":      args.NewStatus,
		"completed_count": completed,
	}, nil
}

func jobResult(j corpus.Job) map[string]any {
	return map[string]any{
		"job_link":            j.Link,
		"job_title":           j.Title,
		"company":             j.Company,
		"job_location":        j.Location,
		"job_level":           j.Level,
		"job_skills":          j.Skills,
		"riasec_code":         j.RiasecCode,
		"riasec_confidence":   j.RiasecConfidence,
		"primary_riasec_type": j.PrimaryType,
	}
}

func jobResults(jobs []corpus.Job) []map[string]any {
	out := make([]map[string]any, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobResult(j))
	}
	return out
}

// profileUpdateFromMap maps the tool's loose updates object onto the
// typed partial update, returning the field names that were applied.
// Unknown fields are dropped.
func profileUpdateFromMap(m map[string]any) (store.ProfileUpdate, []string) {
	var u store.ProfileUpdate
	var applied []string

	setString := func(key string, dst **string) {
		if v, ok := m[key].(string); ok {
			*dst = &v
			applied = append(applied, key)
		}
	}
	setInt := func(key string, dst **int) {
		// JSON numbers decode as float64.
		if v, ok := m[key].(float64); ok {
			n := int(v)
			*dst = &n
			applied = append(applied, key)
		}
	}
	setBool := func(key string, dst **bool) {
		if v, ok := m[key].(bool); ok {
			*dst = &v
			applied = append(applied, key)
		}
	}

	setString("current_job_title", &u.CurrentJobTitle)
	setString("current_industry", &u.CurrentIndustry)
	setInt("years_experience", &u.YearsExperience)
	setString("education_level", &u.EducationLevel)
	setInt("weekly_study_hours", &u.WeeklyStudyHours)
	setString("preferred_study_times", &u.PreferredStudyTimes)
	setBool("has_family_obligations", &u.HasFamilyObligations)
	setString("employment_status", &u.EmploymentStatus)
	setString("preferred_format", &u.PreferredFormat)
	setString("disposition", &u.Disposition)
	setString("inferred_riasec_code", &u.RiasecCode)
	setBool("profile_complete", &u.ProfileComplete)

	return u, applied
}
