// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/careerstu/careerstu/ent/goal"
	"github.com/careerstu/careerstu/ent/jobrecord"
	"github.com/careerstu/careerstu/ent/learner"
	"github.com/careerstu/careerstu/ent/learnerskill"
	"github.com/careerstu/careerstu/ent/llmrequestevent"
	"github.com/careerstu/careerstu/ent/modeevent"
	"github.com/careerstu/careerstu/ent/pathway"
	"github.com/careerstu/careerstu/ent/pathwayskill"
	"github.com/careerstu/careerstu/ent/salaryrecord"
	"github.com/careerstu/careerstu/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	goalFields := schema.Goal{}.Fields()
	_ = goalFields
	// goalDescGoalID is the schema descriptor for goal_id field.
	goalDescGoalID := goalFields[0].Descriptor()
	// goal.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	goal.GoalIDValidator = goalDescGoalID.Validators[0].(func(string) error)
	// goalDescLearnerID is the schema descriptor for learner_id field.
	goalDescLearnerID := goalFields[1].Descriptor()
	// goal.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	goal.LearnerIDValidator = goalDescLearnerID.Validators[0].(func(string) error)
	// goalDescTargetJobTitle is the schema descriptor for target_job_title field.
	goalDescTargetJobTitle := goalFields[2].Descriptor()
	// goal.TargetJobTitleValidator is a validator for the "target_job_title" field. It is called by the builders before save.
	goal.TargetJobTitleValidator = goalDescTargetJobTitle.Validators[0].(func(string) error)
	// goalDescStatus is the schema descriptor for status field.
	goalDescStatus := goalFields[3].Descriptor()
	// goal.DefaultStatus holds the default value on creation for the status field.
	goal.DefaultStatus = goalDescStatus.Default.(string)
	// goalDescCreatedAt is the schema descriptor for created_at field.
	goalDescCreatedAt := goalFields[4].Descriptor()
	// goal.DefaultCreatedAt holds the default value on creation for the created_at field.
	goal.DefaultCreatedAt = goalDescCreatedAt.Default.(func() time.Time)
	jobrecordFields := schema.JobRecord{}.Fields()
	_ = jobrecordFields
	// jobrecordDescLink is the schema descriptor for link field.
	jobrecordDescLink := jobrecordFields[0].Descriptor()
	// jobrecord.LinkValidator is a validator for the "link" field. It is called by the builders before save.
	jobrecord.LinkValidator = jobrecordDescLink.Validators[0].(func(string) error)
	// jobrecordDescTitle is the schema descriptor for title field.
	jobrecordDescTitle := jobrecordFields[1].Descriptor()
	// jobrecord.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	jobrecord.TitleValidator = jobrecordDescTitle.Validators[0].(func(string) error)
	// jobrecordDescCompany is the schema descriptor for company field.
	jobrecordDescCompany := jobrecordFields[2].Descriptor()
	// jobrecord.DefaultCompany holds the default value on creation for the company field.
	jobrecord.DefaultCompany = jobrecordDescCompany.Default.(string)
	// jobrecordDescLocation is the schema descriptor for location field.
	jobrecordDescLocation := jobrecordFields[3].Descriptor()
	// jobrecord.DefaultLocation holds the default value on creation for the location field.
	jobrecord.DefaultLocation = jobrecordDescLocation.Default.(string)
	// jobrecordDescLevel is the schema descriptor for level field.
	jobrecordDescLevel := jobrecordFields[4].Descriptor()
	// jobrecord.DefaultLevel holds the default value on creation for the level field.
	jobrecord.DefaultLevel = jobrecordDescLevel.Default.(string)
	// jobrecordDescSkills is the schema descriptor for skills field.
	jobrecordDescSkills := jobrecordFields[5].Descriptor()
	// jobrecord.DefaultSkills holds the default value on creation for the skills field.
	jobrecord.DefaultSkills = jobrecordDescSkills.Default.(string)
	// jobrecordDescRiasecCode is the schema descriptor for riasec_code field.
	jobrecordDescRiasecCode := jobrecordFields[6].Descriptor()
	// jobrecord.DefaultRiasecCode holds the default value on creation for the riasec_code field.
	jobrecord.DefaultRiasecCode = jobrecordDescRiasecCode.Default.(string)
	// jobrecordDescRiasecConfidence is the schema descriptor for riasec_confidence field.
	jobrecordDescRiasecConfidence := jobrecordFields[7].Descriptor()
	// jobrecord.DefaultRiasecConfidence holds the default value on creation for the riasec_confidence field.
	jobrecord.DefaultRiasecConfidence = jobrecordDescRiasecConfidence.Default.(float64)
	// jobrecordDescPrimaryType is the schema descriptor for primary_type field.
	jobrecordDescPrimaryType := jobrecordFields[8].Descriptor()
	// jobrecord.DefaultPrimaryType holds the default value on creation for the primary_type field.
	jobrecord.DefaultPrimaryType = jobrecordDescPrimaryType.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescLearnerID is the schema descriptor for learner_id field.
	learnerDescLearnerID := learnerFields[0].Descriptor()
	// learner.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	learner.LearnerIDValidator = learnerDescLearnerID.Validators[0].(func(string) error)
	// learnerDescEmail is the schema descriptor for email field.
	learnerDescEmail := learnerFields[1].Descriptor()
	// learner.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	learner.EmailValidator = learnerDescEmail.Validators[0].(func(string) error)
	// learnerDescName is the schema descriptor for name field.
	learnerDescName := learnerFields[2].Descriptor()
	// learner.DefaultName holds the default value on creation for the name field.
	learner.DefaultName = learnerDescName.Default.(string)
	// learnerDescStatus is the schema descriptor for status field.
	learnerDescStatus := learnerFields[3].Descriptor()
	// learner.DefaultStatus holds the default value on creation for the status field.
	learner.DefaultStatus = learnerDescStatus.Default.(string)
	// learnerDescCurrentJobTitle is the schema descriptor for current_job_title field.
	learnerDescCurrentJobTitle := learnerFields[4].Descriptor()
	// learner.DefaultCurrentJobTitle holds the default value on creation for the current_job_title field.
	learner.DefaultCurrentJobTitle = learnerDescCurrentJobTitle.Default.(string)
	// learnerDescCurrentIndustry is the schema descriptor for current_industry field.
	learnerDescCurrentIndustry := learnerFields[5].Descriptor()
	// learner.DefaultCurrentIndustry holds the default value on creation for the current_industry field.
	learner.DefaultCurrentIndustry = learnerDescCurrentIndustry.Default.(string)
	// learnerDescYearsExperience is the schema descriptor for years_experience field.
	learnerDescYearsExperience := learnerFields[6].Descriptor()
	// learner.DefaultYearsExperience holds the default value on creation for the years_experience field.
	learner.DefaultYearsExperience = learnerDescYearsExperience.Default.(int)
	// learnerDescEducationLevel is the schema descriptor for education_level field.
	learnerDescEducationLevel := learnerFields[7].Descriptor()
	// learner.DefaultEducationLevel holds the default value on creation for the education_level field.
	learner.DefaultEducationLevel = learnerDescEducationLevel.Default.(string)
	// learnerDescWeeklyStudyHours is the schema descriptor for weekly_study_hours field.
	learnerDescWeeklyStudyHours := learnerFields[8].Descriptor()
	// learner.DefaultWeeklyStudyHours holds the default value on creation for the weekly_study_hours field.
	learner.DefaultWeeklyStudyHours = learnerDescWeeklyStudyHours.Default.(int)
	// learnerDescPreferredStudyTimes is the schema descriptor for preferred_study_times field.
	learnerDescPreferredStudyTimes := learnerFields[9].Descriptor()
	// learner.DefaultPreferredStudyTimes holds the default value on creation for the preferred_study_times field.
	learner.DefaultPreferredStudyTimes = learnerDescPreferredStudyTimes.Default.(string)
	// learnerDescHasFamilyObligations is the schema descriptor for has_family_obligations field.
	learnerDescHasFamilyObligations := learnerFields[10].Descriptor()
	// learner.DefaultHasFamilyObligations holds the default value on creation for the has_family_obligations field.
	learner.DefaultHasFamilyObligations = learnerDescHasFamilyObligations.Default.(bool)
	// learnerDescEmploymentStatus is the schema descriptor for employment_status field.
	learnerDescEmploymentStatus := learnerFields[11].Descriptor()
	// learner.DefaultEmploymentStatus holds the default value on creation for the employment_status field.
	learner.DefaultEmploymentStatus = learnerDescEmploymentStatus.Default.(string)
	// learnerDescPreferredFormat is the schema descriptor for preferred_format field.
	learnerDescPreferredFormat := learnerFields[12].Descriptor()
	// learner.DefaultPreferredFormat holds the default value on creation for the preferred_format field.
	learner.DefaultPreferredFormat = learnerDescPreferredFormat.Default.(string)
	// learnerDescDisposition is the schema descriptor for disposition field.
	learnerDescDisposition := learnerFields[13].Descriptor()
	// learner.DefaultDisposition holds the default value on creation for the disposition field.
	learner.DefaultDisposition = learnerDescDisposition.Default.(string)
	// learnerDescRiasecCode is the schema descriptor for riasec_code field.
	learnerDescRiasecCode := learnerFields[14].Descriptor()
	// learner.DefaultRiasecCode holds the default value on creation for the riasec_code field.
	learner.DefaultRiasecCode = learnerDescRiasecCode.Default.(string)
	// learnerDescProfileComplete is the schema descriptor for profile_complete field.
	learnerDescProfileComplete := learnerFields[15].Descriptor()
	// learner.DefaultProfileComplete holds the default value on creation for the profile_complete field.
	learner.DefaultProfileComplete = learnerDescProfileComplete.Default.(bool)
	// learnerDescCurrentMode is the schema descriptor for current_mode field.
	learnerDescCurrentMode := learnerFields[16].Descriptor()
	// learner.DefaultCurrentMode holds the default value on creation for the current_mode field.
	learner.DefaultCurrentMode = learnerDescCurrentMode.Default.(string)
	// learnerDescCreatedAt is the schema descriptor for created_at field.
	learnerDescCreatedAt := learnerFields[17].Descriptor()
	// learner.DefaultCreatedAt holds the default value on creation for the created_at field.
	learner.DefaultCreatedAt = learnerDescCreatedAt.Default.(func() time.Time)
	// learnerDescUpdatedAt is the schema descriptor for updated_at field.
	learnerDescUpdatedAt := learnerFields[18].Descriptor()
	// learner.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learner.DefaultUpdatedAt = learnerDescUpdatedAt.Default.(func() time.Time)
	// learner.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learner.UpdateDefaultUpdatedAt = learnerDescUpdatedAt.UpdateDefault.(func() time.Time)
	learnerskillFields := schema.LearnerSkill{}.Fields()
	_ = learnerskillFields
	// learnerskillDescSkillID is the schema descriptor for skill_id field.
	learnerskillDescSkillID := learnerskillFields[0].Descriptor()
	// learnerskill.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	learnerskill.SkillIDValidator = learnerskillDescSkillID.Validators[0].(func(string) error)
	// learnerskillDescLearnerID is the schema descriptor for learner_id field.
	learnerskillDescLearnerID := learnerskillFields[1].Descriptor()
	// learnerskill.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	learnerskill.LearnerIDValidator = learnerskillDescLearnerID.Validators[0].(func(string) error)
	// learnerskillDescSkillName is the schema descriptor for skill_name field.
	learnerskillDescSkillName := learnerskillFields[2].Descriptor()
	// learnerskill.SkillNameValidator is a validator for the "skill_name" field. It is called by the builders before save.
	learnerskill.SkillNameValidator = learnerskillDescSkillName.Validators[0].(func(string) error)
	// learnerskillDescProficiencyLevel is the schema descriptor for proficiency_level field.
	learnerskillDescProficiencyLevel := learnerskillFields[3].Descriptor()
	// learnerskill.ProficiencyLevelValidator is a validator for the "proficiency_level" field. It is called by the builders before save.
	learnerskill.ProficiencyLevelValidator = learnerskillDescProficiencyLevel.Validators[0].(func(string) error)
	// learnerskillDescEvidenceSource is the schema descriptor for evidence_source field.
	learnerskillDescEvidenceSource := learnerskillFields[4].Descriptor()
	// learnerskill.DefaultEvidenceSource holds the default value on creation for the evidence_source field.
	learnerskill.DefaultEvidenceSource = learnerskillDescEvidenceSource.Default.(string)
	// learnerskillDescCreatedAt is the schema descriptor for created_at field.
	learnerskillDescCreatedAt := learnerskillFields[5].Descriptor()
	// learnerskill.DefaultCreatedAt holds the default value on creation for the created_at field.
	learnerskill.DefaultCreatedAt = learnerskillDescCreatedAt.Default.(func() time.Time)
	modeeventMixin := schema.ModeEvent{}.Mixin()
	modeeventMixinFields0 := modeeventMixin[0].Fields()
	_ = modeeventMixinFields0
	modeeventFields := schema.ModeEvent{}.Fields()
	_ = modeeventFields
	// modeeventDescTimestamp is the schema descriptor for timestamp field.
	modeeventDescTimestamp := modeeventMixinFields0[1].Descriptor()
	// modeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	modeevent.DefaultTimestamp = modeeventDescTimestamp.Default.(func() time.Time)
	// modeeventDescLearnerID is the schema descriptor for learner_id field.
	modeeventDescLearnerID := modeeventFields[0].Descriptor()
	// modeevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	modeevent.LearnerIDValidator = modeeventDescLearnerID.Validators[0].(func(string) error)
	// modeeventDescFromMode is the schema descriptor for from_mode field.
	modeeventDescFromMode := modeeventFields[1].Descriptor()
	// modeevent.DefaultFromMode holds the default value on creation for the from_mode field.
	modeevent.DefaultFromMode = modeeventDescFromMode.Default.(string)
	// modeeventDescToMode is the schema descriptor for to_mode field.
	modeeventDescToMode := modeeventFields[2].Descriptor()
	// modeevent.ToModeValidator is a validator for the "to_mode" field. It is called by the builders before save.
	modeevent.ToModeValidator = modeeventDescToMode.Validators[0].(func(string) error)
	// modeeventDescReason is the schema descriptor for reason field.
	modeeventDescReason := modeeventFields[3].Descriptor()
	// modeevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	modeevent.ReasonValidator = modeeventDescReason.Validators[0].(func(string) error)
	pathwayFields := schema.Pathway{}.Fields()
	_ = pathwayFields
	// pathwayDescPathwayID is the schema descriptor for pathway_id field.
	pathwayDescPathwayID := pathwayFields[0].Descriptor()
	// pathway.PathwayIDValidator is a validator for the "pathway_id" field. It is called by the builders before save.
	pathway.PathwayIDValidator = pathwayDescPathwayID.Validators[0].(func(string) error)
	// pathwayDescLearnerID is the schema descriptor for learner_id field.
	pathwayDescLearnerID := pathwayFields[1].Descriptor()
	// pathway.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	pathway.LearnerIDValidator = pathwayDescLearnerID.Validators[0].(func(string) error)
	// pathwayDescGoalID is the schema descriptor for goal_id field.
	pathwayDescGoalID := pathwayFields[2].Descriptor()
	// pathway.GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	pathway.GoalIDValidator = pathwayDescGoalID.Validators[0].(func(string) error)
	// pathwayDescStatus is the schema descriptor for status field.
	pathwayDescStatus := pathwayFields[3].Descriptor()
	// pathway.DefaultStatus holds the default value on creation for the status field.
	pathway.DefaultStatus = pathwayDescStatus.Default.(string)
	// pathwayDescTotalSkills is the schema descriptor for total_skills field.
	pathwayDescTotalSkills := pathwayFields[4].Descriptor()
	// pathway.DefaultTotalSkills holds the default value on creation for the total_skills field.
	pathway.DefaultTotalSkills = pathwayDescTotalSkills.Default.(int)
	// pathwayDescCompletedSkills is the schema descriptor for completed_skills field.
	pathwayDescCompletedSkills := pathwayFields[5].Descriptor()
	// pathway.DefaultCompletedSkills holds the default value on creation for the completed_skills field.
	pathway.DefaultCompletedSkills = pathwayDescCompletedSkills.Default.(int)
	// pathwayDescEstimatedHours is the schema descriptor for estimated_hours field.
	pathwayDescEstimatedHours := pathwayFields[6].Descriptor()
	// pathway.DefaultEstimatedHours holds the default value on creation for the estimated_hours field.
	pathway.DefaultEstimatedHours = pathwayDescEstimatedHours.Default.(int)
	// pathwayDescCreatedAt is the schema descriptor for created_at field.
	pathwayDescCreatedAt := pathwayFields[7].Descriptor()
	// pathway.DefaultCreatedAt holds the default value on creation for the created_at field.
	pathway.DefaultCreatedAt = pathwayDescCreatedAt.Default.(func() time.Time)
	pathwayskillFields := schema.PathwaySkill{}.Fields()
	_ = pathwayskillFields
	// pathwayskillDescPathwaySkillID is the schema descriptor for pathway_skill_id field.
	pathwayskillDescPathwaySkillID := pathwayskillFields[0].Descriptor()
	// pathwayskill.PathwaySkillIDValidator is a validator for the "pathway_skill_id" field. It is called by the builders before save.
	pathwayskill.PathwaySkillIDValidator = pathwayskillDescPathwaySkillID.Validators[0].(func(string) error)
	// pathwayskillDescPathwayID is the schema descriptor for pathway_id field.
	pathwayskillDescPathwayID := pathwayskillFields[1].Descriptor()
	// pathwayskill.PathwayIDValidator is a validator for the "pathway_id" field. It is called by the builders before save.
	pathwayskill.PathwayIDValidator = pathwayskillDescPathwayID.Validators[0].(func(string) error)
	// pathwayskillDescSkillName is the schema descriptor for skill_name field.
	pathwayskillDescSkillName := pathwayskillFields[2].Descriptor()
	// pathwayskill.SkillNameValidator is a validator for the "skill_name" field. It is called by the builders before save.
	pathwayskill.SkillNameValidator = pathwayskillDescSkillName.Validators[0].(func(string) error)
	// pathwayskillDescSequenceOrder is the schema descriptor for sequence_order field.
	pathwayskillDescSequenceOrder := pathwayskillFields[3].Descriptor()
	// pathwayskill.SequenceOrderValidator is a validator for the "sequence_order" field. It is called by the builders before save.
	pathwayskill.SequenceOrderValidator = pathwayskillDescSequenceOrder.Validators[0].(func(int) error)
	// pathwayskillDescStatus is the schema descriptor for status field.
	pathwayskillDescStatus := pathwayskillFields[4].Descriptor()
	// pathwayskill.DefaultStatus holds the default value on creation for the status field.
	pathwayskill.DefaultStatus = pathwayskillDescStatus.Default.(string)
	// pathwayskillDescEstimatedHours is the schema descriptor for estimated_hours field.
	pathwayskillDescEstimatedHours := pathwayskillFields[5].Descriptor()
	// pathwayskill.DefaultEstimatedHours holds the default value on creation for the estimated_hours field.
	pathwayskill.DefaultEstimatedHours = pathwayskillDescEstimatedHours.Default.(int)
	salaryrecordFields := schema.SalaryRecord{}.Fields()
	_ = salaryrecordFields
	// salaryrecordDescJobTitle is the schema descriptor for job_title field.
	salaryrecordDescJobTitle := salaryrecordFields[0].Descriptor()
	// salaryrecord.JobTitleValidator is a validator for the "job_title" field. It is called by the builders before save.
	salaryrecord.JobTitleValidator = salaryrecordDescJobTitle.Validators[0].(func(string) error)
	// salaryrecordDescMedianSalary is the schema descriptor for median_salary field.
	salaryrecordDescMedianSalary := salaryrecordFields[1].Descriptor()
	// salaryrecord.DefaultMedianSalary holds the default value on creation for the median_salary field.
	salaryrecord.DefaultMedianSalary = salaryrecordDescMedianSalary.Default.(int)
	// salaryrecordDescMarketDemand is the schema descriptor for market_demand field.
	salaryrecordDescMarketDemand := salaryrecordFields[2].Descriptor()
	// salaryrecord.DefaultMarketDemand holds the default value on creation for the market_demand field.
	salaryrecord.DefaultMarketDemand = salaryrecordDescMarketDemand.Default.(string)
	// salaryrecordDescSupplyDemandRatio is the schema descriptor for supply_demand_ratio field.
	salaryrecordDescSupplyDemandRatio := salaryrecordFields[3].Descriptor()
	// salaryrecord.DefaultSupplyDemandRatio holds the default value on creation for the supply_demand_ratio field.
	salaryrecord.DefaultSupplyDemandRatio = salaryrecordDescSupplyDemandRatio.Default.(float64)
	// salaryrecordDescRiasecCode is the schema descriptor for riasec_code field.
	salaryrecordDescRiasecCode := salaryrecordFields[4].Descriptor()
	// salaryrecord.DefaultRiasecCode holds the default value on creation for the riasec_code field.
	salaryrecord.DefaultRiasecCode = salaryrecordDescRiasecCode.Default.(string)
	// salaryrecordDescRecentPostings is the schema descriptor for recent_postings field.
	salaryrecordDescRecentPostings := salaryrecordFields[5].Descriptor()
	// salaryrecord.DefaultRecentPostings holds the default value on creation for the recent_postings field.
	salaryrecord.DefaultRecentPostings = salaryrecordDescRecentPostings.Default.(int)
}
