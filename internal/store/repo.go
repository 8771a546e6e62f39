package store

import (
	"context"
	"fmt"
	"time"

	"github.com/careerstu/careerstu/internal/modes"
)

// Learner is the persisted learner row, profile fields included.
type Learner struct {
	LearnerID            string
	Email                string
	Name                 string
	Status               string
	CurrentJobTitle      string
	CurrentIndustry      string
	YearsExperience      int
	EducationLevel       string
	WeeklyStudyHours     int
	PreferredStudyTimes  string
	HasFamilyObligations bool
	EmploymentStatus     string
	PreferredFormat      string
	Disposition          string
	RiasecCode           string
	ProfileComplete      bool
	CurrentMode          string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Skill is one skill on the learner's profile.
type Skill struct {
	SkillID          string
	LearnerID        string
	SkillName        string
	ProficiencyLevel string
	EvidenceSource   string
	CreatedAt        time.Time
}

// Goal is one career target, append-only per learner.
type Goal struct {
	GoalID         string
	LearnerID      string
	TargetJobTitle string
	Status         string
	CreatedAt      time.Time
}

// Pathway is an ordered learning plan toward a goal.
type Pathway struct {
	PathwayID       string
	LearnerID       string
	GoalID          string
	Status          string
	TotalSkills     int
	CompletedSkills int
	EstimatedHours  int
	CreatedAt       time.Time
}

// PathwaySkill is one step in a pathway.
type PathwaySkill struct {
	PathwaySkillID string
	PathwayID      string
	SkillName      string
	SequenceOrder  int
	Status         string
	EstimatedHours int
	StartedAt      *time.Time
	CompletedAt    *time.Time
}

// ProfileUpdate carries partial profile changes. Nil fields are left
// untouched.
type ProfileUpdate struct {
	CurrentJobTitle      *string
	CurrentIndustry      *string
	YearsExperience      *int
	EducationLevel       *string
	WeeklyStudyHours     *int
	PreferredStudyTimes  *string
	HasFamilyObligations *bool
	EmploymentStatus     *string
	PreferredFormat      *string
	Disposition          *string
	RiasecCode           *string
	ProfileComplete      *bool
}

// Empty reports whether the update carries no changes.
func (u ProfileUpdate) Empty() bool {
	return u == ProfileUpdate{}
}

// LearnerRepo manages learners, their skills, goals, and pathways.
type LearnerRepo interface {
	// CreateLearner inserts a new learner in status "new".
	CreateLearner(ctx context.Context, email, name string) (*Learner, error)

	// GetLearner returns the learner, or *NotFoundError.
	GetLearner(ctx context.Context, learnerID string) (*Learner, error)

	// ListLearners returns all learners, newest first.
	ListLearners(ctx context.Context) ([]Learner, error)

	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, learnerID string, u ProfileUpdate) error

	// AddSkill records a skill on the learner's profile. Duplicate
	// (learner, skill name) pairs fail.
	AddSkill(ctx context.Context, learnerID, skillName, proficiency, evidence string) (*Skill, error)

	// Skills returns the learner's skills, newest first.
	Skills(ctx context.Context, learnerID string) ([]Skill, error)

	// SetGoal appends a new goal row. The newest row is the current goal.
	SetGoal(ctx context.Context, learnerID, targetJobTitle, status string) (*Goal, error)

	// Goals returns the learner's goals, newest first.
	Goals(ctx context.Context, learnerID string) ([]Goal, error)

	// CreatePathway creates an active pathway with the given ordered
	// skills. The goal must exist and belong to the learner.
	CreatePathway(ctx context.Context, learnerID, goalID string, skillsToLearn []string) (*Pathway, error)

	// ActivePathway returns the learner's most recent active pathway, or
	// nil if none exists.
	ActivePathway(ctx context.Context, learnerID string) (*Pathway, error)

	// PathwaySkills returns the pathway's skills in sequence order.
	PathwaySkills(ctx context.Context, pathwayID string) ([]PathwaySkill, error)

	// UpdatePathwayProgress sets a skill's status and returns the
	// pathway's new completed count.
	UpdatePathwayProgress(ctx context.Context, pathwayID, skillName, newStatus string) (int, error)

	// CurrentSkill returns the skill the learner should work on: the
	// first in-progress skill, else the first not-started one, else nil.
	CurrentSkill(ctx context.Context, pathwayID string) (*PathwaySkill, error)

	// SetMode persists the resolved operating mode on the learner row.
	SetMode(ctx context.Context, learnerID, mode string) error

	// Snapshot assembles the learner's state for mode resolution.
	Snapshot(ctx context.Context, learnerID string) (modes.LearnerSnapshot, error)
}

// ModeEventData captures one mode transition for the event log.
type ModeEventData struct {
	LearnerID string
	FromMode  string
	ToMode    string
	Reason    string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// QueryOpts configures event queries with pagination.
type QueryOpts struct {
	Limit  int
	Offset int
}

// LLMEventRecord is one logged LLM request.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsage aggregates token usage per purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates token usage per served model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ModeTransitionRecord is one logged mode change.
type ModeTransitionRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LearnerID string
	FromMode  string
	ToMode    string
	Reason    string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendModeTransition records a mode change decision.
	AppendModeTransition(ctx context.Context, data ModeEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns logged LLM requests, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one logged request by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage per served model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// RecentModeTransitions returns a learner's mode changes, newest
	// first. An empty learnerID returns transitions for all learners.
	RecentModeTransitions(ctx context.Context, learnerID string, limit int) ([]ModeTransitionRecord, error)
}

// NotFoundError indicates a row does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}
