// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Goal is the predicate function for goal builders.
type Goal func(*sql.Selector)

// JobRecord is the predicate function for jobrecord builders.
type JobRecord func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Learner is the predicate function for learner builders.
type Learner func(*sql.Selector)

// LearnerSkill is the predicate function for learnerskill builders.
type LearnerSkill func(*sql.Selector)

// ModeEvent is the predicate function for modeevent builders.
type ModeEvent func(*sql.Selector)

// Pathway is the predicate function for pathway builders.
type Pathway func(*sql.Selector)

// PathwaySkill is the predicate function for pathwayskill builders.
type PathwaySkill func(*sql.Selector)

// SalaryRecord is the predicate function for salaryrecord builders.
type SalaryRecord func(*sql.Selector)
