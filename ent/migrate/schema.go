// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GoalsColumns holds the columns for the "goals" table.
	GoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "goal_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "target_job_title", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "exploring"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GoalsTable holds the schema information for the "goals" table.
	GoalsTable = &schema.Table{
		Name:       "goals",
		Columns:    GoalsColumns,
		PrimaryKey: []*schema.Column{GoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "goal_learner_id",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[2]},
			},
			{
				Name:    "goal_status",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[4]},
			},
		},
	}
	// JobRecordsColumns holds the columns for the "job_records" table.
	JobRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "link", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "company", Type: field.TypeString, Default: ""},
		{Name: "location", Type: field.TypeString, Default: ""},
		{Name: "level", Type: field.TypeString, Default: ""},
		{Name: "skills", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "riasec_code", Type: field.TypeString, Default: ""},
		{Name: "riasec_confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "primary_type", Type: field.TypeString, Default: ""},
	}
	// JobRecordsTable holds the schema information for the "job_records" table.
	JobRecordsTable = &schema.Table{
		Name:       "job_records",
		Columns:    JobRecordsColumns,
		PrimaryKey: []*schema.Column{JobRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "jobrecord_riasec_code",
				Unique:  false,
				Columns: []*schema.Column{JobRecordsColumns[7]},
			},
			{
				Name:    "jobrecord_primary_type",
				Unique:  false,
				Columns: []*schema.Column{JobRecordsColumns[9]},
			},
			{
				Name:    "jobrecord_level",
				Unique:  false,
				Columns: []*schema.Column{JobRecordsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearnersColumns holds the columns for the "learners" table.
	LearnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "new"},
		{Name: "current_job_title", Type: field.TypeString, Default: ""},
		{Name: "current_industry", Type: field.TypeString, Default: ""},
		{Name: "years_experience", Type: field.TypeInt, Default: 0},
		{Name: "education_level", Type: field.TypeString, Default: ""},
		{Name: "weekly_study_hours", Type: field.TypeInt, Default: 0},
		{Name: "preferred_study_times", Type: field.TypeString, Default: ""},
		{Name: "has_family_obligations", Type: field.TypeBool, Default: false},
		{Name: "employment_status", Type: field.TypeString, Default: ""},
		{Name: "preferred_format", Type: field.TypeString, Default: ""},
		{Name: "disposition", Type: field.TypeString, Default: ""},
		{Name: "riasec_code", Type: field.TypeString, Default: ""},
		{Name: "profile_complete", Type: field.TypeBool, Default: false},
		{Name: "current_mode", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnersTable holds the schema information for the "learners" table.
	LearnersTable = &schema.Table{
		Name:       "learners",
		Columns:    LearnersColumns,
		PrimaryKey: []*schema.Column{LearnersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learner_status",
				Unique:  false,
				Columns: []*schema.Column{LearnersColumns[4]},
			},
		},
	}
	// LearnerSkillsColumns holds the columns for the "learner_skills" table.
	LearnerSkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "skill_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "skill_name", Type: field.TypeString},
		{Name: "proficiency_level", Type: field.TypeString},
		{Name: "evidence_source", Type: field.TypeString, Default: "self_reported"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearnerSkillsTable holds the schema information for the "learner_skills" table.
	LearnerSkillsTable = &schema.Table{
		Name:       "learner_skills",
		Columns:    LearnerSkillsColumns,
		PrimaryKey: []*schema.Column{LearnerSkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learnerskill_learner_id",
				Unique:  false,
				Columns: []*schema.Column{LearnerSkillsColumns[2]},
			},
			{
				Name:    "learnerskill_learner_id_skill_name",
				Unique:  true,
				Columns: []*schema.Column{LearnerSkillsColumns[2], LearnerSkillsColumns[3]},
			},
		},
	}
	// ModeEventsColumns holds the columns for the "mode_events" table.
	ModeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "from_mode", Type: field.TypeString, Default: ""},
		{Name: "to_mode", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
	}
	// ModeEventsTable holds the schema information for the "mode_events" table.
	ModeEventsTable = &schema.Table{
		Name:       "mode_events",
		Columns:    ModeEventsColumns,
		PrimaryKey: []*schema.Column{ModeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "modeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ModeEventsColumns[1]},
			},
			{
				Name:    "modeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ModeEventsColumns[2]},
			},
			{
				Name:    "modeevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ModeEventsColumns[3]},
			},
		},
	}
	// PathwaysColumns holds the columns for the "pathways" table.
	PathwaysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "pathway_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "total_skills", Type: field.TypeInt, Default: 0},
		{Name: "completed_skills", Type: field.TypeInt, Default: 0},
		{Name: "estimated_hours", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PathwaysTable holds the schema information for the "pathways" table.
	PathwaysTable = &schema.Table{
		Name:       "pathways",
		Columns:    PathwaysColumns,
		PrimaryKey: []*schema.Column{PathwaysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pathway_learner_id",
				Unique:  false,
				Columns: []*schema.Column{PathwaysColumns[2]},
			},
			{
				Name:    "pathway_learner_id_status",
				Unique:  false,
				Columns: []*schema.Column{PathwaysColumns[2], PathwaysColumns[4]},
			},
		},
	}
	// PathwaySkillsColumns holds the columns for the "pathway_skills" table.
	PathwaySkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "pathway_skill_id", Type: field.TypeString, Unique: true},
		{Name: "pathway_id", Type: field.TypeString},
		{Name: "skill_name", Type: field.TypeString},
		{Name: "sequence_order", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString, Default: "not_started"},
		{Name: "estimated_hours", Type: field.TypeInt, Default: 20},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// PathwaySkillsTable holds the schema information for the "pathway_skills" table.
	PathwaySkillsTable = &schema.Table{
		Name:       "pathway_skills",
		Columns:    PathwaySkillsColumns,
		PrimaryKey: []*schema.Column{PathwaySkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pathwayskill_pathway_id",
				Unique:  false,
				Columns: []*schema.Column{PathwaySkillsColumns[2]},
			},
			{
				Name:    "pathwayskill_pathway_id_sequence_order",
				Unique:  true,
				Columns: []*schema.Column{PathwaySkillsColumns[2], PathwaySkillsColumns[4]},
			},
		},
	}
	// SalaryRecordsColumns holds the columns for the "salary_records" table.
	SalaryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "job_title", Type: field.TypeString},
		{Name: "median_salary", Type: field.TypeInt, Default: 0},
		{Name: "market_demand", Type: field.TypeString, Default: ""},
		{Name: "supply_demand_ratio", Type: field.TypeFloat64, Default: 0},
		{Name: "riasec_code", Type: field.TypeString, Default: ""},
		{Name: "recent_postings", Type: field.TypeInt, Default: 0},
	}
	// SalaryRecordsTable holds the schema information for the "salary_records" table.
	SalaryRecordsTable = &schema.Table{
		Name:       "salary_records",
		Columns:    SalaryRecordsColumns,
		PrimaryKey: []*schema.Column{SalaryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "salaryrecord_job_title",
				Unique:  false,
				Columns: []*schema.Column{SalaryRecordsColumns[1]},
			},
			{
				Name:    "salaryrecord_market_demand",
				Unique:  false,
				Columns: []*schema.Column{SalaryRecordsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GoalsTable,
		JobRecordsTable,
		LlmRequestEventsTable,
		LearnersTable,
		LearnerSkillsTable,
		ModeEventsTable,
		PathwaysTable,
		PathwaySkillsTable,
		SalaryRecordsTable,
	}
)

func init() {
}
