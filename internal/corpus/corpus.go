// Package corpus provides read access to the job and salary reference
// data that grounds career recommendations. The data is imported once
// and queried many times; all gateway methods are read-only.
package corpus

import (
	"context"
	"fmt"
)

// Job is one posting from the unified jobs corpus. Skills is the raw
// comma-separated requirement list as imported; the skillgap package
// parses it.
type Job struct {
	Link             string
	Title            string
	Company          string
	Location         string
	Level            string
	Skills           string
	RiasecCode       string
	RiasecConfidence float64
	PrimaryType      string
}

// SalaryRecord is one row of the salary and labor-market reference data.
type SalaryRecord struct {
	JobTitle          string
	MedianSalary      int
	MarketDemand      string
	SupplyDemandRatio float64
	RiasecCode        string
	RecentPostings    int
}

// MarketSegment aggregates the salary reference by labor-market tag.
type MarketSegment struct {
	MarketTag     string
	JobCount      int
	AvgSalary     float64
	TotalPostings int
}

// JobQuery filters SearchJobs. Zero-value fields are not applied; Skills
// entries match if any one appears in the job's requirement list.
type JobQuery struct {
	Title    string
	Skills   []string
	Location string
	Level    string
	Limit    int
}

// DemandQuery filters HighDemandJobs.
type DemandQuery struct {
	RiasecType string
	MinSalary  int
	Limit      int
}

// DefaultLimit caps result sets when a query leaves Limit unset.
const DefaultLimit = 10

// Gateway is the read interface over the corpus. Implementations must be
// safe for concurrent use.
type Gateway interface {
	// SearchJobs returns jobs matching the query, ordered by descending
	// classification confidence.
	SearchJobs(ctx context.Context, q JobQuery) ([]Job, error)

	// JobsByCode returns jobs whose RIASEC code matches exactly, or whose
	// primary type matches code's first letter when primaryOnly is set.
	JobsByCode(ctx context.Context, code string, primaryOnly bool, level string, limit int) ([]Job, error)

	// JobByLink returns the job with the given link, or *JobNotFoundError.
	JobByLink(ctx context.Context, link string) (*Job, error)

	// SalaryInfo returns salary records whose title contains the given
	// title, ordered by descending recent postings, at most 5 rows.
	SalaryInfo(ctx context.Context, title string) ([]SalaryRecord, error)

	// HighDemandJobs returns shortage-tagged salary records matching the
	// query, ordered by descending recent postings.
	HighDemandJobs(ctx context.Context, q DemandQuery) ([]SalaryRecord, error)

	// MarketInsights aggregates the salary reference by market tag,
	// optionally restricted to one primary RIASEC type.
	MarketInsights(ctx context.Context, riasecType string) ([]MarketSegment, error)
}

// JobNotFoundError indicates no corpus row exists for the requested link.
type JobNotFoundError struct {
	Link string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job not found: %s", e.Link)
}
