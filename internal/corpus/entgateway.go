package corpus

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/careerstu/careerstu/ent"
	"github.com/careerstu/careerstu/ent/jobrecord"
	"github.com/careerstu/careerstu/ent/predicate"
	"github.com/careerstu/careerstu/ent/salaryrecord"
)

// entGateway implements Gateway over the ent-managed corpus tables.
type entGateway struct {
	client *ent.Client
}

// NewEntGateway returns a Gateway backed by the given ent client.
func NewEntGateway(client *ent.Client) Gateway {
	return &entGateway{client: client}
}

func (g *entGateway) SearchJobs(ctx context.Context, q JobQuery) ([]Job, error) {
	query := g.client.JobRecord.Query()

	if q.Title != "" {
		query = query.Where(jobrecord.TitleContainsFold(q.Title))
	}
	if len(q.Skills) > 0 {
		preds := make([]predicate.JobRecord, 0, len(q.Skills))
		for _, s := range q.Skills {
			preds = append(preds, jobrecord.SkillsContainsFold(s))
		}
		query = query.Where(jobrecord.Or(preds...))
	}
	if q.Location != "" {
		query = query.Where(jobrecord.LocationContainsFold(q.Location))
	}
	if q.Level != "" {
		query = query.Where(jobrecord.LevelContainsFold(q.Level))
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := query.
		Order(ent.Desc(jobrecord.FieldRiasecConfidence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	return jobsFromEnt(rows), nil
}

func (g *entGateway) JobsByCode(ctx context.Context, code string, primaryOnly bool, level string, limit int) ([]Job, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("empty riasec code")
	}

	query := g.client.JobRecord.Query()
	if primaryOnly {
		query = query.Where(jobrecord.PrimaryType(code[:1]))
	} else {
		query = query.Where(jobrecord.RiasecCode(code))
	}
	if level != "" {
		query = query.Where(jobrecord.LevelContainsFold(level))
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := query.
		Order(ent.Desc(jobrecord.FieldRiasecConfidence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("jobs by riasec code: %w", err)
	}
	return jobsFromEnt(rows), nil
}

func (g *entGateway) JobByLink(ctx context.Context, link string) (*Job, error) {
	row, err := g.client.JobRecord.Query().
		Where(jobrecord.Link(link)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &JobNotFoundError{Link: link}
		}
		return nil, fmt.Errorf("job by link: %w", err)
	}
	j := jobFromEnt(row)
	return &j, nil
}

func (g *entGateway) SalaryInfo(ctx context.Context, title string) ([]SalaryRecord, error) {
	rows, err := g.client.SalaryRecord.Query().
		Where(salaryrecord.JobTitleContainsFold(title)).
		Order(ent.Desc(salaryrecord.FieldRecentPostings)).
		Limit(5).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("salary info: %w", err)
	}
	return salariesFromEnt(rows), nil
}

func (g *entGateway) HighDemandJobs(ctx context.Context, q DemandQuery) ([]SalaryRecord, error) {
	query := g.client.SalaryRecord.Query().
		Where(salaryrecord.MarketDemandContains("Shortage"))

	if q.MinSalary > 0 {
		query = query.Where(salaryrecord.MedianSalaryGTE(q.MinSalary))
	}
	if q.RiasecType != "" {
		query = query.Where(salaryrecord.RiasecCodeHasPrefix(strings.ToUpper(q.RiasecType)))
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := query.
		Order(ent.Desc(salaryrecord.FieldRecentPostings)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("high demand jobs: %w", err)
	}
	return salariesFromEnt(rows), nil
}

func (g *entGateway) MarketInsights(ctx context.Context, riasecType string) ([]MarketSegment, error) {
	query := g.client.SalaryRecord.Query()
	if riasecType != "" {
		query = query.Where(salaryrecord.RiasecCodeHasPrefix(strings.ToUpper(riasecType)))
	}

	var rows []struct {
		MarketDemand string  `json:"market_demand"`
		Count        int     `json:"count"`
		Mean         float64 `json:"mean"`
		Sum          int     `json:"sum"`
	}
	err := query.
		GroupBy(salaryrecord.FieldMarketDemand).
		Aggregate(
			ent.Count(),
			ent.Mean(salaryrecord.FieldMedianSalary),
			ent.Sum(salaryrecord.FieldRecentPostings),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("market insights: %w", err)
	}

	segments := make([]MarketSegment, 0, len(rows))
	for _, r := range rows {
		segments = append(segments, MarketSegment{
			MarketTag:     r.MarketDemand,
			JobCount:      r.Count,
			AvgSalary:     r.Mean,
			TotalPostings: r.Sum,
		})
	}
	sort.Slice(segments, func(i, j int) bool {
		return segments[i].JobCount > segments[j].JobCount
	})
	return segments, nil
}

func jobFromEnt(r *ent.JobRecord) Job {
	return Job{
		Link:             r.Link,
		Title:            r.Title,
		Company:          r.Company,
		Location:         r.Location,
		Level:            r.Level,
		Skills:           r.Skills,
		RiasecCode:       r.RiasecCode,
		RiasecConfidence: r.RiasecConfidence,
		PrimaryType:      r.PrimaryType,
	}
}

func jobsFromEnt(rows []*ent.JobRecord) []Job {
	jobs := make([]Job, 0, len(rows))
	for _, r := range rows {
		jobs = append(jobs, jobFromEnt(r))
	}
	return jobs
}

func salariesFromEnt(rows []*ent.SalaryRecord) []SalaryRecord {
	recs := make([]SalaryRecord, 0, len(rows))
	for _, r := range rows {
		recs = append(recs, SalaryRecord{
			JobTitle:          r.JobTitle,
			MedianSalary:      r.MedianSalary,
			MarketDemand:      r.MarketDemand,
			SupplyDemandRatio: r.SupplyDemandRatio,
			RiasecCode:        r.RiasecCode,
			RecentPostings:    r.RecentPostings,
		})
	}
	return recs
}
