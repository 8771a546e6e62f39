package corpus

import (
	"context"
	"errors"
	"testing"
)

func seededGateway() *MemGateway {
	g := NewMemGateway()
	g.AddJobs(
		Job{
			Link: "job-1", Title: "Data Scientist", Company: "Acme",
			Location: "Remote", Level: "Mid-Senior",
			Skills:     "python, sql, machine learning",
			RiasecCode: "IRC", RiasecConfidence: 0.91, PrimaryType: "I",
		},
		Job{
			Link: "job-2", Title: "Data Analyst", Company: "Globex",
			Location: "Austin, TX", Level: "Entry",
			Skills:     "sql, excel, tableau",
			RiasecCode: "ICE", RiasecConfidence: 0.74, PrimaryType: "I",
		},
		Job{
			Link: "job-3", Title: "Sales Manager", Company: "Initech",
			Location: "Remote", Level: "Director",
			Skills:     "negotiation, crm, leadership",
			RiasecCode: "ESC", RiasecConfidence: 0.88, PrimaryType: "E",
		},
	)
	g.AddSalaries(
		SalaryRecord{
			JobTitle: "Data Scientist", MedianSalary: 125000,
			MarketDemand: "Labor Shortage", SupplyDemandRatio: 0.6,
			RiasecCode: "IRC", RecentPostings: 4200,
		},
		SalaryRecord{
			JobTitle: "Data Analyst", MedianSalary: 78000,
			MarketDemand: "Balanced", SupplyDemandRatio: 1.1,
			RiasecCode: "ICE", RecentPostings: 6100,
		},
		SalaryRecord{
			JobTitle: "Registered Nurse", MedianSalary: 86000,
			MarketDemand: "Severe Labor Shortage", SupplyDemandRatio: 0.3,
			RiasecCode: "SIR", RecentPostings: 9800,
		},
	)
	return g
}

func TestSearchJobs_TitleFilter(t *testing.T) {
	g := seededGateway()

	jobs, err := g.SearchJobs(context.Background(), JobQuery{Title: "data"})
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	// Ordered by descending classification confidence.
	if jobs[0].Link != "job-1" || jobs[1].Link != "job-2" {
		t.Errorf("order = %s, %s", jobs[0].Link, jobs[1].Link)
	}
}

func TestSearchJobs_SkillsMatchAny(t *testing.T) {
	g := seededGateway()

	jobs, err := g.SearchJobs(context.Background(), JobQuery{Skills: []string{"tableau", "leadership"}})
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("got %d jobs, want 2 (any-skill match)", len(jobs))
	}
}

func TestSearchJobs_Limit(t *testing.T) {
	g := seededGateway()

	jobs, err := g.SearchJobs(context.Background(), JobQuery{Limit: 1})
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if len(jobs) != 1 {
		t.Errorf("got %d jobs, want 1", len(jobs))
	}
}

func TestJobsByCode(t *testing.T) {
	g := seededGateway()
	ctx := context.Background()

	exact, err := g.JobsByCode(ctx, "irc", false, "", 0)
	if err != nil {
		t.Fatalf("JobsByCode: %v", err)
	}
	if len(exact) != 1 || exact[0].Link != "job-1" {
		t.Errorf("exact match = %+v", exact)
	}

	primary, err := g.JobsByCode(ctx, "IRC", true, "", 0)
	if err != nil {
		t.Fatalf("JobsByCode primary: %v", err)
	}
	if len(primary) != 2 {
		t.Errorf("primary-type match got %d jobs, want 2", len(primary))
	}
}

func TestJobByLink_NotFound(t *testing.T) {
	g := seededGateway()

	_, err := g.JobByLink(context.Background(), "job-404")
	var nf *JobNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error = %v, want JobNotFoundError", err)
	}
	if nf.Link != "job-404" {
		t.Errorf("link = %q", nf.Link)
	}
}

func TestSalaryInfo_OrderedByPostings(t *testing.T) {
	g := seededGateway()

	recs, err := g.SalaryInfo(context.Background(), "data")
	if err != nil {
		t.Fatalf("SalaryInfo: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].JobTitle != "Data Analyst" {
		t.Errorf("first record = %q, want most-posted first", recs[0].JobTitle)
	}
}

func TestHighDemandJobs(t *testing.T) {
	g := seededGateway()
	ctx := context.Background()

	all, err := g.HighDemandJobs(ctx, DemandQuery{})
	if err != nil {
		t.Fatalf("HighDemandJobs: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d shortage records, want 2", len(all))
	}
	if all[0].JobTitle != "Registered Nurse" {
		t.Errorf("first = %q, want most-posted shortage first", all[0].JobTitle)
	}

	filtered, err := g.HighDemandJobs(ctx, DemandQuery{RiasecType: "i", MinSalary: 100000})
	if err != nil {
		t.Fatalf("HighDemandJobs filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].JobTitle != "Data Scientist" {
		t.Errorf("filtered = %+v", filtered)
	}
}

func TestMarketInsights(t *testing.T) {
	g := seededGateway()

	segments, err := g.MarketInsights(context.Background(), "")
	if err != nil {
		t.Fatalf("MarketInsights: %v", err)
	}
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}
	for _, s := range segments {
		if s.JobCount != 1 {
			t.Errorf("segment %q count = %d", s.MarketTag, s.JobCount)
		}
	}

	segments, err = g.MarketInsights(context.Background(), "S")
	if err != nil {
		t.Fatalf("MarketInsights filtered: %v", err)
	}
	if len(segments) != 1 || segments[0].MarketTag != "Severe Labor Shortage" {
		t.Errorf("filtered segments = %+v", segments)
	}
}
