package corpus_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/careerstu/careerstu/internal/corpus"
	"github.com/careerstu/careerstu/internal/store"
)

const jobsCSV = `link,title,company,location,level,skills,riasec_code,riasec_confidence
job-1,Data Analyst,Globex,Remote,Entry,"sql, excel, tableau",ICE,0.82
job-2,Research Scientist,Initech,Boston,Mid-Senior,"python, statistics",IRC,0.91
`

const salariesCSV = `job_title,median_salary,market_demand,supply_demand_ratio,riasec_code,recent_postings
Data Analyst,72000,Labor Shortage,0.4,ICE,1200
Research Scientist,115000,Balanced,1.1,IRC,300
`

func openTestClient(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "corpus.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestImportJobsAndQuery(t *testing.T) {
	s := openTestClient(t)
	ctx := context.Background()

	n, err := corpus.ImportJobs(ctx, s.Client(), strings.NewReader(jobsCSV))
	if err != nil {
		t.Fatalf("import jobs: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported %d rows, want 2", n)
	}

	gw := corpus.NewEntGateway(s.Client())

	jobs, err := gw.SearchJobs(ctx, corpus.JobQuery{Title: "analyst"})
	if err != nil {
		t.Fatalf("search jobs: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Link != "job-1" {
		t.Fatalf("jobs = %+v", jobs)
	}
	// Primary type is derived from the code during import.
	if jobs[0].PrimaryType != "I" {
		t.Errorf("primary type = %q, want I", jobs[0].PrimaryType)
	}

	j, err := gw.JobByLink(ctx, "job-2")
	if err != nil {
		t.Fatalf("job by link: %v", err)
	}
	if j.RiasecCode != "IRC" || j.RiasecConfidence != 0.91 {
		t.Errorf("job = %+v", j)
	}
}

func TestImportJobsMissingColumn(t *testing.T) {
	s := openTestClient(t)

	_, err := corpus.ImportJobs(context.Background(), s.Client(), strings.NewReader("link,skills\njob-1,sql\n"))
	if err == nil || !strings.Contains(err.Error(), "title") {
		t.Fatalf("error = %v, want missing title column", err)
	}
}

func TestImportSalariesAndQuery(t *testing.T) {
	s := openTestClient(t)
	ctx := context.Background()

	n, err := corpus.ImportSalaries(ctx, s.Client(), strings.NewReader(salariesCSV))
	if err != nil {
		t.Fatalf("import salaries: %v", err)
	}
	if n != 2 {
		t.Fatalf("imported %d rows, want 2", n)
	}

	gw := corpus.NewEntGateway(s.Client())

	recs, err := gw.SalaryInfo(ctx, "data analyst")
	if err != nil {
		t.Fatalf("salary info: %v", err)
	}
	if len(recs) != 1 || recs[0].MedianSalary != 72000 {
		t.Fatalf("records = %+v", recs)
	}

	demand, err := gw.HighDemandJobs(ctx, corpus.DemandQuery{RiasecType: "I"})
	if err != nil {
		t.Fatalf("high demand: %v", err)
	}
	if len(demand) != 1 || demand[0].JobTitle != "Data Analyst" {
		t.Fatalf("demand = %+v", demand)
	}
}
