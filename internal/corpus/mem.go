package corpus

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemGateway is an in-memory Gateway. Used in tests and anywhere a
// database-free corpus is convenient.
type MemGateway struct {
	mu       sync.RWMutex
	jobs     []Job
	salaries []SalaryRecord
}

// NewMemGateway returns an empty in-memory gateway.
func NewMemGateway() *MemGateway {
	return &MemGateway{}
}

// AddJobs appends jobs to the corpus.
func (g *MemGateway) AddJobs(jobs ...Job) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.jobs = append(g.jobs, jobs...)
}

// AddSalaries appends salary records to the corpus.
func (g *MemGateway) AddSalaries(recs ...SalaryRecord) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.salaries = append(g.salaries, recs...)
}

func (g *MemGateway) SearchJobs(_ context.Context, q JobQuery) ([]Job, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Job
	for _, j := range g.jobs {
		if q.Title != "" && !containsFold(j.Title, q.Title) {
			continue
		}
		if q.Location != "" && !containsFold(j.Location, q.Location) {
			continue
		}
		if q.Level != "" && !containsFold(j.Level, q.Level) {
			continue
		}
		if len(q.Skills) > 0 && !anySkillMatches(j.Skills, q.Skills) {
			continue
		}
		out = append(out, j)
	}

	sortByConfidence(out)
	return capJobs(out, q.Limit), nil
}

func (g *MemGateway) JobsByCode(_ context.Context, code string, primaryOnly bool, level string, limit int) ([]Job, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	code = strings.ToUpper(strings.TrimSpace(code))
	var out []Job
	for _, j := range g.jobs {
		if primaryOnly {
			if code == "" || !strings.EqualFold(j.PrimaryType, code[:1]) {
				continue
			}
		} else if !strings.EqualFold(j.RiasecCode, code) {
			continue
		}
		if level != "" && !containsFold(j.Level, level) {
			continue
		}
		out = append(out, j)
	}

	sortByConfidence(out)
	return capJobs(out, limit), nil
}

func (g *MemGateway) JobByLink(_ context.Context, link string) (*Job, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, j := range g.jobs {
		if j.Link == link {
			found := j
			return &found, nil
		}
	}
	return nil, &JobNotFoundError{Link: link}
}

func (g *MemGateway) SalaryInfo(_ context.Context, title string) ([]SalaryRecord, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []SalaryRecord
	for _, r := range g.salaries {
		if containsFold(r.JobTitle, title) {
			out = append(out, r)
		}
	}
	sortByPostings(out)
	if len(out) > 5 {
		out = out[:5]
	}
	return out, nil
}

func (g *MemGateway) HighDemandJobs(_ context.Context, q DemandQuery) ([]SalaryRecord, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []SalaryRecord
	for _, r := range g.salaries {
		if !strings.Contains(r.MarketDemand, "Shortage") {
			continue
		}
		if q.MinSalary > 0 && r.MedianSalary < q.MinSalary {
			continue
		}
		if q.RiasecType != "" && !strings.HasPrefix(r.RiasecCode, strings.ToUpper(q.RiasecType)) {
			continue
		}
		out = append(out, r)
	}

	sortByPostings(out)
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (g *MemGateway) MarketInsights(_ context.Context, riasecType string) ([]MarketSegment, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	type acc struct {
		count    int
		salary   int
		postings int
	}
	byTag := make(map[string]*acc)
	for _, r := range g.salaries {
		if riasecType != "" && !strings.HasPrefix(r.RiasecCode, strings.ToUpper(riasecType)) {
			continue
		}
		a := byTag[r.MarketDemand]
		if a == nil {
			a = &acc{}
			byTag[r.MarketDemand] = a
		}
		a.count++
		a.salary += r.MedianSalary
		a.postings += r.RecentPostings
	}

	segments := make([]MarketSegment, 0, len(byTag))
	for tag, a := range byTag {
		segments = append(segments, MarketSegment{
			MarketTag:     tag,
			JobCount:      a.count,
			AvgSalary:     float64(a.salary) / float64(a.count),
			TotalPostings: a.postings,
		})
	}
	sort.Slice(segments, func(i, j int) bool {
		if segments[i].JobCount != segments[j].JobCount {
			return segments[i].JobCount > segments[j].JobCount
		}
		return segments[i].MarketTag < segments[j].MarketTag
	})
	return segments, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anySkillMatches(skillsCSV string, wanted []string) bool {
	for _, w := range wanted {
		if containsFold(skillsCSV, w) {
			return true
		}
	}
	return false
}

func sortByConfidence(jobs []Job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].RiasecConfidence > jobs[j].RiasecConfidence
	})
}

func sortByPostings(recs []SalaryRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].RecentPostings > recs[j].RecentPostings
	})
}

func capJobs(jobs []Job, limit int) []Job {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs
}
