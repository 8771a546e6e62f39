package skillgap

import (
	"sort"
	"sync"
)

// Target is one job to score in a best-fit scan.
type Target struct {
	Ref         string // opaque job identifier (e.g. job link)
	Title       string
	RequiredCSV string
}

// Match pairs a target with its gap result.
type Match struct {
	Target Target
	Result Result
}

// scanWorkers bounds concurrency for best-fit scans.
const scanWorkers = 8

// BestMatches computes the gap for every target concurrently and returns
// those at or above minPercent, best first, capped at limit (0 = no cap).
// Ties are broken by target ref for reproducible output.
func BestMatches(learnerSkills []string, targets []Target, minPercent float64, limit int) []Match {
	results := make([]Match, len(targets))

	var wg sync.WaitGroup
	work := make(chan int)
	for w := 0; w < scanWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results[i] = Match{
					Target: targets[i],
					Result: Gap(learnerSkills, targets[i].RequiredCSV),
				}
			}
		}()
	}
	for i := range targets {
		work <- i
	}
	close(work)
	wg.Wait()

	matches := results[:0:0]
	for _, m := range results {
		if m.Result.TotalRequired > 0 && m.Result.MatchPercent >= minPercent {
			matches = append(matches, m)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Result.MatchPercent != matches[j].Result.MatchPercent {
			return matches[i].Result.MatchPercent > matches[j].Result.MatchPercent
		}
		return matches[i].Target.Ref < matches[j].Target.Ref
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
