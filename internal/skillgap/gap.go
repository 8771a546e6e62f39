// Package skillgap compares a learner's skill set against a target job's
// required skills. Every function is pure: no I/O, no shared state, safe
// to call from any number of goroutines.
package skillgap

import (
	"math"
	"sort"
	"strings"
)

// Result is the outcome of a gap computation.
type Result struct {
	// Has lists required skills the learner already holds, sorted.
	Has []string

	// Needs lists required skills the learner is missing, sorted.
	Needs []string

	// MatchPercent is 100 * |Has| / |required|, rounded to one decimal.
	// Defined as 0 when the required set is empty.
	MatchPercent float64

	// TotalRequired is the size of the deduplicated required set.
	TotalRequired int
}

// Gap parses requiredCSV (comma-delimited skill names) and compares it to
// learnerSkills. Matching is case-insensitive exact comparison after
// trimming; duplicates collapse on both sides. No fuzzy matching.
func Gap(learnerSkills []string, requiredCSV string) Result {
	required := parseSkillSet(strings.Split(requiredCSV, ","))
	learner := parseSkillSet(learnerSkills)

	var has, needs []string
	for skill := range required {
		if learner[skill] {
			has = append(has, skill)
		} else {
			needs = append(needs, skill)
		}
	}
	sort.Strings(has)
	sort.Strings(needs)

	percent := 0.0
	if len(required) > 0 {
		percent = roundOneDecimal(100 * float64(len(has)) / float64(len(required)))
	}

	return Result{
		Has:           has,
		Needs:         needs,
		MatchPercent:  percent,
		TotalRequired: len(required),
	}
}

// SuggestNext returns the first count missing skills as the next skills to
// learn. Ordering is the gap's sorted order; smarter prioritization
// (prerequisites, market demand) belongs to the caller.
func SuggestNext(learnerSkills []string, requiredCSV string, count int) []string {
	needs := Gap(learnerSkills, requiredCSV).Needs
	if count < len(needs) {
		return needs[:count]
	}
	return needs
}

// parseSkillSet trims, lowercases, and deduplicates skill names, dropping
// empty entries.
func parseSkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = true
		}
	}
	return set
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
