package riasec

import (
	"sort"
	"strings"
)

// titleBonus is the extra score a STRONG or MODERATE indicator earns when
// its phrase also appears in the job title. Applied once per distinct
// indicator, not once per occurrence.
const titleBonus = 2.0

// epsilon guards the confidence division when scores are tiny.
const epsilon = 1e-9

// Result is the outcome of classifying a set of skill phrases.
type Result struct {
	// Code is the 3-letter RIASEC code, top three types in rank order.
	Code string

	// PrimaryType is the full name of the code's first letter.
	PrimaryType string

	// Confidence is min(1, top/(top+second+ε)), or 0 when no indicator
	// matched at all.
	Confidence float64

	// Scores holds the raw per-type scores.
	Scores map[Type]float64

	// Matched lists the indicator phrases that contributed per type,
	// sorted, for diagnostic display.
	Matched map[Type][]string
}

// Classify scores skill phrases (and an optional job title) against the
// indicator table and returns the ranked 3-letter code.
//
// Matching is substring-based over normalized text. A consequence carried
// over from the source data: overlapping indicator phrases both match the
// same input ("analysis" and "data analysis" both score against
// "data analysis work"), reinforcing types with layered vocabulary.
//
// An empty phrase list is legal: every score is zero, confidence is 0, and
// the code falls back to the tie-break default ("ISE"). Identical inputs
// always produce identical results.
func Classify(phrases []string, title string) Result {
	scores := make(map[Type]float64, 6)
	matched := make(map[Type]map[string]bool)
	for _, t := range AllTypes() {
		scores[t] = 0
	}

	normalized := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if n := normalize(p); n != "" {
			normalized = append(normalized, n)
		}
	}
	normalizedTitle := normalize(title)

	for _, ind := range table {
		for _, phrase := range normalized {
			if strings.Contains(phrase, ind.Phrase) {
				scores[ind.Type] += ind.Tier.Weight()
				if matched[ind.Type] == nil {
					matched[ind.Type] = make(map[string]bool)
				}
				matched[ind.Type][ind.Phrase] = true
			}
		}

		// Title bonus: once per distinct STRONG/MODERATE indicator found
		// in the title, regardless of how often it occurs.
		if normalizedTitle != "" && ind.Tier != TierKeyword &&
			strings.Contains(normalizedTitle, ind.Phrase) {
			scores[ind.Type] += titleBonus
			if matched[ind.Type] == nil {
				matched[ind.Type] = make(map[string]bool)
			}
			matched[ind.Type][ind.Phrase] = true
		}
	}

	ranked := rankTypes(scores)
	code := string(ranked[0]) + string(ranked[1]) + string(ranked[2])

	top := scores[ranked[0]]
	second := scores[ranked[1]]
	confidence := 0.0
	if top > 0 {
		confidence = top / (top + second + epsilon)
		if confidence > 1 {
			confidence = 1
		}
	}

	return Result{
		Code:        code,
		PrimaryType: ranked[0].Name(),
		Confidence:  confidence,
		Scores:      scores,
		Matched:     sortedMatches(matched),
	}
}

// rankTypes orders all six types by score descending, breaking ties with
// the canonical priority order.
func rankTypes(scores map[Type]float64) []Type {
	ranked := make([]Type, len(tieBreakOrder))
	copy(ranked, tieBreakOrder)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i]], scores[ranked[j]]
		if si != sj {
			return si > sj
		}
		return tieBreakRank[ranked[i]] < tieBreakRank[ranked[j]]
	})
	return ranked
}

func sortedMatches(matched map[Type]map[string]bool) map[Type][]string {
	out := make(map[Type][]string, len(matched))
	for t, set := range matched {
		phrases := make([]string, 0, len(set))
		for p := range set {
			phrases = append(phrases, p)
		}
		sort.Strings(phrases)
		out[t] = phrases
	}
	return out
}
