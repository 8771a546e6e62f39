package riasec

// positionWeights weight each code position for fit scoring: the core
// drive matters most, the amplifier least. The sum (6) is the maximum
// weighted overlap and normalizes the score to [0, 1].
var positionWeights = [3]float64{3, 2, 1}

const maxFitWeight = 6.0

// CompareFit quantifies how much of the learner's drive/expression/
// amplifier stack overlaps with the job's code. A letter matching at the
// same position earns its full position weight; a letter present in the
// job code at a different position earns half. The result is normalized
// to [0, 1]; identical codes score exactly 1.
func CompareFit(learnerCode, jobCode string) (float64, error) {
	learner, err := ParseCode(learnerCode)
	if err != nil {
		return 0, err
	}
	job, err := ParseCode(jobCode)
	if err != nil {
		return 0, err
	}

	jobSet := make(map[Type]bool, 3)
	for _, t := range job {
		jobSet[t] = true
	}

	var score float64
	for i, t := range learner {
		switch {
		case job[i] == t:
			score += positionWeights[i]
		case jobSet[t]:
			score += positionWeights[i] / 2
		}
	}

	return score / maxFitWeight, nil
}

// Fit is the detailed outcome of comparing two codes.
type Fit struct {
	LearnerCode    string
	JobCode        string
	Score          float64 // normalized, [0, 1]
	Level          string  // Excellent, Good, Moderate, Low
	Recommendation string
	PrimaryMatch   bool
	SecondaryMatch bool
	TertiaryMatch  bool
	SharedTypes    []Type
}

// CompareCodes runs CompareFit and adds the per-position breakdown and a
// human-readable fit level for conversational display.
func CompareCodes(learnerCode, jobCode string) (*Fit, error) {
	score, err := CompareFit(learnerCode, jobCode)
	if err != nil {
		return nil, err
	}

	learner, _ := ParseCode(learnerCode)
	job, _ := ParseCode(jobCode)

	jobSet := make(map[Type]bool, 3)
	for _, t := range job {
		jobSet[t] = true
	}
	var shared []Type
	for _, t := range learner {
		if jobSet[t] {
			shared = append(shared, t)
		}
	}

	level, rec := fitLevel(score)

	return &Fit{
		LearnerCode:    string(learner[0]) + string(learner[1]) + string(learner[2]),
		JobCode:        string(job[0]) + string(job[1]) + string(job[2]),
		Score:          score,
		Level:          level,
		Recommendation: rec,
		PrimaryMatch:   learner[0] == job[0],
		SecondaryMatch: learner[1] == job[1],
		TertiaryMatch:  learner[2] == job[2],
		SharedTypes:    shared,
	}, nil
}

func fitLevel(score float64) (string, string) {
	switch {
	case score >= 0.8:
		return "Excellent", "Strong match: your interests align very well with this role"
	case score >= 0.5:
		return "Good", "Good match: your primary interests align with this role"
	case score >= 0.3:
		return "Moderate", "Moderate match: some shared interests but significant differences"
	default:
		return "Low", "Limited match: this role may be quite different from your natural preferences"
	}
}
