package riasec

import "sort"

// Tier is the evidence strength of a skill indicator.
type Tier string

const (
	TierStrong   Tier = "strong"
	TierModerate Tier = "moderate"
	TierKeyword  Tier = "keyword"
)

// Weight returns the score contribution for a single match at this tier.
func (t Tier) Weight() float64 {
	switch t {
	case TierStrong:
		return 3.0
	case TierModerate:
		return 1.5
	case TierKeyword:
		return 1.0
	default:
		return 0
	}
}

// Indicator maps a normalized skill/keyword phrase to a type and tier.
type Indicator struct {
	Phrase string
	Type   Type
	Tier   Tier
}

// table holds all indicators sorted by phrase for deterministic scans.
// A phrase maps to exactly one (type, tier); when the seed lists repeat a
// phrase, the later entry silently overrides the earlier one. This mirrors
// the source data's behavior and is a known load-time characteristic.
var table []Indicator

// seedEntry groups the raw phrase lists for one type.
type seedEntry struct {
	typ      Type
	strong   []string
	moderate []string
	keywords []string
}

func init() {
	byPhrase := make(map[string]Indicator)
	for _, e := range seedIndicators {
		for _, p := range e.strong {
			n := normalize(p)
			byPhrase[n] = Indicator{Phrase: n, Type: e.typ, Tier: TierStrong}
		}
		for _, p := range e.moderate {
			n := normalize(p)
			byPhrase[n] = Indicator{Phrase: n, Type: e.typ, Tier: TierModerate}
		}
		for _, p := range e.keywords {
			n := normalize(p)
			byPhrase[n] = Indicator{Phrase: n, Type: e.typ, Tier: TierKeyword}
		}
	}

	table = make([]Indicator, 0, len(byPhrase))
	for _, ind := range byPhrase {
		table = append(table, ind)
	}
	sort.Slice(table, func(i, j int) bool { return table[i].Phrase < table[j].Phrase })
}

// Indicators returns the full indicator table, sorted by phrase.
// The returned slice must not be modified.
func Indicators() []Indicator {
	return table
}

// seedIndicators is the static skill indicator data, one entry per type.
var seedIndicators = []seedEntry{
	{
		typ: Realistic,
		strong: []string{
			"maintenance", "repair", "construction", "welding", "plumbing",
			"electrical", "HVAC", "carpentry", "machinery", "forklift", "CDL",
			"truck driving", "warehouse", "manufacturing", "assembly",
			"installation", "mechanical", "automotive", "diesel", "landscaping",
			"farming", "firefighting", "EMT", "CPR", "BLS",
		},
		moderate: []string{
			"hands-on", "technical", "field work", "troubleshooting",
			"inspection", "quality control", "building", "fixing",
		},
		keywords: []string{
			"outdoor", "equipment", "tools", "physical", "operating",
		},
	},
	{
		typ: Investigative,
		strong: []string{
			"research", "analysis", "data analysis", "statistics", "analytics",
			"programming", "software development", "Python", "Java",
			"JavaScript", "SQL", "machine learning", "AI", "data science",
			"algorithms", "debugging", "laboratory", "clinical research",
			"diagnosis", "engineering", "mathematics", "physics", "chemistry",
			"biology",
		},
		moderate: []string{
			"problem-solving", "critical thinking", "investigation",
			"evaluation", "assessment", "documentation", "technical writing",
			"analytical",
		},
		keywords: []string{
			"science", "data", "experiment", "modeling", "hypothesis",
		},
	},
	{
		typ: Artistic,
		strong: []string{
			"graphic design", "UI design", "UX design", "visual design",
			"web design", "illustration", "photography", "videography",
			"video editing", "animation", "creative writing", "copywriting",
			"content creation", "music", "acting", "dance", "fashion design",
			"interior design", "Adobe", "Photoshop", "Illustrator", "Figma",
			"art direction",
		},
		moderate: []string{
			"creative", "innovative", "artistic", "aesthetic", "visual",
			"media", "content", "brand", "design",
		},
		keywords: []string{
			"storytelling", "imagination", "expression", "composition",
		},
	},
	{
		typ: Social,
		strong: []string{
			"teaching", "education", "training", "nursing", "patient care",
			"caregiving", "home health", "counseling", "therapy", "psychology",
			"social work", "case management", "customer service",
			"customer support", "coaching", "mentoring", "healthcare",
			"medical", "clinical", "pediatric", "geriatric",
			"special education",
		},
		moderate: []string{
			"communication", "interpersonal", "empathy", "listening",
			"teamwork", "collaboration", "support", "helping", "service",
		},
		keywords: []string{
			"community", "volunteering", "advocacy", "wellbeing",
		},
	},
	{
		typ: Enterprising,
		strong: []string{
			"sales", "business development", "account management",
			"management", "leadership", "executive", "director", "supervisor",
			"marketing", "advertising", "public relations", "entrepreneurship",
			"negotiation", "persuasion", "recruiting", "real estate",
			"project management", "operations management",
		},
		moderate: []string{
			"strategic", "competitive", "goal-oriented", "results-driven",
			"influencing", "presenting", "pitching", "networking", "business",
		},
		keywords: []string{
			"revenue", "growth", "ownership", "selling",
		},
	},
	{
		typ: Conventional,
		strong: []string{
			"accounting", "bookkeeping", "auditing", "tax preparation",
			"payroll", "administrative", "clerical", "data entry", "filing",
			"records management", "scheduling", "compliance", "regulatory",
			"inventory management", "logistics", "supply chain", "billing",
			"invoicing", "Microsoft Office", "Excel", "QuickBooks", "SAP",
		},
		moderate: []string{
			"organized", "detail-oriented", "systematic", "accurate",
			"precise", "process", "procedure", "reporting",
		},
		keywords: []string{
			"spreadsheets", "recordkeeping", "routine", "checklists",
		},
	},
}
