package riasec

import "fmt"

// Position roles in a 3-letter code. Position 1 is the core drive (why you
// act), position 2 the primary expression (how you act), position 3 the
// supporting amplifier (what strengthens your impact).
var positionRoles = [3]string{"core drive", "primary expression", "supporting amplifier"}

// roleFragments describes how each type reads in each code position.
var roleFragments = map[Type][3]string{
	Realistic: {
		"you are driven to work with your hands and see tangible results",
		"you act by building, fixing, and operating in the physical world",
		"practical, hands-on grounding",
	},
	Investigative: {
		"you are driven to understand how things work and solve hard problems",
		"you act by analyzing, researching, and reasoning through evidence",
		"analytical depth and rigor",
	},
	Artistic: {
		"you are driven to create and express original ideas",
		"you act by designing, composing, and imagining new forms",
		"creative flair and originality",
	},
	Social: {
		"you are driven to help people grow and thrive",
		"you act by teaching, supporting, and connecting with others",
		"warmth and people focus",
	},
	Enterprising: {
		"you are driven to lead, persuade, and make things happen",
		"you act by organizing people, selling ideas, and taking initiative",
		"drive and influence",
	},
	Conventional: {
		"you are driven to bring order and reliability to complex systems",
		"you act by structuring, tracking, and perfecting processes",
		"precision and dependability",
	},
}

// typeThemes lists representative career themes per type.
var typeThemes = map[Type][]string{
	Realistic:     {"skilled trades", "field operations", "equipment and machinery"},
	Investigative: {"research and analysis", "software and data", "science and engineering"},
	Artistic:      {"design and media", "writing and content", "visual arts"},
	Social:        {"education and training", "healthcare and care work", "counseling and support"},
	Enterprising:  {"sales and business development", "management and leadership", "marketing"},
	Conventional:  {"finance and accounting", "administration", "logistics and compliance"},
}

// combo is one entry of the 120-combination reference table.
type combo struct {
	code    string
	summary string
	gift    string
	themes  []string
}

// combinations is the full table of 120 ordered 3-letter codes, built once
// at init. Lookup is O(1).
var combinations map[string]combo

func init() {
	all := AllTypes()
	combinations = make(map[string]combo, 120)
	for _, a := range all {
		for _, b := range all {
			if b == a {
				continue
			}
			for _, c := range all {
				if c == a || c == b {
					continue
				}
				combinations[string(a)+string(b)+string(c)] = buildCombo(a, b, c)
			}
		}
	}
}

func buildCombo(a, b, c Type) combo {
	summary := fmt.Sprintf(
		"%s-%s-%s (%s, %s, %s): at your core %s; %s; amplified by %s.",
		a, b, c, a.Name(), b.Name(), c.Name(),
		roleFragments[a][0], roleFragments[b][1], roleFragments[c][2],
	)
	gift := fmt.Sprintf(
		"Your gift is combining a %s core with %s expression, strengthened by %s.",
		a.Name(), b.Name(), roleFragments[c][2],
	)

	themes := make([]string, 0, 6)
	for _, t := range []Type{a, b, c} {
		themes = append(themes, typeThemes[t][:2]...)
	}

	return combo{
		code:    string(a) + string(b) + string(c),
		summary: summary,
		gift:    gift,
		themes:  themes,
	}
}
