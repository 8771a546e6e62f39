package riasec

import "strings"

// TypeRole is one letter of a code with its meaning at that position.
type TypeRole struct {
	Letter Type
	Name   string
	Title  string
	Role   string
}

// Description is the reference-table entry for a 3-letter code.
type Description struct {
	Code      string
	Summary   string
	Gift      string
	Themes    []string
	Breakdown []TypeRole
}

// Describe looks up the reference entry for a 3-letter code.
// Returns *InvalidCodeError if the code is not exactly three distinct
// letters from the RIASEC alphabet.
func Describe(code string) (*Description, error) {
	letters, err := ParseCode(code)
	if err != nil {
		return nil, err
	}

	key := string(letters[0]) + string(letters[1]) + string(letters[2])
	entry := combinations[key]

	breakdown := make([]TypeRole, 3)
	for i, t := range letters {
		breakdown[i] = TypeRole{
			Letter: t,
			Name:   t.Name(),
			Title:  t.Title(),
			Role:   positionRoles[i],
		}
	}

	return &Description{
		Code:      entry.code,
		Summary:   entry.summary,
		Gift:      entry.gift,
		Themes:    entry.themes,
		Breakdown: breakdown,
	}, nil
}

// ParseCode validates a RIASEC code: exactly 3 distinct letters from the
// valid alphabet, case-insensitive. Returns the uppercased letters.
func ParseCode(code string) ([3]Type, error) {
	var letters [3]Type

	upper := strings.ToUpper(strings.TrimSpace(code))
	if len(upper) != 3 {
		return letters, &InvalidCodeError{Code: code, Reason: "must be exactly 3 letters"}
	}

	seen := make(map[Type]bool, 3)
	for i := 0; i < 3; i++ {
		t := Type(upper[i : i+1])
		if !t.Valid() {
			return letters, &InvalidCodeError{Code: code, Reason: "letters must be from R, I, A, S, E, C"}
		}
		if seen[t] {
			return letters, &InvalidCodeError{Code: code, Reason: "letters must be distinct"}
		}
		seen[t] = true
		letters[i] = t
	}

	return letters, nil
}
