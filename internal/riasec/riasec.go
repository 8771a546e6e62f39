package riasec

// Type is one of Holland's six interest types, identified by its letter.
type Type string

const (
	Realistic     Type = "R"
	Investigative Type = "I"
	Artistic      Type = "A"
	Social        Type = "S"
	Enterprising  Type = "E"
	Conventional  Type = "C"
)

// AllTypes returns the six types in canonical display order (R-I-A-S-E-C).
func AllTypes() []Type {
	return []Type{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}
}

// tieBreakOrder ranks types for deterministic tie-breaking, highest priority
// first. The order follows observed real-world frequency of primary types
// and is part of the classifier's public contract: identical inputs always
// produce identical codes regardless of map iteration order.
var tieBreakOrder = []Type{Investigative, Social, Enterprising, Conventional, Realistic, Artistic}

// tieBreakRank maps a type to its position in tieBreakOrder (lower wins).
var tieBreakRank = func() map[Type]int {
	m := make(map[Type]int, len(tieBreakOrder))
	for i, t := range tieBreakOrder {
		m[t] = i
	}
	return m
}()

// Name returns the full name of the type.
func (t Type) Name() string {
	switch t {
	case Realistic:
		return "Realistic"
	case Investigative:
		return "Investigative"
	case Artistic:
		return "Artistic"
	case Social:
		return "Social"
	case Enterprising:
		return "Enterprising"
	case Conventional:
		return "Conventional"
	default:
		return string(t)
	}
}

// Title returns the archetype label for the type.
func (t Type) Title() string {
	switch t {
	case Realistic:
		return "The Doers"
	case Investigative:
		return "The Thinkers"
	case Artistic:
		return "The Creators"
	case Social:
		return "The Helpers"
	case Enterprising:
		return "The Persuaders"
	case Conventional:
		return "The Organizers"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the six RIASEC letters.
func (t Type) Valid() bool {
	switch t {
	case Realistic, Investigative, Artistic, Social, Enterprising, Conventional:
		return true
	}
	return false
}
