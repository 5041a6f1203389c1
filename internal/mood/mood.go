// Package mood classifies signal sets into a discrete mood state.
//
// The enumeration and the classifier rule table are coupled: every mood
// except Unknown owns exactly one scoring rule, and TestRuleTableTotal
// keeps the two from drifting apart.
package mood

// ID is a mood identifier.
type ID string

const (
	FeralProductivity ID = "feral_productivity"
	Exhausted         ID = "exhausted"
	Methodical        ID = "methodical"
	ChaoticNeutral    ID = "chaotic_neutral"
	BureaucraticZen   ID = "bureaucratic_zen"
	AmbientDrift      ID = "ambient_drift"
	RecursiveDoubt    ID = "recursive_doubt"
	EmergencyMode     ID = "emergency_mode"
	Unknown           ID = "unknown"
)

// All returns the classifiable moods in enumeration order.
// Unknown is excluded: it is the fallback, not a rule.
func All() []ID {
	return []ID{
		FeralProductivity,
		Exhausted,
		Methodical,
		ChaoticNeutral,
		BureaucraticZen,
		AmbientDrift,
		RecursiveDoubt,
		EmergencyMode,
	}
}

// Valid reports whether id is an enumeration member.
func Valid(id ID) bool {
	if id == Unknown {
		return true
	}
	for _, m := range All() {
		if m == id {
			return true
		}
	}
	return false
}

// Label returns the human-readable mood name.
func (id ID) Label() string {
	switch id {
	case FeralProductivity:
		return "feral productivity"
	case Exhausted:
		return "exhausted"
	case Methodical:
		return "methodical"
	case ChaoticNeutral:
		return "chaotic neutral"
	case BureaucraticZen:
		return "bureaucratic zen"
	case AmbientDrift:
		return "ambient drift"
	case RecursiveDoubt:
		return "recursive doubt"
	case EmergencyMode:
		return "emergency mode"
	}
	return "unknown"
}

// Description returns a one-line characterization.
func (id ID) Description() string {
	switch id {
	case FeralProductivity:
		return "Operator moving faster than reflection allows"
	case Exhausted:
		return "System functional, operator questionable"
	case Methodical:
		return "Everything catalogued and verified"
	case ChaoticNeutral:
		return "Entropy rising but controlled"
	case BureaucraticZen:
		return "Perfect adherence to ritual without attachment to outcome"
	case AmbientDrift:
		return "Present but unfocused"
	case RecursiveDoubt:
		return "Uncertainty loops detected"
	case EmergencyMode:
		return "Crisis management in progress"
	}
	return "Insufficient data for classification"
}

func (id ID) String() string { return id.Label() }

// Result is a classification outcome.
type Result struct {
	ID         ID
	Confidence float64
	Notes      []string
}

// IsConfident reports confidence of 0.7 or higher.
func (r Result) IsConfident() bool {
	return r.Confidence >= 0.7
}

// IsUnknown reports the fallback classification.
func (r Result) IsUnknown() bool {
	return r.ID == Unknown
}
