package mood

// Tone describes how output should sound for a mood. Five axes, all in
// [0, 1].
type Tone struct {
	Verbosity float64 // 0 terse, 1 verbose
	Formality float64 // 0 casual, 1 bureaucratic
	Chaos     float64 // 0 orderly, 1 unpredictable
	Energy    float64 // 0 lethargic, 1 manic
	Certainty float64 // 0 uncertain, 1 absolute
}

// NeutralTone is the middle-of-everything fallback.
var NeutralTone = Tone{Verbosity: 0.5, Formality: 0.5, Chaos: 0.2, Energy: 0.5, Certainty: 0.5}

var tones = map[ID]Tone{
	FeralProductivity: {Verbosity: 0.6, Formality: 0.3, Chaos: 0.5, Energy: 0.9, Certainty: 0.4},
	Exhausted:         {Verbosity: 0.2, Formality: 0.5, Chaos: 0.2, Energy: 0.1, Certainty: 0.3},
	Methodical:        {Verbosity: 0.8, Formality: 0.8, Chaos: 0.1, Energy: 0.5, Certainty: 0.9},
	ChaoticNeutral:    {Verbosity: 0.5, Formality: 0.3, Chaos: 0.9, Energy: 0.6, Certainty: 0.3},
	BureaucraticZen:   {Verbosity: 0.7, Formality: 1.0, Chaos: 0.1, Energy: 0.4, Certainty: 0.5},
	AmbientDrift:      {Verbosity: 0.4, Formality: 0.4, Chaos: 0.3, Energy: 0.3, Certainty: 0.2},
	RecursiveDoubt:    {Verbosity: 0.6, Formality: 0.5, Chaos: 0.4, Energy: 0.4, Certainty: 0.1},
	EmergencyMode:     {Verbosity: 0.3, Formality: 0.2, Chaos: 0.7, Energy: 0.8, Certainty: 0.2},
}

// ToneFor returns the tone associated with a mood. Unknown and any
// unrecognized id get the neutral tone.
func ToneFor(id ID) Tone {
	if t, ok := tones[id]; ok {
		return t
	}
	return NeutralTone
}

// ShouldTruncate reports whether low energy calls for shorter output.
func (t Tone) ShouldTruncate() bool { return t.Energy < 0.3 }

// ShouldElaborate reports whether high verbosity calls for extra detail.
func (t Tone) ShouldElaborate() bool { return t.Verbosity > 0.7 }

// ShouldBeFormal reports whether output should read like paperwork.
func (t Tone) ShouldBeFormal() bool { return t.Formality > 0.6 }

// ShouldInjectChaos reports whether chaos effects apply.
func (t Tone) ShouldInjectChaos() bool { return t.Chaos > 0.5 }
