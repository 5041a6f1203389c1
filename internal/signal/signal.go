// Package signal detects behavioral patterns in command history.
//
// Each detector emits signals with a stable id and a score in [0, 1].
// Extraction is pure: the same records always produce the same set, in
// the same order.
package signal

import "github.com/absurdtty/ttymood/internal/history"

// Signal is one detected behavioral pattern.
type Signal struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
	Note  string  `json:"note,omitempty"`
}

// New builds a signal, clamping the score into [0, 1].
func New(id string, score float64) Signal {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return Signal{ID: id, Score: score}
}

// WithNote attaches a human-readable note.
func (s Signal) WithNote(note string) Signal {
	s.Note = note
	return s
}

// IsStrong reports a score of 0.7 or higher.
func (s Signal) IsStrong() bool {
	return s.Score >= 0.7
}

// Set is an ordered collection of detected signals.
type Set []Signal

// Get returns the signal with the given id, if present.
func (s Set) Get(id string) (Signal, bool) {
	for _, sig := range s {
		if sig.ID == id {
			return sig, true
		}
	}
	return Signal{}, false
}

// Score returns the score for an id, zero when absent.
func (s Set) Score(id string) float64 {
	sig, _ := s.Get(id)
	return sig.Score
}

// Strong returns all signals with score >= 0.7.
func (s Set) Strong() Set {
	var out Set
	for _, sig := range s {
		if sig.IsStrong() {
			out = append(out, sig)
		}
	}
	return out
}

// Extract runs every detector over the records in a fixed order.
// Empty input yields an empty set.
func Extract(records []history.Record) Set {
	if len(records) == 0 {
		return nil
	}

	var out Set
	out = append(out, extractFrequency(records)...)
	out = append(out, extractTemporal(records)...)
	out = append(out, extractErrors(records)...)
	out = append(out, extractDiversity(records)...)
	return out
}
