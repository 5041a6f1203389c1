// Package signature defines the versioned mood signature document and
// its atomic persistence.
package signature

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/absurdtty/ttymood/internal/format"
	"github.com/absurdtty/ttymood/internal/mood"
	"github.com/absurdtty/ttymood/internal/signal"
)

// Schema is the current document schema identifier. Readers accept any
// document whose major version matches; see Load.
const Schema = "absurdtty.mood.v1"

// SignificanceThreshold filters which signals are persisted. Weak
// signals inform classification but do not clutter the document.
const SignificanceThreshold = 0.3

// Document is one complete mood signature.
type Document struct {
	Schema      string       `json:"schema"`
	CaseID      string       `json:"case_id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Range       string       `json:"range"`
	Source      Source       `json:"source"`
	Mood        Mood         `json:"mood"`
	Signals     []SignalInfo `json:"signals"`
	Notes       []string     `json:"notes,omitempty"`
}

// Source records where the history came from. Never the history itself.
type Source struct {
	Shell           string `json:"shell"`
	HistoryPath     string `json:"history_path"`
	ReadOnly        bool   `json:"read_only"`
	EntriesAnalyzed int    `json:"entries_analyzed"`
}

// Mood is the classification result as persisted.
type Mood struct {
	ID         mood.ID `json:"id"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// SignalInfo is one persisted signal. Scores are rounded to two
// decimals so regenerated documents diff cleanly.
type SignalInfo struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
	Note  string  `json:"note,omitempty"`
}

// New assembles a document from a classification. Only signals at or
// above the significance threshold are persisted, in extraction order.
func New(caseID string, generatedAt time.Time, rng string, src Source, result mood.Result, signals signal.Set) *Document {
	doc := &Document{
		Schema:      Schema,
		CaseID:      caseID,
		GeneratedAt: generatedAt.UTC(),
		Range:       rng,
		Source:      src,
		Mood: Mood{
			ID:         result.ID,
			Label:      result.ID.Label(),
			Confidence: round2(result.Confidence),
		},
	}

	for _, sig := range signals {
		if sig.Score < SignificanceThreshold {
			continue
		}
		doc.Signals = append(doc.Signals, SignalInfo{
			ID:    sig.ID,
			Score: round2(sig.Score),
			Note:  sig.Note,
		})
	}

	doc.Notes = append(doc.Notes, result.Notes...)
	doc.Notes = append(doc.Notes, "status: "+result.ID.Description())
	return doc
}

// JSON renders the document as indented JSON, the on-disk form.
func (d *Document) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Summary renders the document for human eyes.
func (d *Document) Summary() string {
	table := format.NewTable().
		Row("CASE ID", d.CaseID).
		Row("MOOD", d.Mood.Label).
		Rowf("CONFIDENCE", "%.2f %s", d.Mood.Confidence, format.Bar(d.Mood.Confidence, 10)).
		Row("RANGE", d.Range).
		Rowf("SOURCE", "%s (%s)", d.Source.HistoryPath, d.Source.Shell).
		Rowf("ENTRIES", "%d", d.Source.EntriesAnalyzed).
		Row("GENERATED", d.GeneratedAt.Format(time.RFC3339))

	lines := splitLines(table.String())
	if len(d.Signals) > 0 {
		lines = append(lines, "")
		for _, sig := range d.Signals {
			lines = append(lines, fmt.Sprintf("%-24s %s %.2f", sig.ID, format.Bar(sig.Score, 10), sig.Score))
		}
	}

	out := format.Box("MOOD SIGNATURE", lines...)
	return out + format.StampCertified.Render()
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
