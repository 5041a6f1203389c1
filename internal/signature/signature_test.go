package signature

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/absurdtty/ttymood/internal/errors"
	"github.com/absurdtty/ttymood/internal/mood"
	"github.com/absurdtty/ttymood/internal/signal"
)

func sampleDocument() *Document {
	return New(
		"AB-01HV3EXAMPLE",
		time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		"7d",
		Source{Shell: "zsh", HistoryPath: "/home/u/.zsh_history", ReadOnly: true, EntriesAnalyzed: 412},
		mood.Result{ID: mood.Exhausted, Confidence: 0.734, Notes: []string{"3.1 commands/hour"}},
		signal.Set{
			signal.New("cadence_low", 0.813).WithNote("3.1 commands/hour"),
			signal.New("typo_rate_high", 0.62),
			signal.New("peak_hours", 0.16),
		},
	)
}

func TestNewFiltersWeakSignals(t *testing.T) {
	doc := sampleDocument()
	if len(doc.Signals) != 2 {
		t.Fatalf("got %d signals, want 2 (peak_hours is below threshold)", len(doc.Signals))
	}
	if doc.Signals[0].ID != "cadence_low" || doc.Signals[1].ID != "typo_rate_high" {
		t.Errorf("signal order not preserved: %+v", doc.Signals)
	}
}

func TestNewRoundsScores(t *testing.T) {
	doc := sampleDocument()
	if doc.Signals[0].Score != 0.81 {
		t.Errorf("score = %v, want 0.81", doc.Signals[0].Score)
	}
	if doc.Mood.Confidence != 0.73 {
		t.Errorf("confidence = %v, want 0.73", doc.Mood.Confidence)
	}
}

func TestNewCarriesStatusNote(t *testing.T) {
	doc := sampleDocument()
	found := false
	for _, n := range doc.Notes {
		if strings.HasPrefix(n, "status: ") {
			found = true
		}
	}
	if !found {
		t.Errorf("notes missing status line: %v", doc.Notes)
	}
}

func TestJSONShape(t *testing.T) {
	doc := sampleDocument()
	data, err := doc.JSON()
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("document is not valid JSON: %v", err)
	}
	if raw["schema"] != Schema {
		t.Errorf("schema = %v", raw["schema"])
	}
	for _, key := range []string{"case_id", "generated_at", "range", "source", "mood", "signals"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("document missing key %q", key)
		}
	}
	// History content never enters the document.
	if strings.Contains(string(data), "zsh_history\"") && strings.Contains(string(data), "argv") {
		t.Error("document appears to contain history content")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood.json")
	doc := sampleDocument()

	if err := Save(doc, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.CaseID != doc.CaseID || loaded.Mood.ID != doc.Mood.ID {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, doc)
	}
	if !loaded.GeneratedAt.Equal(doc.GeneratedAt) {
		t.Errorf("generated_at mismatch: %v vs %v", loaded.GeneratedAt, doc.GeneratedAt)
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "mood.json")
	if err := Save(sampleDocument(), path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mood.json")
	if err := Save(sampleDocument(), path); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "mood.json" {
		t.Errorf("unexpected directory contents: %v", entries)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mood.json")

	first := sampleDocument()
	if err := Save(first, path); err != nil {
		t.Fatal(err)
	}

	second := sampleDocument()
	second.CaseID = "AB-01HV3SECOND"
	if err := Save(second, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.CaseID != "AB-01HV3SECOND" {
		t.Errorf("case id = %q, want the overwritten value", loaded.CaseID)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

func TestLoadSchemaMismatch(t *testing.T) {
	dir := t.TempDir()

	badJSON := filepath.Join(dir, "garbage.json")
	if err := os.WriteFile(badJSON, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badJSON); !errors.Is(err, errors.ErrSchemaMismatch) {
		t.Errorf("garbage err = %v, want SCHEMA_MISMATCH", err)
	}

	wrongMajor := filepath.Join(dir, "v2.json")
	if err := os.WriteFile(wrongMajor, []byte(`{"schema":"absurdtty.mood.v2"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(wrongMajor); !errors.Is(err, errors.ErrSchemaMismatch) {
		t.Errorf("v2 err = %v, want SCHEMA_MISMATCH", err)
	}
}

func TestCompatibleSchema(t *testing.T) {
	tests := []struct {
		schema string
		want   bool
	}{
		{"absurdtty.mood.v1", true},
		{"absurdtty.mood.v1.3", true},
		{"absurdtty.mood.v2", false},
		{"absurdtty.mood.v", false},
		{"something.else.v1", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := compatibleSchema(tt.schema); got != tt.want {
			t.Errorf("compatibleSchema(%q) = %v, want %v", tt.schema, got, tt.want)
		}
	}
}

func TestSummaryMentionsMoodAndStamp(t *testing.T) {
	out := sampleDocument().Summary()
	for _, want := range []string{"MOOD SIGNATURE", "exhausted", "AB-01HV3EXAMPLE", "CERTIFIED: INCONCLUSIVE"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
