package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/absurdtty/ttymood/internal/config"
	"github.com/absurdtty/ttymood/internal/errors"
	"github.com/absurdtty/ttymood/internal/mood"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// writeZshHistory writes commands in zsh extended format, one per
// minute counting back from testNow.
func writeZshHistory(t *testing.T, commands []string) string {
	t.Helper()
	var b strings.Builder
	for i, cmd := range commands {
		ts := testNow.Add(-time.Duration(len(commands)-i) * time.Minute)
		fmt.Fprintf(&b, ": %d:0;%s\n", ts.Unix(), cmd)
	}
	path := filepath.Join(t.TempDir(), "zsh_history")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.MoodFile = filepath.Join(t.TempDir(), "mood.json")
	return cfg
}

func seed(v uint64) *uint64 { return &v }

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"7d", 7 * 24 * time.Hour, true},
		{"2w", 14 * 24 * time.Hour, true},
		{"30", 30 * 24 * time.Hour, true},
		{" 1D ", 24 * time.Hour, true},
		{"", 0, false},
		{"0d", 0, false},
		{"-3", 0, false},
		{"soon", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseRange(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseRange(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseRange(%q) accepted", tt.in)
		}
		if !tt.ok && !errors.Is(err, errors.ErrInvalidRequest) {
			t.Errorf("ParseRange(%q) error code = %v", tt.in, err)
		}
	}
}

func TestGenerateWritesDocument(t *testing.T) {
	histPath := writeZshHistory(t, []string{"git status", "git diff", "vim main.go", "go build ./...", "git commit"})
	cfg := testConfig(t)

	out, err := Generate(context.Background(), cfg, GenerateInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		Seed:        seed(42),
		Now:         testNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Written {
		t.Error("Written = false")
	}
	if out.Doc.Source.EntriesAnalyzed != 5 {
		t.Errorf("EntriesAnalyzed = %d", out.Doc.Source.EntriesAnalyzed)
	}
	if !out.Doc.Source.ReadOnly {
		t.Error("ReadOnly = false")
	}
	if !strings.HasPrefix(out.Doc.CaseID, "AB-") {
		t.Errorf("CaseID = %q", out.Doc.CaseID)
	}
	if _, err := os.Stat(cfg.MoodFile); err != nil {
		t.Errorf("mood file not written: %v", err)
	}

	// Source history must be untouched.
	before, _ := os.ReadFile(histPath)
	if !strings.Contains(string(before), "git status") {
		t.Error("history file modified")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	histPath := writeZshHistory(t, []string{"git status", "ls", "git status", "ls", "cargo test"})

	var docs [2][]byte
	for i := range docs {
		cfg := testConfig(t)
		out, err := Generate(context.Background(), cfg, GenerateInput{
			HistoryPath: histPath,
			Shell:       "zsh",
			Seed:        seed(7),
			Now:         testNow,
		})
		if err != nil {
			t.Fatal(err)
		}
		docs[i], err = out.Doc.JSON()
		if err != nil {
			t.Fatal(err)
		}
	}
	if string(docs[0]) != string(docs[1]) {
		t.Errorf("same seed and clock produced different documents:\n%s\n---\n%s", docs[0], docs[1])
	}
}

func TestGenerateDryRun(t *testing.T) {
	histPath := writeZshHistory(t, []string{"ls", "pwd"})
	cfg := testConfig(t)

	out, err := Generate(context.Background(), cfg, GenerateInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		DryRun:      true,
		Now:         testNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Written {
		t.Error("dry run reported a write")
	}
	if out.Doc == nil {
		t.Fatal("dry run produced no document")
	}
	if _, err := os.Stat(cfg.MoodFile); !os.IsNotExist(err) {
		t.Error("dry run wrote the mood file")
	}
}

func TestGenerateEmptyHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zsh_history")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(t)

	out, err := Generate(context.Background(), cfg, GenerateInput{
		HistoryPath: path,
		Shell:       "zsh",
		Now:         testNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Doc.Mood.ID != mood.Unknown {
		t.Errorf("mood = %s, want unknown", out.Doc.Mood.ID)
	}
	if out.Doc.Source.EntriesAnalyzed != 0 {
		t.Errorf("EntriesAnalyzed = %d", out.Doc.Source.EntriesAnalyzed)
	}
}

func TestGenerateMalformedLines(t *testing.T) {
	content := ": 1750000000:0;git status\n" +
		"\x00\x01 not a history line\n" +
		": garbage epoch;ls\n" +
		": 1750000060:0;git diff\n"
	path := filepath.Join(t.TempDir(), "zsh_history")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(t)
	cfg.DefaultRange = "3650d"

	out, err := Generate(context.Background(), cfg, GenerateInput{
		HistoryPath: path,
		Shell:       "zsh",
		Now:         time.Unix(1750000120, 0).UTC(),
	})
	if err != nil {
		t.Fatalf("malformed lines should degrade, not fail: %v", err)
	}
	if out.Doc.Source.EntriesAnalyzed < 2 {
		t.Errorf("EntriesAnalyzed = %d, want the parseable lines kept", out.Doc.Source.EntriesAnalyzed)
	}
}

func TestGenerateMissingHistory(t *testing.T) {
	cfg := testConfig(t)
	_, err := Generate(context.Background(), cfg, GenerateInput{
		HistoryPath: filepath.Join(t.TempDir(), "nope"),
		Shell:       "zsh",
		Now:         testNow,
	})
	if !errors.Is(err, errors.ErrSourceUnreadable) {
		t.Errorf("err = %v, want source-unreadable", err)
	}
}

func TestGenerateBadRange(t *testing.T) {
	cfg := testConfig(t)
	_, err := Generate(context.Background(), cfg, GenerateInput{
		Range: "yesterday",
		Now:   testNow,
	})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want invalid-request", err)
	}
}

func TestGenerateRepeatedCommands(t *testing.T) {
	commands := make([]string, 50)
	for i := range commands {
		commands[i] = "git status"
	}
	histPath := writeZshHistory(t, commands)
	cfg := testConfig(t)

	out, err := Generate(context.Background(), cfg, GenerateInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		Seed:        seed(1),
		Now:         testNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	ids := make(map[string]bool)
	for _, sig := range out.Doc.Signals {
		ids[sig.ID] = true
	}
	if !ids["repeat_commands"] && !ids["status_check_loop"] {
		t.Errorf("50 identical status checks produced no loop signal: %+v", out.Doc.Signals)
	}
	// A wall of git status is the canonical doubt loop and outscores
	// every calmer rule at these weights.
	if got := out.Doc.Mood.ID; got != mood.RecursiveDoubt {
		t.Errorf("mood = %s, want %s", got, mood.RecursiveDoubt)
	}
}
