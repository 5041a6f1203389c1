package ops

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/absurdtty/ttymood/internal/errors"
)

func TestShowRoundTrip(t *testing.T) {
	histPath := writeZshHistory(t, []string{"git status", "vim notes.md", "git push"})
	cfg := testConfig(t)

	gen, err := Generate(context.Background(), cfg, GenerateInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		Seed:        seed(9),
		Now:         testNow,
	})
	if err != nil {
		t.Fatal(err)
	}

	out, err := Show(context.Background(), cfg, ShowInput{})
	if err != nil {
		t.Fatal(err)
	}
	if out.Doc.CaseID != gen.Doc.CaseID {
		t.Errorf("CaseID = %q, want %q", out.Doc.CaseID, gen.Doc.CaseID)
	}
	if out.Path != cfg.MoodFile {
		t.Errorf("Path = %q, want %q", out.Path, cfg.MoodFile)
	}
}

func TestShowNotFound(t *testing.T) {
	cfg := testConfig(t)
	_, err := Show(context.Background(), cfg, ShowInput{})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("err = %v, want not-found", err)
	}
}

func TestShowExplicitPath(t *testing.T) {
	histPath := writeZshHistory(t, []string{"ls"})
	cfg := testConfig(t)
	explicit := filepath.Join(t.TempDir(), "elsewhere.json")

	if _, err := Generate(context.Background(), cfg, GenerateInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		OutPath:     explicit,
		Now:         testNow,
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := Show(context.Background(), cfg, ShowInput{Path: explicit}); err != nil {
		t.Errorf("explicit path load failed: %v", err)
	}
	// Default location was never written.
	if _, err := os.Stat(cfg.MoodFile); !os.IsNotExist(err) {
		t.Error("default mood file written despite --out")
	}
}
