package ops

import (
	"context"
	"testing"

	"github.com/absurdtty/ttymood/internal/signature"
)

func TestSignalsSortedAndFiltered(t *testing.T) {
	commands := make([]string, 0, 60)
	for i := 0; i < 30; i++ {
		commands = append(commands, "git status", "ls")
	}
	histPath := writeZshHistory(t, commands)
	cfg := testConfig(t)

	out, err := Signals(context.Background(), cfg, SignalsInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		Now:         testNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Entries != 60 {
		t.Errorf("Entries = %d", out.Entries)
	}
	if len(out.Signals) == 0 {
		t.Fatal("no signals above threshold")
	}
	for i := 1; i < len(out.Signals); i++ {
		if out.Signals[i].Score > out.Signals[i-1].Score {
			t.Errorf("signals not sorted: %q (%.2f) after %q (%.2f)",
				out.Signals[i].ID, out.Signals[i].Score,
				out.Signals[i-1].ID, out.Signals[i-1].Score)
		}
	}
	for _, sig := range out.Signals {
		if sig.Score < signature.SignificanceThreshold {
			t.Errorf("below-threshold signal %q without --all", sig.ID)
		}
	}
}

func TestSignalsAll(t *testing.T) {
	histPath := writeZshHistory(t, []string{"git status", "ls", "vim x", "make", "cargo test", "git diff"})
	cfg := testConfig(t)

	defaultOut, err := Signals(context.Background(), cfg, SignalsInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		Now:         testNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	allOut, err := Signals(context.Background(), cfg, SignalsInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		All:         true,
		Now:         testNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(allOut.Signals) < len(defaultOut.Signals) {
		t.Errorf("--all returned fewer signals (%d) than default (%d)",
			len(allOut.Signals), len(defaultOut.Signals))
	}
}

func TestSignalsEmptyHistory(t *testing.T) {
	histPath := writeZshHistory(t, nil)
	cfg := testConfig(t)

	out, err := Signals(context.Background(), cfg, SignalsInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		All:         true,
		Now:         testNow,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Entries != 0 || len(out.Signals) != 0 {
		t.Errorf("empty history produced entries=%d signals=%d", out.Entries, len(out.Signals))
	}
}
