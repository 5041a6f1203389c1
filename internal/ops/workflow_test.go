package ops

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/absurdtty/ttymood/internal/mood"
	"github.com/absurdtty/ttymood/internal/signature"
)

// TestFullWorkflow exercises the complete lifecycle:
// generate → show → signals → render → regenerate (overwrite) → show
func TestFullWorkflow(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	commands := make([]string, 0, 80)
	for i := 0; i < 40; i++ {
		commands = append(commands, "git status", "cargo build")
	}
	histPath := writeZshHistory(t, commands)

	// 1. Generate
	genOut, err := Generate(ctx, cfg, GenerateInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		Seed:        seed(42),
		Now:         testNow,
	})
	require.NoError(t, err)
	require.True(t, genOut.Written)
	require.Equal(t, signature.Schema, genOut.Doc.Schema)
	require.True(t, strings.HasPrefix(genOut.Doc.CaseID, "AB-"))
	require.NotEqual(t, mood.Unknown, genOut.Doc.Mood.ID)

	// 2. Show reads the same document back
	showOut, err := Show(ctx, cfg, ShowInput{})
	require.NoError(t, err)
	require.Equal(t, genOut.Doc.CaseID, showOut.Doc.CaseID)
	require.Equal(t, genOut.Doc.Mood.ID, showOut.Doc.Mood.ID)

	// 3. Signals agree with the persisted document
	sigOut, err := Signals(ctx, cfg, SignalsInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		Now:         testNow,
	})
	require.NoError(t, err)
	require.Equal(t, 80, sigOut.Entries)
	persisted := make(map[string]bool)
	for _, s := range showOut.Doc.Signals {
		persisted[s.ID] = true
	}
	for _, s := range sigOut.Signals {
		require.True(t, persisted[s.ID], "significant signal %q missing from document", s.ID)
	}

	// 4. Render uses the signature
	renderOut, err := Render(ctx, cfg, RenderInput{Kind: "status", Seed: seed(7)})
	require.NoError(t, err)
	require.False(t, renderOut.Neutral)
	require.NotEmpty(t, renderOut.Text)

	// 5. Regenerate with a different seed overwrites atomically
	genOut2, err := Generate(ctx, cfg, GenerateInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		Seed:        seed(99),
		Now:         testNow,
	})
	require.NoError(t, err)
	require.NotEqual(t, genOut.Doc.CaseID, genOut2.Doc.CaseID)
	require.Equal(t, genOut.Doc.Mood.ID, genOut2.Doc.Mood.ID, "seed must not change classification")

	showOut2, err := Show(ctx, cfg, ShowInput{})
	require.NoError(t, err)
	require.Equal(t, genOut2.Doc.CaseID, showOut2.Doc.CaseID)
}
