package ops

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/absurdtty/ttymood/internal/errors"
)

func TestRenderNeutralWithoutSignature(t *testing.T) {
	cfg := testConfig(t)
	out, err := Render(context.Background(), cfg, RenderInput{Kind: "status"})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Neutral {
		t.Error("Neutral = false with no signature on disk")
	}
	if out.Text != "System operational.\n" {
		t.Errorf("Text = %q", out.Text)
	}
}

func TestRenderCorruptSignatureIsNeutral(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(cfg.MoodFile, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := Render(context.Background(), cfg, RenderInput{Kind: "status"})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Neutral {
		t.Error("corrupt signature should render neutrally")
	}
}

func TestRenderStatusFromSignature(t *testing.T) {
	histPath := writeZshHistory(t, []string{"git status", "git diff", "npm test"})
	cfg := testConfig(t)
	if _, err := Generate(context.Background(), cfg, GenerateInput{
		HistoryPath: histPath,
		Shell:       "zsh",
		Seed:        seed(3),
		Now:         testNow,
	}); err != nil {
		t.Fatal(err)
	}

	out, err := Render(context.Background(), cfg, RenderInput{Kind: "status", Seed: seed(5)})
	if err != nil {
		t.Fatal(err)
	}
	if out.Neutral {
		t.Error("Neutral = true with a signature on disk")
	}
	if out.Text == "" {
		t.Error("empty status output")
	}

	again, err := Render(context.Background(), cfg, RenderInput{Kind: "status", Seed: seed(5)})
	if err != nil {
		t.Fatal(err)
	}
	if out.Text != again.Text {
		t.Error("same seed produced different render output")
	}
}

func TestRenderLsReadsDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"alpha.go", "beta.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o700); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(t)
	out, err := Render(context.Background(), cfg, RenderInput{Kind: "ls", Dir: dir})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"alpha.go", "beta.md", "sub"} {
		if !strings.Contains(out.Text, want) {
			t.Errorf("ls output missing %q:\n%s", want, out.Text)
		}
	}
}

func TestRenderLsMissingDirectory(t *testing.T) {
	cfg := testConfig(t)
	_, err := Render(context.Background(), cfg, RenderInput{
		Kind: "ls",
		Dir:  filepath.Join(t.TempDir(), "absent"),
	})
	if !errors.Is(err, errors.ErrSourceUnreadable) {
		t.Errorf("err = %v, want source-unreadable", err)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	cfg := testConfig(t)
	_, err := Render(context.Background(), cfg, RenderInput{Kind: "weather"})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("err = %v, want invalid-request", err)
	}
}
