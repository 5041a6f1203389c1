package ops

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/absurdtty/ttymood/internal/chaos"
	"github.com/absurdtty/ttymood/internal/config"
	"github.com/absurdtty/ttymood/internal/errors"
	"github.com/absurdtty/ttymood/internal/render"
	"github.com/absurdtty/ttymood/internal/signature"
)

// RenderInput contains parameters for the Render operation.
type RenderInput struct {
	Kind     string
	MoodPath string   // optional, default: configured mood file
	Seed     *uint64  // optional, pins the output for a given document
	Dir      string   // ls target, default "."
	Args     []string // explain query words
	Template string   // form template name
	Verbose  bool
}

// RenderOutput contains the result of the Render operation.
type RenderOutput struct {
	Text    string
	Neutral bool // no usable signature, fixed template used
}

// Render produces stylized output for one kind. A missing or
// incompatible signature is not an error here: rendering falls back to
// the neutral template so the noise commands always print something.
func Render(ctx context.Context, cfg *config.Config, input RenderInput) (*RenderOutput, error) {
	kind, err := render.ParseKind(input.Kind)
	if err != nil {
		return nil, err
	}

	path, err := resolveMoodPath(cfg, input.MoodPath)
	if err != nil {
		return nil, err
	}

	doc, err := signature.Load(path)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) || errors.Is(err, errors.ErrSchemaMismatch) {
			doc = nil
		} else {
			return nil, err
		}
	}

	rctx := render.Context{
		Args:          input.Args,
		Verbose:       input.Verbose,
		Template:      input.Template,
		ChangelogPath: cfg.ChangelogPath,
	}

	switch kind {
	case render.KindLs:
		dir := input.Dir
		if dir == "" {
			dir = "."
		}
		rctx.Path = dir
		entries, err := readDir(dir)
		if err != nil {
			return nil, err
		}
		rctx.Entries = entries
	case render.KindUptime:
		rctx.Uptime = systemUptime()
	}

	ch := chaos.FromOptionalSeed(input.Seed)
	text, err := render.Render(doc, kind, ch, rctx)
	if err != nil {
		return nil, err
	}
	return &RenderOutput{Text: text, Neutral: doc == nil}, nil
}

func readDir(dir string) ([]render.Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewSourceUnreadable(dir, err)
	}
	entries := make([]render.Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, render.Entry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return entries, nil
}

// systemUptime reads /proc/uptime, degrading to a shrug when the file
// is unavailable.
func systemUptime() string {
	data, err := os.ReadFile("/proc/uptime")
	if err != nil {
		return "unknown (the system is keeping that to itself)"
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return "unknown (the system is keeping that to itself)"
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return "unknown (the system is keeping that to itself)"
	}
	return render.FormatUptime(int64(secs))
}
