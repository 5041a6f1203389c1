package ops

import (
	"context"
	"time"

	"github.com/absurdtty/ttymood/internal/chaos"
	"github.com/absurdtty/ttymood/internal/config"
	"github.com/absurdtty/ttymood/internal/history"
	"github.com/absurdtty/ttymood/internal/mood"
	"github.com/absurdtty/ttymood/internal/signal"
	"github.com/absurdtty/ttymood/internal/signature"
)

// GenerateInput contains parameters for the Generate operation.
type GenerateInput struct {
	Range       string  // analysis window, default from config
	HistoryPath string  // optional, default: autodetected
	Shell       string  // optional: zsh, bash, fish, histdb
	OutPath     string  // optional, default: configured mood file
	Seed        *uint64 // optional, pins the case ID entropy
	DryRun      bool    // analyze without writing
	Now         time.Time
}

// GenerateOutput contains the result of the Generate operation.
type GenerateOutput struct {
	Doc     *signature.Document
	Path    string
	Written bool
}

// Generate runs the full pipeline: read history, extract signals,
// classify, and persist the signature. History is never modified; an
// empty or out-of-window history still produces a document, classified
// unknown.
func Generate(ctx context.Context, cfg *config.Config, input GenerateInput) (*GenerateOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	rangeStr := input.Range
	if rangeStr == "" {
		rangeStr = cfg.DefaultRange
	}
	window, err := ParseRange(rangeStr)
	if err != nil {
		return nil, err
	}

	kind, histPath, err := resolveHistory(cfg, input.Shell, input.HistoryPath)
	if err != nil {
		return nil, err
	}

	records, err := history.Load(histPath, kind)
	if err != nil {
		return nil, err
	}
	records = history.FilterWindow(records, now, window)

	signals := signal.Extract(records)
	result := mood.Classify(signals)

	ch := chaos.FromOptionalSeed(input.Seed)
	doc := signature.New(ch.CaseID(now), now, rangeStr, signature.Source{
		Shell:           string(kind),
		HistoryPath:     histPath,
		ReadOnly:        true,
		EntriesAnalyzed: len(records),
	}, result, signals)

	outPath, err := resolveMoodPath(cfg, input.OutPath)
	if err != nil {
		return nil, err
	}

	out := &GenerateOutput{Doc: doc, Path: outPath}
	if input.DryRun {
		return out, nil
	}
	if err := signature.Save(doc, outPath); err != nil {
		return nil, err
	}
	out.Written = true
	return out, nil
}
