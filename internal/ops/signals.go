package ops

import (
	"context"
	"sort"
	"time"

	"github.com/absurdtty/ttymood/internal/config"
	"github.com/absurdtty/ttymood/internal/history"
	"github.com/absurdtty/ttymood/internal/signal"
	"github.com/absurdtty/ttymood/internal/signature"
)

// SignalsInput contains parameters for the Signals operation.
type SignalsInput struct {
	Range       string
	HistoryPath string
	Shell       string
	All         bool // include signals below the significance threshold
	Now         time.Time
}

// SignalsOutput contains the result of the Signals operation.
type SignalsOutput struct {
	Signals []signal.Signal `json:"signals"`
	Entries int             `json:"entries"`
}

// Signals re-runs extraction over the history window and returns the
// raw scores, strongest first, without touching the persisted
// signature. Ties keep extraction order so output stays stable.
func Signals(ctx context.Context, cfg *config.Config, input SignalsInput) (*SignalsOutput, error) {
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

	extracted := signal.Extract(records)
	out := &SignalsOutput{Entries: len(records)}
	for _, sig := range extracted {
		if !input.All && sig.Score < signature.SignificanceThreshold {
			continue
		}
		out.Signals = append(out.Signals, sig)
	}
	sort.SliceStable(out.Signals, func(i, j int) bool {
		return out.Signals[i].Score > out.Signals[j].Score
	})
	return out, nil
}
