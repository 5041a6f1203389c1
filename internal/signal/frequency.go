package signal

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/absurdtty/ttymood/internal/history"
)

// extractFrequency measures command cadence: overall rate, burstiness,
// and rhythm regularity. All of it needs timestamps; untimed records
// contribute nothing here.
func extractFrequency(records []history.Record) Set {
	var out Set

	cph := commandsPerHour(records)
	if cph > 30 {
		score := (cph - 30) / 50
		out = append(out, New("cadence_high", score).
			WithNote(fmt.Sprintf("%.1f commands/hour", cph)))
	}
	if cph > 0 && cph < 5 {
		out = append(out, New("cadence_low", 1-cph/5).
			WithNote(fmt.Sprintf("%.1f commands/hour", cph)))
	}

	if burst := burstScore(records); burst > 0.3 {
		out = append(out, New("burst_pattern", burst))
	}
	if rhythm := rhythmScore(records); rhythm > 0.5 {
		out = append(out, New("steady_rhythm", rhythm))
	}

	return out
}

func timestamps(records []history.Record) []time.Time {
	var ts []time.Time
	for _, r := range records {
		if r.Timestamp != nil {
			ts = append(ts, *r.Timestamp)
		}
	}
	return ts
}

func sortedIntervals(records []history.Record) []float64 {
	ts := timestamps(records)
	sort.Slice(ts, func(i, j int) bool { return ts[i].Before(ts[j]) })

	var out []float64
	for i := 1; i < len(ts); i++ {
		out = append(out, ts[i].Sub(ts[i-1]).Seconds())
	}
	return out
}

func commandsPerHour(records []history.Record) float64 {
	ts := timestamps(records)
	if len(ts) < 2 {
		return 0
	}

	first, last := ts[0], ts[0]
	for _, t := range ts[1:] {
		if t.Before(first) {
			first = t
		}
		if t.After(last) {
			last = t
		}
	}

	hours := last.Sub(first).Seconds() / 3600
	if hours < 0.1 {
		return 0
	}
	return float64(len(ts)) / hours
}

// burstScore is the fraction of inter-command gaps under ten seconds.
func burstScore(records []history.Record) float64 {
	intervals := sortedIntervals(records)
	if len(intervals) < 2 {
		return 0
	}

	bursts := 0
	for _, gap := range intervals {
		if gap < 10 {
			bursts++
		}
	}
	return float64(bursts) / float64(len(intervals))
}

// rhythmScore inverts the coefficient of variation of inter-command
// gaps. Gaps over an hour are session boundaries and are ignored.
func rhythmScore(records []history.Record) float64 {
	raw := sortedIntervals(records)
	if len(raw) < 4 {
		return 0
	}

	var intervals []float64
	for _, gap := range raw {
		if gap > 0 && gap < 3600 {
			intervals = append(intervals, gap)
		}
	}
	if len(intervals) < 3 {
		return 0
	}

	mean := 0.0
	for _, v := range intervals {
		mean += v
	}
	mean /= float64(len(intervals))

	variance := 0.0
	for _, v := range intervals {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(intervals))

	cv := math.Sqrt(variance) / mean
	return math.Max(0, 1-math.Min(cv, 1))
}
