package signal

import (
	"fmt"
	"strings"

	"github.com/absurdtty/ttymood/internal/history"
)

// extractTemporal looks at when commands run: night work, early starts,
// lunch habits, weekend activity, and how concentrated the day is.
func extractTemporal(records []history.Record) Set {
	var timed []history.Record
	for _, r := range records {
		if r.Timestamp != nil {
			timed = append(timed, r)
		}
	}
	if len(timed) == 0 {
		return nil
	}

	var out Set
	total := float64(len(timed))

	lateNight := 0
	early := 0
	lunch := 0
	weekend := 0
	for _, r := range timed {
		if r.IsLateNight() {
			lateNight++
		}
		if r.IsEarlyMorning() {
			early++
		}
		if r.IsLunchTime() {
			lunch++
		}
		if r.IsWeekend() {
			weekend++
		}
	}

	if ratio := float64(lateNight) / total; ratio > 0.1 {
		out = append(out, New("late_night_orbit", ratio).
			WithNote(fmt.Sprintf("%d%% of commands after 22:00", int(ratio*100))))
	}
	if ratio := float64(early) / total; ratio > 0.1 {
		out = append(out, New("early_morning_surge", ratio).
			WithNote(fmt.Sprintf("%d%% of commands before 07:00", int(ratio*100))))
	}

	// Near-zero lunch-hour activity reads as actually taking breaks.
	if ratio := float64(lunch) / total; ratio < 0.02 && len(timed) > 20 {
		out = append(out, New("lunch_void", 0.8))
	}

	// Uniform weekday activity would put ~28% of commands on weekends.
	weekendRatio := float64(weekend) / total
	if weekendRatio > 0.4 {
		out = append(out, New("weekend_warrior", (weekendRatio-0.28)*2).
			WithNote("Above-average weekend activity"))
	} else if weekendRatio < 0.15 && len(timed) > 50 {
		out = append(out, New("weekday_bound", (0.28-weekendRatio)*2).
			WithNote("Below-average weekend activity"))
	}

	out = append(out, hourDistribution(timed)...)
	return out
}

func hourDistribution(timed []history.Record) Set {
	var counts [24]int
	for _, r := range timed {
		if h, ok := r.Hour(); ok {
			counts[h]++
		}
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return nil
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	var out Set
	if peak := float64(maxCount) / float64(total); peak > 0.15 {
		var peaks []string
		for h, c := range counts {
			if c == maxCount && c > 0 {
				peaks = append(peaks, fmt.Sprintf("%02d:00", h))
			}
		}
		out = append(out, New("peak_hours", peak).
			WithNote("Most active: "+strings.Join(peaks, ", ")))
	}

	activeHours := 0
	for _, c := range counts {
		if c > 0 {
			activeHours++
		}
	}
	concentration := 1 - float64(activeHours)/24

	if concentration > 0.6 {
		out = append(out, New("time_concentrated", concentration))
	} else if concentration < 0.3 {
		out = append(out, New("time_spread", 1-concentration))
	}

	return out
}
