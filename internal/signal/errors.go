package signal

import (
	"fmt"

	"github.com/absurdtty/ttymood/internal/history"
)

// extractErrors hunts for mistake patterns: typos, re-runs, near-miss
// corrections, and compulsive status checking.
func extractErrors(records []history.Record) Set {
	var out Set
	total := float64(len(records))

	typos := 0
	for _, r := range records {
		if r.LooksLikeTypo() {
			typos++
		}
	}
	typoRate := float64(typos) / total

	switch {
	case typoRate > 0.1:
		out = append(out, New("typo_rate_high", typoRate*5).
			WithNote(fmt.Sprintf("%d%% possible typos", int(typoRate*100))))
	case typoRate > 0.03:
		out = append(out, New("typo_rate_medium", typoRate*10))
	case len(records) > 50:
		out = append(out, New("typo_rate_low", 1-typoRate*10))
	}

	if repeat := repeatScore(records); repeat > 0.2 {
		out = append(out, New("repeat_commands", repeat).
			WithNote("Same commands executed multiple times"))
	}
	if correction := correctionScore(records); correction > 0.1 {
		out = append(out, New("correction_pattern", correction))
	}
	if status := statusCheckScore(records); status > 0.3 {
		out = append(out, New("status_check_loop", status).
			WithNote("Frequent status verification"))
	}

	return out
}

// repeatScore is the fraction of records whose full text matched the
// previous invocation exactly.
func repeatScore(records []history.Record) float64 {
	if len(records) < 2 {
		return 0
	}
	repeats := 0
	for _, r := range records[1:] {
		if r.IsRepeat {
			repeats++
		}
	}
	return float64(repeats) / float64(len(records)-1)
}

// correctionScore counts adjacent command pairs that look like a typo
// followed by its fix.
func correctionScore(records []history.Record) float64 {
	if len(records) < 2 {
		return 0
	}
	corrections := 0
	for i := 1; i < len(records); i++ {
		if looksLikeCorrection(records[i-1].Command, records[i].Command) {
			corrections++
		}
	}
	return float64(corrections) / float64(len(records)-1)
}

func looksLikeCorrection(a, b string) bool {
	lenDiff := len(a) - len(b)
	if lenDiff < -2 || lenDiff > 2 {
		return false
	}
	d := charDistance(a, b)
	return d > 0 && d <= 2
}

// charDistance is a positional mismatch count, not full edit distance.
// Good enough to catch transpositions and single-key slips.
func charDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		d := len(ra) - len(rb)
		if d < 0 {
			return -d
		}
		return d
	}
	diff := 0
	for i := range ra {
		if ra[i] != rb[i] {
			diff++
		}
	}
	return diff
}

var statusCommands = map[string]bool{
	"ls": true, "git": true, "pwd": true, "cat": true,
	"head": true, "tail": true, "stat": true, "file": true,
}

// statusCheckScore rises with the share of look-don't-touch commands,
// with a bonus when one of them is hammered repeatedly.
func statusCheckScore(records []history.Record) float64 {
	counts := make(map[string]int)
	total := 0
	for _, r := range records {
		if statusCommands[r.Command] {
			total++
			counts[r.Command]++
		}
	}

	ratio := float64(total) / float64(len(records))

	maxSingle := 0
	for _, c := range counts {
		if c > maxSingle {
			maxSingle = c
		}
	}
	if maxSingle > 5 {
		ratio += float64(maxSingle) / float64(len(records)) * 0.5
	}

	if ratio > 1 {
		return 1
	}
	return ratio
}
