package signal

import (
	"fmt"

	"github.com/absurdtty/ttymood/internal/history"
)

// extractDiversity measures command variety: whether one tool dominates,
// how much directory hopping happens, and which tool families show up.
func extractDiversity(records []history.Record) Set {
	var out Set
	total := float64(len(records))

	unique := make(map[string]bool)
	for _, r := range records {
		unique[r.Command] = true
	}
	diversity := float64(len(unique)) / total

	if diversity > 0.5 {
		out = append(out, New("command_diversity_high", diversity).
			WithNote(fmt.Sprintf("%d unique commands", len(unique))))
	} else if diversity < 0.2 && len(records) > 20 {
		out = append(out, New("command_diversity_low", 1-diversity).
			WithNote("Limited command variety"))
	}

	if tool, score, ok := toolFixation(records); ok {
		out = append(out, New("tool_fixation", score).
			WithNote("Focused on: "+tool))
	}

	if ctx := contextSwitchScore(records); ctx > 0.3 {
		out = append(out, New("context_switching", ctx))
	}

	out = append(out, toolCategories(records)...)
	return out
}

// toolFixation reports the dominant command when it accounts for more
// than 40% of records. Ties break toward the command seen first, so the
// result is stable for identical histories.
func toolFixation(records []history.Record) (string, float64, bool) {
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		if counts[r.Command] == 0 {
			order = append(order, r.Command)
		}
		counts[r.Command]++
	}

	topCmd, topCount := "", 0
	for _, cmd := range order {
		if counts[cmd] > topCount {
			topCmd, topCount = cmd, counts[cmd]
		}
	}

	ratio := float64(topCount) / float64(len(records))
	if ratio > 0.4 {
		return topCmd, ratio, true
	}
	return "", 0, false
}

func contextSwitchScore(records []history.Record) float64 {
	if len(records) < 10 {
		return 0
	}
	cds := 0
	for _, r := range records {
		if r.Command == "cd" {
			cds++
		}
	}
	score := float64(cds) / float64(len(records)) * 5
	if score > 1 {
		return 1
	}
	return score
}

var toolFamilies = []struct {
	id        string
	threshold float64
	weight    float64
	members   map[string]bool
	note      string
}{
	{
		id: "git_heavy", threshold: 0.15, weight: 3,
		members: map[string]bool{"git": true, "gh": true, "hub": true, "tig": true, "lazygit": true},
		note:    "%d git operations",
	},
	{
		id: "editor_focused", threshold: 0.1, weight: 4,
		members: map[string]bool{"vim": true, "nvim": true, "nano": true, "micro": true, "code": true, "emacs": true, "hx": true},
	},
	{
		id: "build_cycle", threshold: 0.1, weight: 4,
		members: map[string]bool{"cargo": true, "make": true, "npm": true, "yarn": true, "pnpm": true, "go": true, "rustc": true, "gcc": true, "cmake": true},
	},
	{
		id: "system_admin", threshold: 0.1, weight: 4,
		members: map[string]bool{"systemctl": true, "journalctl": true, "dmesg": true, "htop": true, "top": true, "ps": true, "kill": true},
	},
	{
		id: "package_operations", threshold: 0.1, weight: 4,
		members: map[string]bool{"pacman": true, "apt": true, "yay": true, "brew": true, "dnf": true, "pip": true, "cargo": true},
	},
}

func toolCategories(records []history.Record) Set {
	var out Set
	total := float64(len(records))

	for _, fam := range toolFamilies {
		count := 0
		for _, r := range records {
			if fam.members[r.Command] {
				count++
			}
		}
		ratio := float64(count) / total
		if ratio <= fam.threshold {
			continue
		}
		sig := New(fam.id, ratio*fam.weight)
		if fam.note != "" {
			sig = sig.WithNote(fmt.Sprintf(fam.note, count))
		}
		out = append(out, sig)
	}
	return out
}
