package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/absurdtty/ttymood/internal/chaos"
	"github.com/absurdtty/ttymood/internal/format"
	"github.com/absurdtty/ttymood/internal/mood"
)

func renderLs(v view, ok bool, ch *chaos.Chaos, ctx Context) string {
	if !ok {
		return boringLs(ctx.Entries)
	}

	switch v.id {
	case mood.FeralProductivity:
		return lsFeral(ctx.Entries, ch)
	case mood.Exhausted:
		return lsExhausted(ctx.Entries, ch)
	case mood.Methodical:
		return lsMethodical(ctx.Entries, ctx.Path)
	case mood.ChaoticNeutral:
		return lsChaotic(ctx.Entries, ch)
	case mood.BureaucraticZen:
		return lsBureaucratic(ctx.Entries, ctx.Path)
	case mood.AmbientDrift:
		return lsDrift(ctx.Entries, ch)
	case mood.RecursiveDoubt:
		return lsDoubt(ctx.Entries, ch)
	case mood.EmergencyMode:
		return lsEmergency(ctx.Entries)
	}
	return boringLs(ctx.Entries)
}

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func boringLs(entries []Entry) string {
	return strings.Join(names(entries), "  ") + "\n"
}

func lsFeral(entries []Entry, ch *chaos.Chaos) string {
	ns := names(entries)
	if ch.Chance(0.3) {
		chaos.Shuffle(ch, ns)
	}

	shown := len(ns)
	if ch.Chance(0.4) && len(ns) > 3 {
		shown = len(ns) - 1
	}

	var b strings.Builder
	for _, n := range ns[:shown] {
		b.WriteString(n + "  ")
	}
	if shown < len(ns) {
		b.WriteString("[scanning...]  ")
	}
	b.WriteString("\nNOTE: Inventory ")
	b.WriteString(chaos.MustPick(ch, []string{
		"incomplete. Operator moving too fast for census.",
		"approximate. Precision sacrificed for velocity.",
		"good enough. Moving on.",
	}))
	b.WriteString("\n")
	return b.String()
}

func lsExhausted(entries []Entry, ch *chaos.Chaos) string {
	ns := names(entries)
	showCount := rangeInt(ch, 2, 4)

	var b strings.Builder
	for i, n := range ns {
		if i >= showCount {
			break
		}
		b.WriteString(format.Truncate(n, 15) + "  ")
	}
	if len(ns) > showCount {
		b.WriteString("...\n[OUTPUT TRUNCATED: Energy budget exceeded]\n")
	} else {
		b.WriteString("\n")
	}
	return b.String()
}

func lsMethodical(entries []Entry, path string) string {
	rule := strings.Repeat("─", 40)
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "DIRECTORY CONTENTS (%s):\n", path)
	b.WriteString(rule + "\n")
	for _, e := range sorted {
		kind, suffix := "FILE", ""
		if e.IsDir {
			kind, suffix = "DIR ", "/"
		}
		fmt.Fprintf(&b, "  [%s] %s%s\n", kind, e.Name, suffix)
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "TOTAL: %d items catalogued\n", len(sorted))
	return b.String()
}

func lsChaotic(entries []Entry, ch *chaos.Chaos) string {
	ns := names(entries)
	chaos.Shuffle(ch, ns)

	var b strings.Builder
	for _, n := range ns {
		b.WriteString(n)
		b.WriteString(chaos.MustPick(ch, []string{"  ", " ", "   ", "    "}))
	}
	b.WriteString("\n")
	if ch.Chance(0.3) {
		b.WriteString("(order: arbitrary)\n")
	}
	return b.String()
}

func lsBureaucratic(entries []Entry, path string) string {
	ns := names(entries)
	sort.Strings(ns)

	var b strings.Builder
	b.WriteString(format.DoubleBox("FORM LS-001: DIRECTORY CONTENTS DECLARATION",
		"Location: "+path))
	fmt.Fprintf(&b, "Items found: %d (%s)\n\n", len(ns), spellNumber(len(ns)))
	for i, n := range ns {
		fmt.Fprintf(&b, "  %d. %s (STATUS: present)\n", i+1, n)
	}
	b.WriteString("\nDeclaration complete. No action required.\n")
	return b.String()
}

func lsDrift(entries []Entry, ch *chaos.Chaos) string {
	var b strings.Builder
	for _, n := range names(entries) {
		b.WriteString(n + "\n")
		if ch.Chance(0.1) {
			b.WriteString("  ...\n")
		}
	}
	return b.String()
}

func lsDoubt(entries []Entry, ch *chaos.Chaos) string {
	ns := names(entries)
	var b strings.Builder
	for _, n := range ns {
		b.WriteString(n)
		if ch.Chance(0.2) {
			b.WriteString(" (?)")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%d items. Probably. You should check.\n", len(ns))
	return b.String()
}

func lsEmergency(entries []Entry) string {
	ns := names(entries)
	return strings.Join(ns, " ") + "\n" + fmt.Sprintf("[%d items]\n", len(ns))
}

func spellNumber(n int) string {
	words := []string{
		"zero", "one", "two", "three", "four", "five",
		"six", "seven", "eight", "nine", "ten",
	}
	if n >= 0 && n < len(words) {
		return words[n]
	}
	return "many"
}
