package render

import (
	"fmt"
	"strings"

	"github.com/absurdtty/ttymood/internal/chaos"
	"github.com/absurdtty/ttymood/internal/format"
	"github.com/absurdtty/ttymood/internal/mood"
)

func renderStatus(v view, ok bool, ch *chaos.Chaos) string {
	if !ok {
		return "System operational.\n"
	}

	switch v.id {
	case mood.FeralProductivity:
		return statusFeral(v, ch)
	case mood.Exhausted:
		return statusExhausted(v, ch)
	case mood.Methodical:
		return statusMethodical(v)
	case mood.ChaoticNeutral:
		return statusChaotic(v, ch)
	case mood.BureaucraticZen:
		return statusBureaucratic(v)
	case mood.AmbientDrift:
		return statusDrift(v, ch)
	case mood.RecursiveDoubt:
		return statusDoubt(v, ch)
	case mood.EmergencyMode:
		return statusEmergency(v, ch)
	}
	return "System operational.\n"
}

func statusFeral(v view, ch *chaos.Chaos) string {
	velocity := chaos.MustPick(ch, []string{
		"exceeding parameters",
		"approaching critical",
		"beyond measurement",
		"suspiciously high",
	})
	observation := chaos.MustPick(ch, []string{
		"Curiosity spike confirmed.",
		"Sleep debt: accumulating.",
		"Ideas per minute: concerning.",
		"Keyboard temperature: elevated.",
	})

	var b strings.Builder
	b.WriteString(format.Box("STATUS REPORT",
		"CASE: "+v.caseID,
		fmt.Sprintf("MOOD: %s (velocity: %s)", v.label, velocity),
	))
	b.WriteString(format.NewTable().
		Rowf("CONFIDENCE", "%.0f%%", v.confidence*100).
		Row("TRAJECTORY", "upward (unsustainable)").
		Row("OBSERVATION", observation).
		String())
	b.WriteString("\n")

	writeNotes(&b, "NOTES:", v.notes)

	b.WriteString(format.StampCertified.Inline())
	b.WriteString("\n")
	return b.String()
}

func statusExhausted(v view, ch *chaos.Chaos) string {
	state := chaos.MustPick(ch, []string{
		"operational but barely",
		"functional (allegedly)",
		"running on residual momentum",
		"technically online",
	})
	recommendation := chaos.MustPick(ch, []string{
		"Consider: horizontal position.",
		"Perhaps the machine should run itself.",
		"Caffeine levels: insufficient.",
		"Energy budget: overdrawn.",
	})

	var b strings.Builder
	fmt.Fprintf(&b, "CASE: %s\n", v.caseID)
	fmt.Fprintf(&b, "MOOD: %s (confidence: regrettably high)\n", v.label)
	fmt.Fprintf(&b, "STATUS: %s\n\n", state)
	b.WriteString(recommendation)
	b.WriteString("\n\n")

	if v.tone.ShouldTruncate() {
		b.WriteString("[OUTPUT TRUNCATED: Energy budget exceeded]\n")
	}
	return b.String()
}

func statusMethodical(v view) string {
	var b strings.Builder
	b.WriteString(format.DoubleBox("SYSTEM STATUS REPORT",
		"Case Reference: "+v.caseID,
		"Classification: "+v.label,
		fmt.Sprintf("Confidence Level: %.1f%%", v.confidence*100),
	))
	b.WriteString("\nSYSTEM ASSESSMENT:\n")
	b.WriteString("  Status: NOMINAL\n")
	b.WriteString("  Deviation from baseline: WITHIN PARAMETERS\n")
	b.WriteString("  Verification: COMPLETE\n")
	b.WriteString("  Documentation: CURRENT\n\n")

	if len(v.notes) > 0 {
		b.WriteString("RECORDED OBSERVATIONS:\n")
		for i, note := range v.notes {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, note)
		}
		b.WriteString("\n")
	}

	b.WriteString("No action required. All systems catalogued.\n")
	return b.String()
}

func statusChaotic(v view, ch *chaos.Chaos) string {
	var b strings.Builder

	maybe := "allegedly"
	if ch.Chance(0.5) {
		maybe = "probably"
	}
	fmt.Fprintf(&b, "CASE: %s (%s)\n", v.caseID, maybe)
	fmt.Fprintf(&b, "MOOD: %s (or is it?)\n", v.label)
	fmt.Fprintf(&b, "CONFIDENCE: %.0f%%", v.confidence*100)
	if ch.Chance(0.3) {
		b.WriteString(" (give or take)")
	}
	b.WriteString("\n")

	b.WriteString("\nSTATUS: ")
	b.WriteString(chaos.MustPick(ch, []string{
		"Entropy: rising but controlled.",
		"Direction: multiple, simultaneously.",
		"Pattern: emerging (maybe).",
		"Coherence: optional.",
	}))
	b.WriteString("\n\n")

	if ch.Chance(0.4) {
		b.WriteString("NOTE: This status report may or may not reflect reality.\n")
	}
	return b.String()
}

func statusBureaucratic(v view) string {
	var b strings.Builder
	b.WriteString(format.DoubleBox("FORM S-001: STATUS DECLARATION",
		"Filed: "+v.filed,
		"Case Number: "+v.caseID,
	))
	b.WriteString("\nDECLARATION OF CURRENT STATE:\n\n")
	b.WriteString(format.NewTable().
		Row("Mood Classification", v.label).
		Rowf("Confidence Rating", "%.1f%%", v.confidence*100).
		Row("Form Compliance", "SATISFACTORY").
		Row("Ritual Adherence", "OBSERVED").
		String())
	b.WriteString("\n")
	b.WriteString("This declaration is filed for the record.\n")
	b.WriteString("No response is expected. No action is required.\n")
	b.WriteString("The form is its own purpose.\n\n")
	b.WriteString(format.StampNullBureau.Inline())
	b.WriteString("\n")
	return b.String()
}

func statusDrift(v view, ch *chaos.Chaos) string {
	var b strings.Builder
	fmt.Fprintf(&b, "case: %s\n", strings.ToLower(v.caseID))
	fmt.Fprintf(&b, "mood: %s\n", v.label)
	fmt.Fprintf(&b, "confidence: %.0f%%\n\n", v.confidence*100)

	observation := chaos.MustPick(ch, []string{
		"present, unfocused",
		"here, sort of",
		"online, drifting",
		"connected, disconnected",
	})
	fmt.Fprintf(&b, "status: %s\n\n", observation)

	if ch.Chance(0.5) {
		b.WriteString("...\n")
	}
	return b.String()
}

func statusDoubt(v view, ch *chaos.Chaos) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CASE: %s (?)\n", v.caseID)
	fmt.Fprintf(&b, "MOOD: %s (probably)\n", v.label)
	fmt.Fprintf(&b, "CONFIDENCE: %.0f%% (is that right?)\n\n", v.confidence*100)

	b.WriteString("STATUS CHECK:\n")
	b.WriteString("  - System: operational (verify?)\n")
	b.WriteString("  - Files: present (check again?)\n")
	b.WriteString("  - State: uncertain (always)\n\n")

	suggestion := chaos.MustPick(ch, []string{
		"Consider running status again. Just to be sure.",
		"Did you save? You should check.",
		"Maybe run git status. One more time.",
		"Are you sure that worked?",
	})
	fmt.Fprintf(&b, "SUGGESTION: %s\n", suggestion)
	return b.String()
}

func statusEmergency(v view, ch *chaos.Chaos) string {
	urgency := chaos.MustPick(ch, []string{"HIGH", "ELEVATED", "CRITICAL", "CONCERNING"})

	var b strings.Builder
	fmt.Fprintf(&b, "!! CASE: %s !!\n", v.caseID)
	fmt.Fprintf(&b, "MOOD: %s [URGENCY: %s]\n", v.label, urgency)
	fmt.Fprintf(&b, "CONFIDENCE: %.0f%%\n\n", v.confidence*100)

	b.WriteString("SITUATION ASSESSMENT:\n")
	b.WriteString("  - Error rate: elevated\n")
	b.WriteString("  - Command velocity: erratic\n")
	b.WriteString("  - Correction patterns: detected\n")
	b.WriteString("  - Calm: not detected\n\n")

	advice := chaos.MustPick(ch, []string{
		"Breathe. The terminal will wait.",
		"Step back. Assess. Then proceed.",
		"The bug is not going anywhere.",
		"Consider: is this truly urgent?",
	})
	fmt.Fprintf(&b, "ADVICE: %s\n", advice)
	return b.String()
}

func writeNotes(b *strings.Builder, header string, notes []string) {
	if len(notes) == 0 {
		return
	}
	b.WriteString(header)
	b.WriteString("\n")
	for _, note := range notes {
		b.WriteString("  - " + note + "\n")
	}
	b.WriteString("\n")
}
