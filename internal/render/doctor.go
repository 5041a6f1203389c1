package render

import (
	"fmt"
	"strings"

	"github.com/absurdtty/ttymood/internal/chaos"
	"github.com/absurdtty/ttymood/internal/format"
	"github.com/absurdtty/ttymood/internal/mood"
)

func renderDoctor(v view, ok bool, ch *chaos.Chaos, ctx Context) string {
	if !ok {
		return "DIAGNOSIS: No mood signature found.\nPRESCRIPTION: Run 'ttymood generate' first.\nPROGNOSIS: Boring until remedied.\n"
	}

	switch v.id {
	case mood.FeralProductivity:
		return doctorFeral(v, ch, ctx.Verbose)
	case mood.Exhausted:
		return doctorExhausted(v, ch, ctx.Verbose)
	case mood.Methodical:
		return doctorMethodical(v, ctx.Verbose)
	case mood.ChaoticNeutral:
		return doctorChaotic(v, ch, ctx.Verbose)
	case mood.BureaucraticZen:
		return doctorBureaucratic(v, ctx.Verbose)
	case mood.AmbientDrift:
		return doctorDrift(v, ch)
	case mood.RecursiveDoubt:
		return doctorDoubt(v, ch)
	case mood.EmergencyMode:
		return doctorEmergency(v, ch)
	}
	return "DIAGNOSIS: Inconclusive.\n"
}

func doctorFeral(v view, ch *chaos.Chaos, verbose bool) string {
	var b strings.Builder
	b.WriteString(format.Box("PATIENT FILE", "Case: "+v.caseID))

	b.WriteString("SYMPTOMS OBSERVED:\n")
	b.WriteString("  - Elevated command cadence\n")
	b.WriteString("  - Late-night orbital pattern detected\n")
	b.WriteString("  - Curiosity spike: confirmed\n")
	if verbose {
		b.WriteString("  - Sleep schedule: non-existent\n")
		b.WriteString("  - Focus: intense but narrow\n")
		b.WriteString("  - Hydration status: unknown\n")
	}

	b.WriteString("\nDIAGNOSIS: Acute productivity mania\n")
	prescription := chaos.MustPick(ch, []string{
		"None. This is not a medical facility.",
		"Consider: sleep exists.",
		"Perhaps consume food at some point.",
		"The rabbit hole has no bottom. Plan accordingly.",
	})
	fmt.Fprintf(&b, "PRESCRIPTION: %s\n", prescription)
	b.WriteString("PROGNOSIS: Continued operation until collapse or insight.\n")
	b.WriteString("           Whichever arrives first.\n")
	b.WriteString("\nNOTES: Patient unlikely to follow recommendations.\n")
	b.WriteString("       Recommendations therefore not binding.\n")
	return b.String()
}

func doctorExhausted(v view, ch *chaos.Chaos, verbose bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PATIENT FILE: %s\n\n", v.caseID)

	b.WriteString("SYMPTOMS OBSERVED:\n")
	b.WriteString("  - Command velocity: collapsed\n")
	b.WriteString("  - Error rate: elevated\n")
	b.WriteString("  - Response time: delayed\n")
	if verbose {
		b.WriteString("  - Typos: frequent\n")
		b.WriteString("  - Repeat commands: yes\n")
		b.WriteString("  - Caffeine dependency: probable\n")
	}

	b.WriteString("\nDIAGNOSIS: Terminal exhaustion\n")
	prescription := chaos.MustPick(ch, []string{
		"Horizontal position. Immediately.",
		"Close the laptop. It will still be there tomorrow.",
		"The bugs can wait. You cannot.",
		"Sleep: mandatory, not optional.",
	})
	fmt.Fprintf(&b, "PRESCRIPTION: %s\n", prescription)
	b.WriteString("PROGNOSIS: Recovery possible with intervention.\n")
	return b.String()
}

func doctorMethodical(v view, verbose bool) string {
	var b strings.Builder
	b.WriteString(format.DoubleBox("DIAGNOSTIC REPORT",
		"Patient Reference: "+v.caseID,
		"Classification: "+v.label,
	))
	b.WriteString("\nSYSTEMATIC ASSESSMENT:\n\n")
	b.WriteString(format.NewTable().
		Row("Command Rhythm", "STEADY").
		Row("Error Rate", "LOW").
		Row("Pattern Consistency", "HIGH").
		Row("Documentation Status", "CURRENT").
		String())

	if verbose {
		b.WriteString("\nDETAILED METRICS:\n")
		b.WriteString(format.NewTable().
			Row("Workflow Adherence", "98.2%").
			Row("Process Compliance", "SATISFACTORY").
			Row("Deviation Events", "0").
			String())
	}

	b.WriteString("\nDIAGNOSIS: Optimal operational state\n")
	b.WriteString("PRESCRIPTION: Continue current protocol\n")
	b.WriteString("PROGNOSIS: Stable\n")
	b.WriteString("\nNo intervention required.\n")
	return b.String()
}

func doctorChaotic(v view, ch *chaos.Chaos, verbose bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PATIENT FILE: %s (probably)\n\n", v.caseID)

	b.WriteString("SYMPTOMS OBSERVED:\n")
	symptoms := []string{
		"Unpredictable command patterns",
		"Entropy levels: rising",
		"Direction: multiple",
		"Focus: variable",
		"Method: unclear",
	}
	chaos.Shuffle(ch, symptoms)
	shown := 3
	if verbose {
		shown = 5
	}
	for _, s := range symptoms[:shown] {
		b.WriteString("  - " + s + "\n")
	}

	b.WriteString("\nDIAGNOSIS: ")
	b.WriteString(chaos.MustPick(ch, []string{
		"Chaotic but stable (paradoxically)",
		"Entropy within tolerable limits",
		"Creative disorder in progress",
		"Organized chaos (emphasis on chaos)",
	}))
	b.WriteString("\n")
	b.WriteString("PRESCRIPTION: None. You wouldn't follow it anyway.\n")
	b.WriteString("PROGNOSIS: Uncertain. By design.\n")
	return b.String()
}

func doctorBureaucratic(v view, verbose bool) string {
	var b strings.Builder
	b.WriteString(format.DoubleBox("FORM D-001: DIAGNOSTIC DECLARATION",
		"Case Number: "+v.caseID))
	b.WriteString("\nPATIENT ASSESSMENT:\n\n")
	b.WriteString("The patient demonstrates adherence to proper form and procedure.\n")
	b.WriteString("All rituals observed. All checkboxes checked.\n\n")

	if verbose {
		b.WriteString("DETAILED COMPLIANCE RECORD:\n")
		b.WriteString("  [X] Command history reviewed\n")
		b.WriteString("  [X] Patterns catalogued\n")
		b.WriteString("  [X] Forms filed\n")
		b.WriteString("  [X] Bureaucratic requirements met\n\n")
	}

	b.WriteString("DIAGNOSIS: Bureaucratic wellness achieved\n")
	b.WriteString("PRESCRIPTION: Continue filing forms\n")
	b.WriteString("PROGNOSIS: Compliant\n\n")
	b.WriteString(format.StampFiled.Inline())
	b.WriteString("\n")
	return b.String()
}

func doctorDrift(v view, ch *chaos.Chaos) string {
	var b strings.Builder
	fmt.Fprintf(&b, "case: %s\n\n", strings.ToLower(v.caseID))
	b.WriteString("symptoms:\n")
	b.WriteString("  - present, unfocused\n")
	b.WriteString("  - commands without direction\n")
	b.WriteString("  - movement without destination\n\n")

	diagnosis := chaos.MustPick(ch, []string{
		"ambient drift",
		"terminal wandering",
		"purposeful purposelessness",
	})
	fmt.Fprintf(&b, "diagnosis: %s\n", diagnosis)
	b.WriteString("prescription: none required\n")
	b.WriteString("prognosis: floating\n")
	return b.String()
}

func doctorDoubt(v view, ch *chaos.Chaos) string {
	var b strings.Builder
	fmt.Fprintf(&b, "PATIENT FILE: %s (?)\n\n", v.caseID)
	b.WriteString("SYMPTOMS OBSERVED (probably):\n")
	b.WriteString("  - Repeated status checks\n")
	b.WriteString("  - Validation loops\n")
	b.WriteString("  - Uncertainty spirals\n")
	b.WriteString("  - Second-guessing patterns\n\n")
	b.WriteString("DIAGNOSIS: Recursive doubt\n")
	b.WriteString("          (Are we sure about this diagnosis?)\n\n")

	prescription := chaos.MustPick(ch, []string{
		"Trust the process. Or don't. It's unclear.",
		"Maybe run the tests again? Just in case.",
		"git status. One more time.",
		"The answer is probably fine. Probably.",
	})
	fmt.Fprintf(&b, "PRESCRIPTION: %s\n", prescription)
	b.WriteString("PROGNOSIS: Uncertain (naturally)\n")
	return b.String()
}

func doctorEmergency(v view, ch *chaos.Chaos) string {
	var b strings.Builder
	b.WriteString("!! EMERGENCY DIAGNOSTIC !!\n\n")
	fmt.Fprintf(&b, "CASE: %s\n\n", v.caseID)
	b.WriteString("SYMPTOMS:\n")
	b.WriteString("  - Rapid command bursts\n")
	b.WriteString("  - Elevated error rate\n")
	b.WriteString("  - Correction patterns: frantic\n")
	b.WriteString("  - Stress indicators: high\n\n")
	b.WriteString("DIAGNOSIS: Crisis mode active\n\n")

	prescription := chaos.MustPick(ch, []string{
		"Breathe. Then type.",
		"The production server can wait 30 seconds.",
		"Panic is not a debugging strategy.",
		"Step away. Return with clarity.",
	})
	fmt.Fprintf(&b, "PRESCRIPTION: %s\n", prescription)
	b.WriteString("PROGNOSIS: This too shall pass.\n")
	return b.String()
}
