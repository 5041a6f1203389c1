package render

import (
	"fmt"
	"strings"

	"github.com/absurdtty/ttymood/internal/chaos"
	"github.com/absurdtty/ttymood/internal/format"
)

func renderForm(v view, ok bool, ch *chaos.Chaos, ctx Context) string {
	template := strings.ToLower(strings.TrimSpace(ctx.Template))
	switch template {
	case "", "default", "declaration", "incident", "requisition", "appeal":
	default:
		return fmt.Sprintf("Unknown form template: '%s'\n\nAvailable templates:\n  - declaration\n  - incident\n  - requisition\n  - appeal\n", ctx.Template)
	}
	// Without a signature on file every template collapses to the
	// blank declaration. No case, no incident, nothing to requisition.
	if !ok {
		return formBlankDeclaration()
	}
	switch template {
	case "incident":
		return formIncident(v, ch)
	case "requisition":
		return formRequisition(ch)
	case "appeal":
		return formAppeal(ch)
	default:
		return formDeclaration(v, ch)
	}
}

func formBlankDeclaration() string {
	return format.DoubleBox("FORM 27-B: TERMINAL ACTIVITY DECLARATION",
			"Filed by: [REDACTED per privacy protocol]",
			"Case ID: [NONE ON RECORD]",
			"Current mood: undetermined",
			"",
			"Purpose of filing: Bureaucratic ritual observance",
			"Activity summary: Within tolerable parameters.",
			"Justification: Not required. Form is compulsory.",
			"",
			"Reviewer: None assigned. None required.",
			"Status: Filed. Nothing will happen.",
		) + "\n" + format.StampNullBureau.Inline() + "\n"
}

func formDeclaration(v view, ch *chaos.Chaos) string {
	purpose := chaos.MustPick(ch, []string{
		"Mandatory self-reporting",
		"Compliance with nonexistent policy",
		"Because the form exists",
		"Bureaucratic ritual observance",
	})
	summary := chaos.MustPick(ch, []string{
		"Extensive. Perhaps excessive.",
		"Within tolerable parameters.",
		"Notable but unremarkable.",
		"Recorded for posterity.",
	})
	justification := chaos.MustPick(ch, []string{
		"Unclear. Form is self-justifying.",
		"Not required. Form is compulsory.",
		"The justification is the filing itself.",
		"See attached (nothing attached).",
	})

	return format.DoubleBox("FORM 27-B: TERMINAL ACTIVITY DECLARATION",
		"Filed by: [REDACTED per privacy protocol]",
		fmt.Sprintf("Case ID: %s", v.caseID),
		fmt.Sprintf("Current mood: %s", v.label),
		"",
		fmt.Sprintf("Purpose of filing: %s", purpose),
		fmt.Sprintf("Activity summary: %s", summary),
		fmt.Sprintf("Justification: %s", justification),
		"",
		"Reviewer: None assigned. None required.",
		"Status: Filed. Nothing will happen.",
	) + "\n" + format.StampNullBureau.Inline() + "\n"
}

func formIncident(v view, ch *chaos.Chaos) string {
	severity := chaos.MustPick(ch, []string{
		"UNDEFINED",
		"THEORETICALLY CONCERNING",
		"NOTABLE BUT CONTAINED",
		"BUREAUCRATICALLY SIGNIFICANT",
	})
	description := chaos.MustPick(ch, []string{
		"Something useful was accidentally accomplished.",
		"Productivity was briefly detected before containment.",
		"An insight occurred. Impact assessment ongoing.",
		"A feature worked on the first try. Investigation pending.",
	})

	return format.DoubleBox("FORM I-001: INCIDENT REPORT",
		fmt.Sprintf("Case Reference: %s", v.caseID),
		"Date of Incident: [AUTO-POPULATED]",
		fmt.Sprintf("Severity: %s", severity),
		"",
		"INCIDENT DESCRIPTION:",
		strings.Repeat("─", 40),
		description,
		"",
		"[X] Incident documented",
		"[ ] Root cause analysis (pending)",
		"[ ] Preventive measures (unclear)",
		"",
		"FOLLOW-UP REQUIRED: No. This form is the follow-up.",
	) + "\n" + format.StampFiled.Inline() + "\n"
}

func formRequisition(ch *chaos.Chaos) string {
	pool := []string{
		"More time",
		"Fewer meetings",
		"Working code",
		"Documentation that makes sense",
		"A debugger that reads minds",
		"Coffee (infinite)",
		"Understanding",
	}
	n := rangeInt(ch, 3, 5)
	items := append([]string(nil), pool...)
	chaos.Shuffle(ch, items)
	items = items[:n]

	lines := []string{
		"Requestor: [CURRENT USER]",
		"Department: Terminal Operations",
		"",
		"ITEMS REQUESTED:",
	}
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, item))
	}
	status := chaos.MustPick(ch, []string{
		"PENDING (indefinitely)",
		"UNDER REVIEW (no reviewer assigned)",
		"FORWARDED (destination unknown)",
		"ACKNOWLEDGED (no action implied)",
	})
	lines = append(lines,
		"",
		"JUSTIFICATION: It would help.",
		fmt.Sprintf("APPROVAL STATUS: %s", status),
		"",
		"NOTE: This requisition will not be fulfilled.",
		"      Filing it was the point.",
	)

	return format.DoubleBox("FORM R-404: RESOURCE REQUISITION", lines...) +
		"\n" + format.StampPending.Inline() + "\n"
}

func formAppeal(ch *chaos.Chaos) string {
	grounds := chaos.MustPick(ch, []string{
		"The decision was never made, yet its effects are felt.",
		"No one decided, but here we are.",
		"The outcome was predetermined by bureaucratic inertia.",
		"I disagree with the absence of a decision.",
	})
	status := chaos.MustPick(ch, []string{
		"RECEIVED (not read)",
		"FILED (no appeals committee exists)",
		"ACKNOWLEDGED (acknowledgment non-binding)",
		"PENDING (permanently)",
	})

	return format.DoubleBox("FORM A-000: APPEAL AGAINST DECISION",
		"Appellant: [CURRENT USER]",
		"Decision Being Appealed: [NONE ON RECORD]",
		"",
		"GROUNDS FOR APPEAL:",
		strings.Repeat("─", 40),
		grounds,
		"",
		"DESIRED OUTCOME:",
		"[ ] Reversal of non-decision",
		"[ ] Acknowledgment of appeal",
		"[X] Filing of appeal (accomplished)",
		"",
		fmt.Sprintf("APPEAL STATUS: %s", status),
		"",
		"NEXT STEPS: None. The appeal is complete.",
		"            Its completion is the resolution.",
	) + "\n" + format.StampDenied.Inline() + "\n"
}
