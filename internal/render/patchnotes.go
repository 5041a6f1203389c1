package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/absurdtty/ttymood/internal/chaos"
	"github.com/absurdtty/ttymood/internal/format"
)

// renderPatchnotes fabricates release notes for the terminal system.
// With a changelog path in context, real release headings are parsed
// out of the markdown and listed alongside the fabricated ones.
func renderPatchnotes(v view, ok bool, ch *chaos.Chaos, ctx Context) string {
	if !ok {
		return "TERMINAL SYSTEM PATCHNOTES\n\nNo mood signature on file. Release notes suppressed.\nKNOWN ISSUES:\n  - Documentation remains unread\n"
	}

	version := fmt.Sprintf("v2025.%d.%d", rangeInt(ch, 1, 12), rangeInt(ch, 1, 31))

	var b strings.Builder
	b.WriteString(format.Box("TERMINAL SYSTEM PATCHNOTES " + version))
	b.WriteString("\n")

	b.WriteString("MOOD ENGINE:\n")
	for _, change := range moodChanges(v, ch) {
		b.WriteString("  " + change + "\n")
	}
	b.WriteString("\n")

	b.WriteString("SIGNAL DETECTION:\n")
	for _, change := range pickSome(ch, 2, 4, []string{
		"+ Added: 'late_night_orbit' pattern recognition",
		"+ Added: 'recursive_doubt' detection",
		"* Improved: Typo rate now 23% more judgmental",
		"* Improved: Command cadence analysis accuracy",
		"* Changed: Error detection sensitivity increased",
		"- Deprecated: 'productivity' signal (never reliable)",
	}) {
		b.WriteString("  " + change + "\n")
	}
	b.WriteString("\n")

	b.WriteString("OUTPUT FORMATTING:\n")
	for _, change := range pickSome(ch, 2, 4, []string{
		"- Fixed: Excessive clarity in error messages",
		"+ Added: More ambiguity in success confirmations",
		"* Changed: Timestamps now occasionally philosophical",
		"+ Added: Box-drawing character support",
		"* Improved: Stamp authenticity",
		"- Removed: Helpful suggestions (by request)",
	}) {
		b.WriteString("  " + change + "\n")
	}
	b.WriteString("\n")

	if headings := changelogHeadings(ctx.ChangelogPath); len(headings) > 0 {
		b.WriteString("UPSTREAM CHANGELOG (observed, not verified):\n")
		for _, h := range headings {
			b.WriteString("  - " + h + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("KNOWN ISSUES:\n")
	for _, issue := range pickSome(ch, 3, 5, []string{
		"User expectations still calibrated incorrectly",
		"Hope persists despite contrary evidence",
		"Reality checks fail more often than they should",
		"Sleep debt accumulator has no upper bound",
		"Coffee dependency not properly tracked",
		"Time perception increasingly unreliable",
		"Documentation remains unread",
		"Backlog grows faster than capacity",
	}) {
		b.WriteString("  - " + issue + "\n")
	}
	b.WriteString("\n")

	b.WriteString("BREAKING CHANGES:\n")
	b.WriteString(chaos.MustPick(ch, []string{
		"  - None. This was always broken in this specific way.\n",
		"  - Everything. But it was already broken.\n",
		"  - The concept of 'breaking' implies something worked before.\n",
		"  - Compatibility with reality: reduced.\n",
	}))
	b.WriteString("\n")

	b.WriteString("DEPRECATION NOTICE:\n")
	b.WriteString(chaos.MustPick(ch, []string{
		"  - Meaning (scheduled removal: TBD)\n",
		"  - Hope (status: experimental)\n",
		"  - Sleep schedules (migration path: unclear)\n",
		"  - Productivity expectations (no replacement planned)\n",
	}))

	return b.String()
}

func moodChanges(v view, ch *chaos.Chaos) []string {
	changes := []string{
		fmt.Sprintf("+ Added: '%s' mood state detected", v.label),
	}
	changes = append(changes, pickSome(ch, 1, 3, []string{
		"+ Added: 'feral_productivity' mood state",
		"+ Added: 'bureaucratic_zen' detection",
		"+ Added: 'ambient_drift' recognition",
		"+ Added: mood persistence across sessions",
	})...)
	changes = append(changes, chaos.MustPick(ch, []string{
		"- Removed: 'calm_confidence' (user never achieved it)",
		"- Removed: 'well_rested' (insufficient data)",
		"- Removed: 'organized' (detection failed)",
		"- Removed: 'certainty' (deprecated)",
	}))
	changes = append(changes, chaos.MustPick(ch, []string{
		"* Fixed: Occasional honesty in status reports",
		"* Fixed: Mood detection being too accurate",
		"* Fixed: False positives for 'happiness'",
		"* Changed: Default mood now accurately pessimistic",
	}))
	return changes
}

// pickSome draws between lo and hi items from the pool, duplicates
// allowed, matching the original generator's habit of repeating itself.
func pickSome(ch *chaos.Chaos, lo, hi int, pool []string) []string {
	n := rangeInt(ch, lo, hi)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, chaos.MustPick(ch, pool))
	}
	return out
}

// changelogHeadings pulls top-two-level headings out of a markdown
// changelog. Missing or unparseable files yield nothing; patchnotes
// never fail over garnish.
func changelogHeadings(path string) []string {
	if path == "" {
		return nil
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	var headings []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, isHeading := n.(*ast.Heading); isHeading && h.Level <= 2 {
			if txt := headingText(h, source); txt != "" {
				headings = append(headings, txt)
			}
		}
		return ast.WalkContinue, nil
	})

	if len(headings) > 6 {
		headings = headings[:6]
	}
	return headings
}

func headingText(h *ast.Heading, source []byte) string {
	var b strings.Builder
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if t, isText := c.(*ast.Text); isText {
			b.Write(t.Segment.Value(source))
		}
	}
	return strings.TrimSpace(b.String())
}
