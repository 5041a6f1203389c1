package render

import (
	"fmt"
	"strings"

	"github.com/absurdtty/ttymood/internal/chaos"
	"github.com/absurdtty/ttymood/internal/mood"
)

func renderUptime(v view, ok bool, ch *chaos.Chaos, ctx Context) string {
	uptime := ctx.Uptime
	if uptime == "" {
		uptime = "unknown"
	}

	if !ok {
		return fmt.Sprintf("System uptime: %s\n", uptime)
	}

	switch v.id {
	case mood.FeralProductivity:
		return uptimeFeral(uptime, ch)
	case mood.Exhausted:
		return uptimeExhausted(uptime, ch)
	case mood.Methodical:
		return uptimeMethodical(uptime)
	case mood.ChaoticNeutral:
		return uptimeChaotic(uptime, ch)
	case mood.BureaucraticZen:
		return uptimeBureaucratic(uptime)
	case mood.AmbientDrift:
		return fmt.Sprintf("uptime: %s\ntime passes...\n", uptime)
	case mood.RecursiveDoubt:
		return uptimeDoubt(uptime, ch)
	case mood.EmergencyMode:
		return fmt.Sprintf("UPTIME: %s\n[NOTED - MOVING ON]\n", uptime)
	}
	return fmt.Sprintf("System uptime: %s\n", uptime)
}

// FormatUptime renders seconds of uptime the way the templates expect.
func FormatUptime(totalSecs int64) string {
	days := totalSecs / 86400
	hours := (totalSecs % 86400) / 3600
	mins := (totalSecs % 3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%d days, %d hours, %d minutes", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%d hours, %d minutes", hours, mins)
	default:
		return fmt.Sprintf("%d minutes", mins)
	}
}

func uptimeFeral(uptime string, ch *chaos.Chaos) string {
	observation := chaos.MustPick(ch, []string{
		"Machine and operator racing toward their respective limits.",
		"System stable. Operator stability: unverified.",
		"Both running hot. Only one will need to reboot.",
		"The machine rests when you tell it to. Consider the implications.",
	})
	return fmt.Sprintf("SYSTEM UPTIME: %s\nUSER UPTIME: [REDACTED - likely exceeds safe parameters]\n\nOBSERVATION: %s\n",
		uptime, observation)
}

func uptimeExhausted(uptime string, ch *chaos.Chaos) string {
	discrepancy := chaos.MustPick(ch, []string{
		"Machine outlasting operator.",
		"System: functional. User: questionable.",
		"Hardware: stable. Wetware: degrading.",
		"The computer doesn't need sleep. You do.",
	})
	return fmt.Sprintf("SYSTEM UPTIME: %s\nUSER UPTIME: [CONCERNING]\n\nDISCREPANCY: %s\nRECOMMENDATION: Role reversal advised.\n",
		uptime, discrepancy)
}

func uptimeMethodical(uptime string) string {
	rule := strings.Repeat("─", 30)
	var b strings.Builder
	b.WriteString("SYSTEM UPTIME REPORT\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Current uptime: %s\n", uptime)
	b.WriteString("Status: NOMINAL\n")
	b.WriteString("Last reboot: LOGGED\n")
	b.WriteString(rule + "\n")
	b.WriteString("Report filed.\n")
	return b.String()
}

func uptimeChaotic(uptime string, ch *chaos.Chaos) string {
	comment := chaos.MustPick(ch, []string{
		"Time is a construct. Uptime doubly so.",
		"The system claims this. We have no reason to trust it.",
		"Numbers. They could mean anything.",
		"Running since... whenever. Does it matter?",
	})
	return fmt.Sprintf("SYSTEM UPTIME: %s (allegedly)\n\n%s\n", uptime, comment)
}

func uptimeBureaucratic(uptime string) string {
	var b strings.Builder
	b.WriteString("FORM U-001: UPTIME DECLARATION\n")
	b.WriteString(strings.Repeat("═", 30) + "\n\n")
	fmt.Fprintf(&b, "System Uptime: %s\n", uptime)
	b.WriteString("Verification: AUTOMATIC\n")
	b.WriteString("Filing Status: RECORDED\n\n")
	b.WriteString("This uptime is hereby declared for the record.\n")
	b.WriteString("No action required.\n")
	return b.String()
}

func uptimeDoubt(uptime string, ch *chaos.Chaos) string {
	question := chaos.MustPick(ch, []string{
		"Has it really been that long?",
		"Should we verify this independently?",
		"The system could be lying.",
		"Maybe reboot just to be sure?",
	})
	return fmt.Sprintf("SYSTEM UPTIME: %s (?)\n(Is this accurate? Should we check again?)\n\n%s\n",
		uptime, question)
}
