// Package format renders the bureaucratic aesthetic: boxes, stamps, and
// key-value tables. Structure over color; no ANSI styling is emitted so
// output stays byte-stable across terminals.
package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

var (
	singleBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
	doubleBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 1)
)

// Box renders lines inside a single-line border with an optional
// centered title row.
func Box(title string, lines ...string) string {
	return renderBox(singleBox, "─", title, lines)
}

// DoubleBox is Box with a double-line border, for output that needs to
// look more official than it is.
func DoubleBox(title string, lines ...string) string {
	return renderBox(doubleBox, "═", title, lines)
}

func renderBox(style lipgloss.Style, rule, title string, lines []string) string {
	width := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > width {
			width = n
		}
	}
	if n := utf8.RuneCountInString(title) + 4; n > width {
		width = n
	}
	if width < 20 {
		width = 20
	}

	var content []string
	if title != "" {
		content = append(content, Center(title, width), strings.Repeat(rule, width))
	}
	for _, l := range lines {
		content = append(content, l+strings.Repeat(" ", width-utf8.RuneCountInString(l)))
	}

	return style.Render(strings.Join(content, "\n")) + "\n"
}

// Stamp is an official-looking label with no legal force.
type Stamp string

const (
	StampNullBureau Stamp = "NULL BUREAU - FORM RECEIVED BUT NOT READ"
	StampCertified  Stamp = "ABSURDTTY - CERTIFIED: INCONCLUSIVE"
	StampFiled      Stamp = "FILED - NO ACTION REQUIRED"
	StampPending    Stamp = "PENDING - INDEFINITELY"
	StampApproved   Stamp = "APPROVED - MEANING UNCLEAR"
	StampDenied     Stamp = "DENIED - APPEAL UNAVAILABLE"
	StampRedacted   Stamp = "REDACTED - BY REQUEST"
	StampVoid       Stamp = "VOID - RETROACTIVELY"
)

// Render draws the stamp inside its bracketed frame.
func (s Stamp) Render() string {
	bar := "[" + strings.Repeat("=", utf8.RuneCountInString(string(s))+2) + "]"
	return fmt.Sprintf("%s\n[ %s ]\n%s\n", bar, s, bar)
}

// Inline renders the stamp as a single bracketed line.
func (s Stamp) Inline() string {
	return fmt.Sprintf("[STAMP: %s]", string(s))
}

// Table is a key-value table with an aligned key column.
type Table struct {
	rows [][2]string
	sep  string
}

func NewTable() *Table {
	return &Table{sep: ": "}
}

// Row appends a key-value pair.
func (t *Table) Row(key, value string) *Table {
	t.rows = append(t.rows, [2]string{key, value})
	return t
}

// Rowf appends a key with a formatted value.
func (t *Table) Rowf(key, format string, args ...any) *Table {
	return t.Row(key, fmt.Sprintf(format, args...))
}

// Separator overrides the default ": " between key and value.
func (t *Table) Separator(sep string) *Table {
	t.sep = sep
	return t
}

func (t *Table) String() string {
	keyWidth := 0
	for _, r := range t.rows {
		if n := utf8.RuneCountInString(r[0]); n > keyWidth {
			keyWidth = n
		}
	}

	var b strings.Builder
	for _, r := range t.rows {
		b.WriteString(r[0])
		b.WriteString(strings.Repeat(" ", keyWidth-utf8.RuneCountInString(r[0])))
		b.WriteString(t.sep)
		b.WriteString(r[1])
		b.WriteString("\n")
	}
	return b.String()
}

// Bar renders a score in [0, 1] as a fixed-width gauge.
func Bar(score float64, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	filled := int(score*float64(width) + 0.5)
	return strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
}

// Center pads s with spaces to sit in the middle of width columns.
func Center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// Truncate cuts s to width runes, ending in an ellipsis when cut.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
