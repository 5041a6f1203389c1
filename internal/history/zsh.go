package history

import (
	"strconv"
	"strings"
	"time"
)

// parseZsh parses zsh history content. Understands the extended format
//
//	: <epoch>:<duration>;<command>
//
// with backslash line continuations, and falls back to plain lines for
// histories written without EXTENDED_HISTORY. Lines matching neither
// grammar are skipped.
func parseZsh(content string) []Record {
	var entries []rawEntry

	var pending strings.Builder
	startLine := 1
	lineNo := 0

	flush := func() {
		logical := pending.String()
		pending.Reset()
		if e, ok := parseZshLine(logical, startLine); ok {
			entries = append(entries, e)
		}
	}

	for _, line := range strings.Split(content, "\n") {
		lineNo++
		if pending.Len() == 0 {
			startLine = lineNo
		}

		// Backslash continuation joins the next physical line.
		if stripped, ok := strings.CutSuffix(line, "\\"); ok {
			pending.WriteString(stripped)
			pending.WriteString("\n")
			continue
		}

		pending.WriteString(line)
		flush()
	}
	if pending.Len() > 0 {
		flush()
	}

	return finalize(entries)
}

func parseZshLine(line string, lineNo int) (rawEntry, bool) {
	if !strings.HasPrefix(line, ": ") {
		// Plain format: the command itself, no timestamp.
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			return rawEntry{}, false
		}
		return rawEntry{full: trimmed, line: lineNo}, true
	}

	rest := line[2:]
	semi := strings.IndexByte(rest, ';')
	if semi < 0 {
		return rawEntry{}, false
	}
	meta := rest[:semi]
	full := rest[semi+1:]
	if strings.TrimSpace(full) == "" {
		return rawEntry{}, false
	}

	e := rawEntry{full: full, line: lineNo}

	metaParts := strings.SplitN(meta, ":", 2)
	if epoch, err := strconv.ParseInt(strings.TrimSpace(metaParts[0]), 10, 64); err == nil {
		ts := time.Unix(epoch, 0)
		e.timestamp = &ts
	}
	if len(metaParts) == 2 {
		if dur, err := strconv.ParseInt(strings.TrimSpace(metaParts[1]), 10, 64); err == nil {
			e.duration = &dur
		}
	}

	return e, true
}
