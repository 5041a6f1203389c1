package history

import (
	"strconv"
	"strings"
	"time"
)

// parseBash parses plain bash history: one command per line. When
// HISTTIMEFORMAT is set bash interleaves `#<epoch>` marker lines before
// each command; those are attached as timestamps when present. Without
// markers every record has a nil timestamp and temporal signals degrade
// to zero.
func parseBash(content string) []Record {
	var entries []rawEntry

	var pendingTS *time.Time
	lineNo := 0

	for _, line := range strings.Split(content, "\n") {
		lineNo++
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			// Timestamp marker or an actual comment; either way the
			// line itself is not a command.
			if epoch, err := strconv.ParseInt(trimmed[1:], 10, 64); err == nil {
				ts := time.Unix(epoch, 0)
				pendingTS = &ts
			}
			continue
		}

		entries = append(entries, rawEntry{
			full:      trimmed,
			timestamp: pendingTS,
			line:      lineNo,
		})
		pendingTS = nil
	}

	return finalize(entries)
}
