package history

import (
	"strconv"
	"strings"
	"time"
)

// parseFish parses fish's structured history format:
//
//	- cmd: git status
//	  when: 1702400000
//	  paths:
//	    - ~/projects
//
// Only cmd and when are consumed. Entries with an unparseable when keep
// a nil timestamp; anything not matching the grammar is skipped.
func parseFish(content string) []Record {
	var entries []rawEntry

	var current *rawEntry
	lineNo := 0

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		lineNo++

		if cmd, ok := strings.CutPrefix(line, "- cmd: "); ok {
			flush()
			cmd = strings.TrimSpace(unescapeFish(cmd))
			if cmd == "" {
				continue
			}
			current = &rawEntry{full: cmd, line: lineNo}
			continue
		}

		if current == nil {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if when, ok := strings.CutPrefix(trimmed, "when: "); ok {
			if epoch, err := strconv.ParseInt(strings.TrimSpace(when), 10, 64); err == nil {
				ts := time.Unix(epoch, 0)
				current.timestamp = &ts
			}
		}
		// paths and other sub-keys are argument-adjacent; ignored.
	}
	flush()

	return finalize(entries)
}

// unescapeFish undoes fish's history escaping for the two sequences that
// matter for token extraction.
func unescapeFish(s string) string {
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}
