// Package history reads shell history and turns it into normalized
// command records.
//
// All reads are strictly read-only and single-pass. Only the leading
// command token survives parsing; arguments are discarded before any
// record leaves this package.
package history

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/absurdtty/ttymood/internal/errors"
)

// ShellKind identifies a supported history format.
type ShellKind string

const (
	ShellZsh     ShellKind = "zsh"
	ShellBash    ShellKind = "bash"
	ShellFish    ShellKind = "fish"
	ShellHistdb  ShellKind = "histdb"
	ShellUnknown ShellKind = "unknown"
)

// ParseShellKind validates a shell kind string.
func ParseShellKind(s string) (ShellKind, error) {
	switch ShellKind(strings.ToLower(strings.TrimSpace(s))) {
	case ShellZsh:
		return ShellZsh, nil
	case ShellBash:
		return ShellBash, nil
	case ShellFish:
		return ShellFish, nil
	case ShellHistdb:
		return ShellHistdb, nil
	case "", ShellUnknown:
		return ShellUnknown, nil
	}
	return ShellUnknown, errors.NewInvalidRequest(
		fmt.Sprintf("unknown shell kind %q (use zsh, bash, fish, or histdb)", s))
}

// Record is one observed shell invocation.
// Timestamp is nil when the source format carries none; temporal signals
// then degrade to zero rather than erroring.
type Record struct {
	Timestamp *time.Time
	Command   string // leading token only, case-preserved
	IsRepeat  bool   // identical full text to the immediately preceding record
	Duration  *int64 // execution seconds, zsh extended format only
	Line      int    // source line, debugging only
}

// Hour returns the clock hour (0-23) if a timestamp is present.
func (r *Record) Hour() (int, bool) {
	if r.Timestamp == nil {
		return 0, false
	}
	return r.Timestamp.Hour(), true
}

// IsLateNight reports execution between 22:00 and 04:00.
func (r *Record) IsLateNight() bool {
	h, ok := r.Hour()
	return ok && (h >= 22 || h < 4)
}

// IsEarlyMorning reports execution between 05:00 and 07:59.
func (r *Record) IsEarlyMorning() bool {
	h, ok := r.Hour()
	return ok && h >= 5 && h <= 7
}

// IsLunchTime reports execution between 12:00 and 13:59.
func (r *Record) IsLunchTime() bool {
	h, ok := r.Hour()
	return ok && h >= 12 && h <= 13
}

// IsWeekend reports execution on Saturday or Sunday.
func (r *Record) IsWeekend() bool {
	if r.Timestamp == nil {
		return false
	}
	wd := r.Timestamp.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// LooksLikeTypo reports whether the command name resembles a slip:
// very short and not on the known-short-command table.
func (r *Record) LooksLikeTypo() bool {
	cmd := r.Command
	return len(cmd) > 0 && len(cmd) <= 3 && !knownShortCommands[cmd]
}

var knownShortCommands = map[string]bool{
	"ls": true, "cd": true, "cp": true, "mv": true, "rm": true,
	"cat": true, "man": true, "top": true, "ps": true, "df": true,
	"du": true, "ln": true, "vi": true, "fg": true, "bg": true,
	"id": true, "wc": true, "nl": true, "od": true, "tr": true,
	"bc": true, "dc": true, "go": true, "gh": true, "oc": true,
	"jq": true, "ssh": true, "git": true, "pwd": true, "sed": true,
	"awk": true, "tar": true, "zip": true, "fzf": true, "npm": true,
}

// Load reads and parses a history source. File formats read the whole
// file once; histdb opens the sqlite database read-only. Any I/O failure
// surfaces as SOURCE_UNREADABLE.
func Load(path string, kind ShellKind) ([]Record, error) {
	if kind == ShellHistdb {
		return readHistdb(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewSourceUnreadable(path, err)
	}
	return Parse(data, kind), nil
}

// Parse turns raw history bytes into records. Lines that do not match
// the declared format's grammar are skipped; parsing never fails.
// Invalid UTF-8 is tolerated (history files collect garbage bytes).
func Parse(data []byte, kind ShellKind) []Record {
	content := strings.ToValidUTF8(string(data), "�")

	switch kind {
	case ShellZsh:
		return parseZsh(content)
	case ShellFish:
		return parseFish(content)
	default:
		// Plain bash format is the fallback for unknown shells: one
		// command per line, optional #<epoch> timestamp markers.
		return parseBash(content)
	}
}

// FilterWindow drops timestamped records older than now-window or in the
// future relative to now. Records without timestamps are kept; they can
// only be ordered by position.
func FilterWindow(records []Record, now time.Time, window time.Duration) []Record {
	if window <= 0 {
		return records
	}
	since := now.Add(-window)

	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Timestamp == nil {
			out = append(out, r)
			continue
		}
		if r.Timestamp.Before(since) || r.Timestamp.After(now) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// rawEntry is a parsed line before the privacy boundary: full text is
// still present so repeat detection can compare it. finalize discards it.
type rawEntry struct {
	full      string
	timestamp *time.Time
	duration  *int64
	line      int
}

// finalize converts raw entries into records, stamping IsRepeat from the
// full command text and keeping only the leading token.
func finalize(entries []rawEntry) []Record {
	records := make([]Record, 0, len(entries))
	prev := ""
	for i, e := range entries {
		cmd := commandToken(e.full)
		if cmd == "" {
			continue
		}
		records = append(records, Record{
			Timestamp: e.timestamp,
			Command:   cmd,
			IsRepeat:  i > 0 && e.full == prev,
			Duration:  e.duration,
			Line:      e.line,
		})
		prev = e.full
	}
	return records
}

// commandToken extracts the leading command token from a full command
// line, skipping VAR=value assignments and unwrapping prefix commands
// like sudo that take another command as their argument.
func commandToken(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return ""
	}

	fields := strings.Fields(line)
	i := 0
	for i < len(fields) {
		f := fields[i]
		// VAR=value assignments and wrapper commands both precede the
		// real command; env in particular takes its own assignments.
		if strings.Contains(f, "=") && !strings.HasPrefix(f, "-") {
			i++
			continue
		}
		if prefixCommands[f] && i+1 < len(fields) {
			i++
			continue
		}
		return f
	}
	return ""
}

var prefixCommands = map[string]bool{
	"sudo": true, "command": true, "builtin": true, "exec": true,
	"env": true, "nice": true, "nohup": true, "time": true,
}
