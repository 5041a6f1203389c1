package history

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/absurdtty/ttymood/internal/errors"
)

// readHistdb reads shell history from a zsh-histdb sqlite database.
// The database is opened read-only; ttymood never writes to a history
// source. Rows are returned in start-time order.
func readHistdb(path string) ([]Record, error) {
	dsn := "file:" + path + "?mode=ro&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewSourceUnreadable(path, err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT commands.argv, history.start_time, history.duration
		FROM history
		JOIN commands ON history.command_id = commands.id
		ORDER BY history.start_time, history.id`)
	if err != nil {
		return nil, errors.NewSourceUnreadable(path, err)
	}
	defer rows.Close()

	var entries []rawEntry
	line := 0
	for rows.Next() {
		line++
		var argv string
		var start sql.NullInt64
		var duration sql.NullInt64
		if err := rows.Scan(&argv, &start, &duration); err != nil {
			// A malformed row is the sqlite analogue of a malformed
			// line: skipped, not fatal.
			continue
		}

		e := rawEntry{full: argv, line: line}
		if start.Valid {
			ts := time.Unix(start.Int64, 0)
			e.timestamp = &ts
		}
		if duration.Valid {
			d := duration.Int64
			e.duration = &d
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewSourceUnreadable(path, err)
	}

	return finalize(entries), nil
}
