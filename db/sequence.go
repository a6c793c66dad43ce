package db

import (
	"context"
	"database/sql"
	"errors"

	"shortlink/shortener"
)

// Next atomically increments the sequence counter and returns the value
// before the increment, so callers observe 0, 1, 2, ... with no
// duplicates even under concurrent requests or across restarts. The
// single-row UPDATE takes a row lock, which makes the read-and-increment
// linearizable without an explicit transaction.
func (db *Database) Next(ctx context.Context) (int64, error) {
	var value int64
	query := `UPDATE url_sequence SET curr_no = curr_no + 1 WHERE id = 1 RETURNING curr_no - 1`

	err := db.conn.QueryRowContext(ctx, query).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		// The seed row is provisioned at bootstrap; its absence is a
		// deployment problem, not something a retry can fix.
		return 0, shortener.NewError(shortener.KindConfiguration, "url sequence seed row is missing")
	}
	if err != nil {
		return 0, err
	}

	return value, nil
}
