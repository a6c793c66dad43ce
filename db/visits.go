package db

import (
	"context"
	"database/sql"

	"shortlink/models"
)

// Record appends a visit event for a link.
func (db *Database) Record(ctx context.Context, visit *models.Visit) error {
	query := `INSERT INTO visits (link_id, ip_address, user_agent, accessed_at)
			  VALUES ($1, $2, $3, $4) RETURNING id`

	return db.conn.QueryRowContext(ctx, query,
		visit.LinkID, visit.IPAddress, visit.UserAgent, visit.AccessedAt,
	).Scan(&visit.ID)
}

// CountByLink returns the number of recorded visits for a link.
func (db *Database) CountByLink(ctx context.Context, linkID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM visits WHERE link_id = $1`
	err := db.conn.QueryRowContext(ctx, query, linkID).Scan(&count)
	return count, err
}

// ListByLink returns all visits for a link in insertion order.
func (db *Database) ListByLink(ctx context.Context, linkID int64) ([]models.Visit, error) {
	query := `SELECT id, link_id, ip_address, user_agent, accessed_at
			  FROM visits WHERE link_id = $1 ORDER BY id`

	rows, err := db.conn.QueryContext(ctx, query, linkID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	visits := make([]models.Visit, 0)
	for rows.Next() {
		var visit models.Visit
		var ip, userAgent sql.NullString

		if err := rows.Scan(&visit.ID, &visit.LinkID, &ip, &userAgent, &visit.AccessedAt); err != nil {
			return nil, err
		}

		if ip.Valid {
			visit.IPAddress = &ip.String
		}
		if userAgent.Valid {
			visit.UserAgent = &userAgent.String
		}

		visits = append(visits, visit)
	}

	return visits, rows.Err()
}
