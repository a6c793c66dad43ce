package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"shortlink/models"
	"shortlink/shortener"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation.
const uniqueViolation = "23505"

// Create inserts a new link and fills in its server-assigned id. A
// duplicate short code is surfaced as a conflict, so a concurrent insert
// racing past the existence check is still rejected.
func (db *Database) Create(ctx context.Context, link *models.Link) error {
	query := `INSERT INTO links (short_code, original_url, created_at, updated_at, expired_at, access_limit)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	err := db.conn.QueryRowContext(ctx, query,
		link.ShortCode, link.OriginalURL, link.CreatedAt, link.UpdatedAt,
		link.ExpiredAt, link.AccessLimit,
	).Scan(&link.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return shortener.NewError(shortener.KindConflict, "short code already exists")
		}
		return err
	}

	return nil
}

// GetByCode retrieves a link by its short code, returning (nil, nil) when
// no such code exists.
func (db *Database) GetByCode(ctx context.Context, code string) (*models.Link, error) {
	query := `SELECT id, short_code, original_url, created_at, updated_at, expired_at, access_limit
			  FROM links WHERE short_code = $1`

	var link models.Link
	var expiredAt sql.NullTime
	var accessLimit sql.NullInt64

	err := db.conn.QueryRowContext(ctx, query, code).Scan(
		&link.ID, &link.ShortCode, &link.OriginalURL,
		&link.CreatedAt, &link.UpdatedAt, &expiredAt, &accessLimit,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if expiredAt.Valid {
		link.ExpiredAt = &expiredAt.Time
	}
	if accessLimit.Valid {
		limit := int(accessLimit.Int64)
		link.AccessLimit = &limit
	}

	return &link, nil
}

// Exists reports whether a short code is already taken.
func (db *Database) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM links WHERE short_code = $1)`
	err := db.conn.QueryRowContext(ctx, query, code).Scan(&exists)
	return exists, err
}

// Update replaces the mutable fields of a link. The short code and
// creation timestamp are never touched.
func (db *Database) Update(ctx context.Context, link *models.Link) error {
	query := `UPDATE links SET original_url = $1, updated_at = $2, expired_at = $3, access_limit = $4
			  WHERE id = $5`

	_, err := db.conn.ExecContext(ctx, query,
		link.OriginalURL, link.UpdatedAt, link.ExpiredAt, link.AccessLimit, link.ID)
	return err
}

// Delete removes a link and its visits. The two deletes run inside one
// transaction so no orphaned visit can survive its link.
func (db *Database) Delete(ctx context.Context, linkID int64) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM visits WHERE link_id = $1`, linkID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM links WHERE id = $1`, linkID); err != nil {
		return err
	}

	return tx.Commit()
}
