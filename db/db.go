package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"shortlink/config"
	"shortlink/shortener"
)

// Database holds the PostgreSQL connection and implements the store
// contracts consumed by the shortener core.
type Database struct {
	conn *sql.DB
}

var (
	_ shortener.LinkStore         = (*Database)(nil)
	_ shortener.VisitStore        = (*Database)(nil)
	_ shortener.SequenceAllocator = (*Database)(nil)
)

// InitDB establishes a connection to the PostgreSQL database and
// bootstraps the schema, including the sequence seed row.
func InitDB(cfg config.Database) (*Database, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := createSchema(conn); err != nil {
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	return &Database{conn: conn}, nil
}

// Close closes the database connection.
func (db *Database) Close() error {
	return db.conn.Close()
}

// createSchema creates the tables if they don't exist. Short-code
// uniqueness is enforced here; the application-level existence checks are
// an optimization on top of this constraint. The sequence seed row must
// exist before any code can be generated.
func createSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS links (
			id BIGSERIAL PRIMARY KEY,
			short_code VARCHAR(64) NOT NULL UNIQUE,
			original_url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			expired_at TIMESTAMPTZ,
			access_limit INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS visits (
			id BIGSERIAL PRIMARY KEY,
			link_id BIGINT NOT NULL REFERENCES links(id),
			ip_address VARCHAR(45),
			user_agent VARCHAR(100),
			accessed_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_visits_link_id ON visits(link_id)`,
		`CREATE TABLE IF NOT EXISTS url_sequence (
			id SMALLINT PRIMARY KEY,
			curr_no BIGINT NOT NULL
		)`,
		`INSERT INTO url_sequence (id, curr_no) VALUES (1, 0) ON CONFLICT (id) DO NOTHING`,
	}

	for _, statement := range statements {
		if _, err := db.Exec(statement); err != nil {
			return err
		}
	}

	return nil
}
