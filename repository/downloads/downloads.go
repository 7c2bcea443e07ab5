package downloads

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/imgfetch/model"
)

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS downloads (
	 id UUID PRIMARY KEY,
	 url TEXT NOT NULL,
	 outcome TEXT NOT NULL,
	 resolution TEXT NOT NULL DEFAULT '',
	 created_at TIMESTAMPTZ NOT NULL DEFAULT now())`

	insertDownloadQuery  = "INSERT INTO downloads (id, url, outcome, resolution, created_at) VALUES ($1, $2, $3, $4, $5)"
	recentDownloadsQuery = "SELECT id, url, outcome, resolution, created_at FROM downloads ORDER BY created_at DESC LIMIT $1"
)

// Repo contains db session.
type Repo struct {
	db *sql.DB
}

// NewRepo creates new Repo struct with db session.
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db}
}

// Migrate creates the downloads table if it doesn't exist.
func (r *Repo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("creating downloads table failed with error: %w", err)
	}
	return nil
}

// Save inserts one download attempt.
func (r *Repo) Save(ctx context.Context, d model.Download) error {
	if _, err := r.db.ExecContext(ctx, insertDownloadQuery, d.ID, d.URL, d.Outcome, d.Resolution, d.CreatedAt); err != nil {
		return fmt.Errorf("inserting of '%v' to db failed with error: %w", d, err)
	}
	return nil
}

// Recent returns up to limit newest download attempts.
func (r *Repo) Recent(ctx context.Context, limit int) ([]model.Download, error) {
	const errMsg = "error getting recent downloads from DB: %w"
	rows, err := r.db.QueryContext(ctx, recentDownloadsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf(errMsg, err)
	}
	defer rows.Close()

	res := []model.Download{}
	for rows.Next() {
		var d model.Download
		if err := rows.Scan(
			&d.ID,
			&d.URL,
			&d.Outcome,
			&d.Resolution,
			&d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf(errMsg, err)
		}
		res = append(res, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(errMsg, err)
	}
	return res, nil
}
