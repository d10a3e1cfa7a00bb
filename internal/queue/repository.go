package queue

import (
	"time"

	"chatdj/internal/db"
)

// PlayEntry is one row of the play log. Diagnostics only; the pipeline never
// reads it back.
type PlayEntry struct {
	ID       int64     `json:"id"`
	URI      string    `json:"uri"`
	Title    string    `json:"title"`
	Artist   string    `json:"artist"`
	Query    string    `json:"query,omitempty"`
	QueuedAt time.Time `json:"queued_at"`
}

// PlayLogRepository persists successfully committed tracks.
type PlayLogRepository struct {
	db *db.DBPair
}

// NewPlayLogRepository creates a play log repository.
func NewPlayLogRepository(pair *db.DBPair) *PlayLogRepository {
	return &PlayLogRepository{db: pair}
}

// Append records one committed track.
func (r *PlayLogRepository) Append(uri, title, artist, query string) error {
	_, err := r.db.Writer().Exec(
		`INSERT INTO play_log (uri, title, artist, query) VALUES (?, ?, ?, ?)`,
		uri, title, artist, query,
	)
	return err
}

// Recent returns the most recently queued entries, newest first.
func (r *PlayLogRepository) Recent(limit int) ([]PlayEntry, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := r.db.Reader().Query(
		`SELECT id, uri, title, artist, query, queued_at FROM play_log ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]PlayEntry, 0, limit)
	for rows.Next() {
		var entry PlayEntry
		var queuedAt string
		if err := rows.Scan(&entry.ID, &entry.URI, &entry.Title, &entry.Artist, &entry.Query, &queuedAt); err != nil {
			return nil, err
		}
		if parsed, err := time.Parse("2006-01-02T15:04:05.999Z", queuedAt); err == nil {
			entry.QueuedAt = parsed
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
