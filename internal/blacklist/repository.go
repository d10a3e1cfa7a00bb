package blacklist

import (
	"errors"
	"strings"
	"time"

	sqlite3 "github.com/mattn/go-sqlite3"

	"chatdj/internal/db"
)

// ErrEntryExists is returned when adding an entry that is already stored.
var ErrEntryExists = errors.New("blacklist entry already exists")

// ErrEntryNotFound is returned when removing an entry that is not stored.
var ErrEntryNotFound = errors.New("blacklist entry not found")

// Entry is one stored blacklist record.
type Entry struct {
	Entry     string    `json:"entry"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository persists blacklist entries. The resolution pipeline only reads;
// mutation is the command layer's business.
type Repository struct {
	db *db.DBPair
}

// NewRepository creates a blacklist repository.
func NewRepository(pair *db.DBPair) *Repository {
	return &Repository{db: pair}
}

// Entries returns all stored entries as plain lowercase strings, the shape
// the filter consumes.
func (r *Repository) Entries() ([]string, error) {
	rows, err := r.db.Reader().Query(`SELECT entry FROM blacklist ORDER BY entry`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []string
	for rows.Next() {
		var entry string
		if err := rows.Scan(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// List returns all stored entries with metadata.
func (r *Repository) List() ([]Entry, error) {
	rows, err := r.db.Reader().Query(`SELECT entry, created_at FROM blacklist ORDER BY entry`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var createdAt string
		if err := rows.Scan(&entry.Entry, &createdAt); err != nil {
			return nil, err
		}
		if parsed, err := time.Parse("2006-01-02T15:04:05.999Z", createdAt); err == nil {
			entry.CreatedAt = parsed
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Add stores a normalized (lower-cased, trimmed) entry.
func (r *Repository) Add(entry string) error {
	normalized := strings.ToLower(strings.TrimSpace(entry))
	if normalized == "" {
		return errors.New("entry must not be empty")
	}
	_, err := r.db.Writer().Exec(`INSERT INTO blacklist (entry) VALUES (?)`, normalized)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrEntryExists
		}
		return err
	}
	return nil
}

// Remove deletes a stored entry.
func (r *Repository) Remove(entry string) error {
	normalized := strings.ToLower(strings.TrimSpace(entry))
	result, err := r.db.Writer().Exec(`DELETE FROM blacklist WHERE entry = ?`, normalized)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}
