package db

// schemaSQL defines all tables. Statements are idempotent so Init can run
// against an existing database.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS blacklist (
    entry      TEXT PRIMARY KEY,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);

CREATE TABLE IF NOT EXISTS play_log (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    uri       TEXT NOT NULL,
    title     TEXT NOT NULL,
    artist    TEXT NOT NULL,
    query     TEXT NOT NULL DEFAULT '',
    queued_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);

CREATE INDEX IF NOT EXISTS idx_play_log_queued_at ON play_log(queued_at);
`
