package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// HistoryStore persists generation runs to a local SQLite database. It is
// the default Store when no DATABASE_URL is configured.
type HistoryStore struct {
	db *sql.DB
}

// DefaultHistoryDir is where the local history database lives when no
// explicit directory is configured.
func DefaultHistoryDir() string {
	return filepath.Join(os.Getenv("HOME"), ".go_repurpose")
}

// OpenHistoryStore opens (or creates) the SQLite history database in dir.
func OpenHistoryStore(dir string) (*HistoryStore, error) {
	if dir == "" {
		dir = DefaultHistoryDir()
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("history: mkdir %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("history: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if err := initHistorySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: init schema: %w", err)
	}
	return &HistoryStore{db: db}, nil
}

func initHistorySchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS generations (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id      TEXT NOT NULL,
		video_id     TEXT NOT NULL,
		source_url   TEXT,
		topic        TEXT NOT NULL,
		source       TEXT NOT NULL,
		content_json TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`)
	return err
}

func (s *HistoryStore) Close() error {
	return s.db.Close()
}

// SaveGeneration records one finished run.
func (s *HistoryStore) SaveGeneration(ctx context.Context, userID, videoID, sourceURL string, gc *GeneratedContent, source SourceKind) error {
	payload, err := json.Marshal(gc)
	if err != nil {
		return fmt.Errorf("history: marshal content: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO generations (user_id, video_id, source_url, topic, source, content_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, videoID, sourceURL, gc.Topic, string(source), string(payload), now,
	)
	if err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	return nil
}

// History lists a user's most recent runs, newest first.
func (s *HistoryStore) History(ctx context.Context, userID string, limit int) ([]GenerationRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, video_id, source_url, topic, source, created_at
		 FROM generations WHERE user_id = ? ORDER BY id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var records []GenerationRecord
	for rows.Next() {
		var r GenerationRecord
		var sourceURL sql.NullString
		var created string
		if err := rows.Scan(&r.ID, &r.UserID, &r.VideoID, &sourceURL, &r.Topic, &r.Source, &created); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		r.SourceURL = sourceURL.String
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		records = append(records, r)
	}
	return records, rows.Err()
}
