package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists generation runs to Postgres. Used instead of the local
// SQLite store when DATABASE_URL is configured.
type PGStore struct {
	pool *pgxpool.Pool
}

const pgSchema = `CREATE TABLE IF NOT EXISTS generations (
	id           BIGSERIAL PRIMARY KEY,
	user_id      TEXT NOT NULL,
	video_id     TEXT NOT NULL,
	source_url   TEXT,
	topic        TEXT NOT NULL,
	source       TEXT NOT NULL,
	content_json JSONB NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS generations_user_idx ON generations (user_id, id DESC)`

// ConnectPGStore creates a pgx pool and ensures the schema exists.
func ConnectPGStore(ctx context.Context, databaseURL string) (*PGStore, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	config.MaxConns = 10
	config.MinConns = 1

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	slog.Info("history postgres connected", slog.String("addr", config.ConnConfig.Host))
	return &PGStore{pool: pool}, nil
}

func (s *PGStore) Close() {
	s.pool.Close()
}

// SaveGeneration records one finished run.
func (s *PGStore) SaveGeneration(ctx context.Context, userID, videoID, sourceURL string, gc *GeneratedContent, source SourceKind) error {
	payload, err := json.Marshal(gc)
	if err != nil {
		return fmt.Errorf("history: marshal content: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO generations (user_id, video_id, source_url, topic, source, content_json)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, videoID, sourceURL, gc.Topic, string(source), payload,
	)
	if err != nil {
		return fmt.Errorf("history: insert: %w", err)
	}
	return nil
}

// History lists a user's most recent runs, newest first.
func (s *PGStore) History(ctx context.Context, userID string, limit int) ([]GenerationRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, video_id, COALESCE(source_url, ''), topic, source, created_at
		 FROM generations WHERE user_id = $1 ORDER BY id DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var records []GenerationRecord
	for rows.Next() {
		var r GenerationRecord
		var created time.Time
		if err := rows.Scan(&r.ID, &r.UserID, &r.VideoID, &r.SourceURL, &r.Topic, &r.Source, &created); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		r.CreatedAt = created
		records = append(records, r)
	}
	return records, rows.Err()
}
