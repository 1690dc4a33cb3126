package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neon-ai/neon/internal/db"
	"github.com/neon-ai/neon/internal/engine"
)

// Store manages persistence of chat queries.
type Store struct {
	db *db.DB
}

// NewStore creates a new chat store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// SaveQuery records one answered chat turn.
func (s *Store) SaveQuery(ctx context.Context, q Query) (*Query, error) {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	if q.UserID == "" {
		q.UserID = "anonymous"
	}
	q.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO queries (id, user_id, message, reply, mode, audience, language, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.UserID, q.Message, q.Reply, string(q.Mode), string(q.Audience), string(q.Language), q.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting query: %w", err)
	}

	return &q, nil
}

// History returns the user's most recent queries, newest first, capped at
// the history limit.
func (s *Store) History(ctx context.Context, userID string, limit int) ([]Query, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, message, reply, mode, audience, language, created_at
		 FROM queries WHERE user_id = ?
		 ORDER BY created_at DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var queries []Query
	for rows.Next() {
		var q Query
		var mode, audience, language string
		if err := rows.Scan(&q.ID, &q.UserID, &q.Message, &q.Reply, &mode, &audience, &language, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning query: %w", err)
		}
		q.Mode = engine.IntentMode(mode)
		q.Audience = engine.Audience(audience)
		q.Language = engine.LanguageStyle(language)
		queries = append(queries, q)
	}
	return queries, rows.Err()
}

// ClearHistory deletes all of a user's queries and returns how many were
// removed.
func (s *Store) ClearHistory(ctx context.Context, userID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM queries WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}
