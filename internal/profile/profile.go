// Package profile manages Linktree-style link lists, one list per username.
package profile

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neon-ai/neon/internal/db"
)

// Link is one entry on a user's public link page.
type Link struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrNotFound reports that the link does not exist.
var ErrNotFound = fmt.Errorf("link not found")

// ErrForbidden reports that the caller does not own the link list.
var ErrForbidden = fmt.Errorf("not the owner of this link list")

// Store manages profile link persistence.
type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// List returns a user's links ordered by position.
func (s *Store) List(ctx context.Context, userID string) ([]Link, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, title, url, position, created_at, updated_at
		 FROM profile_links WHERE user_id = ? ORDER BY position ASC, created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying profile links: %w", err)
	}
	defer rows.Close()

	var links []Link
	for rows.Next() {
		var l Link
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.URL, &l.Position, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning profile link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// Add appends a link to the user's list. A zero position places it after
// the current last link.
func (s *Store) Add(ctx context.Context, userID, title, url string, position int) (*Link, error) {
	if position <= 0 {
		var max sql.NullInt64
		err := s.db.QueryRowContext(ctx,
			`SELECT MAX(position) FROM profile_links WHERE user_id = ?`, userID,
		).Scan(&max)
		if err != nil {
			return nil, fmt.Errorf("finding last position: %w", err)
		}
		position = int(max.Int64) + 1
	}

	now := time.Now().UTC()
	link := Link{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		URL:       url,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profile_links (id, user_id, title, url, position, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		link.ID, link.UserID, link.Title, link.URL, link.Position, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting profile link: %w", err)
	}
	return &link, nil
}

// Update rewrites a link's title, URL, and position. The callerID must
// match the link owner.
func (s *Store) Update(ctx context.Context, callerID, linkID, title, url string, position int) (*Link, error) {
	owner, err := s.owner(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if owner != callerID {
		return nil, ErrForbidden
	}

	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx,
		`UPDATE profile_links SET title = ?, url = ?, position = ?, updated_at = ? WHERE id = ?`,
		title, url, position, now, linkID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating profile link: %w", err)
	}
	return s.get(ctx, linkID)
}

// Remove deletes a link. The callerID must match the link owner.
func (s *Store) Remove(ctx context.Context, callerID, linkID string) error {
	owner, err := s.owner(ctx, linkID)
	if err != nil {
		return err
	}
	if owner != callerID {
		return ErrForbidden
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM profile_links WHERE id = ?`, linkID)
	if err != nil {
		return fmt.Errorf("deleting profile link: %w", err)
	}
	return nil
}

func (s *Store) owner(ctx context.Context, linkID string) (string, error) {
	var owner string
	err := s.db.QueryRowContext(ctx, `SELECT user_id FROM profile_links WHERE id = ?`, linkID).Scan(&owner)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("checking link owner: %w", err)
	}
	return owner, nil
}

func (s *Store) get(ctx context.Context, linkID string) (*Link, error) {
	var l Link
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, url, position, created_at, updated_at FROM profile_links WHERE id = ?`,
		linkID,
	).Scan(&l.ID, &l.UserID, &l.Title, &l.URL, &l.Position, &l.CreatedAt, &l.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile link: %w", err)
	}
	return &l, nil
}
