// Package feed stores styling and affiliate-growth posts shown on the
// public feed.
package feed

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neon-ai/neon/internal/db"
)

// Post is one feed entry.
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ErrNotFound reports that the post does not exist.
var ErrNotFound = fmt.Errorf("post not found")

// ErrForbidden reports that the caller is not the post author.
var ErrForbidden = fmt.Errorf("not the post author")

// Store manages post persistence. Tags are stored as a JSON array string.
type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create saves a new post.
func (s *Store) Create(ctx context.Context, author, title, body string, tags []string, published bool) (*Post, error) {
	if author == "" {
		author = "anonymous"
	}
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encoding tags: %w", err)
	}

	now := time.Now().UTC()
	post := Post{
		ID:        uuid.New().String(),
		Author:    author,
		Title:     title,
		Body:      body,
		Tags:      tags,
		Published: published,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO posts (id, author, title, body, tags, published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID, post.Author, post.Title, post.Body, string(encoded), boolToInt(post.Published), post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting post: %w", err)
	}
	return &post, nil
}

// List returns posts newest first. With publishedOnly set, drafts are
// excluded.
func (s *Store) List(ctx context.Context, publishedOnly bool, limit int) ([]Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := `SELECT id, author, title, body, tags, published, created_at, updated_at FROM posts`
	if publishedOnly {
		query += ` WHERE published = 1`
	}
	query += ` ORDER BY created_at DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying posts: %w", err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

// Get returns one post, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, author, title, body, tags, published, created_at, updated_at FROM posts WHERE id = ?`, id,
	)
	post, err := scanPost(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return post, err
}

// Publish flips a post's published flag. Only the author may publish.
func (s *Store) Publish(ctx context.Context, callerID, id string, published bool) (*Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Author != callerID {
		return nil, ErrForbidden
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE posts SET published = ?, updated_at = ? WHERE id = ?`,
		boolToInt(published), time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes a post. Only the author may delete.
func (s *Store) Delete(ctx context.Context, callerID, id string) error {
	post, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if post.Author != callerID {
		return ErrForbidden
	}

	_, err = s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	return nil
}

func scanPost(scan func(dest ...any) error) (*Post, error) {
	var p Post
	var tags string
	var published int
	if err := scan(&p.ID, &p.Author, &p.Title, &p.Body, &tags, &published, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		p.Tags = []string{}
	}
	p.Published = published != 0
	return &p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
