// Package wishlist persists per-user saved products.
package wishlist

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neon-ai/neon/internal/db"
)

// Item is one saved product on a user's wishlist, joined with the catalog
// fields needed to render it.
type Item struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrDuplicate reports that the product is already on the user's wishlist.
var ErrDuplicate = fmt.Errorf("product already wishlisted")

// ErrUnknownProduct reports that the product does not exist in the catalog.
var ErrUnknownProduct = fmt.Errorf("unknown product")

// Store manages wishlist persistence.
type Store struct {
	db *db.DB
}

func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Add puts a product on the user's wishlist. Duplicates are rejected
// explicitly so the API can answer 409 instead of a bare constraint error.
func (s *Store) Add(ctx context.Context, userID, productID string) (*Item, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM products WHERE id = ?`, productID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, ErrUnknownProduct
	}
	if err != nil {
		return nil, fmt.Errorf("checking product: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT 1 FROM wishlist_items WHERE user_id = ? AND product_id = ?`,
		userID, productID,
	).Scan(&exists)
	if err == nil {
		return nil, ErrDuplicate
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("checking wishlist: %w", err)
	}

	item := Item{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO wishlist_items (id, user_id, product_id, created_at) VALUES (?, ?, ?, ?)`,
		item.ID, item.UserID, item.ProductID, item.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting wishlist item: %w", err)
	}
	return &item, nil
}

// List returns the user's wishlist, newest first.
func (s *Store) List(ctx context.Context, userID string) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT w.id, w.user_id, w.product_id, p.title, p.category, p.price, p.rating, w.created_at
		 FROM wishlist_items w JOIN products p ON p.id = w.product_id
		 WHERE w.user_id = ?
		 ORDER BY w.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying wishlist: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.UserID, &it.ProductID, &it.Title, &it.Category, &it.Price, &it.Rating, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning wishlist item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Remove deletes one wishlist entry by its ID, scoped to the owner.
func (s *Store) Remove(ctx context.Context, userID, itemID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM wishlist_items WHERE id = ? AND user_id = ?`,
		itemID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("deleting wishlist item: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
