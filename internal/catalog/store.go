package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/neon-ai/neon/internal/db"
)

// Store manages persistence of products and marketplace listings.
type Store struct {
	db *db.DB
}

// NewStore creates a new catalog store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// SaveProduct inserts a product, or updates it when the ID already exists.
func (s *Store) SaveProduct(ctx context.Context, p Product) (*Product, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Audience == "" {
		p.Audience = "general"
	}
	if p.Category == "" {
		p.Category = "Fashion Apparel"
	}
	now := time.Now().UTC()
	p.UpdatedAt = now

	var createdAt time.Time
	err := s.db.QueryRowContext(ctx, `SELECT created_at FROM products WHERE id = ?`, p.ID).Scan(&createdAt)
	switch {
	case err == sql.ErrNoRows:
		p.CreatedAt = now
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO products (id, title, description, category, audience, price, rating, image_url, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Title, p.Description, p.Category, p.Audience, p.Price, p.Rating, p.ImageURL, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting product: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("checking existing product: %w", err)
	default:
		p.CreatedAt = createdAt
		_, err = s.db.ExecContext(ctx,
			`UPDATE products SET title = ?, description = ?, category = ?, audience = ?, price = ?, rating = ?, image_url = ?, updated_at = ?
			 WHERE id = ?`,
			p.Title, p.Description, p.Category, p.Audience, p.Price, p.Rating, p.ImageURL, p.UpdatedAt, p.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("updating product: %w", err)
		}
	}

	for _, l := range p.Listings {
		if err := s.SaveListing(ctx, p.ID, l); err != nil {
			return nil, err
		}
	}

	return &p, nil
}

// SaveListing upserts one marketplace offer for a product.
func (s *Store) SaveListing(ctx context.Context, productID string, l Listing) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO product_platforms (product_id, platform, url, price, rating)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(product_id, platform) DO UPDATE SET url = excluded.url, price = excluded.price, rating = excluded.rating`,
		productID, l.Platform, l.URL, l.Price, l.Rating,
	)
	if err != nil {
		return fmt.Errorf("saving listing: %w", err)
	}
	return nil
}

// GetProduct retrieves a product with its listings, or nil when absent.
func (s *Store) GetProduct(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, description, category, audience, price, rating, image_url, created_at, updated_at
		 FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Audience, &p.Price, &p.Rating, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying product: %w", err)
	}

	listings, err := s.Listings(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Listings = listings
	return &p, nil
}

// Listings returns all marketplace offers for a product.
func (s *Store) Listings(ctx context.Context, productID string) ([]Listing, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT product_id, platform, url, price, rating
		 FROM product_platforms WHERE product_id = ? ORDER BY platform`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []Listing
	for rows.Next() {
		var l Listing
		if err := rows.Scan(&l.ProductID, &l.Platform, &l.URL, &l.Price, &l.Rating); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// ListProducts returns products, optionally filtered by category and
// audience, newest first.
func (s *Store) ListProducts(ctx context.Context, category, audience string, limit int) ([]Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `SELECT id, title, description, category, audience, price, rating, image_url, created_at, updated_at
	          FROM products WHERE 1=1`
	var args []any
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	if audience != "" {
		query += ` AND audience = ?`
		args = append(args, audience)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Audience, &p.Price, &p.Rating, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// SearchLike finds products whose title or description matches the query
// words. This is the fallback path when the semantic index is disabled.
func (s *Store) SearchLike(ctx context.Context, query string, limit int) ([]Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	pattern := "%" + query + "%"

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, category, audience, price, rating, image_url, created_at, updated_at
		 FROM products
		 WHERE title LIKE ? COLLATE NOCASE OR description LIKE ? COLLATE NOCASE OR category LIKE ? COLLATE NOCASE
		 ORDER BY rating DESC LIMIT ?`,
		pattern, pattern, pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Audience, &p.Price, &p.Rating, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// FindBestDeal compares a product's listings and returns the cheapest and
// best-rated offers. Rating ties break toward the lower price. Returns nil
// when the product has no listings.
func (s *Store) FindBestDeal(ctx context.Context, productID string) (*BestDeal, error) {
	listings, err := s.Listings(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, nil
	}

	cheapest := listings[0]
	bestRated := listings[0]
	for _, l := range listings[1:] {
		if l.Price < cheapest.Price {
			cheapest = l
		}
		if l.Rating > bestRated.Rating || (l.Rating == bestRated.Rating && l.Price < bestRated.Price) {
			bestRated = l
		}
	}

	return &BestDeal{
		ProductID: productID,
		Cheapest:  &cheapest,
		BestRated: &bestRated,
	}, nil
}

// DeleteProduct removes a product and, via cascade, its listings.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	return nil
}
