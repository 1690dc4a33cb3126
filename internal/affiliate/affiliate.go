// Package affiliate records outbound clicks and rewrites platform links
// with the configured affiliate tag.
package affiliate

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/neon-ai/neon/internal/db"
)

// Click is one recorded outbound click.
type Click struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id,omitempty"`
	Platform  string    `json:"platform"`
	TargetURL string    `json:"target_url"`
	CreatedAt time.Time `json:"created_at"`
}

// PlatformStat is the click count for one platform.
type PlatformStat struct {
	Platform string `json:"platform"`
	Clicks   int    `json:"clicks"`
}

// ErrNoTarget reports that no outbound link exists for the product.
var ErrNoTarget = fmt.Errorf("no outbound link for product")

// Store manages click persistence and link resolution.
type Store struct {
	db  *db.DB
	tag string
}

func NewStore(database *db.DB, tag string) *Store {
	return &Store{db: database, tag: tag}
}

// Affiliate query parameter per platform. Unknown platforms get a
// generic ref parameter.
var tagParams = map[string]string{
	"amazon":   "tag",
	"flipkart": "affid",
	"myntra":   "utm_source",
	"meesho":   "utm_source",
}

// BuildLink appends the affiliate tag to a platform URL. Unparseable
// URLs and an empty tag pass through unchanged.
func BuildLink(rawURL, platform, tag string) string {
	if tag == "" {
		return rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	param, ok := tagParams[strings.ToLower(platform)]
	if !ok {
		param = "ref"
	}
	q := u.Query()
	q.Set(param, tag)
	u.RawQuery = q.Encode()
	return u.String()
}

// Resolve finds the outbound URL for a product, preferring the requested
// platform's listing and falling back to the cheapest listing.
func (s *Store) Resolve(ctx context.Context, productID, platform string) (targetURL, resolvedPlatform string, err error) {
	if platform != "" {
		err = s.db.QueryRowContext(ctx,
			`SELECT url, platform FROM product_platforms WHERE product_id = ? AND platform = ? COLLATE NOCASE`,
			productID, platform,
		).Scan(&targetURL, &resolvedPlatform)
		if err == nil {
			return targetURL, resolvedPlatform, nil
		}
		if err != sql.ErrNoRows {
			return "", "", fmt.Errorf("resolving platform listing: %w", err)
		}
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT url, platform FROM product_platforms WHERE product_id = ? ORDER BY price ASC LIMIT 1`,
		productID,
	).Scan(&targetURL, &resolvedPlatform)
	if err == sql.ErrNoRows {
		return "", "", ErrNoTarget
	}
	if err != nil {
		return "", "", fmt.Errorf("resolving listing: %w", err)
	}
	return targetURL, resolvedPlatform, nil
}

// RecordClick persists one outbound click and returns the tagged URL
// the caller should redirect to.
func (s *Store) RecordClick(ctx context.Context, userID, productID, platform, targetURL string) (*Click, error) {
	if userID == "" {
		userID = "anonymous"
	}
	click := Click{
		ID:        uuid.New().String(),
		UserID:    userID,
		ProductID: productID,
		Platform:  platform,
		TargetURL: BuildLink(targetURL, platform, s.tag),
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO clicks (id, user_id, product_id, platform, target_url, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		click.ID, click.UserID, nullable(click.ProductID), click.Platform, click.TargetURL, click.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting click: %w", err)
	}
	return &click, nil
}

// Stats returns click counts grouped by platform, most clicked first.
func (s *Store) Stats(ctx context.Context) ([]PlatformStat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT platform, COUNT(*) FROM clicks GROUP BY platform ORDER BY COUNT(*) DESC, platform ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying click stats: %w", err)
	}
	defer rows.Close()

	var stats []PlatformStat
	for rows.Next() {
		var st PlatformStat
		if err := rows.Scan(&st.Platform, &st.Clicks); err != nil {
			return nil, fmt.Errorf("scanning click stat: %w", err)
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
