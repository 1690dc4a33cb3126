package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/neon-ai/neon/internal/engine"
)

// Analysis is the structured breakdown of a shared product link or
// description, in the same vocabulary the chat engine uses.
type Analysis struct {
	Platform   string  `json:"platform"`
	Category   string  `json:"category"`
	Audience   string  `json:"audience"`
	Style      string  `json:"style"`
	ValueStars string  `json:"value_stars"`
	Verdict    string  `json:"verdict"`
	Product    Product `json:"product"`
}

// AnalyzeAndSave breaks a shared link or description down into catalog
// fields and persists the result as a product, so every analyzed link
// grows the recommendation pool.
func (s *Store) AnalyzeAndSave(ctx context.Context, text string) (*Analysis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("nothing to analyze")
	}

	summary := engine.Summarize(text)

	product := Product{
		Title:       summary.Title,
		Description: text,
		Category:    summary.Category,
		Audience:    string(summary.Audience),
		Rating:      float64(summary.ValueRating),
	}
	if budget, ok := engine.ExtractBudget(text); ok {
		product.Price = float64(budget)
	}
	if summary.URL != "" {
		product.Listings = []Listing{{
			Platform: summary.Platform,
			URL:      summary.URL,
			Price:    product.Price,
			Rating:   product.Rating,
		}}
	}

	saved, err := s.SaveProduct(ctx, product)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Platform:   summary.Platform,
		Category:   summary.Category,
		Audience:   string(summary.Audience),
		Style:      summary.Style,
		ValueStars: engine.FormatValueStars(summary.ValueRating),
		Verdict:    summary.Verdict,
		Product:    *saved,
	}, nil
}
