package catalog

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/neon-ai/neon/internal/llm"
	"github.com/neon-ai/neon/internal/vectordb"
)

// Recommender picks the best product for a shopper query. The semantic
// index and LLM explainer are both optional; with neither configured the
// recommender still works on SQL search and deterministic scoring.
type Recommender struct {
	store    *Store
	index    vectordb.VectorStore
	provider llm.Provider
	model    string
}

// NewRecommender creates a recommender. index and provider may be nil.
func NewRecommender(store *Store, index vectordb.VectorStore, provider llm.Provider, model string) *Recommender {
	return &Recommender{store: store, index: index, provider: provider, model: model}
}

// score weighs rating heavily against price: a full rating point is worth
// 2000 rupees of price difference.
func score(p Product) float64 {
	return p.Rating*20 - p.Price/100
}

// Recommend returns the top pick for the query plus up to limit-1
// runners-up, best first.
func (r *Recommender) Recommend(ctx context.Context, query, audience string, limit int) ([]Recommendation, error) {
	if limit <= 0 {
		limit = 3
	}

	candidates, err := r.candidates(ctx, query, audience, limit*3)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		return score(candidates[i]) > score(candidates[j])
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	recs := make([]Recommendation, len(candidates))
	for i, p := range candidates {
		rec := Recommendation{Product: p, Score: score(p)}
		if i == 0 {
			rec.Explanation = r.explain(ctx, query, p)
		}
		recs[i] = rec
	}
	return recs, nil
}

// candidates gathers products for scoring: the semantic index when
// available, SQL LIKE search otherwise, and the newest products as a last
// resort so an empty search never means an empty recommendation.
func (r *Recommender) candidates(ctx context.Context, query, audience string, limit int) ([]Product, error) {
	if r.index != nil && r.index.Count() > 0 {
		var filter *vectordb.SearchFilter
		if audience != "" && audience != "general" {
			filter = &vectordb.SearchFilter{Audience: &audience}
		}
		results, err := r.index.Search(ctx, query, limit, filter)
		if err != nil {
			log.Printf("catalog: semantic search failed, falling back: %v", err)
		} else if len(results) > 0 {
			var products []Product
			for _, res := range results {
				p, err := r.store.GetProduct(ctx, res.Document.Metadata.ProductID)
				if err != nil {
					return nil, err
				}
				if p != nil {
					products = append(products, *p)
				}
			}
			if len(products) > 0 {
				return products, nil
			}
		}
	}

	products, err := r.store.SearchLike(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if len(products) > 0 {
		return filterAudience(products, audience), nil
	}

	products, err = r.store.ListProducts(ctx, "", audience, limit)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func filterAudience(products []Product, audience string) []Product {
	if audience == "" || audience == "general" {
		return products
	}
	var out []Product
	for _, p := range products {
		if p.Audience == audience || p.Audience == "general" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return products
	}
	return out
}

// explain phrases why the top pick fits. The LLM path is best effort; any
// failure falls back to the deterministic template.
func (r *Recommender) explain(ctx context.Context, query string, p Product) string {
	fallback := fmt.Sprintf("%s scores well on rating (%.1f/5) for its INR %.0f price point, making it a solid value pick for %q.",
		p.Title, p.Rating, p.Price, query)

	if r.provider == nil {
		return fallback
	}

	req := llm.NewExplainRequest(query, p.Title, p.Price, p.Rating)
	req.Model = r.model
	resp, err := r.provider.Complete(ctx, req)
	if err != nil || resp.Content == "" {
		if err != nil {
			log.Printf("catalog: explanation request failed: %v", err)
		}
		return fallback
	}
	return resp.Content
}
