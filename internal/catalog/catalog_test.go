package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/neon-ai/neon/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestSaveAndGetProduct(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved, err := store.SaveProduct(ctx, Product{
		Title:    "Roadster Relaxed Shirt",
		Category: "Shirt",
		Audience: "men",
		Price:    799,
		Rating:   4.2,
		Listings: []Listing{
			{Platform: "Amazon", URL: "https://amazon.in/x", Price: 799, Rating: 4.2},
		},
	})
	if err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("saved product should have an ID")
	}

	got, err := store.GetProduct(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got == nil {
		t.Fatal("product not found after save")
	}
	if got.Title != "Roadster Relaxed Shirt" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.Listings) != 1 || got.Listings[0].Platform != "Amazon" {
		t.Errorf("listings = %+v", got.Listings)
	}
}

func TestSaveProductUpdatesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved, err := store.SaveProduct(ctx, Product{Title: "Old Title", Rating: 3})
	if err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}

	saved.Title = "New Title"
	saved.Rating = 4.5
	if _, err := store.SaveProduct(ctx, *saved); err != nil {
		t.Fatalf("second SaveProduct: %v", err)
	}

	got, err := store.GetProduct(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got.Title != "New Title" || got.Rating != 4.5 {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestGetProductMissing(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetProduct(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got != nil {
		t.Error("missing product should return nil, nil")
	}
}

func TestFindBestDeal(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved, err := store.SaveProduct(ctx, Product{
		Title: "Graphic Tee",
		Listings: []Listing{
			{Platform: "Amazon", URL: "https://amazon.in/t", Price: 599, Rating: 4.0},
			{Platform: "Flipkart", URL: "https://flipkart.com/t", Price: 549, Rating: 3.8},
			{Platform: "Myntra", URL: "https://myntra.com/t", Price: 649, Rating: 4.4},
		},
	})
	if err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}

	deal, err := store.FindBestDeal(ctx, saved.ID)
	if err != nil {
		t.Fatalf("FindBestDeal: %v", err)
	}
	if deal == nil {
		t.Fatal("expected a deal")
	}
	if deal.Cheapest.Platform != "Flipkart" {
		t.Errorf("cheapest = %q, want Flipkart", deal.Cheapest.Platform)
	}
	if deal.BestRated.Platform != "Myntra" {
		t.Errorf("best rated = %q, want Myntra", deal.BestRated.Platform)
	}
}

func TestFindBestDealRatingTieBreaksOnPrice(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved, err := store.SaveProduct(ctx, Product{
		Title: "Kurta Set",
		Listings: []Listing{
			{Platform: "Myntra", URL: "https://myntra.com/k", Price: 1299, Rating: 4.3},
			{Platform: "Meesho", URL: "https://meesho.com/k", Price: 1099, Rating: 4.3},
		},
	})
	if err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}

	deal, err := store.FindBestDeal(ctx, saved.ID)
	if err != nil {
		t.Fatalf("FindBestDeal: %v", err)
	}
	if deal.BestRated.Platform != "Meesho" {
		t.Errorf("rating tie should break to cheaper listing, got %q", deal.BestRated.Platform)
	}
}

func TestFindBestDealNoListings(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved, err := store.SaveProduct(ctx, Product{Title: "Bare Product"})
	if err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}

	deal, err := store.FindBestDeal(ctx, saved.ID)
	if err != nil {
		t.Fatalf("FindBestDeal: %v", err)
	}
	if deal != nil {
		t.Error("product without listings should yield nil deal")
	}
}

func TestAnalyzeAndSave(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	analysis, err := store.AnalyzeAndSave(ctx, "mens cotton shirt on sale https://www.amazon.in/dp/B0TEST")
	if err != nil {
		t.Fatalf("AnalyzeAndSave: %v", err)
	}

	if analysis.Platform != "Amazon" {
		t.Errorf("platform = %q, want Amazon", analysis.Platform)
	}
	if analysis.Category != "Men Shirt" {
		t.Errorf("category = %q, want Men Shirt", analysis.Category)
	}
	if analysis.ValueStars != "★★★★☆" {
		t.Errorf("stars = %q, want 4 filled", analysis.ValueStars)
	}

	got, err := store.GetProduct(ctx, analysis.Product.ID)
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if got == nil {
		t.Fatal("analyzed product should be persisted")
	}
	if len(got.Listings) != 1 || got.Listings[0].Platform != "Amazon" {
		t.Errorf("expected an Amazon listing, got %+v", got.Listings)
	}
}

func TestRecommendScoring(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// High rating and moderate price should beat cheap but poorly rated.
	for _, p := range []Product{
		{Title: "Budget Shirt", Category: "Shirt", Audience: "men", Price: 299, Rating: 3.0},
		{Title: "Quality Shirt", Category: "Shirt", Audience: "men", Price: 899, Rating: 4.6},
		{Title: "Luxury Shirt", Category: "Shirt", Audience: "men", Price: 4999, Rating: 4.7},
	} {
		if _, err := store.SaveProduct(ctx, p); err != nil {
			t.Fatalf("SaveProduct: %v", err)
		}
	}

	rec := NewRecommender(store, nil, nil, "")
	recs, err := rec.Recommend(ctx, "shirt", "men", 3)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	if recs[0].Product.Title != "Quality Shirt" {
		t.Errorf("top pick = %q, want Quality Shirt", recs[0].Product.Title)
	}
	if recs[0].Explanation == "" {
		t.Error("top pick should carry a fallback explanation without an LLM")
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Error("recommendations should be sorted by score, best first")
		}
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	store := newTestStore(t)

	rec := NewRecommender(store, nil, nil, "")
	recs, err := rec.Recommend(context.Background(), "anything", "", 3)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if recs != nil {
		t.Errorf("empty catalog should yield no recommendations, got %d", len(recs))
	}
}

func TestProductRoutes(t *testing.T) {
	store := newTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store, NewRecommender(store, nil, nil, ""))

	// Create.
	body := `{"title":"Floral Dress","category":"Dress","audience":"women","price":1299,"rating":4.4}`
	req := httptest.NewRequest("POST", "/api/products/", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created Product
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal created: %v", err)
	}

	// List.
	req = httptest.NewRequest("GET", "/api/products/?audience=women", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var listed []Product
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 product, got %d", len(listed))
	}

	// Get by ID.
	req = httptest.NewRequest("GET", "/api/products/"+created.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}

	// Missing product.
	req = httptest.NewRequest("GET", "/api/products/missing", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing: expected 404, got %d", w.Code)
	}

	// Delete.
	req = httptest.NewRequest("DELETE", "/api/products/"+created.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("delete: expected 204, got %d", w.Code)
	}
}

func TestRecommendationEndpointValidation(t *testing.T) {
	store := newTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store, NewRecommender(store, nil, nil, ""))

	req := httptest.NewRequest("POST", "/api/recommendation", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing query, got %d", w.Code)
	}
}
