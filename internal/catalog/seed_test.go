package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadSeedFiles(t *testing.T) {
	dir := t.TempDir()
	seedYAML := `products:
  - title: Oversized Tee
    category: T-Shirt
    audience: men
    price: 599
    rating: 4.1
    listings:
      - platform: Amazon
        url: https://amazon.in/t
        price: 599
        rating: 4.1
  - title: Floral Dress
    category: Dress
    audience: women
    price: 1299
    rating: 4.4
`
	if err := os.WriteFile(filepath.Join(dir, "products.yml"), []byte(seedYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	seedJSON := `{"products":[{"title":"Kids Hoodie","category":"Hoodie","audience":"kids","price":899,"rating":4.0}]}`
	if err := os.WriteFile(filepath.Join(dir, "more.json"), []byte(seedJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	products, err := LoadSeedFiles([]string{filepath.Join(dir, "*.yml"), filepath.Join(dir, "*.json")})
	if err != nil {
		t.Fatalf("LoadSeedFiles: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}

	byTitle := map[string]Product{}
	for _, p := range products {
		byTitle[p.Title] = p
	}
	tee, ok := byTitle["Oversized Tee"]
	if !ok {
		t.Fatal("YAML product missing")
	}
	if len(tee.Listings) != 1 || tee.Listings[0].Platform != "Amazon" {
		t.Errorf("listings = %+v", tee.Listings)
	}
	if _, ok := byTitle["Kids Hoodie"]; !ok {
		t.Error("JSON product missing")
	}
}

func TestLoadSeedFilesRejectsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "empty.yml"), []byte("products: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSeedFiles([]string{filepath.Join(dir, "empty.yml")}); err == nil {
		t.Error("expected an error for a file without products")
	}
	if _, err := LoadSeedFiles([]string{filepath.Join(dir, "nothing-here-*.yml")}); err == nil {
		t.Error("expected an error when no files match")
	}
}

func TestProductDocument(t *testing.T) {
	p := Product{
		ID:          "p1",
		Title:       "Linen Shirt",
		Description: "Breathable summer shirt",
		Category:    "Shirt",
		Audience:    "men",
		Price:       1299,
		Rating:      4.3,
	}

	doc := ProductDocument(p)
	if doc.ID != "p1" || doc.Metadata.ProductID != "p1" {
		t.Errorf("document IDs = %q / %q", doc.ID, doc.Metadata.ProductID)
	}
	for _, want := range []string{"Linen Shirt", "Breathable summer shirt", "Category: Shirt", "For: men"} {
		if !strings.Contains(doc.Content, want) {
			t.Errorf("content missing %q: %q", want, doc.Content)
		}
	}
}
