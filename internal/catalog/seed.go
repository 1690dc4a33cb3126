package catalog

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/neon-ai/neon/internal/vectordb"
)

// seedFile is the on-disk format for `neon seed` input files. YAML is a
// superset of JSON, so both extensions parse through the same decoder.
type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Category    string        `yaml:"category"`
	Audience    string        `yaml:"audience"`
	Price       float64       `yaml:"price"`
	Rating      float64       `yaml:"rating"`
	ImageURL    string        `yaml:"image_url"`
	Listings    []seedListing `yaml:"listings"`
}

type seedListing struct {
	Platform string  `yaml:"platform"`
	URL      string  `yaml:"url"`
	Price    float64 `yaml:"price"`
	Rating   float64 `yaml:"rating"`
}

// LoadSeedFiles reads products from all files matching the doublestar
// patterns. Files without a products list are rejected.
func LoadSeedFiles(patterns []string) ([]Product, error) {
	var products []Product
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
		}
		for _, path := range matches {
			loaded, err := loadSeedFile(path)
			if err != nil {
				return nil, err
			}
			products = append(products, loaded...)
		}
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("no products found for patterns %v", patterns)
	}
	return products, nil
}

func loadSeedFile(path string) ([]Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(f.Products) == 0 {
		return nil, fmt.Errorf("%s: no products list", path)
	}

	products := make([]Product, 0, len(f.Products))
	for i, sp := range f.Products {
		if sp.Title == "" {
			return nil, fmt.Errorf("%s: product %d has no title", path, i+1)
		}
		p := Product{
			Title:       sp.Title,
			Description: sp.Description,
			Category:    sp.Category,
			Audience:    sp.Audience,
			Price:       sp.Price,
			Rating:      sp.Rating,
			ImageURL:    sp.ImageURL,
		}
		for _, sl := range sp.Listings {
			p.Listings = append(p.Listings, Listing{
				Platform: sl.Platform,
				URL:      sl.URL,
				Price:    sl.Price,
				Rating:   sl.Rating,
			})
		}
		products = append(products, p)
	}
	return products, nil
}

// ProductDocument converts a saved product into the vector index document
// used for semantic search.
func ProductDocument(p Product) vectordb.Document {
	content := p.Title
	if p.Description != "" {
		content += "\n" + p.Description
	}
	if p.Category != "" {
		content += "\nCategory: " + p.Category
	}
	if p.Audience != "" && p.Audience != "general" {
		content += "\nFor: " + p.Audience
	}

	return vectordb.Document{
		ID:      p.ID,
		Content: content,
		Metadata: vectordb.DocumentMetadata{
			ProductID:   p.ID,
			Title:       p.Title,
			Category:    p.Category,
			Audience:    p.Audience,
			Price:       p.Price,
			Rating:      p.Rating,
			LastUpdated: p.UpdatedAt,
		},
	}
}
