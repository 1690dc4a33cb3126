package catalog

import "time"

// Product is one catalog entry. Price and Rating are the canonical values;
// per-marketplace listings may differ and drive the best-deal pick.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Audience    string    `json:"audience"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Listings []Listing `json:"listings,omitempty"`
}

// Listing is one marketplace offer for a product.
type Listing struct {
	ProductID string  `json:"product_id"`
	Platform  string  `json:"platform"`
	URL       string  `json:"url"`
	Price     float64 `json:"price"`
	Rating    float64 `json:"rating"`
}

// BestDeal is the outcome of comparing a product's listings: the cheapest
// offer and the best-rated one (which may be the same listing).
type BestDeal struct {
	ProductID string   `json:"product_id"`
	Cheapest  *Listing `json:"cheapest"`
	BestRated *Listing `json:"best_rated"`
}

// Recommendation is the scored pick for a shopper query.
type Recommendation struct {
	Product     Product `json:"product"`
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}
