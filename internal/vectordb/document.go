package vectordb

import "time"

// Document represents one product entry in the semantic index. Content is
// the text that gets embedded (title plus description); metadata carries the
// catalog fields used for filtering and display.
type Document struct {
	ID       string
	Content  string
	Metadata DocumentMetadata
}

// DocumentMetadata holds the catalog fields attached to an indexed product.
type DocumentMetadata struct {
	ProductID   string
	Title       string
	Category    string
	Audience    string
	Price       float64
	Rating      float64
	LastUpdated time.Time
}

// SearchResult pairs a document with its similarity score.
type SearchResult struct {
	Document   Document
	Similarity float32
}

// SearchFilter allows narrowing search results by catalog fields.
type SearchFilter struct {
	Category *string
	Audience *string
}
