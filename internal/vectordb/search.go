package vectordb

import (
	"fmt"
	"strings"
)

// FormatResults renders product search results as human-readable text, used
// by the MCP search tool output.
func FormatResults(results []SearchResult) string {
	if len(results) == 0 {
		return "No matching products found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d product(s):\n\n", len(results)))

	for i, r := range results {
		md := r.Document.Metadata
		sb.WriteString(fmt.Sprintf("--- Match %d (similarity: %.4f) ---\n", i+1, r.Similarity))

		if md.Title != "" {
			sb.WriteString(fmt.Sprintf("Title: %s\n", md.Title))
		}
		if md.Category != "" {
			sb.WriteString(fmt.Sprintf("Category: %s\n", md.Category))
		}
		if md.Audience != "" {
			sb.WriteString(fmt.Sprintf("Audience: %s\n", md.Audience))
		}
		if md.Price > 0 {
			sb.WriteString(fmt.Sprintf("Price: INR %.0f\n", md.Price))
		}
		if md.Rating > 0 {
			sb.WriteString(fmt.Sprintf("Rating: %.1f/5\n", md.Rating))
		}

		sb.WriteString("\n")
		sb.WriteString(r.Document.Content)
		sb.WriteString("\n\n")
	}

	return sb.String()
}
