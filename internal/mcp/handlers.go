package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/neon-ai/neon/internal/catalog"
	"github.com/neon-ai/neon/internal/engine"
	"github.com/neon-ai/neon/internal/vectordb"
)

// handleNeonChat runs one turn of the rule engine.
func (s *Server) handleNeonChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	resp := s.engine.Reply(engine.Request{
		UserID:       request.GetString("user_id", ""),
		Message:      message,
		AudienceHint: engine.Audience(request.GetString("audience", "")),
	})

	var sb strings.Builder
	sb.WriteString(resp.Reply)
	sb.WriteString(fmt.Sprintf("\n\n[mode: %s | audience: %s | language: %s | source: %s]",
		resp.Mode, resp.Audience, resp.Language, resp.Source))
	return mcp.NewToolResultText(sb.String()), nil
}

// handleSearchProducts searches the catalog, semantically when possible.
func (s *Server) handleSearchProducts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}
	audience := request.GetString("audience", "")

	if s.index != nil && s.index.Count() > 0 {
		var filter *vectordb.SearchFilter
		if audience != "" && audience != "general" {
			filter = &vectordb.SearchFilter{Audience: &audience}
		}
		results, err := s.index.Search(ctx, query, limit, filter)
		if err == nil {
			return mcp.NewToolResultText(vectordb.FormatResults(results)), nil
		}
		// Fall through to SQL matching on index errors.
	}

	products, err := s.products.SearchLike(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if audience != "" && audience != "general" {
		filtered := products[:0]
		for _, p := range products {
			if p.Audience == audience {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return mcp.NewToolResultText(formatProducts(products)), nil
}

// handleBestDeal compares a product's platform listings.
func (s *Server) handleBestDeal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	productID, err := request.RequireString("product_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: product_id"), nil
	}

	deal, err := s.products.FindBestDeal(ctx, productID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparing listings: %v", err)), nil
	}
	if deal == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no listings found for product %q", productID)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Cheapest: %s at INR %.0f (rated %.1f/5)\n%s\n",
		deal.Cheapest.Platform, deal.Cheapest.Price, deal.Cheapest.Rating, deal.Cheapest.URL))
	sb.WriteString(fmt.Sprintf("Best rated: %s at %.1f/5 (INR %.0f)\n%s\n",
		deal.BestRated.Platform, deal.BestRated.Rating, deal.BestRated.Price, deal.BestRated.URL))
	return mcp.NewToolResultText(sb.String()), nil
}

func formatProducts(products []catalog.Product) string {
	if len(products) == 0 {
		return "No matching products found."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d product(s):\n", len(products)))
	for i, p := range products {
		sb.WriteString(fmt.Sprintf("\n--- Product %d ---\n", i+1))
		sb.WriteString(fmt.Sprintf("ID: %s\nTitle: %s\n", p.ID, p.Title))
		if p.Category != "" {
			sb.WriteString(fmt.Sprintf("Category: %s\n", p.Category))
		}
		if p.Audience != "" {
			sb.WriteString(fmt.Sprintf("Audience: %s\n", p.Audience))
		}
		if p.Price > 0 {
			sb.WriteString(fmt.Sprintf("Price: INR %.0f\n", p.Price))
		}
		if p.Rating > 0 {
			sb.WriteString(fmt.Sprintf("Rating: %.1f/5\n", p.Rating))
		}
	}
	return sb.String()
}
