package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/neon-ai/neon/internal/catalog"
	"github.com/neon-ai/neon/internal/db"
	"github.com/neon-ai/neon/internal/engine"
	"github.com/neon-ai/neon/internal/vectordb"
)

// mockIndex implements vectordb.VectorStore for testing.
type mockIndex struct {
	docs []vectordb.Document
}

func (m *mockIndex) AddDocuments(_ context.Context, docs []vectordb.Document) error {
	m.docs = append(m.docs, docs...)
	return nil
}

func (m *mockIndex) Search(_ context.Context, query string, limit int, filter *vectordb.SearchFilter) ([]vectordb.SearchResult, error) {
	var results []vectordb.SearchResult
	for _, doc := range m.docs {
		if filter != nil && filter.Audience != nil && doc.Metadata.Audience != *filter.Audience {
			continue
		}
		results = append(results, vectordb.SearchResult{
			Document:   doc,
			Similarity: 0.95,
		})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

func (m *mockIndex) DeleteByProductID(_ context.Context, _ string) error { return nil }
func (m *mockIndex) Persist(_ context.Context, _ string) error           { return nil }
func (m *mockIndex) Load(_ context.Context, _ string) error              { return nil }
func (m *mockIndex) Count() int                                          { return len(m.docs) }

func newTestServer(t *testing.T, index vectordb.VectorStore) (*Server, *catalog.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	products := catalog.NewStore(database)
	eng := engine.New(engine.NewMemory())
	return NewServer(eng, products, index), products
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"neon_chat", neonChatTool, "neon_chat"},
		{"search_products", searchProductsTool, "search_products"},
		{"best_deal", bestDealTool, "best_deal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
}

func TestHandleNeonChat(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	ctx := context.Background()

	t.Run("suggestion request", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"message": "suggest a casual outfit for men under 999",
			"user_id": "mcp-user",
		}

		result, err := srv.handleNeonChat(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "mode: fashion_suggestion") {
			t.Errorf("expected suggestion mode footer, got %q", text)
		}
	})

	t.Run("missing message", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleNeonChat(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing message")
		}
	})
}

func TestHandleSearchProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("semantic index", func(t *testing.T) {
		index := &mockIndex{docs: []vectordb.Document{
			{
				ID:      "p1",
				Content: "Oversized cotton t-shirt for men",
				Metadata: vectordb.DocumentMetadata{
					ProductID: "p1",
					Title:     "Oversized Tee",
					Category:  "T-Shirt",
					Audience:  "men",
					Price:     599,
					Rating:    4.1,
				},
			},
		}}
		srv, _ := newTestServer(t, index)

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"query":    "casual tee",
			"audience": "men",
		}

		result, err := srv.handleSearchProducts(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if !strings.Contains(resultText(t, result), "Oversized Tee") {
			t.Error("expected the indexed product in the output")
		}
	})

	t.Run("sql fallback without index", func(t *testing.T) {
		srv, products := newTestServer(t, nil)
		if _, err := products.SaveProduct(ctx, catalog.Product{
			Title: "Linen Shirt", Category: "Shirt", Audience: "men", Price: 1299, Rating: 4.3,
		}); err != nil {
			t.Fatalf("SaveProduct: %v", err)
		}

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"query": "linen",
		}

		result, err := srv.handleSearchProducts(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resultText(t, result), "Linen Shirt") {
			t.Error("expected the catalog product in the output")
		}
	})

	t.Run("no matches", func(t *testing.T) {
		srv, _ := newTestServer(t, nil)

		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"query": "nothing like this",
		}

		result, err := srv.handleSearchProducts(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resultText(t, result), "No matching products") {
			t.Error("expected the empty-result message")
		}
	})
}

func TestHandleBestDeal(t *testing.T) {
	srv, products := newTestServer(t, nil)
	ctx := context.Background()

	saved, err := products.SaveProduct(ctx, catalog.Product{
		Title: "Graphic Tee",
		Listings: []catalog.Listing{
			{Platform: "Amazon", URL: "https://amazon.in/t", Price: 599, Rating: 4.0},
			{Platform: "Flipkart", URL: "https://flipkart.com/t", Price: 549, Rating: 3.8},
		},
	})
	if err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{
		"product_id": saved.ID,
	}

	result, err := srv.handleBestDeal(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %v", result.Content)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "Cheapest: Flipkart") {
		t.Errorf("expected Flipkart as cheapest, got %q", text)
	}
	if !strings.Contains(text, "Best rated: Amazon") {
		t.Errorf("expected Amazon as best rated, got %q", text)
	}

	req.Params.Arguments = map[string]any{"product_id": "missing"}
	result, err = srv.handleBestDeal(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error for unknown product")
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	t.Fatal("no text content in result")
	return ""
}
