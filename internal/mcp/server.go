// Package mcp exposes the assistant over the Model Context Protocol so
// agent clients can chat and query the catalog through stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/neon-ai/neon/internal/catalog"
	"github.com/neon-ai/neon/internal/engine"
	"github.com/neon-ai/neon/internal/vectordb"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server exposing the chat engine and catalog tools.
type Server struct {
	engine   *engine.Engine
	products *catalog.Store
	index    vectordb.VectorStore
	mcp      *server.MCPServer
}

// NewServer creates the MCP server. The vector index may be nil, in which
// case product search falls back to SQL matching.
func NewServer(eng *engine.Engine, products *catalog.Store, index vectordb.VectorStore) *Server {
	s := &Server{
		engine:   eng,
		products: products,
		index:    index,
	}

	s.mcp = server.NewMCPServer(
		"neon",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(neonChatTool, s.handleNeonChat)
	s.mcp.AddTool(searchProductsTool, s.handleSearchProducts)
	s.mcp.AddTool(bestDealTool, s.handleBestDeal)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
