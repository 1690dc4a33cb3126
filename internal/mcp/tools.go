package mcp

import "github.com/mark3labs/mcp-go/mcp"

// neonChatTool defines the neon_chat MCP tool.
var neonChatTool = mcp.NewTool("neon_chat",
	mcp.WithDescription("Chat with Neon, the AI shopping assistant. Send a fashion product link, ask for outfit suggestions, or ask about affiliate marketing."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The user message"),
	),
	mcp.WithString("user_id",
		mcp.Description("Stable user identifier for rate limiting and history"),
	),
	mcp.WithString("audience",
		mcp.Description("Audience hint when the message does not reveal it"),
		mcp.Enum("women", "men", "kids"),
	),
)

// searchProductsTool defines the search_products MCP tool.
var searchProductsTool = mcp.NewTool("search_products",
	mcp.WithDescription("Search the product catalog. Uses semantic search when an embedding index is available, SQL matching otherwise."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Natural language product query"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 5)"),
	),
	mcp.WithString("audience",
		mcp.Description("Filter results by audience"),
		mcp.Enum("women", "men", "kids", "general"),
	),
)

// bestDealTool defines the best_deal MCP tool.
var bestDealTool = mcp.NewTool("best_deal",
	mcp.WithDescription("Compare a product's listings across platforms and return the cheapest and the best-rated offer."),
	mcp.WithString("product_id",
		mcp.Required(),
		mcp.Description("Catalog product ID"),
	),
)
