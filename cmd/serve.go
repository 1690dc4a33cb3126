package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neon-ai/neon/internal/catalog"
	"github.com/neon-ai/neon/internal/db"
	"github.com/neon-ai/neon/internal/engine"
	mcpserver "github.com/neon-ai/neon/internal/mcp"
	"github.com/neon-ai/neon/internal/vectordb"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the chat engine and catalog search tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		// Optional embedding index for semantic product search.
		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating embedder: %w", err)
		}
		var index vectordb.VectorStore
		if embedder != nil {
			store, err := vectordb.NewChromemStore(embedder)
			if err != nil {
				return fmt.Errorf("creating vector store: %w", err)
			}
			if err := store.Load(context.Background(), vectorDir(cfg)); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not load vector store from %s: %v\n", vectorDir(cfg), err)
				fmt.Fprintf(os.Stderr, "Product search falls back to SQL matching. Run `neon seed` to index products.\n")
			}
			index = store
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "neon MCP server started on stdio (db=%s)\n", cfg.Database.Path)

		eng := engine.New(engine.NewMemory())
		srv := mcpserver.NewServer(eng, catalog.NewStore(database), index)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
