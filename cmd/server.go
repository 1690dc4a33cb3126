package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/neon-ai/neon/internal/affiliate"
	"github.com/neon-ai/neon/internal/catalog"
	"github.com/neon-ai/neon/internal/chat"
	"github.com/neon-ai/neon/internal/db"
	"github.com/neon-ai/neon/internal/engine"
	"github.com/neon-ai/neon/internal/feed"
	"github.com/neon-ai/neon/internal/profile"
	"github.com/neon-ai/neon/internal/server"
	"github.com/neon-ai/neon/internal/vectordb"
	"github.com/neon-ai/neon/internal/webui"
	"github.com/neon-ai/neon/internal/wishlist"
)

var (
	serverPort     int
	serverAllowAll bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Neon API server",
	Long:  `Starts the Neon HTTP server with the chat API, web chat page, catalog, wishlist, feed, profile links, and affiliate endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serverPort > 0 {
			cfg.Server.Port = serverPort
		}

		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		eng := engine.New(engine.NewMemory())

		// Optional embedding index for semantic recommendations.
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
				fmt.Fprintf(os.Stderr, "Semantic search starts empty. Run `neon seed` to index products.\n")
			}
			index = store
		}

		// Optional LLM provider for recommendation explanations.
		llmProvider, err := createLLMProviderFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("creating LLM provider: %w", err)
		}

		srv := server.New(server.Config{
			Host:         cfg.Server.Host,
			Port:         cfg.Server.Port,
			CORSOrigins:  cfg.Server.CORSOrigins,
			AffiliateTag: cfg.Affiliate.Tag,
			AllowAll:     serverAllowAll,
		}, database, eng, index, llmProvider, cfg.LLM.Model)

		registerAllRoutes(srv, cfg.Affiliate.Tag)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "neon server v%s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", cfg.Database.Path)
		if index != nil {
			fmt.Fprintf(os.Stderr, "  Products indexed: %d\n", index.Count())
		}

		return srv.Start()
	},
}

// registerAllRoutes wires up all feature routes.
func registerAllRoutes(srv *server.Server, affiliateTag string) {
	r := srv.Router()
	database := srv.Database()

	// Chat (HTTP + websocket) with history. LLM phrasing is optional.
	chatStore := chat.NewStore(database)
	chat.RegisterRoutes(r, srv.Engine(), chatStore, srv.LLMProvider(), srv.LLMModel())

	// Product catalog, analysis, and recommendations.
	catalogStore := catalog.NewStore(database)
	recommender := catalog.NewRecommender(catalogStore, srv.Store(), srv.LLMProvider(), srv.LLMModel())
	catalog.RegisterRoutes(r, catalogStore, recommender)

	// Wishlist.
	wishlistStore := wishlist.NewStore(database)
	wishlist.RegisterRoutes(r, wishlistStore)

	// Affiliate click tracking.
	affiliateStore := affiliate.NewStore(database, affiliateTag)
	affiliate.RegisterRoutes(r, affiliateStore)

	// Profile link pages.
	profileStore := profile.NewStore(database)
	profile.RegisterRoutes(r, profileStore)

	// Feed posts.
	feedStore := feed.NewStore(database)
	feed.RegisterRoutes(r, feedStore)

	// Web chat page.
	webui.RegisterRoutes(r, webui.NewRenderer())
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "Port to listen on (overrides config)")
	serverCmd.Flags().BoolVar(&serverAllowAll, "allow-all-origins", false, "Allow all CORS origins (dev mode)")
	rootCmd.AddCommand(serverCmd)
}
