package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neon-ai/neon/internal/catalog"
	"github.com/neon-ai/neon/internal/db"
	"github.com/neon-ai/neon/internal/progress"
	"github.com/neon-ai/neon/internal/vectordb"
)

var seedCmd = &cobra.Command{
	Use:   "seed [patterns...]",
	Short: "Load products from YAML or JSON files into the catalog",
	Long: `Reads product definitions from files matching the given glob patterns
(doublestar syntax, e.g. "seeds/**/*.yml") and saves them to the catalog.
When embeddings are enabled, the products are also indexed for semantic
search.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		products, err := catalog.LoadSeedFiles(args)
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.Database.Path)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

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
			if err := store.Load(context.Background(), vectorDir(cfg)); err != nil && verbose {
				fmt.Fprintf(os.Stderr, "Starting a fresh vector store: %v\n", err)
			}
			index = store
		}

		ctx := context.Background()
		store := catalog.NewStore(database)
		reporter := progress.NewReporter()
		reporter.Start(len(products))

		var docs []vectordb.Document
		for i, p := range products {
			saved, err := store.SaveProduct(ctx, p)
			if err != nil {
				reporter.Finish()
				return fmt.Errorf("saving %q: %w", p.Title, err)
			}
			if index != nil {
				docs = append(docs, catalog.ProductDocument(*saved))
			}
			reporter.Update(i+1, p.Title)
		}
		reporter.Finish()

		if index != nil {
			if err := index.AddDocuments(ctx, docs); err != nil {
				return fmt.Errorf("indexing products: %w", err)
			}
			if err := index.Persist(ctx, vectorDir(cfg)); err != nil {
				return fmt.Errorf("persisting vector store: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Indexed %d products into %s\n", len(docs), vectorDir(cfg))
		}

		fmt.Fprintf(os.Stderr, "Seeded %d products into %s\n", len(products), cfg.Database.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
