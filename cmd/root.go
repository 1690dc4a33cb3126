package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "neon",
	Short: "Neon, the AI shopping assistant for fashion and affiliate growth",
	Long: `Neon is an e-commerce shopping assistant. It analyzes fashion product
links, suggests outfits by audience and budget, and teaches affiliate
marketing basics through a deterministic conversational engine, with an
HTTP API, a web chat page, and an MCP server for agent integration.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".neon.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
