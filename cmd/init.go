package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neon-ai/neon/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize neon configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure neon and generates a .neon.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
