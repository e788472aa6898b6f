package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kysno/kysno/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize kysno configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the landing page and generates a .kysno.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
