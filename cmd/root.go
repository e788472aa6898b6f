package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kysno",
	Short: "Serve and export the Kysno landing page",
	Long: `kysno renders the Kysno growth-agency landing page. It can serve the
page over HTTP with live reload while the copy is edited, or export it as a
static site for any static host.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".kysno.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
