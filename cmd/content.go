package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kysno/kysno/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Print the built-in page copy as YAML",
	Long: `Prints the built-in page copy. Redirect it to a file, edit it, and point
content_file in .kysno.yml at it to customize the page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		check, _ := cmd.Flags().GetString("check")
		if check == "" {
			_, err := cmd.OutOrStdout().Write(content.DefaultYAML())
			return err
		}

		c, err := content.Load(check)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d services, %d pricing tiers)\n", check, len(c.Services.Cards), len(c.Pricing.Tiers))
		return nil
	},
}

func init() {
	contentCmd.Flags().String("check", "", "validate a content file instead of printing the built-in copy")
	rootCmd.AddCommand(contentCmd)
}
