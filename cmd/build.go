package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kysno/kysno/internal/export"
	"github.com/kysno/kysno/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the landing page as a static site",
	Long:  `Writes index.html, its stylesheet and script, and the selected public files to the output directory.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	renderer, err := newRenderer(cfg, exportOptions())
	if err != nil {
		return fmt.Errorf("preparing page: %w", err)
	}

	generator := &export.Generator{
		OutputDir: outputDir,
		PublicDir: cfg.PublicDir,
		Include:   cfg.Include,
		Exclude:   cfg.Exclude,
		Renderer:  renderer,
		Reporter:  progress.NewReporter(verbose),
	}
	n, err := generator.Generate()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Static site generated: %s (%d files)\n", outputDir, n)
	return nil
}
