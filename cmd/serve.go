package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kysno/kysno/internal/livereload"
	"github.com/kysno/kysno/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page over HTTP",
	Long: `Starts an HTTP server rendering the landing page. With --watch, edits to
the content file are picked up without a restart and open pages reload.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("watch", false, "reload pages when the content file changes")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetInt("port")
	}
	watch, _ := cmd.Flags().GetBool("watch")
	if watch && cfg.ContentFile == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch has no effect without content_file; serving built-in copy")
		watch = false
	}

	renderer, err := newRenderer(cfg, serveOptions(watch))
	if err != nil {
		return fmt.Errorf("preparing page: %w", err)
	}

	srv := server.New(server.Config{
		Port:       cfg.Port,
		PublicDir:  cfg.PublicDir,
		AllowAll:   cfg.AllowAllOrigins,
		LiveReload: watch,
	}, renderer)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		w := &livereload.Watcher{
			Files: []string{cfg.ContentFile},
			OnChange: func() error {
				r, err := newRenderer(cfg, serveOptions(true))
				if err != nil {
					fmt.Fprintf(os.Stderr, "Content error: %v\n", err)
					return err
				}
				srv.SetRenderer(r)
				fmt.Fprintf(os.Stderr, "Reloaded %s\n", cfg.ContentFile)
				return nil
			},
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: live reload disabled: %v\n", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Fprintf(os.Stderr, "kysno %s serving at %s — press Ctrl+C to stop\n", Version, url)
	if verbose {
		sc := srv.ServerConfig()
		c := srv.Renderer().Content()
		fmt.Fprintf(os.Stderr, "  Booking URL: %s\n", cfg.BookingURL)
		fmt.Fprintf(os.Stderr, "  Content: %s (%d services, %d pricing tiers)\n",
			contentSource(cfg.ContentFile), len(c.Services.Cards), len(c.Pricing.Tiers))
		fmt.Fprintf(os.Stderr, "  Public dir: %s\n", sc.PublicDir)
		fmt.Fprintf(os.Stderr, "  Live reload: %v\n", sc.LiveReload)
		fmt.Fprintf(os.Stderr, "  CORS: allow all origins=%v\n", sc.AllowAll)
	}

	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}

	return srv.Start()
}

func contentSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
