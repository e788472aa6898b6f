package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/kysno/kysno/internal/config"
	"github.com/kysno/kysno/internal/content"
	"github.com/kysno/kysno/internal/page"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `kysno init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newRenderer loads the configured content and builds a renderer for it.
func newRenderer(cfg *config.Config, opts page.Options) (*page.Renderer, error) {
	c, err := content.Load(cfg.ContentFile)
	if err != nil {
		return nil, err
	}
	opts.BookingURL = cfg.BookingURL
	opts.ScrollThreshold = cfg.ScrollThreshold
	return page.NewRenderer(c, opts)
}

// serveOptions are the renderer options for pages served by kysno serve.
func serveOptions(liveReload bool) page.Options {
	return page.Options{
		PagePath:   "/",
		StaticBase: "/static/",
		AssetBase:  "/assets/",
		LiveReload: liveReload,
	}
}

// exportOptions are the renderer options for a static export, where every
// link is relative to index.html and query strings never reach a server.
func exportOptions() page.Options {
	return page.Options{
		PagePath:     "index.html",
		StaticBase:   "static/",
		AssetBase:    "assets/",
		FragmentMenu: true,
	}
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
