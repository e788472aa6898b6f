package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// publicDirCandidates are directory names commonly used for site images.
var publicDirCandidates = []string{"public", "static", "assets", "images"}

// detectPublicDir returns the first existing candidate directory, or "public".
func detectPublicDir() string {
	for _, dir := range publicDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "public"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to kysno! Let's configure your landing page.")
	fmt.Println()

	// 1. Booking link.
	bookingPrompt := promptui.Prompt{
		Label:    "Scheduling link for \"Book a Call\"",
		Default:  DefaultBookingURL,
		Validate: validateBookingURL,
	}
	bookingURL, err := bookingPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("booking url: %w", err)
	}

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port for kysno serve",
		Default:  "8080",
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for kysno build",
		Default: "dist",
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Public assets directory.
	publicPrompt := promptui.Prompt{
		Label:   "Directory with images and other public files",
		Default: detectPublicDir(),
	}
	publicDir, err := publicPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("public dir: %w", err)
	}

	// 5. Optional content override.
	contentPrompt := promptui.Prompt{
		Label:   "Content file (leave blank to use the built-in copy)",
		Default: "",
	}
	contentFile, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.BookingURL = strings.TrimSpace(bookingURL)
	cfg.Port = port
	cfg.OutputDir = strings.TrimSpace(outputDir)
	cfg.PublicDir = strings.TrimSpace(publicDir)
	cfg.ContentFile = strings.TrimSpace(contentFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.ContentFile != "" {
		if _, err := os.Stat(cfg.ContentFile); os.IsNotExist(err) {
			fmt.Printf("\nNote: %s does not exist yet. Run `kysno content > %s` to start from the built-in copy.\n", cfg.ContentFile, cfg.ContentFile)
		}
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateBookingURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("enter an absolute http(s) URL")
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}
