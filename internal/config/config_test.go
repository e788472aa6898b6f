package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BookingURL != DefaultBookingURL {
		t.Errorf("expected default booking_url %q, got %q", DefaultBookingURL, cfg.BookingURL)
	}
	if cfg.ScrollThreshold != 20 {
		t.Errorf("expected default scroll_threshold 20, got %d", cfg.ScrollThreshold)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.kysno.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.BookingURL = "https://cal.example.com/intro"
	original.ScrollThreshold = 64
	original.ContentFile = "content.yml"
	original.Include = []string{"**/*.png", "**/*.svg"}
	original.OutputDir = "site"

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.BookingURL != original.BookingURL {
		t.Errorf("booking_url: got %q, want %q", loaded.BookingURL, original.BookingURL)
	}
	if loaded.ScrollThreshold != original.ScrollThreshold {
		t.Errorf("scroll_threshold: got %d, want %d", loaded.ScrollThreshold, original.ScrollThreshold)
	}
	if loaded.ContentFile != original.ContentFile {
		t.Errorf("content_file: got %q, want %q", loaded.ContentFile, original.ContentFile)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if len(loaded.Include) != len(original.Include) {
		t.Errorf("include length: got %d, want %d", len(loaded.Include), len(original.Include))
	}
	for i, v := range loaded.Include {
		if v != original.Include[i] {
			t.Errorf("include[%d]: got %q, want %q", i, v, original.Include[i])
		}
	}
}

func TestLoadKeepsPackageDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "globs.yml")
	data := []byte("include:\n  - \"**/*.gif\"\nexclude:\n  - \"drafts/**\"\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded.Include) != 1 || loaded.Include[0] != "**/*.gif" {
		t.Errorf("include: got %v, want [**/*.gif]", loaded.Include)
	}

	cfg := DefaultConfig()
	if cfg.Include[0] != "**/*.png" {
		t.Errorf("DefaultConfig().Include[0] = %q after Load, want %q", cfg.Include[0], "**/*.png")
	}
	if cfg.Exclude[0] != ".git/**" {
		t.Errorf("DefaultConfig().Exclude[0] = %q after Load, want %q", cfg.Exclude[0], ".git/**")
	}
	if len(cfg.Include) != len(DefaultIncludes) || len(cfg.Exclude) != len(DefaultExcludes) {
		t.Error("DefaultConfig globs changed length after Load")
	}

	// Mutating a returned config must not reach the package defaults.
	cfg.Include[0] = "changed"
	if DefaultIncludes[0] != "**/*.png" {
		t.Errorf("DefaultIncludes[0] = %q, want %q", DefaultIncludes[0], "**/*.png")
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.BookingURL != DefaultBookingURL {
		t.Errorf("expected default booking_url, got %q", cfg.BookingURL)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("KYSNO_BOOKING_URL", "https://book.example.org/call")
	t.Setenv("KYSNO_PORT", "3000")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.BookingURL != "https://book.example.org/call" {
		t.Errorf("env override failed: got %q", loaded.BookingURL)
	}
	if loaded.Port != 3000 {
		t.Errorf("env override failed: got port %d, want 3000", loaded.Port)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yml")
	if err := os.WriteFile(path, []byte("port: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty booking url", func(c *Config) { c.BookingURL = "" }, true},
		{"relative booking url", func(c *Config) { c.BookingURL = "/book" }, true},
		{"ftp booking url", func(c *Config) { c.BookingURL = "ftp://example.com/x" }, true},
		{"http booking url", func(c *Config) { c.BookingURL = "http://example.com/x" }, false},
		{"negative threshold", func(c *Config) { c.ScrollThreshold = -1 }, true},
		{"zero threshold", func(c *Config) { c.ScrollThreshold = 0 }, false},
		{"port too large", func(c *Config) { c.Port = 70000 }, true},
		{"negative port", func(c *Config) { c.Port = -1 }, true},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"8080", false},
		{" 3000 ", false},
		{"0", false},
		{"http", true},
		{"65536", true},
	}
	for _, tt := range tests {
		if err := validatePort(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("validatePort(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateBookingURL(t *testing.T) {
	if err := validateBookingURL(DefaultBookingURL); err != nil {
		t.Errorf("default booking url rejected: %v", err)
	}
	if err := validateBookingURL("calendly.com/someone"); err == nil {
		t.Error("expected error for URL without scheme")
	}
}

func TestDetectPublicDir(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	if got := detectPublicDir(); got != "public" {
		t.Errorf("empty dir: got %q, want %q", got, "public")
	}
	if err := os.Mkdir(filepath.Join(dir, "static"), 0o755); err != nil {
		t.Fatal(err)
	}
	if got := detectPublicDir(); got != "static" {
		t.Errorf("got %q, want %q", got, "static")
	}
}
