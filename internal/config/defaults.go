package config

import "slices"

// DefaultBookingURL is the scheduling page every "Book a Call" control opens.
const DefaultBookingURL = "https://calendly.com/bryceberczik-dev/30min"

// DefaultScrollThreshold is the scroll offset, in pixels, at which the
// navbar switches from transparent to opaque.
const DefaultScrollThreshold = 20

// DefaultIncludes are glob patterns of public files copied into a static export.
var DefaultIncludes = []string{
	"**/*.png",
	"**/*.jpg",
	"**/*.jpeg",
	"**/*.webp",
	"**/*.svg",
	"**/*.ico",
	"**/*.woff2",
}

// DefaultExcludes are glob patterns never copied into a static export.
var DefaultExcludes = []string{
	".git/**",
	"**/.DS_Store",
	"**/*.psd",
	"**/Thumbs.db",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:            8080,
		BookingURL:      DefaultBookingURL,
		ScrollThreshold: DefaultScrollThreshold,
		OutputDir:       "dist",
		PublicDir:       "public",
		Include:         slices.Clone(DefaultIncludes),
		Exclude:         slices.Clone(DefaultExcludes),
	}
}
