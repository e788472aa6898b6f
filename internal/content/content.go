package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// TierCount is the number of plans the pricing table shows.
const TierCount = 3

// DefaultYAML returns the built-in page copy as YAML, suitable as a
// starting point for a custom content file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Default returns the built-in page copy.
func Default() *Content {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: built-in copy is invalid: %v", err))
	}
	return c
}

// Load reads page copy from path. An empty path yields the built-in copy.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates YAML page copy. Unknown keys are rejected so
// that typos do not silently drop copy from the page.
func Parse(data []byte) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the structural rules the page layout depends on.
func (c *Content) Validate() error {
	if c.Brand == "" {
		return fmt.Errorf("brand is required")
	}

	if len(c.Pricing.Tiers) != TierCount {
		return fmt.Errorf("pricing must have exactly %d tiers, got %d", TierCount, len(c.Pricing.Tiers))
	}
	popular := 0
	for i, tier := range c.Pricing.Tiers {
		if tier.Name == "" {
			return fmt.Errorf("pricing tier %d: name is required", i)
		}
		if tier.Price == "" {
			return fmt.Errorf("pricing tier %q: price is required", tier.Name)
		}
		if len(tier.Features) == 0 {
			return fmt.Errorf("pricing tier %q: at least one feature is required", tier.Name)
		}
		if tier.Popular {
			popular++
		}
	}
	if popular > 1 {
		return fmt.Errorf("at most one pricing tier may be popular, got %d", popular)
	}

	for _, group := range []struct {
		name  string
		cards []Card
	}{
		{"problem", c.Problem.Cards},
		{"services", c.Services.Cards},
	} {
		for i, card := range group.cards {
			if card.Title == "" {
				return fmt.Errorf("%s card %d: title is required", group.name, i)
			}
			if !knownIcons[card.Icon] {
				return fmt.Errorf("%s card %q: unknown icon %q", group.name, card.Title, card.Icon)
			}
		}
	}

	return nil
}

// KnownIcon reports whether name is an icon the page can draw.
func KnownIcon(name Icon) bool {
	return knownIcons[name]
}
