package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPricingTiers(t *testing.T) {
	c := Default()

	want := []struct {
		name     string
		price    string
		features int
		popular  bool
	}{
		{"Starter", "$500", 5, false},
		{"Standard", "$750", 7, true},
		{"Growth", "$1,200", 6, false},
	}
	if len(c.Pricing.Tiers) != len(want) {
		t.Fatalf("expected %d tiers, got %d", len(want), len(c.Pricing.Tiers))
	}
	for i, w := range want {
		tier := c.Pricing.Tiers[i]
		if tier.Name != w.name {
			t.Errorf("tier %d name: got %q, want %q", i, tier.Name, w.name)
		}
		if tier.Price != w.price {
			t.Errorf("tier %q price: got %q, want %q", tier.Name, tier.Price, w.price)
		}
		if len(tier.Features) != w.features {
			t.Errorf("tier %q features: got %d, want %d", tier.Name, len(tier.Features), w.features)
		}
		if tier.Popular != w.popular {
			t.Errorf("tier %q popular: got %v, want %v", tier.Name, tier.Popular, w.popular)
		}
	}
	if c.Pricing.SetupFee != "$1,500 – $2,000" {
		t.Errorf("setup fee: got %q", c.Pricing.SetupFee)
	}
}

func TestDefaultSections(t *testing.T) {
	c := Default()

	if c.Brand != "Kysno" {
		t.Errorf("brand: got %q, want %q", c.Brand, "Kysno")
	}
	if len(c.Hero.Stats) != 3 {
		t.Errorf("hero stats: got %d, want 3", len(c.Hero.Stats))
	}
	if len(c.Problem.Cards) != 4 {
		t.Errorf("problem cards: got %d, want 4", len(c.Problem.Cards))
	}
	if len(c.Services.Cards) != 6 {
		t.Errorf("service cards: got %d, want 6", len(c.Services.Cards))
	}
	if len(c.Proof.Stats) != 3 {
		t.Errorf("proof stats: got %d, want 3", len(c.Proof.Stats))
	}
	if c.Footer.Company != "Kysno Growth Agency" {
		t.Errorf("footer company: got %q", c.Footer.Company)
	}
	if !strings.Contains(c.CTA.Body, "**Start your 1–3 month performance trial**") {
		t.Errorf("cta body lost its emphasis: %q", c.CTA.Body)
	}
}

func TestDefaultYAMLIsCopy(t *testing.T) {
	data := DefaultYAML()
	data[0] = '#'
	if Default().Brand != "Kysno" {
		t.Error("mutating DefaultYAML output changed the built-in copy")
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Brand != "Kysno" {
		t.Errorf("expected built-in copy, got brand %q", c.Brand)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yml")

	data := strings.Replace(string(DefaultYAML()), "brand: Kysno", "brand: Acme", 1)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Brand != "Acme" {
		t.Errorf("brand: got %q, want %q", c.Brand, "Acme")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing content file")
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	data := string(DefaultYAML()) + "\nsidebar: true\n"
	if _, err := Parse([]byte(data)); err == nil {
		t.Error("expected error for unknown top-level key")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Content)
		wantErr string
	}{
		{"valid", func(c *Content) {}, ""},
		{"no brand", func(c *Content) { c.Brand = "" }, "brand"},
		{"two tiers", func(c *Content) { c.Pricing.Tiers = c.Pricing.Tiers[:2] }, "exactly 3 tiers"},
		{"four tiers", func(c *Content) {
			c.Pricing.Tiers = append(c.Pricing.Tiers, c.Pricing.Tiers[0])
		}, "exactly 3 tiers"},
		{"tier without name", func(c *Content) { c.Pricing.Tiers[0].Name = "" }, "name is required"},
		{"tier without price", func(c *Content) { c.Pricing.Tiers[1].Price = "" }, "price is required"},
		{"tier without features", func(c *Content) { c.Pricing.Tiers[2].Features = nil }, "at least one feature"},
		{"two popular", func(c *Content) { c.Pricing.Tiers[0].Popular = true }, "at most one"},
		{"unknown icon", func(c *Content) { c.Services.Cards[3].Icon = "rocket" }, "unknown icon"},
		{"card without title", func(c *Content) { c.Problem.Cards[0].Title = "" }, "title is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestKnownIcon(t *testing.T) {
	if !KnownIcon(IconPieChart) {
		t.Error("pie-chart should be known")
	}
	if KnownIcon("rocket") {
		t.Error("rocket should not be known")
	}
}
