package page

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/kysno/kysno/internal/content"
)

const testBookingURL = "https://calendly.com/bryceberczik-dev/30min"

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(content.Default(), Options{
		BookingURL:      testBookingURL,
		ScrollThreshold: 20,
		PagePath:        "/",
		StaticBase:      "/static/",
		AssetBase:       "/assets/",
		Year:            2026,
	})
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func render(t *testing.T, r *Renderer, shell *Shell) string {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Render(&buf, shell); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return buf.String()
}

func TestNewRendererRequiresBookingURL(t *testing.T) {
	if _, err := NewRenderer(content.Default(), Options{}); err == nil {
		t.Error("expected error without booking url")
	}
	if _, err := NewRenderer(nil, Options{BookingURL: testBookingURL}); err == nil {
		t.Error("expected error without content")
	}
}

func TestRenderSectionsInOrder(t *testing.T) {
	html := render(t, newTestRenderer(t), nil)

	markers := []string{
		`data-testid="navbar"`,
		`id="home"`,
		`data-testid="text-problem-headline"`,
		`id="services"`,
		`data-testid="card-stat-0"`,
		`id="pricing"`,
		`id="contact"`,
		`<footer`,
	}
	last := -1
	for _, m := range markers {
		idx := strings.Index(html, m)
		if idx < 0 {
			t.Fatalf("missing %s", m)
		}
		if idx <= last {
			t.Errorf("%s rendered out of order", m)
		}
		last = idx
	}
}

func TestRenderBookCallLinks(t *testing.T) {
	html := render(t, newTestRenderer(t), nil)

	re := regexp.MustCompile(`<a href="([^"]*)" target="_blank" rel="noopener noreferrer"[^>]*data-book-call`)
	matches := re.FindAllStringSubmatch(html, -1)
	if len(matches) != 5 {
		t.Fatalf("expected 5 booking controls, got %d", len(matches))
	}
	for _, m := range matches {
		if m[1] != testBookingURL {
			t.Errorf("booking control links to %q, want %q", m[1], testBookingURL)
		}
	}
	if got := strings.Count(html, "data-book-call"); got != len(matches) {
		t.Errorf("%d data-book-call attributes but %d new-tab links", got, len(matches))
	}
}

func TestRenderPricingTiers(t *testing.T) {
	html := render(t, newTestRenderer(t), nil)

	start := strings.Index(html, `id="pricing"`)
	end := strings.Index(html, `id="contact"`)
	pricing := html[start:end]

	tiers := strings.Split(pricing, `data-testid="card-pricing-`)[1:]
	if len(tiers) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(tiers))
	}
	want := []struct {
		slug     string
		features int
	}{
		{"starter", 5},
		{"standard", 7},
		{"growth", 6},
	}
	for i, w := range want {
		if !strings.HasPrefix(tiers[i], w.slug+`"`) {
			t.Errorf("tier %d: expected %s", i, w.slug)
		}
		if got := strings.Count(tiers[i], `class="tier__feature"`); got != w.features {
			t.Errorf("tier %s: got %d features, want %d", w.slug, got, w.features)
		}
	}
	if strings.Count(pricing, "Most Popular") != 1 {
		t.Error("expected exactly one popular badge")
	}
	if !strings.Contains(tiers[1], "icon--check-primary") {
		t.Error("popular tier should use primary check icons")
	}
	if strings.Contains(tiers[0], "icon--check-primary") {
		t.Error("starter tier should use muted check icons")
	}
	if !strings.Contains(pricing, "$1,500 – $2,000") {
		t.Error("setup fee missing")
	}
}

func TestRenderNavbarStyle(t *testing.T) {
	r := newTestRenderer(t)
	shell := r.NewShell()

	html := render(t, r, shell)
	if !strings.Contains(html, `class="navbar navbar--transparent"`) {
		t.Error("expected transparent navbar at the top")
	}
	if !strings.Contains(html, `data-scroll-threshold="20"`) {
		t.Error("scroll threshold not passed to the page")
	}

	shell.OnScroll(120)
	html = render(t, r, shell)
	if !strings.Contains(html, `class="navbar navbar--opaque"`) {
		t.Error("expected opaque navbar after scrolling")
	}
}

func TestRenderNavbarZeroThreshold(t *testing.T) {
	r, err := NewRenderer(content.Default(), Options{BookingURL: testBookingURL, PagePath: "/", Year: 2026})
	if err != nil {
		t.Fatal(err)
	}
	if html := render(t, r, nil); !strings.Contains(html, `class="navbar navbar--opaque"`) {
		t.Error("zero threshold should render an opaque navbar at the top of the page")
	}
}

func TestRenderMenuState(t *testing.T) {
	r := newTestRenderer(t)
	shell := r.NewShell()

	closed := render(t, r, shell)
	if !strings.Contains(closed, `id="mobile-menu" hidden`) {
		t.Error("mobile menu should be hidden when closed")
	}
	if !strings.Contains(closed, `href="/?menu=open"`) {
		t.Error("toggle should open the menu")
	}
	if !strings.Contains(closed, `href="#services"`) {
		t.Error("nav links should be in-page anchors")
	}

	shell.ToggleMenu()
	open := render(t, r, shell)
	if strings.Contains(open, `id="mobile-menu" hidden`) {
		t.Error("mobile menu should be visible when open")
	}
	if !strings.Contains(open, `aria-expanded="true"`) {
		t.Error("toggle should report expanded")
	}
	if !strings.Contains(open, `href="/#services"`) {
		t.Error("nav links should reload the page to close the menu")
	}
}

func TestRenderFragmentMenu(t *testing.T) {
	r, err := NewRenderer(content.Default(), Options{
		BookingURL:   testBookingURL,
		PagePath:     "index.html",
		FragmentMenu: true,
		Year:         2026,
	})
	if err != nil {
		t.Fatal(err)
	}
	html := render(t, r, nil)
	if !strings.Contains(html, `href="#mobile-menu" class="navbar__toggle"`) {
		t.Error("toggle should target the menu fragment")
	}
	if strings.Contains(html, "?menu=open") {
		t.Error("fragment menu should not link to ?menu=open")
	}
	if !strings.Contains(string(Stylesheet()), ".mobile-menu:target") {
		t.Error("stylesheet should open the targeted menu")
	}
}

func TestRenderNavigationAnchors(t *testing.T) {
	html := render(t, newTestRenderer(t), nil)
	for _, a := range []string{"services", "pricing", "contact"} {
		if !strings.Contains(html, `data-testid="nav-item-`+a+`"`) {
			t.Errorf("missing nav item %s", a)
		}
		if !strings.Contains(html, `id="`+a+`"`) {
			t.Errorf("missing section %s", a)
		}
	}
	if !strings.Contains(html, `data-nav="home"`) {
		t.Error("logo should navigate home")
	}
}

func TestRenderFooterAndCTA(t *testing.T) {
	html := render(t, newTestRenderer(t), nil)
	if !strings.Contains(html, "&copy; 2026 Kysno Growth Agency. All rights reserved.") {
		t.Error("footer copyright missing")
	}
	if !strings.Contains(html, "<strong>Start your 1–3 month performance trial</strong>") {
		t.Error("cta emphasis not rendered")
	}
}

func TestRenderLiveReload(t *testing.T) {
	r, err := NewRenderer(content.Default(), Options{BookingURL: testBookingURL, PagePath: "/", LiveReload: true})
	if err != nil {
		t.Fatal(err)
	}
	html := render(t, r, nil)
	if !strings.Contains(html, `data-live-reload="/ws/reload"`) {
		t.Error("live reload attribute missing")
	}
	if strings.Contains(render(t, newTestRenderer(t), nil), "data-live-reload") {
		t.Error("live reload should be off by default")
	}
}

func TestEveryContentIconIsDrawable(t *testing.T) {
	c := content.Default()
	for _, card := range append(c.Problem.Cards, c.Services.Cards...) {
		if icon(card.Icon, "x") == "" {
			t.Errorf("no svg for icon %q", card.Icon)
		}
	}
	if icon("rocket", "x") != "" {
		t.Error("unknown icon should render nothing")
	}
}

func TestInlineMarkdown(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"a **bold** move", "a <strong>bold</strong> move"},
		{"_quiet_", "<em>quiet</em>"},
		{`"hope marketing."`, "&quot;hope marketing.&quot;"},
	}
	for _, tt := range tests {
		if got := string(inline(tt.in)); got != tt.want {
			t.Errorf("inline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if strings.Contains(string(inline("<script>x</script>")), "<script>") {
		t.Error("raw html should not pass through")
	}
}

func TestLabel(t *testing.T) {
	if got := label(AnchorServices); got != "Services" {
		t.Errorf("label = %q", got)
	}
}
