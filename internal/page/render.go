package page

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/kysno/kysno/internal/content"
)

// Options control how the page links to its assets and the outside world.
type Options struct {
	// BookingURL is opened in a new tab by every "Book a Call" control.
	BookingURL string
	// ScrollThreshold is the offset, in pixels, at which the navbar turns opaque.
	ScrollThreshold int
	// PagePath is the URL of the page itself, e.g. "/" or "index.html".
	PagePath string
	// StaticBase prefixes style.css and script.js.
	StaticBase string
	// AssetBase prefixes files from the public directory.
	AssetBase string
	// FragmentMenu opens the no-script mobile menu through the #mobile-menu
	// fragment instead of ?menu=open, for hosts that ignore query strings.
	FragmentMenu bool
	// LiveReload makes the page listen on the dev server's reload socket.
	LiveReload bool
	// Year is printed in the footer; zero means the current year.
	Year int
}

// Renderer renders the landing page for one set of content.
type Renderer struct {
	tmpl    *template.Template
	content *content.Content
	opts    Options
}

// navItem is a link that scrolls to a section.
type navItem struct {
	Label  string
	Anchor Anchor
	Href   string
}

// view is the data passed to pageTemplate.
type view struct {
	C              *content.Content
	BookingURL     string
	Threshold      int
	NavStyle       NavStyle
	MenuOpen       bool
	PagePath       string
	StaticBase     string
	AssetBase      string
	LiveReload     bool
	Year           int
	HomeHref       string
	PricingHref    string
	MenuToggleHref string
	NavItems       []navItem
	FooterLinks    []navItem
}

// NewRenderer parses the page template for c.
func NewRenderer(c *content.Content, opts Options) (*Renderer, error) {
	if c == nil {
		return nil, fmt.Errorf("content is required")
	}
	if opts.BookingURL == "" {
		return nil, fmt.Errorf("booking url is required")
	}

	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"icon":   icon,
		"inline": inline,
		"lower":  strings.ToLower,
		"checkClass": func(popular bool) string {
			if popular {
				return "icon--check-primary"
			}
			return "icon--check"
		},
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	return &Renderer{tmpl: tmpl, content: c, opts: opts}, nil
}

// Content returns the copy this renderer draws.
func (r *Renderer) Content() *content.Content { return r.content }

// NewShell returns a Shell using the renderer's scroll threshold.
func (r *Renderer) NewShell() *Shell {
	return NewShell(r.opts.ScrollThreshold, nil)
}

// Render writes the full HTML document for the given shell state.
func (r *Renderer) Render(w io.Writer, shell *Shell) error {
	if shell == nil {
		shell = r.NewShell()
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, r.view(shell)); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) view(shell *Shell) view {
	year := r.opts.Year
	if year == 0 {
		year = time.Now().Year()
	}

	v := view{
		C:          r.content,
		BookingURL: r.opts.BookingURL,
		Threshold:  shell.Threshold(),
		NavStyle:   shell.NavStyle(),
		MenuOpen:   shell.MenuOpen(),
		PagePath:   r.opts.PagePath,
		StaticBase: r.opts.StaticBase,
		AssetBase:  r.opts.AssetBase,
		LiveReload: r.opts.LiveReload,
		Year:       year,
	}

	v.HomeHref = r.sectionHref(AnchorHome, v.MenuOpen)
	v.PricingHref = r.sectionHref(AnchorPricing, v.MenuOpen)
	switch {
	case r.opts.FragmentMenu:
		v.MenuToggleHref = "#mobile-menu"
	case v.MenuOpen:
		v.MenuToggleHref = r.opts.PagePath
	default:
		v.MenuToggleHref = r.opts.PagePath + "?menu=open"
	}

	for _, a := range Anchors {
		item := navItem{Label: label(a), Anchor: a, Href: r.sectionHref(a, v.MenuOpen)}
		if a != AnchorHome {
			v.NavItems = append(v.NavItems, item)
		}
		v.FooterLinks = append(v.FooterLinks, item)
	}
	return v
}

// sectionHref links to a section. While the menu is open the link goes
// through the page path so that following it also closes the menu when
// scripts are unavailable.
func (r *Renderer) sectionHref(a Anchor, menuOpen bool) string {
	if menuOpen {
		return r.opts.PagePath + "#" + string(a)
	}
	return "#" + string(a)
}

// label is the navigation text for an anchor.
func label(a Anchor) string {
	s := string(a)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
