package page

// Anchor identifies a section the navigation can scroll to.
type Anchor string

const (
	AnchorHome     Anchor = "home"
	AnchorServices Anchor = "services"
	AnchorPricing  Anchor = "pricing"
	AnchorContact  Anchor = "contact"
)

// Anchors lists every navigable section in page order.
var Anchors = []Anchor{AnchorHome, AnchorServices, AnchorPricing, AnchorContact}

// ParseAnchor maps a section id to its Anchor.
func ParseAnchor(id string) (Anchor, bool) {
	for _, a := range Anchors {
		if string(a) == id {
			return a, true
		}
	}
	return "", false
}

// NavStyle is the navbar's visual treatment.
type NavStyle string

const (
	// NavTransparent is used while the page sits near the top.
	NavTransparent NavStyle = "transparent"
	// NavOpaque is the blurred, bordered bar shown once the page is scrolled.
	NavOpaque NavStyle = "opaque"
)

// Scroller moves the viewport. ScrollIntoView reports false when no
// section with the anchor exists.
type Scroller interface {
	ScrollIntoView(anchor Anchor) bool
}

// Shell holds the transient UI state of the landing page: whether it has
// been scrolled past the threshold and whether the mobile menu is open.
type Shell struct {
	threshold int
	scroller  Scroller

	scrolled bool
	menuOpen bool
}

// NewShell returns a Shell at the top of the page with the menu closed.
// The top of the page already counts as scrolled when threshold is zero.
// A nil scroller accepts every known anchor without moving anything.
func NewShell(threshold int, scroller Scroller) *Shell {
	if scroller == nil {
		scroller = anchorScroller{}
	}
	return &Shell{threshold: threshold, scroller: scroller, scrolled: threshold <= 0}
}

// Threshold returns the scroll offset at which the navbar turns opaque.
func (s *Shell) Threshold() int { return s.threshold }

// OnScroll records a new vertical scroll offset.
func (s *Shell) OnScroll(y int) {
	s.scrolled = y >= s.threshold
}

// Scrolled reports whether the page is at or past the threshold.
func (s *Shell) Scrolled() bool { return s.scrolled }

// NavStyle returns the navbar style for the current scroll position.
func (s *Shell) NavStyle() NavStyle {
	if s.scrolled {
		return NavOpaque
	}
	return NavTransparent
}

// MenuOpen reports whether the mobile menu is expanded.
func (s *Shell) MenuOpen() bool { return s.menuOpen }

// ToggleMenu flips the mobile menu between open and closed.
func (s *Shell) ToggleMenu() {
	s.menuOpen = !s.menuOpen
}

// SetMenuOpen forces the mobile menu state.
func (s *Shell) SetMenuOpen(open bool) {
	s.menuOpen = open
}

// Navigate scrolls to the section for anchor and closes the mobile menu.
// Nothing changes if the section does not exist.
func (s *Shell) Navigate(anchor Anchor) bool {
	if !s.scroller.ScrollIntoView(anchor) {
		return false
	}
	s.menuOpen = false
	return true
}

// anchorScroller accepts the fixed page anchors. The browser performs the
// actual scrolling.
type anchorScroller struct{}

func (anchorScroller) ScrollIntoView(anchor Anchor) bool {
	_, ok := ParseAnchor(string(anchor))
	return ok
}
