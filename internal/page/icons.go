package page

import (
	"html/template"

	"github.com/kysno/kysno/internal/content"
)

// iconPaths holds the inner SVG markup of each icon, drawn on a 24x24 grid.
var iconPaths = map[content.Icon]string{
	content.IconArrowRight:   `<path d="M5 12h14"/><path d="m12 5 7 7-7 7"/>`,
	content.IconArrowUpRight: `<path d="M7 7h10v10"/><path d="M7 17 17 7"/>`,
	content.IconBarChart:     `<path d="M3 3v18h18"/><path d="M18 17V9"/><path d="M13 17V5"/><path d="M8 17v-3"/>`,
	content.IconCheckCircle:  `<circle cx="12" cy="12" r="10"/><path d="m9 12 2 2 4-4"/>`,
	content.IconPieChart:     `<path d="M21.21 15.89A10 10 0 1 1 8 2.83"/><path d="M22 12A10 10 0 0 0 12 2v10z"/>`,
	content.IconTarget:       `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`,
	content.IconTrendingUp:   `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
	content.IconUsers:        `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	"menu":                   `<line x1="4" x2="20" y1="12" y2="12"/><line x1="4" x2="20" y1="6" y2="6"/><line x1="4" x2="20" y1="18" y2="18"/>`,
	"x":                      `<path d="M18 6 6 18"/><path d="m6 6 12 12"/>`,
}

// icon renders a named icon as an inline SVG with the given class.
// Unknown names render nothing.
func icon(name content.Icon, class string) template.HTML {
	paths, ok := iconPaths[name]
	if !ok {
		return ""
	}
	return template.HTML(`<svg class="icon ` + template.HTMLEscapeString(class) +
		`" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">` +
		paths + `</svg>`)
}
