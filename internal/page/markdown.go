package page

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// inlineMarkdown renders short copy such as "**bold** and _em_".
var inlineMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// inline converts a single paragraph of markdown to HTML without the
// wrapping <p> element. Raw HTML in the source is omitted.
func inline(src string) template.HTML {
	var buf bytes.Buffer
	if err := inlineMarkdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	out := strings.TrimSpace(buf.String())
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return template.HTML(out)
}
