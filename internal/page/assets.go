package page

// Stylesheet returns the page's CSS.
func Stylesheet() []byte { return []byte(cssContent) }

// Script returns the page's JavaScript.
func Script() []byte { return []byte(jsContent) }
