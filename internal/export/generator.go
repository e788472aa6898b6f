package export

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kysno/kysno/internal/page"
	"github.com/kysno/kysno/internal/progress"
)

// Generator writes the landing page and its assets as a static site.
type Generator struct {
	OutputDir string
	PublicDir string
	Include   []string
	Exclude   []string
	Renderer  *page.Renderer
	Reporter  progress.Reporter
}

// file is one output of the export.
type file struct {
	rel   string
	write func(dst string) error
}

// Generate builds the static site. Returns the number of files written.
func (g *Generator) Generate() (int, error) {
	if g.Renderer == nil {
		return 0, fmt.Errorf("renderer is required")
	}
	if g.OutputDir == "" {
		return 0, fmt.Errorf("output directory is required")
	}

	files := []file{
		{rel: "index.html", write: g.writePage},
		{rel: "static/style.css", write: writeBytes(page.Stylesheet())},
		{rel: "static/script.js", write: writeBytes(page.Script())},
	}

	public, err := g.publicFiles()
	if err != nil {
		return 0, err
	}
	for _, rel := range public {
		src := filepath.Join(g.PublicDir, filepath.FromSlash(rel))
		files = append(files, file{
			rel:   "assets/" + rel,
			write: copyFrom(src),
		})
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Discard{}
	}
	reporter.Start(len(files))
	defer reporter.Finish()

	for i, f := range files {
		dst := filepath.Join(g.OutputDir, filepath.FromSlash(f.rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return i, err
		}
		if err := f.write(dst); err != nil {
			return i, fmt.Errorf("writing %s: %w", f.rel, err)
		}
		reporter.Update(i+1, f.rel)
	}

	return len(files), nil
}

// writePage renders the page with the menu closed and the bar transparent.
func (g *Generator) writePage(dst string) error {
	var buf bytes.Buffer
	if err := g.Renderer.Render(&buf, g.Renderer.NewShell()); err != nil {
		return err
	}
	return os.WriteFile(dst, buf.Bytes(), 0o644)
}

// publicFiles lists files under PublicDir selected by the include and
// exclude globs, as slash-separated relative paths. A missing public
// directory yields no files.
func (g *Generator) publicFiles() ([]string, error) {
	if g.PublicDir == "" {
		return nil, nil
	}
	info, err := os.Stat(g.PublicDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("accessing public dir %s: %w", g.PublicDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("public dir %s is not a directory", g.PublicDir)
	}

	var out []string
	err = filepath.WalkDir(g.PublicDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(g.PublicDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if selected(rel, g.Include, g.Exclude) {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking public dir: %w", err)
	}
	return out, nil
}

func writeBytes(data []byte) func(string) error {
	return func(dst string) error {
		return os.WriteFile(dst, data, 0o644)
	}
}

func copyFrom(src string) func(string) error {
	return func(dst string) error {
		in, err := os.Open(src)
		if err != nil {
			return err
		}
		defer in.Close()

		out, err := os.Create(dst)
		if err != nil {
			return err
		}
		if _, err := io.Copy(out, in); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	}
}
