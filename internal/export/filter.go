package export

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// matchesAny checks if relPath matches any of the given glob patterns.
// Patterns are tried against the full relative path and the base name,
// so "*.png" matches at any depth.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

// selected reports whether relPath should be exported. An empty include
// list selects everything.
func selected(relPath string, include, exclude []string) bool {
	if len(include) > 0 && !matchesAny(relPath, include) {
		return false
	}
	return !matchesAny(relPath, exclude)
}
