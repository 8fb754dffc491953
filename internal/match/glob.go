package match

import "github.com/ryanuber/go-glob"

// Simple reports whether name matches pattern, where '*' matches any
// sequence of characters (including separators) and every other character
// matches itself. A pattern without '*' must equal name.
func Simple(pattern, name string) bool {
	return glob.Glob(pattern, name)
}

// SimpleAny reports whether name matches at least one of patterns.
func SimpleAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if Simple(p, name) {
			return true
		}
	}

	return false
}
