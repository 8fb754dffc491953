package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a field name for fuzzy comparison. Each dotted segment
// is lower-cased and stripped of '_', '-' and spaces; the dots are kept so
// that "user.firstName" and "User.first_name" normalize alike while "user.x"
// and "userx" stay distinct.
func NormalizeName(name string) string {
	var b strings.Builder

	b.Grow(len(name))

	for _, r := range name {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Segments splits a field name on '.'; "" yields no segments.
func Segments(name string) []string {
	if name == "" {
		return nil
	}

	return strings.Split(name, ".")
}

// LastSegment returns the leaf segment of a dotted name.
func LastSegment(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}

	return name
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
