package fieldtype

import "strings"

// Separator splits a field name into its object path segments.
const Separator = '.'

// Alias maps an alternate field name onto a concrete field path.
type Alias struct {
	Name string // e.g. "heading"
	Path string // e.g. "title"
}

// String returns "name -> path".
func (a Alias) String() string {
	return a.Name + " -> " + a.Path
}

// Depth returns the number of path segments in name: one plus the number of
// separators. "a" has depth 1, "a.b.c" has depth 3.
func Depth(name string) int {
	return strings.Count(name, string(Separator)) + 1
}
