package mapping

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"field-lookup/internal/match"
)

// FieldPath is a parsed dotted field name.
type FieldPath struct {
	Segments []string
}

// ParsePath parses and validates a dotted field name such as "user.name".
// Segments must be non-empty, must not start or end with whitespace and
// must not contain the '*' wildcard.
func ParsePath(path string) (FieldPath, error) {
	if path == "" {
		return FieldPath{}, errors.New("empty path")
	}

	segments := match.Segments(path)

	for _, seg := range segments {
		if seg == "" {
			return FieldPath{}, fmt.Errorf("invalid path %q: empty segment", path)
		}

		if strings.ContainsRune(seg, '*') {
			return FieldPath{}, fmt.Errorf("invalid path %q: wildcard in segment %q", path, seg)
		}

		if strings.TrimFunc(seg, unicode.IsSpace) != seg {
			return FieldPath{}, fmt.Errorf("invalid path %q: surrounding whitespace in segment %q", path, seg)
		}
	}

	return FieldPath{Segments: segments}, nil
}

// String joins the segments back into a dotted name.
func (p FieldPath) String() string {
	return strings.Join(p.Segments, ".")
}

// Depth returns the number of segments.
func (p FieldPath) Depth() int {
	return len(p.Segments)
}

// Parent returns the path without its last segment, and false for a
// single-segment path.
func (p FieldPath) Parent() (FieldPath, bool) {
	if len(p.Segments) < 2 {
		return FieldPath{}, false
	}

	return FieldPath{Segments: p.Segments[:len(p.Segments)-1]}, true
}

// JoinPath appends name to the dotted prefix; an empty prefix yields name.
func JoinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}
