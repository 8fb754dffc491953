// Package match provides field name matching: simple wildcard patterns for
// name enumeration, and edit-distance ranking for "did you mean" suggestions
// on unknown field names.
//
// Key functions:
//   - Simple: '*' wildcard matching of a pattern against a field name
//   - NormalizeName: folds a dotted field name for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unknown one
package match
