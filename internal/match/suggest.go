package match

import (
	"sort"

	"field-lookup/internal/common"
)

// Suggestion is a known field name ranked against an unknown one.
type Suggestion struct {
	Name  string
	Score float64 // similarity in [0, 1], higher is closer
}

// SuggestionList is a list of suggestions with ranking helpers.
type SuggestionList []Suggestion

// Suggestion thresholds.
const (
	// DefaultMinScore is the lowest score Suggest keeps.
	DefaultMinScore = 0.6
	// leafMatchScore is the floor granted when the leaf segments agree,
	// so "usr.name" still suggests "user.name".
	leafMatchScore = 0.75
)

// Suggest ranks candidates by similarity to name and returns at most limit
// suggestions scoring at least DefaultMinScore. Exact matches are skipped:
// a name that is known needs no suggestion. limit <= 0 means no limit.
func Suggest(name string, candidates []string, limit int) SuggestionList {
	target := NormalizeName(name)
	targetLeaf := NormalizeName(LastSegment(name))

	var list SuggestionList

	seen := make(map[string]struct{}, len(candidates))

	for _, c := range candidates {
		if c == name {
			continue
		}

		if _, dup := seen[c]; dup {
			continue
		}

		seen[c] = struct{}{}

		score := Similarity(target, NormalizeName(c))
		if targetLeaf != "" && NormalizeName(LastSegment(c)) == targetLeaf {
			score = max(score, leafMatchScore)
		}

		list = append(list, Suggestion{Name: c, Score: score})
	}

	list = list.AboveThreshold(DefaultMinScore)
	sort.Sort(list)

	if limit > 0 {
		list = list.Top(limit)
	}

	return list
}

// Names returns the suggested names in rank order.
func (s SuggestionList) Names() []string {
	names := make([]string, len(s))
	for i := range s {
		names[i] = s[i].Name
	}

	return names
}

// Len implements sort.Interface.
func (s SuggestionList) Len() int { return len(s) }

// Swap implements sort.Interface.
func (s SuggestionList) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (s SuggestionList) Less(i, j int) bool {
	if s[i].Score != s[j].Score {
		return s[i].Score > s[j].Score
	}

	return s[i].Name < s[j].Name
}

// Top returns the first n suggestions.
func (s SuggestionList) Top(n int) SuggestionList {
	if n >= len(s) {
		return s
	}

	return s[:n]
}

// Best returns the best suggestion and true, or false if there is none.
func (s SuggestionList) Best() (Suggestion, bool) {
	return common.First(s)
}

// AboveThreshold returns the suggestions scoring at least threshold.
func (s SuggestionList) AboveThreshold(threshold float64) SuggestionList {
	var result SuggestionList

	for _, sug := range s {
		if sug.Score >= threshold {
			result = append(result, sug)
		}
	}

	return result
}
