package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"title", "title", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single edits
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		// Multiple edits
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Runes, not bytes
		{"prénom", "prenom", 1},
		{"日本", "日本語", 1},

		// Field names
		{"user.name", "user.nmae", 2},
		{"labels.priority", "label.priority", 1},
		{"created_at", "updated_at", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			if reverse := Levenshtein(tt.b, tt.a); reverse != result {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, reversed = %d",
					tt.a, tt.b, result, reverse)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"title", "title", 1.0},
		{"abc", "xyz", 0.0},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
		{"abc", "ab", 1.0 - 1.0/3.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Similarity(tt.a, tt.b)
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestNameSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64
	}{
		{"user.firstName", "user.first_name", 1.0},
		{"User.Name", "user.name", 1.0},
		{"user-id", "user_id", 1.0},
		{"labels.priority", "label.priority", 0.9},
		{"title", "timestamp", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			score := NameSimilarity(tt.a, tt.b)
			if score < tt.minScore {
				t.Errorf("NameSimilarity(%q, %q) = %f, want >= %f", tt.a, tt.b, score, tt.minScore)
			}
		})
	}
}
