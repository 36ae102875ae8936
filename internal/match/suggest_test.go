package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"va_start", "va_end", "SDL_Init", "FOO_MAX"}

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{
			name:  "near miss by one character",
			query: "va_star",
			limit: 3,
			want:  []string{"va_start"},
		},
		{
			name:  "case and separator insensitive",
			query: "VaStart",
			limit: 3,
			want:  []string{"va_start"},
		},
		{
			name:  "exact candidate is excluded",
			query: "SDL_Init",
			limit: 3,
			want:  nil,
		},
		{
			name:  "nothing plausible",
			query: "completely_different",
			limit: 3,
			want:  nil,
		},
		{
			name:  "zero limit",
			query: "va_star",
			limit: 0,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.query, candidates, tt.limit))
		})
	}
}

func TestSuggestRanksNearestFirst(t *testing.T) {
	candidates := []string{"abcd", "abce", "abxy"}

	got := Suggest("abcf", candidates, 2)
	assert.Len(t, got, 2)
	// Both one edit away, lexicographic tiebreak
	assert.Equal(t, []string{"abcd", "abce"}, got)
}
