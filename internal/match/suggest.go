package match

import (
	"sort"
	"strings"
)

// maxSuggestDistance caps how far a candidate may be from the query
// before it stops being a plausible near miss.
const maxSuggestDistance = 3

// Suggest returns up to limit candidates whose names are close to name,
// nearest first. Comparison is case- and separator-insensitive so that
// "VaStart" suggests "va_start". Ties break lexicographically for
// deterministic output.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}

	query := normalizeName(name)

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		d := Levenshtein(query, normalizeName(c))
		if d > maxSuggestDistance {
			continue
		}

		ranked = append(ranked, scored{name: c, dist: d})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].dist != ranked[j].dist {
			return ranked[i].dist < ranked[j].dist
		}

		return ranked[i].name < ranked[j].name
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.name
	}

	return out
}

// normalizeName lowercases and strips separators so near misses that
// differ only in casing or underscores score as identical.
func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")

	return s
}
