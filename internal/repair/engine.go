package repair

import (
	"strings"

	"cbind-repair/internal/diag"
	"cbind-repair/internal/match"
	"cbind-repair/internal/policy"
	"cbind-repair/internal/scan"
)

// maxSuggestions bounds the near-miss hints attached to each unresolved
// diagnostic.
const maxSuggestions = 3

// Repair resolves every diagnostic in src through p and substitutes the
// outcomes. On success it returns the fully repaired source and a nil
// map. When at least one diagnostic remains after substitution, it
// returns empty source and the unresolved map keyed by declaration name,
// so the caller can refine the policy and retry.
//
// Source with zero diagnostics is returned unchanged. Policy lookup is
// per-occurrence: two diagnostics sharing a name are resolved
// independently, each against its own record.
func Repair(src string, p policy.Policy) (string, diag.Unresolved) {
	diags := scan.Scan(src)
	if len(diags) == 0 {
		return src, nil
	}

	repaired := substitute(src, diags, p)

	// Re-scan the substituted result. Earlier substitutions shift
	// surrounding text but must not create new diagnostics; anything
	// still matching here is unresolved.
	remaining := scan.Scan(repaired)
	if len(remaining) == 0 {
		return repaired, nil
	}

	unresolved := make(diag.Unresolved, len(remaining))
	keys := p.ExplicitKeys()

	for _, d := range remaining {
		d.Suggestions = match.Suggest(d.Name, keys, maxSuggestions)
		unresolved.Add(d)
	}

	return "", unresolved
}

// substitute splices replacement text over each resolved diagnostic span,
// left to right. Unresolved spans are copied through untouched so the
// re-scan finds them again.
func substitute(src string, diags []diag.Diagnostic, p policy.Policy) string {
	var sb strings.Builder

	sb.Grow(len(src))

	cursor := 0

	for _, d := range diags {
		sb.WriteString(src[cursor:d.Start])

		if text, ok := p.Resolve(d); ok {
			sb.WriteString(text)
		} else {
			sb.WriteString(d.FullText)
		}

		cursor = d.End
	}

	sb.WriteString(src[cursor:])

	return sb.String()
}
