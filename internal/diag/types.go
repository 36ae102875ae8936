package diag

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Diagnostic represents a single translation failure reported by the
// declaration translator inside its generated source.
type Diagnostic struct {
	// Name is the declaration the translator could not express.
	Name string
	// Message is the translator's human-readable explanation.
	Message string
	// Line and Column are the position the translator reported for the
	// failing construct in the original header.
	Line   int
	Column int
	// FullText is the exact span in the generated source that must be
	// replaced, including the location comment line the translator emits.
	FullText string
	// Start and End are byte offsets of FullText in the scanned source.
	// FullText occurs verbatim exactly once at [Start, End).
	Start int
	End   int
	// Suggestions are near-miss policy keys attached when the diagnostic
	// remains unresolved.
	Suggestions []string
}

// Pos returns the reported header position as "line:column".
func (d Diagnostic) Pos() string {
	return fmt.Sprintf("%d:%d", d.Line, d.Column)
}

// String returns a one-line human-readable rendering.
func (d Diagnostic) String() string {
	msg := fmt.Sprintf("%s (%s): %s", d.Name, d.Pos(), d.Message)
	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	return msg
}

// Unresolved maps declaration names to the diagnostic that the policy
// chain did not cover. When the same name fails in more than one declared
// form, the first occurrence wins; later ones are still present in the
// repaired source and will be rediscovered on the next run.
type Unresolved map[string]Diagnostic

// Add records a diagnostic unless one with the same name is already
// present. Returns true if the diagnostic was added.
func (u Unresolved) Add(d Diagnostic) bool {
	if _, ok := u[d.Name]; ok {
		return false
	}

	u[d.Name] = d

	return true
}

// IsEmpty returns true if no diagnostics remain unresolved.
func (u Unresolved) IsEmpty() bool {
	return len(u) == 0
}

// Names returns the unresolved declaration names in sorted order.
func (u Unresolved) Names() []string {
	names := make([]string, 0, len(u))
	for name := range u {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Error returns a combined error listing every unresolved diagnostic,
// or nil if the map is empty. Domain failures are values, not panics;
// this is the only caller-visible failure shape of the repair engine.
func (u Unresolved) Error() error {
	if u.IsEmpty() {
		return nil
	}

	parts := make([]string, 0, len(u))
	for _, name := range u.Names() {
		parts = append(parts, u[name].String())
	}

	return errors.New("unresolved diagnostics: " + strings.Join(parts, "; "))
}
