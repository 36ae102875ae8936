package policy

import (
	"fmt"
	"strings"

	"cbind-repair/internal/diag"
)

// Replacement is one source of candidate replacement text. Implementations
// return their raw decision value and whether they have an opinion at all;
// the value is coerced to text by Text before substitution.
type Replacement interface {
	Resolve(d diag.Diagnostic) (any, bool)
}

// Literal replaces every diagnostic it is asked about with the same text.
type Literal string

// Resolve implements Replacement.
func (l Literal) Resolve(diag.Diagnostic) (any, bool) {
	return string(l), true
}

// Lookup maps declaration names to replacement values. Values follow the
// same coercion rules as any other decision value.
type Lookup map[string]any

// Resolve implements Replacement.
func (m Lookup) Resolve(d diag.Diagnostic) (any, bool) {
	v, ok := m[d.Name]
	return v, ok
}

// Rule is an arbitrary per-diagnostic hook. It receives the full record
// (name, message, span) and may decline by returning ok == false or a
// value that coerces to empty text.
type Rule func(d diag.Diagnostic) (any, bool)

// Resolve implements Replacement.
func (r Rule) Resolve(d diag.Diagnostic) (any, bool) {
	return r(d)
}

// DefaultBenign returns the fixed set of known-harmless untranslatable
// symbols: the variadic-argument helper macros. The set is part of the
// stable interface; callers extend coverage through explicit replacement
// entries, never by mutating this set silently.
func DefaultBenign() map[string]struct{} {
	return map[string]struct{}{
		"va_start":      {},
		"va_end":        {},
		"va_arg":        {},
		"va_copy":       {},
		"__va_list_tag": {},
	}
}

// Policy is the layered repair configuration evaluated once per
// diagnostic occurrence.
type Policy struct {
	// RemoveUnderscore suppresses any diagnostic whose declaration name
	// starts with an underscore.
	RemoveUnderscore bool

	// RemoveBenignErrors suppresses diagnostics whose declaration name is
	// in the Benign set.
	RemoveBenignErrors bool

	// Replacements is the explicit replacement source, or nil.
	Replacements Replacement

	// Benign is the suppression set consulted by RemoveBenignErrors.
	// Nil means DefaultBenign().
	Benign map[string]struct{}
}

// Default returns the policy with all options at their defaults.
func Default() Policy {
	return Policy{
		RemoveUnderscore:   true,
		RemoveBenignErrors: true,
		Benign:             DefaultBenign(),
	}
}

// Resolve evaluates the precedence chain for one diagnostic occurrence.
// It returns the replacement text and true when the diagnostic resolves
// (empty text signifies deletion of the span), or false when the failure
// persists. Resolution is per-occurrence: the same name may resolve
// differently when a Rule inspects the message.
func (p Policy) Resolve(d diag.Diagnostic) (string, bool) {
	if p.Replacements != nil {
		if v, ok := p.Replacements.Resolve(d); ok {
			if text := Text(v); text != "" {
				return text, true
			}
		}
	}

	if p.RemoveUnderscore && strings.HasPrefix(d.Name, "_") {
		return "", true
	}

	if p.RemoveBenignErrors {
		benign := p.Benign
		if benign == nil {
			benign = DefaultBenign()
		}

		if _, ok := benign[d.Name]; ok {
			return "", true
		}
	}

	return "", false
}

// ExplicitKeys returns the names the explicit replacement source knows
// about, when it is a Lookup. Used for near-miss suggestions on
// unresolved diagnostics.
func (p Policy) ExplicitKeys() []string {
	m, ok := p.Replacements.(Lookup)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	return keys
}

// Text coerces a decision value to replacement text under the uniform
// stringification rule: strings pass through, string sequences join
// space-separated, nil and false yield no text, other atomics stringify.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, " ")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, Text(item))
		}

		return strings.Join(parts, " ")
	case bool:
		if !val {
			return ""
		}

		return "true"
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
