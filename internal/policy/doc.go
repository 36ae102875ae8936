// Package policy defines the replacement policy that decides how each
// translation-failure diagnostic is repaired.
//
// A policy is data with one embedded function hook. The replacement source
// is a tagged variant — a fixed literal, a name-keyed lookup map, or an
// arbitrary rule invoked with the full diagnostic record — evaluated
// through one interface so the repair engine never branches on kind.
//
// # Precedence
//
// Highest first:
//  1. Explicit replacement, when it yields non-empty text
//  2. Underscore suppression (names starting with "_")
//  3. Benign-error suppression (the fixed variadic-helper set)
//  4. Leave the original text — the failure persists and is reported
//
// # YAML policy files
//
//	remove_underscore: true
//	remove_benign_errors: true
//	replacements:
//	  FOO: "pub const FOO = @as(c_int, 1);"
//	  BAR: [pub, const, BAR, =, "0;"]
//	benign:
//	  - va_start
//	  - va_end
//
// Replacement values may be a single string or a list of strings joined
// space-separated. Rule hooks are programmatic only; they cannot be
// expressed in YAML.
package policy
