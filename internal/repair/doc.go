// Package repair substitutes translator failure markers with replacement
// text decided by a layered policy.
//
// The engine makes a single deterministic pass: every diagnostic found by
// the scanner is resolved through the policy precedence chain in order of
// appearance, resolved spans are spliced out verbatim, and the result is
// re-scanned. Diagnostics that survive the re-scan are reported back as a
// structured map instead of source — the dominant, expected failure mode,
// never a crash. There is no retry or alternate-strategy fallback.
package repair
