// Package diag defines the structured diagnostic records produced by the
// translator-output scanner and the unresolved-failure map the repair
// engine reports back to callers.
//
// Key capabilities:
//   - One record per translation failure (name, message, position, span)
//   - Ordered collection preserving source order of appearance
//   - Name-keyed unresolved map with near-miss suggestions
//   - Colorized terminal rendering for the CLI
package diag
