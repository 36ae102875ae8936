// Package scan locates translator failure markers embedded in generated
// binding source and extracts one structured diagnostic per marker.
//
// The scanner is deliberately not a parser. It walks the source line by
// line with explicit byte-offset tracking and recognizes exactly one fixed
// textual shape: a declaration bound to a failure marker carrying the
// translator's message, followed by the comment line citing the original
// header position. Everything else is left untouched, and input that
// matches nothing yields zero diagnostics rather than an error.
package scan
