// Package pipeline composes translation, repair, and normalization into
// the end-to-end header-to-binding flow.
//
// The core stages are pure, synchronous text transformations with no
// shared state between invocations, so batch runs over multiple headers
// parallelize freely at the whole-header level.
package pipeline
