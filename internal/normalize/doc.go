// Package normalize post-processes repaired binding source.
//
// Two structural transformations run, in order, as one pass each:
//
//  1. Duplicate type-alias pairs the translator emits for records — a
//     synthetic `struct_<Name>` declaration adjacent to an alias
//     `<Name> = struct_<Name>` — collapse to a single declaration under
//     the public name. Both orderings are recognized; collapsing happens
//     only when all involved names agree after stripping the synthetic
//     prefix. No fixed-point iteration: nested duplicates exposed by a
//     collapse are left for a later run.
//
//  2. Every extern function declaration with at least one parameter gets
//     an ordered parameter-name metadata declaration injected directly
//     before it, for later reflective argument binding. A zero-parameter
//     anchor declaration is appended once at the end so downstream
//     tooling always sees the metadata shape.
//
// Both transformations are idempotent on their own output.
package normalize
