// Package match provides edit-distance scoring and near-miss suggestion
// ranking for declaration names.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks policy keys close to an unresolved declaration name
package match
