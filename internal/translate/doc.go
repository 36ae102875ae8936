// Package translate invokes the external header-to-source translator and
// captures its generated output.
//
// The translator is a collaborator, not part of the repair core: this
// package owns the process boundary (argument contract, exit status,
// timeouts via context) and a disk cache of translator output keyed by
// header content and arguments. The core only ever sees the returned
// text blob; a failed invocation surfaces as an error here and as "no
// source to scan" upstream.
package translate
