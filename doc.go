// Package w8r provides a bounded-retry poller for integration and
// end-to-end test harnesses.
//
// The central function is [Wait], which evaluates a [Probe] on a fixed
// interval until it succeeds, the caller's attempt budget runs out, or
// a hard safety ceiling fires. Probe constructors cover the usual
// suspects: URL reachability, external resource status, log and file
// content, and counter equality.
package w8r
