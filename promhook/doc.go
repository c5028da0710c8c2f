// Package promhook provides prometheus-backed lifecycle hooks for the
// w8r poller.
//
// A long-lived harness that runs many waits can register a Metrics
// once and attach its Hooks to every call, exposing attempt volume and
// exhaustion counts per limit kind.
package promhook
