// Package zlog provides zerolog-backed lifecycle hooks for the w8r
// poller.
//
// Hooks returns a w8r.Hooks that logs every poll attempt, sleep,
// success, and exhaustion through a zerolog logger, so a CI run shows
// what each wait was doing while it waited.
package zlog
