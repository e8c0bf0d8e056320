// Package probe resolves external lookups (public IP, hostname, kernel,
// uptime) for one generation run.
//
// # At-most-once probing
//
// A Resolver memoizes every outcome by probe identity: the first Resolve
// call for an identity runs the probe, every later call returns the stored
// outcome, including stored failures. Designs can therefore reference the
// same external value any number of times without re-running commands or
// re-querying the network.
//
// The Resolver is scoped to a single run. Construct a fresh one per
// invocation and discard it afterwards; there is no process-wide cache, so
// no stale values can leak between runs. A run is single-threaded, and the
// Resolver is not safe for concurrent use.
//
// # Failure handling
//
// Resolve never returns an error. A failed probe travels inside Resolved
// with OK false and a categorized FailCode, and the design's fallback
// expression decides what to render. Each probe is bounded by the
// resolver's timeout; there are no retries.
package probe
