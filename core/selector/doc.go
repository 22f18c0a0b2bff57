// Package selector resolves user-supplied auto-attendant selectors against
// the Webex directory.
//
// A selector is either "<pattern>" or "<location>:<pattern>", where the
// pattern is a regular expression matched fully anchored against
// auto-attendant names. Unscoped selectors search every location.
//
// # Resolution
//
// Resolver evaluates all selectors concurrently, each against its own
// auto-attendant listing, and merges the matches into one deduplicated
// batch sorted by (location, name). The location directory is listed at
// most once per Resolver regardless of how many selectors need it;
// singleflight collapses concurrent first accesses.
//
// # Failure handling
//
// Malformed selectors, unparsable patterns, and unknown location names are
// *InvalidError values: they are logged per selector and escalate to
// ErrInvalidSelectors only at the aggregation point, so one bad selector
// never hides the diagnostics of another. Any other failure is treated as a
// transport problem and aborts resolution immediately.
package selector
