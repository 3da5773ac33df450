// Package profiler accumulates elapsed-time samples for tracked callables.
//
// Callers mark functions with Tracked (or a whole method set with
// TrackedAll) and invoke the returned wrappers as usual. Every invocation,
// including ones that panic or return an error, records one interval in a
// Registry. The recorded data can then be projected into sortable summary
// rows (Rows) or a timeline of raw or merged spans (TimelineOf,
// MergedTimelineOf) for an external renderer.
//
// All state is in-memory and process-scoped. A package-level Default
// registry is provided for the common case; independent registries can be
// created with New for scoped measurement sessions.
package profiler
