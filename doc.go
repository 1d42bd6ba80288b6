// Package ktrace records queue and task lifecycle events from a preemptive
// multitasking host, into bounded double-buffered rings, and drains them as a
// line-oriented CSV dump, for offline scheduling analysis.
//
// Capture is synchronous, O(1), non-allocating, and safe from both task and
// interrupt contexts. A flush flips the active ring in O(1), so producers are
// never blocked while entries render to the sink. When a ring fills, the
// oldest entry is overwritten and counted, never the newest - bounded loss is
// the accepted tradeoff, surfaced via [Stats].
//
// See also [github.com/joeycumines/go-microbatch], which implements a similar
// cadence-based drain pattern, for request/response batching.
package ktrace
