package ktrace

// Stats is a point-in-time snapshot of the recorder's counters, see
// Recorder.Stats.
type Stats struct {
	// TotalWritten counts every capture attempt, including entries that were
	// later overwritten or drained. It is never reset by flush.
	TotalWritten uint32

	// Overwrites counts entries discarded because a ring was full, summed
	// across both rings. Flushing a ring resets its contribution.
	Overwrites uint32

	// Entries is the current occupancy, summed across both rings.
	Entries uint32

	// Flushes counts completed flush passes that drained at least one entry.
	// A flush that finds nothing pending does not increment it.
	Flushes uint32
}
