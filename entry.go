package ktrace

// Entry is a single captured kernel event.
//
// Within one flush, entries are totally ordered by the recorder's write
// cursor, which is shared across all tasks and ISRs - Tick and TimeUS may tie
// across adjacent entries, and do not define capture order.
type Entry struct {
	// Tick is the kernel tick count at capture.
	Tick uint32

	// TimeUS is a monotonic microsecond timestamp, derived from Tick and the
	// configured tick rate.
	TimeUS uint32

	// Object identifies the subject of the operation - an opaque handle for
	// most event kinds, or the task name string for the task create, create
	// failed, and delete kinds.
	Object any

	// Value is event-specific, e.g. ticks to delay, or the new tick count.
	Value uint32

	// Event is the operation kind, from the closed catalog.
	Event Event

	// FromISR indicates the entry was recorded from interrupt context.
	FromISR bool

	// Task identifies the recording task, nil for ISR-origin entries. Names
	// are resolved at render time, see WithTaskName.
	Task any
}
