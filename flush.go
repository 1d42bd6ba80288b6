package ktrace

import (
	"fmt"
)

// Flush drains captured entries to the sink.
//
// Each pass flips the active ring index, snapshots and resets the standby
// ring within a bounded critical section, then renders the snapshot outside
// it - a statistics header followed by one CSV record per entry, in capture
// order. If the ring made active by the flip accumulated entries while
// rendering, another pass runs, until a pass observes zero pending entries.
//
// Flushing with nothing pending emits no output, and leaves all counters
// unchanged, including the flush sequence number.
//
// Flush never returns an error: sink write failures are not retried, and are
// reported only via the configured logger. Concurrent callers serialize.
func (x *Recorder) Flush() {
	x.flushMu.Lock()
	defer x.flushMu.Unlock()

	for {
		x.mu.Lock()
		r := x.rings[x.active]
		x.active ^= 1
		n := r.snapshot(x.snap)
		overwrites := r.overwrites
		total := x.totalWritten
		var seq uint32
		if n > 0 {
			x.flushes++
			seq = x.flushes
		}
		r.reset()
		if n == 0 {
			x.flushRequested = false
		}
		x.mu.Unlock()

		if n == 0 {
			return
		}

		x.render(seq, total, overwrites, x.snap[:n])

		x.mu.Lock()
		pending := x.rings[x.active].count
		x.flushRequested = false
		x.mu.Unlock()

		if pending == 0 {
			return
		}
	}
}

// ForceFlush synchronously drains all pending entries. It is an alias for
// Flush, provided for hosts that distinguish periodic and forced drains.
func (x *Recorder) ForceFlush() {
	x.Flush()
}

// render emits one dump block. Only the flush path calls it, with flushMu
// held and mu released.
func (x *Recorder) render(seq, total, overwrites uint32, entries []Entry) {
	n := len(entries)

	var err error
	pr := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(x.sink, format, args...)
		}
	}

	pr("# ========================================\n")
	pr("# TRACE STATISTICS (Flush #%d)\n", seq)
	pr("# Total events recorded: %d\n", total)
	pr("# Buffer overwrites: %d\n", overwrites)
	pr("# Entries in this dump: %d\n", n)
	pr("# Buffer utilization: %d/%d (%.1f%%)\n", n, x.capacity, float64(n)*100/float64(x.capacity))
	pr("# ========================================\n")

	pr("eventtype,tick,timestamp,taskid,object,value,src\n")

	for i := range entries {
		e := &entries[i]

		src := `TASK`
		task := `ISR`
		if e.FromISR {
			src = `ISR`
		} else if e.Task != nil {
			task = x.taskName(e.Task)
		}

		var object string
		if e.Event.nameObject() {
			object, _ = e.Object.(string)
		} else {
			object = formatObject(e.Object)
		}

		pr("%s,%d,%d,%s,%s,%d,%s\n", e.Event, e.Tick, e.TimeUS, task, object, e.Value, src)
	}

	pr("# ========================================\n\n")

	if err != nil {
		x.logger.Warning().
			Err(err).
			Uint64(`flush`, uint64(seq)).
			Log(`ktrace: sink write failed`)
	} else {
		x.logger.Debug().
			Uint64(`flush`, uint64(seq)).
			Int(`entries`, n).
			Uint64(`overwrites`, uint64(overwrites)).
			Log(`ktrace: flushed`)
	}
}

// formatObject renders an opaque handle for the object column.
func formatObject(object any) string {
	switch v := object.(type) {
	case nil:
		return `0x0`
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf(`%v`, v)
	}
}

// defaultTaskName is the render-time task identity resolver, see
// WithTaskName.
func defaultTaskName(task any) string {
	switch v := task.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf(`%v`, v)
	}
}
