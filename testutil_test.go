package ktrace

import (
	"bytes"
	"strings"
	"sync"
)

// dataRows extracts the CSV data rows from rendered dump output, skipping
// comment lines and column headers.
func dataRows(output string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(output, "\n") {
		if line == `` || strings.HasPrefix(line, `#`) || strings.HasPrefix(line, `eventtype,`) {
			continue
		}
		rows = append(rows, strings.Split(line, `,`))
	}
	return rows
}

// countingTicks returns a tick source incrementing by one per capture.
func countingTicks() func() uint32 {
	var tick uint32
	return func() uint32 {
		tick++
		return tick
	}
}

// syncBuffer is a concurrency-safe sink, for tests that flush from another
// goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (x *syncBuffer) Write(p []byte) (int, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.buf.Write(p)
}

func (x *syncBuffer) String() string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.buf.String()
}

// lastEntry returns the most recently captured entry, from the active ring.
func lastEntry(r *Recorder) Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	ring := r.rings[r.active]
	if ring.count == 0 {
		panic(`ktrace: test: no entries captured`)
	}
	idx := ring.wr - 1
	if idx < 0 {
		idx += len(ring.buf)
	}
	return ring.buf[idx]
}
