package ktrace

// ring is a fixed-capacity circular store with drop-oldest overwrite
// semantics. It is not safe for concurrent use; the Recorder's critical
// section protects it.
type ring struct {
	buf        []Entry
	wr         int    // write index (head), mod len(buf)
	count      int    // occupied entries, 0..len(buf)
	overwrites uint32 // entries discarded because the ring was full
}

func newRing(capacity int) *ring {
	if capacity <= 0 {
		panic(`ktrace: ring: capacity must be positive`)
	}
	return &ring{buf: make([]Entry, capacity)}
}

// put appends e, overwriting the oldest entry if full. The overwrite counter
// increments exactly when the ring was already at capacity.
func (x *ring) put(e Entry) {
	x.buf[x.wr] = e
	x.wr = (x.wr + 1) % len(x.buf)
	if x.count < len(x.buf) {
		x.count++
	} else {
		x.overwrites++
	}
}

// snapshot copies the occupied entries into dst, oldest first, returning the
// number copied. Behavior is undefined if len(dst) < x.count.
func (x *ring) snapshot(dst []Entry) int {
	n := x.count
	if n == 0 {
		return 0
	}
	start := x.wr - n
	if start < 0 {
		start += len(x.buf)
	}
	for i := 0; i < n; i++ {
		dst[i] = x.buf[(start+i)%len(x.buf)]
	}
	return n
}

// reset clears the write cursor, occupancy, and overwrite counter.
func (x *ring) reset() {
	x.wr = 0
	x.count = 0
	x.overwrites = 0
}
