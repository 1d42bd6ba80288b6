package ktrace

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/joeycumines/logiface"
)

// Recorder captures kernel events into one of two fixed-capacity rings.
// Writers always target the active ring; a flush flips the active index in
// O(1) and drains the standby ring, so capture is never blocked for the
// duration of rendering.
//
// Instances must be initialized using the New factory. All methods are safe
// for concurrent use. The capture methods (RecordTask, RecordISR) are O(1),
// never block beyond a short critical section, and perform no allocation or
// I/O.
type Recorder struct {
	// mu is the critical section shared by capture, the snapshot phase of
	// flush, and Stats. Rendering happens strictly outside it.
	mu sync.Mutex

	rings  [2]*ring
	active int

	totalWritten uint32 // every capture attempt, never reset by flush
	flushes      uint32 // completed non-empty flush passes

	flushTask      any
	flushRequested bool
	notify         chan struct{}

	// flushMu serializes Flush callers; snap is the render-side scratch
	// buffer, only touched while flushMu is held.
	flushMu sync.Mutex
	snap    []Entry

	capacity  int
	watermark int
	sink      io.Writer
	ticks     func() uint32
	tickRate  uint32
	taskName  func(task any) string
	logger    *logiface.Logger[logiface.Event]
}

// New initializes a new Recorder, using the provided options. A panic will
// occur if an invalid configuration is provided, see the relevant Option
// documentation.
func New(options ...Option) *Recorder {
	c := recorderConfig{
		capacity: DefaultCapacity,
		tickRate: DefaultTickRate,
	}
	for _, o := range options {
		if o == nil {
			continue
		}
		o(&c)
	}

	if c.capacity < 0 {
		panic(`ktrace: capacity must be positive`)
	}
	if c.capacity == 0 {
		c.capacity = DefaultCapacity
	}
	if c.watermark == 0 {
		c.watermark = c.capacity * 3 / 4
	}
	if c.watermark < 0 || c.watermark > c.capacity {
		panic(`ktrace: watermark out of range`)
	}
	if c.tickRate == 0 {
		c.tickRate = DefaultTickRate
	}
	if c.sink == nil {
		c.sink = os.Stdout
	}
	if c.taskName == nil {
		c.taskName = defaultTaskName
	}
	if c.ticks == nil {
		c.ticks = defaultTicks(c.tickRate)
	}

	r := &Recorder{
		rings:     [2]*ring{newRing(c.capacity), newRing(c.capacity)},
		notify:    make(chan struct{}, 1),
		snap:      make([]Entry, c.capacity),
		capacity:  c.capacity,
		watermark: c.watermark,
		sink:      c.sink,
		ticks:     c.ticks,
		tickRate:  c.tickRate,
		taskName:  c.taskName,
		logger:    c.logger,
	}

	return r
}

// Reset reinitializes all recorder state - both rings, the active index, all
// counters, the advisory flush request, and the designated flush task. It
// must not be called concurrently with an in-progress flush.
func (x *Recorder) Reset() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.rings[0].reset()
	x.rings[1].reset()
	x.active = 0
	x.totalWritten = 0
	x.flushes = 0
	x.flushRequested = false
	x.flushTask = nil
}

// SetFlushTask designates the task exempt from capture. Events recorded from
// that task context are dropped without trace, preventing the flush task's
// own kernel operations (e.g. its periodic delay) from growing the buffer it
// is about to drain.
func (x *Recorder) SetFlushTask(task any) {
	x.mu.Lock()
	x.flushTask = task
	x.mu.Unlock()
}

// RecordTask captures an event from task context. It is best-effort: there is
// no failure mode visible to the caller. If the ring is full the oldest entry
// is overwritten in place, and the overwrite counted.
//
// Calls made by the task designated via SetFlushTask are a no-op.
func (x *Recorder) RecordTask(task any, event Event, object any, value uint32) {
	x.mu.Lock()
	if task != nil && task == x.flushTask {
		x.mu.Unlock()
		return
	}
	x.record(Entry{Event: event, Object: object, Value: value, Task: task})
	x.mu.Unlock()
}

// RecordISR captures an event from interrupt context. Semantics match
// RecordTask, except no recording task identity is stored.
func (x *Recorder) RecordISR(event Event, object any, value uint32) {
	x.mu.Lock()
	x.record(Entry{Event: event, Object: object, Value: value, FromISR: true})
	x.mu.Unlock()
}

// record appends to the active ring. Callers hold mu.
func (x *Recorder) record(e Entry) {
	e.Tick = x.ticks()
	e.TimeUS = uint32(uint64(e.Tick) * 1_000_000 / uint64(x.tickRate))

	r := x.rings[x.active]
	r.put(e)
	x.totalWritten++

	if r.count >= x.watermark && !x.flushRequested {
		x.flushRequested = true
		select {
		case x.notify <- struct{}{}:
		default:
		}
	}
}

// Stats returns a read-only, internally consistent snapshot of the
// recorder's counters, taken under one critical section. It never mutates
// state.
func (x *Recorder) Stats() Stats {
	x.mu.Lock()
	defer x.mu.Unlock()
	return Stats{
		TotalWritten: x.totalWritten,
		Overwrites:   x.rings[0].overwrites + x.rings[1].overwrites,
		Entries:      uint32(x.rings[0].count + x.rings[1].count),
		Flushes:      x.flushes,
	}
}

// defaultTicks derives a tick count from the wall clock, starting at zero.
func defaultTicks(hz uint32) func() uint32 {
	epoch := time.Now()
	period := time.Second / time.Duration(hz)
	return func() uint32 {
		return uint32(time.Since(epoch) / period)
	}
}
