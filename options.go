package ktrace

import (
	"io"

	"github.com/joeycumines/logiface"
)

const (
	// DefaultCapacity is the per-ring entry capacity, used if WithCapacity is
	// not provided.
	DefaultCapacity = 768

	// DefaultTickRate is the assumed kernel tick rate in Hz, used if
	// WithTickRate is not provided.
	DefaultTickRate = 1000
)

type (
	// Option is a configuration option for constructing Recorder instances,
	// using the New function.
	Option func(c *recorderConfig)

	recorderConfig struct {
		capacity  int
		watermark int
		sink      io.Writer
		ticks     func() uint32
		tickRate  uint32
		taskName  func(task any) string
		logger    *logiface.Logger[logiface.Event]
	}
)

// WithCapacity configures the per-ring entry capacity.
// **Defaults to DefaultCapacity, if 0.**
//
// WARNING: New will panic if capacity is negative.
func WithCapacity(capacity int) Option {
	return func(c *recorderConfig) {
		c.capacity = capacity
	}
}

// WithWatermark configures the occupancy, in entries, at which the advisory
// flush request is raised.
// **Defaults to 3/4 of the capacity, if 0.**
//
// The watermark is advisory only - it signals the Flusher (or any consumer of
// the request), and never forces a synchronous flush on the capture path.
//
// WARNING: New will panic if the watermark is negative, or exceeds the
// capacity.
func WithWatermark(entries int) Option {
	return func(c *recorderConfig) {
		c.watermark = entries
	}
}

// WithSink configures the writer the CSV dump is rendered to.
// **Defaults to os.Stdout, if nil.**
//
// The sink is written to outside any section shared with capture, so a slow
// or stalled sink never blocks producers. Write errors are not retried, see
// Recorder.Flush.
func WithSink(w io.Writer) Option {
	return func(c *recorderConfig) {
		c.sink = w
	}
}

// WithTicks configures the kernel tick source, sampled once per recorded
// entry, within the capture critical section.
// **Defaults to a wall-clock-derived source, starting at 0 from New, if
// nil.**
func WithTicks(ticks func() uint32) Option {
	return func(c *recorderConfig) {
		c.ticks = ticks
	}
}

// WithTickRate configures the tick rate in Hz, used to derive the
// microsecond timestamp column from the tick count.
// **Defaults to DefaultTickRate, if 0.**
func WithTickRate(hz uint32) Option {
	return func(c *recorderConfig) {
		c.tickRate = hz
	}
}

// WithTaskName configures the resolver used to render the taskid column.
// Resolution happens at flush time, not capture time.
// **Defaults to a resolver handling string and fmt.Stringer task identities,
// falling back to fmt formatting, if nil.**
func WithTaskName(fn func(task any) string) Option {
	return func(c *recorderConfig) {
		c.taskName = fn
	}
}

// WithLogger configures an optional structured logger, for flush diagnostics
// (flush passes at debug, sink write failures at warning). A nil logger
// disables diagnostics, and is the default.
//
// Backend-specific loggers may be converted using the logiface Logger.Logger
// method.
func WithLogger(logger *logiface.Logger[logiface.Event]) Option {
	return func(c *recorderConfig) {
		c.logger = logger
	}
}
