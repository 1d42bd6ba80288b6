package ktrace

import (
	"context"
	"sync"
	"time"
)

type (
	// FlusherConfig models optional configuration, for NewFlusher.
	FlusherConfig struct {
		// Interval is the unconditional flush period, bounding worst-case
		// staleness independent of the watermark.
		// **Defaults to 2s, if 0.**
		// Periodic flushing can be disabled, by setting this < 0, leaving
		// only the watermark trigger.
		Interval time.Duration

		// Task optionally identifies the flush task within the host kernel.
		// If non-nil, it is registered via Recorder.SetFlushTask, exempting
		// the flush task's own kernel operations from capture.
		Task any
	}

	// Flusher drains a Recorder on a fixed cadence, and immediately on the
	// recorder's advisory watermark signal.
	// Instances must be initialized using the NewFlusher factory.
	Flusher struct {
		recorder *Recorder
		interval time.Duration
		done     chan struct{}
		stopped  chan struct{}
		stopOnce sync.Once
	}
)

// NewFlusher initializes a new Flusher, draining the provided Recorder. The
// provided config may be nil. A panic will occur if recorder is nil, or an
// invalid config is provided.
//
// The Flusher.Close method and/or Flusher.Shutdown method should be called
// when the Flusher is no longer needed.
func NewFlusher(recorder *Recorder, config *FlusherConfig) *Flusher {
	if recorder == nil {
		panic(`ktrace: nil recorder`)
	}

	flusher := Flusher{
		recorder: recorder,
		interval: time.Second * 2,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}

	if config != nil {
		if config.Interval != 0 {
			flusher.interval = config.Interval
		}
		if config.Task != nil {
			recorder.SetFlushTask(config.Task)
		}
	}

	go flusher.run()

	return &flusher
}

// Shutdown stops the Flusher, performing a final synchronous drain of any
// remaining entries. An error will be returned if ctx is canceled prior to
// the drain completing.
//
// This method is unsafe to call from within the recorder's sink.
func (x *Flusher) Shutdown(ctx context.Context) error {
	x.stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-x.done:
		return nil
	}
}

// Close stops the Flusher, blocking until it has finished, including the
// final drain. See also Shutdown, which accepts a context.
func (x *Flusher) Close() error {
	x.stop()
	<-x.done
	return nil
}

func (x *Flusher) stop() {
	x.stopOnce.Do(func() {
		close(x.stopped)
	})
}

func (x *Flusher) run() {
	defer close(x.done)

	var tickCh <-chan time.Time
	if x.interval > 0 {
		ticker := time.NewTicker(x.interval)
		defer ticker.Stop()
		tickCh = ticker.C
	}

	for {
		select {
		case <-x.stopped:
			// final drain, there won't be any more triggers
			x.recorder.Flush()
			return

		case <-tickCh:
			x.recorder.Flush()

		case <-x.recorder.notify:
			x.recorder.Flush()
		}
	}
}
