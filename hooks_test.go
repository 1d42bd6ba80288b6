package ktrace

import (
	"io"
	"testing"
)

func TestHooks_capture(t *testing.T) {
	tests := []struct {
		name    string
		invoke  func(h Hooks)
		event   Event
		object  any
		value   uint32
		fromISR bool
		task    any
	}{
		{
			name:   `queue send`,
			invoke: func(h Hooks) { h.QueueSend(`t1`, `q`) },
			event:  EventQueueSend, object: `q`, task: `t1`,
		},
		{
			name:   `queue send failed`,
			invoke: func(h Hooks) { h.QueueSendFailed(`t1`, `q`) },
			event:  EventQueueSendFailed, object: `q`, task: `t1`,
		},
		{
			name:   `queue send from isr`,
			invoke: func(h Hooks) { h.QueueSendFromISR(`q`) },
			event:  EventQueueSendFromISR, object: `q`, fromISR: true,
		},
		{
			name:   `queue send from isr failed`,
			invoke: func(h Hooks) { h.QueueSendFromISRFailed(`q`) },
			event:  EventQueueSendFromISRFailed, object: `q`, fromISR: true,
		},
		{
			name:   `queue receive`,
			invoke: func(h Hooks) { h.QueueReceive(`t1`, `q`) },
			event:  EventQueueReceive, object: `q`, task: `t1`,
		},
		{
			name:   `queue receive failed`,
			invoke: func(h Hooks) { h.QueueReceiveFailed(`t1`, `q`) },
			event:  EventQueueReceiveFailed, object: `q`, task: `t1`,
		},
		{
			name:   `queue receive from isr`,
			invoke: func(h Hooks) { h.QueueReceiveFromISR(`q`) },
			event:  EventQueueReceiveFromISR, object: `q`, fromISR: true,
		},
		{
			name:   `queue receive from isr failed`,
			invoke: func(h Hooks) { h.QueueReceiveFromISRFailed(`q`) },
			event:  EventQueueReceiveFromISRFailed, object: `q`, fromISR: true,
		},
		{
			name:   `task create`,
			invoke: func(h Hooks) { h.TaskCreate(`t1`, `Worker`) },
			event:  EventTaskCreate, object: `Worker`, task: `t1`,
		},
		{
			name:   `task create failed`,
			invoke: func(h Hooks) { h.TaskCreateFailed(`t1`, `Worker`) },
			event:  EventTaskCreateFailed, object: `Worker`, task: `t1`,
		},
		{
			name:   `task delete`,
			invoke: func(h Hooks) { h.TaskDelete(`t1`, `Worker`) },
			event:  EventTaskDelete, object: `Worker`, task: `t1`,
		},
		{
			name:   `task delay`,
			invoke: func(h Hooks) { h.TaskDelay(`t1`, 250) },
			event:  EventTaskDelay, value: 250, task: `t1`,
		},
		{
			name:   `task delay until`,
			invoke: func(h Hooks) { h.TaskDelayUntil(`t1`, 1000) },
			event:  EventTaskDelayUntil, value: 1000, task: `t1`,
		},
		{
			name:   `task switched in`,
			invoke: func(h Hooks) { h.TaskSwitchedIn(`t1`) },
			event:  EventTaskSwitchedIn, task: `t1`,
		},
		{
			name:   `task switched out`,
			invoke: func(h Hooks) { h.TaskSwitchedOut(`t1`) },
			event:  EventTaskSwitchedOut, task: `t1`,
		},
		{
			name:   `tick increment`,
			invoke: func(h Hooks) { h.TickIncrement(12345) },
			event:  EventTaskIncrementTick, value: 12345, fromISR: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New(WithCapacity(8), WithSink(io.Discard))
			tc.invoke(r.Hooks())

			e := lastEntry(r)
			if e.Event != tc.event {
				t.Errorf(`Event = %v, want %v`, e.Event, tc.event)
			}
			if e.Object != tc.object {
				t.Errorf(`Object = %v, want %v`, e.Object, tc.object)
			}
			if e.Value != tc.value {
				t.Errorf(`Value = %v, want %v`, e.Value, tc.value)
			}
			if e.FromISR != tc.fromISR {
				t.Errorf(`FromISR = %v, want %v`, e.FromISR, tc.fromISR)
			}
			if e.Task != tc.task {
				t.Errorf(`Task = %v, want %v`, e.Task, tc.task)
			}
		})
	}
}
