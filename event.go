package ktrace

// Event identifies an instrumentable kernel operation. The catalog is closed,
// covering queue send/receive (task and ISR variants, success and failure),
// task lifecycle, tick housekeeping, context switches, and internal markers.
type Event uint8

const (
	EventUnknown Event = iota

	// Queue operations, task context.
	EventQueueSend
	EventQueueSendFailed
	EventQueueSendFromISR
	EventQueueSendFromISRFailed

	EventQueueReceive
	EventQueueReceiveFailed
	EventQueueReceiveFromISR
	EventQueueReceiveFromISRFailed

	// EventTaskIncrementTick carries the new tick count as its value.
	EventTaskIncrementTick

	// Task lifecycle. The entry object is the task name, not a handle.
	EventTaskCreate
	EventTaskCreateFailed
	EventTaskDelete

	// EventTaskDelay carries the number of ticks to delay as its value,
	// EventTaskDelayUntil the tick to wake at.
	EventTaskDelay
	EventTaskDelayUntil

	// Context switches.
	EventTaskSwitchedIn
	EventTaskSwitchedOut

	// Internal markers, reserved for use within the capture stream.
	EventFlushRequest
	EventExportCSV

	numEvents
)

// String returns the symbolic name emitted in the eventtype column of the
// CSV dump. The switched in/out names deliberately use a different prefix,
// the downstream parser matches both forms.
func (x Event) String() string {
	switch x {
	case EventQueueSend:
		return `EVT_QUEUE_SEND`
	case EventQueueSendFailed:
		return `EVT_QUEUE_SEND_FAILED`
	case EventQueueSendFromISR:
		return `EVT_QUEUE_SEND_FROM_ISR`
	case EventQueueSendFromISRFailed:
		return `EVT_QUEUE_SEND_FROM_ISR_FAILED`
	case EventQueueReceive:
		return `EVT_QUEUE_RECEIVE`
	case EventQueueReceiveFailed:
		return `EVT_QUEUE_RECEIVE_FAILED`
	case EventQueueReceiveFromISR:
		return `EVT_QUEUE_RECEIVE_FROM_ISR`
	case EventQueueReceiveFromISRFailed:
		return `EVT_QUEUE_RECEIVE_FROM_ISR_FAILED`
	case EventTaskIncrementTick:
		return `EVT_TASK_INCREMENT_TICK`
	case EventTaskCreate:
		return `EVT_TASK_CREATE`
	case EventTaskCreateFailed:
		return `EVT_TASK_CREATE_FAILED`
	case EventTaskDelete:
		return `EVT_TASK_DELETE`
	case EventTaskDelay:
		return `EVT_TASK_DELAY`
	case EventTaskDelayUntil:
		return `EVT_TASK_DELAY_UNTIL`
	case EventTaskSwitchedIn:
		return `traceTASK_SWITCHED_IN`
	case EventTaskSwitchedOut:
		return `traceTASK_SWITCHED_OUT`
	case EventFlushRequest:
		return `EVT_TRACE_FLUSH_REQUEST`
	case EventExportCSV:
		return `EVT_TRACE_EXPORT_CSV`
	default:
		return `UNKNOWN`
	}
}

// nameObject reports whether the entry object for this event kind is a task
// name string, rather than an opaque handle.
func (x Event) nameObject() bool {
	switch x {
	case EventTaskCreate, EventTaskCreateFailed, EventTaskDelete:
		return true
	}
	return false
}
