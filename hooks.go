package ktrace

// Hooks adapts a Recorder to the fixed call sites a host kernel instruments.
// The scheduler/queue layer holds a Hooks value and invokes one method per
// operation, at the operation's exact call site; methods never block, and are
// safe from any task or interrupt context.
//
// Task-context methods take the calling task's identity explicitly, since the
// recorder has no ambient notion of the current task. ISR-variant methods
// take none.
//
// Object and value conventions per method: queue methods record the queue
// handle with value 0; delay methods record no object, with the tick count as
// the value; lifecycle methods record the task name as the object.
type Hooks struct {
	recorder *Recorder
}

// Hooks returns the hook surface bound to this recorder.
func (x *Recorder) Hooks() Hooks {
	return Hooks{recorder: x}
}

func (x Hooks) QueueSend(task, queue any) {
	x.recorder.RecordTask(task, EventQueueSend, queue, 0)
}

func (x Hooks) QueueSendFailed(task, queue any) {
	x.recorder.RecordTask(task, EventQueueSendFailed, queue, 0)
}

func (x Hooks) QueueSendFromISR(queue any) {
	x.recorder.RecordISR(EventQueueSendFromISR, queue, 0)
}

func (x Hooks) QueueSendFromISRFailed(queue any) {
	x.recorder.RecordISR(EventQueueSendFromISRFailed, queue, 0)
}

func (x Hooks) QueueReceive(task, queue any) {
	x.recorder.RecordTask(task, EventQueueReceive, queue, 0)
}

func (x Hooks) QueueReceiveFailed(task, queue any) {
	x.recorder.RecordTask(task, EventQueueReceiveFailed, queue, 0)
}

func (x Hooks) QueueReceiveFromISR(queue any) {
	x.recorder.RecordISR(EventQueueReceiveFromISR, queue, 0)
}

func (x Hooks) QueueReceiveFromISRFailed(queue any) {
	x.recorder.RecordISR(EventQueueReceiveFromISRFailed, queue, 0)
}

// TaskCreate records task creation, from the creating task's context.
func (x Hooks) TaskCreate(task any, name string) {
	x.recorder.RecordTask(task, EventTaskCreate, name, 0)
}

// TaskCreateFailed records a failed task creation, from the creating task's
// context.
func (x Hooks) TaskCreateFailed(task any, name string) {
	x.recorder.RecordTask(task, EventTaskCreateFailed, name, 0)
}

// TaskDelete records task deletion, from the deleting task's context.
func (x Hooks) TaskDelete(task any, name string) {
	x.recorder.RecordTask(task, EventTaskDelete, name, 0)
}

// TaskDelay records a relative delay of ticks kernel ticks.
func (x Hooks) TaskDelay(task any, ticks uint32) {
	x.recorder.RecordTask(task, EventTaskDelay, nil, ticks)
}

// TaskDelayUntil records an absolute delay, waking at the wake tick.
func (x Hooks) TaskDelayUntil(task any, wake uint32) {
	x.recorder.RecordTask(task, EventTaskDelayUntil, nil, wake)
}

func (x Hooks) TaskSwitchedIn(task any) {
	x.recorder.RecordTask(task, EventTaskSwitchedIn, nil, 0)
}

func (x Hooks) TaskSwitchedOut(task any) {
	x.recorder.RecordTask(task, EventTaskSwitchedOut, nil, 0)
}

// TickIncrement records the kernel tick advancing, from the tick interrupt.
func (x Hooks) TickIncrement(newTick uint32) {
	x.recorder.RecordISR(EventTaskIncrementTick, nil, newTick)
}
