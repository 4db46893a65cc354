package table

// Scheduler defers work to the UI thread. Tasks run after the current event
// handler returns, never inside it.
type Scheduler interface {
	Post(task func())
}

// SchedulerFunc adapts a function such as tview's QueueUpdateDraw to Scheduler.
type SchedulerFunc func(task func())

// Post calls f(task).
func (f SchedulerFunc) Post(task func()) {
	f(task)
}

// Queue is a FIFO task queue drained by the owner of the UI loop.
type Queue struct {
	tasks []func()
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Post appends task.
func (q *Queue) Post(task func()) {
	q.tasks = append(q.tasks, task)
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Drain runs pending tasks in order, including tasks posted while draining,
// and returns how many ran.
func (q *Queue) Drain() int {
	n := 0
	for len(q.tasks) > 0 {
		task := q.tasks[0]
		q.tasks[0] = nil
		q.tasks = q.tasks[1:]
		task()
		n++
	}
	return n
}
