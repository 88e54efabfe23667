package input

// Queue hands intents from input goroutines to the simulation step.
// Enqueue never blocks; the step drains with Dequeue.
type Queue struct {
	ch chan Intent
}

// NewQueue creates a queue holding up to size intents.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 16
	}
	return &Queue{ch: make(chan Intent, size)}
}

// Enqueue adds an intent and reports false if the queue was full and the intent
// was dropped.
func (q *Queue) Enqueue(intent Intent) bool {
	if q == nil || intent.Action == ActionNone {
		return false
	}
	select {
	case q.ch <- intent:
		return true
	default:
		return false
	}
}

// Dequeue returns the oldest intent without blocking.
func (q *Queue) Dequeue() (Intent, bool) {
	if q == nil {
		return Intent{}, false
	}
	select {
	case intent := <-q.ch:
		return intent, true
	default:
		return Intent{}, false
	}
}

// Len returns the number of queued intents.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.ch)
}
