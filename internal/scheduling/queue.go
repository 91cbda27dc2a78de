package scheduling

import "sync"

// Queue is the shared work queue for polling mode: filled once at
// setup, drained concurrently by workers. Every Pop is exclusive, so no
// two workers ever receive the same spec.
type Queue struct {
	mu    sync.Mutex
	specs []string
}

// NewQueue creates a queue holding the given specs in order.
func NewQueue(specs []string) *Queue {
	q := &Queue{specs: make([]string, len(specs))}
	copy(q.specs, specs)
	return q
}

// Pop removes and returns the next spec. The second return value is
// false when the queue is empty.
func (q *Queue) Pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.specs) == 0 {
		return "", false
	}
	spec := q.specs[0]
	q.specs = q.specs[1:]
	return spec, true
}

// Len returns the number of specs still queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.specs)
}
