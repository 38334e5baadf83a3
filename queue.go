package mockstore

import "fmt"

// expectationQueue is an insertion-ordered FIFO of pending expectations.
//
// Entries leave the queue only by being dequeued on an incoming request or
// by being reported as unmet at verification; they are never reordered.
//
// The queue is deliberately not synchronized. A MockStore is owned by a
// single test goroutine for the lifetime of one test case, so unlike a
// cross-goroutine event queue there is no enqueue/dequeue race to guard.
type expectationQueue[E fmt.Stringer] struct {
	entries []E
}

// enqueue adds an expectation to the back of the queue.
func (q *expectationQueue[E]) enqueue(e E) {
	q.entries = append(q.entries, e)
}

// dequeue removes and returns the front expectation.
// Returns (zero, false) if the queue is empty.
func (q *expectationQueue[E]) dequeue() (E, bool) {
	var zero E
	if len(q.entries) == 0 {
		return zero, false
	}

	e := q.entries[0]

	// Zero the slot so the backing array does not retain the dequeued
	// expectation (and its registered rows) until reallocation.
	q.entries[0] = zero

	if len(q.entries) == 1 {
		// Last element - reset to empty slice with original capacity
		q.entries = q.entries[:0]
	} else {
		q.entries = q.entries[1:]
	}

	return e, true
}

// len returns the current queue length.
func (q *expectationQueue[E]) len() int {
	return len(q.entries)
}

// pending renders the remaining expectations in queue order, for
// unmet-expectation diagnostics.
func (q *expectationQueue[E]) pending() []string {
	rendered := make([]string, len(q.entries))
	for i, e := range q.entries {
		rendered[i] = e.String()
	}
	return rendered
}
