package mockstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectationQueue_FIFO(t *testing.T) {
	q := &expectationQueue[*ExpectedTypeQuery]{}

	q.enqueue(newExpectedTypeQuery("res://a", "type-a"))
	q.enqueue(newExpectedTypeQuery("res://b", "type-b"))
	q.enqueue(newExpectedTypeQuery("res://c", "type-c"))

	e1, ok := q.dequeue()
	require.True(t, ok)
	assert.Equal(t, "res://a", e1.Target())

	e2, ok := q.dequeue()
	require.True(t, ok)
	assert.Equal(t, "res://b", e2.Target())

	e3, ok := q.dequeue()
	require.True(t, ok)
	assert.Equal(t, "res://c", e3.Target())

	_, ok = q.dequeue()
	assert.False(t, ok, "dequeue from drained queue should return false")
}

func TestExpectationQueue_DequeueEmpty(t *testing.T) {
	q := &expectationQueue[*ExpectedQuery]{}

	_, ok := q.dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, q.len())
}

func TestExpectationQueue_Pending(t *testing.T) {
	q := &expectationQueue[*ExpectedTypeQuery]{}
	q.enqueue(newExpectedTypeQuery("res://a", "type-a"))
	q.enqueue(newExpectedTypeQuery("res://b", "type-b"))

	assert.Equal(t, []string{"res://a --> type-a", "res://b --> type-b"}, q.pending())
	assert.Equal(t, 2, q.len(), "pending must not consume entries")
}
