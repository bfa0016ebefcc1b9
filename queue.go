package syncx

import (
	"container/list"

	"github.com/Tap30/syncx-go/internal/syncutil"
)

// waiter is a goroutine suspended in Condition.Wait. Its wake channel is
// closed exactly once, by whoever dequeues it.
type waiter struct {
	wake    chan struct{}
	element *list.Element
}

// waitQueue is a thread-safe FIFO of waiters.
type waitQueue struct {
	mu   syncutil.Mutex
	list *list.List
}

func newWaitQueue() *waitQueue {
	return &waitQueue{list: list.New()}
}

// Enqueue adds a new waiter to the back of the queue and returns it.
func (q *waitQueue) Enqueue() *waiter {
	q.mu.Lock()
	defer q.mu.Unlock()
	w := &waiter{wake: make(chan struct{})}
	w.element = q.list.PushBack(w)
	return w
}

// WakeOne dequeues the front waiter and wakes it.
// It returns false if the queue is empty.
func (q *waitQueue) WakeOne() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	front := q.list.Front()
	if front == nil {
		return false
	}
	q.wake(front)
	return true
}

// WakeAll dequeues and wakes every waiter, returning how many were woken.
func (q *waitQueue) WakeAll() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := q.list.Len()
	for e := q.list.Front(); e != nil; e = q.list.Front() {
		q.wake(e)
	}
	return n
}

func (q *waitQueue) wake(e *list.Element) {
	w := q.list.Remove(e).(*waiter)
	w.element = nil
	close(w.wake)
}

// Remove takes w out of the queue without waking it. It returns false if w
// was already dequeued, which means a wake for w is in flight.
func (q *waitQueue) Remove(w *waiter) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if w.element == nil {
		return false
	}
	q.list.Remove(w.element)
	w.element = nil
	return true
}

// Len returns the number of waiters currently queued.
func (q *waitQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.list.Len()
}
