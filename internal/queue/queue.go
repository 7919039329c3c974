/*
 * MIT License
 *
 * Copyright (c) 2024-2026 gramkit Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package queue

import (
	"sync"

	"go.uber.org/atomic"
)

// node is a singly-linked queue node.
type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is an unbounded FIFO queue safe for any number of concurrent
// producers and consumers (MPMC). A single mutex guards the linked list;
// the length counter is maintained separately so that Len and IsEmpty are
// lock-free snapshots.
//
// Every pushed value is handed to exactly one Pop call. For values pushed
// from a single goroutine, Pop returns them in push order.
type Queue[T any] struct {
	mu     sync.Mutex
	head   *node[T] // dummy node, consumer side
	tail   *node[T] // producer side
	length atomic.Int64
}

// New creates an empty Queue.
func New[T any]() *Queue[T] {
	dummy := new(node[T])
	return &Queue[T]{
		head: dummy,
		tail: dummy,
	}
}

// Push appends value to the tail of the queue. Never blocks beyond the
// internal mutex.
func (q *Queue[T]) Push(value T) {
	n := &node[T]{value: value}
	q.mu.Lock()
	q.tail.next = n
	q.tail = n
	q.length.Inc()
	q.mu.Unlock()
}

// Pop removes and returns the value at the head of the queue.
// The second return value is false when the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	q.mu.Lock()
	next := q.head.next
	if next == nil {
		q.mu.Unlock()
		return zero, false
	}
	q.head = next
	value := next.value
	next.value = zero
	q.length.Dec()
	q.mu.Unlock()
	return value, true
}

// Len returns a snapshot of the number of values in the queue.
func (q *Queue[T]) Len() int64 {
	return q.length.Load()
}

// IsEmpty reports whether the queue has no values. Best-effort snapshot
// under concurrency.
func (q *Queue[T]) IsEmpty() bool {
	return q.length.Load() == 0
}
