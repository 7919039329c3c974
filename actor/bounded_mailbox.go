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

package actor

import (
	"time"

	"github.com/Workiva/go-datastructures/queue"
	"go.uber.org/atomic"

	"github.com/gramkit/actors/errors"
)

// pollInterval bounds how long Pop waits on a buffer that raced empty.
const pollInterval = time.Millisecond

// BoundedMailbox is a mailbox with a fixed capacity. Push fails with
// errors.ErrMailboxFull when the mailbox is at capacity; a subsequent Pop
// frees a slot and a retried Push succeeds.
type BoundedMailbox[T any] struct {
	buffer   *queue.RingBuffer
	capacity uint64
	slots    *atomic.Int64
}

// enforce compilation and linter error
var _ Mailbox[int] = (*BoundedMailbox[int])(nil)

// NewBoundedMailbox creates a bounded mailbox holding at most capacity
// messages.
func NewBoundedMailbox[T any](capacity uint64) *BoundedMailbox[T] {
	return &BoundedMailbox[T]{
		// the ring buffer rounds its size up to a power of two, so the
		// requested capacity is enforced by the slot counter, not the ring
		buffer:   queue.NewRingBuffer(capacity),
		capacity: capacity,
		slots:    atomic.NewInt64(0),
	}
}

// Push appends a message. It returns errors.ErrMailboxFull when the mailbox
// is at capacity and errors.ErrMailboxDisposed after Dispose.
func (m *BoundedMailbox[T]) Push(msg T) error {
	for {
		claimed := m.slots.Load()
		if claimed >= int64(m.capacity) {
			return errors.ErrMailboxFull
		}
		if m.slots.CompareAndSwap(claimed, claimed+1) {
			break
		}
	}
	// a claimed slot always fits: the ring never holds fewer entries than
	// the requested capacity
	ok, err := m.buffer.Offer(msg)
	if err != nil {
		m.slots.Dec()
		return errors.ErrMailboxDisposed
	}
	if !ok {
		m.slots.Dec()
		return errors.ErrMailboxFull
	}
	return nil
}

// Pop removes and returns the oldest message. The second return value is
// false when the mailbox is empty or disposed.
func (m *BoundedMailbox[T]) Pop() (T, bool) {
	var zero T
	if m.buffer.Len() == 0 {
		return zero, false
	}
	// a concurrent Pop may have drained the slot observed above, so poll
	// with a bounded timeout instead of blocking on Get
	item, err := m.buffer.Poll(pollInterval)
	if err != nil {
		return zero, false
	}
	msg, ok := item.(T)
	if !ok {
		return zero, false
	}
	m.slots.Dec()
	return msg, true
}

// Len returns the number of pending messages.
func (m *BoundedMailbox[T]) Len() int64 {
	return int64(m.buffer.Len())
}

// IsEmpty reports whether no messages are pending.
func (m *BoundedMailbox[T]) IsEmpty() bool {
	return m.buffer.Len() == 0
}

// Capacity returns the maximum number of pending messages.
func (m *BoundedMailbox[T]) Capacity() uint64 {
	return m.capacity
}

// Dispose releases the underlying buffer and unblocks pending polls.
func (m *BoundedMailbox[T]) Dispose() {
	m.buffer.Dispose()
}
