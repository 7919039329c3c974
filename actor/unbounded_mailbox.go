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
	"go.uber.org/atomic"

	"github.com/gramkit/actors/errors"
	"github.com/gramkit/actors/internal/queue"
)

// UnboundedMailbox is a mailbox with no capacity limit. Push never fails
// while the mailbox is live.
type UnboundedMailbox[T any] struct {
	queue    *queue.Queue[T]
	disposed *atomic.Bool
}

// enforce compilation and linter error
var _ Mailbox[int] = (*UnboundedMailbox[int])(nil)

// NewMailbox creates an unbounded mailbox.
func NewMailbox[T any]() *UnboundedMailbox[T] {
	return &UnboundedMailbox[T]{
		queue:    queue.New[T](),
		disposed: atomic.NewBool(false),
	}
}

// Push appends a message.
func (m *UnboundedMailbox[T]) Push(msg T) error {
	if m.disposed.Load() {
		return errors.ErrMailboxDisposed
	}
	m.queue.Push(msg)
	return nil
}

// Pop removes and returns the oldest message.
func (m *UnboundedMailbox[T]) Pop() (T, bool) {
	return m.queue.Pop()
}

// Len returns the number of pending messages.
func (m *UnboundedMailbox[T]) Len() int64 {
	return m.queue.Len()
}

// IsEmpty reports whether no messages are pending.
func (m *UnboundedMailbox[T]) IsEmpty() bool {
	return m.queue.IsEmpty()
}

// Dispose marks the mailbox disposed. Pending messages remain poppable.
func (m *UnboundedMailbox[T]) Dispose() {
	m.disposed.Store(true)
}
