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

// Mailbox is a concurrent FIFO queue of pending messages for a single actor.
// Implementations are safe for any number of concurrent producers and
// consumers, and no operation blocks indefinitely.
//
// Push fails fast: a bounded mailbox at capacity returns
// errors.ErrMailboxFull, and a disposed mailbox returns
// errors.ErrMailboxDisposed. Pop returns false when no message is available
// rather than waiting for one; any waiting policy belongs to the caller.
//
// Ordering is FIFO per producer. Messages pushed by a single goroutine are
// popped in push order; no ordering is guaranteed across producers.
type Mailbox[T any] interface {
	// Push appends a message. It never blocks; it returns an error when the
	// message cannot be accepted.
	Push(msg T) error
	// Pop removes and returns the oldest message. The second return value is
	// false when the mailbox is empty.
	Pop() (T, bool)
	// Len returns the number of pending messages.
	Len() int64
	// IsEmpty reports whether no messages are pending.
	IsEmpty() bool
	// Dispose releases the mailbox resources. Further pushes fail with
	// errors.ErrMailboxDisposed.
	Dispose()
}
