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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/gramkit/actors/errors"
)

func TestUnboundedMailbox(t *testing.T) {
	t.Run("FIFO order", func(t *testing.T) {
		mailbox := NewMailbox[EventFull]()
		defer mailbox.Dispose()

		for i := uint64(0); i < 10; i++ {
			require.NoError(t, mailbox.Push(SystemEvent(RawEvent(i, nil), 1, 0)))
		}
		require.EqualValues(t, 10, mailbox.Len())

		for i := uint64(0); i < 10; i++ {
			msg, ok := mailbox.Pop()
			require.True(t, ok)
			assert.Equal(t, i, msg.Event().RawID())
		}
		assert.True(t, mailbox.IsEmpty())
	})

	t.Run("pop on empty", func(t *testing.T) {
		mailbox := NewMailbox[int]()
		defer mailbox.Dispose()

		_, ok := mailbox.Pop()
		assert.False(t, ok)
	})

	t.Run("push after dispose fails", func(t *testing.T) {
		mailbox := NewMailbox[int]()
		require.NoError(t, mailbox.Push(1))
		mailbox.Dispose()

		err := mailbox.Push(2)
		assert.ErrorIs(t, err, errors.ErrMailboxDisposed)

		// the pending message is still poppable
		v, ok := mailbox.Pop()
		require.True(t, ok)
		assert.Equal(t, 1, v)
	})
}

func TestBoundedMailbox(t *testing.T) {
	t.Run("push fails exactly at capacity", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int](3)
		defer mailbox.Dispose()

		for i := 0; i < 3; i++ {
			require.NoError(t, mailbox.Push(i))
		}
		assert.ErrorIs(t, mailbox.Push(99), errors.ErrMailboxFull)
		assert.EqualValues(t, 3, mailbox.Len())
	})

	t.Run("pop frees a slot for push", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int](2)
		defer mailbox.Dispose()

		require.NoError(t, mailbox.Push(1))
		require.NoError(t, mailbox.Push(2))
		require.ErrorIs(t, mailbox.Push(3), errors.ErrMailboxFull)

		v, ok := mailbox.Pop()
		require.True(t, ok)
		assert.Equal(t, 1, v)

		assert.NoError(t, mailbox.Push(3))

		v, _ = mailbox.Pop()
		assert.Equal(t, 2, v)
		v, _ = mailbox.Pop()
		assert.Equal(t, 3, v)
	})

	t.Run("FIFO order", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int](100)
		defer mailbox.Dispose()

		for i := 0; i < 100; i++ {
			require.NoError(t, mailbox.Push(i))
		}
		for i := 0; i < 100; i++ {
			v, ok := mailbox.Pop()
			require.True(t, ok)
			assert.Equal(t, i, v)
		}
	})

	t.Run("pop on empty", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int](4)
		defer mailbox.Dispose()

		_, ok := mailbox.Pop()
		assert.False(t, ok)
		assert.True(t, mailbox.IsEmpty())
	})

	t.Run("full lifecycle with events", func(t *testing.T) {
		mailbox := NewBoundedMailbox[EventFull](10)
		defer mailbox.Dispose()

		for i := 0; i < 10; i++ {
			require.NoError(t, mailbox.Push(SystemEvent(StartEvent(), 1, 0)))
		}
		require.ErrorIs(t, mailbox.Push(SystemEvent(StartEvent(), 1, 0)), errors.ErrMailboxFull)

		_, ok := mailbox.Pop()
		require.True(t, ok)
		assert.NoError(t, mailbox.Push(SystemEvent(StopEvent(), 1, 0)))
	})

	t.Run("push after dispose fails", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int](4)
		mailbox.Dispose()
		assert.ErrorIs(t, mailbox.Push(1), errors.ErrMailboxDisposed)
	})

	t.Run("capacity", func(t *testing.T) {
		mailbox := NewBoundedMailbox[int](8)
		defer mailbox.Dispose()
		assert.EqualValues(t, 8, mailbox.Capacity())
	})

	// capacities that are not powers of two must not be rounded up by the
	// underlying ring buffer
	t.Run("exact capacity when not a power of two", func(t *testing.T) {
		for _, capacity := range []uint64{3, 5, 10, 100} {
			mailbox := NewBoundedMailbox[int](capacity)

			assert.EqualValues(t, capacity, mailbox.Capacity())
			for i := uint64(0); i < capacity; i++ {
				require.NoError(t, mailbox.Push(int(i)))
			}
			require.ErrorIs(t, mailbox.Push(-1), errors.ErrMailboxFull)
			require.EqualValues(t, capacity, mailbox.Len())

			_, ok := mailbox.Pop()
			require.True(t, ok)
			require.NoError(t, mailbox.Push(-1))
			require.ErrorIs(t, mailbox.Push(-2), errors.ErrMailboxFull)

			mailbox.Dispose()
		}
	})
}

// exactly-once delivery: with producers and consumers racing, every pushed
// value is popped once and nothing is lost or duplicated.
func exactlyOnce(t *testing.T, mailbox Mailbox[int], producers, perProducer int) {
	t.Helper()

	var g errgroup.Group
	for p := 0; p < producers; p++ {
		base := p * perProducer
		g.Go(func() error {
			for i := 0; i < perProducer; i++ {
				for {
					err := mailbox.Push(base + i)
					if err == nil {
						break
					}
					if err != errors.ErrMailboxFull {
						return err
					}
				}
			}
			return nil
		})
	}

	total := producers * perProducer
	var mu sync.Mutex
	seen := make(map[int]int, total)
	remaining := int64(total)

	consumers := 4
	var cg errgroup.Group
	for c := 0; c < consumers; c++ {
		cg.Go(func() error {
			for {
				mu.Lock()
				done := remaining == 0
				mu.Unlock()
				if done {
					return nil
				}
				v, ok := mailbox.Pop()
				if !ok {
					continue
				}
				mu.Lock()
				seen[v]++
				remaining--
				mu.Unlock()
			}
		})
	}

	require.NoError(t, g.Wait())
	require.NoError(t, cg.Wait())

	require.Len(t, seen, total)
	for v, n := range seen {
		require.Equalf(t, 1, n, "value %d delivered %d times", v, n)
	}
	assert.True(t, mailbox.IsEmpty())
}

func TestUnboundedMailboxExactlyOnce(t *testing.T) {
	mailbox := NewMailbox[int]()
	defer mailbox.Dispose()
	exactlyOnce(t, mailbox, 8, 500)
}

func TestBoundedMailboxExactlyOnce(t *testing.T) {
	mailbox := NewBoundedMailbox[int](64)
	defer mailbox.Dispose()
	exactlyOnce(t, mailbox, 8, 500)
}

func TestUnboundedMailboxPerProducerFIFO(t *testing.T) {
	mailbox := NewMailbox[int]()
	defer mailbox.Dispose()

	// single producer, single consumer, racing
	const total = 2000
	var g errgroup.Group
	g.Go(func() error {
		for i := 0; i < total; i++ {
			if err := mailbox.Push(i); err != nil {
				return err
			}
		}
		return nil
	})

	received := make([]int, 0, total)
	for len(received) < total {
		v, ok := mailbox.Pop()
		if !ok {
			continue
		}
		received = append(received, v)
	}
	require.NoError(t, g.Wait())

	for i := 0; i < total; i++ {
		require.Equal(t, i, received[i])
	}
}
