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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Run("FIFO order", func(t *testing.T) {
		q := New[int]()
		for i := 0; i < 100; i++ {
			q.Push(i)
		}
		require.EqualValues(t, 100, q.Len())
		for i := 0; i < 100; i++ {
			v, ok := q.Pop()
			require.True(t, ok)
			assert.Equal(t, i, v)
		}
		assert.True(t, q.IsEmpty())
	})

	t.Run("pop on empty", func(t *testing.T) {
		q := New[string]()
		v, ok := q.Pop()
		assert.False(t, ok)
		assert.Empty(t, v)
		assert.Zero(t, q.Len())
	})

	t.Run("interleaved push and pop", func(t *testing.T) {
		q := New[int]()
		q.Push(1)
		q.Push(2)
		v, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, 1, v)
		q.Push(3)
		v, ok = q.Pop()
		require.True(t, ok)
		assert.Equal(t, 2, v)
		v, ok = q.Pop()
		require.True(t, ok)
		assert.Equal(t, 3, v)
	})
}

func TestQueueConcurrent(t *testing.T) {
	const (
		producers = 8
		consumers = 8
		perWorker = 1000
	)

	q := New[int]()
	var wg sync.WaitGroup

	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				q.Push(i)
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, producers*perWorker, q.Len())

	var popped sync.Map
	var count int64
	var mu sync.Mutex
	wg.Add(consumers)
	for c := 0; c < consumers; c++ {
		go func() {
			defer wg.Done()
			for {
				v, ok := q.Pop()
				if !ok {
					return
				}
				mu.Lock()
				count++
				mu.Unlock()
				popped.Store(v, true)
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.EqualValues(t, producers*perWorker, count)
	assert.True(t, q.IsEmpty())
}
