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

package supervisor

import "time"

// Child tracks the restart history of one supervised actor. A child lives
// for the lifetime of its supervisor; RemoveChild is the only way to drop
// one.
type Child struct {
	id           uint64
	restartCount uint32
	windowStart  time.Time
}

// newChild returns a child with no recorded restarts.
func newChild(id uint64) *Child {
	return &Child{
		id:          id,
		windowStart: time.Now(),
	}
}

// ID returns the child's actor identifier.
func (c *Child) ID() uint64 {
	return c.id
}

// RestartCount returns the number of restarts recorded in the current
// window.
func (c *Child) RestartCount() uint32 {
	return c.restartCount
}

// WindowStart returns the start of the current restart window.
func (c *Child) WindowStart() time.Time {
	return c.windowStart
}

// CanRestart reports whether the child still has restart budget: its count
// is below maxRetries, or the window has elapsed and the count is due to be
// reset by the next RecordRestart.
func (c *Child) CanRestart(maxRetries uint32, window time.Duration) bool {
	if time.Since(c.windowStart) > window {
		return true
	}
	return c.restartCount < maxRetries
}

// RecordRestart counts one restart. When the window has elapsed the count
// restarts at 1 and a new window begins; otherwise the count accumulates.
func (c *Child) RecordRestart(window time.Duration) {
	if time.Since(c.windowStart) > window {
		c.restartCount = 1
		c.windowStart = time.Now()
		return
	}
	c.restartCount++
}
