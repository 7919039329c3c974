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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventKinds(t *testing.T) {
	assert.Equal(t, EventStart, StartEvent().Kind())
	assert.Equal(t, EventStop, StopEvent().Kind())
	assert.Equal(t, EventYield, YieldEvent().Kind())

	raw := RawEvent(17, "payload")
	assert.Equal(t, EventRaw, raw.Kind())
	assert.EqualValues(t, 17, raw.RawID())
	assert.Equal(t, "payload", raw.Payload())
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "Start", EventStart.String())
	assert.Equal(t, "Stop", EventStop.String())
	assert.Equal(t, "Yield", EventYield.String())
	assert.Equal(t, "Raw", EventRaw.String())
}

func TestEventFullRouting(t *testing.T) {
	full := NewEventFull(RawEvent(1, nil), 10, 20, 3)
	assert.EqualValues(t, 10, full.SourceID())
	assert.EqualValues(t, 20, full.DestID())
	assert.EqualValues(t, 3, full.DestScheduler())
	assert.Equal(t, EventRaw, full.Event().Kind())
	assert.False(t, full.IsSystem())
}

func TestEventFullSystem(t *testing.T) {
	full := SystemEvent(StopEvent(), 20, 3)
	assert.Zero(t, full.SourceID())
	assert.True(t, full.IsSystem())

	// a zero source id always means system-originated
	assert.True(t, NewEventFull(StartEvent(), 0, 20, 3).IsSystem())
}
