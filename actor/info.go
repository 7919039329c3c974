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

import "time"

// Info carries the metadata the registry tracks for a live actor: its name,
// the scheduler it runs on, its lifecycle state, and an optional advisory
// deadline. Info is a value type; the registry stores and hands out copies,
// and mutations reach the registry only through Registry.Update.
//
// The deadline is advisory. The runtime never evicts an actor on expiry;
// whoever drives the actor polls DeadlineExpired and reacts.
type Info struct {
	name        string
	schedulerID uint32
	state       State
	createdAt   time.Time
	deadline    time.Time
}

// NewInfo returns the metadata of a freshly created actor on the given
// scheduler. The actor starts in the Starting state with no deadline.
func NewInfo(name string, schedulerID uint32) Info {
	return Info{
		name:        name,
		schedulerID: schedulerID,
		state:       Starting,
		createdAt:   time.Now(),
	}
}

// Name returns the actor name.
func (i Info) Name() string {
	return i.name
}

// SchedulerID returns the identifier of the owning scheduler.
func (i Info) SchedulerID() uint32 {
	return i.schedulerID
}

// State returns the current lifecycle state.
func (i Info) State() State {
	return i.state
}

// CreatedAt returns the creation timestamp.
func (i Info) CreatedAt() time.Time {
	return i.createdAt
}

// SetState returns a copy of i in the given lifecycle state.
func (i Info) SetState(state State) Info {
	i.state = state
	return i
}

// SetDeadline returns a copy of i with the advisory deadline set.
func (i Info) SetDeadline(deadline time.Time) Info {
	i.deadline = deadline
	return i
}

// ClearDeadline returns a copy of i with no deadline.
func (i Info) ClearDeadline() Info {
	i.deadline = time.Time{}
	return i
}

// Deadline returns the advisory deadline. The second return value is false
// when no deadline is set.
func (i Info) Deadline() (time.Time, bool) {
	if i.deadline.IsZero() {
		return time.Time{}, false
	}
	return i.deadline, true
}

// DeadlineExpired reports whether a deadline is set and already in the past.
func (i Info) DeadlineExpired() bool {
	return !i.deadline.IsZero() && time.Now().After(i.deadline)
}
