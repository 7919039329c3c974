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

package supervisor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gramkit/actors/actor"
	"github.com/gramkit/actors/supervisor"
)

// simulates the external driver: a failure is reported to the supervisor,
// the directive is applied to the registry and the actor's mailbox.
func TestDriverRestartsThenStops(t *testing.T) {
	const childID uint64 = 1

	registry := actor.NewRegistry()
	mailbox := actor.NewMailbox[actor.EventFull]()
	defer mailbox.Dispose()

	sup := supervisor.New(supervisor.OneForOne, supervisor.WithRetry(3, 60*time.Second))

	registry.Insert(childID, actor.NewInfo("session", 0))
	registry.Update(childID, func(info actor.Info) actor.Info {
		return info.SetState(actor.Running)
	})
	sup.AddChild(childID)

	apply := func(d supervisor.Directive) {
		switch d.Kind() {
		case supervisor.DirectiveRestart:
			registry.Update(d.ChildID(), func(info actor.Info) actor.Info {
				return info.SetState(actor.Starting)
			})
			require.NoError(t, mailbox.Push(actor.SystemEvent(actor.StartEvent(), d.ChildID(), 0)))
			registry.Update(d.ChildID(), func(info actor.Info) actor.Info {
				return info.SetState(actor.Running)
			})
		case supervisor.DirectiveStop:
			require.NoError(t, mailbox.Push(actor.SystemEvent(actor.StopEvent(), d.ChildID(), 0)))
			registry.Update(d.ChildID(), func(info actor.Info) actor.Info {
				return info.SetState(actor.Dead)
			})
		}
	}

	// three failures are absorbed by restarts
	for i := 1; i <= 3; i++ {
		directive := sup.HandleFailure(childID)
		require.Equal(t, supervisor.Restart(childID), directive)
		apply(directive)

		child, _ := sup.Child(childID)
		require.EqualValues(t, i, child.RestartCount())

		info, _ := registry.Get(childID)
		require.True(t, info.State().IsRunnable())
	}

	// the fourth failure exhausts the budget and the actor dies
	directive := sup.HandleFailure(childID)
	require.Equal(t, supervisor.Stop(childID), directive)
	apply(directive)

	info, ok := registry.Get(childID)
	require.True(t, ok)
	assert.False(t, info.State().IsAlive())

	// the mailbox holds three start events and one stop, in order
	for i := 0; i < 3; i++ {
		msg, ok := mailbox.Pop()
		require.True(t, ok)
		assert.Equal(t, actor.EventStart, msg.Event().Kind())
		assert.True(t, msg.IsSystem())
	}
	msg, ok := mailbox.Pop()
	require.True(t, ok)
	assert.Equal(t, actor.EventStop, msg.Event().Kind())
	assert.True(t, mailbox.IsEmpty())
}
