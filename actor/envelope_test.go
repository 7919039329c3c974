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
	"github.com/stretchr/testify/require"
)

type ping struct {
	seq int
}

func (ping) ResponseType() pong { return pong{} }

type pong struct {
	seq int
}

type shutdown struct{}

func (shutdown) ResponseType() NoResponse { return NoResponse{} }

func TestEnvelopeIs(t *testing.T) {
	env := NewEnvelope(ping{seq: 1})
	assert.True(t, Is[ping](env))
	assert.False(t, Is[pong](env))
	assert.False(t, Is[int](env))
}

func TestEnvelopeOpen(t *testing.T) {
	env := NewEnvelope(ping{seq: 42})

	msg, ok := Open[ping](env)
	require.True(t, ok)
	assert.Equal(t, 42, msg.seq)
}

func TestEnvelopeOpenWrongType(t *testing.T) {
	env := NewEnvelope(ping{seq: 42})

	wrong, ok := Open[pong](env)
	assert.False(t, ok)
	assert.Zero(t, wrong)

	// a failed open has no side effects; the right type still succeeds
	msg, ok := Open[ping](env)
	require.True(t, ok)
	assert.Equal(t, 42, msg.seq)
}

func TestEnvelopeRepeatedChecks(t *testing.T) {
	env := NewEnvelope("hello")
	for i := 0; i < 3; i++ {
		assert.True(t, Is[string](env))
		assert.False(t, Is[ping](env))
	}
}

func TestEnvelopeNoResponse(t *testing.T) {
	env := NewEnvelope(NoResponse{})
	assert.True(t, Is[NoResponse](env))
}

func TestMessageResponseBinding(t *testing.T) {
	// the message/reply pairing is enforced at compile time
	var _ Message[pong] = ping{}
	var _ Message[NoResponse] = shutdown{}

	env := NewRequest[pong](ping{seq: 7})
	msg, ok := Open[ping](env)
	require.True(t, ok)
	assert.Equal(t, 7, msg.seq)

	fire := NewRequest[NoResponse](shutdown{})
	assert.True(t, Is[shutdown](fire))
}
