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

// Shared is a non-owning reference to an actor. It grants lookup and
// messaging, never teardown.
type Shared[A any] struct {
	id ID[A]
}

// NewShared wraps an identity in a lookup reference.
func NewShared[A any](id ID[A]) Shared[A] {
	return Shared[A]{id: id}
}

// ID returns the referenced identity.
func (s Shared[A]) ID() ID[A] {
	return s.id
}

// Erase returns the referenced identity with its actor type removed.
func (s Shared[A]) Erase() ID[any] {
	return s.id.Erase()
}

// Own is a controlling reference to an actor. Owning grants permission to
// request the actor's teardown; it does not imply uniqueness, and Own values
// may be copied. Revoking control is a matter of discarding the value.
type Own[A any] struct {
	id ID[A]
}

// NewOwn wraps an identity in a controlling reference.
func NewOwn[A any](id ID[A]) Own[A] {
	return Own[A]{id: id}
}

// ID returns the referenced identity.
func (o Own[A]) ID() ID[A] {
	return o.id
}

// Erase returns the referenced identity with its actor type removed.
func (o Own[A]) Erase() ID[any] {
	return o.id.Erase()
}

// Shared demotes the controlling reference to a lookup reference.
func (o Own[A]) Shared() Shared[A] {
	return Shared[A]{id: o.id}
}
