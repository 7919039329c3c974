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

import "fmt"

// ID identifies a single incarnation of an actor of type A.
//
// The identity carries three components: a numeric identifier unique among
// live actors, the identifier of the scheduler the actor runs on, and a
// generation counter incremented each time the logical actor is restarted.
// Two IDs referring to different incarnations of the same actor therefore
// never compare equal.
//
// The type parameter exists only at compile time. It prevents an ID for one
// actor type from being used where an ID for another is expected. Erase
// removes the typing when identities of heterogeneous actors must be mixed,
// for example as registry keys.
//
// The zero value is the zero identity; see IsZero.
type ID[A any] struct {
	_           [0]*A
	id          uint64
	schedulerID uint32
	generation  uint32
}

// NewID builds an ID from its raw components.
func NewID[A any](id uint64, schedulerID, generation uint32) ID[A] {
	return ID[A]{
		id:          id,
		schedulerID: schedulerID,
		generation:  generation,
	}
}

// ZeroID returns the zero identity for actor type A.
func ZeroID[A any]() ID[A] {
	return ID[A]{}
}

// Uint64 returns the numeric identifier component.
func (x ID[A]) Uint64() uint64 {
	return x.id
}

// SchedulerID returns the identifier of the scheduler the actor runs on.
func (x ID[A]) SchedulerID() uint32 {
	return x.schedulerID
}

// Generation returns the incarnation counter.
func (x ID[A]) Generation() uint32 {
	return x.generation
}

// IsZero reports whether x is the zero identity.
func (x ID[A]) IsZero() bool {
	return x.id == 0 && x.schedulerID == 0 && x.generation == 0
}

// Erase removes the compile-time actor type from x. The returned identity
// compares equal to any other erased identity with the same components,
// regardless of the type it was erased from.
func (x ID[A]) Erase() ID[any] {
	return ID[any]{
		id:          x.id,
		schedulerID: x.schedulerID,
		generation:  x.generation,
	}
}

// Compare orders identities lexicographically by identifier, then scheduler,
// then generation. It returns -1 when x sorts before y, +1 when after, and 0
// when the identities are equal.
func (x ID[A]) Compare(y ID[A]) int {
	switch {
	case x.id < y.id:
		return -1
	case x.id > y.id:
		return 1
	case x.schedulerID < y.schedulerID:
		return -1
	case x.schedulerID > y.schedulerID:
		return 1
	case x.generation < y.generation:
		return -1
	case x.generation > y.generation:
		return 1
	default:
		return 0
	}
}

// Equal reports whether x and y are the same identity.
func (x ID[A]) Equal(y ID[A]) bool {
	return x.Compare(y) == 0
}

// Less reports whether x sorts strictly before y.
func (x ID[A]) Less(y ID[A]) bool {
	return x.Compare(y) < 0
}

// String implements fmt.Stringer.
func (x ID[A]) String() string {
	return fmt.Sprintf("actor(%d/%d.%d)", x.id, x.schedulerID, x.generation)
}
