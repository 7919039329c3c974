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

// NoResponse marks a message that expects no reply.
type NoResponse struct{}

// Message ties a request type to the reply type R it expects. The method is
// a compile-time marker only; its return value is never used. Messages that
// expect no reply declare R as NoResponse.
type Message[R any] interface {
	ResponseType() R
}

// NewRequest wraps a message whose expected reply type is known at compile
// time. The envelope itself stays type-erased; the constraint only keeps a
// caller from pairing a message with the wrong reply type.
func NewRequest[R any](msg Message[R]) Envelope {
	return Envelope{message: msg}
}

// Envelope is a type-erased carrier holding exactly one message value. The
// dynamic type of the contained value is preserved; use Is to test it and
// Open to recover the value.
//
// Is and Open are package-level functions because Go methods cannot carry
// their own type parameters.
type Envelope struct {
	message any
}

// NewEnvelope wraps a message value.
func NewEnvelope[M any](message M) Envelope {
	return Envelope{message: message}
}

// Message returns the contained value without type checking.
func (e Envelope) Message() any {
	return e.message
}

// Is reports whether the value contained in env has dynamic type exactly T.
func Is[T any](env Envelope) bool {
	_, ok := env.message.(T)
	return ok
}

// Open recovers the contained value when its dynamic type is exactly T.
// Otherwise it returns the zero value of T and false, leaving env untouched.
func Open[T any](env Envelope) (T, bool) {
	v, ok := env.message.(T)
	return v, ok
}
