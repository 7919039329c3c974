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

import "github.com/gramkit/actors/errors"

// responseKind discriminates the outcomes of a request to an actor.
type responseKind int

const (
	responseOK responseKind = iota
	responseNotFound
	responseNotRunning
	responseTimeout
	responseError
)

// Response is the outcome of a request sent to an actor: either a value or
// one of the defined failure conditions.
type Response[T any] struct {
	kind  responseKind
	value T
	msg   string
}

// OK returns a successful response carrying v.
func OK[T any](v T) Response[T] {
	return Response[T]{kind: responseOK, value: v}
}

// NotFound returns the response for a request to an unknown actor.
func NotFound[T any]() Response[T] {
	return Response[T]{kind: responseNotFound}
}

// NotRunning returns the response for a request to an actor that exists but
// is not in the running state.
func NotRunning[T any]() Response[T] {
	return Response[T]{kind: responseNotRunning}
}

// Timeout returns the response for a request that was not answered in time.
func Timeout[T any]() Response[T] {
	return Response[T]{kind: responseTimeout}
}

// Failure returns a response carrying an application failure message.
func Failure[T any](msg string) Response[T] {
	return Response[T]{kind: responseError, msg: msg}
}

// IsOK reports whether the response carries a value.
func (r Response[T]) IsOK() bool {
	return r.kind == responseOK
}

// IsErr reports whether the response carries a failure.
func (r Response[T]) IsErr() bool {
	return r.kind != responseOK
}

// Ok returns the carried value. The second return value is false for failure
// responses.
func (r Response[T]) Ok() (T, bool) {
	if r.kind != responseOK {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure as an error, nil for successful responses.
func (r Response[T]) Err() error {
	switch r.kind {
	case responseOK:
		return nil
	case responseNotFound:
		return errors.ErrActorNotFound
	case responseNotRunning:
		return errors.ErrActorNotRunning
	case responseTimeout:
		return errors.ErrRequestTimeout
	default:
		return errors.NewResponseError(r.msg)
	}
}

// Result unpacks the response into the conventional value-or-error pair.
func (r Response[T]) Result() (T, error) {
	return r.value, r.Err()
}
