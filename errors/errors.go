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

// Package errors defines the sentinel and typed errors shared across the
// actor substrate.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrMailboxFull is returned when a bounded mailbox has reached its capacity.
	// The condition is recoverable: a subsequent Pop frees a slot and the push
	// can be retried.
	ErrMailboxFull = errors.New("mailbox is full")

	// ErrMailboxDisposed is returned when operations are attempted on a disposed
	// mailbox. Distinct from ErrMailboxFull so callers can tell a transient
	// capacity failure from a mailbox that will never accept again.
	ErrMailboxDisposed = errors.New("mailbox has been disposed")

	// ErrActorNotFound indicates that the specified actor could not be found.
	ErrActorNotFound = errors.New("actor not found")

	// ErrActorNotRunning indicates that the specified actor exists but is not
	// in a runnable state.
	ErrActorNotRunning = errors.New("actor is not running")

	// ErrRequestTimeout indicates that a request timed out while waiting for a
	// response.
	ErrRequestTimeout = errors.New("request timed out")
)

// NotFoundError reports that the actor with the given numeric identity is not
// registered. It unwraps to ErrActorNotFound.
type NotFoundError struct {
	ID uint64
}

// enforce compilation error
var _ error = (*NotFoundError)(nil)

// NewNotFoundError creates an instance of NotFoundError.
func NewNotFoundError(id uint64) *NotFoundError {
	return &NotFoundError{ID: id}
}

// Error implements the standard error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("actor %d not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrActorNotFound
}

// NotRunningError reports that the actor with the given numeric identity is
// registered but not runnable. It unwraps to ErrActorNotRunning.
type NotRunningError struct {
	ID uint64
}

var _ error = (*NotRunningError)(nil)

// NewNotRunningError creates an instance of NotRunningError.
func NewNotRunningError(id uint64) *NotRunningError {
	return &NotRunningError{ID: id}
}

// Error implements the standard error interface.
func (e *NotRunningError) Error() string {
	return fmt.Sprintf("actor %d is not running", e.ID)
}

func (e *NotRunningError) Unwrap() error {
	return ErrActorNotRunning
}

// InvalidStateError reports a lifecycle transition that the current actor
// state does not permit.
type InvalidStateError struct {
	Reason string
}

var _ error = (*InvalidStateError)(nil)

// NewInvalidStateError creates an instance of InvalidStateError.
func NewInvalidStateError(reason string) *InvalidStateError {
	return &InvalidStateError{Reason: reason}
}

// Error implements the standard error interface.
func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid actor state: %s", e.Reason)
}

// ResponseError carries the failure message of an errored message response.
type ResponseError struct {
	Reason string
}

var _ error = (*ResponseError)(nil)

// NewResponseError creates an instance of ResponseError.
func NewResponseError(reason string) *ResponseError {
	return &ResponseError{Reason: reason}
}

// Error implements the standard error interface.
func (e *ResponseError) Error() string {
	return e.Reason
}
