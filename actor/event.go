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

// EventKind discriminates the closed set of routing signals.
type EventKind int

const (
	// EventStart tells an actor to begin executing.
	EventStart EventKind = iota
	// EventStop tells an actor to cease executing.
	EventStop
	// EventYield tells an actor to yield its scheduler slot.
	EventYield
	// EventRaw carries an opaque application payload.
	EventRaw
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "Start"
	case EventStop:
		return "Stop"
	case EventYield:
		return "Yield"
	case EventRaw:
		return "Raw"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one signal from the closed routing set. Start, Stop and Yield
// carry no payload; Raw carries an application-defined identifier and an
// opaque payload.
type Event struct {
	kind    EventKind
	rawID   uint64
	payload any
}

// StartEvent returns the start signal.
func StartEvent() Event {
	return Event{kind: EventStart}
}

// StopEvent returns the stop signal.
func StopEvent() Event {
	return Event{kind: EventStop}
}

// YieldEvent returns the yield signal.
func YieldEvent() Event {
	return Event{kind: EventYield}
}

// RawEvent returns a raw signal carrying an application identifier and an
// opaque payload.
func RawEvent(id uint64, payload any) Event {
	return Event{kind: EventRaw, rawID: id, payload: payload}
}

// Kind returns the signal discriminator.
func (e Event) Kind() EventKind {
	return e.kind
}

// RawID returns the application identifier of a raw event, zero otherwise.
func (e Event) RawID() uint64 {
	return e.rawID
}

// Payload returns the opaque payload of a raw event, nil otherwise.
func (e Event) Payload() any {
	return e.payload
}

// EventFull wraps an Event with its routing information. A source identifier
// of zero marks the event as system-originated.
type EventFull struct {
	event         Event
	sourceID      uint64
	destID        uint64
	destScheduler uint32
}

// NewEventFull builds a routed event from a source actor to a destination
// actor on the given scheduler.
func NewEventFull(ev Event, sourceID, destID uint64, destScheduler uint32) EventFull {
	return EventFull{
		event:         ev,
		sourceID:      sourceID,
		destID:        destID,
		destScheduler: destScheduler,
	}
}

// SystemEvent builds a routed event originated by the runtime itself.
func SystemEvent(ev Event, destID uint64, destScheduler uint32) EventFull {
	return NewEventFull(ev, 0, destID, destScheduler)
}

// Event returns the wrapped signal.
func (f EventFull) Event() Event {
	return f.event
}

// SourceID returns the identifier of the sending actor, zero for system
// events.
func (f EventFull) SourceID() uint64 {
	return f.sourceID
}

// DestID returns the identifier of the destination actor.
func (f EventFull) DestID() uint64 {
	return f.destID
}

// DestScheduler returns the identifier of the destination scheduler.
func (f EventFull) DestScheduler() uint32 {
	return f.destScheduler
}

// IsSystem reports whether the event was originated by the runtime.
func (f EventFull) IsSystem() bool {
	return f.sourceID == 0
}
