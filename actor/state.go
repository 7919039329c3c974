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

// stateKind discriminates the lifecycle phases of an actor.
type stateKind int

const (
	stateStarting stateKind = iota
	stateRunning
	stateStopping
	stateMigrating
	stateDead
)

// State describes the lifecycle phase an actor is in. The migrating phase
// carries the identifier of the destination scheduler; the remaining phases
// carry no payload. The zero value is Starting.
type State struct {
	kind stateKind
	dest uint32
}

// Lifecycle phases with no payload.
var (
	Starting = State{kind: stateStarting}
	Running  = State{kind: stateRunning}
	Stopping = State{kind: stateStopping}
	Dead     = State{kind: stateDead}
)

// Migrating returns the state of an actor being moved to the scheduler with
// the given identifier.
func Migrating(destSchedulerID uint32) State {
	return State{kind: stateMigrating, dest: destSchedulerID}
}

// IsRunnable reports whether the actor may currently execute work. Only a
// running actor is runnable.
func (s State) IsRunnable() bool {
	return s.kind == stateRunning
}

// IsAlive reports whether the actor still exists in any form. Every phase
// except Dead counts as alive.
func (s State) IsAlive() bool {
	return s.kind != stateDead
}

// MigratingTo returns the destination scheduler identifier when the actor is
// migrating. The second return value is false otherwise.
func (s State) MigratingTo() (uint32, bool) {
	if s.kind != stateMigrating {
		return 0, false
	}
	return s.dest, true
}

// String implements fmt.Stringer.
func (s State) String() string {
	switch s.kind {
	case stateStarting:
		return "Starting"
	case stateRunning:
		return "Running"
	case stateStopping:
		return "Stopping"
	case stateMigrating:
		return fmt.Sprintf("Migrating(%d)", s.dest)
	case stateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}
