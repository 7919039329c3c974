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

// Package supervisor implements restart policies for groups of actors. A
// Supervisor tracks the failure history of each registered child and answers
// every failure with a Directive telling the driver what to do next.
package supervisor

import (
	"time"

	"github.com/gramkit/actors/log"
)

// Strategy selects how a supervisor reacts to child failures.
type Strategy int

const (
	// OneForOne restarts only the failing child, up to the retry budget.
	OneForOne Strategy = iota
	// OneForAll restarts every child whenever any one of them fails.
	OneForAll
	// EscalateFailure forwards every failure to the parent supervisor.
	EscalateFailure
	// StopChild stops the failing child without restarting it.
	StopChild
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case OneForOne:
		return "OneForOne"
	case OneForAll:
		return "OneForAll"
	case EscalateFailure:
		return "Escalate"
	case StopChild:
		return "Stop"
	default:
		return "Unknown"
	}
}

const (
	// DefaultMaxRetries bounds restarts per child per window when WithRetry
	// is not given.
	DefaultMaxRetries uint32 = 3
	// DefaultWindow is the restart window applied when WithRetry is not
	// given.
	DefaultWindow = time.Minute
)

// Supervisor applies a restart Strategy to a set of supervised children.
//
// A Supervisor is not internally synchronized. It is meant to be owned and
// mutated by a single controlling goroutine; callers that share one across
// goroutines must provide their own locking.
type Supervisor struct {
	strategy   Strategy
	maxRetries uint32
	window     time.Duration
	children   map[uint64]*Child
	logger     log.Logger
}

// Option configures a Supervisor.
type Option func(*Supervisor)

// WithRetry sets the restart budget: at most maxRetries restarts per child
// within each window.
func WithRetry(maxRetries uint32, window time.Duration) Option {
	return func(s *Supervisor) {
		s.maxRetries = maxRetries
		s.window = window
	}
}

// WithLogger sets the supervisor logger. The default discards all messages.
func WithLogger(logger log.Logger) Option {
	return func(s *Supervisor) {
		s.logger = logger
	}
}

// New creates a supervisor with the given strategy and no children.
func New(strategy Strategy, opts ...Option) *Supervisor {
	s := &Supervisor{
		strategy:   strategy,
		maxRetries: DefaultMaxRetries,
		window:     DefaultWindow,
		children:   make(map[uint64]*Child),
		logger:     log.DiscardLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Strategy returns the configured strategy.
func (s *Supervisor) Strategy() Strategy {
	return s.strategy
}

// MaxRetries returns the per-child restart budget.
func (s *Supervisor) MaxRetries() uint32 {
	return s.maxRetries
}

// Window returns the restart window.
func (s *Supervisor) Window() time.Duration {
	return s.window
}

// AddChild registers an actor for supervision with a zero restart count.
// Re-adding a registered id resets its history.
func (s *Supervisor) AddChild(id uint64) {
	s.children[id] = newChild(id)
	s.logger.Debugf("supervising actor %d under %s", id, s.strategy)
}

// RemoveChild drops an actor from supervision.
func (s *Supervisor) RemoveChild(id uint64) {
	delete(s.children, id)
}

// Child returns the restart history of a supervised actor.
func (s *Supervisor) Child(id uint64) (*Child, bool) {
	child, ok := s.children[id]
	return child, ok
}

// Children returns the identifiers of all supervised actors in no particular
// order.
func (s *Supervisor) Children() []uint64 {
	ids := make([]uint64, 0, len(s.children))
	for id := range s.children {
		ids = append(ids, id)
	}
	return ids
}

// HandleFailure records a failure of the identified child and returns the
// directive the strategy prescribes.
//
// Under OneForOne the child's restart is counted and Restart is returned
// while the child has budget left in the current window; an exhausted child
// gets Stop until its window elapses. Under OneForAll every child's restart
// is counted and RestartAll is returned regardless of individual budgets.
// Escalate and Stop strategies return their directive without touching any
// counters.
//
// A failure for an id that was never registered is a no-op returning
// Stop(id); register children with AddChild first.
func (s *Supervisor) HandleFailure(id uint64) Directive {
	switch s.strategy {
	case OneForOne:
		child, ok := s.children[id]
		if !ok {
			s.logger.Warnf("failure reported for unsupervised actor %d", id)
			return Stop(id)
		}
		if !child.CanRestart(s.maxRetries, s.window) {
			s.logger.Warnf("actor %d exhausted %d restarts within %s, stopping", id, s.maxRetries, s.window)
			return Stop(id)
		}
		child.RecordRestart(s.window)
		s.logger.Debugf("restarting actor %d (attempt %d of %d)", id, child.RestartCount(), s.maxRetries)
		return Restart(id)

	case OneForAll:
		if _, ok := s.children[id]; !ok {
			s.logger.Warnf("failure reported for unsupervised actor %d", id)
			return Stop(id)
		}
		for _, child := range s.children {
			child.RecordRestart(s.window)
		}
		s.logger.Debugf("actor %d failed, restarting all %d children", id, len(s.children))
		return RestartAll()

	case EscalateFailure:
		return Escalate()

	default:
		return Stop(id)
	}
}
