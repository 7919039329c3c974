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
	"github.com/gramkit/actors/internal/syncmap"
	"github.com/gramkit/actors/log"
)

// Registry is a concurrent directory mapping untyped actor identifiers to
// their metadata. All operations are safe for concurrent use, never panic,
// and never block indefinitely. Absence is reported through return values,
// never through errors.
type Registry struct {
	actors *syncmap.SyncMap[uint64, Info]
	logger log.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the registry logger. The default discards all messages.
func WithLogger(logger log.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		actors: syncmap.New[uint64, Info](),
		logger: log.DiscardLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Insert stores info under id, overwriting any existing entry. It returns
// the previous entry when one was overwritten.
func (r *Registry) Insert(id uint64, info Info) (Info, bool) {
	previous, existed := r.actors.Swap(id, info)
	r.logger.Debugf("registered actor %d (%s) on scheduler %d", id, info.Name(), info.SchedulerID())
	return previous, existed
}

// Remove deletes the entry for id. It returns the removed entry when one
// existed.
func (r *Registry) Remove(id uint64) (Info, bool) {
	removed, existed := r.actors.Delete(id)
	if existed {
		r.logger.Debugf("unregistered actor %d (%s)", id, removed.Name())
	}
	return removed, existed
}

// Get returns a copy of the entry for id.
func (r *Registry) Get(id uint64) (Info, bool) {
	return r.actors.Get(id)
}

// Contains reports whether an entry for id exists.
func (r *Registry) Contains(id uint64) bool {
	_, ok := r.actors.Get(id)
	return ok
}

// Update atomically replaces the entry for id with f applied to its current
// value. No concurrent writer observes or clobbers a partial update; each
// update sees the immediately prior value. When id is absent the call is a
// no-op and Update returns false.
//
// f runs while the registry lock is held and must not call back into the
// registry.
func (r *Registry) Update(id uint64, f func(Info) Info) bool {
	return r.actors.Update(id, f)
}

// Len returns the number of registered actors.
func (r *Registry) Len() int {
	return r.actors.Len()
}

// IDs returns the identifiers of all registered actors in no particular
// order. The snapshot is consistent: its length equals the Len observed at
// the same instant.
func (r *Registry) IDs() []uint64 {
	return r.actors.Keys()
}

// IsEmpty reports whether no actors are registered.
func (r *Registry) IsEmpty() bool {
	return r.actors.Len() == 0
}

// Clear removes every entry.
func (r *Registry) Clear() {
	r.actors.Reset()
	r.logger.Debug("registry cleared")
}
