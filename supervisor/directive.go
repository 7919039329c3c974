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

package supervisor

import "fmt"

// DirectiveKind enumerates the actions a supervisor can instruct its driver
// to take after a child failure.
type DirectiveKind int

const (
	// DirectiveRestart restarts the identified child.
	DirectiveRestart DirectiveKind = iota
	// DirectiveRestartAll restarts every child of the supervisor.
	DirectiveRestartAll
	// DirectiveStop stops the identified child.
	DirectiveStop
	// DirectiveStopAll stops every child of the supervisor.
	DirectiveStopAll
	// DirectiveEscalate forwards the failure to the parent supervisor.
	DirectiveEscalate
	// DirectiveResume resumes the identified child without a restart.
	DirectiveResume
)

// String implements fmt.Stringer.
func (k DirectiveKind) String() string {
	switch k {
	case DirectiveRestart:
		return "Restart"
	case DirectiveRestartAll:
		return "RestartAll"
	case DirectiveStop:
		return "Stop"
	case DirectiveStopAll:
		return "StopAll"
	case DirectiveEscalate:
		return "Escalate"
	case DirectiveResume:
		return "Resume"
	default:
		return fmt.Sprintf("DirectiveKind(%d)", int(k))
	}
}

// Directive is the supervisor's instruction to its driver. Directives that
// target a single child carry that child's identifier.
type Directive struct {
	kind    DirectiveKind
	childID uint64
}

// Restart instructs the driver to restart the identified child.
func Restart(childID uint64) Directive {
	return Directive{kind: DirectiveRestart, childID: childID}
}

// RestartAll instructs the driver to restart every child.
func RestartAll() Directive {
	return Directive{kind: DirectiveRestartAll}
}

// Stop instructs the driver to stop the identified child.
func Stop(childID uint64) Directive {
	return Directive{kind: DirectiveStop, childID: childID}
}

// StopAll instructs the driver to stop every child.
func StopAll() Directive {
	return Directive{kind: DirectiveStopAll}
}

// Escalate instructs the driver to forward the failure to the parent
// supervisor.
func Escalate() Directive {
	return Directive{kind: DirectiveEscalate}
}

// Resume instructs the driver to resume the identified child as is.
func Resume(childID uint64) Directive {
	return Directive{kind: DirectiveResume, childID: childID}
}

// Kind returns the directive discriminator.
func (d Directive) Kind() DirectiveKind {
	return d.kind
}

// ChildID returns the targeted child identifier, zero for directives that
// target no single child.
func (d Directive) ChildID() uint64 {
	return d.childID
}

// IsRestart reports whether the directive restarts one or all children.
func (d Directive) IsRestart() bool {
	return d.kind == DirectiveRestart || d.kind == DirectiveRestartAll
}

// IsStop reports whether the directive stops one or all children.
func (d Directive) IsStop() bool {
	return d.kind == DirectiveStop || d.kind == DirectiveStopAll
}

// IsEscalate reports whether the directive escalates the failure.
func (d Directive) IsEscalate() bool {
	return d.kind == DirectiveEscalate
}

// String implements fmt.Stringer.
func (d Directive) String() string {
	switch d.kind {
	case DirectiveRestart, DirectiveStop, DirectiveResume:
		return fmt.Sprintf("%s(%d)", d.kind, d.childID)
	default:
		return d.kind.String()
	}
}
