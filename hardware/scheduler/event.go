// This file is part of Satcore.
//
// Satcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Satcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Satcore.  If not, see <https://www.gnu.org/licenses/>.

package scheduler

import (
	"github.com/satcore/satcore/assert"
)

// OwnerID is the stable identifier of a registered event. It is used to key
// events in a save state and must be unique within a Scheduler.
type OwnerID string

// Handle is returned by RegisterEvent() and is used to refer to the event in
// all other Scheduler functions.
type Handle int

// Callback is the function run when an event's deadline is reached. The
// context argument is the value supplied to RegisterEvent().
type Callback func(ec *EventContext, context any)

type event struct {
	owner OwnerID

	// deadline in owner clock ticks. NoDeadline when the event is inactive
	target uint64

	// target converted to master clock ticks, rounded up
	master uint64

	// owner ticks per master tick as num / den
	num uint64
	den uint64

	callback Callback
	context  any
}

func (e *event) active() bool {
	return e.target != NoDeadline
}

func (e *event) setTarget(target uint64) {
	e.target = target
	e.master = toMaster(target, e.num, e.den)
}

func (e *event) deactivate() {
	e.target = NoDeadline
	e.master = NoDeadline
}

type rescheduleAction int

const (
	oneShot rescheduleAction = iota
	fromPrevious
	fromNow
)

// EventContext is passed to an event's callback. Calling neither of the
// reschedule functions means the event will not run again until it is
// explicitly scheduled.
//
// The EventContext is only valid for the duration of the callback.
type EventContext struct {
	sched  *Scheduler
	handle Handle

	// the deadline that caused the event to run, in owner clock ticks
	deadline uint64

	action   rescheduleAction
	interval uint64
}

func (ec *EventContext) reset(h Handle, deadline uint64) {
	ec.handle = h
	ec.deadline = deadline
	ec.action = oneShot
	ec.interval = 0
}

// RescheduleFromPrevious sets the next deadline to the deadline that has just
// been reached plus interval. This is the correct choice for periodic events
// because no drift is introduced by callback latency.
func (ec *EventContext) RescheduleFromPrevious(interval uint64) {
	assert.Contract(interval > 0, "scheduler: %s: reschedule with zero interval", ec.Owner())
	ec.action = fromPrevious
	ec.interval = interval
}

// RescheduleFromNow sets the next deadline to the owner's current clock plus
// interval.
func (ec *EventContext) RescheduleFromNow(interval uint64) {
	assert.Contract(interval > 0, "scheduler: %s: reschedule with zero interval", ec.Owner())
	ec.action = fromNow
	ec.interval = interval
}

// Handle returns the handle of the running event.
func (ec *EventContext) Handle() Handle {
	return ec.handle
}

// Owner returns the OwnerID of the running event.
func (ec *EventContext) Owner() OwnerID {
	return ec.sched.events[ec.handle].owner
}

// Deadline returns the deadline that was reached, in owner clock ticks.
func (ec *EventContext) Deadline() uint64 {
	return ec.deadline
}

// Late returns how many owner clock ticks the event is running behind its
// deadline.
func (ec *EventContext) Late() uint64 {
	now := ec.sched.OwnerNow(ec.handle)
	if now < ec.deadline {
		return 0
	}
	return now - ec.deadline
}
