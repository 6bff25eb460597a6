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
	"fmt"
	"sort"
	"strings"

	"github.com/satcore/satcore/assert"
)

// DefaultCapacity is the number of events a Scheduler created with a capacity
// of zero can hold.
const DefaultCapacity = 32

// Scheduler is the master clock and the table of registered events. It is not
// safe for concurrent use.
type Scheduler struct {
	// the master clock
	currentCount uint64

	// the earliest master deadline of all active events. may be earlier than
	// the true earliest deadline but is never later
	nextCount uint64

	events []event
	owners map[OwnerID]Handle

	// reused for every callback
	ctx EventContext

	executing bool
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The capacity argument is the maximum number of events that can be
// registered.
func NewScheduler(capacity int) *Scheduler {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	s := &Scheduler{
		nextCount: NoDeadline,
		events:    make([]event, 0, capacity),
		owners:    make(map[OwnerID]Handle, capacity),
	}
	s.ctx.sched = s
	return s
}

func (s *Scheduler) checkHandle(h Handle) *event {
	assert.Contract(h >= 0 && int(h) < len(s.events), "scheduler: invalid handle %d", h)
	return &s.events[h]
}

// RegisterEvent adds an event to the table. The event is inactive and has a
// clock ratio of 1:1 until told otherwise. The context argument is passed to
// the callback unchanged.
func (s *Scheduler) RegisterEvent(owner OwnerID, context any, callback Callback) Handle {
	assert.Contract(owner != "", "scheduler: empty owner id")
	assert.Contract(callback != nil, "scheduler: %s: nil callback", owner)
	_, dup := s.owners[owner]
	assert.Contract(!dup, "scheduler: %s: already registered", owner)
	assert.Contract(len(s.events) < cap(s.events), "scheduler: %s: event table is full (%d events)", owner, cap(s.events))

	h := Handle(len(s.events))
	s.events = append(s.events, event{
		owner:    owner,
		target:   NoDeadline,
		master:   NoDeadline,
		num:      1,
		den:      1,
		callback: callback,
		context:  context,
	})
	s.owners[owner] = h

	return h
}

// Lookup returns the handle for the OwnerID.
func (s *Scheduler) Lookup(owner OwnerID) (Handle, bool) {
	h, ok := s.owners[owner]
	return h, ok
}

// SetEventCountFactor sets the clock ratio of the event to num owner ticks per
// den master ticks. If the event is active the number of owner ticks remaining
// until the deadline is preserved.
func (s *Scheduler) SetEventCountFactor(h Handle, num uint64, den uint64) {
	e := s.checkHandle(h)
	assert.Contract(num > 0 && den > 0, "scheduler: %s: invalid count factor %d/%d", e.owner, num, den)

	if !e.active() {
		e.num = num
		e.den = den
		return
	}

	var remaining uint64
	if now := toOwner(s.currentCount, e.num, e.den); e.target > now {
		remaining = e.target - now
	}

	oldMaster := e.master
	e.num = num
	e.den = den
	e.setTarget(addInterval(toOwner(s.currentCount, num, den), remaining))
	s.folded(oldMaster, e.master)
}

// ScheduleFromNow activates the event with a deadline interval owner ticks from
// the owner's current clock. Rescheduling an active event replaces the
// previous deadline.
func (s *Scheduler) ScheduleFromNow(h Handle, interval uint64) {
	e := s.checkHandle(h)
	oldMaster := e.master
	e.setTarget(addInterval(toOwner(s.currentCount, e.num, e.den), interval))
	s.folded(oldMaster, e.master)
}

// ScheduleAt activates the event with an absolute deadline in owner ticks. A
// deadline that has already passed will cause the event to run on the next
// call to Advance().
func (s *Scheduler) ScheduleAt(h Handle, deadline uint64) {
	e := s.checkHandle(h)
	if deadline == NoDeadline {
		deadline = NoDeadline - 1
	}
	oldMaster := e.master
	e.setTarget(deadline)
	s.folded(oldMaster, e.master)
}

// Cancel deactivates the event. Cancelling an inactive event has no effect.
func (s *Scheduler) Cancel(h Handle) {
	e := s.checkHandle(h)
	if !e.active() {
		return
	}
	oldMaster := e.master
	e.deactivate()
	if oldMaster == s.nextCount && !s.executing {
		s.recompute()
	}
}

// folded updates nextCount after an event's master deadline has changed from
// oldMaster to newMaster.
func (s *Scheduler) folded(oldMaster uint64, newMaster uint64) {
	if s.executing {
		return
	}
	if newMaster < s.nextCount {
		s.nextCount = newMaster
	} else if oldMaster == s.nextCount && newMaster > oldMaster {
		s.recompute()
	}
}

func (s *Scheduler) recompute() {
	s.nextCount = NoDeadline
	for i := range s.events {
		if s.events[i].master < s.nextCount {
			s.nextCount = s.events[i].master
		}
	}
}

// Advance moves the master clock forward. Any event with a deadline at or
// before the new master clock is run before the function returns.
//
// Advance must not be called from inside a callback.
func (s *Scheduler) Advance(delta uint64) {
	s.currentCount += delta
	if s.currentCount >= s.nextCount {
		s.execute()
	}
}

func (s *Scheduler) execute() {
	assert.Contract(!s.executing, "scheduler: advance called from inside an event callback")

	s.executing = true
	defer func() {
		s.executing = false
		s.recompute()
	}()

	for {
		h := -1
		best := NoDeadline
		for i := range s.events {
			m := s.events[i].master
			if m <= s.currentCount && m < best {
				best = m
				h = i
			}
		}
		if h < 0 {
			return
		}
		s.fire(Handle(h))
	}
}

func (s *Scheduler) fire(h Handle) {
	e := &s.events[h]
	ec := &s.ctx
	ec.reset(h, e.target)

	// the event is one-shot unless the callback says otherwise. deactivating
	// now means a callback can also reschedule with ScheduleFromNow()
	e.deactivate()
	e.callback(ec, e.context)

	switch ec.action {
	case fromPrevious:
		e.setTarget(addInterval(ec.deadline, ec.interval))
	case fromNow:
		e.setTarget(addInterval(toOwner(s.currentCount, e.num, e.den), ec.interval))
	}
}

// Reset sets the master clock to zero. Registered events keep their deadlines
// and it is up to the owners to reschedule as appropriate.
func (s *Scheduler) Reset() {
	s.currentCount = 0
	s.recompute()
}

// Now returns the master clock.
func (s *Scheduler) Now() uint64 {
	return s.currentCount
}

// Next returns the earliest master deadline of all active events or NoDeadline
// if there are no active events.
func (s *Scheduler) Next() uint64 {
	return s.nextCount
}

// Budget returns the number of master ticks that can elapse before the next
// event is due. Zero means an event is already due.
func (s *Scheduler) Budget() uint64 {
	if s.nextCount <= s.currentCount {
		return 0
	}
	return s.nextCount - s.currentCount
}

// OwnerNow returns the master clock converted to the event's clock.
func (s *Scheduler) OwnerNow(h Handle) uint64 {
	e := s.checkHandle(h)
	return toOwner(s.currentCount, e.num, e.den)
}

// Deadline returns the event's deadline in owner ticks. The boolean is false if
// the event is inactive.
func (s *Scheduler) Deadline(h Handle) (uint64, bool) {
	e := s.checkHandle(h)
	return e.target, e.active()
}

// Active returns true if the event has a deadline.
func (s *Scheduler) Active(h Handle) bool {
	return s.checkHandle(h).active()
}

// Owner returns the OwnerID of the event.
func (s *Scheduler) Owner(h Handle) OwnerID {
	return s.checkHandle(h).owner
}

// CountFactor returns the clock ratio of the event.
func (s *Scheduler) CountFactor(h Handle) (uint64, uint64) {
	e := s.checkHandle(h)
	return e.num, e.den
}

// Len returns the number of registered events.
func (s *Scheduler) Len() int {
	return len(s.events)
}

// String lists the active events in the order they will run.
func (s *Scheduler) String() string {
	idx := make([]int, 0, len(s.events))
	for i := range s.events {
		if s.events[i].active() {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return s.events[idx[i]].master < s.events[idx[j]].master
	})

	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("now %d", s.currentCount))
	for _, i := range idx {
		e := &s.events[i]
		b.WriteString(fmt.Sprintf("\n%s -> %d [%d @ %d:%d]", e.owner, e.master, e.target, e.num, e.den))
	}
	return b.String()
}
