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

	"github.com/tinylib/msgp/msgp"

	"github.com/satcore/satcore/curated"
)

// Sentinal error patterns for save state problems.
const (
	StateMalformed    = "scheduler state: malformed: %v"
	StateUnknownOwner = "scheduler state: unknown owner: %s"
	StateDuplicate    = "scheduler state: duplicate owner: %s"
	StateBadFactor    = "scheduler state: %s: invalid count factor %d/%d"
)

type savedEvent struct {
	owner  OwnerID
	target uint64
	num    uint64
	den    uint64
}

type savedState struct {
	count  uint64
	events []savedEvent
}

// SaveState appends the scheduler state to b and returns the extended slice.
// Events are keyed by OwnerID so the state can be restored into a scheduler
// that registered its events in a different order.
func (s *Scheduler) SaveState(b []byte) []byte {
	b = msgp.AppendMapHeader(b, 2)
	b = msgp.AppendString(b, "count")
	b = msgp.AppendUint64(b, s.currentCount)
	b = msgp.AppendString(b, "events")
	b = msgp.AppendArrayHeader(b, uint32(len(s.events)))
	for i := range s.events {
		e := &s.events[i]
		b = msgp.AppendMapHeader(b, 4)
		b = msgp.AppendString(b, "owner")
		b = msgp.AppendString(b, string(e.owner))
		b = msgp.AppendString(b, "target")
		b = msgp.AppendUint64(b, e.target)
		b = msgp.AppendString(b, "num")
		b = msgp.AppendUint64(b, e.num)
		b = msgp.AppendString(b, "den")
		b = msgp.AppendUint64(b, e.den)
	}
	return b
}

func decodeEvent(b []byte) (savedEvent, []byte, error) {
	var ev savedEvent

	sz, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return ev, b, err
	}

	for ; sz > 0; sz-- {
		var key string
		key, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return ev, b, err
		}

		switch key {
		case "owner":
			var o string
			o, b, err = msgp.ReadStringBytes(b)
			ev.owner = OwnerID(o)
		case "target":
			ev.target, b, err = msgp.ReadUint64Bytes(b)
		case "num":
			ev.num, b, err = msgp.ReadUint64Bytes(b)
		case "den":
			ev.den, b, err = msgp.ReadUint64Bytes(b)
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return ev, b, err
		}
	}

	return ev, b, nil
}

func decodeState(b []byte) (savedState, error) {
	var st savedState

	sz, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return st, curated.Errorf(StateMalformed, err)
	}

	for ; sz > 0; sz-- {
		var key string
		key, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return st, curated.Errorf(StateMalformed, err)
		}

		switch key {
		case "count":
			st.count, b, err = msgp.ReadUint64Bytes(b)
		case "events":
			var n uint32
			n, b, err = msgp.ReadArrayHeaderBytes(b)
			if err != nil {
				break
			}

			// every event takes at least one byte
			if uint64(n) > uint64(len(b)) {
				return st, curated.Errorf(StateMalformed, fmt.Sprintf("%d events in %d bytes", n, len(b)))
			}
			st.events = make([]savedEvent, 0, n)
			for ; n > 0; n-- {
				var ev savedEvent
				ev, b, err = decodeEvent(b)
				if err != nil {
					break
				}
				st.events = append(st.events, ev)
			}
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return st, curated.Errorf(StateMalformed, err)
		}
	}

	return st, nil
}

// validate checks the decoded state against the registered events and
// returns the handle for every saved event.
func (s *Scheduler) validate(st savedState) ([]Handle, error) {
	handles := make([]Handle, len(st.events))
	seen := make(map[OwnerID]bool, len(st.events))

	for i, ev := range st.events {
		h, ok := s.owners[ev.owner]
		if !ok {
			return nil, curated.Errorf(StateUnknownOwner, ev.owner)
		}
		if seen[ev.owner] {
			return nil, curated.Errorf(StateDuplicate, ev.owner)
		}
		if ev.num == 0 || ev.den == 0 {
			return nil, curated.Errorf(StateBadFactor, ev.owner, ev.num, ev.den)
		}
		seen[ev.owner] = true
		handles[i] = h
	}

	return handles, nil
}

// ValidateState returns true if the state can be loaded into the scheduler.
// Every OwnerID in the state must be registered.
func (s *Scheduler) ValidateState(b []byte) bool {
	return s.CheckState(b) == nil
}

// CheckState is the same as ValidateState() but returns the reason for the
// state being rejected.
func (s *Scheduler) CheckState(b []byte) error {
	st, err := decodeState(b)
	if err != nil {
		return err
	}
	_, err = s.validate(st)
	return err
}

// LoadState restores the scheduler from a state created by SaveState(). The
// state is validated completely before anything is changed. Registered events
// that are not present in the state are left inactive.
func (s *Scheduler) LoadState(b []byte) error {
	st, err := decodeState(b)
	if err != nil {
		return err
	}
	handles, err := s.validate(st)
	if err != nil {
		return err
	}

	for i := range s.events {
		s.events[i].deactivate()
	}

	s.currentCount = st.count
	for i, ev := range st.events {
		e := &s.events[handles[i]]
		e.num = ev.num
		e.den = ev.den
		e.setTarget(ev.target)
	}
	s.recompute()

	return nil
}
