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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// EventInfo is a summary of one registered event.
type EventInfo struct {
	Owner  OwnerID
	Active bool

	// deadline in owner ticks and in master ticks
	Target uint64
	Master uint64

	Num uint64
	Den uint64
}

// Events returns a summary of every registered event, in registration order.
func (s *Scheduler) Events() []EventInfo {
	info := make([]EventInfo, len(s.events))
	for i := range s.events {
		e := &s.events[i]
		info[i] = EventInfo{
			Owner:  e.owner,
			Active: e.active(),
			Target: e.target,
			Master: e.master,
			Num:    e.num,
			Den:    e.den,
		}
	}
	return info
}

type visualisation struct {
	Now    uint64
	Next   uint64
	Events []EventInfo
}

// Visualise writes a graphviz representation of the event table to w.
func (s *Scheduler) Visualise(w io.Writer) {
	memviz.Map(w, &visualisation{
		Now:    s.currentCount,
		Next:   s.nextCount,
		Events: s.Events(),
	})
}
