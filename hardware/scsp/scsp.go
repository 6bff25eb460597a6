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

// Package scsp implements the sample clock of the sound processor. Sample
// generation is not emulated. The unit counts the 44.1kHz sample periods so
// that the rest of the system can be tested against a clock that does not
// divide evenly into the master clock.
//
// The unit has one scheduler event in the SCSP clock domain. The event runs
// every SamplePeriod SCSP cycles.
package scsp

import (
	"fmt"

	"github.com/satcore/satcore/hardware/clocks"
	"github.com/satcore/satcore/hardware/scheduler"
)

// OwnerID of the sample event.
const OwnerID = scheduler.OwnerID("scsp.sample")

// SamplePeriod is the number of SCSP cycles in one sample.
const SamplePeriod = 512

// SampleSink receives the running sample count whenever a sample period ends.
type SampleSink interface {
	Sample(count uint64)
}

// SCSP is the sample clock.
type SCSP struct {
	sched  *scheduler.Scheduler
	handle scheduler.Handle

	samples uint64

	sink SampleSink
}

// NewSCSP is the preferred method of initialisation for the SCSP type. The
// scheduler event is registered but not scheduled until Reset() is called.
func NewSCSP(sched *scheduler.Scheduler, ratios clocks.ClockRatios) *SCSP {
	s := &SCSP{
		sched: sched,
	}
	s.handle = sched.RegisterEvent(OwnerID, s, endOfSample)
	s.SetClock(ratios)
	return s
}

func (s *SCSP) String() string {
	return fmt.Sprintf("samples=%d", s.samples)
}

// SetClock changes the ratio of the SCSP clock to the master clock. A sample
// period in progress is not corrupted.
func (s *SCSP) SetClock(ratios clocks.ClockRatios) {
	r := ratios.Get(clocks.DomainSCSP)
	s.sched.SetEventCountFactor(s.handle, r.Num, r.Den)
}

// AttachSink sets the destination of the sample count. A nil sink is allowed.
func (s *SCSP) AttachSink(sink SampleSink) {
	s.sink = sink
}

// Reset the sample count and start the sample clock.
func (s *SCSP) Reset() {
	s.samples = 0
	s.sched.ScheduleFromNow(s.handle, SamplePeriod)
}

func endOfSample(ec *scheduler.EventContext, ctx any) {
	s := ctx.(*SCSP)
	s.samples++
	if s.sink != nil {
		s.sink.Sample(s.samples)
	}
	ec.RescheduleFromPrevious(SamplePeriod)
}

// Samples returns the number of samples since reset.
func (s *SCSP) Samples() uint64 {
	return s.samples
}

// SetSamples sets the sample count. Used by the snapshot system.
func (s *SCSP) SetSamples(n uint64) {
	s.samples = n
}
