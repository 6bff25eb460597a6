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

package scsp_test

import (
	"testing"

	"github.com/satcore/satcore/hardware/clocks"
	"github.com/satcore/satcore/hardware/scheduler"
	"github.com/satcore/satcore/hardware/scsp"
	"github.com/satcore/satcore/test"
)

type sink struct {
	calls int
	last  uint64
}

func (s *sink) Sample(count uint64) {
	s.calls++
	s.last = count
}

func TestSampleRate(t *testing.T) {
	for _, c := range []struct {
		region  clocks.Region
		mode    clocks.Mode
		seconds uint64
	}{
		{clocks.NTSC, clocks.HRes352, 1},
		{clocks.NTSC, clocks.HRes320, 2},
		{clocks.PAL, clocks.HRes352, 1},
		{clocks.PAL, clocks.HRes320, 1},
	} {
		ratios := clocks.Ratios(c.region, c.mode)
		s := scheduler.NewScheduler(0)
		u := scsp.NewSCSP(s, ratios)
		u.Reset()

		// a whole number of master cycles
		master := ratios.Master.Num * c.seconds / ratios.Master.Den
		test.DemandEquality(t, master*ratios.Master.Den, ratios.Master.Num*c.seconds, ratios)

		s.Advance(master - 1)
		test.ExpectEquality(t, u.Samples(), 44100*c.seconds-1, ratios)
		s.Advance(1)
		test.ExpectEquality(t, u.Samples(), 44100*c.seconds, ratios)
	}
}

func TestSink(t *testing.T) {
	ratios := clocks.Ratios(clocks.NTSC, clocks.HRes352)
	s := scheduler.NewScheduler(0)
	u := scsp.NewSCSP(s, ratios)
	k := &sink{}
	u.AttachSink(k)
	u.Reset()

	// roughly 10 samples
	s.Advance(6500)
	test.ExpectEquality(t, uint64(k.calls), u.Samples())
	test.ExpectEquality(t, k.last, u.Samples())
	test.ExpectSuccess(t, k.calls > 0)
}

func TestClockChange(t *testing.T) {
	ntsc := clocks.Ratios(clocks.NTSC, clocks.HRes352)
	pal := clocks.Ratios(clocks.PAL, clocks.HRes352)

	s := scheduler.NewScheduler(0)
	u := scsp.NewSCSP(s, ntsc)
	u.Reset()

	h, ok := s.Lookup(scsp.OwnerID)
	test.DemandSuccess(t, ok)

	s.Advance(300)
	before := s.OwnerNow(h)
	d, _ := s.Deadline(h)
	remaining := d - before

	u.SetClock(pal)
	d, _ = s.Deadline(h)
	test.ExpectEquality(t, d-s.OwnerNow(h), remaining)

	num, den := s.CountFactor(h)
	r := pal.Get(clocks.DomainSCSP)
	test.ExpectEquality(t, num, r.Num)
	test.ExpectEquality(t, den, r.Den)
}
