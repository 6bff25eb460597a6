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

package clocks_test

import (
	"testing"

	"github.com/satcore/satcore/curated"
	"github.com/satcore/satcore/hardware/clocks"
	"github.com/satcore/satcore/test"
)

func TestRatioReduction(t *testing.T) {
	r := clocks.RatioOf(clocks.Frequency{Num: 10, Den: 1}, clocks.Frequency{Num: 20, Den: 1})
	test.ExpectEquality(t, r, clocks.Ratio{Num: 1, Den: 2})

	r = clocks.RatioOf(clocks.Frequency{Num: 7, Den: 1}, clocks.Frequency{Num: 7, Den: 1})
	test.ExpectEquality(t, r, clocks.Unity)
}

func TestSCSPRatios(t *testing.T) {
	c := clocks.Ratios(clocks.NTSC, clocks.HRes352)
	test.ExpectEquality(t, c.Get(clocks.DomainSCSP), clocks.Ratio{Num: 564480, Den: 715909})
	test.ExpectEquality(t, c.Get(clocks.DomainMaster), clocks.Unity)

	// the 320 mode master clock is not a whole number of Hz
	c = clocks.Ratios(clocks.NTSC, clocks.HRes320)
	test.ExpectEquality(t, c.Master, clocks.Frequency{Num: 53693175, Den: 2})
	test.ExpectEquality(t, c.Get(clocks.DomainSCSP), clocks.Ratio{Num: 602112, Den: 715909})

	// sound CPU runs at half the SCSP rate
	s := c.Get(clocks.DomainSCSP)
	m := c.Get(clocks.DomainSoundCPU)
	test.ExpectEquality(t, m.Num*2*s.Den, s.Num*m.Den)
}

func TestFrameRate(t *testing.T) {
	for _, region := range []clocks.Region{clocks.NTSC, clocks.PAL} {
		for _, mode := range []clocks.Mode{clocks.HRes320, clocks.HRes352} {
			fps := clocks.FrameRate(region, mode)
			if region == clocks.NTSC {
				test.ExpectSuccess(t, fps > 59.7 && fps < 59.9, region, mode)
			} else {
				test.ExpectSuccess(t, fps > 49.8 && fps < 50.0, region, mode)
			}
		}
	}
}

func TestParse(t *testing.T) {
	r, err := clocks.ParseRegion("pal")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r, clocks.PAL)

	_, err = clocks.ParseRegion("secam")
	test.ExpectSuccess(t, curated.Is(err, clocks.UnknownRegion))

	m, err := clocks.ParseMode("352")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m, clocks.HRes352)

	_, err = clocks.ParseMode("640")
	test.ExpectSuccess(t, curated.Is(err, clocks.UnknownMode))
}
