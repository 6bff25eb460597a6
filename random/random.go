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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of emulated time. The Scheduler satisfies this interface.
type Clock interface {
	Now() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clk Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock argument can be nil, in which case the clock should be supplied with
// Plumb() before random numbers are requested.
func NewRandom(clk Clock) *Random {
	return &Random{
		clk: clk,
	}
}

// Plumb a new clock into the random number generator.
func (rnd *Random) Plumb(clk Clock) {
	rnd.clk = clk
}

func (rnd *Random) rand() *rand.Rand {
	var now int64
	if rnd.clk != nil {
		now = int64(rnd.clk.Now())
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(now))
	}
	return rand.New(rand.NewSource(baseSeed + now))
}

// Intn returns a number in the range [0,n) that is fixed for the current
// emulated time.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
