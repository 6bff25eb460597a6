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
	"math"
	"math/bits"
)

// NoDeadline is the deadline of an inactive event.
const NoDeadline = uint64(math.MaxUint64)

// toMaster converts a deadline in owner clock ticks to master clock ticks,
// rounding up. A result that does not fit in 64 bits is NoDeadline.
func toMaster(target, num, den uint64) uint64 {
	if target == NoDeadline {
		return NoDeadline
	}
	if num == den {
		return target
	}

	// (target * den + num - 1) / num with a 128 bit intermediate
	hi, lo := bits.Mul64(target, den)
	var c uint64
	lo, c = bits.Add64(lo, num-1, 0)
	hi += c
	if hi >= num {
		return NoDeadline
	}
	q, _ := bits.Div64(hi, lo, num)
	return q
}

// toOwner converts a master clock count to owner clock ticks, rounding down.
func toOwner(count, num, den uint64) uint64 {
	if num == den {
		return count
	}
	hi, lo := bits.Mul64(count, num)
	if hi >= den {
		return NoDeadline - 1
	}
	q, _ := bits.Div64(hi, lo, den)
	return q
}

// saturating addition. the result never reaches NoDeadline because that would
// make an active event look inactive
func addInterval(a, b uint64) uint64 {
	s, c := bits.Add64(a, b, 0)
	if c != 0 || s == NoDeadline {
		return NoDeadline - 1
	}
	return s
}
