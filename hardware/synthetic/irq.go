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

package synthetic

import "fmt"

// IRQRouter is a synthetic interrupt router. It counts the cycles it has been
// advanced by.
type IRQRouter struct {
	Cycles uint64
	Calls  uint64
}

func (r *IRQRouter) String() string {
	return fmt.Sprintf("irq: cycles=%d calls=%d", r.Cycles, r.Calls)
}

// Advance the router by the number of cycles.
func (r *IRQRouter) Advance(cycles uint64) {
	r.Cycles += cycles
	r.Calls++
}

// Reset the cycle count.
func (r *IRQRouter) Reset(hard bool) {
	r.Cycles = 0
	r.Calls = 0
}
