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

package hardware

// CPU is a processor that can be advanced by the synchronizer.
//
// Advance runs the CPU until consumed reaches target and returns the new value
// of consumed. The CPU can return early. For example, when it is waiting for
// an interrupt. It can also return a value greater than target if the last
// instruction took more cycles than were remaining.
//
// The primary CPU must always make progress. Returning the same value of
// consumed that was passed in is a contract violation.
type CPU interface {
	Advance(target uint64, consumed uint64) uint64
}

// Unit is a part of the machine that is advanced by exactly the number of
// cycles that the primary CPU has executed. The interrupt router is a Unit.
type Unit interface {
	Advance(cycles uint64)
}

// resetter is implemented by components that need to be told when the machine
// is reset.
type resetter interface {
	Reset(hard bool)
}
