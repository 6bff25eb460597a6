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

// Package memorymap describes the address space of the emulated machine.
//
// The CPUs see a 27 bit address space. Addresses are divided into 64KiB pages,
// which is the granularity at which the bus dispatches accesses. Every named
// area begins and ends on a page boundary.
//
// The MapAddress() function should be used when the area of an address is
// required:
//
//	ma, area := memorymap.MapAddress(address)
//
// The returned address has been masked to the width of the address space.
// Cache-through and other CPU specific address mirrors are the responsibility
// of the CPU and are not handled here.
package memorymap
