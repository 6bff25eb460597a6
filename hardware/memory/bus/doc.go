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

// Package bus routes memory accesses to the hardware unit that owns the
// address.
//
// The address space is divided into pages of memorymap.PageSize bytes. Every
// page has two routes: the normal route, used by the emulated hardware, and the
// side-effect-free route, used only by debugging and inspection tools. A route
// is a set of handlers (one for each of the read and write widths) and a
// context value that is passed unchanged to the handlers.
//
// Pages that have not been mapped use the open bus handlers. Reads return
// all-ones and writes are discarded. There is never a nil handler so the
// access functions do not need to check for unmapped pages.
//
// Handlers are installed with MapNormal(), MapSideEffectFree() and MapBoth().
// Only the handlers that are supplied are installed, so a unit can install a
// write handler for a range without disturbing the read handlers of another
// unit. The context of the route is always replaced.
//
//	b.MapNormal(0x05fe0000, 0x05feffff, scu, bus.Handlers{
//		Write32: scuWrite32,
//	})
//
// MapArray() is a convenience for plain memory. The array is mirrored across
// the range and accessed in big-endian byte order.
package bus
