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

package bus

// Handlers is the set of access functions for one route of a page. The
// address argument has already been masked to the address space and aligned to
// the access width. The ctx argument is the context supplied when the handlers
// were mapped.
//
// A nil field means that the handler should not be changed when the Handlers
// are mapped.
type Handlers struct {
	Read8  func(address uint32, ctx any) uint8
	Read16 func(address uint32, ctx any) uint16
	Read32 func(address uint32, ctx any) uint32

	Write8  func(address uint32, value uint8, ctx any)
	Write16 func(address uint32, value uint16, ctx any)
	Write32 func(address uint32, value uint32, ctx any)
}

func (h Handlers) empty() bool {
	return h.Read8 == nil && h.Read16 == nil && h.Read32 == nil &&
		h.Write8 == nil && h.Write16 == nil && h.Write32 == nil
}

// each handler slot keeps the context it was mapped with. a partial map never
// changes the context of a slot it does not replace
type read8Slot struct {
	fn  func(address uint32, ctx any) uint8
	ctx any
}

type read16Slot struct {
	fn  func(address uint32, ctx any) uint16
	ctx any
}

type read32Slot struct {
	fn  func(address uint32, ctx any) uint32
	ctx any
}

type write8Slot struct {
	fn  func(address uint32, value uint8, ctx any)
	ctx any
}

type write16Slot struct {
	fn  func(address uint32, value uint16, ctx any)
	ctx any
}

type write32Slot struct {
	fn  func(address uint32, value uint32, ctx any)
	ctx any
}

// route is one set of handler slots
type route struct {
	read8   read8Slot
	read16  read16Slot
	read32  read32Slot
	write8  write8Slot
	write16 write16Slot
	write32 write32Slot
}

// install the non-nil fields of h, along with ctx
func (r *route) install(ctx any, h Handlers) {
	if h.Read8 != nil {
		r.read8 = read8Slot{fn: h.Read8, ctx: ctx}
	}
	if h.Read16 != nil {
		r.read16 = read16Slot{fn: h.Read16, ctx: ctx}
	}
	if h.Read32 != nil {
		r.read32 = read32Slot{fn: h.Read32, ctx: ctx}
	}
	if h.Write8 != nil {
		r.write8 = write8Slot{fn: h.Write8, ctx: ctx}
	}
	if h.Write16 != nil {
		r.write16 = write16Slot{fn: h.Write16, ctx: ctx}
	}
	if h.Write32 != nil {
		r.write32 = write32Slot{fn: h.Write32, ctx: ctx}
	}
}

// page is one entry in the page table
type page struct {
	normal route
	free   route
}
