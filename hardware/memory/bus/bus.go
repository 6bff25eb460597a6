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

import (
	"github.com/satcore/satcore/assert"
	"github.com/satcore/satcore/environment"
	"github.com/satcore/satcore/hardware/memory/memorymap"
	"github.com/satcore/satcore/logger"
)

// The values returned by a read of an unmapped address.
const (
	OpenBus8  = uint8(0xff)
	OpenBus16 = uint16(0xffff)
	OpenBus32 = uint32(0xffffffff)
)

// Bus is the page table for an emulated machine. It is not safe for
// concurrent use.
type Bus struct {
	env *environment.Environment

	pages [memorymap.NumPages]page

	// handlers for unmapped pages. created once so that unmapping does not
	// allocate
	openBus Handlers
}

// NewBus is the preferred method of initialisation for the Bus type. The env
// argument can be nil, in which case open bus accesses are never logged.
func NewBus(env *environment.Environment) *Bus {
	b := &Bus{env: env}
	b.openBus = Handlers{
		Read8:   b.openRead8,
		Read16:  b.openRead16,
		Read32:  b.openRead32,
		Write8:  b.openWrite8,
		Write16: b.openWrite16,
		Write32: b.openWrite32,
	}
	b.Unmap(0, memorymap.Memtop)
	return b
}

func (b *Bus) logOpenBus() bool {
	return b.env != nil && b.env.Prefs.Live.LogOpenBus.Load()
}

func (b *Bus) openRead8(address uint32, _ any) uint8 {
	if b.logOpenBus() {
		logger.Logf(b.env, "bus", "unmapped read8 from %#07x", address)
	}
	return OpenBus8
}

func (b *Bus) openRead16(address uint32, _ any) uint16 {
	if b.logOpenBus() {
		logger.Logf(b.env, "bus", "unmapped read16 from %#07x", address)
	}
	return OpenBus16
}

func (b *Bus) openRead32(address uint32, _ any) uint32 {
	if b.logOpenBus() {
		logger.Logf(b.env, "bus", "unmapped read32 from %#07x", address)
	}
	return OpenBus32
}

func (b *Bus) openWrite8(address uint32, value uint8, _ any) {
	if b.logOpenBus() {
		logger.Logf(b.env, "bus", "unmapped write8 to %#07x (%#02x)", address, value)
	}
}

func (b *Bus) openWrite16(address uint32, value uint16, _ any) {
	if b.logOpenBus() {
		logger.Logf(b.env, "bus", "unmapped write16 to %#07x (%#04x)", address, value)
	}
}

func (b *Bus) openWrite32(address uint32, value uint32, _ any) {
	if b.logOpenBus() {
		logger.Logf(b.env, "bus", "unmapped write32 to %#07x (%#08x)", address, value)
	}
}

// pageRange returns the first and last page index for the address range.
func pageRange(start uint32, end uint32) (uint32, uint32) {
	assert.Contract(start <= end, "bus: bad range (%#07x > %#07x)", start, end)
	assert.Contract(end <= memorymap.Memtop, "bus: range end outside of address space (%#07x)", end)
	return start >> memorymap.PageBits, end >> memorymap.PageBits
}

// MapNormal installs handlers in the normal route of every page that overlaps
// the address range. Only the non-nil handlers are installed.
func (b *Bus) MapNormal(start uint32, end uint32, ctx any, h Handlers) {
	assert.Contract(!h.empty(), "bus: no handlers for range %#07x to %#07x", start, end)
	first, last := pageRange(start, end)
	for p := first; p <= last; p++ {
		b.pages[p].normal.install(ctx, h)
	}
}

// MapSideEffectFree installs handlers in the side-effect-free route of every
// page that overlaps the address range. Only the non-nil handlers are
// installed.
func (b *Bus) MapSideEffectFree(start uint32, end uint32, ctx any, h Handlers) {
	assert.Contract(!h.empty(), "bus: no handlers for range %#07x to %#07x", start, end)
	first, last := pageRange(start, end)
	for p := first; p <= last; p++ {
		b.pages[p].free.install(ctx, h)
	}
}

// MapBoth installs the same handlers in both routes. Only suitable for
// handlers that have no side effects.
func (b *Bus) MapBoth(start uint32, end uint32, ctx any, h Handlers) {
	b.MapNormal(start, end, ctx, h)
	b.MapSideEffectFree(start, end, ctx, h)
}

// Unmap restores the open bus handlers to both routes of every page that
// overlaps the address range.
func (b *Bus) Unmap(start uint32, end uint32) {
	first, last := pageRange(start, end)
	for p := first; p <= last; p++ {
		b.pages[p].normal.install(b, b.openBus)
		b.pages[p].free.install(b, b.openBus)
	}
}

// Read8 reads a byte from the normal route.
func (b *Bus) Read8(address uint32) uint8 {
	address &= memorymap.AddressMask
	r := &b.pages[address>>memorymap.PageBits].normal.read8
	return r.fn(address, r.ctx)
}

// Read16 reads a halfword from the normal route. The lowest address bit is
// ignored.
func (b *Bus) Read16(address uint32) uint16 {
	address &= memorymap.AddressMask &^ 1
	r := &b.pages[address>>memorymap.PageBits].normal.read16
	return r.fn(address, r.ctx)
}

// Read32 reads a word from the normal route. The lowest two address bits are
// ignored.
func (b *Bus) Read32(address uint32) uint32 {
	address &= memorymap.AddressMask &^ 3
	r := &b.pages[address>>memorymap.PageBits].normal.read32
	return r.fn(address, r.ctx)
}

// Write8 writes a byte to the normal route.
func (b *Bus) Write8(address uint32, value uint8) {
	address &= memorymap.AddressMask
	r := &b.pages[address>>memorymap.PageBits].normal.write8
	r.fn(address, value, r.ctx)
}

// Write16 writes a halfword to the normal route.
func (b *Bus) Write16(address uint32, value uint16) {
	address &= memorymap.AddressMask &^ 1
	r := &b.pages[address>>memorymap.PageBits].normal.write16
	r.fn(address, value, r.ctx)
}

// Write32 writes a word to the normal route.
func (b *Bus) Write32(address uint32, value uint32) {
	address &= memorymap.AddressMask &^ 3
	r := &b.pages[address>>memorymap.PageBits].normal.write32
	r.fn(address, value, r.ctx)
}
