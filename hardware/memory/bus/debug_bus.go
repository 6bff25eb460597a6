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

import "github.com/satcore/satcore/hardware/memory/memorymap"

// DebuggerBus defines the side-effect-free operations of the bus. Inspection
// tools should be given a DebuggerBus rather than a *Bus so that the normal
// route is not reachable.
type DebuggerBus interface {
	Peek8(address uint32) uint8
	Peek16(address uint32) uint16
	Peek32(address uint32) uint32
	Poke8(address uint32, value uint8)
	Poke16(address uint32, value uint16)
	Poke32(address uint32, value uint32)
}

// Peek8 reads a byte from the side-effect-free route.
func (b *Bus) Peek8(address uint32) uint8 {
	address &= memorymap.AddressMask
	r := &b.pages[address>>memorymap.PageBits].free.read8
	return r.fn(address, r.ctx)
}

// Peek16 reads a halfword from the side-effect-free route.
func (b *Bus) Peek16(address uint32) uint16 {
	address &= memorymap.AddressMask &^ 1
	r := &b.pages[address>>memorymap.PageBits].free.read16
	return r.fn(address, r.ctx)
}

// Peek32 reads a word from the side-effect-free route.
func (b *Bus) Peek32(address uint32) uint32 {
	address &= memorymap.AddressMask &^ 3
	r := &b.pages[address>>memorymap.PageBits].free.read32
	return r.fn(address, r.ctx)
}

// Poke8 writes a byte to the side-effect-free route.
func (b *Bus) Poke8(address uint32, value uint8) {
	address &= memorymap.AddressMask
	r := &b.pages[address>>memorymap.PageBits].free.write8
	r.fn(address, value, r.ctx)
}

// Poke16 writes a halfword to the side-effect-free route.
func (b *Bus) Poke16(address uint32, value uint16) {
	address &= memorymap.AddressMask &^ 1
	r := &b.pages[address>>memorymap.PageBits].free.write16
	r.fn(address, value, r.ctx)
}

// Poke32 writes a word to the side-effect-free route.
func (b *Bus) Poke32(address uint32, value uint32) {
	address &= memorymap.AddressMask &^ 3
	r := &b.pages[address>>memorymap.PageBits].free.write32
	r.fn(address, value, r.ctx)
}
