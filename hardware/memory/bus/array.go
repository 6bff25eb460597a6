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
	"encoding/binary"

	"github.com/satcore/satcore/assert"
)

// array is the context for MapArray() handlers
type array struct {
	data []uint8
	mask uint32
}

func arrayRead8(address uint32, ctx any) uint8 {
	a := ctx.(*array)
	return a.data[address&a.mask]
}

func arrayRead16(address uint32, ctx any) uint16 {
	a := ctx.(*array)
	return binary.BigEndian.Uint16(a.data[address&a.mask:])
}

func arrayRead32(address uint32, ctx any) uint32 {
	a := ctx.(*array)
	return binary.BigEndian.Uint32(a.data[address&a.mask:])
}

func arrayWrite8(address uint32, value uint8, ctx any) {
	a := ctx.(*array)
	a.data[address&a.mask] = value
}

func arrayWrite16(address uint32, value uint16, ctx any) {
	a := ctx.(*array)
	binary.BigEndian.PutUint16(a.data[address&a.mask:], value)
}

func arrayWrite32(address uint32, value uint32, ctx any) {
	a := ctx.(*array)
	binary.BigEndian.PutUint32(a.data[address&a.mask:], value)
}

func discard8(_ uint32, _ uint8, _ any)   {}
func discard16(_ uint32, _ uint16, _ any) {}
func discard32(_ uint32, _ uint32, _ any) {}

// MapArray maps the data to both routes of the address range. The length of
// data must be a power of two and at least four bytes. The data is mirrored
// across the range using the low bits of the address, so the start of the
// range should be aligned to the length of the data. If writable is false then writes to the range are
// discarded.
//
// The data slice is used directly and is not copied.
func (b *Bus) MapArray(start uint32, end uint32, data []uint8, writable bool) {
	n := uint32(len(data))
	assert.Contract(n >= 4 && n&(n-1) == 0, "bus: array length must be a power of two (%d)", n)

	h := Handlers{
		Read8:   arrayRead8,
		Read16:  arrayRead16,
		Read32:  arrayRead32,
		Write8:  discard8,
		Write16: discard16,
		Write32: discard32,
	}
	if writable {
		h.Write8 = arrayWrite8
		h.Write16 = arrayWrite16
		h.Write32 = arrayWrite32
	}

	b.MapBoth(start, end, &array{data: data, mask: n - 1}, h)
}
