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

package raster

import (
	"github.com/satcore/satcore/hardware/memory/bus"
	"github.com/satcore/satcore/hardware/memory/memorymap"
)

// The status registers of the video unit that are derived from the raster.
// Addresses are relative to the start of the register page.
const (
	RegTVSTAT = uint32(0x004)
	RegVCNT   = uint32(0x00a)
)

// RegisterPage is the address of the page containing the status registers.
const RegisterPage = memorymap.OriginVDP2 + 0x180000

// bits in TVSTAT
const (
	tvstatPAL    = 0x0001
	tvstatVBLANK = 0x0008
)

// MapRegisters maps the status registers into the bus. Reading the registers
// has no side effects so the same handlers are used for both routes. Other
// registers in the page read as zero and writes are ignored.
func (r *Raster) MapRegisters(b *bus.Bus) {
	b.MapBoth(RegisterPage, RegisterPage+memorymap.PageSize-1, r, bus.Handlers{
		Read16:  readRegister,
		Write16: func(_ uint32, _ uint16, _ any) {},
	})
}

func readRegister(address uint32, ctx any) uint16 {
	r := ctx.(*Raster)

	switch address & memorymap.PageMask {
	case RegTVSTAT:
		var v uint16
		if r.pal {
			v |= tvstatPAL
		}
		if r.LastLine() {
			v |= tvstatVBLANK
		}
		return v
	case RegVCNT:
		return uint16(r.line)
	}

	return 0
}
