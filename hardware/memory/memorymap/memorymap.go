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

package memorymap

// Width of the address space and the page granularity of the bus.
const (
	AddressBits = 27
	AddressMask = uint32(1)<<AddressBits - 1

	PageBits = 16
	PageSize = uint32(1) << PageBits
	PageMask = PageSize - 1
	NumPages = 1 << (AddressBits - PageBits)
)

// Area represents the different areas of memory.
type Area int

// The different memory areas.
const (
	Undefined Area = iota
	BIOS
	SMPC
	BackupRAM
	WorkRAMLow
	CS0
	CS1
	CS2
	SCSP
	VDP1
	VDP2
	SCU
	WorkRAMHigh
)

func (a Area) String() string {
	switch a {
	case BIOS:
		return "BIOS"
	case SMPC:
		return "SMPC"
	case BackupRAM:
		return "Backup RAM"
	case WorkRAMLow:
		return "Work RAM Low"
	case CS0:
		return "CS0"
	case CS1:
		return "CS1"
	case CS2:
		return "CS2"
	case SCSP:
		return "SCSP"
	case VDP1:
		return "VDP1"
	case VDP2:
		return "VDP2"
	case SCU:
		return "SCU"
	case WorkRAMHigh:
		return "Work RAM High"
	}

	return "undefined"
}

// The origin and memory top for each area of memory. The memory arrays backing
// an area are usually smaller than the area and are mirrored across it.
const (
	OriginBIOS        = uint32(0x0000000)
	MemtopBIOS        = uint32(0x00fffff)
	OriginSMPC        = uint32(0x0100000)
	MemtopSMPC        = uint32(0x017ffff)
	OriginBackupRAM   = uint32(0x0180000)
	MemtopBackupRAM   = uint32(0x01fffff)
	OriginWorkRAMLow  = uint32(0x0200000)
	MemtopWorkRAMLow  = uint32(0x02fffff)
	OriginCS0         = uint32(0x2000000)
	MemtopCS0         = uint32(0x3ffffff)
	OriginCS1         = uint32(0x4000000)
	MemtopCS1         = uint32(0x4ffffff)
	OriginCS2         = uint32(0x5800000)
	MemtopCS2         = uint32(0x58fffff)
	OriginSCSP        = uint32(0x5a00000)
	MemtopSCSP        = uint32(0x5bfffff)
	OriginVDP1        = uint32(0x5c00000)
	MemtopVDP1        = uint32(0x5d7ffff)
	OriginVDP2        = uint32(0x5e00000)
	MemtopVDP2        = uint32(0x5fbffff)
	OriginSCU         = uint32(0x5fe0000)
	MemtopSCU         = uint32(0x5feffff)
	OriginWorkRAMHigh = uint32(0x6000000)
	MemtopWorkRAMHigh = uint32(0x7ffffff)
)

// Sizes of the memory arrays.
const (
	SizeBIOS        = 0x80000
	SizeBackupRAM   = 0x8000
	SizeWorkRAMLow  = 0x100000
	SizeWorkRAMHigh = 0x100000
	SizeSoundRAM    = 0x80000
)

// Memtop is the top most address of memory.
const Memtop = AddressMask

var areas = [...]struct {
	origin uint32
	memtop uint32
	area   Area
}{
	{OriginBIOS, MemtopBIOS, BIOS},
	{OriginSMPC, MemtopSMPC, SMPC},
	{OriginBackupRAM, MemtopBackupRAM, BackupRAM},
	{OriginWorkRAMLow, MemtopWorkRAMLow, WorkRAMLow},
	{OriginCS0, MemtopCS0, CS0},
	{OriginCS1, MemtopCS1, CS1},
	{OriginCS2, MemtopCS2, CS2},
	{OriginSCSP, MemtopSCSP, SCSP},
	{OriginVDP1, MemtopVDP1, VDP1},
	{OriginVDP2, MemtopVDP2, VDP2},
	{OriginSCU, MemtopSCU, SCU},
	{OriginWorkRAMHigh, MemtopWorkRAMHigh, WorkRAMHigh},
}

// MapAddress masks the address to the width of the address space and returns
// it along with the area it belongs to.
func MapAddress(address uint32) (uint32, Area) {
	address &= AddressMask
	for _, a := range areas {
		if address >= a.origin && address <= a.memtop {
			return address, a.area
		}
	}
	return address, Undefined
}

// Range returns the origin and memtop of the area.
func Range(area Area) (uint32, uint32, bool) {
	for _, a := range areas {
		if a.area == area {
			return a.origin, a.memtop, true
		}
	}
	return 0, 0, false
}
