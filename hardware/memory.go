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

import (
	"github.com/satcore/satcore/hardware/memory/memorymap"
)

// mapMemory creates the memory arrays and maps them into the bus
func (m *Machine) mapMemory() {
	m.BIOS = make([]uint8, memorymap.SizeBIOS)
	m.BackupRAM = make([]uint8, memorymap.SizeBackupRAM)
	m.WorkRAMLow = make([]uint8, memorymap.SizeWorkRAMLow)
	m.WorkRAMHigh = make([]uint8, memorymap.SizeWorkRAMHigh)
	m.SoundRAM = make([]uint8, memorymap.SizeSoundRAM)

	m.Bus.MapArray(memorymap.OriginBIOS, memorymap.MemtopBIOS, m.BIOS, false)
	m.Bus.MapArray(memorymap.OriginBackupRAM, memorymap.MemtopBackupRAM, m.BackupRAM, true)
	m.Bus.MapArray(memorymap.OriginWorkRAMLow, memorymap.MemtopWorkRAMLow, m.WorkRAMLow, true)
	m.Bus.MapArray(memorymap.OriginWorkRAMHigh, memorymap.MemtopWorkRAMHigh, m.WorkRAMHigh, true)

	// sound RAM occupies the first half of the SCSP area. the registers in the
	// second half are unmapped
	m.Bus.MapArray(memorymap.OriginSCSP, memorymap.OriginSCSP+2*memorymap.SizeSoundRAM-1, m.SoundRAM, true)
}

// clearMemory zeroes all RAM. backup RAM is battery backed and is not cleared
func (m *Machine) clearMemory() {
	clear(m.WorkRAMLow)
	clear(m.WorkRAMHigh)
	clear(m.SoundRAM)
}

// LoadBIOS copies the data into the BIOS ROM. Data longer than the ROM is
// ignored.
func (m *Machine) LoadBIOS(data []uint8) {
	copy(m.BIOS, data)
}
