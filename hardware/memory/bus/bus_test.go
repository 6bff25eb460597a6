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

package bus_test

import (
	"path/filepath"
	"testing"

	"github.com/satcore/satcore/assert"
	"github.com/satcore/satcore/environment"
	"github.com/satcore/satcore/hardware/memory/bus"
	"github.com/satcore/satcore/hardware/memory/memorymap"
	"github.com/satcore/satcore/hardware/preferences"
	"github.com/satcore/satcore/logger"
	"github.com/satcore/satcore/test"
)

func TestOpenBus(t *testing.T) {
	b := bus.NewBus(nil)

	// shadow memory used to detect stray writes
	shadow := make([]uint8, memorymap.SizeWorkRAMHigh)
	b.MapArray(memorymap.OriginWorkRAMHigh, memorymap.MemtopWorkRAMHigh, shadow, true)

	for _, a := range []uint32{0x00300000, 0x05fc0000, 0x05900004, 0x01ffff00} {
		test.ExpectEquality(t, b.Read8(a), bus.OpenBus8, a)
		test.ExpectEquality(t, b.Read16(a), bus.OpenBus16, a)
		test.ExpectEquality(t, b.Read32(a), bus.OpenBus32, a)
		test.ExpectEquality(t, b.Peek8(a), bus.OpenBus8, a)
		test.ExpectEquality(t, b.Peek32(a), bus.OpenBus32, a)

		b.Write8(a, 0x12)
		b.Write16(a, 0x1234)
		b.Write32(a, 0x12345678)
		b.Poke8(a, 0x12)
		test.ExpectEquality(t, b.Read32(a), bus.OpenBus32, a)
	}

	for i := range shadow {
		if shadow[i] != 0 {
			t.Fatalf("stray write to shadow memory at %#x", i)
		}
	}
}

func TestMapUnmap(t *testing.T) {
	b := bus.NewBus(nil)
	const addr = 0x05a00010

	before := b.Read32(addr)

	ram := make([]uint8, memorymap.SizeSoundRAM)
	b.MapArray(memorymap.OriginSCSP, memorymap.OriginSCSP+memorymap.SizeSoundRAM-1, ram, true)
	b.Write32(addr, 0xdeadbeef)
	test.ExpectEquality(t, b.Read32(addr), uint32(0xdeadbeef))

	b.Unmap(memorymap.OriginSCSP, memorymap.OriginSCSP+memorymap.SizeSoundRAM-1)
	test.ExpectEquality(t, b.Read32(addr), before)
	test.ExpectEquality(t, b.Peek32(addr), before)

	// unmapping twice has no further effect
	b.Unmap(memorymap.OriginSCSP, memorymap.OriginSCSP+memorymap.SizeSoundRAM-1)
	test.ExpectEquality(t, b.Read32(addr), before)
}

func TestBigEndian(t *testing.T) {
	b := bus.NewBus(nil)
	ram := make([]uint8, memorymap.SizeWorkRAMLow)
	b.MapArray(memorymap.OriginWorkRAMLow, memorymap.MemtopWorkRAMLow, ram, true)

	b.Write32(0x00200100, 0x01234567)
	test.ExpectEquality(t, ram[0x100], uint8(0x01))
	test.ExpectEquality(t, ram[0x103], uint8(0x67))
	test.ExpectEquality(t, b.Read16(0x00200102), uint16(0x4567))
	test.ExpectEquality(t, b.Read8(0x00200101), uint8(0x23))

	// unaligned accesses are aligned to the access width
	test.ExpectEquality(t, b.Read32(0x00200103), uint32(0x01234567))
	test.ExpectEquality(t, b.Read16(0x00200101), uint16(0x0123))
}

func TestAddressMask(t *testing.T) {
	b := bus.NewBus(nil)
	ram := make([]uint8, memorymap.SizeWorkRAMHigh)
	b.MapArray(memorymap.OriginWorkRAMHigh, memorymap.MemtopWorkRAMHigh, ram, true)

	// bits above the address space are ignored
	b.Write8(0x26000010, 0x55)
	test.ExpectEquality(t, ram[0x10], uint8(0x55))
	test.ExpectEquality(t, b.Read8(0x06000010), uint8(0x55))
}

func TestMirror(t *testing.T) {
	b := bus.NewBus(nil)
	ram := make([]uint8, memorymap.SizeWorkRAMHigh)
	b.MapArray(memorymap.OriginWorkRAMHigh, memorymap.MemtopWorkRAMHigh, ram, true)

	b.Write16(0x06000020, 0xabcd)
	test.ExpectEquality(t, b.Read16(0x06100020), uint16(0xabcd))
	test.ExpectEquality(t, b.Read16(0x07f00020), uint16(0xabcd))

	small := make([]uint8, 16)
	b.MapArray(0x05fe0000, 0x05feffff, small, true)
	b.Write8(0x05fe0003, 0x77)
	test.ExpectEquality(t, b.Read8(0x05fe0013), uint8(0x77))
	test.ExpectEquality(t, b.Read8(0x05fefff3), uint8(0x77))
}

func TestReadOnly(t *testing.T) {
	b := bus.NewBus(nil)
	rom := make([]uint8, memorymap.SizeBIOS)
	rom[0] = 0x06
	b.MapArray(memorymap.OriginBIOS, memorymap.MemtopBIOS, rom, false)

	b.Write8(0, 0xff)
	b.Write32(0, 0xffffffff)
	b.Poke8(0, 0xff)
	test.ExpectEquality(t, rom[0], uint8(0x06))
	test.ExpectEquality(t, b.Read8(0), uint8(0x06))

	// BIOS is mirrored in the upper half of the area
	test.ExpectEquality(t, b.Read8(0x00080000), uint8(0x06))
}

func TestPartialHandlers(t *testing.T) {
	b := bus.NewBus(nil)
	ram := make([]uint8, 0x10000)
	b.MapArray(memorymap.OriginSCU, memorymap.MemtopSCU, ram, true)

	var written []uint32
	b.MapNormal(memorymap.OriginSCU, memorymap.MemtopSCU, &written, bus.Handlers{
		Write32: func(address uint32, value uint32, ctx any) {
			w := ctx.(*[]uint32)
			*w = append(*w, value)
		},
	})

	// the 32bit write goes to the new handler
	b.Write32(memorymap.OriginSCU+4, 0x11223344)
	test.ExpectEquality(t, len(written), 1)
	test.ExpectEquality(t, written[0], uint32(0x11223344))

	// the 8bit write and all reads are unchanged
	b.Write8(memorymap.OriginSCU+8, 0x99)
	test.ExpectEquality(t, ram[8], uint8(0x99))
	test.ExpectEquality(t, b.Read32(memorymap.OriginSCU+4), uint32(0))

	// the side-effect-free route is unchanged
	b.Poke32(memorymap.OriginSCU+4, 0xaabbccdd)
	test.ExpectEquality(t, len(written), 1)
	test.ExpectEquality(t, b.Peek32(memorymap.OriginSCU+4), uint32(0xaabbccdd))
}

type counter struct {
	reads  int
	writes int
}

func TestPartialContexts(t *testing.T) {
	b := bus.NewBus(nil)
	rd := &counter{}
	wr := &counter{}

	b.MapBoth(memorymap.OriginCS1, memorymap.MemtopCS1, rd, bus.Handlers{
		Read8: func(_ uint32, ctx any) uint8 {
			ctx.(*counter).reads++
			return 0x42
		},
	})
	b.MapNormal(memorymap.OriginCS1, memorymap.MemtopCS1, wr, bus.Handlers{
		Write8: func(_ uint32, _ uint8, ctx any) {
			ctx.(*counter).writes++
		},
	})

	// each handler receives the context it was mapped with
	test.ExpectEquality(t, b.Read8(memorymap.OriginCS1), uint8(0x42))
	b.Write8(memorymap.OriginCS1, 0x01)
	test.ExpectEquality(t, b.Peek8(memorymap.OriginCS1), uint8(0x42))
	test.ExpectEquality(t, rd.reads, 2)
	test.ExpectEquality(t, rd.writes, 0)
	test.ExpectEquality(t, wr.reads, 0)
	test.ExpectEquality(t, wr.writes, 1)

	// kinds that were never mapped are still open bus
	test.ExpectEquality(t, b.Read32(memorymap.OriginCS1), bus.OpenBus32)
	b.Poke8(memorymap.OriginCS1, 0x01)
	test.ExpectEquality(t, wr.writes, 1)

	// unmapping restores every kind
	b.Unmap(memorymap.OriginCS1, memorymap.MemtopCS1)
	test.ExpectEquality(t, b.Read8(memorymap.OriginCS1), bus.OpenBus8)
	b.Write8(memorymap.OriginCS1, 0x01)
	test.ExpectEquality(t, rd.reads, 2)
	test.ExpectEquality(t, wr.writes, 1)
}

// fifo is a register whose value changes when it is read
type fifo struct {
	data []uint8
}

func (f *fifo) pop() uint8 {
	if len(f.data) == 0 {
		return 0
	}
	v := f.data[0]
	f.data = f.data[1:]
	return v
}

func TestSideEffectFree(t *testing.T) {
	b := bus.NewBus(nil)
	f := &fifo{data: []uint8{1, 2, 3}}

	b.MapNormal(memorymap.OriginCS2, memorymap.MemtopCS2, f, bus.Handlers{
		Read8: func(_ uint32, ctx any) uint8 {
			return ctx.(*fifo).pop()
		},
	})
	b.MapSideEffectFree(memorymap.OriginCS2, memorymap.MemtopCS2, f, bus.Handlers{
		Read8: func(_ uint32, ctx any) uint8 {
			f := ctx.(*fifo)
			if len(f.data) == 0 {
				return 0
			}
			return f.data[0]
		},
	})

	var dbg bus.DebuggerBus = b
	for i := 0; i < 10; i++ {
		test.ExpectEquality(t, dbg.Peek8(memorymap.OriginCS2), uint8(1))
	}
	test.ExpectEquality(t, len(f.data), 3)

	test.ExpectEquality(t, b.Read8(memorymap.OriginCS2), uint8(1))
	test.ExpectEquality(t, b.Read8(memorymap.OriginCS2), uint8(2))
	test.ExpectEquality(t, dbg.Peek8(memorymap.OriginCS2), uint8(3))
}

func TestContractViolations(t *testing.T) {
	b := bus.NewBus(nil)

	r := test.ExpectPanic(t, func() {
		b.MapArray(0x00200000, 0x00100000, make([]uint8, 16), true)
	}, "bad range")
	test.ExpectSuccess(t, assert.Violated(r))

	r = test.ExpectPanic(t, func() {
		b.MapArray(0x00200000, 0x002fffff, make([]uint8, 12), true)
	}, "not a power of two")
	test.ExpectSuccess(t, assert.Violated(r))

	r = test.ExpectPanic(t, func() {
		b.MapNormal(0x00200000, 0x002fffff, nil, bus.Handlers{})
	}, "no handlers")
	test.ExpectSuccess(t, assert.Violated(r))

	r = test.ExpectPanic(t, func() {
		b.Unmap(0, 0x08000000)
	}, "outside address space")
	test.ExpectSuccess(t, assert.Violated(r))
}

func TestLogOpenBus(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment(environment.MainEmulation, p)
	test.DemandSuccess(t, err)

	b := bus.NewBus(env)
	logger.Clear()

	b.Read8(0x00300000)
	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	test.DemandSuccess(t, p.LogOpenBus.Set(true))
	b.Read8(0x00300000)
	b.Write16(0x00300002, 0xbeef)
	w.Clear()
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "bus: unmapped read8 from 0x0300000\nbus: unmapped write16 to 0x0300002 (0xbeef)\n")
	logger.Clear()
}
