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

package inspect_test

import (
	"testing"

	"github.com/satcore/satcore/curated"
	"github.com/satcore/satcore/hardware/memory/bus"
	"github.com/satcore/satcore/hardware/memory/inspect"
	"github.com/satcore/satcore/hardware/memory/memorymap"
	"github.com/satcore/satcore/test"
)

// a bus where every normal access is counted
func countingBus(t *testing.T) (*bus.Bus, *int) {
	t.Helper()

	b := bus.NewBus(nil)
	ram := make([]uint8, memorymap.SizeWorkRAMLow)
	b.MapArray(memorymap.OriginWorkRAMLow, memorymap.MemtopWorkRAMLow, ram, true)

	var normal int
	b.MapNormal(memorymap.OriginWorkRAMLow, memorymap.MemtopWorkRAMLow, ram, bus.Handlers{
		Read8: func(address uint32, ctx any) uint8 {
			normal++
			return ctx.([]uint8)[address&(memorymap.SizeWorkRAMLow-1)]
		},
		Write8: func(address uint32, value uint8, ctx any) {
			normal++
			ctx.([]uint8)[address&(memorymap.SizeWorkRAMLow-1)] = value
		},
	})

	return b, &normal
}

func TestPeekPoke(t *testing.T) {
	b, normal := countingBus(t)
	in := inspect.NewInspector(b)

	ai, err := in.Poke("0x00200010", 0x42)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ai.Area, memorymap.WorkRAMLow)

	ai, err = in.Peek(uint32(0x00200010))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ai.Data, uint8(0x42))
	test.ExpectEquality(t, ai.String(), "0x00200010 (Work RAM Low) -> 0x42")

	ai, err = in.Peek(0x20200010)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ai.String(), "0x20200010 [mirror of 0x0200010] (Work RAM Low) -> 0x42")

	_, err = in.Peek("not an address")
	test.ExpectSuccess(t, curated.Is(err, inspect.PeekError))
	_, err = in.Poke(-1, 0)
	test.ExpectSuccess(t, curated.Is(err, inspect.PokeError))

	test.ExpectSuccess(t, in.PokeBytes(uint32(0x00200020), []uint8{0xde, 0xad, 0xbe, 0xef}))
	v, err := in.Peek32(uint32(0x00200022))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xdeadbeef))

	// the normal route was never used
	test.ExpectEquality(t, *normal, 0)

	test.ExpectEquality(t, b.Read8(0x00200010), uint8(0x42))
	test.ExpectEquality(t, *normal, 1)
}

func TestDump(t *testing.T) {
	b, normal := countingBus(t)
	in := inspect.NewInspector(b)

	for i := uint32(0); i < 20; i++ {
		b.Poke8(0x00200000+i, uint8(i))
	}

	w := &test.CompareWriter{}
	in.Dump(w, 0x00200000, 0x00200013)
	test.ExpectEquality(t, w.String(),
		"0200000: 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f\n"+
			"0200010: 10 11 12 13\n")

	w.Clear()
	in.Dump(w, 0x00300000, 0x00300003)
	test.ExpectEquality(t, w.String(), "0300000: ff ff ff ff\n")

	test.ExpectEquality(t, *normal, 0)
}
