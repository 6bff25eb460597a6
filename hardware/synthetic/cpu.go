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

package synthetic

import (
	"fmt"

	"github.com/satcore/satcore/random"
)

// MaxCost is the maximum number of cycles taken by a pseudo-instruction.
const MaxCost = 8

// Memory is the part of the bus used by the CPU.
type Memory interface {
	Read32(address uint32) uint32
	Write32(address uint32, value uint32)
}

// CPU is a synthetic processor.
type CPU struct {
	name string
	mem  Memory
	rnd  *random.Random

	// the CPU executes instructions in this address range
	origin uint32
	words  uint32

	pc uint32

	// number of instructions between each early stop. zero means the CPU never
	// stops early
	WaitEvery uint64

	// running totals since reset
	Cycles       uint64
	Instructions uint64
	Waits        uint64
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// executes instructions from the size bytes starting at origin.
func NewCPU(name string, mem Memory, origin uint32, size uint32, rnd *random.Random) *CPU {
	return &CPU{
		name:   name,
		mem:    mem,
		rnd:    rnd,
		origin: origin &^ 3,
		words:  size / 4,
	}
}

func (c *CPU) String() string {
	return fmt.Sprintf("%s: pc=%#07x cycles=%d instructions=%d waits=%d",
		c.name, c.pc, c.Cycles, c.Instructions, c.Waits)
}

// Reset the CPU. The program counter starts at a random word in the
// instruction range.
func (c *CPU) Reset(hard bool) {
	c.pc = c.origin
	if c.rnd != nil && c.words > 0 {
		c.pc += uint32(c.rnd.Intn(int(c.words))) * 4
	}
	if hard {
		c.Cycles = 0
		c.Instructions = 0
		c.Waits = 0
	}
}

// PC returns the program counter.
func (c *CPU) PC() uint32 {
	return c.pc
}

// step executes one instruction and returns its cost
func (c *CPU) step() uint64 {
	op := c.mem.Read32(c.pc)
	cost := 1 + uint64((op+c.pc>>2)%MaxCost)
	c.mem.Write32(c.pc, op*1664525+1013904223)

	c.pc += 4
	if c.pc >= c.origin+c.words*4 {
		c.pc = c.origin
	}

	c.Instructions++
	return cost
}

// Advance executes instructions until consumed is at least target. The new
// value of consumed is returned, which may be more than target if the final
// instruction took longer than the cycles remaining.
//
// If WaitEvery is not zero the CPU will return early every WaitEvery
// instructions, but only after having executed at least one instruction.
func (c *CPU) Advance(target uint64, consumed uint64) uint64 {
	start := consumed
	for consumed < target {
		if c.WaitEvery > 0 && consumed > start && c.Instructions%c.WaitEvery == 0 {
			c.Waits++
			break
		}
		consumed += c.step()
	}
	c.Cycles += consumed - start
	return consumed
}
