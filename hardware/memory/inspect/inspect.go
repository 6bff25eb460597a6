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

package inspect

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/satcore/satcore/curated"
	"github.com/satcore/satcore/hardware/memory/bus"
	"github.com/satcore/satcore/hardware/memory/memorymap"
)

// Sentinal error patterns returned by Peek() and Poke().
const (
	PeekError = "cannot peek address: %v"
	PokeError = "cannot poke address: %v"
)

// Inspector is a front-end to the side-effect-free route of the bus.
type Inspector struct {
	Mem bus.DebuggerBus
}

// NewInspector is the preferred method of initialisation for the Inspector type.
func NewInspector(mem bus.DebuggerBus) *Inspector {
	return &Inspector{Mem: mem}
}

// GetAddressInfo accepts numeric or string addresses. Returns nil if the
// address cannot be understood.
func (in *Inspector) GetAddressInfo(address any) *AddressInfo {
	ai := &AddressInfo{}

	switch address := address.(type) {
	case uint32:
		ai.Address = address
	case int:
		if address < 0 {
			return nil
		}
		ai.Address = uint32(address)
	case string:
		a, err := strconv.ParseUint(strings.TrimSpace(address), 0, 32)
		if err != nil {
			return nil
		}
		ai.Address = uint32(a)
	default:
		return nil
	}

	ai.MappedAddress, ai.Area = memorymap.MapAddress(ai.Address)

	return ai
}

// Peek returns the contents of the memory address without triggering any side
// effects.
func (in *Inspector) Peek(address any) (*AddressInfo, error) {
	ai := in.GetAddressInfo(address)
	if ai == nil {
		return nil, curated.Errorf(PeekError, address)
	}

	ai.Data = in.Mem.Peek8(ai.MappedAddress)
	ai.Peeked = true

	return ai, nil
}

// Poke writes a value to the address without triggering any side effects.
func (in *Inspector) Poke(address any, data uint8) (*AddressInfo, error) {
	ai := in.GetAddressInfo(address)
	if ai == nil {
		return nil, curated.Errorf(PokeError, address)
	}

	in.Mem.Poke8(ai.MappedAddress, data)
	ai.Data = data
	ai.Peeked = true

	return ai, nil
}

// Peek32 returns the word at the address. The address is aligned to a word
// boundary.
func (in *Inspector) Peek32(address any) (uint32, error) {
	ai := in.GetAddressInfo(address)
	if ai == nil {
		return 0, curated.Errorf(PeekError, address)
	}
	return in.Mem.Peek32(ai.MappedAddress), nil
}

// PokeBytes writes the data to consecutive addresses starting at address.
func (in *Inspector) PokeBytes(address any, data []uint8) error {
	ai := in.GetAddressInfo(address)
	if ai == nil {
		return curated.Errorf(PokeError, address)
	}
	for i, d := range data {
		in.Mem.Poke8(ai.MappedAddress+uint32(i), d)
	}
	return nil
}

// Dump writes a hex dump of the memory in the range to w. Sixteen bytes are
// written per line.
func (in *Inspector) Dump(w io.Writer, from uint32, to uint32) {
	from, _ = memorymap.MapAddress(from)
	to, _ = memorymap.MapAddress(to)
	if to < from {
		return
	}

	line := make([]string, 0, 16)
	start := from

	for a := from; ; a++ {
		line = append(line, fmt.Sprintf("%02x", in.Mem.Peek8(a)))

		if len(line) == 16 || a == to {
			io.WriteString(w, fmt.Sprintf("%07x: %s\n", start, strings.Join(line, " ")))
			line = line[:0]
			start = a + 1
		}

		if a == to {
			break
		}
	}
}
