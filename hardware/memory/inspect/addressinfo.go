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
	"strings"

	"github.com/satcore/satcore/hardware/memory/memorymap"
)

// AddressInfo is returned by the inspect functions. The String() function
// provides a normalised presentation of information.
type AddressInfo struct {
	Address       uint32
	MappedAddress uint32
	Area          memorymap.Area

	// the data at the address. if peeked is false then data may not be valid
	Peeked bool
	Data   uint8
}

func (ai AddressInfo) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%#08x", ai.Address))

	if ai.Address != ai.MappedAddress {
		s.WriteString(fmt.Sprintf(" [mirror of %#07x]", ai.MappedAddress))
	}

	s.WriteString(fmt.Sprintf(" (%s)", ai.Area.String()))

	if ai.Peeked {
		s.WriteString(fmt.Sprintf(" -> %#02x", ai.Data))
	}

	return s.String()
}
