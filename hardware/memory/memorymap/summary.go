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

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	var area, current Area
	var sa uint32

	s := strings.Builder{}

	// areas always change on a page boundary
	_, current = MapAddress(0)

	for p := uint32(1); p < NumPages; p++ {
		a := p << PageBits
		_, area = MapAddress(a)

		if area != current {
			s.WriteString(fmt.Sprintf("%07x -> %07x\t%s\n", sa, a-1, current.String()))
			current = area
			sa = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%07x -> %07x\t%s\n", sa, Memtop, current.String()))

	return s.String()
}
