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

package assert

import (
	"github.com/satcore/satcore/curated"
)

// ContractViolation is the pattern used for the panic value of Contract(). The
// value is a curated error and can be tested for with curated.Has().
const ContractViolation = "contract violation: %v"

// Contract panics if cond is false. The pattern and values are used to create
// the curated error that is the panic value.
func Contract(cond bool, pattern string, values ...any) {
	if cond {
		return
	}
	panic(curated.Errorf(ContractViolation, curated.Errorf(pattern, values...)))
}

// Violated returns true if the recovered value r is the result of a failed
// Contract().
func Violated(r any) bool {
	if err, ok := r.(error); ok {
		return curated.Is(err, ContractViolation)
	}
	return false
}
