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

package assert_test

import (
	"sync"
	"testing"

	"github.com/satcore/satcore/assert"
	"github.com/satcore/satcore/test"
)

func TestContract(t *testing.T) {
	assert.Contract(true, "never")

	r := test.ExpectPanic(t, func() {
		assert.Contract(false, "bad range (%#x > %#x)", 0x10, 0x08)
	})
	test.ExpectSuccess(t, assert.Violated(r))
	test.ExpectEquality(t, r.(error).Error(), "contract violation: bad range (0x10 > 0x8)")

	test.ExpectFailure(t, assert.Violated("plain panic"))
}

func TestGoroutineID(t *testing.T) {
	a := assert.GoroutineID()
	test.ExpectEquality(t, a, assert.GoroutineID())

	var b uint64
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		b = assert.GoroutineID()
	}()
	wg.Wait()
	test.ExpectInequality(t, a, b)
}

func TestOwner(t *testing.T) {
	var o assert.Owner
	o.Check("test")
	o.Check("test")

	var r any
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() { r = recover() }()
		o.Check("test")
	}()
	wg.Wait()
	test.ExpectSuccess(t, assert.Violated(r))

	o.Release()
	wg.Add(1)
	go func() {
		defer wg.Done()
		o.Check("test")
	}()
	wg.Wait()
}
