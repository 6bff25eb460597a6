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
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It is relatively expensive and should not be called in a hot
// loop.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that first calls Check(). Subsequent calls from a
// different goroutine are a contract violation.
//
// The zero value is ready to use.
type Owner struct {
	id uint64
}

// Check claims ownership for the calling goroutine if the Owner is unclaimed
// and panics if the Owner has been claimed by another goroutine.
func (o *Owner) Check(label string) {
	id := GoroutineID()
	if o.id == 0 {
		o.id = id
		return
	}
	Contract(o.id == id, "%s: driven from goroutine %d but owned by goroutine %d", label, id, o.id)
}

// Release forgets the current owner. The next call to Check() will claim
// ownership.
func (o *Owner) Release() {
	o.id = 0
}
