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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// Snapshotter is implemented by types that can produce a serialised copy of
// their state.
type Snapshotter interface {
	Snapshot() []byte
}

// State is a chained digest of serialised machine state. Each call to
// Update() hashes the previous digest together with the new snapshot, so the
// final hash depends on every snapshot and the order they were taken in.
type State struct {
	digest  [sha1.Size]byte
	buffer  []byte
	updates int
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	return &State{}
}

func (dig *State) String() string {
	return fmt.Sprintf("%s (%d updates)", dig.Hash(), dig.updates)
}

// Hash implements the Digest interface.
func (dig *State) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *State) ResetDigest() {
	clear(dig.digest[:])
	dig.updates = 0
}

// Update chains the state of s into the digest.
func (dig *State) Update(s Snapshotter) {
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	dig.buffer = append(dig.buffer, s.Snapshot()...)
	dig.digest = sha1.Sum(dig.buffer)
	dig.updates++
}

// Updates returns the number of calls to Update() since the last reset.
func (dig *State) Updates() int {
	return dig.updates
}
