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

// Package synthetic provides stand-in hardware units that generate a
// realistic load on the bus and the synchronizer. They are used by the
// command line harness and by tests.
//
// The CPU type executes pseudo-instructions. Each instruction reads a word
// from memory through the bus, derives its own cycle cost from that word and
// writes a modified word back. Instruction costs are between 1 and MaxCost
// cycles. Optionally, the CPU stops early at regular intervals, which is how a
// real CPU behaves when it enters a wait state.
//
// The IRQRouter type counts the cycles it is advanced by.
package synthetic
