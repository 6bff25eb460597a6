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

// Package assert handles contract violations. A contract violation is a
// wiring bug in the emulator itself (registering the same scheduler event
// twice, mapping a reversed address range, etc.) and never the result of the
// emulated program's behaviour. There is no recovery path and so the
// functions in this package panic.
//
// The Owner type is used to check that an emulation instance is only ever
// driven from a single goroutine.
package assert
