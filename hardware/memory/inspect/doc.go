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

// Package inspect sits between debugging tools and the bus. Only the
// side-effect-free route of the bus is used so inspecting memory can never
// change the behaviour of the emulation.
//
// The key type is AddressInfo, which records everything useful about an
// address. Addresses can be given as numbers or as strings, which are parsed
// with the usual Go prefixes (0x, 0b, etc.)
//
// Peek() and Poke() return errors with the PeekError and PokeError patterns if
// the address cannot be understood.
package inspect
