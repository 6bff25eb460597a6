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

// Package prefs facilitates the storage of preferences values. Values are
// instances of Bool, Int or String and are safe to read from any goroutine.
//
// Values are persisted by adding them to a Disk instance under a unique key.
// The file format is plain text, one "key :: value" pair per line, below a
// boiler-plate warning line.
//
// Preference values can be overridden from the command line by pushing a
// preferences string on to the command line stack before the Disk is loaded:
//
//	prefs.PushCommandLineStack("hardware.region::PAL; hardware.stepcap::16")
//
// The command line values take priority over values stored on disk. Once a
// command line value has been used it is removed from the stack.
package prefs
