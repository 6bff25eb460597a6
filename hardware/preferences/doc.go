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

// Package preferences collates the preference values that affect the
// emulated hardware. Values are stored in the preferences file by the prefs
// package and can be overridden on the command line.
//
// Each preference has a "live" copy in the Live field. The live copies are
// updated automatically whenever a preference is set and should be preferred
// by the emulation, which only looks at them at frame boundaries.
package preferences
