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

// Package snapshot defines the save state envelope of a machine. The envelope
// is a MessagePack map with a version number and one entry per field. The
// scheduler state is carried as an opaque binary field and is decoded by the
// scheduler package.
//
// Older versions of the envelope are upgraded to the current State when they
// are decoded. Version 1 did not record the position of the secondary CPU
// separately from the primary, and so had no spillover field.
//
// Decode() checks the envelope completely before returning. Components should
// not be changed until Decode() has succeeded.
package snapshot
