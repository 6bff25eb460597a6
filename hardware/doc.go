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

// Package hardware is the base package for the emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation. It owns the Scheduler, the
// Bus and the units that are always present (the raster unit and the sound
// clock). CPUs and the interrupt router are attached to the Machine through
// the interfaces in this package.
//
// The synchronizer is the Step() function. It asks the Scheduler how many
// master cycles can pass before the next event is due and runs the primary
// CPU for that many cycles, in slices of no more than the step cap. After each
// slice the secondary CPU and the attached units are advanced by the number of
// cycles the primary CPU actually ran. Once the budget has been used the
// Scheduler is advanced, which runs any due events.
//
// From here, the emulation can either be started to run continuously (with an
// optional callback to check for continuation) or it can be stepped one budget
// at a time.
package hardware
