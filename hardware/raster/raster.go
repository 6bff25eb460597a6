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

// Package raster implements the timing of the video signal. It is not a
// graphics unit. It knows only how many master cycles there are in a line and
// how many lines there are in a frame.
//
// The unit has one scheduler event which runs at the end of every line. The
// LastLine() phase flag is true while the raster is on the final line of the
// frame. The flag becoming true marks the start of vertical blank and is used
// by the hardware package to find the frame boundary.
package raster

import (
	"fmt"

	"github.com/satcore/satcore/hardware/clocks"
	"github.com/satcore/satcore/hardware/scheduler"
)

// OwnerID of the raster event.
const OwnerID = scheduler.OwnerID("raster.line")

// Raster is the video timing unit.
type Raster struct {
	sched  *scheduler.Scheduler
	handle scheduler.Handle

	linesPerFrame int
	cyclesPerLine uint64
	pal           bool

	// current position of the raster
	line  int
	frame int
}

// NewRaster is the preferred method of initialisation for the Raster type.
// The scheduler event is registered but not scheduled until Reset() is called.
func NewRaster(sched *scheduler.Scheduler, region clocks.Region, mode clocks.Mode) *Raster {
	r := &Raster{
		sched: sched,
	}
	r.handle = sched.RegisterEvent(OwnerID, r, endOfLine)
	r.SetClock(region, mode)
	return r
}

func (r *Raster) String() string {
	return fmt.Sprintf("frame=%d line=%d", r.frame, r.line)
}

// SetClock changes the raster geometry. The line in progress keeps its
// original length.
func (r *Raster) SetClock(region clocks.Region, mode clocks.Mode) {
	r.pal = region == clocks.PAL
	r.linesPerFrame = clocks.LinesPerFrame(region)
	r.cyclesPerLine = clocks.CyclesPerLine(mode)
	if r.line >= r.linesPerFrame {
		r.line = r.linesPerFrame - 1
	}
}

// Reset the raster to the start of the first frame.
func (r *Raster) Reset() {
	r.line = 0
	r.frame = 0
	r.sched.ScheduleFromNow(r.handle, r.cyclesPerLine)
}

func endOfLine(ec *scheduler.EventContext, ctx any) {
	r := ctx.(*Raster)

	r.line++
	if r.line >= r.linesPerFrame {
		r.line = 0
		r.frame++
	}

	ec.RescheduleFromPrevious(r.cyclesPerLine)
}

// LastLine is the phase flag. It is true while the raster is on the last line
// of the frame.
func (r *Raster) LastLine() bool {
	return r.line == r.linesPerFrame-1
}

// Line returns the current line.
func (r *Raster) Line() int {
	return r.line
}

// Frame returns the number of frames completed since reset.
func (r *Raster) Frame() int {
	return r.frame
}

// CyclesPerLine returns the number of master cycles in a line.
func (r *Raster) CyclesPerLine() uint64 {
	return r.cyclesPerLine
}

// LinesPerFrame returns the number of lines in a frame.
func (r *Raster) LinesPerFrame() int {
	return r.linesPerFrame
}

// Position of the raster. Used by the snapshot system.
type Position struct {
	Line  int
	Frame int
}

// Position returns the current position of the raster.
func (r *Raster) Position() Position {
	return Position{Line: r.line, Frame: r.frame}
}

// SetPosition sets the raster position. The scheduler event is not changed.
func (r *Raster) SetPosition(p Position) {
	r.line = p.Line
	r.frame = p.Frame
}
