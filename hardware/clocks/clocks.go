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

// Package clocks describes how the tick rate of each hardware unit relates to
// the master clock. The master clock is the clock of the primary CPU and its
// frequency depends on the region of the console and on the horizontal
// resolution mode selected by the graphics unit.
//
// Every relationship is an exact rational number. Nothing in this package
// uses floating point except for the String() and Hz() functions, which are
// for display purposes only.
package clocks

import (
	"fmt"
	"strings"

	"github.com/satcore/satcore/curated"
)

// Frequency is a rational frequency in Hz: Num / Den.
type Frequency struct {
	Num uint64
	Den uint64
}

// Hz returns the frequency as a floating point number. For display only.
func (f Frequency) Hz() float64 {
	return float64(f.Num) / float64(f.Den)
}

func (f Frequency) String() string {
	return fmt.Sprintf("%.6fMHz", f.Hz()/1000000)
}

// ColourBurst is the NTSC colour sub-carrier crystal from which the NTSC master
// clocks are derived.
const ColourBurst = 3579545

// Region of the console.
type Region int

// List of valid Region values.
const (
	NTSC Region = iota
	PAL
)

func (r Region) String() string {
	switch r {
	case NTSC:
		return "NTSC"
	case PAL:
		return "PAL"
	}
	return "unknown region"
}

// Mode is the horizontal resolution mode of the graphics unit. The dot clock
// and therefore the master clock changes with the mode.
type Mode int

// List of valid Mode values.
const (
	HRes320 Mode = iota
	HRes352
)

func (m Mode) String() string {
	switch m {
	case HRes320:
		return "320"
	case HRes352:
		return "352"
	}
	return "unknown mode"
}

// Sentinel error patterns.
const (
	UnknownRegion = "clocks: unknown region (%s)"
	UnknownMode   = "clocks: unknown mode (%s)"
)

// ParseRegion converts a string to a Region. Case insensitive.
func ParseRegion(s string) (Region, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NTSC":
		return NTSC, nil
	case "PAL":
		return PAL, nil
	}
	return NTSC, curated.Errorf(UnknownRegion, s)
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.TrimSpace(s) {
	case "320":
		return HRes320, nil
	case "352":
		return HRes352, nil
	}
	return HRes320, curated.Errorf(UnknownMode, s)
}

// Master returns the frequency of the master clock for the region and mode.
func Master(region Region, mode Mode) Frequency {
	switch region {
	case PAL:
		if mode == HRes352 {
			return Frequency{Num: 28437500, Den: 1}
		}
		return Frequency{Num: 26687500, Den: 1}
	default:
		if mode == HRes352 {
			return Frequency{Num: ColourBurst * 8, Den: 1}
		}
		return Frequency{Num: ColourBurst * 15, Den: 2}
	}
}

// LinesPerFrame returns the number of raster lines in one frame.
func LinesPerFrame(region Region) int {
	if region == PAL {
		return 313
	}
	return 263
}

// CyclesPerLine returns the number of master clock cycles in one raster line.
func CyclesPerLine(mode Mode) uint64 {
	if mode == HRes352 {
		return 1820
	}
	return 1708
}

// FrameRate returns the number of frames per second for the region and mode.
func FrameRate(region Region, mode Mode) float64 {
	cycles := float64(LinesPerFrame(region)) * float64(CyclesPerLine(mode))
	return Master(region, mode).Hz() / cycles
}
