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

package hardware

import (
	"github.com/satcore/satcore/curated"
	"github.com/satcore/satcore/govern"
)

// It can be expensive to do a full continue check at the end of every frame.
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// RunFrame runs the machine until the end of the current frame. The end of the
// frame is the point where the raster moves onto the last line. If the raster
// is already on the last line then the machine runs until the last line of
// the following frame.
//
// Changes to the preferences are applied once the frame has ended.
func (m *Machine) RunFrame() {
	m.owner.Check("machine")

	for m.Raster.LastLine() {
		m.Step()
	}
	for !m.Raster.LastLine() {
		m.Step()
	}

	m.frames++
	m.frameBoundary()
}

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called at the end of every frame in the running state and after
// every call to Step() in the stepping state.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running:
			m.RunFrame()
		case govern.Stepping:
			m.Step()
		case govern.Paused:
		default:
			return curated.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets the emulation running for the specified number of
// frames. Useful for performance measurement and for tests.
func (m *Machine) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running
	for n := 0; n < numFrames && state != govern.Ending; n++ {
		m.RunFrame()

		state, err = continueCheck(int(m.frames))
		if err != nil {
			return err
		}
	}

	return nil
}
