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
	"fmt"

	"github.com/satcore/satcore/assert"
	"github.com/satcore/satcore/curated"
	"github.com/satcore/satcore/environment"
	"github.com/satcore/satcore/hardware/clocks"
	"github.com/satcore/satcore/hardware/memory/bus"
	"github.com/satcore/satcore/hardware/preferences"
	"github.com/satcore/satcore/hardware/raster"
	"github.com/satcore/satcore/hardware/scheduler"
	"github.com/satcore/satcore/hardware/scsp"
	"github.com/satcore/satcore/logger"
)

// the largest budget the synchronizer will use in a single Step(). the raster
// event means the budget is normally no more than one line
const maxBudget = 1 << 20

// Machine is the main container for the emulated components.
type Machine struct {
	env *environment.Environment

	Scheduler *scheduler.Scheduler
	Bus       *bus.Bus
	Raster    *raster.Raster
	SCSP      *scsp.SCSP

	// memory arrays mapped into the bus
	BIOS        []uint8
	BackupRAM   []uint8
	WorkRAMLow  []uint8
	WorkRAMHigh []uint8
	SoundRAM    []uint8

	primary   CPU
	secondary CPU
	units     []Unit

	ratios clocks.ClockRatios

	// copies of the live preferences taken at the most recent frame boundary
	stepCap          uint64
	secondaryEnabled bool

	// absolute cycle positions of the two CPUs. the secondary is always ahead
	// of the primary by exactly the spillover
	primaryCycles   uint64
	secondaryCycles uint64
	spillover       uint64

	frames uint64

	// the goroutine driving the machine
	owner assert.Owner
}

// NewMachine creates a new Machine and everything associated with the
// hardware. CPUs must be attached before the machine can be run.
func NewMachine(env *environment.Environment) (*Machine, error) {
	if env == nil {
		return nil, curated.Errorf("machine: an environment is required")
	}

	m := &Machine{
		env:       env,
		Scheduler: scheduler.NewScheduler(scheduler.DefaultCapacity),
	}

	m.env.Random.Plumb(m.Scheduler)
	m.Bus = bus.NewBus(env)
	m.mapMemory()

	region, mode := env.Prefs.Clock()
	m.ratios = clocks.Ratios(region, mode)

	m.Raster = raster.NewRaster(m.Scheduler, region, mode)
	m.Raster.MapRegisters(m.Bus)
	m.SCSP = scsp.NewSCSP(m.Scheduler, m.ratios)

	m.Reset(true)

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("frames=%d master=%d %s %s", m.frames, m.Scheduler.Now(), m.Raster, m.SCSP)
}

// Env returns the environment of the machine.
func (m *Machine) Env() *environment.Environment {
	return m.env
}

// AttachPrimary attaches the primary CPU. The synchronizer cannot run without
// a primary CPU.
func (m *Machine) AttachPrimary(cpu CPU) {
	m.primary = cpu
}

// AttachSecondary attaches the secondary CPU. A nil value detaches the CPU.
func (m *Machine) AttachSecondary(cpu CPU) {
	m.secondary = cpu
}

// AttachUnit adds a unit to the list of units that are advanced with the
// primary CPU. Units are advanced in the order they are attached.
func (m *Machine) AttachUnit(u Unit) {
	assert.Contract(u != nil, "machine: cannot attach a nil unit")
	m.units = append(m.units, u)
}

// Ratios returns the current clock ratios.
func (m *Machine) Ratios() clocks.ClockRatios {
	return m.ratios
}

// SetClock changes the master clock. Every scheduled event that does not tick
// at the master clock rate keeps the number of its own cycles remaining until
// its deadline.
func (m *Machine) SetClock(region clocks.Region, mode clocks.Mode) {
	m.ratios = clocks.Ratios(region, mode)
	m.Raster.SetClock(region, mode)
	m.SCSP.SetClock(m.ratios)
	logger.Logf(m.env, "machine", "clock: %s", m.ratios)
}

// Reset the machine. A hard reset also clears memory and the frame count.
func (m *Machine) Reset(hard bool) {
	m.Scheduler.Reset()
	m.Raster.Reset()
	m.SCSP.Reset()

	m.primaryCycles = 0
	m.secondaryCycles = 0
	m.spillover = 0

	if hard {
		m.frames = 0
		m.clearMemory()
	}

	for _, c := range []any{m.primary, m.secondary} {
		if r, ok := c.(resetter); ok {
			r.Reset(hard)
		}
	}
	for _, u := range m.units {
		if r, ok := u.(resetter); ok {
			r.Reset(hard)
		}
	}

	m.frameBoundary()

	if hard {
		logger.Log(m.env, "machine", "hard reset")
	} else {
		logger.Log(m.env, "machine", "soft reset")
	}
}

// frameBoundary is called at the end of every frame. Preference changes are
// only noticed here.
func (m *Machine) frameBoundary() {
	region, mode := m.env.Prefs.Clock()
	if region != m.ratios.Region || mode != m.ratios.Mode {
		m.SetClock(region, mode)
	}

	m.stepCap = uint64(m.env.Prefs.Live.StepCap.Load())
	if m.stepCap == 0 {
		m.stepCap = preferences.DefaultStepCap
	}
	m.secondaryEnabled = m.env.Prefs.Live.Secondary.Load()
}

// Positions returns the absolute cycle positions of the primary and secondary
// CPUs.
func (m *Machine) Positions() (uint64, uint64) {
	return m.primaryCycles, m.secondaryCycles
}

// Spillover returns the number of cycles the secondary CPU is ahead of the
// primary CPU.
func (m *Machine) Spillover() uint64 {
	return m.spillover
}

// Frames returns the number of frames completed since the last hard reset.
func (m *Machine) Frames() uint64 {
	return m.frames
}

// StepCap returns the step cap currently in use.
func (m *Machine) StepCap() uint64 {
	return m.stepCap
}
