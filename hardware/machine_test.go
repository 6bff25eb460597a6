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

package hardware_test

import (
	"path/filepath"
	"testing"

	"github.com/tinylib/msgp/msgp"

	"github.com/satcore/satcore/assert"
	"github.com/satcore/satcore/environment"
	"github.com/satcore/satcore/govern"
	"github.com/satcore/satcore/hardware"
	"github.com/satcore/satcore/hardware/clocks"
	"github.com/satcore/satcore/hardware/memory/memorymap"
	"github.com/satcore/satcore/hardware/preferences"
	"github.com/satcore/satcore/hardware/scheduler"
	"github.com/satcore/satcore/hardware/synthetic"
	"github.com/satcore/satcore/snapshot"
	"github.com/satcore/satcore/test"
)

// machine with the synthetic CPUs and an IRQ router attached
type rig struct {
	m         *hardware.Machine
	primary   *synthetic.CPU
	secondary *synthetic.CPU
	irq       *synthetic.IRQRouter
}

func newRig(t *testing.T) rig {
	t.Helper()

	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	// a labelled environment does not write to the central log
	env, err := environment.NewEnvironment("test", prefs)
	test.DemandSuccess(t, err)
	env.Normalise()

	m, err := hardware.NewMachine(env)
	test.DemandSuccess(t, err)

	r := rig{
		m:         m,
		primary:   synthetic.NewCPU("primary", m.Bus, memorymap.OriginWorkRAMHigh, 0x1000, env.Random),
		secondary: synthetic.NewCPU("secondary", m.Bus, memorymap.OriginWorkRAMHigh+0x1000, 0x1000, env.Random),
		irq:       &synthetic.IRQRouter{},
	}
	m.AttachPrimary(r.primary)
	m.AttachSecondary(r.secondary)
	m.AttachUnit(r.irq)
	m.Reset(true)

	return r
}

func TestLockstep(t *testing.T) {
	r := newRig(t)

	for i := 0; i < 5000; i++ {
		r.m.Step()

		pri, sec := r.m.Positions()
		test.ExpectSuccess(t, sec >= pri)
		test.ExpectSuccess(t, sec-pri <= preferences.DefaultStepCap)
		test.ExpectEquality(t, sec-pri, r.m.Spillover())
	}

	pri, sec := r.m.Positions()
	test.ExpectEquality(t, r.primary.Cycles, pri)
	test.ExpectEquality(t, r.secondary.Cycles, sec)
	test.ExpectEquality(t, r.irq.Cycles, pri)

	// the scheduler is never behind the primary CPU
	test.ExpectEquality(t, r.m.Scheduler.Now(), pri)
}

func TestUnitsFollowActualCycles(t *testing.T) {
	r := newRig(t)
	r.primary.WaitEvery = 2

	for i := 0; i < 1000; i++ {
		r.m.Step()
	}

	test.ExpectSuccess(t, r.primary.Waits > 0)

	pri, _ := r.m.Positions()
	test.ExpectEquality(t, r.irq.Cycles, pri)
	test.ExpectEquality(t, r.primary.Cycles, pri)
}

func TestIdleSecondary(t *testing.T) {
	r := newRig(t)
	r.secondary.WaitEvery = 1

	for i := 0; i < 1000; i++ {
		r.m.Step()
		pri, sec := r.m.Positions()
		test.ExpectSuccess(t, sec >= pri)
		test.ExpectEquality(t, sec-pri, r.m.Spillover())
	}

	// the secondary stops short of its target and is assumed idle for the
	// rest of the slice
	test.ExpectSuccess(t, r.secondary.Waits > 0)
	_, sec := r.m.Positions()
	test.ExpectSuccess(t, sec > r.secondary.Cycles)
}

func TestSecondaryDisabled(t *testing.T) {
	r := newRig(t)
	r.m.Env().Prefs.Secondary.Set(false)

	// the preference is only noticed at the end of the frame
	r.m.RunFrame()
	cycles := r.secondary.Cycles
	test.ExpectSuccess(t, cycles > 0)

	r.m.RunFrame()
	test.ExpectEquality(t, r.secondary.Cycles, cycles)

	pri, sec := r.m.Positions()
	test.ExpectEquality(t, sec-pri, r.m.Spillover())
}

func TestStepCap(t *testing.T) {
	r := newRig(t)
	r.m.Env().Prefs.StepCap.Set(4)
	test.ExpectEquality(t, r.m.StepCap(), uint64(preferences.DefaultStepCap))

	r.m.RunFrame()
	test.ExpectEquality(t, r.m.StepCap(), uint64(4))

	for i := 0; i < 1000; i++ {
		r.m.Step()
		pri, sec := r.m.Positions()
		test.ExpectSuccess(t, sec-pri < 4+synthetic.MaxCost)
	}
}

func TestFrameBoundary(t *testing.T) {
	r := newRig(t)

	r.m.RunFrame()
	test.ExpectEquality(t, r.m.Frames(), uint64(1))
	test.ExpectSuccess(t, r.m.Raster.LastLine())

	// the first frame ends at the start of the last line
	perLine := r.m.Raster.CyclesPerLine()
	perFrame := perLine * uint64(r.m.Raster.LinesPerFrame())
	start := r.m.Scheduler.Now()
	test.ExpectSuccess(t, start >= perFrame-perLine)
	test.ExpectSuccess(t, start < perFrame-perLine+synthetic.MaxCost)

	// the following frames are a whole frame long
	for i := 0; i < 3; i++ {
		r.m.RunFrame()
		end := r.m.Scheduler.Now()
		test.ExpectSuccess(t, end+synthetic.MaxCost > start+perFrame)
		test.ExpectSuccess(t, end < start+perFrame+synthetic.MaxCost)
		test.ExpectSuccess(t, r.m.Raster.LastLine())
		start = end
	}

	test.ExpectEquality(t, r.m.Frames(), uint64(4))
	test.ExpectEquality(t, r.m.Raster.Frame(), 3)
}

func TestClockChange(t *testing.T) {
	r := newRig(t)
	test.ExpectEquality(t, r.m.Raster.LinesPerFrame(), 263)

	test.ExpectSuccess(t, r.m.Env().Prefs.Region.Set("PAL"))
	test.ExpectEquality(t, r.m.Ratios().Region, clocks.NTSC)

	r.m.RunFrame()
	test.ExpectEquality(t, r.m.Ratios().Region, clocks.PAL)
	test.ExpectEquality(t, r.m.Raster.LinesPerFrame(), 313)

	r.m.RunFrame()
	test.ExpectSuccess(t, r.m.Raster.LastLine())
	test.ExpectEquality(t, r.m.Raster.Line(), 312)
}

func TestSamples(t *testing.T) {
	r := newRig(t)

	// sixty NTSC frames is a little over one second
	test.ExpectSuccess(t, r.m.RunForFrameCount(60, nil))
	test.ExpectSuccess(t, r.m.SCSP.Samples() > 44000)
	test.ExpectSuccess(t, r.m.SCSP.Samples() < 44400)
}

func TestRunForFrameCount(t *testing.T) {
	r := newRig(t)

	test.ExpectSuccess(t, r.m.RunForFrameCount(5, nil))
	test.ExpectEquality(t, r.m.Frames(), uint64(5))

	err := r.m.RunForFrameCount(10, func(frame int) (govern.State, error) {
		if frame >= 7 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.m.Frames(), uint64(7))
}

func TestRun(t *testing.T) {
	r := newRig(t)

	var calls int
	err := r.m.Run(func() (govern.State, error) {
		calls++
		switch {
		case calls < 3:
			return govern.Running, nil
		case calls < 5:
			return govern.Paused, nil
		case calls < 10:
			return govern.Stepping, nil
		}
		return govern.Ending, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, r.m.Frames(), uint64(3))

	err = r.m.Run(func() (govern.State, error) {
		return govern.EmulatorStart, nil
	})
	test.ExpectFailure(t, err)
}

func TestSnapshot(t *testing.T) {
	r := newRig(t)

	test.ExpectSuccess(t, r.m.RunForFrameCount(2, nil))
	for i := 0; i < 100; i++ {
		r.m.Step()
	}

	snap := r.m.Snapshot()
	now := r.m.Scheduler.Now()
	pri, sec := r.m.Positions()
	line := r.m.Raster.Line()
	samples := r.m.SCSP.Samples()

	test.ExpectSuccess(t, r.m.RunForFrameCount(2, nil))
	test.ExpectInequality(t, r.m.Scheduler.Now(), now)

	test.ExpectSuccess(t, r.m.Plumb(snap))
	test.ExpectEquality(t, r.m.Scheduler.Now(), now)
	test.ExpectEquality(t, r.m.Frames(), uint64(2))
	test.ExpectEquality(t, r.m.Raster.Line(), line)
	test.ExpectEquality(t, r.m.SCSP.Samples(), samples)

	p, s := r.m.Positions()
	test.ExpectEquality(t, p, pri)
	test.ExpectEquality(t, s, sec)

	// the machine continues from the restored position
	r.m.RunFrame()
	test.ExpectEquality(t, r.m.Frames(), uint64(3))
	test.ExpectSuccess(t, r.m.Raster.LastLine())
}

func TestSnapshotRejected(t *testing.T) {
	a := newRig(t)
	b := newRig(t)

	// a snapshot containing an event unknown to the other machine
	a.m.Scheduler.RegisterEvent("extra.event", nil, func(*scheduler.EventContext, any) {})
	test.ExpectSuccess(t, a.m.RunForFrameCount(1, nil))
	snap := a.m.Snapshot()

	test.ExpectSuccess(t, b.m.RunForFrameCount(3, nil))
	now := b.m.Scheduler.Now()
	state := b.m.Scheduler.String()

	test.ExpectFailure(t, b.m.Plumb(snap))
	test.ExpectEquality(t, b.m.Scheduler.Now(), now)
	test.ExpectEquality(t, b.m.Scheduler.String(), state)
	test.ExpectEquality(t, b.m.Frames(), uint64(3))

	// garbage is rejected
	test.ExpectFailure(t, b.m.Plumb([]byte{0x01, 0x02, 0x03}))
	test.ExpectEquality(t, b.m.Scheduler.Now(), now)

	// headers that claim more data than is present
	test.ExpectFailure(t, b.m.Plumb(msgp.AppendMapHeader(nil, 0xffffffff)))

	sched := msgp.AppendMapHeader(nil, 1)
	sched = msgp.AppendString(sched, "events")
	sched = msgp.AppendArrayHeader(sched, 0xffffffff)
	test.ExpectFailure(t, b.m.Plumb(snapshot.Encode(snapshot.State{Scheduler: sched})))
	test.ExpectEquality(t, b.m.Scheduler.Now(), now)
	test.ExpectEquality(t, b.m.Frames(), uint64(3))
}

func TestDeterminism(t *testing.T) {
	a := newRig(t)
	b := newRig(t)

	test.ExpectSuccess(t, a.m.RunForFrameCount(10, nil))
	test.ExpectSuccess(t, b.m.RunForFrameCount(10, nil))

	test.ExpectEquality(t, a.m.Scheduler.Now(), b.m.Scheduler.Now())
	test.ExpectEquality(t, a.m.String(), b.m.String())
	test.ExpectEquality(t, a.primary.String(), b.primary.String())
	test.ExpectEquality(t, a.secondary.String(), b.secondary.String())
}

func TestReset(t *testing.T) {
	r := newRig(t)

	r.m.WorkRAMHigh[0x2000] = 0xaa
	r.m.BackupRAM[0] = 0x55
	test.ExpectSuccess(t, r.m.RunForFrameCount(2, nil))

	r.m.Reset(false)
	test.ExpectEquality(t, r.m.Scheduler.Now(), uint64(0))
	test.ExpectEquality(t, r.m.Frames(), uint64(2))
	test.ExpectEquality(t, r.m.WorkRAMHigh[0x2000], uint8(0xaa))

	r.m.Reset(true)
	test.ExpectEquality(t, r.m.Frames(), uint64(0))
	test.ExpectEquality(t, r.m.WorkRAMHigh[0x2000], uint8(0))
	test.ExpectEquality(t, r.m.BackupRAM[0], uint8(0x55))
	test.ExpectEquality(t, r.irq.Cycles, uint64(0))

	pri, sec := r.m.Positions()
	test.ExpectEquality(t, pri, uint64(0))
	test.ExpectEquality(t, sec, uint64(0))
}

func TestMemoryMap(t *testing.T) {
	r := newRig(t)

	r.m.LoadBIOS([]uint8{0x01, 0x02, 0x03, 0x04})
	test.ExpectEquality(t, r.m.Bus.Read32(memorymap.OriginBIOS), uint32(0x01020304))

	// the BIOS is mirrored and is read only
	test.ExpectEquality(t, r.m.Bus.Read32(memorymap.OriginBIOS+memorymap.SizeBIOS), uint32(0x01020304))
	r.m.Bus.Write32(memorymap.OriginBIOS, 0)
	test.ExpectEquality(t, r.m.Bus.Read32(memorymap.OriginBIOS), uint32(0x01020304))

	r.m.Bus.Write16(memorymap.OriginWorkRAMLow+0x10, 0xbeef)
	test.ExpectEquality(t, r.m.WorkRAMLow[0x10], uint8(0xbe))
	test.ExpectEquality(t, r.m.WorkRAMLow[0x11], uint8(0xef))

	r.m.Bus.Write8(memorymap.OriginSCSP+1, 0x7f)
	test.ExpectEquality(t, r.m.SoundRAM[1], uint8(0x7f))

	// unmapped memory
	test.ExpectEquality(t, r.m.Bus.Read32(memorymap.OriginCS0), uint32(0xffffffff))
}

func TestContracts(t *testing.T) {
	prefs, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", prefs)
	test.DemandSuccess(t, err)

	m, err := hardware.NewMachine(env)
	test.DemandSuccess(t, err)

	// no primary CPU
	rec := test.ExpectPanic(t, func() { m.Step() })
	test.ExpectSuccess(t, assert.Violated(rec))

	// a primary CPU that makes no progress
	m.AttachPrimary(stalled{})
	rec = test.ExpectPanic(t, func() { m.Step() })
	test.ExpectSuccess(t, assert.Violated(rec))

	_, err = hardware.NewMachine(nil)
	test.ExpectFailure(t, err)
}

type stalled struct{}

func (stalled) Advance(target uint64, consumed uint64) uint64 {
	return consumed
}

func TestOwner(t *testing.T) {
	r := newRig(t)
	r.m.RunFrame()

	done := make(chan any)
	go func() {
		defer func() {
			done <- recover()
		}()
		r.m.RunFrame()
	}()

	rec := <-done
	test.ExpectSuccess(t, assert.Violated(rec))
}
