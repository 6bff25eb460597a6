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

package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/satcore/satcore/digest"
	"github.com/satcore/satcore/environment"
	"github.com/satcore/satcore/govern"
	"github.com/satcore/satcore/hardware"
	"github.com/satcore/satcore/hardware/clocks"
	"github.com/satcore/satcore/hardware/memory/memorymap"
	"github.com/satcore/satcore/hardware/preferences"
	"github.com/satcore/satcore/hardware/synthetic"
	"github.com/satcore/satcore/performance/limiter"
)

// instance is a single emulated machine along with the synthetic units that
// drive it
type instance struct {
	m         *hardware.Machine
	primary   *synthetic.CPU
	secondary *synthetic.CPU
	irq       *synthetic.IRQRouter

	// nil if a digest has not been requested
	digest *digest.State

	elapsed time.Duration
}

// newInstance creates a machine with synthetic CPUs running from work RAM. The
// first instance is the main emulation and the only one allowed to log.
func newInstance(n int, prefs *preferences.Preferences, withDigest bool) (*instance, error) {
	label := environment.MainEmulation
	if n > 0 {
		label = environment.Label(fmt.Sprintf("instance%d", n))
	}

	env, err := environment.NewEnvironment(label, prefs)
	if err != nil {
		return nil, err
	}

	m, err := hardware.NewMachine(env)
	if err != nil {
		return nil, err
	}

	inst := &instance{
		m:         m,
		primary:   synthetic.NewCPU("primary", m.Bus, memorymap.OriginWorkRAMHigh, 0x4000, env.Random),
		secondary: synthetic.NewCPU("secondary", m.Bus, memorymap.OriginWorkRAMHigh+0x4000, 0x4000, env.Random),
		irq:       &synthetic.IRQRouter{},
	}
	if withDigest {
		inst.digest = digest.NewState()
	}

	m.AttachPrimary(inst.primary)
	m.AttachSecondary(inst.secondary)
	m.AttachUnit(inst.irq)
	m.Reset(true)

	return inst, nil
}

func (inst *instance) String() string {
	label := string(inst.m.Env().Label)
	if inst.m.Env().IsMainEmulation() {
		label = "main"
	}

	pri, sec := inst.m.Positions()
	s := fmt.Sprintf("%s: frames=%d master=%d samples=%d primary=%d secondary=%d time=%v",
		label, inst.m.Frames(), inst.m.Scheduler.Now(), inst.m.SCSP.Samples(),
		pri, sec, inst.elapsed.Round(time.Millisecond))
	if inst.digest != nil {
		s = fmt.Sprintf("%s digest=%s", s, inst.digest.Hash())
	}
	return s
}

// run the instance for the number of frames. the frame rate is limited to the
// real frame rate if fpsCap is true
func (inst *instance) run(ctx context.Context, frames int, fpsCap bool) error {
	var lim *limiter.Limiter
	var rate float64
	if fpsCap {
		r := inst.m.Ratios()
		rate = clocks.FrameRate(r.Region, r.Mode)
		lim = limiter.NewLimiter(rate)
	}

	start := time.Now()
	defer func() {
		inst.elapsed = time.Since(start)
	}()

	return inst.m.RunForFrameCount(frames, func(frame int) (govern.State, error) {
		if inst.digest != nil {
			inst.digest.Update(inst.m)
		}

		if lim != nil {
			// the clock may have changed at the frame boundary
			r := inst.m.Ratios()
			if fr := clocks.FrameRate(r.Region, r.Mode); fr != rate {
				rate = fr
				lim.SetRate(rate)
			}
			lim.Wait()
		}

		if ctx.Err() != nil {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
}

// runInstances runs every instance on its own goroutine. The first error
// cancels the context given to the other instances.
func runInstances(ctx context.Context, instances []*instance, frames int, fpsCap bool) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, inst := range instances {
		g.Go(func() error {
			return inst.run(ctx, frames, fpsCap)
		})
	}
	return g.Wait()
}
