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

package preferences

import (
	"sync/atomic"

	"github.com/satcore/satcore/curated"
	"github.com/satcore/satcore/hardware/clocks"
	"github.com/satcore/satcore/paths"
	"github.com/satcore/satcore/prefs"
)

// Limits of the StepCap preference.
const (
	DefaultStepCap = 32
	MaxStepCap     = 4096
)

// Sentinel error patterns.
const (
	InvalidStepCap = "preferences: step cap must be between 1 and %d (%d)"
)

// LivePreferences are the current values of the preferences, updated whenever
// the prefs values are set. Safe to read from the emulation goroutine without
// the overhead of the prefs types.
type LivePreferences struct {
	Region     atomic.Int32 // clocks.Region
	Mode       atomic.Int32 // clocks.Mode
	StepCap    atomic.Int64
	Secondary  atomic.Bool
	LogOpenBus atomic.Bool
}

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// Prefer live values in performance critical code
	Live LivePreferences

	// the video standard and the horizontal resolution together select the
	// master clock frequency
	Region prefs.String
	HRes   prefs.String

	// the maximum number of cycles the primary CPU is advanced before the
	// secondary CPU and the interrupt router catch up
	StepCap prefs.Int

	// run the secondary CPU
	Secondary prefs.Bool

	// log reads and writes to unmapped addresses
	LogOpenBus prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Preferences are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() but the preferences
// file is specified explicitly.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Region.SetHookPre(func(v prefs.Value) error {
		_, err := clocks.ParseRegion(v.(string))
		return err
	})
	p.Region.SetHookPost(func(v prefs.Value) error {
		r, _ := clocks.ParseRegion(v.(string))
		p.Live.Region.Store(int32(r))
		return nil
	})

	p.HRes.SetHookPre(func(v prefs.Value) error {
		_, err := clocks.ParseMode(v.(string))
		return err
	})
	p.HRes.SetHookPost(func(v prefs.Value) error {
		m, _ := clocks.ParseMode(v.(string))
		p.Live.Mode.Store(int32(m))
		return nil
	})

	p.StepCap.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		if n < 1 || n > MaxStepCap {
			return curated.Errorf(InvalidStepCap, MaxStepCap, n)
		}
		return nil
	})
	p.StepCap.SetHookPost(func(v prefs.Value) error {
		p.Live.StepCap.Store(int64(v.(int)))
		return nil
	})

	p.Secondary.SetHookPost(func(v prefs.Value) error {
		p.Live.Secondary.Store(v.(bool))
		return nil
	})

	p.LogOpenBus.SetHookPost(func(v prefs.Value) error {
		p.Live.LogOpenBus.Store(v.(bool))
		return nil
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.region", &p.Region)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.hres", &p.HRes)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.stepcap", &p.StepCap)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.secondary", &p.Secondary)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("bus.logopenbus", &p.LogOpenBus)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default value.
func (p *Preferences) SetDefaults() {
	// errors are not possible with these values
	_ = p.Region.Set(clocks.NTSC.String())
	_ = p.HRes.Set(clocks.HRes320.String())
	_ = p.StepCap.Set(DefaultStepCap)
	_ = p.Secondary.Set(true)
	_ = p.LogOpenBus.Set(false)
}

// Clock returns the live region and mode.
func (p *Preferences) Clock() (clocks.Region, clocks.Mode) {
	return clocks.Region(p.Live.Region.Load()), clocks.Mode(p.Live.Mode.Load())
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
