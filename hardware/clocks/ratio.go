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

package clocks

import "fmt"

// Domain identifies a unit that does not tick at the master clock rate.
type Domain int

// List of valid Domain values.
const (
	DomainMaster Domain = iota
	DomainSCSP
	DomainSoundCPU
	DomainSMPC
	DomainCDBlock

	numDomains
)

func (d Domain) String() string {
	switch d {
	case DomainMaster:
		return "master"
	case DomainSCSP:
		return "scsp"
	case DomainSoundCPU:
		return "sound cpu"
	case DomainSMPC:
		return "smpc"
	case DomainCDBlock:
		return "cd block"
	}
	return "unknown domain"
}

// the fixed frequencies of the units that have their own oscillator. the
// master domain is not in this list because it depends on region and mode.
var unitFrequency = [numDomains]Frequency{
	DomainSCSP:     {Num: 44100 * 512, Den: 1},
	DomainSoundCPU: {Num: 44100 * 256, Den: 1},
	DomainSMPC:     {Num: 4000000, Den: 1},
	DomainCDBlock:  {Num: 20000000, Den: 1},
}

// Ratio is the number of owner clock ticks per master clock tick, expressed as
// Num / Den. Both values are always greater than zero.
type Ratio struct {
	Num uint64
	Den uint64
}

// Unity is the ratio of a unit that ticks at the master clock rate.
var Unity = Ratio{Num: 1, Den: 1}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// RatioOf returns the reduced ratio of owner ticks per master tick.
func RatioOf(owner Frequency, master Frequency) Ratio {
	n := owner.Num * master.Den
	d := owner.Den * master.Num
	g := gcd(n, d)
	if g == 0 {
		return Unity
	}
	return Ratio{Num: n / g, Den: d / g}
}

// ClockRatios is the ratio for every Domain for one region/mode combination.
type ClockRatios struct {
	Region Region
	Mode   Mode
	Master Frequency
	ratios [numDomains]Ratio
}

// Ratios computes the ClockRatios for the region and mode. It should be called
// whenever the region or mode changes.
func Ratios(region Region, mode Mode) ClockRatios {
	c := ClockRatios{
		Region: region,
		Mode:   mode,
		Master: Master(region, mode),
	}

	c.ratios[DomainMaster] = Unity
	for d := DomainMaster + 1; d < numDomains; d++ {
		c.ratios[d] = RatioOf(unitFrequency[d], c.Master)
	}

	return c
}

// Get returns the Ratio for the domain.
func (c ClockRatios) Get(d Domain) Ratio {
	if d < 0 || d >= numDomains {
		return Unity
	}
	return c.ratios[d]
}

// Frequency returns the frequency of the domain.
func (c ClockRatios) Frequency(d Domain) Frequency {
	if d == DomainMaster {
		return c.Master
	}
	return unitFrequency[d]
}

func (c ClockRatios) String() string {
	return fmt.Sprintf("%s/%s master=%s scsp=%s", c.Region, c.Mode, c.Master, c.ratios[DomainSCSP])
}
