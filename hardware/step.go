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
	"github.com/satcore/satcore/assert"
)

// Step runs the machine until the next scheduled event is due. The primary CPU
// is run in slices of no more than the step cap. After every slice the
// secondary CPU is asked to catch up with the primary and the units are
// advanced by the number of cycles the primary actually ran.
//
// The scheduler is advanced by the total number of cycles run by the primary,
// which may exceed the budget by less than the cost of one instruction. Any
// events that become due are fired before Step() returns.
func (m *Machine) Step() {
	assert.Contract(m.primary != nil, "machine: no primary CPU attached")

	budget := m.Scheduler.Budget()
	if budget > maxBudget {
		budget = maxBudget
	}

	// an event is already due
	if budget == 0 {
		m.Scheduler.Advance(0)
		return
	}

	var total uint64
	for total < budget {
		slice := budget - total
		if slice > m.stepCap {
			slice = m.stepCap
		}

		ran := m.primary.Advance(slice, 0)
		assert.Contract(ran > 0, "machine: primary CPU made no progress")

		total += ran
		m.primaryCycles += ran

		m.syncSecondary(ran)

		for _, u := range m.units {
			u.Advance(ran)
		}
	}

	m.Scheduler.Advance(total)
}

// syncSecondary runs the secondary CPU for the same number of cycles the
// primary has just run. Cycles the secondary ran past its target in previous
// slices count towards the new target.
//
// The secondary position is therefore ahead of the primary by the spillover,
// which is less than the cost of one instruction (synthetic.MaxCost) and so
// within the step cap.
//
// A secondary that is detached or disabled is treated as idle. It keeps pace
// with the primary without running and any outstanding spillover is preserved.
func (m *Machine) syncSecondary(ran uint64) {
	if m.secondary == nil || !m.secondaryEnabled {
		m.secondaryCycles += ran
		return
	}

	consumed := m.secondary.Advance(ran, m.spillover)

	// a secondary that stops short of the target is idle for the remainder
	if consumed < ran {
		consumed = ran
	}

	m.secondaryCycles += consumed - m.spillover
	m.spillover = consumed - ran
}
