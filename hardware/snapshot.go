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
	"github.com/satcore/satcore/hardware/raster"
	"github.com/satcore/satcore/logger"
	"github.com/satcore/satcore/snapshot"
)

// Snapshot creates a copy of the timing state of the machine. Memory and CPU
// registers are not included.
func (m *Machine) Snapshot() []byte {
	pos := m.Raster.Position()
	return snapshot.Encode(snapshot.State{
		Scheduler:       m.Scheduler.SaveState(nil),
		PrimaryCycles:   m.primaryCycles,
		SecondaryCycles: m.secondaryCycles,
		Spillover:       m.spillover,
		Frames:          m.frames,
		RasterLine:      int64(pos.Line),
		RasterFrame:     int64(pos.Frame),
		Samples:         m.SCSP.Samples(),
	})
}

// Plumb restores a snapshot created by Snapshot(). The snapshot is checked
// completely before the machine is changed. If an error is returned the
// machine is unchanged.
func (m *Machine) Plumb(data []byte) error {
	st, err := snapshot.Decode(data)
	if err != nil {
		return curated.Errorf("machine: %v", err)
	}

	if err := m.Scheduler.CheckState(st.Scheduler); err != nil {
		return curated.Errorf("machine: %v", err)
	}

	if st.RasterLine < 0 || st.RasterLine >= int64(m.Raster.LinesPerFrame()) {
		return curated.Errorf("machine: raster line out of range (%d)", st.RasterLine)
	}
	if st.RasterFrame < 0 {
		return curated.Errorf("machine: raster frame out of range (%d)", st.RasterFrame)
	}

	// the state has already been checked so this should never fail
	if err := m.Scheduler.LoadState(st.Scheduler); err != nil {
		return curated.Errorf("machine: %v", err)
	}

	m.primaryCycles = st.PrimaryCycles
	m.secondaryCycles = st.SecondaryCycles
	m.spillover = st.Spillover
	m.frames = st.Frames
	m.Raster.SetPosition(raster.Position{Line: int(st.RasterLine), Frame: int(st.RasterFrame)})
	m.SCSP.SetSamples(st.Samples)

	// the event count factors in the snapshot are those of the machine that
	// created it. reapply the factors for the current clock
	m.SetClock(m.ratios.Region, m.ratios.Mode)

	logger.Logf(m.env, "machine", "plumbed snapshot at master cycle %d", m.Scheduler.Now())

	return nil
}
