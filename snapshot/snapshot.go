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

package snapshot

import (
	"fmt"

	"github.com/tinylib/msgp/msgp"

	"github.com/satcore/satcore/curated"
)

// Version is the current version of the envelope.
const Version = 2

// Sentinel error patterns.
const (
	Malformed          = "snapshot: malformed: %v"
	UnsupportedVersion = "snapshot: unsupported version (%d)"
	MissingField       = "snapshot: version %d: missing field (%s)"
)

// State is everything needed to restore a machine.
type State struct {
	// output of Scheduler.SaveState()
	Scheduler []byte

	// absolute cycle positions of the two CPUs. the secondary position is
	// always the primary position plus the spillover
	PrimaryCycles   uint64
	SecondaryCycles uint64
	Spillover       uint64

	Frames uint64

	RasterLine  int64
	RasterFrame int64

	Samples uint64
}

// field keys
const (
	keyVersion   = "version"
	keyScheduler = "scheduler"
	keyPrimary   = "primary"
	keySecondary = "secondary"
	keySpillover = "spillover"
	keyFrames    = "frames"
	keyLine      = "line"
	keyFrame     = "frame"
	keySamples   = "samples"
)

// fields required by each version of the envelope
var required = map[int][]string{
	1: {keyScheduler, keyPrimary, keyFrames, keyLine, keyFrame, keySamples},
	2: {keyScheduler, keyPrimary, keySecondary, keySpillover, keyFrames, keyLine, keyFrame, keySamples},
}

// Encode the State in the current version of the envelope.
func Encode(st State) []byte {
	b := make([]byte, 0, len(st.Scheduler)+128)
	b = msgp.AppendMapHeader(b, 9)
	b = msgp.AppendString(b, keyVersion)
	b = msgp.AppendInt(b, Version)
	b = msgp.AppendString(b, keyScheduler)
	b = msgp.AppendBytes(b, st.Scheduler)
	b = msgp.AppendString(b, keyPrimary)
	b = msgp.AppendUint64(b, st.PrimaryCycles)
	b = msgp.AppendString(b, keySecondary)
	b = msgp.AppendUint64(b, st.SecondaryCycles)
	b = msgp.AppendString(b, keySpillover)
	b = msgp.AppendUint64(b, st.Spillover)
	b = msgp.AppendString(b, keyFrames)
	b = msgp.AppendUint64(b, st.Frames)
	b = msgp.AppendString(b, keyLine)
	b = msgp.AppendInt64(b, st.RasterLine)
	b = msgp.AppendString(b, keyFrame)
	b = msgp.AppendInt64(b, st.RasterFrame)
	b = msgp.AppendString(b, keySamples)
	b = msgp.AppendUint64(b, st.Samples)
	return b
}

// Decode an envelope of any supported version. The returned State is always
// in the form of the current version.
func Decode(b []byte) (State, error) {
	var st State

	sz, b, err := msgp.ReadMapHeaderBytes(b)
	if err != nil {
		return st, curated.Errorf(Malformed, err)
	}

	// every field takes at least two bytes
	if uint64(sz)*2 > uint64(len(b)) {
		return st, curated.Errorf(Malformed, fmt.Sprintf("%d fields in %d bytes", sz, len(b)))
	}

	version := -1
	seen := make(map[string]bool, sz)

	for ; sz > 0; sz-- {
		var key string
		key, b, err = msgp.ReadStringBytes(b)
		if err != nil {
			return st, curated.Errorf(Malformed, err)
		}

		switch key {
		case keyVersion:
			version, b, err = msgp.ReadIntBytes(b)
		case keyScheduler:
			st.Scheduler, b, err = msgp.ReadBytesBytes(b, nil)
		case keyPrimary:
			st.PrimaryCycles, b, err = msgp.ReadUint64Bytes(b)
		case keySecondary:
			st.SecondaryCycles, b, err = msgp.ReadUint64Bytes(b)
		case keySpillover:
			st.Spillover, b, err = msgp.ReadUint64Bytes(b)
		case keyFrames:
			st.Frames, b, err = msgp.ReadUint64Bytes(b)
		case keyLine:
			st.RasterLine, b, err = msgp.ReadInt64Bytes(b)
		case keyFrame:
			st.RasterFrame, b, err = msgp.ReadInt64Bytes(b)
		case keySamples:
			st.Samples, b, err = msgp.ReadUint64Bytes(b)
		default:
			b, err = msgp.Skip(b)
		}
		if err != nil {
			return st, curated.Errorf(Malformed, err)
		}

		seen[key] = true
	}

	fields, ok := required[version]
	if !ok {
		return st, curated.Errorf(UnsupportedVersion, version)
	}
	for _, f := range fields {
		if !seen[f] {
			return st, curated.Errorf(MissingField, version, f)
		}
	}

	return migrate(version, st)
}

// migrate upgrades a State decoded from an older version of the envelope.
func migrate(version int, st State) (State, error) {
	if version < 2 {
		st.Spillover = 0
		st.SecondaryCycles = st.PrimaryCycles
	}

	if st.SecondaryCycles != st.PrimaryCycles+st.Spillover {
		return st, curated.Errorf(Malformed, "secondary position does not agree with spillover")
	}

	return st, nil
}
