// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package core

// Snapshot is a deep copy of every piece of Core state the
// specification classes as persistent (§6.5): the storage arrays and
// the mapping registers. The slot dispatch table, slot hints and
// channel cache are deliberately excluded, exactly as the
// specification requires -- they are derived state, rebuilt lazily
// the moment Restore invalidates them.
type Snapshot struct {
	mainRAM       []byte
	slowRAM       []byte
	colourRAM     []byte
	hypervisorRAM []byte

	mapOffsetLo, mapOffsetHi uint32
	mapMBLo, mapMBHi         uint32
	mapMask                  uint8
	cpuIOPort                [2]uint8
	c64Memlayout             uint8
	vic3ROMCfg               uint8
	vic3ROMMask              uint8
	romProtect               bool
	inHypervisor             bool
	forceFast                bool
	vicIOMode                uint8

	inhibitInterrupts bool
	undecodedPolicy   UndecodedPolicy
	programCounter    uint16
}

// Snapshot captures a deep copy of the machine's persistent state. The
// c64ColourRAM shadow is not captured: it is wholly derived from
// colourRAM and is regenerated by Restore.
func (c *Core) Snapshot() *Snapshot {
	snap := &Snapshot{
		mainRAM:       append([]byte(nil), c.mainRAM...),
		slowRAM:       append([]byte(nil), c.slowRAM...),
		colourRAM:     append([]byte(nil), c.colourRAM...),
		hypervisorRAM: append([]byte(nil), c.hypervisorRAM...),

		mapOffsetLo:  c.mapOffsetLo,
		mapOffsetHi:  c.mapOffsetHi,
		mapMBLo:      c.mapMBLo,
		mapMBHi:      c.mapMBHi,
		mapMask:      c.mapMask,
		cpuIOPort:    c.cpuIOPort,
		c64Memlayout: c.c64Memlayout,
		vic3ROMCfg:   c.vic3ROMCfg,
		vic3ROMMask:  c.vic3ROMMask,
		romProtect:   c.romProtect,
		inHypervisor: c.inHypervisor,
		forceFast:    c.forceFast,
		vicIOMode:    c.vicIOMode,

		inhibitInterrupts: c.InhibitInterrupts,
		undecodedPolicy:   c.undecodedPolicy,
		programCounter:    c.ProgramCounter,
	}
	return snap
}

// Restore replaces the machine's persistent state with snap and
// invalidates every derived structure: the CPU slot table, the
// bus-master channel cache, and the colour-RAM C64-mode shadow. The
// storage arrays are copied into the existing buffers rather than
// aliasing snap's, so a caller can safely mutate or discard snap
// afterwards.
func (c *Core) Restore(snap *Snapshot) error {
	copy(c.mainRAM, snap.mainRAM)
	copy(c.slowRAM, snap.slowRAM)
	copy(c.colourRAM, snap.colourRAM)
	copy(c.hypervisorRAM, snap.hypervisorRAM)

	c.mapOffsetLo = snap.mapOffsetLo
	c.mapOffsetHi = snap.mapOffsetHi
	c.mapMBLo = snap.mapMBLo
	c.mapMBHi = snap.mapMBHi
	c.mapMask = snap.mapMask
	c.cpuIOPort = snap.cpuIOPort
	c.c64Memlayout = snap.c64Memlayout
	c.vic3ROMCfg = snap.vic3ROMCfg
	c.vic3ROMMask = snap.vic3ROMMask
	c.romProtect = snap.romProtect
	c.inHypervisor = snap.inHypervisor
	c.forceFast = snap.forceFast
	c.vicIOMode = snap.vicIOMode

	c.InhibitInterrupts = snap.inhibitInterrupts
	c.undecodedPolicy = snap.undecodedPolicy
	c.ProgramCounter = snap.programCounter

	c.seedColourRAMShadows()
	c.InvalidateMapperAll()
	c.InvalidateChannels()

	return nil
}
