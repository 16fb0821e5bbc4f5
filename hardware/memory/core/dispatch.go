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

import (
	"github.com/RetroCogs/xemu65/hardware/memory/memorymap"
	"github.com/RetroCogs/xemu65/logger"
)

// Read implements bus.CPUBus. slot = addr16>>8; a direct-pointer hit
// completes in a single indexed load, exactly as the slot dispatch
// table's cpu_read operation specifies.
func (c *Core) Read(addr16 uint16) uint8 {
	slotIdx := int(addr16 >> 8)
	s := &c.slots[slotIdx]
	if s.rdData != nil {
		return s.rdData[s.rdOfs+uint32(addr16&0xFF)]
	}
	return c.dispatchCPURead(slotIdx, s, addr16)
}

// Write implements bus.CPUBus, symmetric with Read.
func (c *Core) Write(addr16 uint16, data uint8) {
	slotIdx := int(addr16 >> 8)
	s := &c.slots[slotIdx]
	if s.wrData != nil {
		s.wrData[s.wrOfs+uint32(addr16&0xFF)] = data
		return
	}
	c.dispatchCPUWrite(slotIdx, s, addr16, data)
}

// WriteRMW implements bus.CPUBus's read-modify-write contract: for
// callback writes it exposes old to the callback via cpuRMWOldData for
// the duration of the write, modelling the original 65xx "write old
// then new" sequence; for direct-memory writes it behaves exactly as
// Write.
func (c *Core) WriteRMW(addr16 uint16, old, new uint8) {
	slotIdx := int(addr16 >> 8)
	s := &c.slots[slotIdx]
	if s.wrData != nil {
		s.wrData[s.wrOfs+uint32(addr16&0xFF)] = new
		return
	}

	c.cpuRMWOldData = int16(old)
	defer func() { c.cpuRMWOldData = -1 }()
	c.dispatchCPUWrite(slotIdx, s, addr16, new)
}

// ReadQBYTE implements bus.CPUBus: four bytes, little-endian, with
// correct re-resolution of the slot on every 0xFF->0x00 page crossing.
func (c *Core) ReadQBYTE(addr16 uint16) uint32 {
	var v uint32
	for i := uint32(0); i < 4; i++ {
		v |= uint32(c.Read(addr16)) << (8 * i)
		addr16++
	}
	return v
}

// WriteQBYTE implements bus.CPUBus, symmetric with ReadQBYTE.
func (c *Core) WriteQBYTE(addr16 uint16, data uint32) {
	for i := uint32(0); i < 4; i++ {
		c.Write(addr16, uint8(data>>(8*i)))
		addr16++
	}
}

func (c *Core) dispatchCPURead(slotIdx int, s *slot, addr16 uint16) uint8 {
	switch s.rdTag {
	case tagResolver:
		c.resolveSlot(slotIdx)
		return c.Read(addr16)

	case tagUndecodedRead:
		addr := c.slotPhysAddr(slotIdx, s.rdOfs, addr16)
		return c.handleUndecodedRead(addr)

	case tagLegacyIORead:
		if c.io != nil {
			if fn := c.io.Read[c.vicIOMode&legacyIOModeMask][slotIdx&0x0F]; fn != nil {
				return fn(addr16)
			}
		}
		return 0xFF

	default:
		return 0xFF
	}
}

func (c *Core) dispatchCPUWrite(slotIdx int, s *slot, addr16 uint16, data uint8) {
	switch s.wrTag {
	case tagResolver:
		c.resolveSlot(slotIdx)
		c.Write(addr16, data)

	case tagZeroPageWrite:
		c.zeroPageWrite(addr16&0xFF, data)

	case tagColourRAMWrite:
		c.colourRAMWrite(s.wrOfs+uint32(addr16&0xFF), data)

	case tagUndecodedWrite:
		addr := c.slotPhysAddr(slotIdx, s.wrOfs, addr16)
		c.handleUndecodedWrite(addr, data)

	case tagLegacyIOWrite:
		if c.io != nil {
			if fn := c.io.Write[c.vicIOMode&legacyIOModeMask][slotIdx&0x0F]; fn != nil {
				fn(addr16, data)
			}
		}
	}
}

// legacyIOModeMask keeps the derived I/O-mode index within legacyio's
// table bounds.
const legacyIOModeMask = 0x03

// slotPhysAddr reconstructs the full 28-bit physical address a CPU
// slot's page currently represents, for diagnostics only: the region
// the logical decoder last resolved into, plus the region-relative
// offset stored on the slot, plus the CPU access's own low byte.
func (c *Core) slotPhysAddr(slotIdx int, relOfs uint32, addr16 uint16) uint32 {
	hint := c.slotHint[slotIdx]
	if hint < 0 || hint >= len(c.regions) {
		return uint32(addr16)
	}
	return uint32(c.regions[hint].Begin) + relOfs + uint32(addr16&0xFF)
}

// zeroPageWrite is the permanent callback at physical page 0 (§4.4).
// zpAddr is 0 or 1 for the CPU I/O port registers; any other value is
// a plain main-RAM write.
func (c *Core) zeroPageWrite(zpAddr uint16, data uint8) {
	if zpAddr&0xFE != 0 {
		c.mainRAM[zpAddr] = data
		return
	}

	if zpAddr == 0 && data&0xFE == 64 {
		fast := data&0x01 != 0
		if fast != c.forceFast {
			c.forceFast = fast
			c.OnSpeedChange(fast)
		}
		return
	}

	c.cpuIOPort[zpAddr] = data
	c.mainRAM[zpAddr] = data
	c.updateCPUIOPort(true)
}

// colourRAMWrite is the permanent callback covering the 2 KiB
// colour-RAM head region (§4.4). ofs is relative to the region's
// begin (0x1F800) and therefore also a valid index into colourRAM and
// its masked C64-mode shadow.
func (c *Core) colourRAMWrite(ofs uint32, data uint8) {
	c.mainRAM[physColourRAMHeadBeg+memorymap.PhysAddr(ofs)] = data
	if int(ofs) < len(c.colourRAM) {
		c.colourRAM[ofs] = data
	}
	if int(ofs) < len(c.c64ColourRAM) {
		c.c64ColourRAM[ofs] = (data & 0x0F) | 0xF0
	}
}

// handleUndecodedRead implements the undecoded-access diagnostic
// (§7, class 1): reads always return 0xFF regardless of the resulting
// policy, except that PolicyExit additionally records FatalErr.
func (c *Core) handleUndecodedRead(addr uint32) uint8 {
	c.reportUndecodedAccess(addr, false)
	return 0xFF
}

// handleUndecodedWrite implements the write-side counterpart; the
// byte is always discarded.
func (c *Core) handleUndecodedWrite(addr uint32, data uint8) {
	c.reportUndecodedAccess(addr, true)
}

func (c *Core) reportUndecodedAccess(addr uint32, write bool) {
	switch c.undecodedPolicy {
	case PolicySilent:
		return

	case PolicyIgnoreAll:
		logger.Logf(logger.Allow, "MEM", "undecoded %s at %#08x (pc=%#04x), ignoring",
			accessKind(write), addr, c.ProgramCounter)

	case PolicyIgnoreOnce:
		logger.Logf(logger.Allow, "MEM", "undecoded %s at %#08x (pc=%#04x), now ignoring further undecoded accesses",
			accessKind(write), addr, c.ProgramCounter)
		c.undecodedPolicy = PolicyIgnoreAll

	case PolicyExit:
		logger.Logf(logger.Allow, "MEM", "fatal undecoded %s at %#08x (pc=%#04x)", accessKind(write), addr, c.ProgramCounter)
		c.FatalErr = ErrFatalUndecodedAccess(addr)
	}

	if c.OnUndecodedAccess != nil {
		info := UndecodedAccess{
			Address:        addr,
			Write:          write,
			ProgramCounter: c.ProgramCounter,
			Policy:         c.undecodedPolicy,
		}
		c.undecodedPolicy = c.OnUndecodedAccess(info)
	}
}

func accessKind(write bool) string {
	if write {
		return "write"
	}
	return "read"
}

// SetUndecodedPolicy sets the policy consulted the next time an
// access lands in an undecoded region.
func (c *Core) SetUndecodedPolicy(p UndecodedPolicy) {
	c.undecodedPolicy = p
}
