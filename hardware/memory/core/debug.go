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
	"github.com/RetroCogs/xemu65/curated"
	"github.com/RetroCogs/xemu65/hardware/memory/bus"
	"github.com/RetroCogs/xemu65/hardware/memory/memorymap"
)

// Peek implements bus.DebuggerBus: it returns the byte a logical
// address currently resolves to without triggering any callback side
// effect (a legacy I/O or undecoded-access read may have one). An
// address that only resolves through a callback cannot be peeked and
// returns bus.AddressError.
func (c *Core) Peek(addr16 uint16) (uint8, error) {
	slotIdx := int(addr16 >> 8)
	s := &c.slots[slotIdx]
	if s.rdTag == tagResolver {
		c.resolveSlot(slotIdx)
		s = &c.slots[slotIdx]
	}

	if s.rdData != nil {
		return s.rdData[s.rdOfs+uint32(addr16&0xFF)], nil
	}

	return 0, curated.Errorf(bus.AddressError, addr16)
}

// Poke implements bus.DebuggerBus: it writes through the normal
// dispatch path, including any callback side effect, which is exactly
// what makes it useful for a debugger to force live hardware state.
// An address that resolves to the undecoded fallback still cannot be
// serviced and returns bus.AddressError.
func (c *Core) Poke(addr16 uint16, data uint8) error {
	slotIdx := int(addr16 >> 8)
	s := &c.slots[slotIdx]
	if s.wrTag == tagResolver {
		c.resolveSlot(slotIdx)
		s = &c.slots[slotIdx]
	}

	if s.wrData != nil {
		s.wrData[s.wrOfs+uint32(addr16&0xFF)] = data
		return nil
	}

	if s.wrTag == tagUndecodedWrite {
		return curated.Errorf(bus.AddressError, addr16)
	}

	c.dispatchCPUWrite(slotIdx, s, addr16, data)
	return nil
}

// PhysicalAddress resolves addr16 (ensuring the slot is resolved) and
// reconstructs the absolute physical address and region policy it
// currently maps to, for debugger presentation. write selects whether
// the read or the write side of the slot is consulted -- the two
// sides can map to different physical addresses, notably for the C64
// write-through-to-RAM ROM windows.
func (c *Core) PhysicalAddress(addr16 uint16, write bool) (uint32, memorymap.Policy) {
	slotIdx := int(addr16 >> 8)
	s := &c.slots[slotIdx]
	if s.rdTag == tagResolver {
		c.resolveSlot(slotIdx)
		s = &c.slots[slotIdx]
	}

	hint := c.slotHint[slotIdx]
	if hint < 0 || hint >= len(c.regions) {
		return uint32(addr16), memorymap.PolicyNormal
	}
	r := c.regions[hint]

	ofs := s.rdOfs
	if write {
		ofs = s.wrOfs
	}

	return uint32(r.Begin) + ofs + uint32(addr16&0xFF), r.Policy
}
