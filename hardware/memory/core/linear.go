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
	"github.com/RetroCogs/xemu65/hardware/memory/memorymap"
)

// resolveLinear is the Linear Decoder (§4.2): given a 256-byte
// aligned physical page and a hint into the region table, it finds
// the covering region and materialises s accordingly, honouring the
// region's policy. It returns the index of the region found, to be
// used as the hint on the next call.
func (c *Core) resolveLinear(s *slot, page memorymap.PhysAddr, hint int) (int, error) {
	i := c.regions.Find(page, hint)
	r := &c.regions[i]

	switch r.Policy {
	case memorymap.PolicyNormal:
		c.resolveDirect(s, r, page)

	case memorymap.PolicyRom:
		c.resolveDirect(s, r, page)
		if c.romProtect {
			s.wrData, s.wrOfs, s.wrTag = c.blackHole, 0, tagNone
		}

	case memorymap.PolicyHypervisor:
		if c.inHypervisor {
			c.resolveDirect(s, r, page)
		} else {
			s.rdData, s.rdOfs, s.rdTag = c.whiteHoleFF, 0, tagNone
			s.wrData, s.wrOfs, s.wrTag = c.blackHole, 0, tagNone
		}

	default:
		// IoRegion can never be constructed (memorymap.New panics on
		// it) and no other policy value exists; reaching here is a
		// structural error the caller treats defensively as
		// undecoded.
		s.rdData, s.rdTag = nil, tagUndecodedRead
		s.wrData, s.wrTag = nil, tagUndecodedWrite
		return i, curated.Errorf("core: region at %#08x has an unhandled policy %v", r.Begin, r.Policy)
	}

	return i, nil
}

// resolveDirect materialises s straight from the region's own backing
// buffers and tags, with no policy gating. Used by PolicyNormal and by
// PolicyHypervisor while in hypervisor mode.
//
// rdOfs/wrOfs are always set to the region-relative offset of the
// slot's page (physpage - region.begin), whether or not a backing
// buffer is present: tag-dispatched callbacks such as the colour-RAM
// writer need it to locate the byte within their own buffers.
func (c *Core) resolveDirect(s *slot, r *memorymap.Region, page memorymap.PhysAddr) {
	relOfs := uint32(page - r.Begin)

	if r.RdData != nil {
		s.rdOfs = regionOffset(r.RdData, page, r.Begin)
		s.rdData, s.rdTag = r.RdData, tagNone
	} else {
		s.rdOfs = relOfs
		s.rdData, s.rdTag = nil, r.RdTag
	}

	if r.WrData != nil {
		s.wrOfs = regionOffset(r.WrData, page, r.Begin)
		s.wrData, s.wrTag = r.WrData, tagNone
	} else {
		s.wrOfs = relOfs
		s.wrData, s.wrTag = nil, r.WrTag
	}
}
