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

import "github.com/RetroCogs/xemu65/hardware/memory/memorymap"

// buildRegionTable reproduces the region table exactly, including the
// explicit undecoded tail that fills the gap the original's
// check_decoder_table left inconsistent, and a concrete subdivision
// of the high range for hypervisor RAM (the specification's design
// notes leave that subdivision to the implementation).
func (c *Core) buildRegionTable() memorymap.RegionTable {
	regions := []memorymap.Region{
		{
			Begin:  0,
			End:    physZeroPageEnd,
			RdData: c.mainRAM[0:0x100],
			WrTag:  tagZeroPageWrite,
			Policy: memorymap.PolicyNormal,
		},
		{
			Begin:  physZeroPageEnd + 1,
			End:    physColourRAMHeadBeg - 1,
			RdData: c.mainRAM[0x100:physColourRAMHeadBeg],
			WrData: c.mainRAM[0x100:physColourRAMHeadBeg],
			Policy: memorymap.PolicyNormal,
		},
		{
			Begin:  physColourRAMHeadBeg,
			End:    physColourRAMHeadEnd,
			RdData: c.mainRAM[physColourRAMHeadBeg : physColourRAMHeadEnd+1],
			WrTag:  tagColourRAMWrite,
			Policy: memorymap.PolicyNormal,
		},
		{
			Begin:  physRomShadowBeg,
			End:    physRomShadowEnd,
			RdData: c.mainRAM[physRomShadowBeg : physRomShadowEnd+1],
			WrData: c.mainRAM[physRomShadowBeg : physRomShadowEnd+1],
			Policy: memorymap.PolicyRom,
		},
		{
			Begin:  physRomShadowEnd + 1,
			End:    physMainRAMTop,
			RdData: c.mainRAM[physRomShadowEnd+1 : physMainRAMTop+1],
			WrData: c.mainRAM[physRomShadowEnd+1 : physMainRAMTop+1],
			Policy: memorymap.PolicyNormal,
		},
		{
			Begin:  physMainRAMTop + 1,
			End:    physUndecodedLoEnd,
			RdTag:  tagUndecodedRead,
			WrTag:  tagUndecodedWrite,
			Policy: memorymap.PolicyNormal,
		},
		{
			Begin:  physIgnoredBeg,
			End:    physIgnoredEnd,
			RdData: c.whiteHoleFF,
			WrData: c.blackHole,
			Policy: memorymap.PolicyNormal,
		},
		{
			Begin:  physSlowRAMBeg,
			End:    physSlowRAMEnd,
			RdData: c.slowRAM,
			WrData: c.slowRAM,
			Policy: memorymap.PolicyNormal,
		},
		{
			Begin:  physSlowRAMEnd + 1,
			End:    physHypervisorBeg - 1,
			RdTag:  tagUndecodedRead,
			WrTag:  tagUndecodedWrite,
			Policy: memorymap.PolicyNormal,
		},
		{
			Begin:  physHypervisorBeg,
			End:    physHypervisorEnd,
			RdData: c.hypervisorRAM,
			WrData: c.hypervisorRAM,
			Policy: memorymap.PolicyHypervisor,
		},
		{
			Begin:  physHypervisorEnd + 1,
			End:    memorymap.PhysMask,
			RdTag:  tagUndecodedRead,
			WrTag:  tagUndecodedWrite,
			Policy: memorymap.PolicyNormal,
		},
	}

	table, err := memorymap.New(regions)
	if err != nil {
		// the table above is fixed at compile time; a failure here is
		// a programmer error, not a runtime condition.
		panic(err)
	}
	return table
}

// DumpRegions renders a per-region summary of the physical address
// space, useful to the debugger and to tests. It has no behavioural
// effect.
func (c *Core) DumpRegions() string {
	return c.regions.String()
}
