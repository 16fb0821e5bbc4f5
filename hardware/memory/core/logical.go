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

// C64-style $D000 layout flags, composited into c64Memlayout by
// updateCPUIOPort from the 8-entry table §4.5 specifies.
const (
	layoutRAM     uint8 = 0x10
	layoutCHARGEN uint8 = 0x04
	layoutKERNAL  uint8 = 0x02
	layoutBASIC   uint8 = 0x01
	layoutIO      uint8 = 0x08
)

var c64LayoutTable = [8]uint8{
	0: layoutRAM,
	1: layoutCHARGEN,
	2: layoutCHARGEN | layoutKERNAL,
	3: layoutCHARGEN | layoutKERNAL | layoutBASIC,
	4: layoutRAM,
	5: layoutIO,
	6: layoutIO | layoutKERNAL,
	7: layoutIO | layoutKERNAL | layoutBASIC,
}

// vic3ROMWindow describes one of the four C65 VIC-III ROM banking
// windows (§4.3 rule 1).
type vic3ROMWindow struct {
	bit        uint8
	base       uint32
	slotMask   uint32
	page4kFrom int
	page4kTo   int
}

var vic3ROMWindows = []vic3ROMWindow{
	{bit: 0x08, base: 0x38000, slotMask: 0x1F, page4kFrom: 0x8, page4kTo: 0x9},
	{bit: 0x10, base: 0x3A000, slotMask: 0x1F, page4kFrom: 0xA, page4kTo: 0xB},
	{bit: 0x20, base: 0x2C000, slotMask: 0x0F, page4kFrom: 0xC, page4kTo: 0xC},
	{bit: 0x80, base: 0x3E000, slotMask: 0x1F, page4kFrom: 0xE, page4kTo: 0xF},
}

func vic3WindowFor(page4k int) *vic3ROMWindow {
	for i := range vic3ROMWindows {
		w := &vic3ROMWindows[i]
		if page4k >= w.page4kFrom && page4k <= w.page4kTo {
			return w
		}
	}
	return nil
}

// mapWindowIndex returns the 0..7 MAP-mask bit index covering the
// 8 KiB window that slotIdx's page4k belongs to.
func mapWindowIndex(page4k int) int {
	if page4k < 8 {
		return page4k >> 1
	}
	return 4 + ((page4k - 8) >> 1)
}

// resolveSlot is the Logical Decoder (§4.3): determines which
// physical page CPU slot slotIdx currently represents and
// materialises its dispatch entry via the Linear Decoder. When layout
// is LayoutFull, it materialises every slot in the enclosing 8 KiB
// MAP window; LayoutLazy materialises only slotIdx.
func (c *Core) resolveSlot(slotIdx int) {
	if c.layout == LayoutFull {
		base := slotIdx &^ 0x1F
		for s := base; s < base+32; s++ {
			c.resolveSlotOne(s)
		}
		return
	}
	c.resolveSlotOne(slotIdx)
}

func (c *Core) resolveSlotOne(slotIdx int) {
	page4k := slotIdx >> 4

	if page4k < 8 {
		c.resolveLowHalf(slotIdx, page4k)
		return
	}
	c.resolveHighHalf(slotIdx, page4k)
}

func (c *Core) resolveLowHalf(slotIdx, page4k int) {
	windowIdx := page4k >> 1
	s := &c.slots[slotIdx]

	if c.mapMask&(1<<uint(windowIdx)) != 0 {
		physpage := pageOf(c.mapMBLo + ((c.mapOffsetLo + uint32(slotIdx)<<8) & 0xFFF00))
		c.slotHint[slotIdx], _ = c.resolveLinear(s, physpage, c.slotHint[slotIdx])
		return
	}

	physpage := pageOf(uint32(slotIdx) << 8)
	c.slotHint[slotIdx], _ = c.resolveLinear(s, physpage, c.slotHint[slotIdx])
}

func (c *Core) resolveHighHalf(slotIdx, page4k int) {
	s := &c.slots[slotIdx]
	windowIdx := mapWindowIndex(page4k)

	if w := vic3WindowFor(page4k); w != nil && c.vic3ROMMask&w.bit != 0 && !c.inHypervisor {
		offset := (uint32(slotIdx) & w.slotMask) << 8
		physpage := pageOf(w.base + offset)
		c.slotHint[slotIdx], _ = c.resolveLinear(s, physpage, c.slotHint[slotIdx])
		return
	}

	if c.mapMask&(1<<uint(windowIdx)) != 0 {
		physpage := pageOf(c.mapMBHi + ((c.mapOffsetHi + uint32(slotIdx)<<8) & 0xFFF00))
		c.slotHint[slotIdx], _ = c.resolveLinear(s, physpage, c.slotHint[slotIdx])
		return
	}

	if page4k == 0xD && c.c64Memlayout&layoutIO != 0 {
		c.legacyIOIsMapped = true
		s.rdData, s.wrData = nil, nil
		s.rdOfs, s.wrOfs = 0, 0
		s.rdTag, s.wrTag = tagLegacyIORead, tagLegacyIOWrite
		return
	}

	if (page4k == 0xA || page4k == 0xB) && c.c64Memlayout&layoutBASIC != 0 {
		offset := (uint32(slotIdx) & 0x1F) << 8
		c.resolveWriteThroughROM(slotIdx, s, pageOf(0x2A000+offset))
		return
	}

	if page4k == 0xD && c.c64Memlayout&layoutCHARGEN != 0 {
		offset := (uint32(slotIdx) & 0x0F) << 8
		c.resolveWriteThroughROM(slotIdx, s, pageOf(0x2D000+offset))
		return
	}

	if (page4k == 0xE || page4k == 0xF) && c.c64Memlayout&layoutKERNAL != 0 {
		offset := (uint32(slotIdx) & 0x1F) << 8
		c.resolveWriteThroughROM(slotIdx, s, pageOf(0x2E000+offset))
		return
	}

	physpage := pageOf(uint32(slotIdx) << 8)
	c.slotHint[slotIdx], _ = c.resolveLinear(s, physpage, c.slotHint[slotIdx])
}

// resolveWriteThroughROM materialises s for a C64-style ROM mapping:
// reads come from the ROM shadow at romPage, writes are redirected
// into the plain RAM view at slotIdx<<8 regardless of rom_protect,
// matching the "write-through-to-RAM" contract of C64 ROM windows.
func (c *Core) resolveWriteThroughROM(slotIdx int, s *slot, romPage memorymap.PhysAddr) {
	c.slotHint[slotIdx], _ = c.resolveLinear(s, romPage, c.slotHint[slotIdx])

	ramOfs := uint32(slotIdx) << 8
	s.wrData = c.mainRAM[ramOfs : ramOfs+0x100]
	s.wrOfs = 0
	s.wrTag = tagNone
}

func pageOf(addr uint32) memorymap.PhysAddr { return memorymap.PhysAddr(addr &^ 0xFF) }

// updateCPUIOPort recomputes c64Memlayout from the CPU I/O port data
// and data-direction registers, per §4.5. When the layout changed and
// updateMapper is true, it invalidates the C64-layout-controlled
// windows that are not currently overridden by a MAP window.
func (c *Core) updateCPUIOPort(updateMapper bool) {
	idx := (c.cpuIOPort[1] | ^c.cpuIOPort[0]) & 0x07
	newLayout := c64LayoutTable[idx]
	changed := newLayout != c.c64Memlayout
	c.c64Memlayout = newLayout

	if !changed || !updateMapper {
		return
	}

	logger.Logf(logger.Allow, "MEM", "c64 memory layout changed to %#02x", newLayout)

	if c.mapMask&(1<<5) == 0 {
		c.InvalidateMapper(0xA0, 0xBF)
	}
	if c.mapMask&(1<<6) == 0 {
		c.InvalidateMapper(0xD0, 0xDF)
	}
	if c.mapMask&(1<<7) == 0 {
		c.InvalidateMapper(0xE0, 0xFF)
	}
}
