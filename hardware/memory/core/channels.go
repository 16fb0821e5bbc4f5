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
	"github.com/RetroCogs/xemu65/hardware/memory/bus"
	"github.com/RetroCogs/xemu65/hardware/memory/memorymap"
)

// channelSlot returns the dispatch table entry a bus-master channel
// uses. Channels are stored past the 256 CPU slots, in the same array,
// so the Linear Decoder (which only ever touches a *slot) needs no
// channel-specific code path.
func (c *Core) channelSlot(channel bus.Channel) *slot {
	return &c.slots[256+int(channel)]
}

// resolveChannel runs the Linear Decoder for channel against page,
// reusing the last resolution if the channel's one-page cache still
// covers it. Bus masters never go through the Logical Decoder: they
// address the 28-bit physical space directly and are unaffected by
// MAP, VIC-III ROM banking or the C64 $D000 layout, per §4.6.
func (c *Core) resolveChannel(channel bus.Channel, page memorymap.PhysAddr) *slot {
	st := &c.channels[channel]
	s := c.channelSlot(channel)

	if st.valid && st.lastPage == page {
		return s
	}

	hint, _ := c.resolveLinear(s, page, st.hint)
	st.hint = hint
	st.lastPage = page
	st.valid = true

	return s
}

// ChannelRead implements bus.ChannelBus.
func (c *Core) ChannelRead(channel bus.Channel, linaddr28 uint32) uint8 {
	addr := memorymap.PhysAddr(linaddr28) & memorymap.PhysMask
	page := pageOf(uint32(addr))
	s := c.resolveChannel(channel, page)
	ofs := uint32(addr & 0xFF)

	if s.rdData != nil {
		return s.rdData[s.rdOfs+ofs]
	}

	switch s.rdTag {
	case tagUndecodedRead:
		// page is already the absolute physical page (channels address
		// the 28-bit space directly, unlike CPU slots which only retain
		// a region hint); no need to add rdOfs back in.
		return c.handleUndecodedRead(uint32(page) + ofs)
	default:
		return 0xFF
	}
}

// ChannelWrite implements bus.ChannelBus.
func (c *Core) ChannelWrite(channel bus.Channel, linaddr28 uint32, data uint8) {
	addr := memorymap.PhysAddr(linaddr28) & memorymap.PhysMask
	page := pageOf(uint32(addr))
	s := c.resolveChannel(channel, page)
	ofs := uint32(addr & 0xFF)

	if s.wrData != nil {
		s.wrData[s.wrOfs+ofs] = data
		return
	}

	switch s.wrTag {
	case tagZeroPageWrite:
		c.zeroPageWrite(uint16(addr&0xFF), data)

	case tagColourRAMWrite:
		c.colourRAMWrite(s.wrOfs+ofs, data)

	case tagUndecodedWrite:
		c.handleUndecodedWrite(uint32(page)+ofs, data)
	}
}
