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

import "github.com/RetroCogs/xemu65/logger"

// InvalidateMapper marks every CPU slot in [start, last] unresolved:
// both pointers go to "none" and both tags go to the resolver, so the
// next touch re-runs the Logical Decoder. This is the core of the
// coherency protocol (§4.5): invalidation is O(range) and cheap, the
// cost of re-decoding is paid lazily on the next access.
func (c *Core) InvalidateMapper(start, last int) {
	if start < 0 {
		start = 0
	}
	if last > 255 {
		last = 255
	}
	logger.Logf(logger.Allow, "MEM", "invalidating slots %#02x-%#02x", start, last)
	for i := start; i <= last; i++ {
		s := &c.slots[i]
		s.rdData, s.wrData = nil, nil
		s.rdOfs, s.wrOfs = 0, 0
		s.rdTag, s.wrTag = tagResolver, tagResolver
	}

	// the $D000-$DFFF aperture lost whatever resolution it had; if that
	// range is part of what was just invalidated, legacy I/O is no
	// longer known to be mapped until the Logical Decoder says so again.
	if start <= 0xDF && last >= 0xD0 {
		c.legacyIOIsMapped = false
	}
}

// InvalidateMapperAll invalidates every CPU slot.
func (c *Core) InvalidateMapperAll() {
	c.InvalidateMapper(0, 255)
}

// InvalidateChannels resets every bus-master channel's one-page
// cache, per memory_invalidate_channels in the original. Channels are
// exempt from CPU-side invalidation and are only ever reset here.
func (c *Core) InvalidateChannels() {
	for i := range c.channels {
		c.channels[i] = channelState{hint: 0}
	}
}
