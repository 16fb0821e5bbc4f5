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

package dbgmem

import (
	"fmt"
	"strings"

	"github.com/RetroCogs/xemu65/hardware/memory/memorymap"
)

// AddressInfo is returned by dbgmem functions. It contains everything
// the debugger needs to present a logical address: the physical page
// it currently resolves to and the region policy governing it.
type AddressInfo struct {
	Address         uint16
	PhysicalAddress uint32
	Policy          memorymap.Policy

	// addresses can resolve differently depending on whether the
	// access is a read or a write (most visibly for the C64
	// write-through-to-RAM ROM windows).
	Read bool

	// the data at the address. if Peeked is false then Data may not be
	// valid.
	Peeked bool
	Data   uint8
}

func (ai AddressInfo) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%#04x", ai.Address))

	if uint32(ai.Address) != ai.PhysicalAddress {
		s.WriteString(fmt.Sprintf(" [%#08x]", ai.PhysicalAddress))
	}

	s.WriteString(fmt.Sprintf(" (%s)", ai.Policy))

	if ai.Peeked {
		s.WriteString(fmt.Sprintf(" -> %#02x", ai.Data))
	}

	return s.String()
}
