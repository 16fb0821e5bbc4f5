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
	"errors"
	"fmt"
	"strconv"

	"github.com/RetroCogs/xemu65/curated"
	"github.com/RetroCogs/xemu65/hardware/memory/bus"
	"github.com/RetroCogs/xemu65/hardware/memory/core"
)

// DbgMem is a front-end to the machine's memory core. It allows
// addressing numerically or via a string (parsed as a number), and
// uses AddressInfo for easier presentation.
type DbgMem struct {
	Core *core.Core
}

// GetAddressInfo resolves address (uint16 or its string form) against
// the current mapping state. It never has a side effect -- resolving
// a slot is the Logical Decoder running, not an access.
func (dbgmem DbgMem) GetAddressInfo(address any, read bool) *AddressInfo {
	ai := &AddressInfo{Read: read}

	switch address := address.(type) {
	case uint16:
		ai.Address = address
	case string:
		addr, err := strconv.ParseUint(address, 0, 16)
		if err != nil {
			return nil
		}
		ai.Address = uint16(addr)
	default:
		panic(fmt.Sprintf("unsupported address type (%T)", address))
	}

	ai.PhysicalAddress, ai.Policy = dbgmem.Core.PhysicalAddress(ai.Address, !read)

	return ai
}

// sentinel errors returned by Peek() and Poke()
var PeekError = errors.New("cannot peek address")
var PokeError = errors.New("cannot poke address")

// Peek returns the contents of the memory address, without triggering
// any side effect. The supplied address can be numeric or its string
// form.
func (dbgmem DbgMem) Peek(address any) (*AddressInfo, error) {
	ai := dbgmem.GetAddressInfo(address, true)
	if ai == nil {
		return nil, fmt.Errorf("%w: %v", PeekError, address)
	}

	data, err := dbgmem.Core.Peek(ai.Address)
	if err != nil {
		if curated.Is(err, bus.AddressError) {
			return nil, fmt.Errorf("%w: %v", PeekError, address)
		}
		return nil, err
	}

	ai.Data = data
	ai.Peeked = true

	return ai, nil
}

// Poke writes a value at the specified address, through the normal
// dispatch path (so any callback side effect fires, as is appropriate
// for a debugger forcing live state). The supplied address can be
// numeric or its string form.
func (dbgmem DbgMem) Poke(address any, data uint8) (*AddressInfo, error) {
	// poke addresses are treated as read addresses: we are changing
	// the value later read by the CPU, not observing a write.
	ai := dbgmem.GetAddressInfo(address, true)
	if ai == nil {
		return nil, fmt.Errorf("%w: %v", PokeError, address)
	}

	err := dbgmem.Core.Poke(ai.Address, data)
	if err != nil {
		if curated.Is(err, bus.AddressError) {
			return nil, fmt.Errorf("%w: %v", PokeError, address)
		}
		return nil, err
	}

	ai.Data = data
	ai.Peeked = true

	return ai, nil
}
