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

// Package dbgmem sits between the debugger and the memory core. In the
// context of the debugger it is more useful to address memory via this
// package rather than using the core package directly.
//
// The key type provided by the package is the AddressInfo type. This type
// provides every detail about a memory address that you could want: its
// current physical mapping and the region policy governing it.
//
// The other key type is DbgMem. Initialise it with a *core.Core; it should
// not be left pointing to nil -- no checks are made in the dbgmem package.
//
// GetAddressInfo() is the basic way to build an AddressInfo. Specify whether
// the address is a read or write address and the function does all the work.
//
// The Peek() and Poke() functions complement the Peek() and Poke() functions
// on the core. Peek() never triggers a callback side effect; Poke() always
// goes through the normal dispatch path. Both return the sentinel errors
// PeekError and PokeError if a bus.AddressError is encountered.
package dbgmem
