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

// Package legacyio is the trampoline the I/O subsystem registers into
// to serve the 4 KiB C64-style aperture at logical 0xD000. The core
// only ever wires a Table's entries into CPU slots 0xD0..0xDF; it
// never calls into the I/O subsystem directly, and legacyio never
// imports the core.
package legacyio

// ReadFunc services a read from one 256-byte page of the legacy I/O
// aperture. addr16 is the full CPU address so that a single handler
// can serve an entire page if it wants to.
type ReadFunc func(addr16 uint16) uint8

// WriteFunc services a write to one 256-byte page of the legacy I/O
// aperture.
type WriteFunc func(addr16 uint16, data uint8)

// IOModes is the number of VIC-III I/O modes the legacy trampoline is
// indexed by (the `vic_iomode` dimension of the original's 2D table).
const IOModes = 4

// Pages is the number of 256-byte pages in the 4 KiB legacy I/O
// aperture (addresses 0xD000..0xDFFF, indexed by slot&0x0F).
const Pages = 16

// Table is the pair of 2D tables described in the trampoline's
// design: one cell per (I/O mode, page). A nil cell has no registered
// handler and reads as 0xFF / discards writes.
type Table struct {
	Read  [IOModes][Pages]ReadFunc
	Write [IOModes][Pages]WriteFunc
}

// NewTable returns an empty trampoline table. The I/O subsystem fills
// it in with RegisterRead / RegisterWrite before handing it to
// Core.RegisterLegacyIO.
func NewTable() *Table {
	return &Table{}
}

// RegisterRead installs fn as the reader for the given I/O mode and
// page (page is slot&0x0F, i.e. 0..15).
func (t *Table) RegisterRead(iomode, page int, fn ReadFunc) {
	t.Read[iomode][page] = fn
}

// RegisterWrite installs fn as the writer for the given I/O mode and
// page.
func (t *Table) RegisterWrite(iomode, page int, fn WriteFunc) {
	t.Write[iomode][page] = fn
}
