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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package memorymap_test

import (
	"testing"

	"github.com/RetroCogs/xemu65/hardware/memory/memorymap"
)

func flatRegion(begin, end memorymap.PhysAddr) memorymap.Region {
	return memorymap.Region{Begin: begin, End: end, Policy: memorymap.PolicyNormal}
}

func TestNewRejectsGap(t *testing.T) {
	_, err := memorymap.New([]memorymap.Region{
		flatRegion(0, 0xFF),
		flatRegion(0x200, memorymap.PhysMask),
	})
	if err == nil {
		t.Fatalf("expected an error for a table with a gap")
	}
}

func TestNewRejectsMissingTail(t *testing.T) {
	_, err := memorymap.New([]memorymap.Region{
		flatRegion(0, 0xFF),
	})
	if err == nil {
		t.Fatalf("expected an error for a table that doesn't reach the top of the address space")
	}
}

func TestNewAcceptsWellFormedTable(t *testing.T) {
	table, err := memorymap.New([]memorymap.Region{
		flatRegion(0, 0xFF),
		flatRegion(0x100, memorymap.PhysMask),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(table))
	}
}

func TestNewPanicsOnIoRegion(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic when constructing a table with PolicyIoRegion")
		}
	}()

	_, _ = memorymap.New([]memorymap.Region{
		{Begin: 0, End: memorymap.PhysMask, Policy: memorymap.PolicyIoRegion},
	})
}

func TestFindBidirectional(t *testing.T) {
	table, err := memorymap.New([]memorymap.Region{
		flatRegion(0x0000, 0x00FF),
		flatRegion(0x0100, 0x01FF),
		flatRegion(0x0200, 0x02FF),
		flatRegion(0x0300, memorymap.PhysMask),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// starting from a hint in the middle, walking backward
	if i := table.Find(0x0000, 2); i != 0 {
		t.Fatalf("expected region 0, got %d", i)
	}

	// starting from a hint in the middle, walking forward
	if i := table.Find(0x0300, 1); i != 3 {
		t.Fatalf("expected region 3, got %d", i)
	}

	// hint already correct
	if i := table.Find(0x0200, 2); i != 2 {
		t.Fatalf("expected region 2, got %d", i)
	}
}

func TestRegionTableString(t *testing.T) {
	table, err := memorymap.New([]memorymap.Region{
		flatRegion(0, memorymap.PhysMask),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.String() == "" {
		t.Fatalf("expected a non-empty summary")
	}
}
