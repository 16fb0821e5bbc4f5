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

package core_test

import (
	"testing"

	"github.com/RetroCogs/xemu65/hardware/memory/bus"
	"github.com/RetroCogs/xemu65/hardware/memory/core"
)

func TestPlainRAMReadWrite(t *testing.T) {
	c := core.New(core.LayoutLazy)

	c.Write(0x1000, 0x42)
	if got := c.Read(0x1000); got != 0x42 {
		t.Fatalf("got %#02x, want 0x42", got)
	}
}

func TestColourRAMDualWrite(t *testing.T) {
	c := core.New(core.LayoutLazy)

	// slot 0x20 is inside the low half, at a page4k that is not
	// currently MAP'd, so it resolves to plain main RAM and does not
	// exercise the colour-RAM path; the colour-RAM head window only
	// appears via a MAP'd window pointing at physical 0x1F800, or via
	// the DMA/debugger channels which address physical space directly.
	c.ChannelWrite(bus.CPULinear, 0x1F800, 0x07)

	if got := c.ChannelRead(bus.CPULinear, 0x1F800); got != 0x07 {
		t.Fatalf("colour RAM head byte: got %#02x, want 0x07", got)
	}
}

func TestMapLowHalfRedirectsReads(t *testing.T) {
	c := core.New(core.LayoutLazy)

	// park a known byte at physical 0x0200000 (inside the 0x60000..
	// 0x3FFFFFF undecoded span would not do -- use the plain-RAM span
	// 0x40000-0x5FFFF instead).
	c.ChannelWrite(bus.CPULinear, 0x40000, 0x99)

	// MAP window 0 of the low half (mapOffsetLo's bits 16-19 come from
	// X's low nibble, mask bit 0 comes from X's high nibble): X=0x14
	// sets mapOffsetLo to 0x40000 and enables window 0.
	c.OnMapOpcode(0x00, 0x14, 0x00, 0x00)

	if !c.InhibitInterrupts {
		t.Fatalf("expected InhibitInterrupts to be set after MAP")
	}

	if got := c.Read(0x0000); got != 0x99 {
		t.Fatalf("mapped read: got %#02x, want 0x99", got)
	}

	c.OnEOMOpcode()
	if c.InhibitInterrupts {
		t.Fatalf("expected InhibitInterrupts to be cleared after EOM")
	}
}

func TestPageCrossingQBYTE(t *testing.T) {
	c := core.New(core.LayoutLazy)

	c.Write(0x10FE, 0x11)
	c.Write(0x10FF, 0x22)
	c.Write(0x1100, 0x33)
	c.Write(0x1101, 0x44)

	got := c.ReadQBYTE(0x10FE)
	want := uint32(0x11) | uint32(0x22)<<8 | uint32(0x33)<<16 | uint32(0x44)<<24
	if got != want {
		t.Fatalf("got %#08x, want %#08x", got, want)
	}
}

func TestWriteQBYTERoundTrip(t *testing.T) {
	c := core.New(core.LayoutLazy)

	c.WriteQBYTE(0x2000, 0xAABBCCDD)
	if got := c.ReadQBYTE(0x2000); got != 0xAABBCCDD {
		t.Fatalf("got %#08x, want 0xAABBCCDD", got)
	}
}

// undecodedPhysAddr lands inside the 0x60000-0x3FFFFFF undecoded span,
// outside mainRAM's 384 KiB, reachable only via a channel since CPU
// slots can never address past 0xFF00 without a MAP override.
const undecodedPhysAddr = 0x1000000

func TestUndecodedReadReturnsFF(t *testing.T) {
	c := core.New(core.LayoutLazy)
	c.SetUndecodedPolicy(core.PolicySilent)

	got := c.ChannelRead(bus.CPULinear, undecodedPhysAddr)
	if got != 0xFF {
		t.Fatalf("got %#02x, want 0xFF", got)
	}
	if c.FatalErr != nil {
		t.Fatalf("unexpected FatalErr under PolicySilent: %v", c.FatalErr)
	}
}

func TestUndecodedExitPolicySetsFatalErr(t *testing.T) {
	c := core.New(core.LayoutLazy)
	c.SetUndecodedPolicy(core.PolicyExit)

	c.ChannelRead(bus.CPULinear, undecodedPhysAddr)
	if c.FatalErr == nil {
		t.Fatalf("expected FatalErr to be set under PolicyExit")
	}
}

func TestUndecodedIgnoreOnceDowngradesToIgnoreAll(t *testing.T) {
	c := core.New(core.LayoutLazy)
	c.SetUndecodedPolicy(core.PolicyIgnoreOnce)

	var seen []core.UndecodedPolicy
	c.OnUndecodedAccess = func(info core.UndecodedAccess) core.UndecodedPolicy {
		seen = append(seen, info.Policy)
		return info.Policy
	}

	c.ChannelRead(bus.CPULinear, undecodedPhysAddr)
	c.ChannelRead(bus.CPULinear, undecodedPhysAddr+0x100)

	if len(seen) != 2 {
		t.Fatalf("expected two callback invocations, got %d", len(seen))
	}
	// the downgrade to PolicyIgnoreAll happens before the diagnostic is
	// built, so even the very first callback observes the new policy.
	if seen[0] != core.PolicyIgnoreAll || seen[1] != core.PolicyIgnoreAll {
		t.Fatalf("expected both accesses to report the downgraded PolicyIgnoreAll, got %v", seen)
	}
}

func TestSpeedChangeCallback(t *testing.T) {
	c := core.New(core.LayoutLazy)

	var got []bool
	c.OnSpeedChange = func(fast bool) { got = append(got, fast) }

	c.Write(0x0000, 0x41) // data&0xFE == 64, bit0 set -> fast
	c.Write(0x0000, 0x40) // bit0 clear -> slow, a real transition
	c.Write(0x0000, 0x40) // redundant, should not fire again

	want := []bool{true, false}
	if len(got) != len(want) {
		t.Fatalf("expected %d speed-change callbacks, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("callback %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRMWCallbackPathDoesNotPanic(t *testing.T) {
	c := core.New(core.LayoutLazy)

	// zero page is permanently callback-backed (tagZeroPageWrite);
	// this exercises WriteRMW's callback branch and its
	// cpuRMWOldData bookkeeping.
	c.WriteRMW(0x0002, 0x00, 0x55)
	if got := c.Read(0x0002); got != 0x55 {
		t.Fatalf("got %#02x, want 0x55", got)
	}
}

func TestCPUIOPortReadsBackThroughZeroPage(t *testing.T) {
	c := core.New(core.LayoutLazy)

	// slot 0 is a direct pointer into mainRAM with no read-side
	// interception, so the DDR/data register writes must be mirrored
	// into mainRAM for a plain Read to observe them.
	c.WriteRMW(0x0000, 0x00, 0x2F)
	c.WriteRMW(0x0001, 0x00, 0x07)

	if got := c.Read(0x0000); got != 0x2F {
		t.Fatalf("DDR register: got %#02x, want 0x2F", got)
	}
	if got := c.Read(0x0001); got != 0x07 {
		t.Fatalf("data register: got %#02x, want 0x07", got)
	}
}
