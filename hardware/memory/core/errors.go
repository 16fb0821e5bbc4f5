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

import "github.com/RetroCogs/xemu65/curated"

// UndecodedPolicy governs how the core reacts to an access landing in
// an undecoded region (§7, class 1 of the error handling design).
type UndecodedPolicy int

const (
	// PolicyExit reports ErrFatalUndecodedAccess to the caller.
	PolicyExit UndecodedPolicy = iota

	// PolicyIgnoreOnce logs the access once and then behaves like
	// PolicyIgnoreAll for the rest of the session.
	PolicyIgnoreOnce

	// PolicyIgnoreAll returns 0xFF / discards the write, logging every
	// access it ignores (unlike PolicySilent).
	PolicyIgnoreAll

	// PolicySilent never logs and never reports an error.
	PolicySilent
)

// UndecodedAccess is the diagnostic handed to Core.OnUndecodedAccess.
type UndecodedAccess struct {
	Address        uint32
	Write          bool
	ProgramCounter uint16
	Policy         UndecodedPolicy
}

// ErrFatalUndecodedAccessPattern is the curated.Errorf pattern used
// when an undecoded access is reported under PolicyExit. The original
// terminates the process directly (XEMUEXIT); a library must not, so
// the Go port turns that host decision into a value the embedder can
// act on.
const ErrFatalUndecodedAccessPattern = "core: fatal undecoded access at %#08x"

// ErrFatalUndecodedAccess wraps ErrFatalUndecodedAccessPattern for the
// given address.
func ErrFatalUndecodedAccess(addr uint32) error {
	return curated.Errorf(ErrFatalUndecodedAccessPattern, addr)
}

// ErrUnhandledPolicy is the curated.Errorf pattern of the error
// resolveLinear returns defensively if it reaches a region whose
// policy is not one of the enumerated values. The shipped region
// table never produces this.
const ErrUnhandledPolicy = "core: region at %#08x has an unhandled policy %v"
