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

package arm

import "fmt"

// armSoftwareInterrupt implements SWI: an always-taken exception entry
// into Supervisor mode. The comment field in bits23:0 is a hint only the
// SWI handler running at the vector inspects; the core never looks at it.
func armSoftwareInterrupt(arm *ARM, instr uint32) bool {
	arm.takeSWI()
	return true
}

// armUndefined handles any encoding this decoder has no defined meaning
// for: the undefined-instruction space proper, and the coprocessor space,
// which has no coprocessor to address on this architecture. Per this
// core's infallibility contract, this is a logged no-op rather than a
// fault; a host wanting the architectural undefined-instruction trap can
// extend this to call arm.takeException(Undefined, ...).
func armUndefined(arm *ARM, instr uint32) bool {
	arm.cfg.Logger.WithField("instr", fmt.Sprintf("%08x", instr)).Debug("unknown ARM opcode")
	return false
}
