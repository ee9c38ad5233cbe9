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

// thumbConditionalBranch implements format 16. The NV (1111) condition
// field is reserved here for SWI, already routed away by the decoder, so
// the reserved-condition path below is unreachable in practice, but kept
// for symmetry with the ARM decoder's handling of the same case.
func thumbConditionalBranch(arm *ARM, opcode uint16) bool {
	cond := uint8((opcode >> 8) & 0xf)
	ok, valid := arm.regs.cpsr.condition(cond)
	if !valid {
		arm.cfg.Logger.Warn("thumb conditional branch: reserved condition field")
		return false
	}
	if !ok {
		return false
	}

	offset := int8(opcode & 0xff)
	target := uint32(int32(arm.readOperandThumb(rPC)) + int32(offset)*2)
	arm.regs.setPC(target)
	return true
}

// thumbSoftwareInterrupt implements format 17.
func thumbSoftwareInterrupt(arm *ARM, opcode uint16) bool {
	arm.takeSWI()
	return true
}

// thumbUnconditionalBranch implements format 18: an 11-bit signed
// halfword offset (scaled by 2), always taken.
func thumbUnconditionalBranch(arm *ARM, opcode uint16) bool {
	off11 := opcode & 0x7ff

	var signed int32
	if off11&0x400 != 0 {
		signed = int32(uint32(off11) | 0xfffff800)
	} else {
		signed = int32(off11)
	}

	target := uint32(int32(arm.readOperandThumb(rPC)) + signed*2)
	arm.regs.setPC(target)
	return true
}

// thumbLongBranchLink implements format 19: BL split across two
// halfwords. The high half stashes a partial target into LR; the low half
// combines it with its own 11-bit field and performs the call, leaving
// the return address (with bit0 set, marking Thumb state) in LR.
func thumbLongBranchLink(arm *ARM, opcode uint16) bool {
	h := opcode&(1<<11) != 0
	off11 := uint32(opcode & 0x7ff)

	if !h {
		var signed int32
		if off11&0x400 != 0 {
			signed = int32(off11 | 0xfffff800)
		} else {
			signed = int32(off11)
		}
		lr := uint32(int32(arm.currentExecAddr+4) + (signed << 12))
		arm.regs.set(rLR, lr)
		return false
	}

	next := arm.currentExecAddr + 2
	target := arm.regs.get(rLR) + (off11 << 1)
	arm.regs.set(rLR, next|1)
	arm.regs.setPC(target)
	return true
}

// thumbUndefinedThumb handles Thumb encodings this decoder has no defined
// meaning for: reserved push/pop and conditional-branch sub-encodings,
// and the ARMv5T BLX-suffix slot this ARMv4T core doesn't implement.
func thumbUndefinedThumb(arm *ARM, opcode uint16) bool {
	arm.cfg.Logger.WithField("opcode", fmt.Sprintf("%04x", opcode)).Debug("unknown Thumb opcode")
	return false
}
