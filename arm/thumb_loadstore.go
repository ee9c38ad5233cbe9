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

// thumbPCRelativeLoad implements format 6: a word load anchored to the
// current PC, word-aligned per the Thumb PC-read rule.
func thumbPCRelativeLoad(arm *ARM, opcode uint16) bool {
	rd := int((opcode >> 8) & 0x7)
	word8 := uint32(opcode & 0xff)

	addr := arm.readOperandThumb(rPC) + word8*4
	arm.regs.set(rd, arm.readWord(addr, NonSequential))
	return false
}

// thumbLoadStoreRegisterOffset implements format 7: LDR/STR and their
// byte forms, addressed by base register plus offset register.
func thumbLoadStoreRegisterOffset(arm *ARM, opcode uint16) bool {
	l := opcode&(1<<11) != 0
	b := opcode&(1<<10) != 0
	ro := int((opcode >> 6) & 0x7)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	addr := arm.regs.get(rb) + arm.regs.get(ro)
	cycle := NonSequential

	if l {
		if b {
			arm.regs.set(rd, uint32(arm.bus.Read8(addr, cycle)))
		} else {
			arm.regs.set(rd, arm.readWord(addr, cycle))
		}
		return false
	}
	if b {
		arm.bus.Write8(addr, uint8(arm.regs.get(rd)))
	} else {
		arm.writeWord(addr, arm.regs.get(rd))
	}
	return false
}

// thumbLoadStoreSignExtended implements format 8: STRH, LDRH (zero
// extended), LDRSB and LDRSH, addressed by base register plus offset
// register.
func thumbLoadStoreSignExtended(arm *ARM, opcode uint16) bool {
	h := opcode&(1<<11) != 0
	s := opcode&(1<<10) != 0
	ro := int((opcode >> 6) & 0x7)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	addr := arm.regs.get(rb) + arm.regs.get(ro)
	cycle := NonSequential

	switch {
	case !s && !h: // STRH
		arm.writeHalfword(addr, arm.regs.get(rd))
	case !s && h: // LDRH
		arm.regs.set(rd, arm.readHalfwordZeroExtend(addr, cycle))
	case s && !h: // LDRSB
		arm.regs.set(rd, arm.readByteSignExtend(addr, cycle))
	default: // LDRSH
		arm.regs.set(rd, arm.readHalfwordSignExtend(addr, cycle))
	}
	return false
}

// thumbLoadStoreImmediateOffset implements format 9: LDR/STR and their
// byte forms, addressed by base register plus a 5-bit immediate (scaled
// by 4 for word transfers, unscaled for byte transfers).
func thumbLoadStoreImmediateOffset(arm *ARM, opcode uint16) bool {
	b := opcode&(1<<12) != 0
	l := opcode&(1<<11) != 0
	imm5 := uint32((opcode >> 6) & 0x1f)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	offset := imm5 * 4
	if b {
		offset = imm5
	}
	addr := arm.regs.get(rb) + offset
	cycle := NonSequential

	if l {
		if b {
			arm.regs.set(rd, uint32(arm.bus.Read8(addr, cycle)))
		} else {
			arm.regs.set(rd, arm.readWord(addr, cycle))
		}
		return false
	}
	if b {
		arm.bus.Write8(addr, uint8(arm.regs.get(rd)))
	} else {
		arm.writeWord(addr, arm.regs.get(rd))
	}
	return false
}

// thumbLoadStoreHalfword implements format 10: STRH/LDRH addressed by
// base register plus a 5-bit immediate scaled by 2.
func thumbLoadStoreHalfword(arm *ARM, opcode uint16) bool {
	l := opcode&(1<<11) != 0
	imm5 := uint32((opcode >> 6) & 0x1f)
	rb := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	addr := arm.regs.get(rb) + imm5*2
	if l {
		arm.regs.set(rd, arm.readHalfwordZeroExtend(addr, NonSequential))
		return false
	}
	arm.writeHalfword(addr, arm.regs.get(rd))
	return false
}

// thumbSPRelativeLoadStore implements format 11: LDR/STR addressed by the
// stack pointer plus an 8-bit immediate scaled by 4.
func thumbSPRelativeLoadStore(arm *ARM, opcode uint16) bool {
	l := opcode&(1<<11) != 0
	rd := int((opcode >> 8) & 0x7)
	word8 := uint32(opcode & 0xff)

	addr := arm.regs.get(rSP) + word8*4
	if l {
		arm.regs.set(rd, arm.readWord(addr, NonSequential))
		return false
	}
	arm.writeWord(addr, arm.regs.get(rd))
	return false
}

// thumbLoadAddress implements format 12: compute SP- or PC-relative
// address into a low register, without touching memory.
func thumbLoadAddress(arm *ARM, opcode uint16) bool {
	sp := opcode&(1<<11) != 0
	rd := int((opcode >> 8) & 0x7)
	word8 := uint32(opcode & 0xff)

	var base uint32
	if sp {
		base = arm.regs.get(rSP)
	} else {
		base = arm.readOperandThumb(rPC)
	}
	arm.regs.set(rd, base+word8*4)
	return false
}
