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

// thumbHiRegisterBX implements format 5: ADD/CMP/MOV that can reach the
// high registers (r8-r15), and BX. The H1/H2 bits extend Rd/Rs into the
// high half of the register file; ARMv4T has no Thumb BLX, so the BX
// opcode slot always performs a plain branch-and-exchange.
func thumbHiRegisterBX(arm *ARM, opcode uint16) bool {
	op := (opcode >> 8) & 0x3
	h1 := opcode&(1<<7) != 0
	h2 := opcode&(1<<6) != 0

	rs := int((opcode >> 3) & 0x7)
	if h2 {
		rs += 8
	}
	rd := int(opcode & 0x7)
	if h1 {
		rd += 8
	}

	srcVal := arm.readOperandThumb(rs)

	switch op {
	case 0b00: // ADD
		result := arm.readOperandThumb(rd) + srcVal
		if rd == rPC {
			arm.regs.setPC(result)
			return true
		}
		arm.regs.set(rd, result)
		return false

	case 0b01: // CMP
		result, fl := subFlags(arm.readOperandThumb(rd), srcVal)
		arm.regs.cpsr.setNZ(result)
		arm.regs.cpsr.carry = fl.carry
		arm.regs.cpsr.overflow = fl.overflow
		return false

	case 0b10: // MOV
		if rd == rPC {
			arm.regs.setPC(srcVal)
			return true
		}
		arm.regs.set(rd, srcVal)
		return false

	default: // BX
		arm.regs.cpsr.thumb = srcVal&1 != 0
		arm.regs.setPC(srcVal)
		return true
	}
}
