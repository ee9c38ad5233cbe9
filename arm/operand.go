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

// readOperandARM reads register r the way an ARM data-processing operand
// reads it. By the time a handler runs, the register PC already holds
// instructionAddress+4 (the loop advances it before dispatch), so adding
// 4 more yields the architectural PC+8, and 8 more yields PC+12 - the
// bias used only for the operand-2 register-specified-shift-amount form.
// Expressing the bias once here, rather than at every call site, is the
// single most common bug avoidance this architecture rewards.
func (arm *ARM) readOperandARM(r int, registerSpecifiedShift bool) uint32 {
	if r == rPC {
		if registerSpecifiedShift {
			return arm.regs.get(rPC) + 8
		}
		return arm.regs.get(rPC) + 4
	}
	return arm.regs.get(r)
}

// readOperandThumb reads register r the way a Thumb instruction operand
// reads it: PC is seen as (current_pc+4)&~2. The register already holds
// the instruction address plus 2 by the time a handler runs, so only 2
// more is added here.
func (arm *ARM) readOperandThumb(r int) uint32 {
	if r == rPC {
		return (arm.regs.get(rPC) + 2) &^ 2
	}
	return arm.regs.get(r)
}

// rotateImmediateOperand implements the ARM immediate-operand-2 rotate:
// an 8-bit immediate rotated right by 2*rot. Unlike the register-operand
// ROR shift, a zero rotate here is a genuine no-op (the immediate form
// never encodes RRX); any nonzero rotate behaves like an ordinary ROR.
func rotateImmediateOperand(imm uint32, rot uint8, carryIn bool) (uint32, bool) {
	amount := rot * 2
	if amount == 0 {
		return imm, carryIn
	}
	return shiftRORBy(imm, amount, false, carryIn)
}

// dataProcessingOperand2 evaluates operand 2 of a data-processing
// instruction, returning the value and the shifter's carry-out. The
// PSR-transfer immediate form calls rotateImmediateOperand directly.
func (arm *ARM) dataProcessingOperand2(instr uint32) (uint32, bool) {
	if instr&(1<<25) != 0 {
		imm := instr & 0xff
		rot := uint8((instr >> 8) & 0xf)
		return rotateImmediateOperand(imm, rot, arm.regs.cpsr.carry)
	}

	rm := int(instr & 0xf)
	st := shiftType((instr >> 5) & 0x3)
	regShift := instr&(1<<4) != 0

	var amount uint8
	var value uint32
	if regShift {
		rs := int((instr >> 8) & 0xf)
		amount = uint8(arm.regs.get(rs) & 0xff)
		value = arm.readOperandARM(rm, true)
	} else {
		amount = uint8((instr >> 7) & 0x1f)
		value = arm.readOperandARM(rm, false)
	}

	return shift(value, st, amount, !regShift, arm.regs.cpsr.carry)
}
