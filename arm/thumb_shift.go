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

// thumbShiftedRegister implements format 1: LSL/LSR/ASR by a 5-bit
// immediate. It shares the ARM immediate-shift corner cases (a zero LSR
// or ASR amount means 32) by calling the same shifter functions the ARM
// data-processing operand uses.
func thumbShiftedRegister(arm *ARM, opcode uint16) bool {
	op := (opcode >> 11) & 0x3
	amount := uint8((opcode >> 6) & 0x1f)
	rs := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	value := arm.regs.get(rs)
	carryIn := arm.regs.cpsr.carry

	var result uint32
	var carryOut bool
	switch op {
	case 0b00:
		result, carryOut = shiftLSLBy(value, amount, carryIn)
	case 0b01:
		result, carryOut = shiftLSRBy(value, amount, true, carryIn)
	default: // 0b10, ASR; 0b11 never reaches here (format 2's territory)
		result, carryOut = shiftASRBy(value, amount, true, carryIn)
	}

	arm.regs.set(rd, result)
	arm.regs.cpsr.setNZ(result)
	arm.regs.cpsr.carry = carryOut
	return false
}

// thumbAddSub implements format 2: ADD/SUB, with either a register or a
// 3-bit immediate as the second operand.
func thumbAddSub(arm *ARM, opcode uint16) bool {
	immediate := opcode&(1<<10) != 0
	sub := opcode&(1<<9) != 0
	field := uint32((opcode >> 6) & 0x7)
	rs := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	a := arm.regs.get(rs)
	var b uint32
	if immediate {
		b = field
	} else {
		b = arm.regs.get(int(field))
	}

	var result uint32
	var fl flags
	if sub {
		result, fl = subFlags(a, b)
	} else {
		result, fl = addFlags(a, b)
	}

	arm.regs.set(rd, result)
	arm.regs.cpsr.setNZ(result)
	arm.regs.cpsr.carry = fl.carry
	arm.regs.cpsr.overflow = fl.overflow
	return false
}
