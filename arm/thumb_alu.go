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

// thumbALU implements format 4: the sixteen two-register ALU operations.
// Logical operations (AND/EOR/TST/ORR/BIC/MVN) leave C and V untouched;
// the shift operations (LSL/LSR/ASR/ROR) set C from the shifter, never V;
// the arithmetic operations (ADC/SBC/NEG/CMP/CMN) set both from the ALU.
func thumbALU(arm *ARM, opcode uint16) bool {
	op := (opcode >> 6) & 0xf
	rs := int((opcode >> 3) & 0x7)
	rd := int(opcode & 0x7)

	rdVal := arm.regs.get(rd)
	rsVal := arm.regs.get(rs)
	carryIn := arm.regs.cpsr.carry

	var result uint32
	var fl flags
	var shiftCarry bool
	haveFl := false
	haveShiftCarry := false
	writesResult := true

	switch op {
	case 0x0: // AND
		result = rdVal & rsVal
	case 0x1: // EOR
		result = rdVal ^ rsVal
	case 0x2: // LSL
		result, shiftCarry = shiftLSLBy(rdVal, uint8(rsVal&0xff), carryIn)
		haveShiftCarry = true
	case 0x3: // LSR
		result, shiftCarry = shiftLSRBy(rdVal, uint8(rsVal&0xff), false, carryIn)
		haveShiftCarry = true
	case 0x4: // ASR
		result, shiftCarry = shiftASRBy(rdVal, uint8(rsVal&0xff), false, carryIn)
		haveShiftCarry = true
	case 0x5: // ADC
		result, fl = addCarryFlags(rdVal, rsVal, carryIn)
		haveFl = true
	case 0x6: // SBC
		result, fl = subCarryFlags(rdVal, rsVal, carryIn)
		haveFl = true
	case 0x7: // ROR
		result, shiftCarry = shiftRORBy(rdVal, uint8(rsVal&0xff), false, carryIn)
		haveShiftCarry = true
	case 0x8: // TST
		result = rdVal & rsVal
		writesResult = false
	case 0x9: // NEG
		result, fl = subFlags(0, rsVal)
		haveFl = true
	case 0xA: // CMP
		result, fl = subFlags(rdVal, rsVal)
		haveFl = true
		writesResult = false
	case 0xB: // CMN
		result, fl = addFlags(rdVal, rsVal)
		haveFl = true
		writesResult = false
	case 0xC: // ORR
		result = rdVal | rsVal
	case 0xD: // MUL
		result = rdVal * rsVal
	case 0xE: // BIC
		result = rdVal &^ rsVal
	default: // MVN
		result = ^rsVal
	}

	if writesResult {
		arm.regs.set(rd, result)
	}
	arm.regs.cpsr.setNZ(result)
	switch {
	case haveFl:
		arm.regs.cpsr.carry = fl.carry
		arm.regs.cpsr.overflow = fl.overflow
	case haveShiftCarry:
		arm.regs.cpsr.carry = shiftCarry
	}
	return false
}
