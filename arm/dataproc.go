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

// dpOpcode is the 4-bit opcode field of a data-processing instruction.
type dpOpcode uint8

const (
	dpAND dpOpcode = iota
	dpEOR
	dpSUB
	dpRSB
	dpADD
	dpADC
	dpSBC
	dpRSC
	dpTST
	dpTEQ
	dpCMP
	dpCMN
	dpORR
	dpMOV
	dpBIC
	dpMVN
)

// armDataProcessing implements all sixteen data-processing opcodes,
// including the comparison forms (TST/TEQ/CMP/CMN, which never write rd)
// and the PC-as-destination form, which performs an implicit mode return
// when S is set (restoring CPSR from the current SPSR).
func armDataProcessing(arm *ARM, instr uint32) bool {
	op := dpOpcode((instr >> 21) & 0xf)
	s := instr&(1<<20) != 0
	rn := int((instr >> 16) & 0xf)
	rd := int((instr >> 12) & 0xf)

	op2, shifterCarry := arm.dataProcessingOperand2(instr)
	rnVal := arm.readOperandARM(rn, instr&(1<<4) != 0 && instr&(1<<25) == 0)

	var result uint32
	var fl flags
	haveFl := false
	writesResult := true

	switch op {
	case dpAND:
		result = rnVal & op2
	case dpEOR:
		result = rnVal ^ op2
	case dpSUB:
		result, fl = subFlags(rnVal, op2)
		haveFl = true
	case dpRSB:
		result, fl = subFlags(op2, rnVal)
		haveFl = true
	case dpADD:
		result, fl = addFlags(rnVal, op2)
		haveFl = true
	case dpADC:
		result, fl = addCarryFlags(rnVal, op2, arm.regs.cpsr.carry)
		haveFl = true
	case dpSBC:
		result, fl = subCarryFlags(rnVal, op2, arm.regs.cpsr.carry)
		haveFl = true
	case dpRSC:
		result, fl = subCarryFlags(op2, rnVal, arm.regs.cpsr.carry)
		haveFl = true
	case dpTST:
		result = rnVal & op2
		writesResult = false
	case dpTEQ:
		result = rnVal ^ op2
		writesResult = false
	case dpCMP:
		result, fl = subFlags(rnVal, op2)
		haveFl = true
		writesResult = false
	case dpCMN:
		result, fl = addFlags(rnVal, op2)
		haveFl = true
		writesResult = false
	case dpORR:
		result = rnVal | op2
	case dpMOV:
		result = op2
	case dpBIC:
		result = rnVal &^ op2
	default: // dpMVN
		result = ^op2
	}

	branched := false

	if writesResult && rd == rPC {
		arm.regs.setPC(result)
		branched = true
		if s {
			if spsr, ok := arm.regs.currentSPSR(); ok {
				arm.regs.cpsr = *spsr
				arm.regs.switchMode(arm.regs.cpsr.mode)
			}
		}
		return branched
	}

	if writesResult {
		arm.regs.set(rd, result)
	}

	if s {
		arm.regs.cpsr.setNZ(result)
		if haveFl {
			arm.regs.cpsr.carry = fl.carry
			arm.regs.cpsr.overflow = fl.overflow
		} else {
			arm.regs.cpsr.carry = shifterCarry
		}
	}

	return branched
}
