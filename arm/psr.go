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

// armPSRTransferRegister implements MRS and both forms (register and
// immediate) of MSR. Which of the two this is, is distinguished entirely
// by bit21 (0 = MRS, 1 = MSR); the immediate/register operand form for
// MSR is bit25, shared with the rest of the data-processing space.
func armPSRTransferRegister(arm *ARM, instr uint32) bool {
	spsr := instr&(1<<22) != 0
	isMSR := instr&(1<<21) != 0

	if !isMSR {
		rd := int((instr >> 12) & 0xf)
		arm.assertRestricted(rd == rPC, "MRS: r15 used as destination")

		var v uint32
		if spsr {
			if cur, ok := arm.regs.currentSPSR(); ok {
				v = cur.pack()
			} else {
				v = arm.regs.cpsr.pack()
			}
		} else {
			v = arm.regs.cpsr.pack()
		}
		arm.regs.set(rd, v)
		return false
	}

	var operand uint32
	if instr&(1<<25) != 0 {
		imm := instr & 0xff
		rot := uint8((instr >> 8) & 0xf)
		operand, _ = rotateImmediateOperand(imm, rot, arm.regs.cpsr.carry)
	} else {
		rm := int(instr & 0xf)
		arm.assertRestricted(rm == rPC, "MSR: r15 used as source")
		operand = arm.regs.get(rm)
	}

	var mask uint32
	if instr&(1<<19) != 0 {
		mask |= 0xff000000 // flags field (f)
	}
	if instr&(1<<18) != 0 {
		mask |= 0x00ff0000 // status field (s), unused in this architecture
	}
	if instr&(1<<17) != 0 {
		mask |= 0x0000ff00 // extension field (x), unused in this architecture
	}
	if instr&(1<<16) != 0 {
		mask |= 0x000000ff // control field (c)
	}

	privileged := arm.regs.cpsr.mode != User
	if !privileged {
		// the control, extension and status fields are only writable from
		// a privileged mode; an unprivileged MSR can only touch flags.
		mask &= 0xff000000
	}

	if spsr {
		cur, ok := arm.regs.currentSPSR()
		if !ok {
			return false
		}
		packed := (cur.pack() &^ mask) | (operand & mask)
		cur.unpack(packed)
		return false
	}

	packed := (arm.regs.cpsr.pack() &^ mask) | (operand & mask)
	mode := arm.regs.cpsr.mode
	arm.regs.cpsr.unpack(packed)
	if arm.regs.cpsr.mode != mode {
		arm.regs.switchMode(arm.regs.cpsr.mode)
	}
	return false
}
